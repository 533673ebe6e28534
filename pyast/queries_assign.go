/*
Copyright © 2025 Benny Powers

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package pyast

// queryAssign captures plain and annotated assignment statements at
// module or class body level (attributes and __all__/type-alias
// candidates), plus augmented assignment for __all__ += [...] handling.
const queryAssign = `
(expression_statement
  (assignment
    left: (identifier) @assign.target
    type: (type)? @assign.annotation
    right: (_) @assign.value)) @assign

(expression_statement
  (augmented_assignment
    left: (identifier) @augassign.target
    operator: _ @augassign.op
    right: (_) @augassign.value)) @augassign

(expression_statement
  (assignment
    left: (identifier) @typealias.target
    right: (subscript
      value: (identifier) @typealias.marker
      subscript: (_) @typealias.value))) @typealias.legacy

(type_alias_statement
  name: (type) @typealias.name
  value: (type) @typealias.pep695value) @typealias.pep695
`

func init() { queryRegistry["assign"] = queryAssign }
