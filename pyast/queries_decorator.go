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

// queryDecorator captures a decorated_definition's decorator list plus
// the function/class it wraps, for well-known-decorator label mapping
// (property, staticmethod, classmethod, dataclass, overload,
// abstractmethod, cached_property, final) and deprecation recognition.
const queryDecorator = `
(decorated_definition
  (decorator (identifier) @decorator.name)
  definition: (_) @decorated.def) @decorated

(decorated_definition
  (decorator (attribute attribute: (identifier) @decorator.name))
  definition: (_) @decorated.def) @decorated

(decorated_definition
  (decorator (call
    function: (identifier) @decorator.call_name
    arguments: (argument_list) @decorator.call_args))
  definition: (_) @decorated.def) @decorated

(decorated_definition
  (decorator (call
    function: (attribute attribute: (identifier) @decorator.call_name)
    arguments: (argument_list) @decorator.call_args))
  definition: (_) @decorated.def) @decorated
`

func init() { queryRegistry["decorator"] = queryDecorator }
