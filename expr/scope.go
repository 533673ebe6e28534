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

// Package expr is the typed expression tree used for annotations, default
// values, decorators, and base-class expressions. It preserves
// source-level identifier scoping so expressions can be re-resolved after
// the whole package has been loaded.
package expr

// Scope is anything a Name expression can resolve an identifier against.
// model.Object implements this; it is declared here rather than imported
// from model to avoid a model<->expr import cycle (model objects hold
// expr values as annotations/defaults/bases, and expr Name nodes hold a
// back-reference to the scope they were parsed in).
type Scope interface {
	// ResolveName answers: "if this identifier were evaluated unqualified
	// at this scope, which fully qualified entity would it bind to?"
	ResolveName(name string) (string, error)
}
