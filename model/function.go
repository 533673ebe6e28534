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
package model

import "github.com/apitree/apitree/expr"

// Function is a `def` statement, a method, or a `property` getter/setter
// body, distinguished from the latter by its Labels set ("property",
// "staticmethod", "classmethod", ...).
type Function struct {
	*Base

	Parameters []*Parameter
	Returns    expr.Expr
	Decorators []expr.Expr
	Async      bool
	Overload   bool
	Deprecated Deprecated

	// Overloads holds every `@typing.overload`-decorated signature that
	// preceded this binding under the same name (spec: "multiple overloads
	// of the same function name coexist"). The final, non-overload
	// definition is the member itself; its Overloads slice is the
	// discarded-by-Members.Set signatures in declaration order.
	Overloads []*Function
}

// NewFunction constructs a Function attached to parent.
func NewFunction(name, path string, parent Object) *Function {
	return &Function{Base: NewBase(name, path, parent)}
}

func (f *Function) Kind() Kind { return KindFunction }

func (f *Function) resolve(name string) (string, error) { return resolve(f, name) }
func (f *Function) ResolveName(name string) (string, error) { return f.resolve(name) }
func (f *Function) IsPublic() bool { return IsPublic(f) }

// RequiredParameters returns the parameters a caller must supply.
func (f *Function) RequiredParameters() []*Parameter {
	var out []*Parameter
	for _, p := range f.Parameters {
		if p.Required() {
			out = append(out, p)
		}
	}
	return out
}
