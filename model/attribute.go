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

// Attribute is a module-level or class-level variable binding: a plain
// assignment, an annotated assignment, or a dataclass field.
type Attribute struct {
	*Base

	Annotation expr.Expr
	Value      expr.Expr
	Deprecated Deprecated
}

// NewAttribute constructs an Attribute attached to parent.
func NewAttribute(name, path string, parent Object) *Attribute {
	return &Attribute{Base: NewBase(name, path, parent)}
}

func (a *Attribute) Kind() Kind { return KindAttribute }

func (a *Attribute) resolve(name string) (string, error) { return resolve(a, name) }
func (a *Attribute) ResolveName(name string) (string, error) { return a.resolve(name) }
func (a *Attribute) IsPublic() bool { return IsPublic(a) }
