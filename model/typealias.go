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

// TypeAlias is a `type X = ...` statement (PEP 695). Legacy
// `X: TypeAlias = ...` / `X = ...` aliases are not recognized; the visitor
// lowers those assignments as Attributes.
type TypeAlias struct {
	*Base

	Value expr.Expr
}

// NewTypeAlias constructs a TypeAlias attached to parent.
func NewTypeAlias(name, path string, parent Object) *TypeAlias {
	return &TypeAlias{Base: NewBase(name, path, parent)}
}

func (t *TypeAlias) Kind() Kind { return KindTypeAlias }

func (t *TypeAlias) resolve(name string) (string, error) { return resolve(t, name) }
func (t *TypeAlias) ResolveName(name string) (string, error) { return t.resolve(name) }
func (t *TypeAlias) IsPublic() bool { return IsPublic(t) }
