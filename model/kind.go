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

// Package model implements the persistent, queryable object tree that a
// loaded Python package is lowered into: modules, classes, functions,
// attributes, type aliases, and the alias indirection layer that models
// imports and re-exports.
package model

// Kind is the tagged variant discriminating the six object flavors a
// loaded package can contain.
type Kind int

const (
	KindModule Kind = iota
	KindClass
	KindFunction
	KindAttribute
	KindTypeAlias
	KindAlias
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	case KindAttribute:
		return "attribute"
	case KindTypeAlias:
		return "type_alias"
	case KindAlias:
		return "alias"
	default:
		return "unknown"
	}
}
