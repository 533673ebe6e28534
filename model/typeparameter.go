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

// TypeParameterKind distinguishes PEP 695 / typing_extensions generic
// parameter flavors.
type TypeParameterKind int

const (
	TypeParamTypeVar TypeParameterKind = iota
	TypeParamTypeVarTuple
	TypeParamParamSpec
)

// Prefix returns the name-mangling prefix resolve() attaches when
// resolving a type parameter name: "*" for a TypeVarTuple, "**" for a
// ParamSpec, "" for a plain TypeVar (spec §4.1 step 1).
func (k TypeParameterKind) Prefix() string {
	switch k {
	case TypeParamTypeVarTuple:
		return "*"
	case TypeParamParamSpec:
		return "**"
	default:
		return ""
	}
}

// TypeParameter is a generic parameter declared on a Class, Function, or
// TypeAlias. At most one of Bound / Constraints is set (invariant 3); a
// plain TypeVar has neither.
type TypeParameter struct {
	Name        string
	Kind        TypeParameterKind
	Bound       expr.Expr
	Constraints []expr.Expr
	Default     expr.Expr
}

// Valid reports whether the mutual-exclusion invariant holds.
func (t *TypeParameter) Valid() bool {
	return t.Bound == nil || len(t.Constraints) == 0
}
