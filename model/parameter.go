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

// ParameterKind is one of Python's five parameter flavors, in the order
// they must appear in a signature.
type ParameterKind int

const (
	ParamPositionalOnly ParameterKind = iota
	ParamPositionalOrKeyword
	ParamVarPositional
	ParamKeywordOnly
	ParamVarKeyword
)

func (k ParameterKind) String() string {
	switch k {
	case ParamPositionalOnly:
		return "positional-only"
	case ParamVarPositional:
		return "variadic positional"
	case ParamKeywordOnly:
		return "keyword-only"
	case ParamVarKeyword:
		return "variadic keyword"
	default:
		return "positional-or-keyword"
	}
}

// Parameter is one entry of a Function's signature.
type Parameter struct {
	Name       string
	ParamKind  ParameterKind
	Annotation expr.Expr
	Default    expr.Expr
}

// Required reports whether the caller must supply this parameter: no
// default, and not a variadic collector (*args/**kwargs are never
// "required" in the sense the diff engine cares about for
// PARAMETER_ADDED_REQUIRED).
func (p *Parameter) Required() bool {
	if p.ParamKind == ParamVarPositional || p.ParamKind == ParamVarKeyword {
		return false
	}
	return p.Default == nil
}
