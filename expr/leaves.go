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
package expr

import "fmt"

// ConstantKind distinguishes the literal forms the visitor recognizes
// without evaluating anything beyond literal recognition (spec Non-goals:
// "constant folding is limited to literal recognition").
type ConstantKind int

const (
	ConstNone ConstantKind = iota
	ConstBool
	ConstInt
	ConstFloat
	ConstComplex
	ConstStr
	ConstBytes
	ConstEllipsis
)

// Constant is a literal value, kept as source text (not evaluated) plus a
// kind tag so callers can tell an int from a string without parsing Text.
type Constant struct {
	ConstKind ConstantKind
	Text      string
}

func (c *Constant) Kind() NodeKind  { return KindConstant }
func (c *Constant) Precedence() int { return precAtom }

// Name is an identifier. It carries a back-reference to the scope it was
// parsed in plus an optional member anchor: inside a function body or
// class scope, resolution must traverse the containing class/module, not
// the expression itself, and Member records which member of Scope this
// name expression logically belongs to (e.g. the function whose body it
// appears in), per the "member anchor" contract in spec §4.2.
type Name struct {
	Identifier string
	Scope      Scope
	Member     string
}

func (n *Name) Kind() NodeKind  { return KindName }
func (n *Name) Precedence() int { return precAtom }

// Path resolves this name at its bound scope (spec §4.1 resolve()).
// Raises if the scope cannot bind the name.
func (n *Name) Path() (string, error) {
	if n.Scope == nil {
		return "", fmt.Errorf("name %q has no bound scope", n.Identifier)
	}
	return n.Scope.ResolveName(n.Identifier)
}

// SafePath is Path's non-raising counterpart: logs at the configured
// level and returns "", false instead of propagating the error.
func (n *Name) SafePath(logf func(format string, args ...any)) (string, bool) {
	path, err := n.Path()
	if err != nil {
		if logf != nil {
			logf("unresolved name %q: %v", n.Identifier, err)
		}
		return "", false
	}
	return path, true
}

// Attribute is dotted access (a.b.c), represented left-associatively:
// Value is the left-hand side, Attr the trailing identifier.
type Attribute struct {
	Value Expr
	Attr  string
}

func (a *Attribute) Kind() NodeKind  { return KindAttribute }
func (a *Attribute) Precedence() int { return precAtom }

// Subscript is a[b] (used heavily for annotations: list[int], dict[str, int]).
type Subscript struct {
	Value Expr
	Index Expr
}

func (s *Subscript) Kind() NodeKind  { return KindSubscript }
func (s *Subscript) Precedence() int { return precAtom }

// Slice is the a:b:c form inside a subscript.
type Slice struct {
	Lower Expr
	Upper Expr
	Step  Expr
}

func (s *Slice) Kind() NodeKind  { return KindSlice }
func (s *Slice) Precedence() int { return precAtom }
