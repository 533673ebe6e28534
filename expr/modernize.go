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

// legacyTypingAliases maps the typing module's generic aliases (deprecated
// since PEP 585) to the builtin they shadow.
var legacyTypingAliases = map[string]string{
	"List": "list", "Dict": "dict", "Set": "set", "FrozenSet": "frozenset",
	"Tuple": "tuple", "Type": "type",
}

// Modernize rewrites an annotation expression into its PEP 604 / PEP 585
// equivalent: typing.Optional[X] -> X | None, typing.Union[X, Y] -> X | Y,
// typing.List[X] -> list[X], etc. It is pure (never mutates e; rewritten
// nodes are new, and nodes it has no rule for, such as a bare Name, are
// returned as is) and idempotent: running it twice yields the same result as
// running it once, and it never changes an expression's meaning, only its
// spelling (spec §4.2: "modernization ... pure, idempotent, and never
// alters runtime semantics").
func Modernize(e Expr) Expr {
	switch n := e.(type) {
	case *Subscript:
		return modernizeSubscript(n)
	case *BinOp:
		return &BinOp{Op: n.Op, Left: Modernize(n.Left), Right: Modernize(n.Right)}
	case *Tuple:
		return &Tuple{Elements: modernizeAll(n.Elements)}
	case *List:
		return &List{Elements: modernizeAll(n.Elements)}
	default:
		return e
	}
}

func modernizeAll(elems []Expr) []Expr {
	out := make([]Expr, len(elems))
	for i, el := range elems {
		out[i] = Modernize(el)
	}
	return out
}

func modernizeSubscript(n *Subscript) Expr {
	name := subscriptBaseName(n.Value)
	switch name {
	case "Optional":
		return &BinOp{Op: BinBitOr, Left: Modernize(n.Index), Right: &Constant{ConstKind: ConstNone, Text: "None"}}
	case "Union":
		return modernizeUnion(n.Index)
	default:
		if builtin, ok := legacyTypingAliases[name]; ok {
			return &Subscript{Value: &Name{Identifier: builtin}, Index: Modernize(n.Index)}
		}
		return &Subscript{Value: n.Value, Index: Modernize(n.Index)}
	}
}

// modernizeUnion flattens Union[A, B, C] (index is a Tuple) into A | B | C.
func modernizeUnion(index Expr) Expr {
	tuple, ok := index.(*Tuple)
	if !ok {
		return Modernize(index)
	}
	members := modernizeAll(tuple.Elements)
	if len(members) == 0 {
		return &Tuple{}
	}
	result := members[0]
	for _, m := range members[1:] {
		result = &BinOp{Op: BinBitOr, Left: result, Right: m}
	}
	return result
}

// subscriptBaseName returns the trailing identifier of a possibly
// module-qualified base (e.g. typing.Optional or a bare Optional), or ""
// if the base isn't a simple Name/Attribute chain.
func subscriptBaseName(e Expr) string {
	switch v := e.(type) {
	case *Name:
		return v.Identifier
	case *Attribute:
		return v.Attr
	default:
		return ""
	}
}
