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

// Walk visits e and every expression reachable from it, depth-first,
// calling visit on each node including e itself. Returning false from
// visit stops descent into that node's children but does not stop the
// overall walk at a sibling.
func Walk(e Expr, visit func(Expr) bool) {
	if e == nil || !visit(e) {
		return
	}
	switch n := e.(type) {
	case *Attribute:
		Walk(n.Value, visit)
	case *Subscript:
		Walk(n.Value, visit)
		Walk(n.Index, visit)
	case *Slice:
		Walk(n.Lower, visit)
		Walk(n.Upper, visit)
		Walk(n.Step, visit)
	case *Tuple:
		walkAll(n.Elements, visit)
	case *List:
		walkAll(n.Elements, visit)
	case *Set:
		walkAll(n.Elements, visit)
	case *Dict:
		for _, entry := range n.Entries {
			Walk(entry.Key, visit)
			Walk(entry.Value, visit)
		}
	case *Comprehension:
		Walk(n.Key, visit)
		Walk(n.Element, visit)
		for _, clause := range n.Clauses {
			Walk(clause.Target, visit)
			Walk(clause.Iter, visit)
			walkAll(clause.Ifs, visit)
		}
	case *UnaryOp:
		Walk(n.Operand, visit)
	case *BinOp:
		Walk(n.Left, visit)
		Walk(n.Right, visit)
	case *BoolOp:
		walkAll(n.Values, visit)
	case *Compare:
		walkAll(n.Operands, visit)
	case *Call:
		Walk(n.Func, visit)
		walkAll(n.Args, visit)
		for _, k := range n.Keywords {
			Walk(k.Value, visit)
		}
	case *Keyword:
		Walk(n.Value, visit)
	case *Starred:
		Walk(n.Value, visit)
	case *DoubleStarred:
		Walk(n.Value, visit)
	case *Lambda:
		for _, p := range n.Parameters {
			Walk(p.Default, visit)
		}
		Walk(n.Body, visit)
	case *IfExp:
		Walk(n.Body, visit)
		Walk(n.Test, visit)
		Walk(n.OrElse, visit)
	case *NamedExpr:
		Walk(n.Target, visit)
		Walk(n.Value, visit)
	case *Yield:
		Walk(n.Value, visit)
	case *YieldFrom:
		Walk(n.Value, visit)
	case *JoinedStr:
		for _, part := range n.Parts {
			Walk(part.Expr, visit)
		}
	}
}

func walkAll(elems []Expr, visit func(Expr) bool) {
	for _, e := range elems {
		Walk(e, visit)
	}
}
