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
package visitor

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/apitree/apitree/expr"
	"github.com/apitree/apitree/pyast"
)

// lowerAnnotation lowers a `type` node, honoring spec §4.4 step 6: if the
// module has `from __future__ import annotations`, annotations are never
// re-parsed as string literals (the grammar already hands them through as
// plain expressions at the syntax level in that mode); otherwise a
// string-valued annotation is re-parsed as Python source into its own
// expression tree, bound to the same scope as the surrounding annotation.
func (v *Visitor) lowerAnnotation(node *ts.Node, scope expr.Scope, member string) expr.Expr {
	inner := node
	if node.NamedChildCount() == 1 {
		inner = node.NamedChild(0)
	}
	if inner.Kind() != "string" {
		return v.lowerExpr(inner, scope, member)
	}
	if v.futureAnnotations {
		return v.lowerExpr(inner, scope, member)
	}
	return v.reparseStringAnnotation(inner, scope, member)
}

// reparseStringAnnotation parses the string literal's content as a
// standalone expression and lowers that, instead of treating it as an
// opaque string constant.
func (v *Visitor) reparseStringAnnotation(strNode *ts.Node, scope expr.Scope, member string) expr.Expr {
	content := stringContent(strNode, v)
	if content == "" {
		return &expr.Constant{ConstKind: expr.ConstStr, Text: ""}
	}
	tree, err := pyast.Parse([]byte(content))
	if err != nil {
		return &expr.Constant{ConstKind: expr.ConstStr, Text: content}
	}
	defer tree.Close()

	root := tree.Root()
	if root.NamedChildCount() == 0 {
		return &expr.Constant{ConstKind: expr.ConstStr, Text: content}
	}
	stmt := root.NamedChild(0)
	if stmt.Kind() != "expression_statement" || stmt.NamedChildCount() == 0 {
		return &expr.Constant{ConstKind: expr.ConstStr, Text: content}
	}

	sub := &Visitor{source: tree.Source, log: v.log, module: v.module, futureAnnotations: v.futureAnnotations}
	return sub.lowerExpr(stmt.NamedChild(0), scope, member)
}
