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
)

// lowerString lowers a `string` node to either a plain Constant or, if it
// contains `interpolation` children (an f-string), a JoinedStr.
func (v *Visitor) lowerString(node *ts.Node, scope expr.Scope, member string) expr.Expr {
	n := node.NamedChildCount()
	var interpolations []*ts.Node
	for i := uint(0); i < n; i++ {
		child := node.NamedChild(i)
		if child.Kind() == "interpolation" {
			interpolations = append(interpolations, child)
		}
	}
	if len(interpolations) == 0 {
		return &expr.Constant{ConstKind: expr.ConstStr, Text: stringContent(node, v)}
	}

	js := &expr.JoinedStr{}
	childCount := node.ChildCount()
	for i := uint(0); i < childCount; i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "string_content", "escape_sequence":
			js.Parts = append(js.Parts, expr.JoinedStrPart{Text: v.text(child)})
		case "interpolation":
			if child.NamedChildCount() > 0 {
				js.Parts = append(js.Parts, expr.JoinedStrPart{Expr: v.lowerExpr(child.NamedChild(0), scope, member)})
			}
		}
	}
	return js
}

// stringContent extracts the inner text of a string node, stripping the
// surrounding quote tokens (string_start/string_end) if present.
func stringContent(node *ts.Node, v *Visitor) string {
	n := node.NamedChildCount()
	for i := uint(0); i < n; i++ {
		child := node.NamedChild(i)
		if child.Kind() == "string_content" {
			return v.text(child)
		}
	}
	return v.text(node)
}
