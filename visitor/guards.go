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
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/apitree/apitree/model"
)

// detectFutureAnnotations scans the module's leading import statements
// for `from __future__ import annotations`.
func (v *Visitor) detectFutureAnnotations(root *ts.Node) {
	n := root.NamedChildCount()
	for i := uint(0); i < n; i++ {
		stmt := root.NamedChild(i)
		if stmt.Kind() != "import_from_statement" {
			continue
		}
		if v.text(stmt.ChildByFieldName("module_name")) != "__future__" {
			continue
		}
		if strings.Contains(v.text(stmt), "annotations") {
			v.futureAnnotations = true
			return
		}
	}
}

// visitIfStatement recurses into an if-statement's consequence block when
// its condition statically resolves to `TYPE_CHECKING` or
// `typing.TYPE_CHECKING` (spec §4.4 step 3): members defined inside get
// runtime=false but are still loaded. Any other `if` is skipped, like the
// statements in visitStatement's default case, so declarations inside it
// are not captured.
func (v *Visitor) visitIfStatement(stmt *ts.Node, owner model.Object, scope model.Object, memberAnchor string) {
	condition := stmt.ChildByFieldName("condition")
	if !isTypeCheckingGuard(v.text(condition)) {
		return
	}
	body := stmt.ChildByFieldName("consequence")
	if body == nil {
		return
	}
	v.guardDepth++
	v.visitBlockStatements(body, owner, scope, memberAnchor)
	v.guardDepth--
}

func isTypeCheckingGuard(condition string) bool {
	condition = strings.TrimSpace(condition)
	return condition == "TYPE_CHECKING" || condition == "typing.TYPE_CHECKING"
}

// visitTypeAliasStatement lowers a PEP 695 `type X = ...` statement into a
// model.TypeAlias member. Legacy `X: TypeAlias = ...` and plain
// `X = SomeGeneric[...]` assignments do not come here; visitAssignment
// lowers them as Attributes.
func (v *Visitor) visitTypeAliasStatement(node *ts.Node, owner model.Object, scope model.Object) {
	nameNode := node.ChildByFieldName("name")
	valueNode := node.ChildByFieldName("value")
	if nameNode == nil || valueNode == nil {
		return
	}
	name := v.text(nameNode)
	path := childPath(owner, name)
	alias := model.NewTypeAlias(name, path, owner)
	start, end := lineRange(node)
	alias.SetLineno(start)
	alias.SetEndlineno(end)
	alias.Value = v.lowerExpr(valueNode, scope, name)
	owner.Members().Set(name, alias)
}
