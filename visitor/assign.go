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

	"github.com/apitree/apitree/model"
)

// visitExpressionStatement handles the statement kinds that only ever
// show up wrapped in an expression_statement at module/class scope:
// plain assignment, annotated assignment, and augmented assignment.
// Everything else (a bare call, a bare string used as a module-level
// comment, ...) carries no API-surface meaning and is ignored.
func (v *Visitor) visitExpressionStatement(stmt *ts.Node, owner model.Object, scope model.Object, memberAnchor string) {
	if stmt.NamedChildCount() == 0 {
		return
	}
	inner := stmt.NamedChild(0)
	switch inner.Kind() {
	case "assignment":
		v.visitAssignment(inner, owner, scope, memberAnchor)
	case "augmented_assignment":
		v.visitAugmentedAssignment(inner, owner)
	}
}

func (v *Visitor) visitAssignment(node *ts.Node, owner model.Object, scope model.Object, memberAnchor string) {
	left := node.ChildByFieldName("left")
	if left == nil || left.Kind() != "identifier" {
		return
	}
	name := v.text(left)

	if name == "__all__" {
		v.pendingAll = append(v.pendingAll, v.lowerExportsRHS(node.ChildByFieldName("right")))
		return
	}

	path := childPath(owner, name)
	attr := model.NewAttribute(name, path, owner)
	start, end := lineRange(node)
	attr.SetLineno(start)
	attr.SetEndlineno(end)
	attr.SetRuntime(v.guardDepth == 0)

	if ann := node.ChildByFieldName("type"); ann != nil {
		attr.Annotation = v.lowerAnnotation(ann, attr, name)
	}
	if right := node.ChildByFieldName("right"); right != nil {
		attr.Value = v.lowerExpr(right, scope, memberAnchor)
	}
	owner.Members().Set(name, attr)
}

func (v *Visitor) visitAugmentedAssignment(node *ts.Node, owner model.Object) {
	left := node.ChildByFieldName("left")
	if left == nil || v.text(left) != "__all__" {
		return
	}
	v.pendingAll = append(v.pendingAll, v.lowerExportsRHS(node.ChildByFieldName("right")))
}

// lowerExportsRHS interprets __all__'s right-hand side as a list of
// string literals and/or "name-expressions" referencing another module's
// __all__ (e.g. `*utils.__all__` inside a list, or a bare identifier
// concatenated via `+`), per spec §4.4 step 2. Unresolvable entries are
// returned as raw text for the loader to expand later.
func (v *Visitor) lowerExportsRHS(node *ts.Node) allEntry {
	var entry allEntry
	if node == nil {
		return entry
	}
	v.collectExportsFrom(node, &entry)
	return entry
}

func (v *Visitor) collectExportsFrom(node *ts.Node, entry *allEntry) {
	switch node.Kind() {
	case "list", "tuple":
		n := node.NamedChildCount()
		for i := uint(0); i < n; i++ {
			v.collectExportsFrom(node.NamedChild(i), entry)
		}
	case "string":
		entry.names = append(entry.names, stringContent(node, v))
	case "list_splat":
		if node.NamedChildCount() > 0 {
			entry.unresolved = append(entry.unresolved, v.text(node.NamedChild(0)))
		}
	case "binary_operator":
		v.collectExportsFrom(node.ChildByFieldName("left"), entry)
		v.collectExportsFrom(node.ChildByFieldName("right"), entry)
	case "attribute", "identifier":
		entry.unresolved = append(entry.unresolved, v.text(node))
	}
}

// finalizeExports flattens every __all__ assignment/augmentation this
// visitor observed, in source order, into the module's Exports field.
// Unresolved name-expressions (other modules' __all__) are left for the
// loader's expand_exports pass (spec §4.6 step 4).
func (v *Visitor) finalizeExports() {
	if len(v.pendingAll) == 0 {
		return
	}
	var names []string
	for _, entry := range v.pendingAll {
		names = append(names, entry.names...)
		v.module.PendingExportRefs = append(v.module.PendingExportRefs, entry.unresolved...)
	}
	v.module.SetExports(names)
}
