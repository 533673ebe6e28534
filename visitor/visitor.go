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

// Package visitor is the static visitor: it walks a parsed Python file's
// tree-sitter CST and lowers it into the model package's object tree.
// One Visitor instance handles exactly one module; it is never shared
// across files (spec §4.4: "Visitors are stateful per module; state is
// not shared across modules").
package visitor

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/apitree/apitree/internal/logging"
	"github.com/apitree/apitree/model"
	"github.com/apitree/apitree/pyast"
)

// Visitor walks one module's CST, tracking the future-annotations flag and
// the TYPE_CHECKING guard depth it is currently nested inside.
type Visitor struct {
	source            []byte
	log               *logging.Logger
	module            *model.Module
	futureAnnotations bool
	guardDepth        int
	pendingAll        []allEntry
	pendingWildcards  []PendingWildcard
}

// PendingWildcard is a `from X import *` statement the loader must expand
// once X's exports are known (spec §4.4 step 1, §4.6 step 5).
type PendingWildcard struct {
	Owner      model.Object
	FromModule string
	Lineno     int
}

// PendingWildcards returns every wildcard import this visitor recorded.
func (v *Visitor) PendingWildcards() []PendingWildcard { return v.pendingWildcards }

// allEntry records one step of building up a module's __all__ list, kept
// in source order so augmented assignment (`__all__ += [...]`) appends
// rather than replaces.
type allEntry struct {
	names    []string
	unresolved []string // dotted references to another module's __all__, e.g. "utils.__all__"
}

// NewVisitor constructs a Visitor for one module, attached to mod.
func NewVisitor(source []byte, mod *model.Module, log *logging.Logger) *Visitor {
	return &Visitor{source: source, module: mod, log: log}
}

// VisitFile walks tree's root `module` node into v's target Module.
func (v *Visitor) VisitFile(tree *pyast.Tree) error {
	v.source = tree.Source
	root := tree.Root()
	v.detectFutureAnnotations(root)
	v.module.SetDocstring(v.extractLeadingDocstring(root))
	v.visitBlockStatements(root, v.module, v.module, "")
	v.finalizeExports()
	return nil
}

// visitBlockStatements walks every direct statement child of block,
// attaching new members to owner (a Module or Class) and binding any
// Name expressions produced to scope (usually the same as owner).
func (v *Visitor) visitBlockStatements(block *ts.Node, owner model.Object, scope model.Object, memberAnchor string) {
	n := block.NamedChildCount()
	for i := uint(0); i < n; i++ {
		stmt := block.NamedChild(i)
		v.visitStatement(stmt, owner, scope, memberAnchor)
	}
}

func (v *Visitor) visitStatement(stmt *ts.Node, owner model.Object, scope model.Object, memberAnchor string) {
	switch stmt.Kind() {
	case "class_definition":
		v.visitClassDef(stmt, owner, nil)
	case "function_definition":
		v.visitFuncDef(stmt, owner, nil)
	case "decorated_definition":
		v.visitDecorated(stmt, owner)
	case "import_statement":
		v.visitImportStatement(stmt, owner)
	case "import_from_statement":
		v.visitImportFromStatement(stmt, owner)
	case "expression_statement":
		v.visitExpressionStatement(stmt, owner, scope, memberAnchor)
	case "type_alias_statement":
		v.visitTypeAliasStatement(stmt, owner, scope)
	case "if_statement":
		v.visitIfStatement(stmt, owner, scope, memberAnchor)
	default:
		// for/while/try/with statements, pass, raise, ... are not recursed
		// into: only direct block children (and the bodies of
		// TYPE_CHECKING guards) are visited, so a class, def or assignment
		// nested inside one of these statements is not captured.
	}
}
