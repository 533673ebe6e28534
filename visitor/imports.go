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

// visitImportStatement lowers `import X.Y` and `import X.Y as Z` (spec
// §4.4 step 1: "import X.Y creates nested aliases as needed").
func (v *Visitor) visitImportStatement(node *ts.Node, owner model.Object) {
	n := node.NamedChildCount()
	for i := uint(0); i < n; i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "dotted_name":
			dotted := v.text(child)
			top := strings.SplitN(dotted, ".", 2)[0]
			v.addAliasImport(owner, top, top, int(child.StartPosition().Row)+1)
		case "aliased_import":
			dotted := v.text(child.ChildByFieldName("name"))
			alias := v.text(child.ChildByFieldName("alias"))
			v.addAliasImport(owner, alias, dotted, int(child.StartPosition().Row)+1)
		}
	}
}

// visitImportFromStatement lowers `from X import Y [as Z]` and `from X
// import *`.
func (v *Visitor) visitImportFromStatement(node *ts.Node, owner model.Object) {
	moduleNode := node.ChildByFieldName("module_name")
	fromModule := v.text(moduleNode)

	n := node.NamedChildCount()
	for i := uint(0); i < n; i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "dotted_name":
			if child == moduleNode {
				continue
			}
			name := v.text(child)
			v.addAliasImport(owner, name, fromModule+"."+name, int(child.StartPosition().Row)+1)
		case "aliased_import":
			name := v.text(child.ChildByFieldName("name"))
			alias := v.text(child.ChildByFieldName("alias"))
			v.addAliasImport(owner, alias, fromModule+"."+name, int(child.StartPosition().Row)+1)
		case "wildcard_import":
			v.recordPendingWildcard(owner, fromModule, int(child.StartPosition().Row)+1)
		}
	}
}

func (v *Visitor) addAliasImport(owner model.Object, localName, targetPath string, lineno int) {
	path := childPath(owner, localName)
	alias := model.NewAlias(localName, path, targetPath, owner)
	alias.SetLineno(lineno)
	alias.SetRuntime(v.guardDepth == 0)
	owner.Members().Set(localName, alias)
	if base, ok := owner.(interface {
		AddImport(local, dotted string)
	}); ok {
		base.AddImport(localName, targetPath)
	}
}

// recordPendingWildcard stores a `from X import *` as a pending task in
// the visitor's own list: after X is loaded and its exports are known, the
// loader expands it to one alias per exported name (spec §4.4 step 1, §4.6
// step 5). Nothing is stored on the module itself; PendingWildcards
// exposes what this file accumulated, and the loader hands that list to
// its wildcard expansion step.
func (v *Visitor) recordPendingWildcard(owner model.Object, fromModule string, lineno int) {
	v.pendingWildcards = append(v.pendingWildcards, PendingWildcard{
		Owner:      owner,
		FromModule: fromModule,
		Lineno:     lineno,
	})
}
