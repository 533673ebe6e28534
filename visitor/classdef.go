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

// visitClassDef lowers a class_definition into a model.Class attached to
// owner, recursing into its body in document order (spec §4.4 step 7).
// decorators, if non-nil, were already collected by visitDecorated.
func (v *Visitor) visitClassDef(node *ts.Node, owner model.Object, decorators []*ts.Node) *model.Class {
	name := v.text(node.ChildByFieldName("name"))
	path := childPath(owner, name)
	class := model.NewClass(name, path, owner)

	start, end := lineRange(node)
	class.SetLineno(start)
	class.SetEndlineno(end)
	class.SetRuntime(v.guardDepth == 0)

	if bases := node.ChildByFieldName("superclasses"); bases != nil {
		v.collectBasesAndMetaclass(bases, class)
	}

	for _, dec := range decorators {
		class.Decorators = append(class.Decorators, v.lowerExpr(dec, class, name))
		v.applyDecoratorLabel(dec, class)
	}

	owner.Members().Set(name, class)

	if body := node.ChildByFieldName("body"); body != nil {
		class.SetDocstring(v.extractLeadingDocstring(body))
		v.visitBlockStatements(body, class, class, name)
	}
	return class
}

// collectBasesAndMetaclass splits a class's argument_list into positional
// base-class expressions and a `metaclass=` keyword if present.
func (v *Visitor) collectBasesAndMetaclass(args *ts.Node, class *model.Class) {
	n := args.NamedChildCount()
	for i := uint(0); i < n; i++ {
		arg := args.NamedChild(i)
		if arg.Kind() == "keyword_argument" {
			if v.text(arg.ChildByFieldName("name")) == "metaclass" {
				class.Metaclass = v.lowerExpr(arg.ChildByFieldName("value"), class, class.Name())
			}
			continue
		}
		class.BaseExprs = append(class.BaseExprs, v.lowerExpr(arg, class, class.Name()))
	}
}

// childPath joins owner's dotted path with a local name, handling the
// package-root module (whose own Path() is already the dotted package
// name and needs no extra separator logic beyond a plain join).
func childPath(owner model.Object, name string) string {
	if owner.Path() == "" {
		return name
	}
	return owner.Path() + "." + name
}

func lineRange(node *ts.Node) (int, int) {
	start := node.StartPosition()
	end := node.EndPosition()
	return int(start.Row) + 1, int(end.Row) + 1
}
