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

// builtinDecoratorLabels is the fixed table of well-known decorator
// identifiers the visitor maps to labels, resolved as an Open Question in
// favor of a closed set rather than an arbitrary-name passthrough (spec
// §4.4 step 4).
var builtinDecoratorLabels = map[string]string{
	"property":        "property",
	"staticmethod":    "staticmethod",
	"classmethod":     "classmethod",
	"dataclass":       "dataclass",
	"overload":        "overload",
	"abstractmethod":  "abstractmethod",
	"cached_property": "cached_property",
	"final":           "final",
}

// visitDecorated peels decorator nodes off a decorated_definition and
// dispatches to the wrapped class/function visitor with them attached.
func (v *Visitor) visitDecorated(node *ts.Node, owner model.Object) {
	var decorators []*ts.Node
	n := node.NamedChildCount()
	var definition *ts.Node
	for i := uint(0); i < n; i++ {
		child := node.NamedChild(i)
		if child.Kind() == "decorator" && child.NamedChildCount() > 0 {
			decorators = append(decorators, child.NamedChild(0))
			continue
		}
		if child.Kind() == "class_definition" || child.Kind() == "function_definition" {
			definition = child
		}
	}
	if definition == nil {
		return
	}
	switch definition.Kind() {
	case "class_definition":
		v.visitClassDef(definition, owner, decorators)
	case "function_definition":
		fn := v.visitFuncDef(definition, owner, decorators)
		fn.Overload = hasDecoratorNamed(v, decorators, "overload")
	}
}

func hasDecoratorNamed(v *Visitor, decorators []*ts.Node, name string) bool {
	for _, dec := range decorators {
		if decoratorIdentifier(v, dec) == name {
			return true
		}
	}
	return false
}

// decoratorIdentifier extracts the trailing identifier of a decorator
// expression, whether it's a bare name, a dotted attribute, or a call.
func decoratorIdentifier(v *Visitor, dec *ts.Node) string {
	node := dec
	if node.Kind() == "call" {
		node = node.ChildByFieldName("function")
	}
	switch node.Kind() {
	case "identifier":
		return v.text(node)
	case "attribute":
		return v.text(node.ChildByFieldName("attribute"))
	default:
		return ""
	}
}

// applyDecoratorLabel adds a label to owner's Labels set if dec matches a
// well-known decorator identifier.
func (v *Visitor) applyDecoratorLabel(dec *ts.Node, owner model.Object) {
	name := decoratorIdentifier(v, dec)
	if label, ok := builtinDecoratorLabels[name]; ok {
		owner.Labels().Add(label)
	}
}

// recognizeDeprecated recognizes `@warnings.deprecated(...)` and a bare
// `@deprecated` marker, producing a model.Deprecated (spec §4.4 step 5).
func (v *Visitor) recognizeDeprecated(dec *ts.Node, owner model.Object) (model.Deprecated, bool) {
	name := decoratorIdentifier(v, dec)
	if name != "deprecated" {
		return nil, false
	}
	if dec.Kind() != "call" {
		return model.NewDeprecated(true), true
	}
	args := dec.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return model.NewDeprecated(true), true
	}
	first := args.NamedChild(0)
	if first.Kind() == "string" {
		return model.NewDeprecated(strings.TrimSpace(stringContent(first, v))), true
	}
	return model.NewDeprecated(true), true
}
