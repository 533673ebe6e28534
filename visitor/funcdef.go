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

// visitFuncDef lowers a (possibly async) function_definition into a
// model.Function attached to owner.
func (v *Visitor) visitFuncDef(node *ts.Node, owner model.Object, decorators []*ts.Node) *model.Function {
	name := v.text(node.ChildByFieldName("name"))
	path := childPath(owner, name)
	fn := model.NewFunction(name, path, owner)

	start, end := lineRange(node)
	fn.SetLineno(start)
	fn.SetEndlineno(end)
	fn.SetRuntime(v.guardDepth == 0)
	fn.Async = isAsyncDef(node)

	if params := node.ChildByFieldName("parameters"); params != nil {
		fn.Parameters = v.lowerParameters(params, fn)
	}
	if returns := node.ChildByFieldName("return_type"); returns != nil {
		fn.Returns = v.lowerExpr(returns, fn, name)
	}

	for _, dec := range decorators {
		fn.Decorators = append(fn.Decorators, v.lowerExpr(dec, fn, name))
		v.applyDecoratorLabel(dec, fn)
		if reason, ok := v.recognizeDeprecated(dec, fn); ok {
			fn.Deprecated = reason
		}
	}

	archiveOverload(owner, name, fn)
	owner.Members().Set(name, fn)

	if body := node.ChildByFieldName("body"); body != nil {
		fn.SetDocstring(v.extractLeadingDocstring(body))
	}
	return fn
}

// archiveOverload implements typing.overload semantics: multiple overloads
// of the same function name coexist, so a prior binding flagged Overload
// isn't just dropped when the next signature (or the final implementation)
// takes its place in owner's Members under name — it's archived onto fn's
// Overloads chain first, in declaration order.
func archiveOverload(owner model.Object, name string, fn *model.Function) {
	prev, ok := owner.Members().Get(name)
	if !ok {
		return
	}
	prevFn, ok := prev.(*model.Function)
	if !ok || !prevFn.Overload {
		return
	}
	fn.Overloads = append(append([]*model.Function(nil), prevFn.Overloads...), prevFn)
	// prevFn's own chain is now flattened into fn.Overloads; clear it so
	// re-encoding prevFn (reachable as fn.Overloads[len-1]) doesn't nest
	// the same earlier signatures a second time.
	prevFn.Overloads = nil
}

func isAsyncDef(node *ts.Node) bool {
	n := node.ChildCount()
	for i := uint(0); i < n; i++ {
		child := node.Child(i)
		if child != nil && !child.IsNamed() && child.Kind() == "async" {
			return true
		}
	}
	return false
}
