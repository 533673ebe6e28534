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

// lowerParameters walks a `parameters` node, tracking the `/` and `*`
// separators to classify each entry's ParameterKind (positional-only,
// positional-or-keyword, var-positional, keyword-only, var-keyword).
func (v *Visitor) lowerParameters(params *ts.Node, fn *model.Function) []*model.Parameter {
	n := params.NamedChildCount()
	out := make([]*model.Parameter, 0, n)
	seenStar := false

	for i := uint(0); i < n; i++ {
		child := params.NamedChild(i)
		switch child.Kind() {
		case "positional_separator":
			for _, p := range out {
				if p.ParamKind == model.ParamPositionalOrKeyword {
					p.ParamKind = model.ParamPositionalOnly
				}
			}
			continue
		case "keyword_separator":
			seenStar = true
			continue
		case "list_splat_pattern":
			seenStar = true
			out = append(out, v.lowerParameter(child, fn, model.ParamVarPositional))
			continue
		case "dictionary_splat_pattern":
			out = append(out, v.lowerParameter(child, fn, model.ParamVarKeyword))
			continue
		}
		kind := model.ParamPositionalOrKeyword
		if seenStar {
			kind = model.ParamKeywordOnly
		}
		out = append(out, v.lowerParameter(child, fn, kind))
	}
	return out
}

func (v *Visitor) lowerParameter(node *ts.Node, fn *model.Function, kind model.ParameterKind) *model.Parameter {
	p := &model.Parameter{ParamKind: kind}
	switch node.Kind() {
	case "identifier":
		p.Name = v.text(node)
	case "typed_parameter":
		p.Name = v.text(node.NamedChild(0))
		if t := node.ChildByFieldName("type"); t != nil {
			p.Annotation = v.lowerExpr(t, fn, p.Name)
		}
	case "default_parameter":
		p.Name = v.text(node.ChildByFieldName("name"))
		p.Default = v.lowerExpr(node.ChildByFieldName("value"), fn, p.Name)
	case "typed_default_parameter":
		p.Name = v.text(node.ChildByFieldName("name"))
		if t := node.ChildByFieldName("type"); t != nil {
			p.Annotation = v.lowerExpr(t, fn, p.Name)
		}
		p.Default = v.lowerExpr(node.ChildByFieldName("value"), fn, p.Name)
	case "list_splat_pattern", "dictionary_splat_pattern":
		if node.NamedChildCount() > 0 {
			inner := node.NamedChild(0)
			if inner.Kind() == "typed_parameter" {
				p.Name = v.text(inner.NamedChild(0))
				if t := inner.ChildByFieldName("type"); t != nil {
					p.Annotation = v.lowerExpr(t, fn, p.Name)
				}
			} else {
				p.Name = v.text(inner)
			}
		}
	default:
		p.Name = v.text(node)
	}
	return p
}
