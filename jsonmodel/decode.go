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
package jsonmodel

import (
	"fmt"

	"github.com/apitree/apitree/expr"
	"github.com/apitree/apitree/model"
)

// Decode rebuilds a model.Object tree from data previously produced by
// Encode(obj, full=false). Decoding a full-mode encoding is not supported:
// the derived keys it adds (path, filepath, is_public) are recomputed,
// never replayed. Expression fields (annotation, value, returns, bases,
// decorators) are restored as opaque rendered text rather than re-parsed
// syntax trees — Render on the result reproduces the original text, which
// is all diffing and re-encoding need; name resolution against decoded
// expressions is not supported since their original parse scope is gone.
func Decode(data map[string]any) (model.Object, error) {
	return decodeNode(data, nil)
}

func decodeNode(data map[string]any, parent model.Object) (model.Object, error) {
	kindStr, _ := data["kind"].(string)
	name, _ := data["name"].(string)

	path := name
	if parent != nil {
		path = parent.Path() + "." + name
	}

	var obj model.Object
	switch kindStr {
	case "module":
		obj = model.NewModule(name, path, parent)
	case "class":
		obj = model.NewClass(name, path, parent)
	case "function":
		obj = model.NewFunction(name, path, parent)
	case "attribute":
		obj = model.NewAttribute(name, path, parent)
	case "type_alias":
		obj = model.NewTypeAlias(name, path, parent)
	case "alias":
		targetPath, _ := data["target_path"].(string)
		a := model.NewAlias(name, path, targetPath, parent)
		if inherited, ok := data["inherited"].(bool); ok {
			a.Inherited = inherited
		}
		obj = a
	default:
		return nil, fmt.Errorf("jsonmodel: unknown node kind %q", kindStr)
	}

	decodeCommon(obj, data)

	switch o := obj.(type) {
	case *model.Class:
		if bases, ok := data["bases"].([]any); ok {
			o.BaseExprs = decodeExprList(bases)
		}
		if decorators, ok := data["decorators"].([]any); ok {
			o.Decorators = decodeExprList(decorators)
		}
	case *model.Function:
		if params, ok := data["parameters"].([]any); ok {
			o.Parameters = decodeParameters(params)
		}
		if returns, ok := data["returns"].(string); ok {
			o.Returns = rawExpr(returns)
		}
		if decorators, ok := data["decorators"].([]any); ok {
			o.Decorators = decodeExprList(decorators)
		}
		o.Deprecated = model.NewDeprecated(data["deprecated"])
		if overloads, ok := data["overloads"].([]any); ok {
			o.Overloads = decodeOverloads(overloads, parent)
		}
	case *model.Attribute:
		if annotation, ok := data["annotation"].(string); ok {
			o.Annotation = rawExpr(annotation)
		}
		if value, ok := data["value"].(string); ok {
			o.Value = rawExpr(value)
		}
		o.Deprecated = model.NewDeprecated(data["deprecated"])
	case *model.TypeAlias:
		if value, ok := data["value"].(string); ok {
			o.Value = rawExpr(value)
		}
	}

	if membersData, ok := data["members"].([]any); ok {
		for _, raw := range membersData {
			memberData, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			member, err := decodeNode(memberData, obj)
			if err != nil {
				return nil, err
			}
			obj.Members().Set(member.Name(), member)
		}
	}

	return obj, nil
}

// decodeCommon restores the fields every Object variant shares.
func decodeCommon(obj model.Object, data map[string]any) {
	setter, ok := obj.(interface {
		SetLineno(int)
		SetEndlineno(int)
		SetRuntime(bool)
		SetPublicFlag(model.Visibility)
		SetExports(names []string)
		AddImport(local, dotted string)
		SetAnalysis(model.AnalysisKind)
		SetTypeParameters(tp []*model.TypeParameter)
	})
	if !ok {
		return
	}

	if lineno, ok := asInt(data["lineno"]); ok {
		setter.SetLineno(lineno)
	}
	if endlineno, ok := asInt(data["endlineno"]); ok {
		setter.SetEndlineno(endlineno)
	}
	setter.SetRuntime(true)
	if runtime, ok := data["runtime"].(bool); ok {
		setter.SetRuntime(runtime)
	}
	if public, ok := data["public"].(bool); ok {
		if public {
			setter.SetPublicFlag(model.VisibilityPublic)
		} else {
			setter.SetPublicFlag(model.VisibilityPrivate)
		}
	}
	if exports, ok := data["exports"].([]any); ok {
		setter.SetExports(toStringSlice(exports))
	}
	if imports, ok := data["imports"].(map[string]any); ok {
		for local, dotted := range imports {
			if s, ok := dotted.(string); ok {
				setter.AddImport(local, s)
			}
		}
	}
	if analysisStr, ok := data["analysis"].(string); ok {
		switch analysisStr {
		case "static":
			setter.SetAnalysis(model.AnalysisStatic)
		case "dynamic":
			setter.SetAnalysis(model.AnalysisDynamic)
		}
	}
	if docData, ok := data["docstring"].(map[string]any); ok {
		obj.SetDocstring(decodeDocstring(docData))
	}
	if labels, ok := data["labels"].([]any); ok {
		obj.Labels().Add(toStringSlice(labels)...)
	}
	if tpData, ok := data["type_parameters"].([]any); ok {
		setter.SetTypeParameters(decodeTypeParameters(tpData))
	}
}

func decodeDocstring(data map[string]any) *model.Docstring {
	d := &model.Docstring{}
	if v, ok := data["value"].(string); ok {
		d.Value = v
	}
	if style, ok := data["style"].(string); ok {
		switch style {
		case "google":
			d.Style = model.DocstringStyleGoogle
		case "numpy":
			d.Style = model.DocstringStyleNumpy
		case "sphinx":
			d.Style = model.DocstringStyleSphinx
		default:
			d.Style = model.DocstringStyleAuto
		}
	}
	if lineno, ok := asInt(data["lineno"]); ok {
		d.Lineno = lineno
	}
	if endlineno, ok := asInt(data["endlineno"]); ok {
		d.Endlineno = endlineno
	}
	return d
}

func decodeParameters(data []any) []*model.Parameter {
	out := make([]*model.Parameter, 0, len(data))
	for _, raw := range data {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		p := &model.Parameter{}
		if name, ok := entry["name"].(string); ok {
			p.Name = name
		}
		if kindStr, ok := entry["kind"].(string); ok {
			p.ParamKind = decodeParameterKind(kindStr)
		}
		if annotation, ok := entry["annotation"].(string); ok {
			p.Annotation = rawExpr(annotation)
		}
		if def, ok := entry["default"].(string); ok {
			p.Default = rawExpr(def)
		}
		out = append(out, p)
	}
	return out
}

// decodeOverloads restores the discarded @typing.overload signatures
// archived under a function's "overloads" key. Each is decoded as a
// standalone Function sharing the real binding's parent and path rather
// than as a member of it, mirroring how visitFuncDef archives them.
func decodeOverloads(data []any, parent model.Object) []*model.Function {
	out := make([]*model.Function, 0, len(data))
	for _, raw := range data {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		node, err := decodeNode(entry, parent)
		if err != nil {
			continue
		}
		if fn, ok := node.(*model.Function); ok {
			out = append(out, fn)
		}
	}
	return out
}

func decodeParameterKind(s string) model.ParameterKind {
	switch s {
	case "positional-only":
		return model.ParamPositionalOnly
	case "variadic-positional":
		return model.ParamVarPositional
	case "keyword-only":
		return model.ParamKeywordOnly
	case "variadic-keyword":
		return model.ParamVarKeyword
	default:
		return model.ParamPositionalOrKeyword
	}
}

func decodeTypeParameters(data []any) []*model.TypeParameter {
	out := make([]*model.TypeParameter, 0, len(data))
	for _, raw := range data {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		tp := &model.TypeParameter{}
		if name, ok := entry["name"].(string); ok {
			tp.Name = name
		}
		if kindStr, ok := entry["kind"].(string); ok {
			switch kindStr {
			case "type-var-tuple":
				tp.Kind = model.TypeParamTypeVarTuple
			case "param-spec":
				tp.Kind = model.TypeParamParamSpec
			default:
				tp.Kind = model.TypeParamTypeVar
			}
		}
		if bound, ok := entry["bound"].(string); ok {
			tp.Bound = rawExpr(bound)
		}
		if constraints, ok := entry["constraints"].([]any); ok {
			tp.Constraints = decodeExprList(constraints)
		}
		if def, ok := entry["default"].(string); ok {
			tp.Default = rawExpr(def)
		}
		out = append(out, tp)
	}
	return out
}

func decodeExprList(data []any) []expr.Expr {
	out := make([]expr.Expr, 0, len(data))
	for _, raw := range data {
		if s, ok := raw.(string); ok {
			out = append(out, rawExpr(s))
		}
	}
	return out
}

// rawExpr wraps already-rendered source text as an opaque expr.Constant so
// that expr.Render(rawExpr(s)) == s: decoded expressions are never
// re-parsed, only replayed.
func rawExpr(text string) expr.Expr {
	return &expr.Constant{ConstKind: expr.ConstNone, Text: text}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func toStringSlice(in []any) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
