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

// Package jsonmodel is the structural JSON (de)serializer over the model
// package, the sole consumer of its tagged-variant interface from outside
// the tree itself. It owns none of the domain logic: it only walks an
// already-built model.Object graph (Encode) or rebuilds one from JSON
// (Decode). Both directions go through map[string]any; there are no
// per-variant JSON structs.
package jsonmodel

import (
	"sort"

	"github.com/apitree/apitree/docstring"
	"github.com/apitree/apitree/expr"
	"github.com/apitree/apitree/model"
)

// Encode serializes obj per spec's JSON format: every node carries "kind"
// and "name"; every other key is included only when present/non-default.
// With full set, derived fields ("path", "filepath", "is_public") are
// added alongside the structural ones.
func Encode(obj model.Object, full bool) map[string]any {
	if obj == nil {
		return nil
	}
	out := map[string]any{
		"kind": obj.Kind().String(),
		"name": obj.Name(),
	}

	if lineno, ok := obj.Lineno(); ok {
		out["lineno"] = lineno
	}
	if endlineno, ok := obj.Endlineno(); ok {
		out["endlineno"] = endlineno
	}
	if !obj.Runtime() {
		out["runtime"] = false
	}
	if pub := obj.PublicFlag(); pub != model.VisibilityUnset {
		out["public"] = pub == model.VisibilityPublic
	}
	if exports, ok := obj.Exports(); ok {
		out["exports"] = exports
	}
	if imports := obj.Imports(); len(imports) > 0 {
		out["imports"] = imports
	}
	if ds := obj.Docstring(); ds != nil {
		out["docstring"] = encodeDocstring(ds, full)
	}
	if labels := obj.Labels(); len(labels) > 0 {
		members := labels.Members()
		sort.Strings(members)
		out["labels"] = members
	}
	if tps := obj.TypeParameters(); len(tps) > 0 {
		out["type_parameters"] = encodeTypeParameters(tps)
	}
	if a := obj.Analysis(); a != model.AnalysisNone {
		out["analysis"] = a.String()
	}
	if members := encodeMembers(obj, full); len(members) > 0 {
		out["members"] = members
	}

	switch o := obj.(type) {
	case *model.Module:
		// no variant-specific keys beyond the common set
	case *model.Class:
		if len(o.BaseExprs) > 0 {
			out["bases"] = encodeExprList(o.BaseExprs)
		}
		if len(o.Decorators) > 0 {
			out["decorators"] = encodeExprList(o.Decorators)
		}
	case *model.Function:
		out["parameters"] = encodeParameters(o.Parameters)
		if o.Returns != nil {
			out["returns"] = expr.Render(o.Returns)
		}
		if len(o.Decorators) > 0 {
			out["decorators"] = encodeExprList(o.Decorators)
		}
		if o.Deprecated != nil {
			out["deprecated"] = o.Deprecated.Value()
		}
		if len(o.Overloads) > 0 {
			overloads := make([]map[string]any, len(o.Overloads))
			for i, ov := range o.Overloads {
				overloads[i] = Encode(ov, full)
			}
			out["overloads"] = overloads
		}
	case *model.Attribute:
		if o.Annotation != nil {
			out["annotation"] = expr.Render(o.Annotation)
		}
		if o.Value != nil {
			out["value"] = expr.Render(o.Value)
		}
		if o.Deprecated != nil {
			out["deprecated"] = o.Deprecated.Value()
		}
	case *model.TypeAlias:
		if o.Value != nil {
			out["value"] = expr.Render(o.Value)
		}
	case *model.Alias:
		out["target_path"] = o.TargetPath
		if o.Inherited {
			out["inherited"] = true
		}
	}

	if full {
		out["path"] = obj.Path()
		out["is_public"] = obj.IsPublic()
		if m, ok := obj.(*model.Module); ok {
			out["filepath"] = m.Filepath
		}
	}

	return out
}

func encodeMembers(obj model.Object, full bool) []map[string]any {
	members := obj.Members()
	if members == nil || members.Len() == 0 {
		return nil
	}
	out := make([]map[string]any, 0, members.Len())
	for _, name := range members.Names() {
		member, _ := members.Get(name)
		out = append(out, Encode(member, full))
	}
	return out
}

func encodeExprList(exprs []expr.Expr) []string {
	out := make([]string, len(exprs))
	for i, e := range exprs {
		out[i] = expr.Render(e)
	}
	return out
}

func encodeParameters(params []*model.Parameter) []map[string]any {
	out := make([]map[string]any, len(params))
	for i, p := range params {
		entry := map[string]any{
			"name": p.Name,
			"kind": parameterKindString(p.ParamKind),
		}
		if p.Annotation != nil {
			entry["annotation"] = expr.Render(p.Annotation)
		}
		if p.Default != nil {
			entry["default"] = expr.Render(p.Default)
		}
		out[i] = entry
	}
	return out
}

func parameterKindString(k model.ParameterKind) string {
	switch k {
	case model.ParamPositionalOnly:
		return "positional-only"
	case model.ParamPositionalOrKeyword:
		return "positional-or-keyword"
	case model.ParamVarPositional:
		return "variadic-positional"
	case model.ParamKeywordOnly:
		return "keyword-only"
	case model.ParamVarKeyword:
		return "variadic-keyword"
	default:
		return "positional-or-keyword"
	}
}

func encodeTypeParameters(tps []*model.TypeParameter) []map[string]any {
	out := make([]map[string]any, len(tps))
	for i, tp := range tps {
		entry := map[string]any{
			"name": tp.Name,
			"kind": typeParameterKindString(tp.Kind),
		}
		if tp.Bound != nil {
			entry["bound"] = expr.Render(tp.Bound)
		}
		if len(tp.Constraints) > 0 {
			entry["constraints"] = encodeExprList(tp.Constraints)
		}
		if tp.Default != nil {
			entry["default"] = expr.Render(tp.Default)
		}
		out[i] = entry
	}
	return out
}

func typeParameterKindString(k model.TypeParameterKind) string {
	switch k {
	case model.TypeParamTypeVarTuple:
		return "type-var-tuple"
	case model.TypeParamParamSpec:
		return "param-spec"
	default:
		return "type-var"
	}
}

// encodeDocstring serializes a Docstring's raw text/style, and, when full
// is set, its parsed sections — computed here on demand per spec §4.1
// rather than stored on the model.Docstring itself.
func encodeDocstring(d *model.Docstring, full bool) map[string]any {
	out := map[string]any{
		"value": d.Value,
		"style": d.Style.String(),
	}
	if d.Lineno != 0 {
		out["lineno"] = d.Lineno
	}
	if d.Endlineno != 0 {
		out["endlineno"] = d.Endlineno
	}
	if full {
		if sections := docstring.Parse(d.Value, d.Style); len(sections) > 0 {
			out["sections"] = encodeSections(sections)
		}
	}
	return out
}

func encodeSections(sections []docstring.Section) []map[string]any {
	out := make([]map[string]any, len(sections))
	for i, s := range sections {
		entry := map[string]any{"kind": s.Kind.String()}
		if s.Title != "" {
			entry["title"] = s.Title
		}
		switch v := s.Value.(type) {
		case []docstring.Element:
			entry["value"] = encodeElements(v)
		case docstring.Admonition:
			entry["value"] = map[string]any{"title": v.Title, "content": v.Content}
		default:
			entry["value"] = v
		}
		out[i] = entry
	}
	return out
}

func encodeElements(elements []docstring.Element) []map[string]any {
	out := make([]map[string]any, len(elements))
	for i, e := range elements {
		entry := map[string]any{}
		if e.Name != "" {
			entry["name"] = e.Name
		}
		if e.Annotation != "" {
			entry["annotation"] = e.Annotation
		}
		if e.Description != "" {
			entry["description"] = e.Description
		}
		if e.Default != "" {
			entry["default"] = e.Default
		}
		out[i] = entry
	}
	return out
}
