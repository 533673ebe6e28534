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

	"github.com/apitree/apitree/expr"
)

// lowerExpr converts a tree-sitter-python expression node into the typed
// expr.Expr tree, binding any Name node to scope/member so it can be
// re-resolved later (spec §4.2's name-binding contract). Node kinds this
// function does not specifically recognize fall back to an opaque
// Constant carrying the raw source text, so an unusual or newly-added
// grammar construct degrades gracefully instead of panicking the visitor.
func (v *Visitor) lowerExpr(node *ts.Node, scope expr.Scope, member string) expr.Expr {
	if node == nil {
		return nil
	}
	switch node.Kind() {
	case "identifier":
		return &expr.Name{Identifier: v.text(node), Scope: scope, Member: member}
	case "true", "false":
		return &expr.Constant{ConstKind: expr.ConstBool, Text: v.text(node)}
	case "none":
		return &expr.Constant{ConstKind: expr.ConstNone, Text: "None"}
	case "integer":
		return &expr.Constant{ConstKind: expr.ConstInt, Text: v.text(node)}
	case "float":
		return &expr.Constant{ConstKind: expr.ConstFloat, Text: v.text(node)}
	case "ellipsis":
		return &expr.Constant{ConstKind: expr.ConstEllipsis, Text: "..."}
	case "string":
		return v.lowerString(node, scope, member)
	case "attribute":
		value := v.lowerExpr(node.ChildByFieldName("object"), scope, member)
		attr := node.ChildByFieldName("attribute")
		return &expr.Attribute{Value: value, Attr: v.text(attr)}
	case "subscript":
		value := v.lowerExpr(node.ChildByFieldName("value"), scope, member)
		idx := v.lowerSubscriptIndex(node, scope, member)
		return &expr.Subscript{Value: value, Index: idx}
	case "slice":
		return v.lowerSlice(node, scope, member)
	case "tuple":
		return &expr.Tuple{Elements: v.lowerNamedChildren(node, scope, member)}
	case "list":
		return &expr.List{Elements: v.lowerNamedChildren(node, scope, member)}
	case "set":
		return &expr.Set{Elements: v.lowerNamedChildren(node, scope, member)}
	case "dictionary":
		return v.lowerDict(node, scope, member)
	case "list_comprehension":
		return v.lowerComprehension(node, scope, member, expr.ComprehensionList)
	case "set_comprehension":
		return v.lowerComprehension(node, scope, member, expr.ComprehensionSet)
	case "dictionary_comprehension":
		return v.lowerComprehension(node, scope, member, expr.ComprehensionDict)
	case "generator_expression":
		return v.lowerComprehension(node, scope, member, expr.ComprehensionGenerator)
	case "unary_operator":
		return v.lowerUnary(node, scope, member)
	case "not_operator":
		operand := v.lowerExpr(node.ChildByFieldName("argument"), scope, member)
		return &expr.UnaryOp{Op: expr.UnaryNot, Operand: operand}
	case "binary_operator":
		return v.lowerBinary(node, scope, member)
	case "boolean_operator":
		return v.lowerBoolOp(node, scope, member)
	case "comparison_operator":
		return v.lowerCompare(node, scope, member)
	case "call":
		return v.lowerCall(node, scope, member)
	case "keyword_argument":
		name := node.ChildByFieldName("name")
		val := v.lowerExpr(node.ChildByFieldName("value"), scope, member)
		return &expr.Keyword{Name: v.text(name), Value: val}
	case "list_splat":
		return &expr.Starred{Value: v.lowerExpr(node.NamedChild(0), scope, member)}
	case "dictionary_splat":
		return &expr.DoubleStarred{Value: v.lowerExpr(node.NamedChild(0), scope, member)}
	case "lambda":
		return v.lowerLambda(node, scope, member)
	case "conditional_expression":
		body := v.lowerExpr(node.ChildByFieldName("consequence"), scope, member)
		test := v.lowerExpr(node.ChildByFieldName("condition"), scope, member)
		orElse := v.lowerExpr(node.ChildByFieldName("alternative"), scope, member)
		return &expr.IfExp{Body: body, Test: test, OrElse: orElse}
	case "named_expression":
		target := v.lowerExpr(node.ChildByFieldName("name"), scope, member)
		name, _ := target.(*expr.Name)
		val := v.lowerExpr(node.ChildByFieldName("value"), scope, member)
		return &expr.NamedExpr{Target: name, Value: val}
	case "yield":
		arg := node.ChildByFieldName("argument")
		if arg != nil && arg.Kind() == "from_clause" && arg.NamedChildCount() > 0 {
			return &expr.YieldFrom{Value: v.lowerExpr(arg.NamedChild(0), scope, member)}
		}
		return &expr.Yield{Value: v.lowerExpr(arg, scope, member)}
	case "parenthesized_expression":
		if node.NamedChildCount() > 0 {
			return v.lowerExpr(node.NamedChild(0), scope, member)
		}
		return &expr.Tuple{}
	default:
		return &expr.Constant{ConstKind: expr.ConstStr, Text: v.text(node)}
	}
}

func (v *Visitor) text(node *ts.Node) string {
	if node == nil {
		return ""
	}
	return node.Utf8Text(v.source)
}

func (v *Visitor) lowerNamedChildren(node *ts.Node, scope expr.Scope, member string) []expr.Expr {
	n := node.NamedChildCount()
	out := make([]expr.Expr, 0, n)
	for i := uint(0); i < n; i++ {
		out = append(out, v.lowerExpr(node.NamedChild(i), scope, member))
	}
	return out
}

func (v *Visitor) lowerSubscriptIndex(node *ts.Node, scope expr.Scope, member string) expr.Expr {
	n := node.NamedChildCount()
	if n <= 1 {
		return nil
	}
	if n == 2 {
		return v.lowerExpr(node.NamedChild(1), scope, member)
	}
	elems := make([]expr.Expr, 0, n-1)
	for i := uint(1); i < n; i++ {
		elems = append(elems, v.lowerExpr(node.NamedChild(i), scope, member))
	}
	return &expr.Tuple{Elements: elems}
}

func (v *Visitor) lowerSlice(node *ts.Node, scope expr.Scope, member string) expr.Expr {
	s := &expr.Slice{}
	if lower := node.ChildByFieldName("start"); lower != nil {
		s.Lower = v.lowerExpr(lower, scope, member)
	}
	if upper := node.ChildByFieldName("stop"); upper != nil {
		s.Upper = v.lowerExpr(upper, scope, member)
	}
	if step := node.ChildByFieldName("step"); step != nil {
		s.Step = v.lowerExpr(step, scope, member)
	}
	return s
}

func (v *Visitor) lowerDict(node *ts.Node, scope expr.Scope, member string) expr.Expr {
	d := &expr.Dict{}
	n := node.NamedChildCount()
	for i := uint(0); i < n; i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "pair":
			key := v.lowerExpr(child.ChildByFieldName("key"), scope, member)
			val := v.lowerExpr(child.ChildByFieldName("value"), scope, member)
			d.Entries = append(d.Entries, expr.DictEntry{Key: key, Value: val})
		case "dictionary_splat":
			val := v.lowerExpr(child.NamedChild(0), scope, member)
			d.Entries = append(d.Entries, expr.DictEntry{Key: nil, Value: val})
		}
	}
	return d
}

func (v *Visitor) lowerComprehension(node *ts.Node, scope expr.Scope, member string, kind expr.ComprehensionKind) expr.Expr {
	c := &expr.Comprehension{CompKind: kind}
	body := node.NamedChild(0)
	if kind == expr.ComprehensionDict && body != nil && body.Kind() == "pair" {
		c.Key = v.lowerExpr(body.ChildByFieldName("key"), scope, member)
		c.Element = v.lowerExpr(body.ChildByFieldName("value"), scope, member)
	} else {
		c.Element = v.lowerExpr(body, scope, member)
	}
	n := node.NamedChildCount()
	for i := uint(1); i < n; i++ {
		clauseNode := node.NamedChild(i)
		switch clauseNode.Kind() {
		case "for_in_clause":
			clause := expr.CompClause{
				Target: v.lowerExpr(clauseNode.ChildByFieldName("left"), scope, member),
				Iter:   v.lowerExpr(clauseNode.ChildByFieldName("right"), scope, member),
			}
			c.Clauses = append(c.Clauses, clause)
		case "if_clause":
			if len(c.Clauses) > 0 {
				last := &c.Clauses[len(c.Clauses)-1]
				if clauseNode.NamedChildCount() > 0 {
					last.Ifs = append(last.Ifs, v.lowerExpr(clauseNode.NamedChild(0), scope, member))
				}
			}
		}
	}
	return c
}

func (v *Visitor) lowerUnary(node *ts.Node, scope expr.Scope, member string) expr.Expr {
	operatorNode := node.ChildByFieldName("operator")
	operand := v.lowerExpr(node.ChildByFieldName("argument"), scope, member)
	op := expr.UnarySub
	switch v.text(operatorNode) {
	case "+":
		op = expr.UnaryAdd
	case "~":
		op = expr.UnaryInvert
	}
	return &expr.UnaryOp{Op: op, Operand: operand}
}

var binaryOperatorSymbols = map[string]expr.BinaryOperator{
	"+": expr.BinAdd, "-": expr.BinSub, "*": expr.BinMult, "@": expr.BinMatMult,
	"/": expr.BinDiv, "//": expr.BinFloorDiv, "%": expr.BinMod, "**": expr.BinPow,
	"<<": expr.BinLShift, ">>": expr.BinRShift, "|": expr.BinBitOr, "^": expr.BinBitXor, "&": expr.BinBitAnd,
}

func (v *Visitor) lowerBinary(node *ts.Node, scope expr.Scope, member string) expr.Expr {
	left := v.lowerExpr(node.ChildByFieldName("left"), scope, member)
	right := v.lowerExpr(node.ChildByFieldName("right"), scope, member)
	opText := v.text(node.ChildByFieldName("operator"))
	op, ok := binaryOperatorSymbols[opText]
	if !ok {
		op = expr.BinAdd
	}
	return &expr.BinOp{Op: op, Left: left, Right: right}
}

func (v *Visitor) lowerBoolOp(node *ts.Node, scope expr.Scope, member string) expr.Expr {
	left := v.lowerExpr(node.ChildByFieldName("left"), scope, member)
	right := v.lowerExpr(node.ChildByFieldName("right"), scope, member)
	op := expr.BoolAnd
	if strings.Contains(v.text(node), " or ") {
		op = expr.BoolOr
	}
	return &expr.BoolOp{Op: op, Values: []expr.Expr{left, right}}
}

var compareOperatorSymbols = map[string]expr.CompareOperator{
	"==": expr.CmpEq, "!=": expr.CmpNotEq, "<": expr.CmpLt, "<=": expr.CmpLtE,
	">": expr.CmpGt, ">=": expr.CmpGtE, "is": expr.CmpIs, "in": expr.CmpIn,
}

func (v *Visitor) lowerCompare(node *ts.Node, scope expr.Scope, member string) expr.Expr {
	n := node.NamedChildCount()
	operands := make([]expr.Expr, 0, n)
	for i := uint(0); i < n; i++ {
		operands = append(operands, v.lowerExpr(node.NamedChild(i), scope, member))
	}
	var ops []expr.CompareOperator
	childCount := node.ChildCount()
	for i := uint(0); i < childCount; i++ {
		child := node.Child(i)
		if child == nil || child.IsNamed() {
			continue
		}
		text := v.text(child)
		if op, ok := compareOperatorSymbols[text]; ok {
			ops = append(ops, op)
		}
	}
	return &expr.Compare{Operands: operands, Ops: ops}
}

func (v *Visitor) lowerCall(node *ts.Node, scope expr.Scope, member string) expr.Expr {
	fn := v.lowerExpr(node.ChildByFieldName("function"), scope, member)
	call := &expr.Call{Func: fn}
	args := node.ChildByFieldName("arguments")
	if args == nil {
		return call
	}
	n := args.NamedChildCount()
	for i := uint(0); i < n; i++ {
		child := args.NamedChild(i)
		if child.Kind() == "keyword_argument" {
			name := v.text(child.ChildByFieldName("name"))
			val := v.lowerExpr(child.ChildByFieldName("value"), scope, member)
			call.Keywords = append(call.Keywords, &expr.Keyword{Name: name, Value: val})
			continue
		}
		if child.Kind() == "dictionary_splat" {
			val := v.lowerExpr(child.NamedChild(0), scope, member)
			call.Keywords = append(call.Keywords, &expr.Keyword{Name: "", Value: &expr.DoubleStarred{Value: val}})
			continue
		}
		call.Args = append(call.Args, v.lowerExpr(child, scope, member))
	}
	return call
}

func (v *Visitor) lowerLambda(node *ts.Node, scope expr.Scope, member string) expr.Expr {
	lam := &expr.Lambda{}
	if params := node.ChildByFieldName("parameters"); params != nil {
		n := params.NamedChildCount()
		for i := uint(0); i < n; i++ {
			lam.Parameters = append(lam.Parameters, v.lowerLambdaParameter(params.NamedChild(i), scope, member))
		}
	}
	lam.Body = v.lowerExpr(node.ChildByFieldName("body"), scope, member)
	return lam
}

func (v *Visitor) lowerLambdaParameter(node *ts.Node, scope expr.Scope, member string) *expr.LambdaParameter {
	p := &expr.LambdaParameter{}
	switch node.Kind() {
	case "list_splat_pattern":
		p.ParamKind = expr.LambdaParamVarPositional
		p.Name = v.text(node.NamedChild(0))
	case "dictionary_splat_pattern":
		p.ParamKind = expr.LambdaParamVarKeyword
		p.Name = v.text(node.NamedChild(0))
	case "default_parameter":
		p.Name = v.text(node.ChildByFieldName("name"))
		p.Default = v.lowerExpr(node.ChildByFieldName("value"), scope, member)
	case "keyword_separator":
		p.ParamKind = expr.LambdaParamKeywordOnly
	default:
		p.Name = v.text(node)
	}
	return p
}
