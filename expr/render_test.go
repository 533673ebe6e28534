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
package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func name(id string) *Name { return &Name{Identifier: id} }

func TestRenderConstants(t *testing.T) {
	assert.Equal(t, "42", Render(&Constant{ConstKind: ConstInt, Text: "42"}))
	assert.Equal(t, "'hi'", Render(&Constant{ConstKind: ConstStr, Text: "hi"}))
	assert.Equal(t, "...", Render(&Constant{ConstKind: ConstEllipsis}))
}

func TestRenderName(t *testing.T) {
	assert.Equal(t, "widget", Render(name("widget")))
}

func TestRenderAttribute(t *testing.T) {
	attr := &Attribute{Value: name("self"), Attr: "width"}
	assert.Equal(t, "self.width", Render(attr))
}

func TestRenderSubscript(t *testing.T) {
	sub := &Subscript{Value: name("list"), Index: name("int")}
	assert.Equal(t, "list[int]", Render(sub))
}

func TestRenderSlice(t *testing.T) {
	sl := &Slice{Lower: &Constant{ConstKind: ConstInt, Text: "1"}, Upper: &Constant{ConstKind: ConstInt, Text: "5"}}
	sub := &Subscript{Value: name("x"), Index: sl}
	assert.Equal(t, "x[1:5]", Render(sub))
}

func TestRenderContainers(t *testing.T) {
	assert.Equal(t, "(1, 2)", Render(&Tuple{Elements: []Expr{
		&Constant{ConstKind: ConstInt, Text: "1"}, &Constant{ConstKind: ConstInt, Text: "2"},
	}}))
	assert.Equal(t, "[1, 2]", Render(&List{Elements: []Expr{
		&Constant{ConstKind: ConstInt, Text: "1"}, &Constant{ConstKind: ConstInt, Text: "2"},
	}}))
	assert.Equal(t, "{1, 2}", Render(&Set{Elements: []Expr{
		&Constant{ConstKind: ConstInt, Text: "1"}, &Constant{ConstKind: ConstInt, Text: "2"},
	}}))
}

func TestRenderDictWithSpread(t *testing.T) {
	d := &Dict{Entries: []DictEntry{
		{Key: &Constant{ConstKind: ConstStr, Text: "a"}, Value: &Constant{ConstKind: ConstInt, Text: "1"}},
		{Key: nil, Value: name("extra")},
	}}
	assert.Equal(t, "{'a': 1, **extra}", Render(d))
}

func TestRenderComprehensionVariants(t *testing.T) {
	listComp := &Comprehension{
		CompKind: ComprehensionList,
		Element:  name("x"),
		Clauses:  []CompClause{{Target: name("x"), Iter: name("items")}},
	}
	assert.Equal(t, "[x for x in items]", Render(listComp))

	dictComp := &Comprehension{
		CompKind: ComprehensionDict,
		Key:      name("k"),
		Element:  name("v"),
		Clauses:  []CompClause{{Target: name("k"), Iter: name("items"), Ifs: []Expr{name("k")}}},
	}
	assert.Equal(t, "{k: v for k in items if k}", Render(dictComp))

	genComp := &Comprehension{
		CompKind: ComprehensionGenerator,
		Element:  name("x"),
		Clauses:  []CompClause{{Target: name("x"), Iter: name("items"), Async: true}},
	}
	assert.Equal(t, "(x async for x in items)", Render(genComp))
}

func TestRenderUnaryOp(t *testing.T) {
	assert.Equal(t, "-x", Render(&UnaryOp{Op: UnarySub, Operand: name("x")}))
	assert.Equal(t, "not x", Render(&UnaryOp{Op: UnaryNot, Operand: name("x")}))
}

func TestRenderBinOpAddsParensOnlyWhenNeeded(t *testing.T) {
	// (a + b) * c needs parens around the addition.
	inner := &BinOp{Op: BinAdd, Left: name("a"), Right: name("b")}
	outer := &BinOp{Op: BinMult, Left: inner, Right: name("c")}
	assert.Equal(t, "(a + b) * c", Render(outer))

	// a * b + c does not need parens: * binds tighter than +.
	inner2 := &BinOp{Op: BinMult, Left: name("a"), Right: name("b")}
	outer2 := &BinOp{Op: BinAdd, Left: inner2, Right: name("c")}
	assert.Equal(t, "a * b + c", Render(outer2))
}

func TestRenderPowIsRightAssociative(t *testing.T) {
	// a ** (b ** c) renders without parens; (a ** b) ** c keeps its own.
	rightNested := &BinOp{Op: BinPow, Left: name("a"), Right: &BinOp{Op: BinPow, Left: name("b"), Right: name("c")}}
	assert.Equal(t, "a ** b ** c", Render(rightNested))

	leftNested := &BinOp{Op: BinPow, Left: &BinOp{Op: BinPow, Left: name("a"), Right: name("b")}, Right: name("c")}
	assert.Equal(t, "(a ** b) ** c", Render(leftNested))
}

func TestRenderPowWithUnaryRightOperandNeedsNoParens(t *testing.T) {
	// 2 ** -1 parses fine unparenthesized in Python even though UnaryOp's
	// own precedence reads lower than BinPow's.
	neg := &BinOp{Op: BinPow, Left: name("a"), Right: &UnaryOp{Op: UnarySub, Operand: name("b")}}
	assert.Equal(t, "a ** -b", Render(neg))

	pos := &BinOp{Op: BinPow, Left: name("a"), Right: &UnaryOp{Op: UnaryAdd, Operand: name("b")}}
	assert.Equal(t, "a ** +b", Render(pos))

	inverted := &BinOp{Op: BinPow, Left: name("a"), Right: &UnaryOp{Op: UnaryInvert, Operand: name("b")}}
	assert.Equal(t, "a ** ~b", Render(inverted))
}

func TestRenderBoolOp(t *testing.T) {
	op := &BoolOp{Op: BoolOr, Values: []Expr{name("a"), name("b"), name("c")}}
	assert.Equal(t, "a or b or c", Render(op))
}

func TestRenderCompareChained(t *testing.T) {
	cmp := &Compare{
		Operands: []Expr{name("a"), name("b"), name("c")},
		Ops:      []CompareOperator{CmpLt, CmpLtE},
	}
	assert.Equal(t, "a < b <= c", Render(cmp))
}

func TestRenderCallWithArgsAndKeywords(t *testing.T) {
	call := &Call{
		Func: name("resize"),
		Args: []Expr{name("self"), &Constant{ConstKind: ConstInt, Text: "10"}},
		Keywords: []*Keyword{
			{Name: "height", Value: &Constant{ConstKind: ConstInt, Text: "20"}},
			{Name: "", Value: &DoubleStarred{Value: name("extra")}},
		},
	}
	assert.Equal(t, "resize(self, 10, height=20, **extra)", Render(call))
}

func TestRenderStarredAndDoubleStarred(t *testing.T) {
	assert.Equal(t, "*args", Render(&Starred{Value: name("args")}))
	assert.Equal(t, "**kwargs", Render(&DoubleStarred{Value: name("kwargs")}))
}

func TestRenderLambda(t *testing.T) {
	l := &Lambda{
		Parameters: []*LambdaParameter{
			{Name: "x", ParamKind: LambdaParamPositionalOrKeyword},
			{Name: "y", ParamKind: LambdaParamPositionalOrKeyword, Default: &Constant{ConstKind: ConstInt, Text: "1"}},
			{Name: "args", ParamKind: LambdaParamVarPositional},
			{Name: "kwargs", ParamKind: LambdaParamVarKeyword},
		},
		Body: name("x"),
	}
	assert.Equal(t, "lambda x, y=1, *args, **kwargs: x", Render(l))
}

func TestRenderIfExpAndNamedExpr(t *testing.T) {
	ifExp := &IfExp{Body: name("a"), Test: name("cond"), OrElse: name("b")}
	assert.Equal(t, "a if cond else b", Render(ifExp))

	walrus := &NamedExpr{Target: name("x"), Value: &Constant{ConstKind: ConstInt, Text: "1"}}
	assert.Equal(t, "x := 1", Render(walrus))
}

func TestRenderYieldAndYieldFrom(t *testing.T) {
	assert.Equal(t, "yield", Render(&Yield{}))
	assert.Equal(t, "yield x", Render(&Yield{Value: name("x")}))
	assert.Equal(t, "yield from x", Render(&YieldFrom{Value: name("x")}))
}

func TestRenderJoinedStr(t *testing.T) {
	j := &JoinedStr{Parts: []JoinedStrPart{
		{Text: "hello "},
		{Expr: name("name")},
	}}
	assert.Equal(t, "f'hello {name}'", Render(j))
}

func TestRenderNilIsEmpty(t *testing.T) {
	assert.Equal(t, "", Render(nil))
}
