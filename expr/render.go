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

import "strings"

// Render serializes an expression tree back to Python source text,
// parenthesizing only where precedence or associativity requires it so
// that re-parsing the output reproduces an equivalent tree (spec §4.2:
// "serialization ... inserts parentheses only where precedence or
// associativity requires them").
func Render(e Expr) string {
	var b strings.Builder
	render(&b, e)
	return b.String()
}

// renderChild renders child inside a node of precedence parentPrec, adding
// parentheses when child binds looser. tighterOrEqual also parenthesizes a
// same-precedence child, which renderBinOp sets for the left operand of a
// right-associative `**` so `(a ** b) ** c` keeps its parens while
// `a ** (b ** c)` (the right operand) does not need them.
func renderChild(b *strings.Builder, child Expr, parentPrec int, tighterOrEqual bool) {
	childPrec := child.Precedence()
	needsParens := childPrec < parentPrec || (tighterOrEqual && childPrec == parentPrec)
	if needsParens {
		b.WriteByte('(')
		render(b, child)
		b.WriteByte(')')
		return
	}
	render(b, child)
}

func render(b *strings.Builder, e Expr) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *Constant:
		renderConstant(b, n)
	case *Name:
		b.WriteString(n.Identifier)
	case *Attribute:
		renderChild(b, n.Value, precAtom, false)
		b.WriteByte('.')
		b.WriteString(n.Attr)
	case *Subscript:
		renderChild(b, n.Value, precAtom, false)
		b.WriteByte('[')
		render(b, n.Index)
		b.WriteByte(']')
	case *Slice:
		if n.Lower != nil {
			render(b, n.Lower)
		}
		b.WriteByte(':')
		if n.Upper != nil {
			render(b, n.Upper)
		}
		if n.Step != nil {
			b.WriteByte(':')
			render(b, n.Step)
		}
	case *Tuple:
		renderJoined(b, n.Elements, "(", ", ", ")")
	case *List:
		renderJoined(b, n.Elements, "[", ", ", "]")
	case *Set:
		renderJoined(b, n.Elements, "{", ", ", "}")
	case *Dict:
		renderDict(b, n)
	case *Comprehension:
		renderComprehension(b, n)
	case *UnaryOp:
		b.WriteString(n.Op.String())
		renderChild(b, n.Operand, n.Precedence(), n.Op != UnaryNot)
	case *BinOp:
		renderBinOp(b, n)
	case *BoolOp:
		renderBoolOp(b, n)
	case *Compare:
		renderCompare(b, n)
	case *Call:
		renderCall(b, n)
	case *Keyword:
		renderKeyword(b, n)
	case *Starred:
		b.WriteByte('*')
		render(b, n.Value)
	case *DoubleStarred:
		b.WriteString("**")
		render(b, n.Value)
	case *Lambda:
		renderLambda(b, n)
	case *IfExp:
		render(b, n.Body)
		b.WriteString(" if ")
		render(b, n.Test)
		b.WriteString(" else ")
		render(b, n.OrElse)
	case *NamedExpr:
		render(b, n.Target)
		b.WriteString(" := ")
		render(b, n.Value)
	case *Yield:
		b.WriteString("yield")
		if n.Value != nil {
			b.WriteByte(' ')
			render(b, n.Value)
		}
	case *YieldFrom:
		b.WriteString("yield from ")
		render(b, n.Value)
	case *JoinedStr:
		renderJoinedStr(b, n)
	}
}

func renderConstant(b *strings.Builder, c *Constant) {
	switch c.ConstKind {
	case ConstStr:
		b.WriteByte('\'')
		b.WriteString(c.Text)
		b.WriteByte('\'')
	case ConstEllipsis:
		b.WriteString("...")
	default:
		b.WriteString(c.Text)
	}
}

func renderJoined(b *strings.Builder, elems []Expr, open, sep, close string) {
	b.WriteString(open)
	for i, el := range elems {
		if i > 0 {
			b.WriteString(sep)
		}
		render(b, el)
	}
	b.WriteString(close)
}

func renderDict(b *strings.Builder, d *Dict) {
	b.WriteByte('{')
	for i, entry := range d.Entries {
		if i > 0 {
			b.WriteString(", ")
		}
		if entry.Key == nil {
			b.WriteString("**")
			render(b, entry.Value)
			continue
		}
		render(b, entry.Key)
		b.WriteString(": ")
		render(b, entry.Value)
	}
	b.WriteByte('}')
}

func renderComprehension(b *strings.Builder, c *Comprehension) {
	switch c.CompKind {
	case ComprehensionList:
		b.WriteByte('[')
	case ComprehensionSet:
		b.WriteByte('{')
	case ComprehensionDict:
		b.WriteByte('{')
	default:
		b.WriteByte('(')
	}
	if c.CompKind == ComprehensionDict {
		render(b, c.Key)
		b.WriteString(": ")
		render(b, c.Element)
	} else {
		render(b, c.Element)
	}
	for _, clause := range c.Clauses {
		if clause.Async {
			b.WriteString(" async for ")
		} else {
			b.WriteString(" for ")
		}
		render(b, clause.Target)
		b.WriteString(" in ")
		render(b, clause.Iter)
		for _, cond := range clause.Ifs {
			b.WriteString(" if ")
			render(b, cond)
		}
	}
	switch c.CompKind {
	case ComprehensionList:
		b.WriteByte(']')
	case ComprehensionSet, ComprehensionDict:
		b.WriteByte('}')
	default:
		b.WriteByte(')')
	}
}

func renderBinOp(b *strings.Builder, n *BinOp) {
	prec := n.Precedence()
	renderChild(b, n.Left, prec, n.Op == BinPow)
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
	b.WriteByte(' ')
	if n.Op == BinPow && isRightUnary(n.Right) {
		// CPython's grammar puts a unary operator's operand (`factor`) on
		// the right of `**` directly, so `2 ** -1` needs no parens even
		// though UnaryOp.Precedence() reads lower than BinPow's.
		render(b, n.Right)
		return
	}
	renderChild(b, n.Right, prec, n.Op != BinPow)
}

func isRightUnary(e Expr) bool {
	u, ok := e.(*UnaryOp)
	return ok && u.Op != UnaryNot
}

func renderBoolOp(b *strings.Builder, n *BoolOp) {
	word := " and "
	if n.Op == BoolOr {
		word = " or "
	}
	prec := n.Precedence()
	for i, v := range n.Values {
		if i > 0 {
			b.WriteString(word)
		}
		renderChild(b, v, prec, false)
	}
}

func renderCompare(b *strings.Builder, n *Compare) {
	for i, op := range n.Ops {
		renderChild(b, n.Operands[i], precCompare, false)
		b.WriteByte(' ')
		b.WriteString(op.String())
		b.WriteByte(' ')
	}
	if len(n.Operands) > 0 {
		renderChild(b, n.Operands[len(n.Operands)-1], precCompare, false)
	}
}

func renderCall(b *strings.Builder, n *Call) {
	renderChild(b, n.Func, precAtom, false)
	b.WriteByte('(')
	first := true
	for _, a := range n.Args {
		if !first {
			b.WriteString(", ")
		}
		render(b, a)
		first = false
	}
	for _, k := range n.Keywords {
		if !first {
			b.WriteString(", ")
		}
		renderKeyword(b, k)
		first = false
	}
	b.WriteByte(')')
}

func renderKeyword(b *strings.Builder, k *Keyword) {
	if k.Name == "" {
		// Value is already a *DoubleStarred node (visitor's convention for
		// a **kwargs spread argument), which renders its own "**" prefix.
		render(b, k.Value)
		return
	}
	b.WriteString(k.Name)
	b.WriteByte('=')
	render(b, k.Value)
}

func renderLambda(b *strings.Builder, l *Lambda) {
	b.WriteString("lambda")
	if len(l.Parameters) > 0 {
		b.WriteByte(' ')
	}
	for i, p := range l.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		switch p.ParamKind {
		case LambdaParamVarPositional:
			b.WriteByte('*')
		case LambdaParamVarKeyword:
			b.WriteString("**")
		}
		b.WriteString(p.Name)
		if p.Default != nil {
			b.WriteByte('=')
			render(b, p.Default)
		}
	}
	b.WriteString(": ")
	render(b, l.Body)
}

func renderJoinedStr(b *strings.Builder, j *JoinedStr) {
	b.WriteByte('f')
	b.WriteByte('\'')
	for _, part := range j.Parts {
		if part.Expr != nil {
			b.WriteByte('{')
			render(b, part.Expr)
			b.WriteByte('}')
			continue
		}
		b.WriteString(part.Text)
	}
	b.WriteByte('\'')
}
