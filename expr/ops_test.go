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

func TestUnaryOperatorString(t *testing.T) {
	assert.Equal(t, "not ", UnaryNot.String())
	assert.Equal(t, "~", UnaryInvert.String())
	assert.Equal(t, "+", UnaryAdd.String())
	assert.Equal(t, "-", UnarySub.String())
}

func TestBinaryOperatorStringAndPrecedenceOrdering(t *testing.T) {
	assert.Equal(t, "+", BinAdd.String())
	assert.Equal(t, "**", BinPow.String())
	assert.Equal(t, "|", BinBitOr.String())

	assert.Less(t, BinBitOr.precedence(), BinAddSubPrecedence())
	assert.Less(t, BinAddSubPrecedence(), BinMulDivPrecedence())
	assert.Less(t, BinMulDivPrecedence(), BinPow.precedence())
}

// helpers exposing the unexported precedence constants for a single
// representative operator, so the ordering assertions above read cleanly.
func BinAddSubPrecedence() int { return BinAdd.precedence() }
func BinMulDivPrecedence() int { return BinMult.precedence() }

func TestCompareOperatorString(t *testing.T) {
	assert.Equal(t, "==", CmpEq.String())
	assert.Equal(t, "is not", CmpIsNot.String())
	assert.Equal(t, "not in", CmpNotIn.String())
}

func TestUnaryOpPrecedenceDistinguishesNot(t *testing.T) {
	notOp := &UnaryOp{Op: UnaryNot, Operand: name("x")}
	negOp := &UnaryOp{Op: UnarySub, Operand: name("x")}
	assert.NotEqual(t, notOp.Precedence(), negOp.Precedence())
}

func TestBoolOpPrecedenceAndVsOr(t *testing.T) {
	and := &BoolOp{Op: BoolAnd, Values: []Expr{name("a"), name("b")}}
	or := &BoolOp{Op: BoolOr, Values: []Expr{name("a"), name("b")}}
	assert.Greater(t, and.Precedence(), or.Precedence())
}

func TestKindsAreDistinctPerNodeType(t *testing.T) {
	nodes := []Expr{
		&Constant{}, &Name{}, &Attribute{}, &Subscript{}, &Tuple{}, &List{}, &Set{},
		&Dict{}, &Comprehension{}, &Slice{}, &UnaryOp{}, &BinOp{}, &BoolOp{}, &Compare{},
		&Call{}, &Keyword{}, &Starred{}, &DoubleStarred{}, &Lambda{}, &IfExp{}, &NamedExpr{},
		&Yield{}, &YieldFrom{}, &JoinedStr{},
	}
	seen := make(map[NodeKind]bool)
	for _, n := range nodes {
		assert.False(t, seen[n.Kind()], "duplicate NodeKind for %T", n)
		seen[n.Kind()] = true
	}
}
