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

func TestWalkVisitsEveryNameInNestedTree(t *testing.T) {
	tree := &Call{
		Func: name("resize"),
		Args: []Expr{
			&BinOp{Op: BinAdd, Left: name("width"), Right: name("height")},
		},
		Keywords: []*Keyword{
			{Name: "strict", Value: name("flag")},
		},
	}

	var names []string
	Walk(tree, func(e Expr) bool {
		if n, ok := e.(*Name); ok {
			names = append(names, n.Identifier)
		}
		return true
	})

	assert.ElementsMatch(t, []string{"resize", "width", "height", "flag"}, names)
}

func TestWalkStopsDescentWhenVisitReturnsFalse(t *testing.T) {
	tree := &Attribute{Value: name("self"), Attr: "width"}

	var visited []string
	Walk(tree, func(e Expr) bool {
		if attr, ok := e.(*Attribute); ok {
			visited = append(visited, "attribute:"+attr.Attr)
			return false
		}
		if n, ok := e.(*Name); ok {
			visited = append(visited, "name:"+n.Identifier)
		}
		return true
	})

	assert.Equal(t, []string{"attribute:width"}, visited)
}

func TestWalkNilIsNoOp(t *testing.T) {
	called := false
	Walk(nil, func(e Expr) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestWalkVisitsComprehensionClauses(t *testing.T) {
	comp := &Comprehension{
		CompKind: ComprehensionList,
		Element:  name("x"),
		Clauses: []CompClause{
			{Target: name("x"), Iter: name("items"), Ifs: []Expr{name("cond")}},
		},
	}

	var names []string
	Walk(comp, func(e Expr) bool {
		if n, ok := e.(*Name); ok {
			names = append(names, n.Identifier)
		}
		return true
	})

	assert.ElementsMatch(t, []string{"x", "x", "items", "cond"}, names)
}
