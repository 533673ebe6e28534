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

func TestModernizeOptionalBecomesUnionWithNone(t *testing.T) {
	// Optional[int] -> int | None
	original := &Subscript{Value: name("Optional"), Index: name("int")}

	got := Modernize(original)

	assert.Equal(t, "int | None", Render(got))
}

func TestModernizeUnionFlattensToBitOrChain(t *testing.T) {
	// Union[int, str, None] -> int | str | None
	original := &Subscript{Value: name("Union"), Index: &Tuple{Elements: []Expr{
		name("int"), name("str"), &Constant{ConstKind: ConstNone, Text: "None"},
	}}}

	got := Modernize(original)

	assert.Equal(t, "int | str | None", Render(got))
}

func TestModernizeQualifiedTypingOptional(t *testing.T) {
	// typing.Optional[int] -> int | None
	original := &Subscript{Value: &Attribute{Value: name("typing"), Attr: "Optional"}, Index: name("int")}

	got := Modernize(original)

	assert.Equal(t, "int | None", Render(got))
}

func TestModernizeLegacyGenericAliases(t *testing.T) {
	cases := map[string]string{"List": "list", "Dict": "dict", "Set": "set", "FrozenSet": "frozenset", "Tuple": "tuple", "Type": "type"}
	for legacy, builtin := range cases {
		original := &Subscript{Value: name(legacy), Index: name("int")}
		got := Modernize(original)
		assert.Equal(t, builtin+"[int]", Render(got), "legacy alias %s", legacy)
	}
}

func TestModernizeIsIdempotent(t *testing.T) {
	original := &Subscript{Value: name("Optional"), Index: name("int")}

	once := Modernize(original)
	twice := Modernize(once)

	assert.Equal(t, Render(once), Render(twice))
}

func TestModernizeRecursesIntoBinOpOperands(t *testing.T) {
	// Optional[int] | None: an Optional nested inside a BinOp operand is
	// still modernized.
	tree := &BinOp{Op: BinBitOr, Left: &Subscript{Value: name("Optional"), Index: name("int")}, Right: &Constant{ConstKind: ConstNone, Text: "None"}}

	got := Modernize(tree)

	assert.Equal(t, "int | None | None", Render(got))
}

func TestModernizeLeavesUnrelatedSubscriptAlone(t *testing.T) {
	original := &Subscript{Value: name("list"), Index: name("int")}
	got := Modernize(original)
	assert.Equal(t, "list[int]", Render(got))
}

func TestModernizeNonSubscriptPassesThrough(t *testing.T) {
	n := name("plain")
	assert.Same(t, n, Modernize(n))
}

func TestModernizeEmptyUnionIsEmptyTuple(t *testing.T) {
	original := &Subscript{Value: name("Union"), Index: &Tuple{}}
	got := Modernize(original)
	assert.Equal(t, "()", Render(got))
}
