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
package diff

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/apitree/apitree/expr"
)

// exprEqual reports whether old and new are the same expression after
// modernization, per spec §4.7's "return type expression equality (after
// modernization) gates RETURN_CHANGED_TYPE". Modernizes and renders both
// sides first so
// a `ConstNone`-wrapped "raw" decoded expression compares equal to the
// live parse tree it came from, then falls back to a structural
// comparison of the rendered text rather than walking the Expr tree by
// hand, since go-cmp already has to handle unexported fields via the
// exporter option elsewhere in this codebase's tests.
func exprEqual(old, new expr.Expr) bool {
	if old == nil || new == nil {
		return old == new
	}
	return cmp.Equal(expr.Render(expr.Modernize(old)), expr.Render(expr.Modernize(new)), cmpopts.EquateEmpty())
}

// exprText renders e for a Breakage's Old/New fields, or "" for a nil
// expression (an omitted annotation/value/return).
func exprText(e expr.Expr) string {
	if e == nil {
		return ""
	}
	return expr.Render(e)
}
