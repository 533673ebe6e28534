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

// extractLeadingDocstring returns the docstring of a module/class/function
// body: its first statement, if that statement is a bare string
// expression. Section parsing (Google/Numpy/Sphinx) is an independent
// collaborator invoked on demand, not performed here.
func (v *Visitor) extractLeadingDocstring(body *ts.Node) *model.Docstring {
	if body.NamedChildCount() == 0 {
		return nil
	}
	first := body.NamedChild(0)
	if first.Kind() != "expression_statement" || first.NamedChildCount() == 0 {
		return nil
	}
	str := first.NamedChild(0)
	if str.Kind() != "string" {
		return nil
	}
	start, end := lineRange(str)
	return &model.Docstring{
		Value:     stringContent(str, v),
		Style:     model.DocstringStyleAuto,
		Lineno:    start,
		Endlineno: end,
	}
}
