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
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apitree/apitree/expr"
)

func TestFunctionKind(t *testing.T) {
	fn := NewFunction("resize", "widgets.resize", nil)
	assert.Equal(t, KindFunction, fn.Kind())
}

func TestRequiredParametersExcludesDefaultedAndVariadic(t *testing.T) {
	fn := NewFunction("resize", "widgets.resize", nil)
	fn.Parameters = []*Parameter{
		{Name: "self", ParamKind: ParamPositionalOrKeyword},
		{Name: "width", ParamKind: ParamPositionalOrKeyword},
		{Name: "height", ParamKind: ParamPositionalOrKeyword, Default: &expr.Constant{ConstKind: expr.ConstInt, Text: "0"}},
		{Name: "args", ParamKind: ParamVarPositional},
		{Name: "kwargs", ParamKind: ParamVarKeyword},
	}

	required := fn.RequiredParameters()

	var names []string
	for _, p := range required {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"self", "width"}, names)
}

func TestRequiredParametersEmptyWhenNone(t *testing.T) {
	fn := NewFunction("noop", "widgets.noop", nil)
	assert.Empty(t, fn.RequiredParameters())
}
