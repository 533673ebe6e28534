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

func TestParameterRequiredNoDefault(t *testing.T) {
	p := &Parameter{Name: "width", ParamKind: ParamPositionalOrKeyword}
	assert.True(t, p.Required())
}

func TestParameterNotRequiredWithDefault(t *testing.T) {
	p := &Parameter{Name: "height", ParamKind: ParamPositionalOrKeyword, Default: &expr.Constant{ConstKind: expr.ConstInt, Text: "0"}}
	assert.False(t, p.Required())
}

func TestParameterVariadicNeverRequired(t *testing.T) {
	args := &Parameter{Name: "args", ParamKind: ParamVarPositional}
	kwargs := &Parameter{Name: "kwargs", ParamKind: ParamVarKeyword}
	assert.False(t, args.Required())
	assert.False(t, kwargs.Required())
}

func TestParameterKindString(t *testing.T) {
	assert.Equal(t, "positional-only", ParamPositionalOnly.String())
	assert.Equal(t, "positional-or-keyword", ParamPositionalOrKeyword.String())
	assert.Equal(t, "variadic positional", ParamVarPositional.String())
	assert.Equal(t, "keyword-only", ParamKeywordOnly.String())
	assert.Equal(t, "variadic keyword", ParamVarKeyword.String())
}
