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
package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apitree/apitree/collection"
	"github.com/apitree/apitree/internal/logging"
	"github.com/apitree/apitree/model"
	"github.com/apitree/apitree/visitor"
)

func TestExpandWildcardsBindsExposedMembers(t *testing.T) {
	col := collection.New()
	utils := model.NewModule("utils", "utils", nil)
	fn := model.NewFunction("helper", "utils.helper", utils)
	utils.Members().Set("helper", fn)
	require.NoError(t, col.Attach(utils))

	main := model.NewModule("main", "main", nil)
	require.NoError(t, col.Attach(main))

	pending := []visitor.PendingWildcard{{Owner: main, FromModule: "utils"}}

	err := expandWildcards(col, pending, logging.New(logging.LevelCritical+1))

	require.NoError(t, err)
	got, ok := main.Members().Get("helper")
	require.True(t, ok)
	alias, isAlias := got.(*model.Alias)
	require.True(t, isAlias)
	assert.True(t, alias.Wildcard)
	target, resolved := alias.Target()
	require.True(t, resolved)
	assert.Same(t, fn, target)
}

func TestExpandWildcardsChainsThroughIntermediateModule(t *testing.T) {
	col := collection.New()
	base := model.NewModule("base", "base", nil)
	fn := model.NewFunction("thing", "base.thing", base)
	base.Members().Set("thing", fn)
	require.NoError(t, col.Attach(base))

	mid := model.NewModule("mid", "mid", nil)
	require.NoError(t, col.Attach(mid))

	top := model.NewModule("top", "top", nil)
	require.NoError(t, col.Attach(top))

	pending := []visitor.PendingWildcard{
		{Owner: top, FromModule: "mid"},
		{Owner: mid, FromModule: "base"},
	}

	err := expandWildcards(col, pending, logging.New(logging.LevelCritical+1))

	require.NoError(t, err)
	_, okMid := mid.Members().Get("thing")
	assert.True(t, okMid, "mid must be expanded before top re-exports from it")
	_, okTop := top.Members().Get("thing")
	assert.True(t, okTop)
}

func TestExpandWildcardsDetectsCircularChain(t *testing.T) {
	col := collection.New()
	a := model.NewModule("a", "a", nil)
	require.NoError(t, col.Attach(a))
	b := model.NewModule("b", "b", nil)
	require.NoError(t, col.Attach(b))

	pending := []visitor.PendingWildcard{
		{Owner: a, FromModule: "b"},
		{Owner: b, FromModule: "a"},
	}

	err := expandWildcards(col, pending, logging.New(logging.LevelCritical+1))

	assert.ErrorIs(t, err, ErrCircularWildcard)
}

func TestExpandWildcardsSkipsUnloadedSource(t *testing.T) {
	col := collection.New()
	main := model.NewModule("main", "main", nil)
	require.NoError(t, col.Attach(main))

	pending := []visitor.PendingWildcard{{Owner: main, FromModule: "ghost"}}

	err := expandWildcards(col, pending, logging.New(logging.LevelCritical+1))

	require.NoError(t, err)
	assert.Equal(t, 0, main.Members().Len())
}
