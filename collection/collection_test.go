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
package collection

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apitree/apitree/model"
)

func TestAttachAndGet(t *testing.T) {
	c := New()
	mod := model.NewModule("widgets", "widgets", nil)

	require.NoError(t, c.Attach(mod))

	got, ok := c.Get("widgets")
	require.True(t, ok)
	assert.Same(t, mod, got)
}

func TestAttachDuplicatePathErrors(t *testing.T) {
	c := New()
	first := model.NewModule("widgets", "widgets", nil)
	second := model.NewModule("widgets", "widgets", nil)
	require.NoError(t, c.Attach(first))

	err := c.Attach(second)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "widgets")
}

func TestGetMissingReturnsFalse(t *testing.T) {
	c := New()
	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestDeleteRemovesModule(t *testing.T) {
	c := New()
	mod := model.NewModule("widgets", "widgets", nil)
	require.NoError(t, c.Attach(mod))

	c.Delete("widgets")

	_, ok := c.Get("widgets")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestPathsAreSorted(t *testing.T) {
	c := New()
	require.NoError(t, c.Attach(model.NewModule("zeta", "zeta", nil)))
	require.NoError(t, c.Attach(model.NewModule("alpha", "alpha", nil)))
	require.NoError(t, c.Attach(model.NewModule("mu", "mu", nil)))

	assert.Equal(t, []string{"alpha", "mu", "zeta"}, c.Paths())
}

func TestModulesMatchesSortedPaths(t *testing.T) {
	c := New()
	zeta := model.NewModule("zeta", "zeta", nil)
	alpha := model.NewModule("alpha", "alpha", nil)
	require.NoError(t, c.Attach(zeta))
	require.NoError(t, c.Attach(alpha))

	mods := c.Modules()

	require.Len(t, mods, 2)
	assert.Same(t, alpha, mods[0])
	assert.Same(t, zeta, mods[1])
}

func TestLen(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Len())
	require.NoError(t, c.Attach(model.NewModule("widgets", "widgets", nil)))
	assert.Equal(t, 1, c.Len())
}

func TestAttachIsConcurrencySafe(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := string(rune('a' + i%26))
			_ = c.Attach(model.NewModule(path, path, nil))
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 26)
}
