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
	"github.com/stretchr/testify/require"
)

func TestAliasKind(t *testing.T) {
	a := NewAlias("resize_widget", "widgets.resize_widget", "widgets.resize", nil)
	assert.Equal(t, KindAlias, a.Kind())
}

func TestAliasResolveTargetBeforeResolutionErrors(t *testing.T) {
	a := NewAlias("resize_widget", "widgets.resize_widget", "widgets.resize", nil)

	_, err := a.ResolveTarget()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resize_widget")
}

func TestAliasSetTargetThenResolveTarget(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	target := NewFunction("resize", "widgets.resize", mod)
	a := NewAlias("resize_widget", "widgets.resize_widget", "widgets.resize", mod)

	a.SetTarget(target)

	path, err := a.ResolveTarget()
	require.NoError(t, err)
	assert.Equal(t, "widgets.resize", path)

	got, resolved := a.Target()
	assert.True(t, resolved)
	assert.Same(t, target, got)
}
