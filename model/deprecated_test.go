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

func TestNewDeprecatedFromTrueBool(t *testing.T) {
	d := NewDeprecated(true)
	require.NotNil(t, d)
	flag, ok := d.(DeprecatedFlag)
	require.True(t, ok)
	assert.Equal(t, true, flag.Value())
}

func TestNewDeprecatedFromFalseBoolIsNil(t *testing.T) {
	assert.Nil(t, NewDeprecated(false))
}

func TestNewDeprecatedFromString(t *testing.T) {
	d := NewDeprecated("use widget_v2 instead")
	require.NotNil(t, d)
	reason, ok := d.(DeprecatedReason)
	require.True(t, ok)
	assert.Equal(t, "use widget_v2 instead", reason.Value())
}

func TestNewDeprecatedFromUnsupportedTypeIsNil(t *testing.T) {
	assert.Nil(t, NewDeprecated(42))
}
