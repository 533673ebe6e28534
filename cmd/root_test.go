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
package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSearchPathsAppendsFlagAfterConfig(t *testing.T) {
	viper.Set("searchPaths", []string{"src"})
	t.Cleanup(func() { viper.Set("searchPaths", nil) })

	got := searchPaths([]string{"vendor"})
	assert.Equal(t, []string{"src", "vendor"}, got)
}

func TestSearchPathsNoFlagReturnsConfigOnly(t *testing.T) {
	viper.Set("searchPaths", []string{"src"})
	t.Cleanup(func() { viper.Set("searchPaths", nil) })

	got := searchPaths(nil)
	assert.Equal(t, []string{"src"}, got)
}

func TestExpandPathResolvesHome(t *testing.T) {
	got, err := expandPath("~")
	assert.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestUsageErrorfWrapsErrUsage(t *testing.T) {
	err := usageErrorf("bad flag %q", "--nope")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, err.Error(), "--nope")
}
