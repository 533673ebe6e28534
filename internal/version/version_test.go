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
package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionDefaultsToDevOrModuleVersion(t *testing.T) {
	v := GetVersion()
	assert.NotEmpty(t, v)
}

func TestGetBuildInfoIncludesGoVersion(t *testing.T) {
	info := GetBuildInfo()
	assert.NotEmpty(t, info.GoVersion)
	assert.Equal(t, GetVersion(), info.Version)
}

func TestIsReleaseFalseForDevBuilds(t *testing.T) {
	if version != "dev" {
		t.Skip("linker-injected version present, dev-build assumption does not hold")
	}
	assert.False(t, IsRelease())
}

func TestIsReleaseTrueForSemverTag(t *testing.T) {
	old := version
	version = "1.2.3"
	defer func() { version = old }()
	assert.True(t, IsRelease())
}
