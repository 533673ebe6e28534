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
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// SuggestBump inspects breakages and the ref `check` ran against to
// recommend the next version: breaking findings force a major bump,
// additions-only (no breakages) a minor bump, soft-only findings a patch
// bump. baseRef need not be a valid semver tag; when it isn't,
// SuggestBump returns "" (nothing to recommend a bump relative to).
func SuggestBump(baseRef string, breakages []Breakage) string {
	tag := baseRef
	if !strings.HasPrefix(tag, "v") {
		tag = "v" + tag
	}
	if !semver.IsValid(tag) {
		return ""
	}

	major, minor, patch := splitVersion(semver.Canonical(tag))

	breaking, soft := countBySeverity(breakages)
	switch {
	case breaking > 0:
		major++
		minor, patch = 0, 0
	case soft > 0:
		patch++
	default:
		minor++
		patch = 0
	}

	return fmt.Sprintf("v%d.%d.%d", major, minor, patch)
}

func splitVersion(canonical string) (major, minor, patch int) {
	parts := strings.SplitN(strings.TrimPrefix(canonical, "v"), ".", 3)
	if len(parts) > 0 {
		major, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		minor, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		patch, _ = strconv.Atoi(parts[2])
	}
	return
}
