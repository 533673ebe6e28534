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

// Package version exposes build-time identity: the release tag (injected
// via -ldflags at release build time, falling back to the Go module's own
// VCS metadata for `go install`/dev builds), the commit, and the toolchain
// that produced the binary.
package version

import (
	"runtime/debug"

	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
)

// version, commit, and date are overridden at release build time via:
//
//	go build -ldflags "-X github.com/apitree/apitree/internal/version.version=v1.2.3 \
//	  -X github.com/apitree/apitree/internal/version.commit=abcdef0 \
//	  -X github.com/apitree/apitree/internal/version.date=2026-07-30"
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// BuildInfo is the structured form printed by `apitree version --output json`.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"goVersion"`
	Module    string `json:"module,omitempty"`
}

// GetVersion returns the release tag when one was injected at build time,
// otherwise the module's own pseudo-version from its embedded build info,
// otherwise "dev".
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

// GetBuildInfo assembles the full build-identity record, falling back to
// runtime/debug's embedded VCS stamping for whatever the linker didn't set.
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version: GetVersion(),
		Commit:  commit,
		Date:    date,
	}

	bi, ok := debug.ReadBuildInfo()
	if ok {
		info.GoVersion = bi.GoVersion
		info.Module = bi.Main.Path
	}

	if info.Commit == "" && ok {
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				info.Commit = setting.Value
			case "vcs.time":
				if info.Date == "" {
					info.Date = setting.Value
				}
			}
		}
	}

	return info
}

// IsRelease reports whether the injected version string is a well-formed
// semantic version tag, as opposed to a "dev" or pseudo-version build.
func IsRelease() bool {
	v := GetVersion()
	if v == "" || v == "dev" {
		return false
	}
	tag := v
	if tag[0] != 'v' {
		tag = "v" + tag
	}
	return semver.IsValid(tag) && !module.IsPseudoVersion(tag)
}
