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

// Package config is the shape of the `.config/apitree.yaml` config file.
// `cmd/root.go:initConfig` has viper read that file, but nothing in this
// module unmarshals it into Config: the CLI takes only `searchPaths` from
// it, through viper directly.
package config

import (
	"fmt"
	"strings"
)

// validDocstyles mirrors the docstring package's three named parser
// styles plus "auto".
var validDocstyles = []string{"auto", "google", "numpy", "sphinx"}

// Config is the whole of `.config/apitree.yaml`, in the shape
// `viper.Unmarshal` would fill.
type Config struct {
	// SearchPaths are prepended to the finder's search path list, ahead
	// of any `--search` flags.
	SearchPaths []string `mapstructure:"searchPaths" yaml:"searchPaths"`
	// Docstyle selects the default docstring section parser when
	// `--docstyle` is not passed: one of "auto", "google", "numpy",
	// "sphinx".
	Docstyle string `mapstructure:"docstyle" yaml:"docstyle"`
	// ResolveAliases is the file's counterpart of `--resolve-aliases`; the
	// flag's default does not read it.
	ResolveAliases bool `mapstructure:"resolveAliases" yaml:"resolveAliases"`
	// ResolveExternal is the file's counterpart of `--resolve-external`;
	// the flag's default does not read it.
	ResolveExternal bool `mapstructure:"resolveExternal" yaml:"resolveExternal"`
	// LogLevel is one of TRACE, DEBUG, INFO, SUCCESS, WARNING, ERROR,
	// CRITICAL. initConfig sets the log level from `APITREE_LOG_LEVEL` and
	// `-v/--verbose` only, not from this field.
	LogLevel string `mapstructure:"logLevel" yaml:"logLevel"`
	// ConfigFile is the path given by `--config`; it is not read from the
	// file itself.
	ConfigFile string `mapstructure:"configFile" yaml:"-"`
}

// Clone deep-copies c, so callers can hand a config to concurrent
// dump/check invocations without aliasing its slice fields.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	if c.SearchPaths != nil {
		clone.SearchPaths = make([]string, len(c.SearchPaths))
		copy(clone.SearchPaths, c.SearchPaths)
	}
	return &clone
}

// Validate checks the fields initConfig can't enforce via flag parsing
// alone: Docstyle must be one of the parser package's named styles.
func (c *Config) Validate() error {
	if c.Docstyle == "" {
		return nil
	}
	style := strings.ToLower(c.Docstyle)
	for _, v := range validDocstyles {
		if style == v {
			return nil
		}
	}
	return fmt.Errorf("invalid docstyle %q: must be one of %s", c.Docstyle, strings.Join(validDocstyles, ", "))
}
