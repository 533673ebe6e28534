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
package alias

import (
	"errors"
	"fmt"
)

// ErrExternalNotAllowed is returned when an alias targets a module outside
// the collection and the resolver was not configured to load it.
var ErrExternalNotAllowed = errors.New("alias: external module resolution not allowed")

// AliasResolutionError reports an alias whose target path could not be
// walked to a concrete object.
type AliasResolutionError struct {
	AliasPath  string
	TargetPath string
	Reason     string
}

func (e *AliasResolutionError) Error() string {
	return fmt.Sprintf("alias %q: cannot resolve target %q: %s", e.AliasPath, e.TargetPath, e.Reason)
}

func NewAliasResolutionError(aliasPath, targetPath, reason string) *AliasResolutionError {
	return &AliasResolutionError{AliasPath: aliasPath, TargetPath: targetPath, Reason: reason}
}

// CyclicAliasError reports a cycle discovered while walking alias chains,
// keyed by (containing_module_path, alias_path) pairs per spec §4.5.
type CyclicAliasError struct {
	Chain []string
}

func (e *CyclicAliasError) Error() string {
	msg := "alias: cyclic resolution detected: "
	for i, link := range e.Chain {
		if i > 0 {
			msg += " -> "
		}
		msg += link
	}
	return msg
}

func NewCyclicAliasError(chain []string) *CyclicAliasError {
	return &CyclicAliasError{Chain: append([]string(nil), chain...)}
}
