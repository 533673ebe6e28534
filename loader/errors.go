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
	"errors"
	"fmt"
)

// ErrCircularWildcard is returned when `from x import *` statements form a
// cycle, resolved per the open question in spec §9 as a load-time error
// rather than a silently-broken partial expansion.
var ErrCircularWildcard = errors.New("loader: circular wildcard import")

// ErrPackageNotFound is returned when the finder locates nothing for the
// requested root package.
var ErrPackageNotFound = errors.New("loader: package not found")

// LoadingError is spec §7's `LoadingError`: the requested package's layout
// could not be found on any search path.
type LoadingError struct {
	Package string
	Cause   error
}

func (e *LoadingError) Error() string {
	return fmt.Sprintf("loading %q: %v", e.Package, e.Cause)
}

func (e *LoadingError) Unwrap() error { return e.Cause }

// NewLoadingError builds a LoadingError for pkg wrapping the finder's
// underlying failure.
func NewLoadingError(pkg string, cause error) *LoadingError {
	return &LoadingError{Package: pkg, Cause: cause}
}

// UnimportableModuleError is spec §7's `UnimportableModuleError`: a file
// was found on disk but could not be parsed (static analysis) or
// dynamically imported (inspection fallback).
type UnimportableModuleError struct {
	Path  string
	Cause error
}

func (e *UnimportableModuleError) Error() string {
	return fmt.Sprintf("cannot import %q: %v", e.Path, e.Cause)
}

func (e *UnimportableModuleError) Unwrap() error { return e.Cause }

// NewUnimportableModuleError builds an UnimportableModuleError for path
// wrapping the parse/import failure that made it unreadable.
func NewUnimportableModuleError(path string, cause error) *UnimportableModuleError {
	return &UnimportableModuleError{Path: path, Cause: cause}
}

// WrapVisitError wraps a per-file parse/visit failure with its path as an
// UnimportableModuleError.
func WrapVisitError(path string, err error) error {
	if err == nil {
		return nil
	}
	return NewUnimportableModuleError(path, err)
}

// WrapLoadError wraps a top-level Load failure with the requested package
// as a LoadingError.
func WrapLoadError(pkg string, err error) error {
	if err == nil {
		return nil
	}
	return NewLoadingError(pkg, err)
}
