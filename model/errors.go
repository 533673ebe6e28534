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

import "fmt"

// NameResolutionError is raised by resolve() when a name cannot be bound
// anywhere along the parent chain (spec §4.1 step 3: "if the parent is
// None, raise NameResolutionError").
type NameResolutionError struct {
	Name string
	At   string
}

func (e *NameResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve name %q at %s: no enclosing scope binds it", e.Name, e.At)
}

// NewNameResolutionError builds a NameResolutionError for name looked up
// starting at the object whose path is at.
func NewNameResolutionError(name, at string) *NameResolutionError {
	return &NameResolutionError{Name: name, At: at}
}
