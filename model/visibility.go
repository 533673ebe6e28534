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

// Visibility is the tri-valued `public` override on every Object: an
// explicit author decision (true/false) or Unset, meaning "derive it from
// __all__ / naming convention / import status" (see Object.IsPublic).
type Visibility int

const (
	VisibilityUnset Visibility = iota
	VisibilityPublic
	VisibilityPrivate
)
