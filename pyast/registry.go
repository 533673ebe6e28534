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
package pyast

// queryRegistry collects every named query this package defines, one
// entry per queries_*.go file's init(). Go guarantees package-level var
// initialization completes before any init() runs, so this map is always
// ready by the time the per-concern files populate it.
var queryRegistry = map[string]string{}
