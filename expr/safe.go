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
package expr

// Resolve walks an arbitrary expression tree and resolves every Name node
// reachable within it to a fully-qualified path, raising on the first
// unresolved name. Used by callers that need every identifier in an
// annotation or base-class expression to resolve cleanly (e.g. building a
// strict export map).
func Resolve(e Expr) ([]string, error) {
	var paths []string
	var walkErr error
	Walk(e, func(child Expr) bool {
		if walkErr != nil {
			return false
		}
		if n, ok := child.(*Name); ok {
			p, err := n.Path()
			if err != nil {
				walkErr = err
				return false
			}
			paths = append(paths, p)
		}
		return true
	})
	return paths, walkErr
}

// SafeResolve is Resolve's non-raising counterpart: unresolved names are
// logged via logf and simply omitted from the result instead of aborting
// the whole walk, matching the get()/safe_get() dual-entry-point idiom
// used across the system for best-effort resolution paths.
func SafeResolve(e Expr, logf func(format string, args ...any)) []string {
	var paths []string
	Walk(e, func(child Expr) bool {
		n, ok := child.(*Name)
		if !ok {
			return true
		}
		if p, ok := n.SafePath(logf); ok {
			paths = append(paths, p)
		}
		return true
	})
	return paths
}
