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
package finder

// builtinModules is the fixed set of CPython modules compiled into the
// interpreter rather than shipped as a `.py`/`.pyi` file on any search
// path. Not exhaustive across every CPython build/version; covers the
// names a loader is actually likely to hit while walking imports.
var builtinModules = map[string]bool{
	"sys": true, "builtins": true, "_thread": true, "_io": true,
	"_collections": true, "_socket": true, "_ast": true, "_codecs": true,
	"_warnings": true, "_weakref": true, "_imp": true, "_abc": true,
	"marshal": true, "errno": true, "gc": true, "itertools": true,
	"posix": true, "time": true, "_locale": true, "_signal": true,
	"_sre": true, "_functools": true, "_operator": true, "_stat": true,
	"_string": true, "atexit": true,
}

// IsBuiltinModule reports whether name is a known built-in module with no
// backing source file, so a miss on every search path can be diagnosed as
// a BuiltinModuleError rather than NotFoundError.
func IsBuiltinModule(name string) bool {
	return builtinModules[name]
}
