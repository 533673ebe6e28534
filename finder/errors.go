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

import "fmt"

// NotFoundError is raised when pkg cannot be located on any search path.
type NotFoundError struct {
	Package string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("package %q not found on any search path", e.Package)
}

// UnhandledEditableModuleError is raised when a PEP 660
// `__editable___*_finder.py` shim contains no recognizable MAPPING entry.
// `.pth` files never raise it.
type UnhandledEditableModuleError struct {
	Path string
}

func (e *UnhandledEditableModuleError) Error() string {
	return fmt.Sprintf("editable pointer %q does not match a recognized .pth or PEP 660 finder shim format", e.Path)
}

// BuiltinModuleError is raised when a file-path query is made against a
// built-in module that has no backing source file (e.g. `sys`, compiled
// into the interpreter rather than shipped as a `.py`).
type BuiltinModuleError struct {
	Module string
}

func (e *BuiltinModuleError) Error() string {
	return fmt.Sprintf("module %q is a built-in with no source file", e.Module)
}
