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

// queryImports captures `import X.Y`, `import X.Y as Z`, `from X import Y`,
// `from X import Y as Z`, and `from X import *`.
const queryImports = `
(import_statement
  name: (dotted_name) @module) @import

(import_statement
  name: (aliased_import
    name: (dotted_name) @module
    alias: (identifier) @alias)) @import

(import_from_statement
  module_name: (dotted_name) @from_module
  name: (dotted_name) @name) @import_from

(import_from_statement
  module_name: (relative_import) @from_module
  name: (dotted_name) @name) @import_from

(import_from_statement
  module_name: (dotted_name) @from_module
  name: (aliased_import
    name: (dotted_name) @name
    alias: (identifier) @alias)) @import_from

(import_from_statement
  module_name: (dotted_name) @from_module
  (wildcard_import) @wildcard) @import_from
`

func init() { queryRegistry["imports"] = queryImports }
