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

import "sync"

// Module is a loaded `.py`/`.pyi` file or package (`__init__.py`), or a
// namespace package with no backing file.
type Module struct {
	*Base

	Filepath  string
	IsPackage bool
	Stub      bool

	// PendingExportRefs holds unresolved __all__ entries captured by the
	// visitor as name-expressions referring to another module's __all__
	// (spec §4.4 step 2), consumed by the loader's expand_exports pass.
	PendingExportRefs []string

	exportMapOnce sync.Once
	exportMap     map[string]Object
}

// NewModule constructs a Module attached to parent (nil for a package root).
func NewModule(name, path string, parent Object) *Module {
	return &Module{Base: NewBase(name, path, parent)}
}

func (m *Module) Kind() Kind { return KindModule }

func (m *Module) resolve(name string) (string, error) { return resolve(m, name) }
func (m *Module) ResolveName(name string) (string, error) { return m.resolve(name) }
func (m *Module) IsPublic() bool { return IsPublic(m) }

// ExportMap resolves the module's __all__ into actual members, computed
// once and cached (mirrors the teacher's Module.exportMapsOnce pattern).
// Entries whose name does not resolve to a direct member are omitted.
func (m *Module) ExportMap() map[string]Object {
	m.exportMapOnce.Do(func() {
		m.exportMap = make(map[string]Object)
		exports, ok := m.Exports()
		if !ok {
			return
		}
		for _, name := range exports {
			if obj, found := m.Members().Get(name); found {
				m.exportMap[name] = obj
			}
		}
	})
	return m.exportMap
}

// WildcardExposed returns the members a `from module import *` should
// bind when no __all__ is declared: every public, non-imported direct
// member (spec §4.1 is_wildcard_exposed).
func (m *Module) WildcardExposed() []Object {
	if _, hasAll := m.Exports(); hasAll {
		exported := m.ExportMap()
		out := make([]Object, 0, len(exported))
		for _, name := range m.Members().Names() {
			if obj, ok := exported[name]; ok {
				out = append(out, obj)
			}
		}
		return out
	}
	var out []Object
	for _, name := range m.Members().Names() {
		if _, imported := m.Imports()[name]; imported {
			continue
		}
		obj, _ := m.Members().Get(name)
		if obj != nil && obj.IsPublic() {
			out = append(out, obj)
		}
	}
	return out
}
