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

// Members is an ordered mapping from local name to child Object, insertion
// order preserved and used for documentation ordering (invariant 1: every
// child is found via its parent's members under its own name).
type Members struct {
	order []string
	byKey map[string]Object
}

// NewMembers returns an empty, ready-to-use Members map.
func NewMembers() *Members {
	return &Members{byKey: make(map[string]Object)}
}

// Set inserts or replaces the member bound to name, preserving the
// original insertion position on replace.
func (m *Members) Set(name string, obj Object) {
	if m.byKey == nil {
		m.byKey = make(map[string]Object)
	}
	if _, exists := m.byKey[name]; !exists {
		m.order = append(m.order, name)
	}
	m.byKey[name] = obj
}

// Get returns the member bound to name, or nil, false if absent.
func (m *Members) Get(name string) (Object, bool) {
	if m == nil {
		return nil, false
	}
	obj, ok := m.byKey[name]
	return obj, ok
}

// Delete removes the member bound to name, if present. Deletion
// propagates: the caller is responsible for detaching the removed
// object's parent pointer and updating any reverse alias index it held.
func (m *Members) Delete(name string) {
	if m == nil {
		return
	}
	if _, ok := m.byKey[name]; !ok {
		return
	}
	delete(m.byKey, name)
	for i, k := range m.order {
		if k == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Names returns member names in insertion order.
func (m *Members) Names() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of members.
func (m *Members) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// All iterates members in insertion order, yielding (name, object) pairs.
func (m *Members) All(yield func(name string, obj Object) bool) {
	if m == nil {
		return
	}
	for _, k := range m.order {
		if !yield(k, m.byKey[k]) {
			return
		}
	}
}
