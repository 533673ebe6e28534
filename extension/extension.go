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

// Package extension is the observer-callback hook mechanism external
// tooling can register against a load run (spec §9's "explicit log sink
// over global logger state" extends to this: hooks are passed in, never
// discovered via global registration), grounded on the teacher's
// logging.Logger being an explicit, passed-around value rather than a
// package-global singleton consulted by side effect.
package extension

import (
	"fmt"

	"github.com/apitree/apitree/model"
)

// Event identifies a point in the load pipeline a Hook can observe.
type Event int

const (
	// EventModuleVisited fires once per module after the static visitor
	// (and any dynamic-inspection fallback) has lowered it, before stub
	// merging.
	EventModuleVisited Event = iota
	// EventAliasesResolved fires once, after the alias-resolution pass
	// (if requested) has run to a fixed point.
	EventAliasesResolved
	// EventLoadComplete fires once, after the whole pipeline finishes.
	EventLoadComplete
)

// Hook observes load-pipeline events. A Hook must not mutate mod outside
// of what the event's own contract allows (spec's "extension callbacks"
// lifecycle rule); this package only defines the shape, it does not
// enforce it.
type Hook interface {
	Observe(event Event, mod *model.Module)
}

// Hooks is an ordered set of registered observers, invoked in
// registration order.
type Hooks []Hook

// Fire invokes every registered hook for event/mod, in order, recovering
// any hook panic into an ExtensionError rather than taking the whole load
// pipeline down with it.
func (hs Hooks) Fire(event Event, mod *model.Module) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ExtensionError{Reason: fmt.Sprintf("%v", r)}
		}
	}()
	for _, h := range hs {
		h.Observe(event, mod)
	}
	return nil
}

// Registry is a name-addressable set of hooks, for tooling that lets
// users enable extensions by name (config file, CLI flag) rather than
// wiring Go code directly.
type Registry struct {
	byName map[string]Hook
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Hook)}
}

// Register binds name to hook.
func (r *Registry) Register(name string, hook Hook) {
	r.byName[name] = hook
}

// Get returns the hook bound to name, or an ExtensionNotLoadedError if
// nothing registered under that name.
func (r *Registry) Get(name string) (Hook, error) {
	h, ok := r.byName[name]
	if !ok {
		return nil, &ExtensionNotLoadedError{Name: name}
	}
	return h, nil
}

// ExtensionError wraps a failure raised by a Hook itself (including a
// recovered panic), as opposed to a configuration problem.
type ExtensionError struct {
	Reason string
}

func (e *ExtensionError) Error() string {
	return fmt.Sprintf("extension: %s", e.Reason)
}

// ExtensionNotLoadedError is raised when tooling asks a Registry for an
// extension by name that was never registered.
type ExtensionNotLoadedError struct {
	Name string
}

func (e *ExtensionNotLoadedError) Error() string {
	return fmt.Sprintf("extension %q is not loaded", e.Name)
}
