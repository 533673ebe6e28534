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

// Package collection holds the arena that owns every loaded module for one
// load run, plus a Put-filled cache of source lines used for diagnostics
// and docstring re-parsing.
package collection

import (
	"fmt"
	"sort"
	"sync"

	"github.com/apitree/apitree/model"
)

// ModulesCollection is the single owning arena for every model.Module
// produced by one Load call. Children store non-owning parent pointers
// into this arena (spec §3 EXPANSION: "parent back-references"); the
// collection is the only thing that actually owns a Module.
type ModulesCollection struct {
	mu      sync.RWMutex
	modules map[string]*model.Module
}

// New returns an empty ModulesCollection.
func New() *ModulesCollection {
	return &ModulesCollection{modules: make(map[string]*model.Module)}
}

// Attach registers mod under its dotted path. Attach is the single
// mutex-guarded mutation point every worker-pool visit result passes
// through (spec §5: "within one collection, all mutation is serial").
func (c *ModulesCollection) Attach(mod *model.Module) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.modules[mod.Path()]; exists {
		return fmt.Errorf("collection: module %q already attached", mod.Path())
	}
	c.modules[mod.Path()] = mod
	return nil
}

// Get returns the module at path, if attached.
func (c *ModulesCollection) Get(path string) (*model.Module, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	mod, ok := c.modules[path]
	return mod, ok
}

// Delete removes a module from the arena (e.g. a stub merged away into its
// implementation module). Reverse alias references into it are the
// caller's responsibility to clean up first via Base.RemoveAliasRef.
func (c *ModulesCollection) Delete(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.modules, path)
}

// Paths returns every attached module path, sorted for deterministic
// iteration (merge and export-expansion passes must be order-independent
// in result but deterministic in traversal for reproducible diagnostics).
func (c *ModulesCollection) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths := make([]string, 0, len(c.modules))
	for p := range c.modules {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Modules returns every attached module in deterministic (path-sorted)
// order.
func (c *ModulesCollection) Modules() []*model.Module {
	paths := c.Paths()
	out := make([]*model.Module, 0, len(paths))
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range paths {
		out = append(out, c.modules[p])
	}
	return out
}

// Len reports how many modules are attached.
func (c *ModulesCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.modules)
}
