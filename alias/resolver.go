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

// Package alias lazily resolves model.Alias nodes (import bindings and
// re-exports) to their concrete target object, walking dotted target paths
// across module boundaries with cycle detection and a bounded, optional
// fallback to external-package loading.
package alias

import (
	"context"
	"strings"

	"github.com/apitree/apitree/collection"
	"github.com/apitree/apitree/internal/logging"
	"github.com/apitree/apitree/model"
)

// ExternalLoader loads a module that lives outside the collection being
// resolved (an installed dependency, say). The loader package implements
// this; alias only depends on the narrow interface to avoid importing
// loader (which itself depends on alias for its own resolve-to-fixed-point
// step) and creating an import cycle.
type ExternalLoader interface {
	LoadExternal(ctx context.Context, modulePath string) (*model.Module, error)
}

// Resolver resolves every model.Alias reachable from a ModulesCollection.
type Resolver struct {
	col      *collection.ModulesCollection
	external ExternalLoader
	log      *logging.Logger

	// cache is allocated by NewResolver but not read or written by any
	// Resolver method; resolved targets are cached on each Alias itself
	// via SetTarget.
	cache map[string]bool
}

// NewResolver builds a Resolver over col. external may be nil, in which
// case aliases targeting modules outside col are left unresolved and
// logged at Warning.
func NewResolver(col *collection.ModulesCollection, external ExternalLoader, log *logging.Logger) *Resolver {
	if log == nil {
		log = logging.Global()
	}
	return &Resolver{col: col, external: external, log: log, cache: make(map[string]bool)}
}

// ResolveAll walks every module in the collection and resolves every Alias
// member to a fixed point: aliases that target other aliases are followed
// transitively. Returns the first hard error encountered (a cycle);
// unresolved external targets are logged, not returned as errors, per
// spec's "external resolution is best-effort."
func (r *Resolver) ResolveAll(ctx context.Context) error {
	for _, mod := range r.col.Modules() {
		aliases := collectAliases(mod)
		for _, a := range aliases {
			if _, resolved := a.Target(); resolved {
				continue
			}
			if err := r.resolve(ctx, mod.Path(), a, nil); err != nil {
				var cyc *CyclicAliasError
				if ok := asCyclic(err, &cyc); ok {
					return cyc
				}
				r.log.Warning("%s", err)
			}
		}
	}
	return nil
}

func asCyclic(err error, out **CyclicAliasError) bool {
	if c, ok := err.(*CyclicAliasError); ok {
		*out = c
		return true
	}
	return false
}

// collectAliases walks owner's member tree (and nested classes) gathering
// every *model.Alias reachable from it.
func collectAliases(owner model.Object) []*model.Alias {
	var out []*model.Alias
	var walk func(o model.Object)
	walk = func(o model.Object) {
		for _, name := range o.Members().Names() {
			member, _ := o.Members().Get(name)
			if a, ok := member.(*model.Alias); ok {
				out = append(out, a)
				continue
			}
			if member.Members().Len() > 0 {
				walk(member)
			}
		}
	}
	walk(owner)
	return out
}

// resolve walks a's TargetPath to a concrete, non-alias object. chain
// tracks the (containing_module_path, alias_path) pairs already visited in
// this walk, for cycle detection (spec §4.5).
func (r *Resolver) resolve(ctx context.Context, containingModule string, a *model.Alias, chain []string) error {
	key := containingModule + "|" + a.Path()
	for _, seen := range chain {
		if seen == key {
			return NewCyclicAliasError(append(chain, key))
		}
	}
	chain = append(chain, key)

	target, err := r.lookup(ctx, a.TargetPath, chain)
	if err != nil {
		return err
	}
	if target == nil {
		return NewAliasResolutionError(a.Path(), a.TargetPath, "no such module or member")
	}

	if nested, isAlias := target.(*model.Alias); isAlias {
		if t, resolved := nested.Target(); resolved {
			a.SetTarget(t)
			return nil
		}
		if err := r.resolve(ctx, enclosingModulePath(nested), nested, chain); err != nil {
			return err
		}
		t, _ := nested.Target()
		a.SetTarget(t)
		return nil
	}

	a.SetTarget(target)
	return nil
}

// lookup walks a dotted path across module boundaries: the longest prefix
// that names an attached (or externally loadable) module is resolved
// first, then the remaining segments are walked through Members().
func (r *Resolver) lookup(ctx context.Context, dotted string, chain []string) (model.Object, error) {
	segments := strings.Split(dotted, ".")

	modPath, modObj, rest := r.longestModulePrefix(ctx, segments)
	if modObj == nil {
		return nil, NewAliasResolutionError(dotted, dotted, "module not found")
	}

	var cur model.Object = modObj
	for i, seg := range rest {
		member, ok := cur.Members().Get(seg)
		if !ok {
			return nil, NewAliasResolutionError(dotted, dotted, "member "+seg+" not found in "+modPath)
		}
		if nestedAlias, isAlias := member.(*model.Alias); isAlias && i < len(rest)-1 {
			if _, resolved := nestedAlias.Target(); !resolved {
				if err := r.resolve(ctx, modPath, nestedAlias, chain); err != nil {
					return nil, err
				}
			}
			t, _ := nestedAlias.Target()
			cur = t
			continue
		}
		cur = member
	}
	return cur, nil
}

// longestModulePrefix finds the longest leading run of segments naming a
// module already in the collection, falling back to a single bounded
// external-loader attempt when no prefix matches locally.
func (r *Resolver) longestModulePrefix(ctx context.Context, segments []string) (string, model.Object, []string) {
	for i := len(segments); i > 0; i-- {
		candidate := strings.Join(segments[:i], ".")
		if mod, ok := r.col.Get(candidate); ok {
			return candidate, mod, segments[i:]
		}
	}
	if r.external == nil {
		return "", nil, nil
	}
	for i := len(segments); i > 0; i-- {
		candidate := strings.Join(segments[:i], ".")
		mod, err := r.external.LoadExternal(ctx, candidate)
		if err == nil && mod != nil {
			return candidate, mod, segments[i:]
		}
	}
	return "", nil, nil
}

// Lookup resolves an arbitrary fully-qualified dotted path to its concrete
// object, dereferencing a trailing alias if the path lands on one. Used by
// callers outside the resolve-to-fixed-point pass itself (class base
// resolution in ResolveClassBases) that always want the real object.
func (r *Resolver) Lookup(ctx context.Context, path string) (model.Object, error) {
	obj, err := r.lookup(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	if a, ok := obj.(*model.Alias); ok {
		if t, resolved := a.Target(); resolved {
			return t, nil
		}
		if err := r.resolve(ctx, enclosingModulePath(a), a, nil); err != nil {
			return nil, err
		}
		t, _ := a.Target()
		return t, nil
	}
	return obj, nil
}

func enclosingModulePath(o model.Object) string {
	for cur := o; cur != nil; cur = cur.Parent() {
		if cur.Kind() == model.KindModule {
			return cur.Path()
		}
	}
	return ""
}
