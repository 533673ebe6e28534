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

// Package loader orchestrates the finder, visitor, and alias resolver into
// the single entry point `Load`: locate a package's modules, lower each to
// a model.Module, merge stubs, expand exports and wildcard imports, and
// optionally resolve aliases to a fixed point, grounded on the teacher's
// generate/session.go orchestration shape (find -> process -> merge ->
// cross-reference passes).
package loader

import (
	"context"

	"github.com/apitree/apitree/alias"
	"github.com/apitree/apitree/collection"
	"github.com/apitree/apitree/dynload"
	"github.com/apitree/apitree/extension"
	"github.com/apitree/apitree/finder"
	"github.com/apitree/apitree/internal/logging"
	"github.com/apitree/apitree/model"
	"github.com/apitree/apitree/pyast"
	"github.com/apitree/apitree/visitor"
)

// LoadOptions configures one Load call, unchanged in shape from spec §4.6.
type LoadOptions struct {
	SearchPaths     []string
	AllowInspection bool
	ForceInspection bool
	ResolveAliases  bool
	ResolveExternal bool
	FindStubs       bool

	// Inspector overrides the dynamic-inspection fallback; nil means
	// dynload.Unavailable{} (static analysis only).
	Inspector dynload.Inspector
	// External overrides alias resolution into modules outside the
	// collection; nil means external aliases are left unresolved.
	External alias.ExternalLoader
	// Log overrides the logger every pipeline step reports through; nil
	// means logging.Global().
	Log *logging.Logger
	// Hooks fire at EventModuleVisited (per module, before stub merging),
	// EventAliasesResolved, and EventLoadComplete; nil means no observers.
	Hooks extension.Hooks
}

// Load finds, parses, and lowers pkg (and every module beneath it) into a
// model.Module tree plus the ModulesCollection that owns it, per spec
// §4.6's six-step pipeline.
func Load(ctx context.Context, pkg string, opts LoadOptions) (*model.Module, *collection.ModulesCollection, error) {
	log := opts.Log
	if log == nil {
		log = logging.Global()
	}
	inspector := opts.Inspector
	if inspector == nil {
		inspector = dynload.Unavailable{}
	}

	// Step 1: find layout.
	fs := finder.NewOSFileSystem()
	fnd := finder.NewFinder(fs, opts.SearchPaths, opts.FindStubs)
	found, err := fnd.Find(pkg)
	if err != nil {
		return nil, nil, WrapLoadError(pkg, err)
	}

	qm, err := pyast.NewQueryManager()
	if err != nil {
		return nil, nil, WrapLoadError(pkg, err)
	}
	defer qm.Close()

	lines := collection.NewLinesCollection()

	jobs := make([]visitJob, len(found))
	for i, f := range found {
		jobs[i] = visitJob{found: f}
	}

	// Step 2: per-module visit, concurrently; each worker produces an
	// independent subtree (spec §5).
	outcomes := visitAll(ctx, jobs, func(ctx context.Context, job visitJob) (*model.Module, []visitor.PendingWildcard, error) {
		return visitOne(ctx, job, lines, log, opts, inspector)
	})
	if err := joinErrors(outcomes); err != nil {
		log.Warning("%s", err)
	}

	for _, o := range outcomes {
		if o.module != nil {
			if err := opts.Hooks.Fire(extension.EventModuleVisited, o.module); err != nil {
				log.Warning("extension hook failed for %q: %v", o.module.Path(), err)
			}
		}
	}

	col := collection.New()
	root, err := attachAll(col, outcomes, pkg)
	if err != nil {
		return nil, nil, WrapLoadError(pkg, err)
	}

	// Step 4: expand __all__ cross-module references.
	expandExportRefs(col, log)

	// Step 5: expand wildcard imports.
	var wildcards []visitor.PendingWildcard
	for _, o := range outcomes {
		wildcards = append(wildcards, o.wildcards...)
	}
	if err := expandWildcards(col, wildcards, log); err != nil {
		return nil, nil, WrapLoadError(pkg, err)
	}

	// Step 6: optionally resolve aliases (and MRO bases) to a fixed point.
	if opts.ResolveAliases {
		var external alias.ExternalLoader
		if opts.ResolveExternal {
			external = opts.External
		}
		resolver := alias.NewResolver(col, external, log)
		if err := resolver.ResolveAll(ctx); err != nil {
			return nil, nil, WrapLoadError(pkg, err)
		}
		resolver.ResolveClassBases(ctx)
		if err := opts.Hooks.Fire(extension.EventAliasesResolved, root); err != nil {
			log.Warning("extension hook failed after alias resolution: %v", err)
		}
	}

	if err := opts.Hooks.Fire(extension.EventLoadComplete, root); err != nil {
		log.Warning("extension hook failed on load complete: %v", err)
	}

	return root, col, nil
}

// attachAll groups visit outcomes by dotted module name, merges stub/impl
// pairs, and attaches the result into col under the single serial mutation
// point spec §5 requires.
func attachAll(col *collection.ModulesCollection, outcomes []visitOutcome, pkg string) (*model.Module, error) {
	byName := make(map[string][]*model.Module)
	var order []string
	for _, o := range outcomes {
		if o.module == nil {
			continue
		}
		name := o.module.Path()
		if _, seen := byName[name]; !seen {
			order = append(order, name)
		}
		byName[name] = append(byName[name], o.module)
	}

	var root *model.Module
	for _, name := range order {
		merged := mergeGroup(byName[name])
		if err := col.Attach(merged); err != nil {
			return nil, err
		}
		if name == pkg {
			root = merged
		}
	}
	if root == nil {
		if m, ok := col.Get(pkg); ok {
			root = m
		}
	}
	return root, nil
}
