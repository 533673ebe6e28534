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
package loader

import (
	"context"

	"github.com/apitree/apitree/collection"
	"github.com/apitree/apitree/dynload"
	"github.com/apitree/apitree/finder"
	"github.com/apitree/apitree/internal/logging"
	"github.com/apitree/apitree/model"
	"github.com/apitree/apitree/pyast"
	"github.com/apitree/apitree/visitor"
)

// visitOne parses and lowers a single Found entry into a model.Module.
// Namespace packages have no backing source and produce an empty Module.
// A parse/visit failure falls back to dynamic inspection only when the
// caller opted in via AllowInspection/ForceInspection.
func visitOne(ctx context.Context, job visitJob, lines *collection.LinesCollection, log *logging.Logger, opts LoadOptions, inspector dynload.Inspector) (*model.Module, []visitor.PendingWildcard, error) {
	f := job.found

	if f.Kind == finder.KindNamespacePackage {
		mod := model.NewModule(f.ModuleName, f.ModuleName, nil)
		mod.Filepath = f.Path
		mod.IsPackage = true
		mod.SetAnalysis(model.AnalysisStatic)
		return mod, nil, nil
	}

	if opts.ForceInspection {
		mod, err := inspector.Inspect(ctx, f.ModuleName)
		if err == nil {
			return mod, nil, nil
		}
		log.Warning("forced dynamic inspection of %q failed, falling back to static analysis: %v", f.ModuleName, err)
	}

	mod, wildcards, err := visitStatic(f, lines, log)
	if err == nil {
		return mod, wildcards, nil
	}

	if opts.AllowInspection {
		if inspected, ierr := inspector.Inspect(ctx, f.ModuleName); ierr == nil {
			return inspected, nil, nil
		}
	}
	return nil, nil, err
}

func visitStatic(f finder.Found, lines *collection.LinesCollection, log *logging.Logger) (*model.Module, []visitor.PendingWildcard, error) {
	fs := finder.NewOSFileSystem()
	source, err := fs.ReadFile(f.Path)
	if err != nil {
		return nil, nil, err
	}
	lines.Put(f.Path, source)

	tree, err := pyast.Parse(source)
	if err != nil {
		return nil, nil, err
	}
	defer tree.Close()

	mod := model.NewModule(f.ModuleName, f.ModuleName, nil)
	mod.Filepath = f.Path
	mod.IsPackage = f.Kind == finder.KindRegularPackage
	mod.Stub = f.Kind == finder.KindStub
	mod.SetAnalysis(model.AnalysisStatic)

	v := visitor.NewVisitor(source, mod, log)
	if err := v.VisitFile(tree); err != nil {
		return nil, nil, err
	}
	return mod, v.PendingWildcards(), nil
}
