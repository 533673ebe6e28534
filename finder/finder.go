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

import (
	"path/filepath"
	"sort"
	"strings"
)

// ModuleKind discriminates what layout a finder result points at.
type ModuleKind int

const (
	KindRegularPackage ModuleKind = iota
	KindSingleFile
	KindStub
	KindNamespacePackage
)

// Found is one (module_name, kind, path) record.
type Found struct {
	ModuleName string
	Kind       ModuleKind
	Path       string
}

// Finder locates a package's modules across an ordered list of search
// paths, preferring stubs when requested (spec §4.3).
type Finder struct {
	FS          FileSystem
	SearchPaths []string
	WantStubs   bool
}

// NewFinder builds a Finder over fs searching searchPaths in order.
func NewFinder(fs FileSystem, searchPaths []string, wantStubs bool) *Finder {
	return &Finder{FS: fs, SearchPaths: searchPaths, WantStubs: wantStubs}
}

// Find locates pkg (a dotted package name) across the finder's search
// paths and returns every module beneath it, deepest-first so that
// children are visited before re-entering parents during __init__
// processing (spec §4.3's required result ordering).
func (f *Finder) Find(pkg string) ([]Found, error) {
	rel := filepath.Join(strings.Split(pkg, ".")...)

	for _, root := range f.SearchPaths {
		candidate := filepath.Join(root, rel)
		if f.FS.Exists(candidate) {
			return f.walkPackageRoot(pkg, candidate)
		}
		if single, kind, ok := f.findSingleFile(candidate); ok {
			return []Found{{ModuleName: pkg, Kind: kind, Path: single}}, nil
		}
	}
	if IsBuiltinModule(pkg) {
		return nil, &BuiltinModuleError{Module: pkg}
	}
	return nil, &NotFoundError{Package: pkg}
}

// findSingleFile checks for name.py / name.pyi next to a missing
// directory candidate.
func (f *Finder) findSingleFile(candidate string) (string, ModuleKind, bool) {
	if f.WantStubs {
		stub := candidate + ".pyi"
		if f.FS.Exists(stub) {
			return stub, KindStub, true
		}
	}
	py := candidate + ".py"
	if f.FS.Exists(py) {
		return py, KindSingleFile, true
	}
	return "", 0, false
}

// walkPackageRoot handles a directory candidate: a regular package (has
// __init__.py/__init__.pyi) or a namespace package (no __init__ at all).
func (f *Finder) walkPackageRoot(pkgName, dir string) ([]Found, error) {
	var results []Found
	if err := f.walkDir(pkgName, dir, &results); err != nil {
		return nil, err
	}
	sortDeepestFirst(results)
	return results, nil
}

func (f *Finder) walkDir(pkgName, dir string, out *[]Found) error {
	initPy := filepath.Join(dir, "__init__.py")
	initPyi := filepath.Join(dir, "__init__.pyi")

	kind := KindNamespacePackage
	path := ""
	if f.WantStubs && f.FS.Exists(initPyi) {
		path = initPyi
		kind = KindStub
	} else if f.FS.Exists(initPy) {
		path = initPy
		kind = KindRegularPackage
	}
	if path != "" {
		*out = append(*out, Found{ModuleName: pkgName, Kind: kind, Path: path})
	} else {
		*out = append(*out, Found{ModuleName: pkgName, Kind: KindNamespacePackage, Path: dir})
	}

	entries, err := f.FS.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if name == "__pycache__" {
				continue
			}
			if err := f.walkDir(pkgName+"."+name, filepath.Join(dir, name), out); err != nil {
				return err
			}
			continue
		}
		if !strings.HasSuffix(name, ".py") && !strings.HasSuffix(name, ".pyi") {
			continue
		}
		base := strings.TrimSuffix(strings.TrimSuffix(name, ".pyi"), ".py")
		if base == "__init__" {
			continue
		}
		childKind := KindSingleFile
		if strings.HasSuffix(name, ".pyi") {
			if !f.WantStubs {
				continue
			}
			childKind = KindStub
		}
		*out = append(*out, Found{
			ModuleName: pkgName + "." + base,
			Kind:       childKind,
			Path:       filepath.Join(dir, name),
		})
	}
	return nil
}

// sortDeepestFirst orders results so deeper dotted paths (more
// components) precede their shallower ancestors.
func sortDeepestFirst(results []Found) {
	sort.SliceStable(results, func(i, j int) bool {
		return strings.Count(results[i].ModuleName, ".") > strings.Count(results[j].ModuleName, ".")
	})
}
