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
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEntry is a minimal fs.DirEntry for synthetic directory layouts.
type fakeEntry struct {
	name  string
	isDir bool
}

func (e fakeEntry) Name() string { return e.name }
func (e fakeEntry) IsDir() bool  { return e.isDir }
func (e fakeEntry) Type() fs.FileMode {
	if e.isDir {
		return fs.ModeDir
	}
	return 0
}
func (e fakeEntry) Info() (fs.FileInfo, error) { return nil, errors.New("not implemented") }

// fakeFS is an in-memory FileSystem for exercising Finder without touching
// disk. existing holds every path (file or directory) that should report
// true from Exists; dirs maps a directory path to its direct children.
type fakeFS struct {
	existing map[string]bool
	dirs     map[string][]fakeEntry
}

func newFakeFS() *fakeFS {
	return &fakeFS{existing: map[string]bool{}, dirs: map[string][]fakeEntry{}}
}

func (f *fakeFS) addFile(path string) *fakeFS {
	f.existing[path] = true
	return f
}

func (f *fakeFS) addDir(path string, children ...fakeEntry) *fakeFS {
	f.existing[path] = true
	f.dirs[path] = children
	for _, c := range children {
		f.existing[filepath.Join(path, c.name)] = true
	}
	return f
}

func (f *fakeFS) Exists(path string) bool { return f.existing[path] }

func (f *fakeFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, ok := f.dirs[name]
	if !ok {
		return nil, errors.New("no such directory: " + name)
	}
	out := make([]fs.DirEntry, len(entries))
	for i, e := range entries {
		out[i] = e
	}
	return out, nil
}

func (f *fakeFS) ReadFile(name string) ([]byte, error) { return nil, errors.New("not implemented") }
func (f *fakeFS) Stat(name string) (fs.FileInfo, error) { return nil, errors.New("not implemented") }

func TestFindSingleFileModule(t *testing.T) {
	ffs := newFakeFS().addFile(filepath.Join("/src", "widgets.py"))
	f := NewFinder(ffs, []string{"/src"}, false)

	found, err := f.Find("widgets")

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "widgets", found[0].ModuleName)
	assert.Equal(t, KindSingleFile, found[0].Kind)
	assert.Equal(t, filepath.Join("/src", "widgets.py"), found[0].Path)
}

func TestFindPrefersStubOverSourceWhenWanted(t *testing.T) {
	ffs := newFakeFS().
		addFile(filepath.Join("/src", "widgets.pyi")).
		addFile(filepath.Join("/src", "widgets.py"))
	f := NewFinder(ffs, []string{"/src"}, true)

	found, err := f.Find("widgets")

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, KindStub, found[0].Kind)
	assert.Equal(t, filepath.Join("/src", "widgets.pyi"), found[0].Path)
}

func TestFindRegularPackageWalksChildrenDeepestFirst(t *testing.T) {
	pkg := filepath.Join("/src", "pkg")
	sub := filepath.Join(pkg, "sub")
	ffs := newFakeFS().
		addDir(pkg,
			fakeEntry{name: "__init__.py"},
			fakeEntry{name: "sub", isDir: true},
		).
		addDir(sub,
			fakeEntry{name: "__init__.py"},
			fakeEntry{name: "leaf.py"},
		)
	ffs.addFile(filepath.Join(pkg, "__init__.py"))
	ffs.addFile(filepath.Join(sub, "__init__.py"))
	ffs.addFile(filepath.Join(sub, "leaf.py"))
	f := NewFinder(ffs, []string{"/src"}, false)

	found, err := f.Find("pkg")

	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "pkg.sub.leaf", found[0].ModuleName)
	assert.Equal(t, "pkg.sub", found[1].ModuleName)
	assert.Equal(t, "pkg", found[2].ModuleName)
	assert.Equal(t, KindRegularPackage, found[1].Kind)
}

func TestFindNamespacePackageHasNoInit(t *testing.T) {
	pkg := filepath.Join("/src", "ns")
	ffs := newFakeFS().addDir(pkg, fakeEntry{name: "leaf.py"})
	ffs.addFile(filepath.Join(pkg, "leaf.py"))
	f := NewFinder(ffs, []string{"/src"}, false)

	found, err := f.Find("ns")

	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "ns.leaf", found[0].ModuleName)
	assert.Equal(t, "ns", found[1].ModuleName)
	assert.Equal(t, KindNamespacePackage, found[1].Kind)
	assert.Equal(t, pkg, found[1].Path)
}

func TestFindSkipsPycacheDirectory(t *testing.T) {
	pkg := filepath.Join("/src", "pkg")
	ffs := newFakeFS().addDir(pkg,
		fakeEntry{name: "__init__.py"},
		fakeEntry{name: "__pycache__", isDir: true},
	)
	ffs.addFile(filepath.Join(pkg, "__init__.py"))
	f := NewFinder(ffs, []string{"/src"}, false)

	found, err := f.Find("pkg")

	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestFindSkipsStubChildWhenStubsNotWanted(t *testing.T) {
	pkg := filepath.Join("/src", "pkg")
	ffs := newFakeFS().addDir(pkg,
		fakeEntry{name: "__init__.py"},
		fakeEntry{name: "leaf.pyi"},
	)
	ffs.addFile(filepath.Join(pkg, "__init__.py"))
	f := NewFinder(ffs, []string{"/src"}, false)

	found, err := f.Find("pkg")

	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestFindReturnsNotFoundErrorWhenMissingEverywhere(t *testing.T) {
	f := NewFinder(newFakeFS(), []string{"/src"}, false)

	_, err := f.Find("ghost")

	require.Error(t, err)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFindReturnsBuiltinModuleErrorForBuiltin(t *testing.T) {
	f := NewFinder(newFakeFS(), []string{"/src"}, false)

	_, err := f.Find("sys")

	require.Error(t, err)
	var builtin *BuiltinModuleError
	assert.ErrorAs(t, err, &builtin)
}

func TestFindSearchesPathsInOrder(t *testing.T) {
	ffs := newFakeFS().addFile(filepath.Join("/second", "widgets.py"))
	f := NewFinder(ffs, []string{"/first", "/second"}, false)

	found, err := f.Find("widgets")

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, filepath.Join("/second", "widgets.py"), found[0].Path)
}
