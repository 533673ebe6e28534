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
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// editableFinderShim matches a PEP 660 `__editable___<dist>_finder.py`
// shim's MAPPING dict entry, e.g. `'mypkg': '/abs/src/mypkg/__init__.py'`.
var editableFinderShim = regexp.MustCompile(`'([\w.]+)':\s*'([^']+)'`)

// FindEditableRoots locates the real source roots an editable install
// points at by scanning searchDir for the two well-known pointer formats:
// sitecustomize-style *.pth files (one path per line, blank lines and
// lines starting with "import " ignored) and PEP 660
// __editable___*_finder.py shims, sniffed with a regex rather than
// imported as Python (spec §4.3).
func FindEditableRoots(searchDir string) ([]string, error) {
	var roots []string

	pthMatches, err := doublestar.Glob(os.DirFS(searchDir), "*.pth")
	if err != nil {
		return nil, err
	}
	for _, name := range pthMatches {
		paths, err := readPthFile(filepath.Join(searchDir, name))
		if err != nil {
			continue
		}
		roots = append(roots, paths...)
	}

	shimMatches, err := doublestar.Glob(os.DirFS(searchDir), "__editable___*_finder.py")
	if err != nil {
		return nil, err
	}
	for _, name := range shimMatches {
		paths, err := readEditableShim(filepath.Join(searchDir, name))
		if err != nil {
			continue
		}
		roots = append(roots, paths...)
	}

	return roots, nil
}

func readPthFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	return paths, scanner.Err()
}

func readEditableShim(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	matches := editableFinderShim.FindAllStringSubmatch(string(data), -1)
	if len(matches) == 0 {
		return nil, &UnhandledEditableModuleError{Path: path}
	}
	var paths []string
	for _, match := range matches {
		paths = append(paths, filepath.Dir(match[2]))
	}
	return paths, nil
}
