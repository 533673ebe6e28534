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
package collection

import (
	"bufio"
	"bytes"
	"sync"
)

// fileLines holds one file's content split into 1-indexed lines.
type fileLines struct {
	lines []string
}

// LinesCollection is a cache from filepath to source lines, used by
// diagnostics (line-range snippets) and by the visitor's
// string-annotation re-parse path. It holds only what Put stored: Line
// and Range never read the filesystem and report nothing for a path that
// was not Put. It is append-only during loading and
// read-only once loading completes (spec §5), backed by a mutex-guarded
// map the way internal/logging guards its level field.
type LinesCollection struct {
	mu    sync.RWMutex
	files map[string]*fileLines
}

// NewLinesCollection returns an empty LinesCollection.
func NewLinesCollection() *LinesCollection {
	return &LinesCollection{files: make(map[string]*fileLines)}
}

// Put stores the already-read source of path, splitting it into lines.
// Visitors call this once per file as they read it, so later callers
// (diagnostics, docstring re-parse) never re-read the filesystem.
func (l *LinesCollection) Put(path string, source []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files[path] = &fileLines{lines: splitLines(source)}
}

// Line returns the 1-indexed line n of path, if known.
func (l *LinesCollection) Line(path string, n int) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f, ok := l.files[path]
	if !ok || n < 1 || n > len(f.lines) {
		return "", false
	}
	return f.lines[n-1], true
}

// Range returns lines [start, end] of path, inclusive and 1-indexed,
// clamped to the file's actual bounds.
func (l *LinesCollection) Range(path string, start, end int) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f, ok := l.files[path]
	if !ok {
		return nil
	}
	if start < 1 {
		start = 1
	}
	if end > len(f.lines) {
		end = len(f.lines)
	}
	if start > end {
		return nil
	}
	return append([]string(nil), f.lines[start-1:end]...)
}

func splitLines(source []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
