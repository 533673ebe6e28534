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

// Package pyast is a thin tree-sitter-python wrapper used by the visitor:
// one parsed tree per source file plus a small query-matching helper that
// groups captures by parent node, the same shape as the teacher's
// generate.QueryManager/QueryMatcher over its TS/JS grammars, narrowed to
// the single Python grammar this system needs.
package pyast

import (
	"fmt"
	"iter"
	"slices"

	ts "github.com/tree-sitter/go-tree-sitter"
	tspython "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// Language is the compiled tree-sitter-python grammar, shared across parses.
var Language = ts.NewLanguage(tspython.Language())

// Tree wraps a parsed file: its tree-sitter tree plus the source bytes
// captures need for Utf8Text lookups.
type Tree struct {
	Source []byte
	tree   *ts.Tree
}

// Parse parses source as Python and returns the resulting Tree.
func Parse(source []byte) (*Tree, error) {
	parser := ts.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(Language); err != nil {
		return nil, err
	}
	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("pyast: parser returned no tree")
	}
	return &Tree{Source: source, tree: tree}, nil
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
	}
}

// Root returns the file's root `module` node.
func (t *Tree) Root() *ts.Node { return t.tree.RootNode() }

// QueryManager compiles and owns every named query this package defines
// (see queries_*.go), analogous to the teacher's per-language query map
// collapsed to Python's single grammar.
type QueryManager struct {
	queries map[string]*ts.Query
}

// NewQueryManager compiles every entry in the package's query registry.
func NewQueryManager() (*QueryManager, error) {
	qm := &QueryManager{queries: make(map[string]*ts.Query, len(queryRegistry))}
	for name, src := range queryRegistry {
		q, err := ts.NewQuery(Language, src)
		if err != nil {
			return nil, fmt.Errorf("pyast: compiling query %q: %w", name, err)
		}
		qm.queries[name] = q
	}
	return qm, nil
}

// Close releases every compiled query.
func (qm *QueryManager) Close() {
	for _, q := range qm.queries {
		q.Close()
	}
}

// Query returns a named, compiled query.
func (qm *QueryManager) Query(name string) (*ts.Query, error) {
	q, ok := qm.queries[name]
	if !ok {
		return nil, fmt.Errorf("pyast: unknown query %q", name)
	}
	return q, nil
}

// CaptureInfo is one captured node plus its text, keyed by capture name in
// a CaptureMap.
type CaptureInfo struct {
	Node      ts.Node
	Text      string
	StartByte uint
	EndByte   uint
}

// CaptureMap groups CaptureInfo by capture name for a single match group.
type CaptureMap = map[string][]CaptureInfo

// Matcher runs one compiled query against a subtree and groups captures by
// a designated parent capture, mirroring the teacher's QueryMatcher.
type Matcher struct {
	query  *ts.Query
	cursor *ts.QueryCursor
}

// NewMatcher builds a Matcher for the named query.
func NewMatcher(qm *QueryManager, name string) (*Matcher, error) {
	q, err := qm.Query(name)
	if err != nil {
		return nil, err
	}
	return &Matcher{query: q, cursor: ts.NewQueryCursor()}, nil
}

// Close releases the matcher's cursor. The underlying query is owned by
// the QueryManager and outlives individual matchers.
func (m *Matcher) Close() { m.cursor.Close() }

func (m *Matcher) matches(node *ts.Node, source []byte) iter.Seq[*ts.QueryMatch] {
	it := m.cursor.Matches(m.query, node, source)
	return func(yield func(*ts.QueryMatch) bool) {
		for {
			match := it.Next()
			if match == nil {
				return
			}
			if !yield(match) {
				return
			}
		}
	}
}

// ParentCaptures groups every match under root into one CaptureMap per
// distinct parentCaptureName node, ordered by source position, so a
// visitor can process "one class body" or "one function signature" worth
// of captures at a time instead of a flat match stream.
func (m *Matcher) ParentCaptures(root *ts.Node, source []byte, parentCaptureName string) iter.Seq[CaptureMap] {
	names := m.query.CaptureNames()

	type group struct {
		captures  CaptureMap
		startByte uint
	}
	groups := make(map[uintptr]*group)
	var order []uintptr

	for match := range m.matches(root, source) {
		var parent *ts.Node
		for _, cap := range match.Captures {
			if names[cap.Index] == parentCaptureName {
				n := cap.Node
				parent = &n
				break
			}
		}
		if parent == nil {
			continue
		}
		key := uintptr(parent.Id())
		g, ok := groups[key]
		if !ok {
			g = &group{captures: make(CaptureMap), startByte: parent.StartByte()}
			groups[key] = g
			order = append(order, key)
		}
		for _, cap := range match.Captures {
			name := names[cap.Index]
			info := CaptureInfo{
				Node:      cap.Node,
				Text:      cap.Node.Utf8Text(source),
				StartByte: cap.Node.StartByte(),
				EndByte:   cap.Node.EndByte(),
			}
			if slices.ContainsFunc(g.captures[name], func(c CaptureInfo) bool {
				return c.StartByte == info.StartByte && c.EndByte == info.EndByte
			}) {
				continue
			}
			g.captures[name] = append(g.captures[name], info)
		}
	}

	slices.SortStableFunc(order, func(a, b uintptr) int {
		return int(groups[a].startByte) - int(groups[b].startByte)
	})

	return func(yield func(CaptureMap) bool) {
		for _, key := range order {
			if !yield(groups[key].captures) {
				return
			}
		}
	}
}

// LineRange returns the 1-based inclusive start/end lines of node, per
// spec §4.4's "line ranges are recorded for every object".
func LineRange(node *ts.Node) (int, int) {
	start := node.StartPosition()
	end := node.EndPosition()
	return int(start.Row) + 1, int(end.Row) + 1
}
