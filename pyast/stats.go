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
package pyast

// FileStats is a cheap, query-driven census of one file's syntactic
// surface at every nesting depth, independent of the full visitor walk. Used by
// `apitree dump --stats` to report per-file counts without paying for a
// full model lowering pass.
type FileStats struct {
	Classes      int
	Functions    int
	Imports      int
	Decorated    int
	MaxClassDepth int
}

// CollectStats runs the registered classdef/funcdef/imports/decorator
// queries against tree and tallies match groups, exercising
// QueryManager/Matcher/ParentCaptures directly rather than through the
// visitor's statement-by-statement walk.
func CollectStats(qm *QueryManager, tree *Tree) (FileStats, error) {
	var stats FileStats
	root := tree.Root()

	counts := []struct {
		query   string
		parents []string
		dest    *int
	}{
		{"classdef", []string{"class"}, &stats.Classes},
		{"funcdef", []string{"func"}, &stats.Functions},
		{"imports", []string{"import", "import_from"}, &stats.Imports},
		{"decorator", []string{"decorated"}, &stats.Decorated},
	}

	for _, c := range counts {
		for _, parent := range c.parents {
			m, err := NewMatcher(qm, c.query)
			if err != nil {
				return stats, err
			}
			for group := range m.ParentCaptures(root, tree.Source, parent) {
				*c.dest++
				if parent == "class" {
					for _, info := range group["class"] {
						node := info.Node
						if d := Depth(&node); d > stats.MaxClassDepth {
							stats.MaxClassDepth = d
						}
					}
				}
			}
			m.Close()
		}
	}
	return stats, nil
}
