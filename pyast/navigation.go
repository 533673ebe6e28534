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

import (
	"fmt"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// RootNodeError is raised when a caller asks for the parent of a node that
// has none: the tree's root.
type RootNodeError struct {
	NodeKind string
}

func (e *RootNodeError) Error() string {
	return fmt.Sprintf("pyast: %q is the root node, it has no parent", e.NodeKind)
}

// LastNodeError is raised when a caller asks for a sibling past the end of
// its sequence.
type LastNodeError struct {
	NodeKind string
}

func (e *LastNodeError) Error() string {
	return fmt.Sprintf("pyast: %q has no next named sibling", e.NodeKind)
}

// ParentNode returns node's parent, or a RootNodeError if node is the
// tree's root.
func ParentNode(node *ts.Node) (*ts.Node, error) {
	parent := node.Parent()
	if parent == nil {
		return nil, &RootNodeError{NodeKind: node.Kind()}
	}
	return &parent, nil
}

// NextNamedSibling returns node's next named sibling, or a LastNodeError
// if node is the last named child of its parent.
func NextNamedSibling(node *ts.Node) (*ts.Node, error) {
	next := node.NextNamedSibling()
	if next == nil {
		return nil, &LastNodeError{NodeKind: node.Kind()}
	}
	return &next, nil
}

// Depth counts the hops from node up to the tree root via ParentNode,
// stopping at RootNodeError. Used by CollectStats to report how deeply
// nested a captured declaration sits (e.g. a class nested inside several
// enclosing classes or functions).
func Depth(node *ts.Node) int {
	depth := 0
	cur := node
	for {
		parent, err := ParentNode(cur)
		if err != nil {
			return depth
		}
		depth++
		cur = parent
	}
}
