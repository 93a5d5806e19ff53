/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader

import (
	"bennypowers.dev/tavnit/token"
)

// Merge combines token trees into one. Groups merge recursively; a leaf in a
// later tree overrides the same-path leaf in an earlier one. A path that is
// a leaf in one tree and a group in another is ambiguous and rejected.
func Merge(trees ...*token.Tree) (*token.Tree, error) {
	merged := token.NewTree()
	for _, tree := range trees {
		if tree == nil {
			continue
		}
		if err := mergeGroup(merged.Root, tree.Root, nil); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

func mergeGroup(dst, src *token.Node, path []string) error {
	for _, child := range src.Children {
		childPath := append(append([]string{}, path...), child.Name)

		existing := dst.Child(child.Name)
		if existing == nil {
			dst.Add(copyNode(child))
			continue
		}

		if existing.IsLeaf() != child.IsLeaf() {
			return token.NewMalformedTokenError(childPath,
				"leaf and group defined for the same path")
		}

		if child.IsLeaf() {
			dst.Add(copyNode(child))
			continue
		}

		if err := mergeGroup(existing, child, childPath); err != nil {
			return err
		}
	}
	return nil
}

// copyNode deep-copies a node so merged trees never alias their sources.
func copyNode(n *token.Node) *token.Node {
	if n.IsLeaf() {
		return token.Leaf(n.Name, n.Value)
	}
	children := make([]*token.Node, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, copyNode(c))
	}
	return token.Group(n.Name, children...)
}
