/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Node is one node of a token tree: either a leaf carrying a raw value or a
// group with ordered named children. The loader resolves every source node
// into exactly one of the two shapes, so downstream code never re-inspects
// raw document structure.
type Node struct {
	// Name is the node's key in its parent group.
	Name string

	// Value is the raw value for leaves; nil for groups.
	Value any

	// Children holds nested nodes for groups, in source insertion order.
	Children []*Node

	leaf bool
}

// Leaf creates a leaf node carrying a raw value.
func Leaf(name string, value any) *Node {
	return &Node{Name: name, Value: value, leaf: true}
}

// Group creates a group node with the given children.
func Group(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// IsLeaf reports whether the node carries a raw value.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Child returns the named child of a group, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Add appends a child to a group, replacing an existing child of the same
// name in place so merge order stays stable.
func (n *Node) Add(child *Node) {
	for i, c := range n.Children {
		if c.Name == child.Name {
			n.Children[i] = child
			return
		}
	}
	n.Children = append(n.Children, child)
}

// Tree is a loaded token tree. The root is an anonymous group.
type Tree struct {
	Root *Node
}

// NewTree creates an empty token tree.
func NewTree() *Tree {
	return &Tree{Root: Group("")}
}
