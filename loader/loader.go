/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package loader parses design token sources into token trees.
//
// JSON, JSONC, and YAML sources are supported. All three are parsed through
// the yaml.v3 AST so that document key order is preserved; the whole engine
// downstream emits tokens in source declaration order.
package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tavnit/fs"
	"bennypowers.dev/tavnit/token"
)

// Loader parses token source documents into trees.
type Loader struct{}

// New creates a token source loader.
func New() *Loader {
	return &Loader{}
}

// Parse parses a JSON, JSONC, or YAML document into a token tree.
// Every node is resolved into a strict leaf-or-group shape; ambiguous nodes
// are rejected with a MalformedTokenError.
func (l *Loader) Parse(data []byte) (*token.Tree, error) {
	if isLikelyJSON(data) {
		// Strip comments and trailing commas so JSONC parses as JSON.
		data = jsonc.ToJSON(data)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing token source: %w", err)
	}

	tree := token.NewTree()
	if len(root.Content) == 0 {
		return tree, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, token.NewMalformedTokenError(nil, "token source root must be an object")
	}

	children, err := buildGroup(doc, nil)
	if err != nil {
		return nil, err
	}
	tree.Root.Children = children
	return tree, nil
}

// ParseFile parses a token source file into a tree.
func (l *Loader) ParseFile(filesystem fs.FileSystem, path string) (*token.Tree, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading token source %s: %w", path, err)
	}

	tree, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing token source %s: %w", path, err)
	}
	return tree, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// valueKey marks a mapping as a leaf carrying an explicit value, which lets
// sources attach a value at a level that would otherwise be a group.
const valueKey = "$value"

// buildGroup converts a mapping node's entries into ordered child nodes.
func buildGroup(mapping *yaml.Node, path []string) ([]*token.Node, error) {
	children := make([]*token.Node, 0, len(mapping.Content)/2)
	seen := make(map[string]bool, len(mapping.Content)/2)

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valueNode := mapping.Content[i+1]
		key := keyNode.Value

		childPath := append(append([]string{}, path...), key)
		if seen[key] {
			return nil, &token.MalformedTokenError{
				Path:    childPath,
				Message: "duplicate key",
				Err:     token.ErrDuplicatePath,
			}
		}
		seen[key] = true

		child, err := buildNode(key, valueNode, childPath)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return children, nil
}

// buildNode converts a single yaml node into a strict leaf or group.
func buildNode(name string, node *yaml.Node, path []string) (*token.Node, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		value, err := scalarValue(node, path)
		if err != nil {
			return nil, err
		}
		return token.Leaf(name, value), nil

	case yaml.SequenceNode:
		value, err := sequenceValue(node, path)
		if err != nil {
			return nil, err
		}
		return token.Leaf(name, value), nil

	case yaml.MappingNode:
		return buildMappingNode(name, node, path)

	default:
		return nil, token.NewMalformedTokenError(path, "unsupported node kind")
	}
}

// buildMappingNode resolves the leaf/group ambiguity for mapping nodes: a
// mapping with a $value entry is a leaf, anything else is a group. A mapping
// with both $value and named children is rejected, not guessed.
func buildMappingNode(name string, node *yaml.Node, path []string) (*token.Node, error) {
	var valueNode *yaml.Node
	named := 0

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == valueKey {
			valueNode = node.Content[i+1]
		} else {
			named++
		}
	}

	if valueNode != nil {
		if named > 0 {
			return nil, token.NewMalformedTokenError(path,
				"node has both a value and named children")
		}
		leaf, err := buildNode(name, valueNode, path)
		if err != nil {
			return nil, err
		}
		if !leaf.IsLeaf() {
			return nil, token.NewMalformedTokenError(path, "$value must be a raw value")
		}
		return leaf, nil
	}

	if named == 0 {
		return nil, token.NewMalformedTokenError(path, "missing value")
	}

	children, err := buildGroup(node, path)
	if err != nil {
		return nil, err
	}
	return token.Group(name, children...), nil
}

// scalarValue decodes a yaml scalar into a string, float64, or bool.
func scalarValue(node *yaml.Node, path []string) (any, error) {
	switch node.Tag {
	case "!!str":
		return node.Value, nil
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, token.NewMalformedTokenError(path, "invalid number %q", node.Value)
		}
		return f, nil
	case "!!bool":
		return strings.EqualFold(node.Value, "true"), nil
	case "!!null":
		return nil, token.NewMalformedTokenError(path, "missing value")
	default:
		return node.Value, nil
	}
}

// sequenceValue decodes a sequence of scalars into a string slice.
// Composite values like font stacks are ordered sequences of strings.
func sequenceValue(node *yaml.Node, path []string) ([]string, error) {
	values := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, token.NewMalformedTokenError(path,
				"composite values must be sequences of scalars")
		}
		values = append(values, item.Value)
	}
	return values, nil
}
