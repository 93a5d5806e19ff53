/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"fmt"
	"regexp"

	"bennypowers.dev/tavnit/token"
)

// refPattern matches whole-value {token.path} references.
var refPattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

// DependencyGraph is a directed graph of alias dependencies between tokens,
// keyed by dot-joined token path.
type DependencyGraph struct {
	dependencies map[string][]string
	nodes        map[string]bool
}

// BuildDependencyGraph builds an alias dependency graph from tokens.
func BuildDependencyGraph(tokens []*token.Token) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	for _, tok := range tokens {
		graph.nodes[tok.PathString()] = true
	}

	for _, tok := range tokens {
		if ref, ok := aliasTarget(tok); ok {
			graph.dependencies[tok.PathString()] = []string{ref}
		}
	}

	return graph
}

// aliasTarget returns the referenced path if the token's raw value is a
// whole-value alias like "{color.primary.base}".
func aliasTarget(tok *token.Token) (string, bool) {
	s, ok := tok.RawValue.(string)
	if !ok {
		return "", false
	}
	matches := refPattern.FindStringSubmatch(s)
	if len(matches) != 2 {
		return "", false
	}
	return matches[1], true
}

// Dependencies returns the paths the given token depends on.
func (g *DependencyGraph) Dependencies(path string) []string {
	if deps, ok := g.dependencies[path]; ok {
		return deps
	}
	return []string{}
}

// FindCycle returns a cycle path if one exists, or nil.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	path := []string{}

	for node := range g.nodes {
		if cycle := g.findCycleDFS(node, visited, recStack, path); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(path[cycleStart:], node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns token paths in dependency order (dependencies
// first). Returns an error if the graph contains a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", token.ErrCircularReference, cycle)
	}

	visited := make(map[string]bool)
	result := []string{}

	for node := range g.nodes {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}
