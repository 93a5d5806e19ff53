/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"strings"

	"bennypowers.dev/tavnit/token"
)

// ResolveAliases resolves whole-value {token.path} references in place,
// updating each token's ResolvedValue. Tokens are processed in dependency
// order, so chained aliases resolve through to their final value. A cycle
// or a reference to an unknown path fails the whole set with the offending
// path attached.
func ResolveAliases(tokens []*token.Token) error {
	graph := BuildDependencyGraph(tokens)

	if cycle := graph.FindCycle(); cycle != nil {
		return &token.MalformedTokenError{
			Path:    strings.Split(cycle[0], "."),
			Message: "reference cycle: " + strings.Join(cycle, " -> "),
			Err:     token.ErrCircularReference,
		}
	}

	sorted, err := graph.TopologicalSort()
	if err != nil {
		return err
	}

	byPath := make(map[string]*token.Token, len(tokens))
	for _, tok := range tokens {
		byPath[tok.PathString()] = tok
	}

	for _, path := range sorted {
		tok := byPath[path]
		if tok == nil {
			continue
		}

		ref, ok := aliasTarget(tok)
		if !ok {
			continue
		}

		target := byPath[ref]
		if target == nil {
			return &token.MalformedTokenError{
				Path:    tok.Path,
				Message: "reference to unknown token {" + ref + "}",
				Err:     token.ErrUnresolvedReference,
			}
		}

		tok.ResolvedValue = target.ResolvedValue
	}

	return nil
}
