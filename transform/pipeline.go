/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"bennypowers.dev/tavnit/token"
)

// Pipeline is an ordered sequence of transforms resolved from a registry.
// Construction fails on the first unknown name, before any token is
// processed.
type Pipeline struct {
	stages []Transform
}

// NewPipeline resolves the named transforms against the registry, in order.
func NewPipeline(registry *Registry, names []string) (*Pipeline, error) {
	if registry == nil {
		registry = NewRegistry()
	}

	stages := make([]Transform, 0, len(names))
	for _, name := range names {
		t, ok := registry.Lookup(name)
		if !ok {
			return nil, token.NewConfigurationError("unknown transform %q", name)
		}
		stages = append(stages, t)
	}

	return &Pipeline{stages: stages}, nil
}

// Names returns the configured stage names, in order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, t := range p.stages {
		names[i] = t.Name
	}
	return names
}

// Run applies the pipeline to every token and returns a new sequence; the
// input tokens are never mutated. Stages run strictly in order per token,
// each seeing the previous stage's output. A matcher miss is a no-op; an
// Apply failure aborts the run with the token path and stage name attached.
func (p *Pipeline) Run(tokens []*token.Token) ([]*token.Token, error) {
	out := make([]*token.Token, 0, len(tokens))

	for _, tok := range tokens {
		current := tok.Clone()

		for _, stage := range p.stages {
			if !stage.Matches(current) {
				continue
			}

			value, err := stage.Apply(current)
			if err != nil {
				return nil, &token.TransformError{
					TokenPath: current.Path,
					Transform: stage.Name,
					Err:       err,
				}
			}
			current.ResolvedValue = value
		}

		out = append(out, current)
	}

	return out, nil
}
