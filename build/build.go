/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build orchestrates token processing across platforms: it resolves
// the shared token tree once per platform, runs each platform's transform
// pipeline, and renders each platform's format.
package build

import (
	"fmt"
	"strings"

	"bennypowers.dev/tavnit/format"
	"bennypowers.dev/tavnit/format/formatter"
	"bennypowers.dev/tavnit/resolve"
	"bennypowers.dev/tavnit/token"
	"bennypowers.dev/tavnit/transform"
)

// Pipeline stages, for fault localization in PlatformError.
const (
	StageResolve   = "resolve"
	StageTransform = "transform"
	StageFormat    = "format"
)

// Platform describes one output target: a named transform sequence, a
// format, and a destination path for the rendered artifact.
type Platform struct {
	Name        string
	Transforms  []string
	Format      string
	Destination string
	Prefix      string
}

// Options configures a build run.
type Options struct {
	// Transforms is the transform registry; defaults to the built-ins.
	Transforms *transform.Registry

	// Formats is the format registry; defaults to the built-ins.
	Formats *format.Registry

	// ContinueOnError collects per-platform failures instead of stopping
	// at the first one. The zero value fails fast.
	ContinueOnError bool
}

// PlatformError localizes a failure to a platform and pipeline stage.
type PlatformError struct {
	Platform string
	Stage    string
	Err      error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform %q: %s: %v", e.Platform, e.Stage, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }

// Result holds the artifacts of a build run, keyed by destination, plus any
// per-platform failures collected when continuing on error.
type Result struct {
	Artifacts map[string]*formatter.Artifact
	Errors    []*PlatformError
}

// Builder runs platform builds over a token tree.
type Builder struct {
	transforms *transform.Registry
	formats    *format.Registry
	continueOn bool
}

// New creates a Builder. Nil registries default to the built-in sets.
func New(opts Options) *Builder {
	transforms := opts.Transforms
	if transforms == nil {
		transforms = transform.Builtins()
	}
	formats := opts.Formats
	if formats == nil {
		formats = format.Builtins()
	}
	return &Builder{
		transforms: transforms,
		formats:    formats,
		continueOn: opts.ContinueOnError,
	}
}

// Run builds every platform from the tree. All platform configurations are
// validated up front, so a misconfigured platform fails the run before any
// token is processed. Platforms never share token state: each resolves its
// own copy of the tree.
func (b *Builder) Run(tree *token.Tree, platforms []Platform) (*Result, error) {
	pipelines, err := b.validate(platforms)
	if err != nil {
		return nil, err
	}

	result := &Result{Artifacts: make(map[string]*formatter.Artifact, len(platforms))}

	for i, platform := range platforms {
		artifact, perr := b.runPlatform(tree, platform, pipelines[i])
		if perr != nil {
			if !b.continueOn {
				return nil, perr
			}
			result.Errors = append(result.Errors, perr)
			continue
		}
		result.Artifacts[platform.Destination] = artifact
	}

	return result, nil
}

// validate checks every platform before any processing: names, transform
// pipelines, formats, and destination uniqueness.
func (b *Builder) validate(platforms []Platform) ([]*transform.Pipeline, error) {
	if len(platforms) == 0 {
		return nil, token.NewConfigurationError("no platforms configured")
	}

	pipelines := make([]*transform.Pipeline, len(platforms))
	destinations := make(map[string]string, len(platforms))

	for i, platform := range platforms {
		if platform.Name == "" {
			return nil, token.NewConfigurationError("platform %d has no name", i)
		}
		if platform.Destination == "" {
			return nil, token.NewConfigurationError("platform %q has no destination", platform.Name)
		}
		if prev, taken := destinations[platform.Destination]; taken {
			return nil, token.NewConfigurationError(
				"platforms %q and %q share destination %q",
				prev, platform.Name, platform.Destination)
		}
		destinations[platform.Destination] = platform.Name

		pipeline, err := transform.NewPipeline(b.transforms, platform.Transforms)
		if err != nil {
			return nil, token.NewConfigurationError("platform %q: %v", platform.Name, err)
		}
		pipelines[i] = pipeline

		if _, err := b.formats.Lookup(platform.Format); err != nil {
			return nil, token.NewConfigurationError("platform %q: %v", platform.Name, err)
		}
	}

	return pipelines, nil
}

// runPlatform resolves, transforms, and formats the tree for one platform.
func (b *Builder) runPlatform(tree *token.Tree, platform Platform, pipeline *transform.Pipeline) (*formatter.Artifact, *PlatformError) {
	tokens, err := resolve.Resolve(tree)
	if err != nil {
		return nil, &PlatformError{Platform: platform.Name, Stage: StageResolve, Err: err}
	}
	if err := resolve.ResolveAliases(tokens); err != nil {
		return nil, &PlatformError{Platform: platform.Name, Stage: StageResolve, Err: err}
	}

	transformed, err := pipeline.Run(tokens)
	if err != nil {
		return nil, &PlatformError{Platform: platform.Name, Stage: StageTransform, Err: err}
	}

	artifact, err := b.formats.Render(platform.Format, transformed, formatter.Options{
		Prefix: platform.Prefix,
	})
	if err != nil {
		return nil, &PlatformError{Platform: platform.Name, Stage: StageFormat, Err: err}
	}

	return artifact, nil
}

// Describe summarizes a platform configuration for listings and logs.
func Describe(platform Platform) string {
	transforms := "none"
	if len(platform.Transforms) > 0 {
		transforms = strings.Join(platform.Transforms, ", ")
	}
	return fmt.Sprintf("%s: transforms [%s] -> %s -> %s",
		platform.Name, transforms, platform.Format, platform.Destination)
}
