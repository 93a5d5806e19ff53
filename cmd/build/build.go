/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for tavnit.
package build

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	buildlib "bennypowers.dev/tavnit/build"
	"bennypowers.dev/tavnit/config"
	"bennypowers.dev/tavnit/format"
	"bennypowers.dev/tavnit/fs"
	"bennypowers.dev/tavnit/internal/logger"
	"bennypowers.dev/tavnit/loader"
	"bennypowers.dev/tavnit/token"
	"bennypowers.dev/tavnit/transform"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build [files...]",
	Short: "Build theme artifacts from token files",
	Long: `Build theme artifacts for every configured platform.

Token files given as arguments override the sources configured in
.config/tavnit.{yaml,yml,json}. Later files override earlier ones where
token paths collide.

Examples:
  # Build every platform from config
  tavnit build

  # Build explicit sources against the configured platforms
  tavnit build tokens/base.yaml tokens/brand.json

  # One-off build without a config file
  tavnit build --format tailwind --output theme.js tokens/*.yaml

  # Keep going when one platform fails
  tavnit build --continue-on-error`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Destination for a single ad-hoc platform")
	Cmd.Flags().StringP("format", "f", "", "Format for a single ad-hoc platform: "+strings.Join(format.Builtins().Names(), ", "))
	Cmd.Flags().StringArrayP("transform", "t", nil, "Transform for the ad-hoc platform (repeatable, ordered)")
	Cmd.Flags().Bool("continue-on-error", false, "Collect per-platform failures instead of stopping at the first")
	Cmd.Flags().Bool("dry-run", false, "Build without writing artifacts")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	transforms, _ := cmd.Flags().GetStringArray("transform")
	continueOnError, _ := cmd.Flags().GetBool("continue-on-error")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if (output == "") != (formatFlag == "") {
		return fmt.Errorf("--output and --format must be used together")
	}

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	sources := args
	if len(sources) == 0 {
		var err error
		sources, err = cfg.ExpandSources(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config sources: %w", err)
		}
	}
	if len(sources) == 0 {
		return fmt.Errorf("no token files specified and none found in config")
	}

	tree, err := parseAndMerge(filesystem, sources)
	if err != nil {
		return err
	}

	prefix := viper.GetString("prefix")
	if prefix == "" {
		prefix = cfg.Prefix
	}

	platforms := cfg.BuildPlatforms()
	if output != "" {
		// Ad-hoc platform from flags replaces the configured set
		platforms = []buildlib.Platform{{
			Name:        "cli",
			Transforms:  transforms,
			Format:      formatFlag,
			Destination: output,
			Prefix:      prefix,
		}}
	}
	if len(platforms) == 0 {
		return fmt.Errorf("no platforms configured; use --format and --output or add platforms to the config")
	}

	builder := buildlib.New(buildlib.Options{
		Transforms:      transform.Builtins(),
		Formats:         format.Builtins(),
		ContinueOnError: continueOnError || cfg.ContinueOnError,
	})

	result, err := builder.Run(tree, platforms)
	if err != nil {
		return err
	}

	var failures int
	for _, perr := range result.Errors {
		logger.Warn("%v", perr)
		failures++
	}

	if !dryRun {
		for _, platform := range platforms {
			artifact, ok := result.Artifacts[platform.Destination]
			if !ok {
				continue
			}
			if err := writeArtifact(filesystem, platform.Destination, artifact.Text); err != nil {
				logger.Warn("writing %s: %v", platform.Destination, err)
				failures++
				continue
			}
			logger.Info("Wrote %s", platform.Destination)
		}
	}

	if failures > 0 {
		return fmt.Errorf("failed to build %d platform(s)", failures)
	}
	return nil
}

// parseAndMerge parses every source into a tree and merges them in order.
func parseAndMerge(filesystem fs.FileSystem, sources []string) (*token.Tree, error) {
	tokenLoader := loader.New()

	trees := make([]*token.Tree, 0, len(sources))
	for _, source := range sources {
		tree, err := tokenLoader.ParseFile(filesystem, source)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", source, err)
		}
		trees = append(trees, tree)
	}

	merged, err := loader.Merge(trees...)
	if err != nil {
		return nil, fmt.Errorf("error merging token files: %w", err)
	}
	return merged, nil
}

// writeArtifact writes rendered text, creating parent directories as needed.
func writeArtifact(filesystem fs.FileSystem, path string, text []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return filesystem.WriteFile(path, text, 0644)
}
