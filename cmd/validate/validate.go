/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tavnit.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tavnit/config"
	"bennypowers.dev/tavnit/fs"
	"bennypowers.dev/tavnit/loader"
	"bennypowers.dev/tavnit/resolve"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate token files",
	Long:  `Validate token files for malformed tokens, duplicate paths, and unresolvable references.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
	Cmd.Flags().Bool("known-categories", false, "Warn on categories outside the known set")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	knownCategories, _ := cmd.Flags().GetBool("known-categories")

	filesystem := fs.NewOSFileSystem()
	tokenLoader := loader.New()

	cfg := config.LoadOrDefault(filesystem, ".")

	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandSources(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config sources: %w", err)
		}
		files = expanded
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	hasErrors := false

	for _, file := range files {
		if !quiet {
			fmt.Printf("Validating %s...\n", file)
		}

		tree, err := tokenLoader.ParseFile(filesystem, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		tokens, err := resolve.Resolve(tree)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error flattening %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		graph := resolve.BuildDependencyGraph(tokens)
		if cycle := graph.FindCycle(); cycle != nil {
			fmt.Fprintf(os.Stderr, "Circular reference in %s: %v\n", file, cycle)
			hasErrors = true
			continue
		}

		if err := resolve.ResolveAliases(tokens); err != nil {
			fmt.Fprintf(os.Stderr, "Resolution error in %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		if knownCategories {
			for _, tok := range tokens {
				if !tok.Category.Known() {
					fmt.Fprintf(os.Stderr, "Warning: %s: unknown category %q\n", tok.PathString(), tok.Category)
				}
			}
		}

		if !quiet {
			fmt.Printf("  %d tokens\n", len(tokens))
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Println("All files valid.")
	}
	return nil
}
