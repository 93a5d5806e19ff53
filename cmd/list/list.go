/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tavnit.
package list

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tavnit/fs"
	"bennypowers.dev/tavnit/loader"
	"bennypowers.dev/tavnit/resolve"
	"bennypowers.dev/tavnit/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List tokens from token files",
	Long:  `List all tokens from token files, grouped by category, with optional filtering.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("category", "", "Filter by token category")
	Cmd.Flags().Bool("resolved", false, "Show alias-resolved values")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	categoryFilter, _ := cmd.Flags().GetString("category")
	resolved, _ := cmd.Flags().GetBool("resolved")
	outFormat, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	tokens, err := loadTokens(filesystem, args, resolved)
	if err != nil {
		return err
	}

	if categoryFilter != "" {
		filtered := make([]*token.Token, 0)
		for _, tok := range tokens {
			if tok.Category == token.Category(categoryFilter) {
				filtered = append(filtered, tok)
			}
		}
		tokens = filtered
	}

	switch outFormat {
	case "json":
		return outputJSON(tokens, resolved)
	default:
		return outputTable(tokens, resolved)
	}
}

// loadTokens parses and flattens every file, keeping source order.
func loadTokens(filesystem fs.FileSystem, files []string, resolved bool) ([]*token.Token, error) {
	tokenLoader := loader.New()

	var allTokens []*token.Token
	for _, file := range files {
		tree, err := tokenLoader.ParseFile(filesystem, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", file, err)
			continue
		}

		tokens, err := resolve.Resolve(tree)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error flattening %s: %v\n", file, err)
			continue
		}

		if resolved {
			if err := resolve.ResolveAliases(tokens); err != nil {
				fmt.Fprintf(os.Stderr, "Error resolving %s: %v\n", file, err)
			}
		}

		allTokens = append(allTokens, tokens...)
	}

	return allTokens, nil
}

// outputTable prints tokens grouped under title-cased category headings.
func outputTable(tokens []*token.Token, resolved bool) error {
	caser := cases.Title(language.English)

	var current token.Category
	first := true
	for _, tok := range tokens {
		if first || tok.Category != current {
			if !first {
				fmt.Println()
			}
			fmt.Printf("%s\n", caser.String(string(tok.Category)))
			current = tok.Category
			first = false
		}

		value := tok.RawValue
		if resolved {
			value = tok.ResolvedValue
		}
		fmt.Printf("  %-40s %v\n", tok.Name, value)
	}
	return nil
}

func outputJSON(tokens []*token.Token, resolved bool) error {
	type tokenOutput struct {
		Name     string `json:"name"`
		Path     string `json:"path"`
		Category string `json:"category,omitempty"`
		Type     string `json:"type,omitempty"`
		Item     string `json:"item,omitempty"`
		Value    any    `json:"value"`
	}

	output := make([]tokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		value := tok.RawValue
		if resolved {
			value = tok.ResolvedValue
		}
		output = append(output, tokenOutput{
			Name:     tok.Name,
			Path:     tok.PathString(),
			Category: string(tok.Category),
			Type:     tok.Type,
			Item:     tok.Item,
			Value:    value,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
