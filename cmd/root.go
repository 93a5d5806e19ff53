/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tavnit.
package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tavnit/cmd/build"
	"bennypowers.dev/tavnit/cmd/list"
	"bennypowers.dev/tavnit/cmd/validate"
	"bennypowers.dev/tavnit/cmd/version"
	"bennypowers.dev/tavnit/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tavnit",
	Short: "Transform design tokens into theme configurations",
	Long:  `tavnit flattens design token trees, runs transform pipelines over them, and renders theme configurations for utility-CSS frameworks and other targets.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			logger.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("prefix", "p", "", "Prefix for output variable names")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")
	_ = viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix"))

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
