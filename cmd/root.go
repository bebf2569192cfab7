// Package cmd implements the easyread CLI using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/easyread/core"
	"github.com/gaurav-prasanna/easyread/core/logging"
)

var (
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "easyread",
	Short: "easyread rewrites articles for easier reading",
	Long: `easyread fetches articles and rewrites their prose at one of three
reading levels (original, intermediate, simple) while keeping the page
structure intact.

Usage:
  easyread article <url> --level simple --markdown
  easyread rewrite notes.txt --level intermediate
  easyread feed --category tech
  easyread serve --addr :8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := logging.FromEnv()
		if cmd.Flags().Changed("log-level") || cfg.Level == "" {
			cfg.Level = flagLogLevel
		}
		if cmd.Flags().Changed("log-format") || cfg.Format == "" {
			cfg.Format = flagLogFormat
		}
		return logging.Init(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error (env LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "console", "Log format: console or json (env LOG_FORMAT)")
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// levelFlag parses a --level value.
func levelFlag(raw string) (core.Difficulty, error) {
	level, err := core.ParseDifficulty(raw)
	if err != nil {
		return "", fmt.Errorf("--level: %w", err)
	}
	return level, nil
}
