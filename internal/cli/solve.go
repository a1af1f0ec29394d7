package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bsaintjo/advent2024/pkg/pipeline"
)

// checkCommand prints the sum of middle pages of already-valid sequences.
func (c *CLI) checkCommand() *cobra.Command {
	return c.answerCommand(pipeline.ModeValid,
		"check FILE",
		"Sum the middle pages of sequences that satisfy the rules")
}

// fixCommand prints the sum of middle pages of corrected sequences.
func (c *CLI) fixCommand() *cobra.Command {
	return c.answerCommand(pipeline.ModeCorrected,
		"fix FILE",
		"Reorder failing sequences and sum their middle pages")
}

// answerCommand builds a command that prints a single number, for scripts.
func (c *CLI) answerCommand(mode pipeline.Mode, use, short string) *cobra.Command {
	var (
		workers int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = c.Config.Workers
			}
			res, err := c.run(cmd, args[0], pipeline.Options{Mode: mode, Workers: workers}, noCache)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Answer())
			return err
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "evaluate sequences on N goroutines")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	return cmd
}

// solveCommand prints the full per-sequence report.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		mode    string
		format  string
		workers int
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Evaluate every sequence and print a report",
		Long: `Evaluate every sequence and print a report.

Modes:
  valid       sum the middle pages of valid sequences
  corrected   reorder invalid sequences and sum their middle pages
  all         both (default)

Formats: text, json, yaml.`,
		Example: `  pageorder solve input.txt
  pageorder solve --mode corrected --format json input.txt
  cat input.txt | pageorder solve -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("mode") {
				mode = c.Config.Mode
			}
			if !flags.Changed("format") {
				format = c.Config.Format
			}
			if !flags.Changed("workers") {
				workers = c.Config.Workers
			}

			m, err := pipeline.ParseMode(mode)
			if err != nil {
				return err
			}
			if err := validateFormat(format); err != nil {
				return err
			}

			res, err := c.run(cmd, args[0], pipeline.Options{Mode: m, Workers: workers, Refresh: refresh}, noCache)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, format)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(pipeline.DefaultMode), "valid, corrected or all")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "evaluate sequences on N goroutines")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached result exists")
	return cmd
}
