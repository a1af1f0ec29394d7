package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bsaintjo/advent2024/pkg/errors"
	"github.com/bsaintjo/advent2024/pkg/input"
	"github.com/bsaintjo/advent2024/pkg/render"
)

// graphCommand draws the rule relation as DOT or SVG.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		sequence int
	)

	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Draw the ordering rules as a Graphviz diagram",
		Long: `Draw the ordering rules as a Graphviz diagram.

Without --output the DOT source is printed. An output ending in .svg is laid
out with Graphviz; any other extension receives DOT. With --sequence N only
the pages of the Nth sequence are drawn and the rules it breaks are red.`,
		Example: `  pageorder graph input.txt > rules.dot
  pageorder graph input.txt -o rules.svg
  pageorder graph input.txt -o seq4.svg --sequence 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			p, err := input.ParseBytes(data)
			if err != nil {
				return err
			}

			var opts render.Options
			if sequence != 0 {
				if sequence < 1 || sequence > len(p.Sequences) {
					return errors.New(errors.ErrCodeInvalidInput, "sequence %d out of range (input has %d)", sequence, len(p.Sequences))
				}
				opts.Sequence = p.Sequences[sequence-1]
			}

			dot := render.ToDOT(p.Rules, opts)
			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}

			out := []byte(dot)
			if strings.EqualFold(filepath.Ext(output), ".svg") {
				prog := newProgress(c.Logger)
				out, err = render.RenderSVG(cmd.Context(), dot)
				if err != nil {
					return err
				}
				prog.done("Rendered SVG")
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file (.svg renders, otherwise DOT)")
	cmd.Flags().IntVarP(&sequence, "sequence", "s", 0, "draw only the pages of the Nth sequence (1-based)")
	return cmd
}
