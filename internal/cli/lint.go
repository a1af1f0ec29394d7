package cli

import (
	"github.com/spf13/cobra"

	"github.com/bsaintjo/advent2024/pkg/errors"
	"github.com/bsaintjo/advent2024/pkg/input"
	"github.com/bsaintjo/advent2024/pkg/ordering"
)

// lintReport collects relation problems that make reordering ambiguous.
type lintReport struct {
	Cycles    []ordering.Pair
	Sequences []sequenceLint
}

type sequenceLint struct {
	Index          int
	Line           int
	Contradictions []ordering.Pair
	Incomparable   []ordering.Pair
}

func (r lintReport) issues() int {
	n := len(r.Cycles)
	for _, s := range r.Sequences {
		n += len(s.Contradictions) + len(s.Incomparable)
	}
	return n
}

// lint inspects p without evaluating it.
func lint(p *input.Puzzle) lintReport {
	rep := lintReport{Cycles: ordering.Cycles(p.Rules)}
	for i, seq := range p.Sequences {
		sl := sequenceLint{
			Index:          i,
			Contradictions: ordering.Contradictions(seq, p.Rules),
			Incomparable:   ordering.Incomparable(seq, p.Rules),
		}
		if i < len(p.Lines) {
			sl.Line = p.Lines[i]
		}
		if len(sl.Contradictions)+len(sl.Incomparable) > 0 {
			rep.Sequences = append(rep.Sequences, sl)
		}
	}
	return rep
}

// lintCommand reports cycles and sequences the rules do not totally order.
func (c *CLI) lintCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lint FILE",
		Short: "Report rule cycles and sequences the rules cannot fully order",
		Long: `Report problems that make reordering ambiguous.

A rule cycle is reported by its closing rule. For each sequence, pairs of pages
ordered both ways and pairs with no rule between them are listed; reordering
such a sequence may not produce a valid order.`,
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

			rep := lint(p)
			w := cmd.OutOrStdout()
			for _, pair := range rep.Cycles {
				printWarning(w, "rule cycle closed by %s", pair)
			}
			for _, s := range rep.Sequences {
				for _, pair := range s.Contradictions {
					printWarning(w, "sequence #%d (line %d): %d and %d are ordered both ways", s.Index+1, s.Line, pair.Before, pair.After)
				}
				for _, pair := range s.Incomparable {
					printWarning(w, "sequence #%d (line %d): no rule orders %d and %d", s.Index+1, s.Line, pair.Before, pair.After)
				}
			}

			n := rep.issues()
			if n == 0 {
				printSuccess(w, "%d rules, %d sequences: no issues", p.Rules.RuleCount(), len(p.Sequences))
				return nil
			}
			printInfo(w, "%d issues", n)
			if strict {
				return errors.New(errors.ErrCodeInvalidInput, "lint found %d issues", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when issues are found")
	return cmd
}
