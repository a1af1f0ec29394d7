package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bsaintjo/advent2024/pkg/errors"
	"github.com/bsaintjo/advent2024/pkg/input"
	"github.com/bsaintjo/advent2024/pkg/ordering"
)

// EvaluateSequence checks one sequence and, when mode reorders, corrects it.
// An empty sequence fails with EMPTY_SEQUENCE.
func EvaluateSequence(seq ordering.Sequence, rules *ordering.Rules, mode Mode) (SequenceResult, error) {
	res := SequenceResult{Pages: seq}

	res.Violations = ordering.Violations(seq, rules)
	res.Valid = len(res.Violations) == 0

	counted := seq
	if !res.Valid && mode.Reorders() {
		res.Reordered = ordering.Reorder(seq, rules)
		counted = res.Reordered
	}

	mid, err := ordering.Middle(counted)
	if err != nil {
		return SequenceResult{}, errors.Wrap(errors.ErrCodeEmptySequence, err, "sequence has no pages")
	}
	res.Middle = mid
	return res, nil
}

// Evaluate checks every sequence of p. With workers > 1 sequences are
// evaluated concurrently; the returned slice is always in input order.
// The first failure cancels the remaining work and is returned.
func Evaluate(ctx context.Context, p *input.Puzzle, mode Mode, workers int) ([]SequenceResult, error) {
	results := make([]SequenceResult, len(p.Sequences))

	eval := func(i int) error {
		res, err := EvaluateSequence(p.Sequences[i], p.Rules, mode)
		if err != nil {
			return errors.Wrap(errors.GetCode(err), err, "sequence %d%s", i+1, lineSuffix(p, i))
		}
		res.Index = i
		if i < len(p.Lines) {
			res.Line = p.Lines[i]
		}
		results[i] = res
		return nil
	}

	if workers <= 1 {
		for i := range p.Sequences {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := eval(i); err != nil {
				return nil, err
			}
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range p.Sequences {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return eval(i)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func lineSuffix(p *input.Puzzle, i int) string {
	if i < len(p.Lines) {
		return fmt.Sprintf(" (line %d)", p.Lines[i])
	}
	return ""
}
