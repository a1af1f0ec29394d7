package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/bsaintjo/advent2024/pkg/errors"
	"github.com/bsaintjo/advent2024/pkg/ordering"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Puzzle is a parsed input: the rule relation and the sequences to check.
type Puzzle struct {
	Rules     *ordering.Rules
	Sequences []ordering.Sequence
	// Lines holds the 1-based input line of each sequence, parallel to Sequences.
	Lines []int
}

// ParseLines builds a Puzzle from an iterator of lines without line
// terminators. It is the entry point for callers that do their own I/O.
func ParseLines(lines iter.Seq[string]) (*Puzzle, error) {
	p := &Puzzle{Rules: ordering.NewRules()}
	inRules := true
	n := 0

	for line := range lines {
		n++
		line = strings.TrimRight(line, "\r")

		if inRules {
			if strings.TrimSpace(line) == "" {
				inRules = false
				continue
			}
			if err := p.Rules.AddRule(line); err != nil {
				return nil, errors.Wrap(errors.ErrCodeMalformedRule, err, "line %d", n)
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		seq, err := ordering.ParseSequence(line)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedSequence, err, "line %d", n)
		}
		p.Sequences = append(p.Sequences, seq)
		p.Lines = append(p.Lines, n)
	}

	if inRules {
		return nil, errors.New(errors.ErrCodeMissingSeparator,
			"no empty line between rules and sequences after %d lines", n)
	}
	return p, nil
}

// Parse reads a Puzzle from r. Parse does not close r.
func Parse(r io.Reader) (*Puzzle, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	p, err := ParseLines(func(yield func(string) bool) {
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
	})
	if scanErr := sc.Err(); scanErr != nil {
		return nil, fmt.Errorf("read input: %w", scanErr)
	}
	return p, err
}

// ParseBytes parses an in-memory input.
func ParseBytes(data []byte) (*Puzzle, error) {
	return Parse(bytes.NewReader(data))
}
