// Package pipeline runs the parse → evaluate → aggregate flow shared by every
// pageorder command.
//
// # Stages
//
//  1. Parse: read the rules and sequences with [input.Parse]
//  2. Evaluate: check each sequence and reorder the invalid ones
//  3. Aggregate: sum the middle pages of valid and of corrected sequences
//
// Sequences are independent of each other and only read the rule relation,
// so [Evaluate] can spread them over a bounded number of goroutines. Results
// are stored by index and the sums are commutative, so output never depends
// on scheduling.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, data, pipeline.Options{Mode: pipeline.ModeCorrected})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Answer())
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/bsaintjo/advent2024/pkg/errors"
)

// Mode selects which aggregate a run answers.
type Mode string

const (
	// ModeValid sums the middle pages of sequences that are already valid.
	// Invalid sequences are not reordered.
	ModeValid Mode = "valid"
	// ModeCorrected sums the middle pages of invalid sequences after reordering.
	ModeCorrected Mode = "corrected"
	// ModeAll computes both sums.
	ModeAll Mode = "all"
)

// Modes lists every supported mode.
var Modes = []Mode{ModeValid, ModeCorrected, ModeAll}

// DefaultMode is used when Options.Mode is empty.
const DefaultMode = ModeAll

// DefaultTTL is how long cached results live. Results depend only on the
// input bytes, so they never go stale; the TTL only bounds cache growth.
const DefaultTTL = 7 * 24 * time.Hour

// ParseMode converts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Modes, m) {
		return "", errors.New(errors.ErrCodeInvalidMode, "unknown mode %q (want valid, corrected or all)", s)
	}
	return m, nil
}

// Reorders reports whether the mode reorders invalid sequences.
func (m Mode) Reorders() bool { return m != ModeValid }

// Options configures a pipeline run.
type Options struct {
	Mode Mode `json:"mode"`
	// Workers bounds concurrent sequence evaluation. 0 or 1 evaluates
	// sequentially.
	Workers int `json:"workers,omitempty"`
	// Refresh skips the cache lookup but still stores the fresh result.
	Refresh bool `json:"refresh,omitempty"`
}

// ValidateAndSetDefaults fills empty fields and rejects invalid ones.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if !slices.Contains(Modes, o.Mode) {
		return errors.New(errors.ErrCodeInvalidMode, "unknown mode %q", o.Mode)
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must not be negative, got %d", o.Workers)
	}
	return nil
}
