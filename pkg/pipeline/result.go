package pipeline

import (
	"time"

	"github.com/bsaintjo/advent2024/pkg/ordering"
)

// SequenceResult is the verdict for one input sequence.
type SequenceResult struct {
	Index int `json:"index" yaml:"index"`
	// Line is the 1-based input line, or 0 when the puzzle was built in memory.
	Line  int               `json:"line,omitempty" yaml:"line,omitempty"`
	Pages ordering.Sequence `json:"pages" yaml:"pages,flow"`
	Valid bool              `json:"valid" yaml:"valid"`
	// Violations lists the positions whose ahead-set breaks the rules.
	Violations []int `json:"violations,omitempty" yaml:"violations,omitempty,flow"`
	// Reordered is set for invalid sequences when the mode reorders.
	Reordered ordering.Sequence `json:"reordered,omitempty" yaml:"reordered,omitempty,flow"`
	// Middle is the middle page of Reordered when set, otherwise of Pages.
	Middle int `json:"middle" yaml:"middle"`
}

// Stats records timing for a run.
type Stats struct {
	ParseTime time.Duration `json:"parse_time" yaml:"parse_time"`
	EvalTime  time.Duration `json:"eval_time" yaml:"eval_time"`
}

// Result is the outcome of a pipeline run.
type Result struct {
	RunID         string           `json:"run_id" yaml:"run_id"`
	Mode          Mode             `json:"mode" yaml:"mode"`
	RuleCount     int              `json:"rule_count" yaml:"rule_count"`
	SequenceCount int              `json:"sequence_count" yaml:"sequence_count"`
	ValidCount    int              `json:"valid_count" yaml:"valid_count"`
	InvalidCount  int              `json:"invalid_count" yaml:"invalid_count"`
	ValidSum      int              `json:"valid_sum" yaml:"valid_sum"`
	CorrectedSum  int              `json:"corrected_sum" yaml:"corrected_sum"`
	Sequences     []SequenceResult `json:"sequences" yaml:"sequences"`
	Stats         Stats            `json:"stats" yaml:"stats"`
	Cached        bool             `json:"cached" yaml:"cached"`
}

// Answer returns the aggregate the mode asks for: the valid sum, the
// corrected sum, or for ModeAll their total.
func (r *Result) Answer() int {
	switch r.Mode {
	case ModeValid:
		return r.ValidSum
	case ModeCorrected:
		return r.CorrectedSum
	default:
		return r.ValidSum + r.CorrectedSum
	}
}

// aggregate fills the counters and sums from r.Sequences.
func (r *Result) aggregate() {
	r.SequenceCount = len(r.Sequences)
	r.ValidCount, r.InvalidCount = 0, 0
	r.ValidSum, r.CorrectedSum = 0, 0
	for _, s := range r.Sequences {
		if s.Valid {
			r.ValidCount++
			r.ValidSum += s.Middle
			continue
		}
		r.InvalidCount++
		if s.Reordered != nil {
			r.CorrectedSum += s.Middle
		}
	}
}
