package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/bsaintjo/advent2024/pkg/cache"
	"github.com/bsaintjo/advent2024/pkg/input"
	"github.com/bsaintjo/advent2024/pkg/observability"
)

// Runner executes the pipeline with caching.
//
// The Runner holds no per-run state, so one Runner may serve concurrent
// Execute calls with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	// TTL for stored results. Zero uses DefaultTTL.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer uses DefaultKeyer, a nil cache disables caching and a nil
// logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute parses data, evaluates every sequence and aggregates the sums.
// A cached result for the same input and mode is returned with Cached set.
// Every call gets a fresh RunID.
func (r *Runner) Execute(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	key := r.Keyer.ResultKey(data, string(opts.Mode))
	if !opts.Refresh {
		if res, ok := r.lookup(ctx, key); ok {
			res.RunID = uuid.NewString()
			res.Cached = true
			r.Logger.Debug("cache hit", "key", key, "sequences", res.SequenceCount)
			return res, nil
		}
	}

	res, err := r.run(ctx, data, opts)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, res)
	return res, nil
}

func (r *Runner) run(ctx context.Context, data []byte, opts Options) (*Result, error) {
	hooks := observability.Pipeline()
	res := &Result{RunID: uuid.NewString(), Mode: opts.Mode}

	// Stage 1: Parse
	hooks.OnParseStart(ctx, len(data))
	parseStart := time.Now()
	p, err := input.ParseBytes(data)
	res.Stats.ParseTime = time.Since(parseStart)
	if err != nil {
		hooks.OnParseComplete(ctx, 0, 0, res.Stats.ParseTime, err)
		return nil, fmt.Errorf("parse: %w", err)
	}
	hooks.OnParseComplete(ctx, p.Rules.RuleCount(), len(p.Sequences), res.Stats.ParseTime, nil)
	res.RuleCount = p.Rules.RuleCount()

	r.Logger.Info("parsed input",
		"rules", res.RuleCount,
		"sequences", len(p.Sequences),
		"duration", res.Stats.ParseTime)

	// Stage 2: Evaluate
	hooks.OnEvaluateStart(ctx, string(opts.Mode), len(p.Sequences))
	evalStart := time.Now()
	seqs, err := Evaluate(ctx, p, opts.Mode, opts.Workers)
	res.Stats.EvalTime = time.Since(evalStart)
	if err != nil {
		hooks.OnEvaluateComplete(ctx, string(opts.Mode), 0, 0, res.Stats.EvalTime, err)
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	// Stage 3: Aggregate
	res.Sequences = seqs
	res.aggregate()
	hooks.OnEvaluateComplete(ctx, string(opts.Mode), res.ValidCount, res.InvalidCount, res.Stats.EvalTime, nil)

	r.Logger.Info("evaluated sequences",
		"mode", opts.Mode,
		"valid", res.ValidCount,
		"invalid", res.InvalidCount,
		"workers", opts.Workers,
		"duration", res.Stats.EvalTime)

	return res, nil
}

// lookup returns a cached result. Backend failures and undecodable entries
// count as misses.
func (r *Runner) lookup(ctx context.Context, key string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "error", err)
		observability.Cache().OnCacheMiss(ctx, "result")
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "result")
		return nil, false
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		r.Logger.Warn("discarding undecodable cache entry", "key", key, "error", err)
		observability.Cache().OnCacheMiss(ctx, "result")
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "result")
	return &res, true
}

func (r *Runner) store(ctx context.Context, key string, res *Result) {
	data, err := json.Marshal(res)
	if err != nil {
		r.Logger.Warn("cannot encode result for cache", "error", err)
		return
	}
	ttl := r.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "result", len(data))
}
