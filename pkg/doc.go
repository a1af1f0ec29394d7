// Package pkg holds the pageorder libraries.
//
// # Overview
//
// pageorder checks page sequences against "A|B" precedence rules, reorders
// the sequences that break them and sums their middle pages. The libraries
// split into:
//
//  1. [ordering] - the rule relation, validity, reordering and diagnostics
//  2. [input] - parsing the two-section text input
//  3. [pipeline] - orchestration (parse → evaluate → aggregate) with caching
//  4. [cache] - null, file and Redis result caches
//  5. [render] - Graphviz diagrams of the relation
//
// Supporting packages: [errors] for coded errors, [observability] for
// instrumentation hooks and [buildinfo] for version stamping.
//
// # Data Flow
//
//	rules + sequences (text)
//	         ↓
//	    [input] package (Puzzle)
//	         ↓
//	    [ordering] package (IsValid, Reorder, Middle)
//	         ↓
//	    [pipeline] package (Result with both sums)
//
// # Quick Start
//
//	p, err := input.Parse(r)
//	if err != nil {
//	    return err
//	}
//	sum := 0
//	for _, seq := range p.Sequences {
//	    if !ordering.IsValid(seq, p.Rules) {
//	        mid, _ := ordering.Middle(ordering.Reorder(seq, p.Rules))
//	        sum += mid
//	    }
//	}
//
// [ordering]: https://pkg.go.dev/github.com/bsaintjo/advent2024/pkg/ordering
// [input]: https://pkg.go.dev/github.com/bsaintjo/advent2024/pkg/input
// [pipeline]: https://pkg.go.dev/github.com/bsaintjo/advent2024/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/bsaintjo/advent2024/pkg/cache
// [render]: https://pkg.go.dev/github.com/bsaintjo/advent2024/pkg/render
// [errors]: https://pkg.go.dev/github.com/bsaintjo/advent2024/pkg/errors
// [observability]: https://pkg.go.dev/github.com/bsaintjo/advent2024/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/bsaintjo/advent2024/pkg/buildinfo
package pkg
