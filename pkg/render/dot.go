package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/bsaintjo/advent2024/pkg/ordering"
)

// Options configures diagram generation.
type Options struct {
	// Sequence restricts the diagram to its pages and marks its violations.
	// Nil draws the whole relation.
	Sequence ordering.Sequence
}

const (
	violationFill = "#f8d7da"
	violationEdge = "#c0392b"
)

// ToDOT converts the relation to Graphviz DOT. Output is deterministic:
// nodes and edges are emitted in ascending page order.
func ToDOT(r *ordering.Rules, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph pages {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	if opts.Sequence == nil {
		for _, p := range r.Pages() {
			fmt.Fprintf(&buf, "  %d;\n", p)
		}
		buf.WriteString("\n")
		for _, pair := range r.Pairs() {
			fmt.Fprintf(&buf, "  %d -> %d;\n", pair.Before, pair.After)
		}
		buf.WriteString("}\n")
		return buf.String()
	}

	seq := opts.Sequence
	pos := positions(seq)
	bad := ordering.NewSet()
	for _, i := range ordering.Violations(seq, r) {
		bad[seq[i]] = struct{}{}
	}

	for _, p := range slices.Sorted(maps.Keys(pos)) {
		attrs := []string{fmt.Sprintf("label=\"%d\\n#%d\"", p, pos[p]+1)}
		if bad.Has(p) {
			attrs = append(attrs, "fillcolor=\""+violationFill+"\"")
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", p, strings.Join(attrs, ", "))
	}
	buf.WriteString("\n")
	for _, pair := range r.Restrict(seq).Pairs() {
		if pos[pair.After] < pos[pair.Before] {
			fmt.Fprintf(&buf, "  %d -> %d [color=\"%s\", penwidth=2];\n", pair.Before, pair.After, violationEdge)
			continue
		}
		fmt.Fprintf(&buf, "  %d -> %d;\n", pair.Before, pair.After)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// positions maps each page to its first index in s.
func positions(s ordering.Sequence) map[int]int {
	pos := make(map[int]int, len(s))
	for i, p := range s {
		if _, seen := pos[p]; !seen {
			pos[p] = i
		}
	}
	return pos
}

// RenderSVG lays out a DOT graph with Graphviz and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
