// Package render draws the page-ordering relation as a node-link diagram.
//
// [ToDOT] produces Graphviz DOT text: one node per page and one edge per
// rule, pointing from the page that must come first to the page that must
// come after it. Given a sequence, the diagram keeps only that sequence's
// pages and labels each with its position; rules the sequence breaks are
// drawn in red.
//
// [RenderSVG] lays the DOT out with Graphviz (compiled to WebAssembly by
// github.com/goccy/go-graphviz, so no system install is needed):
//
//	dot := render.ToDOT(rules, render.Options{})
//	svg, err := render.RenderSVG(ctx, dot)
package render
