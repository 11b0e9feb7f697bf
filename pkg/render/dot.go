// Package render exports conflict graphs to Graphviz DOT and renders them.
//
// ToDOT is a pure function over a graph and an optional highlight set (an
// independent-set result, typically); RenderSVG and RenderPNG turn the DOT
// text into images via Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/anagraph/anagraph/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Name is the graph name in the DOT output. Empty means "G".
	Name string
}

// ToDOT converts an undirected graph to Graphviz DOT format.
// Vertices in highlight are drawn filled so an independent-set result
// stands out against the rest of the conflict graph. Vertex labels come
// from the vertex values' default formatting.
func ToDOT[V comparable](g *graph.Graph[V], highlight []V, opts Options) string {
	name := opts.Name
	if name == "" {
		name = "G"
	}
	marked := make(map[V]bool, len(highlight))
	for _, v := range highlight {
		marked[v] = true
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph %s {\n", name)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		if marked[v] {
			fmt.Fprintf(&buf, "  %q [fillcolor=palegreen];\n", fmt.Sprint(v))
		} else {
			fmt.Fprintf(&buf, "  %q;\n", fmt.Sprint(v))
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", fmt.Sprint(e.From), fmt.Sprint(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
