package matching

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the bipartite graph.
//
// Left vertices are drawn in one column and right vertices in another. If m
// is non-nil its matched edges are drawn bold; the remaining edges are
// dashed. Labels default to "L<i>" and "R<j>" when the label slices are too
// short.
func (g *Graph) ToDOT(leftLabels, rightLabels []string, m *Matching) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Compatibility {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=\"filled,rounded\", shape=box, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	buf.WriteString("  subgraph left {\n    rank=same;\n")
	for l := range g.Adj {
		fmt.Fprintf(&buf, "    l%d [label=%q];\n", l, label(leftLabels, l, "L"))
	}
	buf.WriteString("  }\n  subgraph right {\n    rank=same;\n")
	for r := 0; r < g.Right; r++ {
		fmt.Fprintf(&buf, "    r%d [label=%q];\n", r, label(rightLabels, r, "R"))
	}
	buf.WriteString("  }\n\n")

	for l, ns := range g.Adj {
		for _, r := range ns {
			if m != nil && l < len(m.PairLeft) && m.PairLeft[l] == r {
				fmt.Fprintf(&buf, "  l%d -> r%d [penwidth=2.5];\n", l, r)
			} else {
				fmt.Fprintf(&buf, "  l%d -> r%d [style=dashed, color=gray];\n", l, r)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func label(labels []string, i int, prefix string) string {
	if i < len(labels) && labels[i] != "" {
		return labels[i]
	}
	return fmt.Sprintf("%s%d", prefix, i)
}

// RenderSVG renders a DOT document as SVG.
//
// RenderSVG requires the Graphviz library (github.com/goccy/go-graphviz).
// Errors are returned if Graphviz cannot initialize, the DOT is malformed, or
// rendering fails.
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
