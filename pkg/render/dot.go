package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/boxflow/pkg/layout"
)

// ToDOT converts a solved layout tree to Graphviz DOT format. Each node
// becomes a box annotated with its solved size and position; edges follow
// the parent-child structure. The resulting DOT string can be rendered
// with [RenderSVG].
func ToDOT(root layout.Node) string {
	return DocumentDOT(Document{Blocks: Flatten(root)})
}

// DocumentDOT converts a flattened document to Graphviz DOT format. It
// carries the same content as [ToDOT] but works from serialized blocks,
// so cached documents can be rendered without re-solving the tree.
func DocumentDOT(d Document) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, b := range d.Blocks {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", b.ID, dotLabel(b))
	}

	buf.WriteString("\n")
	for _, b := range d.Blocks {
		if b.Parent != "" {
			fmt.Fprintf(&buf, "  %q -> %q;\n", b.Parent, b.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(b Block) string {
	name := b.Label
	if name == "" {
		name = b.Kind
	}
	return fmt.Sprintf("%s\n%.0fx%.0f @ %.0f,%.0f", name, b.Width, b.Height, b.X, b.Y)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the outer svg tag so the image starts at the
// origin and carries explicit pixel dimensions. Graphviz emits offset
// viewBoxes that confuse downstream viewers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
