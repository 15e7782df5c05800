package preview

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/layout"
)

// CanvasNode is the DOT node id of the canvas root.
const CanvasNode = "canvas"

// Parents maps every element to its innermost enclosing container, or nil
// when only the canvas encloses it. This is the transitive reduction of the
// containment relation.
func Parents(store *layout.Store) map[*layout.Element]*layout.Element {
	elements := store.Elements()
	parents := make(map[*layout.Element]*layout.Element, len(elements))
	for _, e := range elements {
		var parent *layout.Element
		for _, c := range elements {
			if !c.IsContainer() || !store.IsInside(e, c) {
				continue
			}
			if parent == nil || store.IsInside(c, parent) {
				parent = c
			}
		}
		parents[e] = parent
	}
	return parents
}

// ContainmentDOT describes the containment tree as a Graphviz digraph.
// Containers are drawn dashed, and each node label carries the element's
// kind and alignment modes.
func ContainmentDOT(store *layout.Store) string {
	var buf bytes.Buffer
	buf.WriteString("digraph containment {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	size := store.Canvas()
	fmt.Fprintf(&buf, "  %q [label=%q, shape=plaintext];\n", CanvasNode, fmt.Sprintf("canvas %gx%g", size.W, size.H))
	buf.WriteString("\n")

	elements := store.Elements()
	for _, e := range elements {
		label := fmt.Sprintf("%s\n%s  %s/%s", e.Name, e.Kind, e.H.Align().Horizontal(), e.V.Align().Vertical())
		attrs := []string{fmt.Sprintf("label=%q", label)}
		if e.IsContainer() {
			attrs = append(attrs, "style=\"rounded,dashed\"")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", e.Name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	parents := Parents(store)
	for _, e := range elements {
		from := CanvasNode
		if p := parents[e]; p != nil {
			from = p.Name
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", from, e.Name)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOT lays out a DOT graph with Graphviz. format is "svg", "png" or
// "dot"; "dot" returns the input unchanged.
func RenderDOT(ctx context.Context, dot, format string) ([]byte, error) {
	var f graphviz.Format
	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		f = graphviz.SVG
	case "png":
		f = graphviz.PNG
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported graph format %q (want svg, png or dot)", format)
	}

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
	if err := gv.Render(ctx, g, f, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
