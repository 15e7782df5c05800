// Package guide finds snap guides: the nearest sibling edge to the dragged
// element's start edge on each axis.
//
// Guides are visual only. They never alter the drag result.
package guide

import (
	"math"
	"sort"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/layout"
)

// DefaultThreshold is the distance in pixels below which a sibling edge
// becomes an active guide.
const DefaultThreshold = 40.0

// Line is one axis' guide state.
type Line struct {
	// Edge is the dragged element's edge coordinate.
	Edge float64
	// Position is the matched sibling edge. Only meaningful when Active.
	Position float64
	Active   bool
}

// Guides holds the vertical line (x coordinates) and the horizontal line
// (y coordinates).
type Guides struct {
	Vertical   Line
	Horizontal Line
}

// Finder holds the candidate edges collected at drag start.
type Finder struct {
	threshold  float64
	vertical   []float64
	horizontal []float64
}

// NewFinder collects candidate edges from elements, skipping the target and
// every element skip reports true for (the lockstep set of a container move).
//
// Vertical candidates are the start offsets of elements whose horizontal mode
// is Start or Stretch; horizontal candidates likewise for the vertical axis.
// An axis on which the target itself is End or Center aligned gets no
// candidates. A threshold of zero or less selects [DefaultThreshold].
func NewFinder(target *layout.Element, elements []*layout.Element, skip func(*layout.Element) bool, threshold float64) *Finder {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	f := &Finder{threshold: threshold}
	wantV, wantH := startAnchored(target.H), startAnchored(target.V)
	for _, e := range elements {
		if e == target || (skip != nil && skip(e)) {
			continue
		}
		if wantV && startAnchored(e.H) {
			f.vertical = append(f.vertical, e.H.Offset())
		}
		if wantH && startAnchored(e.V) {
			f.horizontal = append(f.horizontal, e.V.Offset())
		}
	}
	f.vertical = sortedUnique(f.vertical)
	f.horizontal = sortedUnique(f.horizontal)
	return f
}

// Candidates returns the sorted, de-duplicated candidate edges.
func (f *Finder) Candidates() (vertical, horizontal []float64) {
	return f.vertical, f.horizontal
}

// Find resolves the target's start edges on the canvas and matches each
// against the candidates.
func (f *Finder) Find(target *layout.Element, canvas geom.Size) Guides {
	box := target.Box(canvas)
	var g Guides
	g.Vertical.Edge = box.Left
	g.Vertical.Position, g.Vertical.Active = Nearest(f.vertical, box.Left, f.threshold)
	g.Horizontal.Edge = box.Top
	g.Horizontal.Position, g.Horizontal.Active = Nearest(f.horizontal, box.Top, f.threshold)
	return g
}

// Nearest scans the ascending candidates for the one closest to edge. A match
// must be strictly closer than threshold. On a tie the lower candidate wins.
func Nearest(candidates []float64, edge, threshold float64) (float64, bool) {
	best, found := 0.0, false
	minDist := threshold
	for _, c := range candidates {
		d := c - edge
		if math.Abs(d) < minDist {
			minDist = math.Abs(d)
			best, found = c, true
		}
		if d >= threshold {
			break
		}
	}
	return best, found
}

// ResizeEdges reports the target's far edges, which a shell shows while a
// resize is in progress. No guide is active during a resize.
func ResizeEdges(target *layout.Element, canvas geom.Size) Guides {
	box := target.Box(canvas)
	return Guides{
		Vertical:   Line{Edge: box.Right()},
		Horizontal: Line{Edge: box.Bottom()},
	}
}

func startAnchored(p anchor.Placement) bool {
	return p.Align() == anchor.Start || p.Align() == anchor.Stretch
}

func sortedUnique(v []float64) []float64 {
	if len(v) == 0 {
		return nil
	}
	sort.Float64s(v)
	out := v[:1]
	for _, x := range v[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
