package drag

import (
	"math"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/layout"
)

// Snapshot is the state of an element a transform starts from.
type Snapshot struct {
	H, V      anchor.Placement
	Intrinsic geom.Size
	Caps      layout.Capabilities
}

// Capture snapshots e.
func Capture(e *layout.Element) Snapshot {
	return Snapshot{H: e.H, V: e.V, Intrinsic: e.Intrinsic, Caps: e.Caps()}
}

// Result is the outcome of Move or Resize.
type Result struct {
	// H and V are the new placements. After a flip they are already
	// expressed in the new mode.
	H, V anchor.Placement
	// Applied is the delta that actually took effect after snapping and
	// clamping. It differs from the raw pointer delta near canvas edges.
	Applied geom.Point
	// FlipH and FlipV report an alignment change on that axis.
	FlipH, FlipV bool
}

// Flipped reports whether either axis changed alignment.
func (r Result) Flipped() bool { return r.FlipH || r.FlipV }

// Move translates the snapshot by the raw pointer delta d on a canvas of the
// given size.
//
// Offsets are snapped to g and clamped so the element stays on the canvas.
// Dragging a Start element past the far edge flips it to End, an End element
// past the near edge flips it to Start, and a Center element flips toward
// whichever edge it is pushed beyond. Stretch elements slide without changing
// size or mode. A zero delta returns the snapshot unchanged.
func Move(s Snapshot, canvas geom.Size, d geom.Point, g Grid) Result {
	if d.IsZero() {
		return Result{H: s.H, V: s.V}
	}
	var r Result
	r.H, r.Applied.X, r.FlipH = moveAxis(s.H, d.X, canvas.W, s.Intrinsic.W, g)
	r.V, r.Applied.Y, r.FlipV = moveAxis(s.V, d.Y, canvas.H, s.Intrinsic.H, g)
	return r
}

// Resize grows or shrinks the snapshot by the raw pointer delta d, moving the
// right and bottom edges.
//
// Axes the element cannot resize on ignore their delta. Sizes are snapped to
// g and never drop below the kind's minimum. Growing a Start or End element
// past the canvas edge flips that axis to Stretch. Center and Stretch axes
// never flip.
func Resize(s Snapshot, canvas geom.Size, d geom.Point, g Grid) Result {
	if !s.Caps.ResizeWidth {
		d.X = 0
	}
	if !s.Caps.ResizeHeight {
		d.Y = 0
	}
	r := Result{H: s.H, V: s.V}
	if d.IsZero() {
		return r
	}
	if s.Caps.ResizeWidth {
		r.H, r.Applied.X, r.FlipH = resizeAxis(s.H, d.X, canvas.W, s.Intrinsic.W, s.Caps.MinWidth, g)
	}
	if s.Caps.ResizeHeight {
		r.V, r.Applied.Y, r.FlipV = resizeAxis(s.V, d.Y, canvas.H, s.Intrinsic.H, s.Caps.MinHeight, g)
	}
	return r
}

func moveAxis(p anchor.Placement, d, extent, intrinsic float64, g Grid) (anchor.Placement, float64, bool) {
	size := p.Resolve(extent, intrinsic).Size
	o := p.Offset()
	to := p.Align()

	var out anchor.Placement
	var applied float64

	switch p.Align() {
	case anchor.Start:
		off := g.Snap(math.Max(o+d, 0))
		limit := roundLimit(extent - size)
		if off > limit {
			to = anchor.End
		}
		off = math.Min(off, limit)
		out, applied = anchor.AtStart(off, p.Size()), off-o

	case anchor.Center:
		off := o + 2*d
		lower := size - extent
		if off < lower {
			to = anchor.Start
		}
		off = g.Snap(math.Max(off, lower))
		upper := roundLimit(extent - size)
		if to == anchor.Center && off > upper {
			to = anchor.End
		}
		off = math.Min(off, upper)
		out, applied = anchor.Centered(off, p.Size()), (off-o)/2

	case anchor.End:
		off := g.Snap(math.Max(o-d, 0))
		limit := roundLimit(extent - size)
		if off > limit {
			to = anchor.Start
		}
		off = math.Min(off, limit)
		out, applied = anchor.AtEnd(off, p.Size()), o-off

	case anchor.Stretch:
		s0, e0, _ := p.Stretch()
		total := s0 + e0
		start := g.Snap(math.Max(s0+d, 0))
		end := total - start
		if end < 0 {
			start += end
			end = 0
		}
		out, applied = anchor.Stretched(start, end), start-s0
	}

	return settle(out, to, applied, extent, intrinsic)
}

func resizeAxis(p anchor.Placement, d, extent, intrinsic, minSize float64, g Grid) (anchor.Placement, float64, bool) {
	w0 := p.Resolve(extent, intrinsic).Size
	o := p.Offset()
	to := p.Align()

	var out anchor.Placement
	var applied float64

	switch p.Align() {
	case anchor.Start:
		w := math.Max(g.Snap(w0+d), minSize)
		limit := roundLimit(extent - o)
		if w > limit {
			to = anchor.Stretch
		}
		w = math.Min(w, limit)
		out, applied = anchor.AtStart(o, anchor.Px(w)), w-w0

	case anchor.Center:
		// The pseudo offset absorbs the growth so the left edge stays put.
		w := math.Max(g.Snap(w0+d), minSize)
		applied = w - w0
		off := math.Min(o+applied, roundLimit(extent-w))
		out = anchor.Centered(off, anchor.Px(w))

	case anchor.End:
		r := g.Snap(o - d)
		if r < 0 {
			to = anchor.Stretch
		}
		r = math.Max(r, 0)
		r = math.Min(r, w0+o-minSize)
		out, applied = anchor.AtEnd(r, anchor.Px(w0+o-r)), o-r

	case anchor.Stretch:
		start, e0, _ := p.Stretch()
		r := g.Snap(math.Max(e0-d, 0))
		r = math.Max(math.Min(r, extent-start-minSize), 0)
		out, applied = anchor.Stretched(start, r), e0-r
	}

	return settle(out, to, applied, extent, intrinsic)
}

// settle realigns out to mode to when a gesture flipped the axis.
func settle(out anchor.Placement, to anchor.Align, applied, extent, intrinsic float64) (anchor.Placement, float64, bool) {
	if to == out.Align() {
		return out, applied, false
	}
	return out.Realign(to, extent, intrinsic), applied, true
}
