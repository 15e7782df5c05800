package anchor

import "math"

// Round rounds v to the nearest whole pixel with a +0.5 bias and a floor, so
// the truncation direction is the same for positive and negative offsets.
func Round(v float64) float64 { return math.Floor(v + 0.5) }

// Realign re-derives the placement for mode to so that the rendered span on
// a canvas of the given extent is unchanged. Realigning to the current mode
// returns p as is.
//
// With a = rendered start, s = rendered size and b = extent - s - a:
//
//	Start   -> offset a
//	End     -> offset b
//	Center  -> pseudo offset a - b
//	Stretch -> offsets (a, b), explicit size dropped
//
// Leaving Stretch turns the derived size into an explicit one. Every stored
// number is passed through [Round]. A Stretch result whose offsets would
// leave a negative size has its end offset clamped so the size is zero.
func (p Placement) Realign(to Align, extent, intrinsic float64) Placement {
	if to == p.align {
		return p
	}

	span := p.Resolve(extent, intrinsic)
	near := span.Start
	far := extent - span.Size - span.Start

	size := p.size
	if p.align == Stretch {
		size = Px(Round(span.Size))
	}

	switch to {
	case Start:
		return AtStart(Round(near), size)
	case End:
		return AtEnd(Round(far), size)
	case Center:
		return Centered(Round(near-far), size)
	default:
		start, end := Round(near), Round(far)
		if extent-start-end < 0 {
			end = extent - start
		}
		return Stretched(start, end)
	}
}
