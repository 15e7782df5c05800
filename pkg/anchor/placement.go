package anchor

import (
	"fmt"
	"math"
)

// Length is an explicit size in pixels or Auto (intrinsic, content driven).
// The zero value is Auto.
type Length struct {
	px  float64
	set bool
}

// Auto is the content-driven length.
var Auto = Length{}

// Px returns an explicit length of v pixels.
func Px(v float64) Length { return Length{px: v, set: true} }

// IsAuto reports whether the length is content driven.
func (l Length) IsAuto() bool { return !l.set }

// Value returns the explicit pixel value and whether one is set.
func (l Length) Value() (float64, bool) { return l.px, l.set }

// Or returns the explicit value, or intrinsic when the length is Auto.
func (l Length) Or(intrinsic float64) float64 {
	if l.set {
		return l.px
	}
	return intrinsic
}

func (l Length) String() string {
	if !l.set {
		return "auto"
	}
	return fmt.Sprintf("%g", l.px)
}

// Span is an absolute interval along one axis.
type Span struct {
	Start float64
	Size  float64
}

// End returns the coordinate of the far edge.
func (s Span) End() float64 { return s.Start + s.Size }

// Placement is the alignment-relative position of an element along one axis.
//
// It is a tagged variant: the mode decides which numbers exist. Start, Center
// and End carry one offset and a size; Stretch carries a start and an end
// offset and no size. Unused numbers are not stored, so they cannot be read
// by mistake. The zero value is AtStart(0, Auto).
type Placement struct {
	align Align
	near  float64 // Start: start offset; Center: pseudo offset; End: end offset; Stretch: start offset
	far   float64 // Stretch only: end offset
	size  Length  // not used by Stretch
}

// AtStart places an element offset pixels from the start edge.
func AtStart(offset float64, size Length) Placement {
	return Placement{align: Start, near: offset, size: size}
}

// Centered places an element around the canvas midpoint using a pseudo
// offset (see [Center]).
func Centered(offset float64, size Length) Placement {
	return Placement{align: Center, near: offset, size: size}
}

// AtEnd places an element offset pixels from the end edge.
func AtEnd(offset float64, size Length) Placement {
	return Placement{align: End, near: offset, size: size}
}

// Stretched pins an element start pixels from the start edge and end pixels
// from the end edge.
func Stretched(start, end float64) Placement {
	return Placement{align: Stretch, near: start, far: end}
}

// Align returns the placement mode.
func (p Placement) Align() Align { return p.align }

// Offset returns the authoritative offset: distance from the start edge for
// Start and Stretch, the pseudo offset for Center, distance from the end edge
// for End.
func (p Placement) Offset() float64 { return p.near }

// Stretch returns the two offsets of a Stretch placement. ok is false for
// every other mode.
func (p Placement) Stretch() (start, end float64, ok bool) {
	if p.align != Stretch {
		return 0, 0, false
	}
	return p.near, p.far, true
}

// Size returns the explicit or Auto length. Stretch placements derive their
// size from the canvas and always report Auto here.
func (p Placement) Size() Length {
	if p.align == Stretch {
		return Auto
	}
	return p.size
}

// Margins returns the distances to the start and end edges as a
// margin-based layout system would write them: the unused side is zero.
func (p Placement) Margins() (start, end float64) {
	switch p.align {
	case End:
		return 0, p.near
	case Stretch:
		return p.near, p.far
	default:
		return p.near, 0
	}
}

// WithSize returns p with a new explicit or Auto length. It has no effect on
// Stretch placements.
func (p Placement) WithSize(size Length) Placement {
	if p.align != Stretch {
		p.size = size
	}
	return p
}

// Resolve returns the absolute rendered span on a canvas of the given extent.
// intrinsic is the content size used when the length is Auto.
func (p Placement) Resolve(extent, intrinsic float64) Span {
	switch p.align {
	case Stretch:
		return Span{Start: p.near, Size: math.Max(extent-p.near-p.far, 0)}
	case End:
		size := p.size.Or(intrinsic)
		return Span{Start: extent - size - p.near, Size: size}
	case Center:
		size := p.size.Or(intrinsic)
		return Span{Start: p.near + (extent-size-p.near)/2, Size: size}
	default:
		return Span{Start: p.near, Size: p.size.Or(intrinsic)}
	}
}

// Shift moves the placement by d pixels without clamping or snapping. The
// rendered span moves by d on a canvas of any extent; Center offsets move at
// double rate because the stored quantity spans two half gaps.
func (p Placement) Shift(d float64) Placement {
	switch p.align {
	case Center:
		p.near += 2 * d
	case End:
		p.near -= d
	case Stretch:
		p.near += d
		p.far -= d
	default:
		p.near += d
	}
	return p
}

func (p Placement) String() string {
	switch p.align {
	case Stretch:
		return fmt.Sprintf("stretch(%g,%g)", p.near, p.far)
	default:
		return fmt.Sprintf("%s(%g,%s)", p.align, p.near, p.size)
	}
}
