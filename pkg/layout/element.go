package layout

import (
	"github.com/google/uuid"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/geom"
)

// Element is one placed control on the canvas.
//
// Placements are mutated by the drag transforms, by nudging and by explicit
// realignment. Everything else about an element is fixed by its kind.
type Element struct {
	ID   uuid.UUID
	Name string
	Kind Kind

	H anchor.Placement // horizontal axis
	V anchor.Placement // vertical axis

	// Intrinsic is the content size that auto lengths resolve to. The hosting
	// toolkit measures it; the catalog supplies a default.
	Intrinsic geom.Size

	// Z is the stacking order. Higher values render on top.
	Z int
}

// Caps returns the element's immutable capabilities.
func (e *Element) Caps() Capabilities {
	info, _ := e.Kind.Info()
	return info.Caps
}

// CanStretchH reports whether the element may be stretched horizontally.
// Only width-resizable kinds can.
func (e *Element) CanStretchH() bool { return e.Caps().ResizeWidth }

// CanStretchV reports whether the element may be stretched vertically.
func (e *Element) CanStretchV() bool { return e.Caps().ResizeHeight }

// IsContainer reports whether the element can hold other elements.
func (e *Element) IsContainer() bool { return e.Caps().Container }

// Box returns the absolute rendered box on a canvas of the given size.
func (e *Element) Box(canvas geom.Size) geom.Rect {
	h := e.H.Resolve(canvas.W, e.Intrinsic.W)
	v := e.V.Resolve(canvas.H, e.Intrinsic.H)
	return geom.Rect{Left: h.Start, Top: v.Start, Width: h.Size, Height: v.Size}
}

// Realign switches both axes to new modes without moving the rendered box.
func (e *Element) Realign(h, v anchor.Align, canvas geom.Size) {
	e.H = e.H.Realign(h, canvas.W, e.Intrinsic.W)
	e.V = e.V.Realign(v, canvas.H, e.Intrinsic.H)
}

// Clone returns a copy of the element.
func (e *Element) Clone() *Element {
	c := *e
	return &c
}
