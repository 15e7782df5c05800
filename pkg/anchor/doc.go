// Package anchor implements the alignment-relative position model of the
// layout engine.
//
// An element is never stored at absolute coordinates. Each axis carries a
// [Placement]: an [Align] mode plus only the numbers that mode needs.
//
//	Start    offset from the start edge, explicit or auto size
//	Center   pseudo offset, explicit or auto size
//	End      offset from the end edge, explicit or auto size
//	Stretch  start and end offsets, size derived from the canvas
//
// # Resolving
//
// [Placement.Resolve] turns a placement into an absolute [Span] for a given
// canvas extent. Auto lengths resolve to the intrinsic size supplied by the
// caller, which is the hosting toolkit's measurement of the content.
//
// # Realigning
//
// [Placement.Realign] switches the mode while keeping the rendered span
// fixed. This backs both explicit alignment changes and the flip gestures
// performed while dragging:
//
//	p := anchor.AtStart(40, anchor.Px(100))
//	q := p.Realign(anchor.End, 400, 0) // q.Offset() == 260
//	_ = q.Resolve(400, 0).Start        // 40, unchanged
package anchor
