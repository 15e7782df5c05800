// Package drag implements the pointer-driven move and resize transforms.
//
// [Move] and [Resize] are pure: they take a [Snapshot] of an element as it was
// when the drag began, the canvas size and the raw pointer delta, and return
// new placements together with the delta that actually took effect. Deltas
// are always measured from the drag origin, never accumulated per event, so
// rounding never drifts.
//
// Near the canvas edges the transforms clamp and, for the gestures below,
// flip the axis to a new alignment while keeping the rendered box in place:
//
//	move   Start  past the far edge   -> End
//	move   End    past the near edge  -> Start
//	move   Center past either edge    -> Start or End
//	resize Start  past the far edge   -> Stretch
//	resize End    past the far edge   -> Stretch
//
// A [Session] wraps one live drag. It writes each result to the target,
// carries lockstep followers (the contents of a dragged container) and rebases
// itself after a flip.
package drag
