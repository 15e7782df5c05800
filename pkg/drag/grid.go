package drag

import "math"

// Grid is the snapping unit in pixels. A unit of zero or less disables
// snapping.
type Grid float64

// DefaultGrid is the editor's standard snapping unit.
const DefaultGrid Grid = 4

// Snap rounds v to the nearest grid multiple. Halfway values round to the
// even multiple.
func (g Grid) Snap(v float64) float64 {
	if g <= 0 {
		return v
	}
	u := float64(g)
	return math.RoundToEven(v/u) * u
}

// roundLimit rounds a clamping limit to a whole pixel.
func roundLimit(v float64) float64 { return math.RoundToEven(v) }
