package anchor

import (
	"fmt"
	"strings"
)

// Align is the per-axis alignment mode of an element. It decides which of
// the axis' numbers are authoritative and how size changes map onto them.
type Align uint8

const (
	// Start anchors the element at a distance from the canvas start edge
	// (left or top).
	Start Align = iota
	// Center floats the element around the canvas midpoint. The stored offset
	// is a pseudo offset: rendered start = offset + (extent - size - offset) / 2.
	Center
	// End anchors the element at a distance from the canvas end edge
	// (right or bottom).
	End
	// Stretch pins both edges; the size is derived from the two offsets.
	Stretch
)

// Aligns lists every mode in declaration order.
var Aligns = []Align{Start, Center, End, Stretch}

var alignNames = [...]string{"start", "center", "end", "stretch"}

// String returns the axis-neutral name ("start", "center", "end", "stretch").
func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return fmt.Sprintf("align(%d)", uint8(a))
}

// Horizontal returns the name used for the horizontal axis ("left", "center",
// "right", "stretch").
func (a Align) Horizontal() string {
	switch a {
	case Start:
		return "left"
	case End:
		return "right"
	}
	return a.String()
}

// Vertical returns the name used for the vertical axis ("top", "center",
// "bottom", "stretch").
func (a Align) Vertical() string {
	switch a {
	case Start:
		return "top"
	case End:
		return "bottom"
	}
	return a.String()
}

// Next returns the mode following a in [Aligns], wrapping around.
func (a Align) Next() Align { return Aligns[(int(a)+1)%len(Aligns)] }

// Cycle is Next for an axis that may only stretch when stretch is set.
func (a Align) Cycle(stretch bool) Align {
	n := a.Next()
	if n == Stretch && !stretch {
		return n.Next()
	}
	return n
}

// ParseAlign accepts the axis-neutral names as well as the horizontal and
// vertical aliases (left/top, right/bottom, middle). Matching is case-insensitive.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "left", "top":
		return Start, nil
	case "center", "centre", "middle":
		return Center, nil
	case "end", "right", "bottom":
		return End, nil
	case "stretch":
		return Stretch, nil
	}
	return Start, fmt.Errorf("unknown alignment %q (want start, center, end or stretch)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) {
	if int(a) >= len(alignNames) {
		return nil, fmt.Errorf("invalid alignment %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	v, err := ParseAlign(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
