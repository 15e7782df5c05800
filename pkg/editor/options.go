package editor

import (
	"fmt"

	"github.com/matzehuels/hmibuilder/pkg/drag"
	"github.com/matzehuels/hmibuilder/pkg/guide"
)

const (
	// DefaultBigStepFactor multiplies the nudge step for big nudges.
	DefaultBigStepFactor = 10

	// DefaultPasteOffset is how far from the canvas origin new elements land.
	DefaultPasteOffset = 12.0
)

// Options tunes the editor. The zero value of any field selects its default.
type Options struct {
	// Grid is the snapping unit for pointer drags.
	Grid drag.Grid
	// GuideThreshold is the snap guide activation distance in pixels.
	GuideThreshold float64
	// NudgeStep is the distance of one arrow-key nudge. Defaults to the grid
	// unit.
	NudgeStep float64
	// BigNudgeStep is the distance of a big nudge. Defaults to ten steps.
	BigNudgeStep float64
	// PasteOffset shifts newly added elements away from the canvas corner.
	PasteOffset float64
}

// ValidateAndSetDefaults fills zero fields and rejects negative ones.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Grid < 0 || o.GuideThreshold < 0 || o.NudgeStep < 0 || o.BigNudgeStep < 0 || o.PasteOffset < 0 {
		return fmt.Errorf("editor options must not be negative: %+v", *o)
	}
	if o.Grid == 0 {
		o.Grid = drag.DefaultGrid
	}
	if o.GuideThreshold == 0 {
		o.GuideThreshold = guide.DefaultThreshold
	}
	if o.NudgeStep == 0 {
		o.NudgeStep = float64(o.Grid)
	}
	if o.BigNudgeStep == 0 {
		o.BigNudgeStep = DefaultBigStepFactor * o.NudgeStep
	}
	if o.PasteOffset == 0 {
		o.PasteOffset = DefaultPasteOffset
	}
	return nil
}
