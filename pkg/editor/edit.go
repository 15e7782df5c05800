package editor

import (
	"fmt"
	"strings"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/drag"
	"github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/layout"
	"github.com/matzehuels/hmibuilder/pkg/observability"
)

// Direction is an arrow-key nudge direction.
type Direction uint8

const (
	Left Direction = iota + 1
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection accepts left, right, up and down.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown direction %q (want left, right, up or down)", s)
}

func (d Direction) vector(step float64) geom.Point {
	switch d {
	case Left:
		return geom.Point{X: -step}
	case Right:
		return geom.Point{X: step}
	case Up:
		return geom.Point{Y: -step}
	case Down:
		return geom.Point{Y: step}
	}
	return geom.Point{}
}

// AddNew creates an element of kind at the paste offset, anchored to the top
// left with the kind's initial size, and selects it.
func (e *Editor) AddNew(kind layout.Kind, name string) (*layout.Element, error) {
	info, ok := kind.Info()
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidKind, "unknown element kind %q", kind)
	}
	off := e.opts.PasteOffset
	el, err := e.store.Add(kind, name, anchor.AtStart(off, info.Width), anchor.AtStart(off, info.Height))
	if err != nil {
		return nil, err
	}
	e.selected = el
	e.logger.Debug("element added", "kind", kind, "element", el.Name)
	return el, nil
}

// Rename renames el following the naming rules and returns the name
// assigned.
func (e *Editor) Rename(el *layout.Element, name string) string {
	old := el.Name
	got := e.store.Rename(el, name)
	e.logger.Debug("element renamed", "from", old, "to", got)
	return got
}

// Reanchor switches el to new alignment modes without moving its rendered
// box. A live drag is ended first because its snapshot would be stale.
//
// Stretch is refused on an axis the element cannot resize on: that axis
// keeps its current mode, the bell rings and Reanchor returns false.
func (e *Editor) Reanchor(el *layout.Element, h, v anchor.Align) bool {
	e.EndDrag()
	ok := true
	if h == anchor.Stretch && !el.CanStretchH() {
		h, ok = el.H.Align(), false
	}
	if v == anchor.Stretch && !el.CanStretchV() {
		v, ok = el.V.Align(), false
	}
	el.Realign(h, v, e.store.Canvas())
	e.logger.Debug("realigned", "element", el.Name, "horizontal", h.Horizontal(), "vertical", v.Vertical())
	observability.Edit().OnRealign(el.Name, h.Horizontal(), v.Vertical())
	if !ok {
		e.bell("align", el)
	}
	return ok
}

// Nudge moves el one step in dir, ten steps when big is set. Nudges clamp and
// flip at the canvas edges like pointer moves but are not snapped to the
// grid. A container carries its contents unless detach is set. It returns
// the applied delta; a zero delta rings the bell.
func (e *Editor) Nudge(el *layout.Element, dir Direction, big, detach bool) (geom.Point, bool) {
	if el == nil {
		e.bell("nudge", nil)
		return geom.Point{}, false
	}
	e.EndDrag()

	step := e.opts.NudgeStep
	if big {
		step = e.opts.BigNudgeStep
	}

	var followers []*layout.Element
	if el.IsContainer() && !detach {
		followers = e.store.CollectContained(el)
	}

	r := drag.Move(drag.Capture(el), e.store.Canvas(), dir.vector(step), 0)
	if r.Applied.IsZero() {
		e.bell("nudge", el)
		return geom.Point{}, false
	}

	el.H, el.V = r.H, r.V
	for _, f := range followers {
		f.H = f.H.Shift(r.Applied.X)
		f.V = f.V.Shift(r.Applied.Y)
	}
	e.logger.Debug("nudged", "element", el.Name, "dir", dir, "dx", r.Applied.X, "dy", r.Applied.Y, "flipped", r.Flipped())
	return r.Applied, true
}

// ToFront raises el, and a container's contents with it, above everything
// else. Raising a plain element that is already on top rings the bell.
func (e *Editor) ToFront(el *layout.Element) bool {
	return e.restack("front", el, e.store.ToFront)
}

// ToBack lowers el, and a container's contents with it, below everything
// else. Lowering a plain element that is already at the bottom rings the
// bell.
func (e *Editor) ToBack(el *layout.Element) bool {
	return e.restack("back", el, e.store.ToBack)
}

func (e *Editor) restack(op string, el *layout.Element, fn func(*layout.Element) bool) bool {
	if el == nil {
		e.bell(op, nil)
		return false
	}
	moved := 1
	if el.IsContainer() {
		moved += len(e.store.CollectContained(el))
	}
	if !fn(el) {
		e.bell(op, el)
		return false
	}
	e.logger.Debug("restacked", "op", op, "element", el.Name, "moved", moved, "z", el.Z)
	observability.Edit().OnOrderChange(op, el.Name, moved)
	return true
}

// Delete removes el, and a container's contents with it. A drag involving a
// removed element is ended and a removed selection is cleared. Deleting
// nothing rings the bell.
func (e *Editor) Delete(el *layout.Element) []*layout.Element {
	if el == nil {
		e.bell("delete", nil)
		return nil
	}
	e.EndDrag()

	removed := e.store.Delete(el)
	for _, r := range removed {
		if r == e.selected {
			e.selected = nil
		}
	}
	e.logger.Debug("deleted", "element", el.Name, "removed", len(removed))
	return removed
}
