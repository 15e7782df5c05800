package editor

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hmibuilder/pkg/drag"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/guide"
	"github.com/matzehuels/hmibuilder/pkg/layout"
	"github.com/matzehuels/hmibuilder/pkg/observability"
)

// State is the drag state machine position.
type State uint8

const (
	Idle State = iota
	DraggingMove
	DraggingSize
)

func (s State) String() string {
	switch s {
	case DraggingMove:
		return "dragging-move"
	case DraggingSize:
		return "dragging-size"
	}
	return "idle"
}

// Button is the pointer button of a press.
type Button uint8

const (
	ButtonLeft Button = iota + 1
	ButtonRight
)

// Modifiers is the set of keyboard modifiers held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
)

// Has reports whether every modifier in m2 is held.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger for drag and edit events. Events are logged at
// debug level.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithOptions replaces the default tuning. Invalid options are ignored.
func WithOptions(o Options) Option {
	return func(e *Editor) {
		if err := o.ValidateAndSetDefaults(); err == nil {
			e.opts = o
		}
	}
}

// WithBell registers a callback for gestures that had no effect. op names the
// gesture ("press", "nudge", "front", ...).
func WithBell(fn func(op string)) Option {
	return func(e *Editor) { e.onBell = fn }
}

// Editor coordinates one canvas: it owns the element store, the selection,
// the drag state machine and the live session.
//
// Every event is handled to completion before the next. An Editor is not
// safe for concurrent use; shells that receive events from several
// goroutines serialise them.
type Editor struct {
	store  *layout.Store
	opts   Options
	logger *log.Logger
	onBell func(op string)

	state    State
	session  *drag.Session
	finder   *guide.Finder
	guides   guide.Guides
	selected *layout.Element
	started  time.Time
}

// New returns an editor for store.
func New(store *layout.Store, opts ...Option) *Editor {
	e := &Editor{store: store, logger: log.Default()}
	_ = e.opts.ValidateAndSetDefaults()
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the element store.
func (e *Editor) Store() *layout.Store { return e.store }

// Options returns the effective tuning.
func (e *Editor) Options() Options { return e.opts }

// State returns the drag state.
func (e *Editor) State() State { return e.state }

// Session returns the live drag session, or nil when idle.
func (e *Editor) Session() *drag.Session { return e.session }

// Selected returns the selected element, or nil.
func (e *Editor) Selected() *layout.Element { return e.selected }

// Select makes el the selection. nil clears it.
func (e *Editor) Select(el *layout.Element) { e.selected = el }

// Guides returns the snap guides of the latest drag update. Outside a drag
// both lines are inactive.
func (e *Editor) Guides() guide.Guides { return e.guides }

// =============================================================================
// Pointer events
// =============================================================================

// PointerDown selects the top-most element under p and starts a drag on it:
// left moves, right resizes. A left press on a container carries everything
// inside it unless Shift is held. A right press on an element that resizes on
// neither axis rings the bell and starts nothing. A press on empty canvas
// clears the selection. It reports whether a drag started.
func (e *Editor) PointerDown(p geom.Point, b Button, mods Modifiers) bool {
	if e.state != Idle {
		e.EndDrag()
	}

	hit := e.store.HitTest(p)
	e.selected = hit
	if hit == nil {
		return false
	}

	switch b {
	case ButtonLeft:
		e.BeginDrag(hit, drag.ModeMove, p, mods.Has(ModShift))
	case ButtonRight:
		if !hit.Caps().Resizable() {
			e.bell("press", hit)
			return false
		}
		e.BeginDrag(hit, drag.ModeResize, p, false)
	default:
		return false
	}
	return true
}

// PointerMove feeds p to the live drag. held reports whether any button is
// still pressed; a motion event without one ends the drag, which covers
// releases the shell never saw. It returns the update and whether a drag
// consumed the event.
func (e *Editor) PointerMove(p geom.Point, held bool) (drag.Update, bool) {
	if e.state == Idle {
		return drag.Update{}, false
	}
	if !held {
		e.endDrag("release")
		return drag.Update{}, false
	}
	return e.UpdateDrag(p), true
}

// PointerUp ends the live drag. Applied steps stay committed.
func (e *Editor) PointerUp(geom.Point) { e.endDrag("release") }

// LostCapture ends the live drag when the shell loses the pointer.
func (e *Editor) LostCapture() { e.endDrag("lost") }

// Cancel ends the live drag and clears the selection. Applied steps are not
// rolled back.
func (e *Editor) Cancel() {
	e.endDrag("cancel")
	e.selected = nil
}

// =============================================================================
// Programmatic drags
// =============================================================================

// BeginDrag starts a session on el at pointer position origin. For moves of a
// container the contained elements follow unless detach is set. Any live
// session is ended first.
func (e *Editor) BeginDrag(el *layout.Element, mode drag.Mode, origin geom.Point, detach bool) {
	if e.state != Idle {
		e.EndDrag()
	}

	var followers []*layout.Element
	if mode == drag.ModeMove && el.IsContainer() && !detach {
		followers = e.store.CollectContained(el)
	}

	e.session = drag.Begin(el, mode, origin, followers)
	e.started = time.Now()
	if mode == drag.ModeMove {
		e.state = DraggingMove
		e.finder = guide.NewFinder(el, e.store.Elements(), e.session.IsFollower, e.opts.GuideThreshold)
		e.guides = e.finder.Find(el, e.store.Canvas())
	} else {
		e.state = DraggingSize
		e.finder = nil
		e.guides = guide.ResizeEdges(el, e.store.Canvas())
	}

	e.logger.Debug("drag started", "mode", mode, "element", el.Name, "followers", len(e.session.Followers))
	observability.Drag().OnDragStart(mode.String(), el.Name, len(e.session.Followers))
}

// UpdateDrag moves the pointer of the live session to p. It returns the
// applied delta since the drag origin and whether the target flipped.
func (e *Editor) UpdateDrag(p geom.Point) drag.Update {
	if e.session == nil {
		return drag.Update{}
	}
	canvas := e.store.Canvas()
	u := e.session.Update(p, canvas, e.opts.Grid)

	target := e.session.Target
	if e.finder != nil {
		e.guides = e.finder.Find(target, canvas)
	} else {
		e.guides = guide.ResizeEdges(target, canvas)
	}

	if u.Flipped {
		e.logger.Debug("alignment flipped", "element", target.Name,
			"horizontal", target.H.Align().Horizontal(), "vertical", target.V.Align().Vertical())
	}
	observability.Drag().OnDragUpdate(e.session.Mode.String(), target.Name, u.Delta.X, u.Delta.Y, u.Flipped)
	return u
}

// EndDrag ends the live session, if any.
func (e *Editor) EndDrag() { e.endDrag("release") }

func (e *Editor) endDrag(reason string) {
	if e.session == nil {
		return
	}
	s := e.session
	elapsed := time.Since(e.started)

	e.session = nil
	e.finder = nil
	e.guides = guide.Guides{}
	e.state = Idle

	e.logger.Debug("drag ended", "mode", s.Mode, "element", s.Target.Name, "reason", reason)
	observability.Drag().OnDragEnd(s.Mode.String(), s.Target.Name, reason, elapsed)
}

func (e *Editor) bell(op string, el *layout.Element) {
	name := ""
	if el != nil {
		name = el.Name
	}
	e.logger.Debug("no effect", "op", op, "element", name)
	observability.Edit().OnBell(op, name)
	if e.onBell != nil {
		e.onBell(op)
	}
}
