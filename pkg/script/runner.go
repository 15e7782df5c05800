package script

import (
	"context"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/editor"
	"github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/layout"
)

// Tolerance is how far an expected box may be off, in pixels per number.
const Tolerance = 1.0

// Bell is a gesture that had no effect during a replay.
type Bell struct {
	Line int
	Op   string
}

// Report summarises a replay.
type Report struct {
	Statements int
	Expects    int
	Flips      int
	Bells      []Bell
}

// Runner replays scripts against one editor.
type Runner struct {
	editor *editor.Editor
	logger *log.Logger

	line   int
	report Report
}

// NewRunner returns a runner driving an editor for store. A nil logger
// defaults to log.Default().
func NewRunner(store *layout.Store, opts editor.Options, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	r := &Runner{logger: logger}
	r.editor = editor.New(store,
		editor.WithOptions(opts),
		editor.WithLogger(logger),
		editor.WithBell(func(op string) {
			r.report.Bells = append(r.report.Bells, Bell{Line: r.line, Op: op})
		}),
	)
	return r
}

// Editor returns the driven editor.
func (r *Runner) Editor() *editor.Editor { return r.editor }

// Run executes every statement of s in order and stops at the first failing
// one. Failed expectations return a SCRIPT_ASSERTION error, malformed
// statements an INVALID_SCRIPT error. The report covers the statements run
// so far.
func (r *Runner) Run(ctx context.Context, s *Script) (Report, error) {
	last := 0
	for _, st := range s.Statements {
		if err := ctx.Err(); err != nil {
			return r.report, err
		}
		if st.Pos.Line == last {
			return r.report, r.fail(st, errors.ErrCodeInvalidScript, "one statement per line")
		}
		last = st.Pos.Line
		r.line = st.Pos.Line

		if err := r.exec(st); err != nil {
			return r.report, err
		}
		r.report.Statements++
	}
	r.logger.Debug("replay finished", "statements", r.report.Statements, "expects", r.report.Expects,
		"flips", r.report.Flips, "bells", len(r.report.Bells))
	return r.report, nil
}

func (r *Runner) exec(st *Statement) error {
	ed := r.editor
	store := ed.Store()

	switch {
	case st.Canvas != nil:
		if st.Canvas.W <= 0 || st.Canvas.H <= 0 {
			return r.fail(st, errors.ErrCodeInvalidScript, "canvas size must be positive")
		}
		ed.EndDrag()
		store.SetCanvas(geom.Size{W: st.Canvas.W, H: st.Canvas.H})

	case st.Add != nil:
		kind, err := layout.ParseKind(st.Add.Kind)
		if err != nil {
			return r.wrap(st, err)
		}
		if _, err := ed.AddNew(kind, st.Add.Name); err != nil {
			return r.wrap(st, err)
		}

	case st.Select != nil:
		el, err := store.Lookup(st.Select.Name)
		if err != nil {
			return r.wrap(st, err)
		}
		ed.Select(el)

	case st.Press != nil:
		b := editor.ButtonLeft
		if st.Press.Button == "right" {
			b = editor.ButtonRight
		}
		var mods editor.Modifiers
		if st.Press.Shift {
			mods |= editor.ModShift
		}
		ed.PointerDown(geom.Point{X: st.Press.At.X, Y: st.Press.At.Y}, b, mods)

	case st.Move != nil:
		if u, ok := ed.PointerMove(geom.Point{X: st.Move.X, Y: st.Move.Y}, true); ok && u.Flipped {
			r.report.Flips++
		}

	case st.Release:
		ed.PointerUp(geom.Point{})

	case st.Cancel:
		ed.Cancel()

	case st.Lost:
		ed.LostCapture()

	case st.Nudge != nil:
		dir, err := editor.ParseDirection(st.Nudge.Dir)
		if err != nil {
			return r.wrap(st, err)
		}
		var big, detach bool
		for _, f := range st.Nudge.Flags {
			big = big || f == "big"
			detach = detach || f == "detach"
		}
		ed.Nudge(ed.Selected(), dir, big, detach)

	case st.Align != nil:
		el, err := r.selected(st)
		if err != nil {
			return err
		}
		h, v, err := parsePair(st.Align)
		if err != nil {
			return r.wrap(st, err)
		}
		ed.Reanchor(el, h, v)

	case st.Front:
		ed.ToFront(ed.Selected())

	case st.Back:
		ed.ToBack(ed.Selected())

	case st.Delete:
		ed.Delete(ed.Selected())

	case st.Rename != nil:
		el, err := r.selected(st)
		if err != nil {
			return err
		}
		ed.Rename(el, st.Rename.Name)

	case st.Expect != nil:
		return r.expect(st)
	}
	return nil
}

func (r *Runner) expect(st *Statement) error {
	x := st.Expect
	if x.Align == nil && x.Box == nil {
		return r.fail(st, errors.ErrCodeInvalidScript, "expect %s needs a box or an alignment", x.Name)
	}
	el, err := r.editor.Store().Lookup(x.Name)
	if err != nil {
		return r.wrap(st, err)
	}
	r.report.Expects++

	if x.Align != nil {
		h, v, err := parsePair(x.Align)
		if err != nil {
			return r.wrap(st, err)
		}
		if el.H.Align() != h || el.V.Align() != v {
			return r.fail(st, errors.ErrCodeScriptAssertion, "%s is aligned %s/%s, want %s/%s",
				x.Name, el.H.Align().Horizontal(), el.V.Align().Vertical(), h.Horizontal(), v.Vertical())
		}
	}
	if x.Box != nil {
		got := r.editor.Store().Box(el)
		want := geom.Rect{Left: x.Box.X, Top: x.Box.Y, Width: x.Box.W, Height: x.Box.H}
		if !near(got, want) {
			return r.fail(st, errors.ErrCodeScriptAssertion, "%s is at %s, want %s", x.Name, formatRect(got), formatRect(want))
		}
	}
	return nil
}

func (r *Runner) selected(st *Statement) (*layout.Element, error) {
	el := r.editor.Selected()
	if el == nil {
		return nil, r.fail(st, errors.ErrCodeInvalidScript, "nothing selected")
	}
	return el, nil
}

func (r *Runner) fail(st *Statement, code errors.Code, format string, args ...any) error {
	return errors.New(code, "%s: %s", st.Pos, fmt.Sprintf(format, args...))
}

func (r *Runner) wrap(st *Statement, err error) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInvalidScript
	}
	return errors.New(code, "%s: %s", st.Pos, errors.UserMessage(err))
}

func parsePair(p *AlignPair) (anchor.Align, anchor.Align, error) {
	h, err := anchor.ParseAlign(p.H)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidAlign, "%v", err)
	}
	v, err := anchor.ParseAlign(p.V)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidAlign, "%v", err)
	}
	return h, v, nil
}

func near(a, b geom.Rect) bool {
	return math.Abs(a.Left-b.Left) <= Tolerance && math.Abs(a.Top-b.Top) <= Tolerance &&
		math.Abs(a.Width-b.Width) <= Tolerance && math.Abs(a.Height-b.Height) <= Tolerance
}

func formatRect(r geom.Rect) string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.Left, r.Top, r.Width, r.Height)
}
