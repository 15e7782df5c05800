package drag

import (
	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/layout"
)

// Mode selects what a drag does to its target.
type Mode uint8

const (
	// ModeMove translates the target.
	ModeMove Mode = iota + 1
	// ModeResize moves the target's right and bottom edges.
	ModeResize
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeResize:
		return "resize"
	}
	return "none"
}

// Follower is an element carried along by a move drag, with the placements it
// had when the drag began.
type Follower struct {
	Element *layout.Element
	H, V    anchor.Placement
}

// Update is what a session reports after each pointer update.
type Update struct {
	// Delta is the applied displacement since the session origin.
	Delta geom.Point
	// Flipped reports that the target changed alignment during this update.
	// The session has already rebased onto the new representation.
	Flipped bool
}

// Session is one live drag: the target, its snapshot, the pointer position the
// deltas are measured from and, for container moves, the followers.
//
// Sessions are created at drag start and discarded at drag end. They are not
// safe for concurrent use.
type Session struct {
	Target *layout.Element
	Mode   Mode
	Origin geom.Point
	Start  Snapshot

	Followers []Follower
}

// Begin starts a session for target at the pointer position origin. followers
// move in lockstep with the target and are only honoured for ModeMove.
func Begin(target *layout.Element, mode Mode, origin geom.Point, followers []*layout.Element) *Session {
	s := &Session{
		Target: target,
		Mode:   mode,
		Origin: origin,
		Start:  Capture(target),
	}
	if mode == ModeMove {
		for _, f := range followers {
			if f == target {
				continue
			}
			s.Followers = append(s.Followers, Follower{Element: f, H: f.H, V: f.V})
		}
	}
	return s
}

// Apply feeds the raw pointer delta since Origin through the session's
// transform and writes the outcome to the target and followers.
//
// Followers are assigned their snapshot shifted by the applied delta, so they
// stay glued to the target even when it was clamped at a canvas edge. When the
// target flips, every snapshot is re-captured and Origin advances by the
// applied delta, so later updates continue from the flipped representation.
func (s *Session) Apply(d geom.Point, canvas geom.Size, g Grid) Update {
	var r Result
	if s.Mode == ModeResize {
		r = Resize(s.Start, canvas, d, g)
	} else {
		r = Move(s.Start, canvas, d, g)
	}

	s.Target.H, s.Target.V = r.H, r.V
	for _, f := range s.Followers {
		f.Element.H = f.H.Shift(r.Applied.X)
		f.Element.V = f.V.Shift(r.Applied.Y)
	}

	if r.Flipped() {
		s.rebase(r.Applied)
	}
	return Update{Delta: r.Applied, Flipped: r.Flipped()}
}

// Update applies the pointer position p. See [Session.Apply].
func (s *Session) Update(p geom.Point, canvas geom.Size, g Grid) Update {
	return s.Apply(p.Sub(s.Origin), canvas, g)
}

// IsFollower reports whether e moves in lockstep with the target.
func (s *Session) IsFollower(e *layout.Element) bool {
	for _, f := range s.Followers {
		if f.Element == e {
			return true
		}
	}
	return false
}

func (s *Session) rebase(applied geom.Point) {
	s.Start = Capture(s.Target)
	for i := range s.Followers {
		f := &s.Followers[i]
		f.H, f.V = f.Element.H, f.Element.V
	}
	s.Origin = s.Origin.Add(applied)
}
