package drag

import (
	"testing"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/layout"
)

func addBox(t *testing.T, s *layout.Store, kind layout.Kind, x, y, w, h float64) *layout.Element {
	t.Helper()
	e, err := s.Add(kind, "", anchor.AtStart(x, anchor.Px(w)), anchor.AtStart(y, anchor.Px(h)))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestSessionFollowersUseClampedDelta(t *testing.T) {
	store := layout.NewStore(canvas)
	g := addBox(t, store, layout.KindGroup, 0, 0, 100, 100)
	child := addBox(t, store, layout.KindButton, 10, 10, 20, 20)

	s := Begin(g, ModeMove, geom.Point{X: 50, Y: 50}, store.CollectContained(g))
	if !s.IsFollower(child) {
		t.Fatal("child is not a follower")
	}

	u := s.Update(geom.Point{X: 30, Y: 50}, canvas, DefaultGrid)
	if !u.Delta.IsZero() {
		t.Errorf("Delta = %+v, want zero (clamped at left edge)", u.Delta)
	}
	if got := child.H.Offset(); got != 10 {
		t.Errorf("child offset = %v, want 10", got)
	}

	u = s.Update(geom.Point{X: 91, Y: 50}, canvas, DefaultGrid)
	if u.Delta.X != 40 {
		t.Errorf("Delta.X = %v, want 40", u.Delta.X)
	}
	if got := child.H.Offset(); got != 50 {
		t.Errorf("child offset = %v, want 50", got)
	}
	if !store.IsInside(child, g) {
		t.Error("child left its container during a lockstep move")
	}
}

func TestSessionRebasesAfterFlip(t *testing.T) {
	small := geom.Size{W: 200, H: 200}
	store := layout.NewStore(small)
	g := addBox(t, store, layout.KindGroup, 100, 0, 50, 50)
	child := addBox(t, store, layout.KindButton, 110, 10, 20, 20)

	s := Begin(g, ModeMove, geom.Point{}, []*layout.Element{child})

	u := s.Update(geom.Point{X: 100}, small, DefaultGrid)
	if !u.Flipped || u.Delta.X != 50 {
		t.Fatalf("Update() = %+v, want flip with delta 50", u)
	}
	if g.H.Align() != anchor.End || g.H.Offset() != 0 {
		t.Errorf("group H = %v, want end(0,50)", g.H)
	}
	if s.Origin != (geom.Point{X: 50}) {
		t.Errorf("Origin = %+v, want (50, 0)", s.Origin)
	}
	if got := child.H.Offset(); got != 160 {
		t.Errorf("child offset = %v, want 160", got)
	}

	// The pointer holding still past the edge changes nothing.
	u = s.Update(geom.Point{X: 100}, small, DefaultGrid)
	if u.Flipped || !u.Delta.IsZero() {
		t.Errorf("Update() = %+v, want no-op", u)
	}

	// Back at the start the end offset snaps from the far edge (50 -> 48)
	// and the child keeps its distance to the group.
	s.Update(geom.Point{}, small, DefaultGrid)
	if g.H.Align() != anchor.End || g.H.Offset() != 48 {
		t.Errorf("group H = %v, want end(48,50)", g.H)
	}
	if got := store.Box(g).Left; got != 102 {
		t.Errorf("group left = %v, want 102", got)
	}
	if got := store.Box(child).Left - store.Box(g).Left; got != 10 {
		t.Errorf("child left - group left = %v, want 10", got)
	}
}

func TestSessionResizeIgnoresFollowers(t *testing.T) {
	store := layout.NewStore(canvas)
	g := addBox(t, store, layout.KindGroup, 0, 0, 100, 100)
	child := addBox(t, store, layout.KindButton, 10, 10, 20, 20)

	s := Begin(g, ModeResize, geom.Point{}, []*layout.Element{child})
	if len(s.Followers) != 0 {
		t.Fatalf("Followers = %d, want 0", len(s.Followers))
	}

	s.Update(geom.Point{X: 40, Y: 20}, canvas, DefaultGrid)
	if got := store.Box(g); got != (geom.Rect{Width: 140, Height: 120}) {
		t.Errorf("group box = %+v, want 140x120", got)
	}
	if got := child.H.Offset(); got != 10 {
		t.Errorf("child offset = %v, want 10", got)
	}
}

func TestSessionMeasuresFromOrigin(t *testing.T) {
	store := layout.NewStore(canvas)
	b := addBox(t, store, layout.KindButton, 40, 40, 20, 20)
	s := Begin(b, ModeMove, geom.Point{X: 50, Y: 50}, nil)

	// Many small steps end where one big step would.
	for x := 51.0; x <= 63; x++ {
		s.Update(geom.Point{X: x, Y: 50}, canvas, DefaultGrid)
	}
	if got := b.H.Offset(); got != 52 {
		t.Errorf("offset = %v, want 52", got)
	}
}
