package server

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/buildinfo"
	"github.com/matzehuels/hmibuilder/pkg/editor"
	herrors "github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/guide"
	"github.com/matzehuels/hmibuilder/pkg/layout"
	"github.com/matzehuels/hmibuilder/pkg/preview"
	"github.com/matzehuels/hmibuilder/pkg/scene"
)

// =============================================================================
// Views
// =============================================================================

type rectView struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func rectOf(r geom.Rect) rectView {
	return rectView{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
}

type pointView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type elementView struct {
	scene.Element
	Z   int      `json:"z"`
	Box rectView `json:"box"`
}

func (s *Server) view(e *layout.Element) *elementView {
	if e == nil {
		return nil
	}
	return &elementView{
		Element: scene.ElementOf(e),
		Z:       e.Z,
		Box:     rectOf(s.editor.Store().Box(e)),
	}
}

// editView answers every request that changes the layout.
type editView struct {
	Element *elementView `json:"element,omitempty"`
	Delta   *pointView   `json:"delta,omitempty"`
	Removed []string     `json:"removed,omitempty"`
	Bell    bool         `json:"bell"`
}

type stateView struct {
	State    string     `json:"state"`
	Selected string     `json:"selected,omitempty"`
	Delta    *pointView `json:"delta,omitempty"`
	Flipped  bool       `json:"flipped,omitempty"`
	Bell     bool       `json:"bell"`
}

func (s *Server) state() stateView {
	v := stateView{State: s.editor.State().String(), Bell: len(s.bells) > 0}
	if sel := s.editor.Selected(); sel != nil {
		v.Selected = sel.Name
	}
	return v
}

type lineView struct {
	Edge     float64 `json:"edge"`
	Position float64 `json:"position"`
	Active   bool    `json:"active"`
}

type guidesView struct {
	Vertical   lineView `json:"vertical"`
	Horizontal lineView `json:"horizontal"`
}

func lineOf(l guide.Line) lineView {
	return lineView{Edge: l.Edge, Position: l.Position, Active: l.Active}
}

// =============================================================================
// Document
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	body := buildinfo.Fields()
	body["status"] = "ok"
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleDocument(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, scene.FromStore(s.editor.Store()))
}

func (s *Server) handleGuides(w http.ResponseWriter, _ *http.Request) {
	g := s.editor.Guides()
	writeJSON(w, http.StatusOK, guidesView{Vertical: lineOf(g.Vertical), Horizontal: lineOf(g.Horizontal)})
}

func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	err := preview.RenderSVG(&buf, s.editor.Store(), preview.Options{
		Selected: s.editor.Selected(),
		Guides:   s.editor.Guides(),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(buf.Bytes())
}

// =============================================================================
// Elements
// =============================================================================

type addRequest struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	kind, err := layout.ParseKind(req.Kind)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Name != "" {
		if err := herrors.ValidateName(req.Name); err != nil {
			writeError(w, err)
			return
		}
	}
	el, err := s.editor.AddNew(kind, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.view(el))
}

// element resolves the {ref} path parameter, writing the error response when
// it names nothing.
func (s *Server) element(w http.ResponseWriter, r *http.Request) (*layout.Element, bool) {
	el, err := s.editor.Store().Lookup(chi.URLParam(r, "ref"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return el, true
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	if el, ok := s.element(w, r); ok {
		writeJSON(w, http.StatusOK, s.view(el))
	}
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	el, ok := s.element(w, r)
	if !ok {
		return
	}
	removed := s.editor.Delete(el)
	names := make([]string, len(removed))
	for i, e := range removed {
		names[i] = e.Name
	}
	writeJSON(w, http.StatusOK, editView{Removed: names, Bell: len(s.bells) > 0})
}

type alignRequest struct {
	H string `json:"h"`
	V string `json:"v"`
}

func (s *Server) handleAlign(w http.ResponseWriter, r *http.Request) {
	el, ok := s.element(w, r)
	if !ok {
		return
	}
	var req alignRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	h, v := el.H.Align(), el.V.Align()
	var err error
	if req.H != "" {
		if h, err = anchor.ParseAlign(req.H); err != nil {
			writeError(w, herrors.New(herrors.ErrCodeInvalidAlign, "%v", err))
			return
		}
	}
	if req.V != "" {
		if v, err = anchor.ParseAlign(req.V); err != nil {
			writeError(w, herrors.New(herrors.ErrCodeInvalidAlign, "%v", err))
			return
		}
	}
	s.editor.Reanchor(el, h, v)
	writeJSON(w, http.StatusOK, editView{Element: s.view(el), Bell: len(s.bells) > 0})
}

type nudgeRequest struct {
	Dir    string `json:"dir"`
	Big    bool   `json:"big"`
	Detach bool   `json:"detach"`
}

func (s *Server) handleNudge(w http.ResponseWriter, r *http.Request) {
	el, ok := s.element(w, r)
	if !ok {
		return
	}
	var req nudgeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	dir, err := editor.ParseDirection(req.Dir)
	if err != nil {
		writeError(w, err)
		return
	}
	d, _ := s.editor.Nudge(el, dir, req.Big, req.Detach)
	writeJSON(w, http.StatusOK, editView{
		Element: s.view(el),
		Delta:   &pointView{X: d.X, Y: d.Y},
		Bell:    len(s.bells) > 0,
	})
}

func (s *Server) handleFront(w http.ResponseWriter, r *http.Request) {
	s.restack(w, r, s.editor.ToFront)
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	s.restack(w, r, s.editor.ToBack)
}

func (s *Server) restack(w http.ResponseWriter, r *http.Request, fn func(*layout.Element) bool) {
	el, ok := s.element(w, r)
	if !ok {
		return
	}
	fn(el)
	writeJSON(w, http.StatusOK, editView{Element: s.view(el), Bell: len(s.bells) > 0})
}

type renameRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleRename(w http.ResponseWriter, r *http.Request) {
	el, ok := s.element(w, r)
	if !ok {
		return
	}
	var req renameRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := herrors.ValidateName(req.Name); err != nil {
		writeError(w, err)
		return
	}
	s.editor.Rename(el, req.Name)
	writeJSON(w, http.StatusOK, editView{Element: s.view(el)})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	if el, ok := s.element(w, r); ok {
		s.editor.Select(el)
		writeJSON(w, http.StatusOK, s.state())
	}
}

// =============================================================================
// Pointer
// =============================================================================

type pointerRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Button string  `json:"button"`
	Shift  bool    `json:"shift"`
	Held   *bool   `json:"held"`
}

func (p pointerRequest) point() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

func (s *Server) handlePointerDown(w http.ResponseWriter, r *http.Request) {
	var req pointerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	var b editor.Button
	switch req.Button {
	case "", "left":
		b = editor.ButtonLeft
	case "right":
		b = editor.ButtonRight
	default:
		writeError(w, herrors.New(herrors.ErrCodeInvalidInput, "unknown button %q (want left or right)", req.Button))
		return
	}
	var mods editor.Modifiers
	if req.Shift {
		mods |= editor.ModShift
	}
	s.editor.PointerDown(req.point(), b, mods)
	writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) handlePointerMove(w http.ResponseWriter, r *http.Request) {
	var req pointerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	held := req.Held == nil || *req.Held
	u, consumed := s.editor.PointerMove(req.point(), held)
	v := s.state()
	if consumed {
		v.Delta = &pointView{X: u.Delta.X, Y: u.Delta.Y}
		v.Flipped = u.Flipped
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handlePointerUp(w http.ResponseWriter, r *http.Request) {
	var req pointerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.editor.PointerUp(req.point())
	writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) handleCancel(w http.ResponseWriter, _ *http.Request) {
	s.editor.Cancel()
	writeJSON(w, http.StatusOK, s.state())
}
