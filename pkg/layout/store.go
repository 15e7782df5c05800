package layout

import (
	"sort"

	"github.com/google/uuid"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/geom"
)

// BaseZ is where both z counters start. Adds count up from here and
// send-to-back counts down, so neither ever renumbers an existing element.
const BaseZ = 0x10000

// Store is the flat element set of one canvas. Every element's parent is the
// canvas; nesting is derived geometrically (see [Store.IsInside]).
//
// A Store is not safe for concurrent use. The owning coordinator serialises
// access.
type Store struct {
	canvas geom.Size

	elements []*Element
	byID     map[uuid.UUID]*Element
	byName   map[string]*Element

	top    int // next z handed out by Add and ToFront
	bottom int // last z handed out by ToBack
}

// NewStore returns an empty store for a canvas of the given size.
func NewStore(canvas geom.Size) *Store {
	return &Store{
		canvas: canvas,
		byID:   make(map[uuid.UUID]*Element),
		byName: make(map[string]*Element),
		top:    BaseZ,
		bottom: BaseZ,
	}
}

// Canvas returns the canvas size.
func (s *Store) Canvas() geom.Size { return s.canvas }

// SetCanvas changes the canvas size. Placements are kept, so elements with
// End, Center or Stretch modes move or resize with the canvas.
func (s *Store) SetCanvas(size geom.Size) { s.canvas = size }

// Len returns the number of elements.
func (s *Store) Len() int { return len(s.elements) }

// Add creates an element of the given kind on top of all others. The name
// is repaired if invalid or taken.
func (s *Store) Add(kind Kind, name string, h, v anchor.Placement) (*Element, error) {
	info, ok := kind.Info()
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidKind, "unknown element kind %q", kind)
	}
	e := &Element{
		ID:        uuid.New(),
		Kind:      kind,
		H:         h,
		V:         v,
		Intrinsic: info.Intrinsic,
	}
	e.Name = uniqueName(name, info.Prefix, s.nameTaken)
	s.insert(e)
	return e, nil
}

// Insert adds a fully described element, as read from a document, on top of
// all others. Unlike Add it refuses to repair the name or replace the ID.
// A zero ID is replaced with a fresh one and a zero intrinsic size with the
// catalog default.
func (s *Store) Insert(e *Element) error {
	info, ok := e.Kind.Info()
	if !ok {
		return errors.New(errors.ErrCodeInvalidKind, "unknown element kind %q", e.Kind)
	}
	if err := errors.ValidateName(e.Name); err != nil {
		return err
	}
	if s.nameTaken(e.Name) {
		return errors.New(errors.ErrCodeInvalidName, "element name %q already in use", e.Name)
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if _, dup := s.byID[e.ID]; dup {
		return errors.New(errors.ErrCodeInvalidInput, "element id %s already in use", e.ID)
	}
	if e.Intrinsic == (geom.Size{}) {
		e.Intrinsic = info.Intrinsic
	}
	s.insert(e)
	return nil
}

func (s *Store) insert(e *Element) {
	e.Z = s.top
	s.top++
	s.elements = append(s.elements, e)
	s.byID[e.ID] = e
	s.byName[e.Name] = e
}

func (s *Store) nameTaken(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Get returns the element with the given ID.
func (s *Store) Get(id uuid.UUID) (*Element, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// ByName returns the element with the given name.
func (s *Store) ByName(name string) (*Element, bool) {
	e, ok := s.byName[name]
	return e, ok
}

// Lookup resolves a reference that is either an element name or an ID.
func (s *Store) Lookup(ref string) (*Element, error) {
	if e, ok := s.byName[ref]; ok {
		return e, nil
	}
	if id, err := uuid.Parse(ref); err == nil {
		if e, ok := s.byID[id]; ok {
			return e, nil
		}
	}
	return nil, errors.New(errors.ErrCodeElementNotFound, "no element named %q", ref)
}

// Elements returns all elements in ascending z order (back to front).
func (s *Store) Elements() []*Element {
	out := make([]*Element, len(s.elements))
	copy(out, s.elements)
	sort.Slice(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// Rename gives e a new name following the naming rules and returns the name
// actually assigned. The element's own current name does not count as taken.
func (s *Store) Rename(e *Element, name string) string {
	delete(s.byName, e.Name)
	info, _ := e.Kind.Info()
	e.Name = uniqueName(name, info.Prefix, s.nameTaken)
	s.byName[e.Name] = e
	return e.Name
}

// Delete removes e. Deleting a container also removes every element inside
// it. The removed elements are returned front to back.
func (s *Store) Delete(e *Element) []*Element {
	removed := []*Element{e}
	if e.IsContainer() {
		removed = append(removed, s.CollectContained(e)...)
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i].Z > removed[j].Z })

	gone := make(map[uuid.UUID]bool, len(removed))
	for _, r := range removed {
		gone[r.ID] = true
		delete(s.byID, r.ID)
		delete(s.byName, r.Name)
	}
	kept := s.elements[:0]
	for _, el := range s.elements {
		if !gone[el.ID] {
			kept = append(kept, el)
		}
	}
	for i := len(kept); i < len(s.elements); i++ {
		s.elements[i] = nil
	}
	s.elements = kept
	return removed
}

// ToFront raises e above every other element. A container is raised first and
// its contained elements follow in their previous relative order, so they
// stay on top of it. It returns false, changing nothing, when e is a plain
// element that is already the top-most.
func (s *Store) ToFront(e *Element) bool {
	if e.Z == s.top-1 && !e.IsContainer() {
		return false
	}

	var children []*Element
	if e.IsContainer() {
		children = s.CollectContained(e)
	}

	e.Z = s.top
	s.top++
	for _, c := range children {
		c.Z = s.top
		s.top++
	}
	return true
}

// ToBack lowers e below every other element. A container's contained
// elements are lowered first, front to back, and the container last, so it
// ends up behind them. It returns false, changing nothing, when e is a plain
// element that is already the bottom-most.
func (s *Store) ToBack(e *Element) bool {
	if e.Z == s.bottom && !e.IsContainer() {
		return false
	}

	if e.IsContainer() {
		children := s.CollectContained(e)
		for i := len(children) - 1; i >= 0; i-- {
			s.bottom--
			children[i].Z = s.bottom
		}
	}

	s.bottom--
	e.Z = s.bottom
	return true
}

// HitTest returns the top-most element whose rendered box contains p, or nil.
func (s *Store) HitTest(p geom.Point) *Element {
	var hit *Element
	for _, e := range s.elements {
		if !e.Box(s.canvas).Contains(p) {
			continue
		}
		if hit == nil || e.Z > hit.Z {
			hit = e
		}
	}
	return hit
}

// Box returns the rendered box of e on the store's canvas.
func (s *Store) Box(e *Element) geom.Rect { return e.Box(s.canvas) }
