package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/layout"
)

// Document is the serialised form of a canvas and its elements.
type Document struct {
	Canvas   Canvas    `json:"canvas" toml:"canvas" yaml:"canvas"`
	Elements []Element `json:"elements" toml:"elements" yaml:"elements"`
}

// Canvas is the document canvas size in pixels.
type Canvas struct {
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
}

// Element is one stored element. Elements are listed back to front.
type Element struct {
	ID   string `json:"id,omitempty" toml:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" toml:"name" yaml:"name"`
	Kind string `json:"kind" toml:"kind" yaml:"kind"`
	H    Axis   `json:"h" toml:"h" yaml:"h"`
	V    Axis   `json:"v" toml:"v" yaml:"v"`

	// Intrinsic overrides the catalog content size when the hosting toolkit
	// measured something different.
	Intrinsic *Size `json:"intrinsic,omitempty" toml:"intrinsic,omitempty" yaml:"intrinsic,omitempty"`
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
}

// Axis stores one placement. Which fields are meaningful depends on Align:
//
//	start    start, size
//	center   offset, size
//	end      end, size
//	stretch  start, end
//
// A missing size means auto. Missing offsets default to zero.
type Axis struct {
	Align  string   `json:"align" toml:"align" yaml:"align"`
	Start  *float64 `json:"start,omitempty" toml:"start,omitempty" yaml:"start,omitempty"`
	End    *float64 `json:"end,omitempty" toml:"end,omitempty" yaml:"end,omitempty"`
	Offset *float64 `json:"offset,omitempty" toml:"offset,omitempty" yaml:"offset,omitempty"`
	Size   *float64 `json:"size,omitempty" toml:"size,omitempty" yaml:"size,omitempty"`
}

func ptr(v float64) *float64 { return &v }

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// =============================================================================
// Store conversion
// =============================================================================

// FromStore captures the store as a document.
func FromStore(s *layout.Store) *Document {
	canvas := s.Canvas()
	doc := &Document{Canvas: Canvas{Width: canvas.W, Height: canvas.H}}
	for _, e := range s.Elements() {
		doc.Elements = append(doc.Elements, ElementOf(e))
	}
	return doc
}

// ElementOf captures one element. The intrinsic size is only recorded when it
// differs from the catalog default.
func ElementOf(e *layout.Element) Element {
	el := Element{
		ID:   e.ID.String(),
		Name: e.Name,
		Kind: string(e.Kind),
		H:    axisOf(e.H),
		V:    axisOf(e.V),
	}
	if info, ok := e.Kind.Info(); ok && info.Intrinsic != e.Intrinsic {
		el.Intrinsic = &Size{Width: e.Intrinsic.W, Height: e.Intrinsic.H}
	}
	return el
}

func axisOf(p anchor.Placement) Axis {
	a := Axis{Align: p.Align().String()}
	if v, ok := p.Size().Value(); ok {
		a.Size = ptr(v)
	}
	switch p.Align() {
	case anchor.Start:
		a.Start = ptr(p.Offset())
	case anchor.Center:
		a.Offset = ptr(p.Offset())
	case anchor.End:
		a.End = ptr(p.Offset())
	case anchor.Stretch:
		s, e, _ := p.Stretch()
		a.Start, a.End = ptr(s), ptr(e)
	}
	return a
}

func (a Axis) placement() (anchor.Placement, error) {
	align, err := anchor.ParseAlign(a.Align)
	if err != nil {
		return anchor.Placement{}, errors.New(errors.ErrCodeInvalidAlign, "%v", err)
	}
	size := anchor.Auto
	if a.Size != nil {
		if *a.Size < 0 {
			return anchor.Placement{}, errors.New(errors.ErrCodeInvalidDocument, "negative size %g", *a.Size)
		}
		size = anchor.Px(*a.Size)
	}

	switch align {
	case anchor.Center:
		return anchor.Centered(deref(a.Offset), size), nil
	case anchor.End:
		return anchor.AtEnd(deref(a.End), size), nil
	case anchor.Stretch:
		if a.Size != nil {
			return anchor.Placement{}, errors.New(errors.ErrCodeInvalidDocument, "stretch axis must not carry a size")
		}
		return anchor.Stretched(deref(a.Start), deref(a.End)), nil
	}
	return anchor.AtStart(deref(a.Start), size), nil
}

// Validate checks the document without building a store.
func (d *Document) Validate() error {
	_, err := d.Store()
	return err
}

// Store builds an element store from the document. Elements keep their
// listed order as their stacking order.
func (d *Document) Store() (*layout.Store, error) {
	if d.Canvas.Width <= 0 || d.Canvas.Height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument,
			"canvas size must be positive, got %gx%g", d.Canvas.Width, d.Canvas.Height)
	}
	s := layout.NewStore(geom.Size{W: d.Canvas.Width, H: d.Canvas.Height})
	for i, el := range d.Elements {
		e, err := el.element()
		if err != nil {
			return nil, elementError(i, el, err)
		}
		if err := s.Insert(e); err != nil {
			return nil, elementError(i, el, err)
		}
	}
	return s, nil
}

func (el Element) element() (*layout.Element, error) {
	kind, err := layout.ParseKind(el.Kind)
	if err != nil {
		return nil, err
	}
	e := &layout.Element{Name: el.Name, Kind: kind}
	if el.ID != "" {
		id, err := uuid.Parse(el.ID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid id %q", el.ID)
		}
		e.ID = id
	}
	if e.H, err = el.H.placement(); err != nil {
		return nil, axisError("h", err)
	}
	if e.V, err = el.V.placement(); err != nil {
		return nil, axisError("v", err)
	}
	if el.Intrinsic != nil {
		if el.Intrinsic.Width < 0 || el.Intrinsic.Height < 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "negative intrinsic size")
		}
		e.Intrinsic = geom.Size{W: el.Intrinsic.Width, H: el.Intrinsic.Height}
	}
	return e, nil
}

func axisError(axis string, err error) error {
	return errors.New(errors.GetCode(err), "%s: %s", axis, errors.UserMessage(err))
}

// elementError prefixes err with the element reference, keeping its code.
func elementError(i int, el Element, err error) error {
	ref := el.Name
	if ref == "" {
		ref = fmt.Sprintf("#%d", i)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInvalidDocument
	}
	return errors.New(code, "element %s: %s", ref, errors.UserMessage(err))
}
