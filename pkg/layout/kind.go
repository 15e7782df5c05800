package layout

import (
	"sort"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/geom"
)

// Kind names an element type from the fixed control catalog.
type Kind string

// Element kinds.
const (
	KindText     Kind = "text"
	KindLink     Kind = "link"
	KindCheck    Kind = "check"
	KindRadio    Kind = "radio"
	KindDropdown Kind = "dropdown"
	KindTextBox  Kind = "textbox"
	KindButton   Kind = "button"
	KindImage    Kind = "image"
	KindListBox  Kind = "listbox"
	KindProgress Kind = "progress"
	KindSlider   Kind = "slider"
	KindGroup    Kind = "group"
	KindBorder   Kind = "border"
)

// Capabilities are the per-kind facts the engine needs about an element.
// They never change for the lifetime of an element.
type Capabilities struct {
	ResizeWidth  bool
	ResizeHeight bool
	Container    bool
	MinWidth     float64
	MinHeight    float64
}

// Resizable reports whether the element can be resized on at least one axis.
func (c Capabilities) Resizable() bool { return c.ResizeWidth || c.ResizeHeight }

// KindInfo describes one catalog entry.
type KindInfo struct {
	Kind Kind
	// Prefix seeds generated names ("button" gives button1, button2, ...).
	Prefix string
	Caps   Capabilities
	// Width and Height are the size a freshly added element starts with.
	Width, Height anchor.Length
	// Intrinsic is the content size auto lengths resolve to.
	Intrinsic geom.Size
}

var (
	resizeNone  = Capabilities{}
	resizeWidth = Capabilities{ResizeWidth: true}
	resizeBoth  = Capabilities{ResizeWidth: true, ResizeHeight: true}
	container   = Capabilities{ResizeWidth: true, ResizeHeight: true, Container: true}
)

var catalog = map[Kind]KindInfo{
	KindText:     {KindText, "text", resizeNone, anchor.Auto, anchor.Auto, geom.Size{W: 48, H: 16}},
	KindLink:     {KindLink, "link", resizeNone, anchor.Auto, anchor.Auto, geom.Size{W: 48, H: 16}},
	KindCheck:    {KindCheck, "check", resizeNone, anchor.Auto, anchor.Auto, geom.Size{W: 64, H: 40}},
	KindRadio:    {KindRadio, "radio", resizeNone, anchor.Auto, anchor.Auto, geom.Size{W: 64, H: 40}},
	KindDropdown: {KindDropdown, "dropdown", resizeWidth, anchor.Px(100), anchor.Auto, geom.Size{W: 100, H: 24}},
	KindTextBox:  {KindTextBox, "box", resizeWidth, anchor.Px(100), anchor.Auto, geom.Size{W: 100, H: 24}},
	KindButton:   {KindButton, "button", resizeBoth, anchor.Px(100), anchor.Px(100), geom.Size{W: 100, H: 100}},
	KindImage:    {KindImage, "image", resizeBoth, anchor.Px(100), anchor.Px(100), geom.Size{W: 100, H: 100}},
	KindListBox:  {KindListBox, "listbox", resizeBoth, anchor.Px(100), anchor.Px(100), geom.Size{W: 100, H: 100}},
	KindProgress: {KindProgress, "progress", resizeBoth, anchor.Px(100), anchor.Px(30), geom.Size{W: 100, H: 30}},
	KindSlider:   {KindSlider, "slider", resizeBoth, anchor.Px(100), anchor.Px(30), geom.Size{W: 100, H: 30}},
	KindGroup:    {KindGroup, "group", container, anchor.Px(100), anchor.Px(100), geom.Size{W: 100, H: 100}},
	KindBorder:   {KindBorder, "border", container, anchor.Px(100), anchor.Px(100), geom.Size{W: 100, H: 100}},
}

// Info returns the catalog entry for k.
func (k Kind) Info() (KindInfo, bool) {
	info, ok := catalog[k]
	return info, ok
}

// ParseKind validates s against the catalog.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := catalog[k]; !ok {
		return "", errors.New(errors.ErrCodeInvalidKind, "unknown element kind %q", s)
	}
	return k, nil
}

// Kinds returns every catalog kind sorted by name.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(catalog))
	for k := range catalog {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
