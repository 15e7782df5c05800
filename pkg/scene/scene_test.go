package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/layout"
)

func sampleStore(t *testing.T) *layout.Store {
	t.Helper()
	s := layout.NewStore(geom.Size{W: 400, H: 300})
	add := func(kind layout.Kind, name string, h, v anchor.Placement) {
		if _, err := s.Add(kind, name, h, v); err != nil {
			t.Fatal(err)
		}
	}
	add(layout.KindGroup, "panel", anchor.Stretched(10, 10), anchor.AtStart(10, anchor.Px(120)))
	add(layout.KindButton, "ok", anchor.AtEnd(20, anchor.Px(80)), anchor.AtEnd(20, anchor.Px(30)))
	add(layout.KindText, "title", anchor.Centered(-40, anchor.Auto), anchor.AtStart(16, anchor.Auto))
	return s
}

func TestRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".toml", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			want := sampleStore(t)
			path := filepath.Join(t.TempDir(), "layout"+ext)
			if err := Save(path, want); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if got.Canvas() != want.Canvas() {
				t.Errorf("Canvas() = %+v, want %+v", got.Canvas(), want.Canvas())
			}
			ge, we := got.Elements(), want.Elements()
			if len(ge) != len(we) {
				t.Fatalf("len(Elements()) = %d, want %d", len(ge), len(we))
			}
			for i := range we {
				g, w := ge[i], we[i]
				if g.ID != w.ID || g.Name != w.Name || g.Kind != w.Kind {
					t.Errorf("element %d = %s/%s/%s, want %s/%s/%s", i, g.ID, g.Name, g.Kind, w.ID, w.Name, w.Kind)
				}
				if g.H != w.H || g.V != w.V {
					t.Errorf("%s placements = %v %v, want %v %v", w.Name, g.H, g.V, w.H, w.V)
				}
				if got.Box(g) != want.Box(w) {
					t.Errorf("%s Box() = %+v, want %+v", w.Name, got.Box(g), want.Box(w))
				}
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	in := `{
  "canvas": {"width": 400, "height": 300},
  "elements": [
    {"name": "ok", "kind": "button",
     "h": {"align": "right", "end": 20, "size": 80},
     "v": {"align": "stretch", "start": 5, "end": 5}}
  ]
}`
	d, err := Read(strings.NewReader(in), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	s, err := d.Store()
	if err != nil {
		t.Fatal(err)
	}
	ok, _ := s.ByName("ok")
	if box := s.Box(ok); box != (geom.Rect{Left: 300, Top: 5, Width: 80, Height: 290}) {
		t.Errorf("Box() = %+v", box)
	}
}

func TestStoreValidation(t *testing.T) {
	button := func(h Axis) Element {
		return Element{Name: "b", Kind: "button", H: h, V: Axis{Align: "start"}}
	}
	size := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		doc  Document
		code errors.Code
	}{
		{"zero canvas", Document{}, errors.ErrCodeInvalidDocument},
		{"unknown kind", Document{
			Canvas:   Canvas{400, 300},
			Elements: []Element{{Name: "x", Kind: "spinner", H: Axis{Align: "start"}, V: Axis{Align: "start"}}},
		}, errors.ErrCodeInvalidKind},
		{"bad align", Document{
			Canvas:   Canvas{400, 300},
			Elements: []Element{button(Axis{Align: "sideways"})},
		}, errors.ErrCodeInvalidAlign},
		{"negative size", Document{
			Canvas:   Canvas{400, 300},
			Elements: []Element{button(Axis{Align: "start", Size: size(-1)})},
		}, errors.ErrCodeInvalidDocument},
		{"stretch with size", Document{
			Canvas:   Canvas{400, 300},
			Elements: []Element{button(Axis{Align: "stretch", Size: size(10)})},
		}, errors.ErrCodeInvalidDocument},
		{"duplicate name", Document{
			Canvas:   Canvas{400, 300},
			Elements: []Element{button(Axis{Align: "start"}), button(Axis{Align: "end"})},
		}, errors.ErrCodeInvalidName},
		{"bad id", Document{
			Canvas:   Canvas{400, 300},
			Elements: []Element{{ID: "nope", Name: "b", Kind: "button", H: Axis{Align: "start"}, V: Axis{Align: "start"}}},
		}, errors.ErrCodeInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestReadRejectsUnknownFields(t *testing.T) {
	_, err := Read(strings.NewReader(`{"canvas": {"width": 1, "height": 1}, "layers": []}`), FormatJSON)
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("Read() error = %v, want %s", err, errors.ErrCodeInvalidDocument)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"a.json", FormatJSON, false},
		{"a.TOML", FormatTOML, false},
		{"a.yml", FormatYAML, false},
		{"a.xml", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestSaveLoadParentRelative(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "screens")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(sub)

	if err := Save("../main.json", sampleStore(t)); err != nil {
		t.Fatalf("Save(../main.json) error = %v", err)
	}
	s, err := Load("../main.json")
	if err != nil {
		t.Fatalf("Load(../main.json) error = %v", err)
	}
	if s.Len() != sampleStore(t).Len() {
		t.Errorf("Len() = %d, want %d", s.Len(), sampleStore(t).Len())
	}
}

func TestWriteOmitsAutoSize(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FromStore(sampleStore(t)), FormatYAML); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "name: title") {
		t.Fatalf("output missing title:\n%s", out)
	}
	title := out[strings.Index(out, "name: title"):]
	if strings.Contains(title, "size:") {
		t.Errorf("auto size was written:\n%s", title)
	}
}

func TestLoadExamples(t *testing.T) {
	tests := []struct {
		file  string
		count int
	}{
		{"dashboard.json", 6},
		{"settings.toml", 4},
		{"splash.yaml", 2},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			s, err := Load(filepath.Join("..", "..", "examples", "layouts", tt.file))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if s.Len() != tt.count {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.count)
			}
		})
	}
}
