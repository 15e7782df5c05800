package preview

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/guide"
	"github.com/matzehuels/hmibuilder/pkg/layout"
)

func nestedStore(t *testing.T) *layout.Store {
	t.Helper()
	s := layout.NewStore(geom.Size{W: 400, H: 300})
	add := func(kind layout.Kind, name string, x, y, w, h float64) {
		if _, err := s.Add(kind, name, anchor.AtStart(x, anchor.Px(w)), anchor.AtStart(y, anchor.Px(h))); err != nil {
			t.Fatal(err)
		}
	}
	add(layout.KindGroup, "outer", 0, 0, 300, 300)
	add(layout.KindBorder, "inner", 10, 10, 200, 200)
	add(layout.KindButton, "ok", 20, 20, 50, 50)
	add(layout.KindButton, "loose", 320, 10, 50, 50)
	return s
}

func TestParents(t *testing.T) {
	s := nestedStore(t)
	parents := Parents(s)

	want := map[string]string{"outer": "", "inner": "outer", "ok": "inner", "loose": ""}
	for name, parent := range want {
		e, _ := s.ByName(name)
		got := ""
		if p := parents[e]; p != nil {
			got = p.Name
		}
		if got != parent {
			t.Errorf("parent of %s = %q, want %q", name, got, parent)
		}
	}
}

func TestContainmentDOT(t *testing.T) {
	dot := ContainmentDOT(nestedStore(t))
	for _, edge := range []string{
		`"canvas" -> "outer"`,
		`"outer" -> "inner"`,
		`"inner" -> "ok"`,
		`"canvas" -> "loose"`,
	} {
		if !strings.Contains(dot, edge) {
			t.Errorf("DOT missing edge %s:\n%s", edge, dot)
		}
	}
	if strings.Contains(dot, `"outer" -> "ok"`) {
		t.Error("DOT contains a transitive edge outer -> ok")
	}
}

func TestRenderDOT(t *testing.T) {
	dot := ContainmentDOT(nestedStore(t))

	out, err := RenderDOT(context.Background(), dot, "dot")
	if err != nil || string(out) != dot {
		t.Errorf("RenderDOT(dot) = %q, %v, want input unchanged", out, err)
	}
	if _, err := RenderDOT(context.Background(), dot, "gif"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("RenderDOT(gif) error = %v, want %s", err, errors.ErrCodeUnsupported)
	}

	svg, err := RenderDOT(context.Background(), dot, "svg")
	if err != nil {
		t.Fatalf("RenderDOT(svg) error = %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("RenderDOT(svg) did not produce SVG")
	}
}

func TestRenderSVG(t *testing.T) {
	s := nestedStore(t)
	ok, _ := s.ByName("ok")

	var buf bytes.Buffer
	err := RenderSVG(&buf, s, Options{
		Selected: ok,
		Guides:   guide.Guides{Vertical: guide.Line{Position: 100, Active: true}},
	})
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Errorf("RenderSVG() output is not SVG: %.40q", out)
	}
	if n := strings.Count(out, "<path"); n < 5 {
		t.Errorf("RenderSVG() drew %d paths, want frame, four elements and a guide", n)
	}
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPDF(&buf, nestedStore(t), Options{Scale: 1}); err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("RenderPDF() output does not start with %%PDF")
	}
}
