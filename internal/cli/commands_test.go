package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/layout"
	"github.com/matzehuels/hmibuilder/pkg/scene"
)

// execute runs one command line against a fresh CLI with no settings file
// and an empty cache.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	return run(args...)
}

// run executes one command line in the current environment.
func run(args ...string) error {
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func mustExecute(t *testing.T, args ...string) {
	t.Helper()
	if err := execute(t, args...); err != nil {
		t.Fatalf("%s: %v", strings.Join(args, " "), err)
	}
}

func load(t *testing.T, path string) *layout.Store {
	t.Helper()
	s, err := scene.Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}
	return s
}

func newLayout(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "screen.json")
	mustExecute(t, "new", path, "--width", "400", "--height", "300")
	return path
}

func TestNewAddList(t *testing.T) {
	path := newLayout(t)
	mustExecute(t, "add", path, "button", "ok")
	mustExecute(t, "add", path, "group")
	mustExecute(t, "list", path)

	s := load(t, path)
	if c := s.Canvas(); c.W != 400 || c.H != 300 {
		t.Errorf("Canvas() = %+v, want 400x300", c)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	ok, found := s.ByName("ok")
	if !found {
		t.Fatal("element ok not saved")
	}
	if b := s.Box(ok); b.Left != 12 || b.Top != 12 || b.Width != 100 {
		t.Errorf("Box(ok) = %+v, want 12,12 100 wide", b)
	}
	if _, found := s.ByName("group1"); !found {
		t.Error("unnamed group was not named group1")
	}
}

func TestNewRefusesOverwrite(t *testing.T) {
	path := newLayout(t)
	if err := execute(t, "new", path); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("new over existing file error = %v, want %s", err, errors.ErrCodeInvalidPath)
	}
	mustExecute(t, "new", path, "--force", "--width", "640")
	if w := load(t, path).Canvas().W; w != 640 {
		t.Errorf("Canvas().W = %v after --force, want 640", w)
	}
}

func TestNudgeAndAlign(t *testing.T) {
	path := newLayout(t)
	mustExecute(t, "add", path, "button", "ok")
	mustExecute(t, "nudge", path, "ok", "right", "-n", "3")
	mustExecute(t, "align", path, "ok", "right", "bottom")

	s := load(t, path)
	ok, _ := s.ByName("ok")
	if ok.H.Align() != anchor.End || ok.V.Align() != anchor.End {
		t.Errorf("alignment = %v/%v, want end/end", ok.H.Align(), ok.V.Align())
	}
	if b := s.Box(ok); b.Left != 24 || b.Top != 12 {
		t.Errorf("Box(ok) = %+v, want origin 24,12", b)
	}
}

func TestRestackRenameDelete(t *testing.T) {
	path := newLayout(t)
	mustExecute(t, "add", path, "button", "a")
	mustExecute(t, "add", path, "button", "b")
	mustExecute(t, "front", path, "a")

	if els := load(t, path).Elements(); els[len(els)-1].Name != "a" {
		t.Errorf("top element = %s, want a", els[len(els)-1].Name)
	}

	mustExecute(t, "rename", path, "b", "apply")
	mustExecute(t, "delete", path, "a")

	s := load(t, path)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if _, found := s.ByName("apply"); !found {
		t.Error("renamed element apply missing")
	}
}

func TestElementErrors(t *testing.T) {
	path := newLayout(t)
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown element", []string{"align", path, "ghost", "left", "top"}, errors.ErrCodeElementNotFound},
		{"unknown kind", []string{"add", path, "spinner"}, errors.ErrCodeInvalidKind},
		{"bad alignment", []string{"align", path, "ghost", "upward", "top"}, errors.ErrCodeInvalidAlign},
		{"missing document", []string{"list", filepath.Join(t.TempDir(), "none.json")}, errors.ErrCodeFileNotFound},
		{"render format", []string{"render", path, "-f", "gif"}, errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := execute(t, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReplay(t *testing.T) {
	src := `canvas 400 300
add button ok
press left 20 20
move 40 20
release
expect ok 32 12 100 100
`
	scriptPath := writeFile(t, "drag.hmi", src)
	out := filepath.Join(t.TempDir(), "out.yaml")
	mustExecute(t, "replay", scriptPath, "--save", out)

	ok, found := load(t, out).ByName("ok")
	if !found || ok.H.Offset() != 32 {
		t.Errorf("saved ok = %+v, want start offset 32", ok)
	}

	failing := writeFile(t, "fail.hmi", "add button ok\nexpect ok 0 0 100 100\n")
	if err := execute(t, "replay", failing); !errors.Is(err, errors.ErrCodeScriptAssertion) {
		t.Errorf("replay error = %v, want %s", err, errors.ErrCodeScriptAssertion)
	}
}

func TestRenderAndTree(t *testing.T) {
	path := newLayout(t)
	mustExecute(t, "add", path, "group", "panel")
	dir := t.TempDir()

	svg := filepath.Join(dir, "screen.svg")
	mustExecute(t, "render", path, "-o", svg, "--select", "panel")
	if data, _ := os.ReadFile(svg); !strings.Contains(string(data), "<svg") {
		t.Error("render did not write SVG")
	}

	mustExecute(t, "render", path, "-f", "pdf")
	pdf := strings.TrimSuffix(path, ".json") + ".pdf"
	if data, _ := os.ReadFile(pdf); !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("render -f pdf did not write %s", pdf)
	}

	dot := filepath.Join(dir, "tree.dot")
	mustExecute(t, "tree", path, "-o", dot)
	if data, _ := os.ReadFile(dot); !strings.Contains(string(data), `"canvas" -> "panel"`) {
		t.Errorf("tree DOT = %q, want canvas -> panel", data)
	}
	if err := execute(t, "tree", path, "-f", "svg"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("tree -f svg without -o error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestConfigFlag(t *testing.T) {
	cfg := writeFile(t, "config.toml", "[canvas]\nwidth = 640\nheight = 200\n")
	path := filepath.Join(t.TempDir(), "screen.toml")
	mustExecute(t, "--config", cfg, "new", path)

	if c := load(t, path).Canvas(); c.W != 640 || c.H != 200 {
		t.Errorf("Canvas() = %+v, want 640x200 from config", c)
	}
	if err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "list", path); err == nil {
		t.Error("a missing --config file was accepted")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, explicit, format, want string
	}{
		{"screen.json", "", "svg", "screen.svg"},
		{"dir/screen.toml", "", "pdf", "dir/screen.pdf"},
		{"screen.json", "x.svg", "svg", "x.svg"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.input, tt.explicit, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tt.input, tt.explicit, tt.format, got, tt.want)
		}
	}
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	_ = filepath.WalkDir(dir, func(_ string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			n++
		}
		return nil
	})
	return n
}

func TestRenderCache(t *testing.T) {
	path := newLayout(t)
	mustExecute(t, "add", path, "button", "ok")

	cacheHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	dir := filepath.Join(cacheHome, appName)

	svg := filepath.Join(t.TempDir(), "screen.svg")
	for i := 0; i < 2; i++ {
		if err := run("render", path, "-o", svg); err != nil {
			t.Fatalf("render: %v", err)
		}
	}
	if n := countFiles(t, dir); n != 1 {
		t.Errorf("cache entries after two identical renders = %d, want 1", n)
	}

	if err := run("render", path, "-o", svg, "--select", "ok"); err != nil {
		t.Fatalf("render --select: %v", err)
	}
	if err := run("render", path, "-o", svg, "--no-cache"); err != nil {
		t.Fatalf("render --no-cache: %v", err)
	}
	if n := countFiles(t, dir); n != 2 {
		t.Errorf("cache entries = %d, want 2", n)
	}
	if data, _ := os.ReadFile(svg); !strings.Contains(string(data), "<svg") {
		t.Error("render --no-cache did not write SVG")
	}

	if err := run("cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if n := countFiles(t, dir); n != 0 {
		t.Errorf("cache entries after clear = %d, want 0", n)
	}
}
