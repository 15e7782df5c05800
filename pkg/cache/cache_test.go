package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "renders"), time.Hour)
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "tree:a"); hit || err != nil {
		t.Fatalf("Get() on empty cache = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "tree:a", []byte("<svg/>")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, "tree:a")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Errorf("Get() = %q, %v, %v, want <svg/> hit", data, hit, err)
	}

	if err := c.Delete(ctx, "tree:a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "tree:a"); hit {
		t.Error("Get() after Delete() hit")
	}
	if err := c.Delete(ctx, "tree:a"); err != nil {
		t.Errorf("Delete() of a missing key error = %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir(), time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(c.path("k"), old, old); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get() returned an expired entry")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir(), 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k)); err != nil {
			t.Fatal(err)
		}
	}
	n, err := c.Clear()
	if err != nil || n != 3 {
		t.Errorf("Clear() = %d, %v, want 3", n, err)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("Get() hit after Clear()")
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	if err := c.Set(ctx, "k", []byte("v")); err != nil {
		t.Errorf("Set() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("NullCache stored an entry")
	}
}

func TestKey(t *testing.T) {
	a := Key("tree", "digraph {}", "svg")
	if a != Key("tree", "digraph {}", "svg") {
		t.Error("Key() is not deterministic")
	}
	if a == Key("tree", "digraph {}", "png") {
		t.Error("Key() ignores its parts")
	}
	if !strings.HasPrefix(a, "tree:") || len(a) != len("tree:")+64 {
		t.Errorf("Key() = %q, want tree:<sha256>", a)
	}
}
