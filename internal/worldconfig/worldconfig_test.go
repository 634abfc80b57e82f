package worldconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"cube-world/internal/mapgen"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if got != Default() {
		t.Fatalf("Load(missing) = %s", spew.Sdump(got))
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	yml := "width: 40\nshow_fps: true\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Width = 40
	want.ShowFPS = true
	want.LogLevel = "debug"
	if got != want {
		t.Fatalf("merged prefs mismatch:\ngot  %s\nwant %s", spew.Sdump(got), spew.Sdump(want))
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte("width: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if got != Default() {
		t.Fatalf("invalid file should yield defaults, got %s", spew.Sdump(got))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "world.yaml")
	p := Default()
	p.Depth = 9
	p.WireframeHidden = true
	p.PreviewScale = 3
	if err := Save(path, p); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Fatalf("round trip mismatch:\ngot  %s\nwant %s", spew.Sdump(got), spew.Sdump(p))
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	big := Default()
	big.Width, big.Depth = 100, 100
	if err := big.Validate(); !errors.Is(err, mapgen.ErrTooManyTiles) {
		t.Fatalf("Validate(100x100) = %v, want ErrTooManyTiles", err)
	}

	cases := map[string]func(*WorldPrefs){
		"window":  func(p *WorldPrefs) { p.WindowHeight = 0 },
		"cache":   func(p *WorldPrefs) { p.CacheEntries = -1 },
		"preview": func(p *WorldPrefs) { p.PreviewScale = 0 },
		"level":   func(p *WorldPrefs) { p.LogLevel = "chatty" },
	}
	for name, mutate := range cases {
		p := Default()
		mutate(&p)
		if err := p.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
