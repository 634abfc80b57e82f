package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"

	"cube-world/internal/mapgen"
	"cube-world/internal/primitives"
)

func world(t *testing.T, width, depth uint32) mapgen.World {
	t.Helper()
	w, err := mapgen.GenerateFlatWorld(width, depth)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestRenderEmptyWorld(t *testing.T) {
	opts := DefaultOptions()
	opts.Scale = 3
	img := Render(world(t, 0, 0), opts)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 3 {
		t.Fatalf("empty preview size = %v, want 3x3", b)
	}
	if got := img.RGBAAt(1, 1); got != opts.Background {
		t.Fatalf("pixel = %v, want background %v", got, opts.Background)
	}
}

func TestRenderSolidTile(t *testing.T) {
	opts := Options{PixelsPerUnit: 10, Scale: 1}
	img := Render(world(t, 1, 1), opts)
	if b := img.Bounds(); b.Dx() != 11 || b.Dy() != 11 {
		t.Fatalf("size = %v, want 11x11", b)
	}
	want := toRGBA(primitives.CubeColor)
	for _, p := range [][2]int{{0, 0}, {5, 5}, {10, 10}} {
		if got := img.RGBAAt(p[0], p[1]); got != want {
			t.Fatalf("pixel %v = %v, want %v", p, got, want)
		}
	}
}

func TestRenderWireOnTop(t *testing.T) {
	opts := Options{PixelsPerUnit: 10, Scale: 1, DrawWire: true}
	img := Render(world(t, 1, 1), opts)
	black := color.RGBA{A: 0xFF}
	if got := img.RGBAAt(0, 0); got != black {
		t.Fatalf("corner pixel = %v, want wire color", got)
	}
}

func TestRenderGridSizeAndMargin(t *testing.T) {
	opts := Options{PixelsPerUnit: 4, Scale: 2, Margin: 3, Background: color.RGBA{R: 1, A: 0xFF}}
	img := Render(world(t, 3, 2), opts)
	// 3 units * 4 ppu + 1 + 2*3 margin = 19, 2 units -> 15, then doubled.
	if b := img.Bounds(); b.Dx() != 38 || b.Dy() != 30 {
		t.Fatalf("size = %v, want 38x30", b)
	}
	if got := img.RGBAAt(0, 0); got != opts.Background {
		t.Fatalf("margin pixel = %v, want background", got)
	}
}

func TestEncodeAndSave(t *testing.T) {
	img := Render(world(t, 2, 2), Options{PixelsPerUnit: 8, DrawWire: true})

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}

	path := filepath.Join(t.TempDir(), "world.png")
	if err := Save(path, img); err != nil {
		t.Fatal(err)
	}
	opened, err := imgio.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if opened.Bounds() != img.Bounds() {
		t.Fatalf("saved bounds = %v, want %v", opened.Bounds(), img.Bounds())
	}
}
