package debug

import (
	"strings"
	"testing"

	"cube-world/internal/mapgen"
)

func TestStatsLines(t *testing.T) {
	w, err := mapgen.GenerateFlatWorld(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	lines := StatsLines(w.Width, w.Depth, w.Stats())
	want := []string{
		"World: 2x3 (6 tiles)",
		"Solid: 48 vertices, 72 triangles",
		"Bounds: 2.0 x 3.0 x 1.0",
	}
	joined := strings.Join(lines, "\n")
	for _, s := range want {
		if !strings.Contains(joined, s) {
			t.Fatalf("overlay missing %q:\n%s", s, joined)
		}
	}
}

func TestToggleFPS(t *testing.T) {
	d := New(nil)
	if d.ShowFPS || !d.ShowStats {
		t.Fatalf("defaults: ShowFPS=%v ShowStats=%v", d.ShowFPS, d.ShowStats)
	}
	d.ToggleFPS()
	if !d.ShowFPS {
		t.Fatal("ToggleFPS did not enable FPS")
	}
}
