package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"cube-world/internal/logger"
	"cube-world/internal/mapgen"
	"cube-world/internal/primitives"
	"cube-world/internal/worldconfig"
)

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	log := logger.New(filepath.Join(t.TempDir(), "worldgen.txt"), nil)
	t.Cleanup(func() { log.Close() })
	var out bytes.Buffer
	return &app{prefs: worldconfig.Default(), log: log, out: &out}, &out
}

func TestStatsCommand(t *testing.T) {
	a, out := newTestApp(t)
	if err := newRegistry(a).Execute([]string{"stats", "-width", "2", "-depth", "3"}); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"tiles:          6", "solid vertices: 48", "solid indices:  216 (72 triangles)"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("stats output missing %q:\n%s", want, out.String())
		}
	}
}

func TestStatsCommandTooLarge(t *testing.T) {
	a, _ := newTestApp(t)
	err := newRegistry(a).Execute([]string{"stats", "-width", "100", "-depth", "100"})
	if !errors.Is(err, mapgen.ErrTooManyTiles) {
		t.Fatalf("err = %v, want ErrTooManyTiles", err)
	}
}

func TestExportCommand(t *testing.T) {
	a, _ := newTestApp(t)
	dir := filepath.Join(t.TempDir(), "export")
	if err := newRegistry(a).Execute([]string{"export", "-width", "1", "-depth", "1", "-out", dir}); err != nil {
		t.Fatal(err)
	}

	solid, err := os.ReadFile(filepath.Join(dir, solidVerticesFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(solid) != 8*primitives.VertexStride {
		t.Fatalf("solid vertices file = %d bytes", len(solid))
	}
	first := primitives.DecodeVertex(solid)
	if first.Pos != [3]float32{-1, -1, 1} {
		t.Fatalf("first exported vertex = %v", first.Pos)
	}

	data, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		t.Fatal(err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m.VertexStride != 24 || m.IndexCount != 36 || len(m.Attributes) != 2 {
		t.Fatalf("manifest = %+v", m)
	}
	if m.Attributes[1].Offset != 12 || m.Attributes[1].Location != 1 {
		t.Fatalf("color attribute = %+v", m.Attributes[1])
	}
	if m.Files[solidIndicesFile] != 72 {
		t.Fatalf("index file size = %d, want 72", m.Files[solidIndicesFile])
	}
}

func TestPreviewCommand(t *testing.T) {
	a, out := newTestApp(t)
	path := filepath.Join(t.TempDir(), "w.png")
	args := []string{"preview", "-width", "2", "-depth", "2", "-ppu", "4", "-out", path}
	if err := newRegistry(a).Execute(args); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "preview to") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestWireframeCommand(t *testing.T) {
	a, out := newTestApp(t)
	reg := newRegistry(a)
	if err := reg.Execute([]string{"wireframe", "-divisions", "1"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "vertices:  24") {
		t.Fatalf("output = %q", out.String())
	}
	if err := reg.Execute([]string{"wireframe", "-divisions", "0"}); !errors.Is(err, primitives.ErrZeroDivisions) {
		t.Fatalf("err = %v, want ErrZeroDivisions", err)
	}
}

func TestSweepCommand(t *testing.T) {
	a, out := newTestApp(t)
	if err := newRegistry(a).Execute([]string{"sweep", "-max", "3"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "generated 3 worlds for 6 requests") {
		t.Fatalf("output = %q", out.String())
	}
}
