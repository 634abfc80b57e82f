package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"cube-world/internal/commands"
	"cube-world/internal/gpu"
	"cube-world/internal/logger"
	"cube-world/internal/mapgen"
	"cube-world/internal/meshcache"
	"cube-world/internal/preview"
	"cube-world/internal/primitives"
	"cube-world/internal/worldconfig"
)

// Export file names, relative to the -out directory.
const (
	solidVerticesFile = "solid_vertices.bin"
	solidIndicesFile  = "solid_indices.bin"
	wireVerticesFile  = "wire_vertices.bin"
	manifestFile      = "manifest.yaml"
)

type app struct {
	prefs worldconfig.WorldPrefs
	log   *logger.Logger
	out   io.Writer
}

// sizeFlags registers -width and -depth on fs, defaulting to the configured world size.
func (a *app) sizeFlags(fs *flag.FlagSet) (width, depth *uint) {
	width = fs.Uint("width", uint(a.prefs.Width), "tiles along X")
	depth = fs.Uint("depth", uint(a.prefs.Depth), "tiles along Y")
	return width, depth
}

func (a *app) generate(width, depth uint) (mapgen.World, error) {
	if width > math.MaxUint32 || depth > math.MaxUint32 {
		return mapgen.World{}, fmt.Errorf("%dx%d: %w", width, depth, mapgen.ErrTooManyTiles)
	}
	w, err := mapgen.GenerateFlatWorld(uint32(width), uint32(depth))
	if err != nil {
		return mapgen.World{}, err
	}
	a.log.WithFields(logrus.Fields{"width": width, "depth": depth, "vertices": len(w.Vertices)}).Debug("world generated")
	return w, nil
}

func newRegistry(a *app) *commands.Registry {
	reg := commands.NewRegistry()

	statsFS := flag.NewFlagSet("stats", flag.ContinueOnError)
	sw, sd := a.sizeFlags(statsFS)
	reg.Register("stats", "print buffer sizes and bounds of a world", statsFS, func() error {
		return a.stats(*sw, *sd)
	})

	exportFS := flag.NewFlagSet("export", flag.ContinueOnError)
	ew, ed := a.sizeFlags(exportFS)
	eout := exportFS.String("out", "out", "output directory")
	reg.Register("export", "write packed vertex/index buffers and a manifest", exportFS, func() error {
		return a.export(*ew, *ed, *eout)
	})

	previewFS := flag.NewFlagSet("preview", flag.ContinueOnError)
	pw, pd := a.sizeFlags(previewFS)
	pout := previewFS.String("out", "world.png", "output PNG file")
	ppu := previewFS.Int("ppu", a.prefs.PreviewPixelsPerUnit, "pixels per tile")
	scale := previewFS.Int("scale", a.prefs.PreviewScale, "nearest-neighbor upscale factor")
	wire := previewFS.Bool("wire", !a.prefs.WireframeHidden, "draw the wireframe overlay")
	reg.Register("preview", "render a top-down PNG of a world", previewFS, func() error {
		return a.preview(*pw, *pd, *pout, *ppu, *scale, *wire)
	})

	wireFS := flag.NewFlagSet("wireframe", flag.ContinueOnError)
	divisions := wireFS.Uint("divisions", mapgen.WireDivisions, "grid cells per cube face")
	reg.Register("wireframe", "print the size of one cube's wireframe", wireFS, func() error {
		return a.wireframe(*divisions)
	})

	sweepFS := flag.NewFlagSet("sweep", flag.ContinueOnError)
	maxSize := sweepFS.Uint("max", 8, "largest square world to generate")
	reg.Register("sweep", "print stats for square worlds 1..max through the world cache", sweepFS, func() error {
		return a.sweep(*maxSize)
	})

	return reg
}

func (a *app) stats(width, depth uint) error {
	w, err := a.generate(width, depth)
	if err != nil {
		return err
	}
	printStats(a.out, w.Stats())
	return nil
}

func printStats(out io.Writer, s mapgen.Stats) {
	fmt.Fprintf(out, "tiles:          %d\n", s.Tiles)
	fmt.Fprintf(out, "solid vertices: %d\n", s.Vertices)
	fmt.Fprintf(out, "solid indices:  %d (%d triangles)\n", s.Indices, s.Triangles)
	fmt.Fprintf(out, "wire vertices:  %d (%d segments)\n", s.WireVertices, s.WireSegments)
	fmt.Fprintf(out, "bounds:         %v .. %v\n", s.Bounds.Min, s.Bounds.Max)
}

// manifest describes exported buffers so another tool can bind them.
type manifest struct {
	Width        uint32          `yaml:"width"`
	Depth        uint32          `yaml:"depth"`
	VertexStride uint64          `yaml:"vertex_stride"`
	Attributes   []attributeInfo `yaml:"attributes"`
	IndexFormat  string          `yaml:"index_format"`
	IndexCount   uint32          `yaml:"index_count"`
	WireVertices uint32          `yaml:"wire_vertex_count"`
	Files        map[string]int  `yaml:"files"`
}

type attributeInfo struct {
	Location uint32 `yaml:"location"`
	Offset   uint64 `yaml:"offset"`
	Format   string `yaml:"format"`
}

func (a *app) export(width, depth uint, dir string) error {
	w, err := a.generate(width, depth)
	if err != nil {
		return err
	}
	bufs := gpu.BufferDescriptors(w)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	layout := gpu.VertexLayout()
	m := manifest{
		Width:        w.Width,
		Depth:        w.Depth,
		VertexStride: layout.ArrayStride,
		IndexFormat:  fmt.Sprint(gpu.IndexFormat),
		IndexCount:   bufs.IndexCount(),
		WireVertices: bufs.WireVertexCount(),
		Files:        make(map[string]int),
	}
	for _, attr := range layout.Attributes {
		m.Attributes = append(m.Attributes, attributeInfo{
			Location: attr.ShaderLocation,
			Offset:   attr.Offset,
			Format:   fmt.Sprint(attr.Format),
		})
	}

	files := []struct {
		name string
		data []byte
	}{
		{solidVerticesFile, bufs.Solid.Contents},
		{solidIndicesFile, bufs.Index.Contents},
		{wireVerticesFile, bufs.Wire.Contents},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), f.data, 0644); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		m.Files[f.name] = len(f.data)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifestFile), data, 0644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	a.log.WithFields(logrus.Fields{"dir": dir, "tiles": w.Tiles()}).Info("buffers exported")
	fmt.Fprintf(a.out, "wrote %d files to %s\n", len(files)+1, dir)
	return nil
}

func (a *app) preview(width, depth uint, path string, ppu, scale int, wire bool) error {
	w, err := a.generate(width, depth)
	if err != nil {
		return err
	}
	opts := preview.DefaultOptions()
	opts.PixelsPerUnit = ppu
	opts.Scale = scale
	opts.DrawWire = wire
	img := preview.Render(w, opts)
	if err := preview.Save(path, img); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	b := img.Bounds()
	a.log.WithFields(logrus.Fields{"path": path, "width": b.Dx(), "height": b.Dy()}).Info("preview written")
	fmt.Fprintf(a.out, "wrote %dx%d preview to %s\n", b.Dx(), b.Dy(), path)
	return nil
}

func (a *app) wireframe(divisions uint) error {
	if divisions > math.MaxUint32 {
		return fmt.Errorf("divisions %d out of range", divisions)
	}
	v, err := primitives.Wireframe(uint32(divisions))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "divisions: %d\nvertices:  %d\nsegments:  %d\nbytes:     %d\n",
		divisions, len(v), len(v)/2, len(v)*primitives.VertexStride)
	return nil
}

func (a *app) sweep(maxSize uint) error {
	cache, err := meshcache.New(a.prefs.CacheEntries)
	if err != nil {
		return err
	}
	defer cache.Close()
	// Each size is requested twice; repeats are cache hits while the sizes fit in the cache.
	for pass := 0; pass < 2; pass++ {
		for n := uint(1); n <= maxSize; n++ {
			w, err := cache.Get(uint32(n), uint32(n))
			if err != nil {
				return err
			}
			if pass == 0 {
				s := w.Stats()
				fmt.Fprintf(a.out, "%3dx%-3d tiles=%-5d vertices=%-6d indices=%-7d wire=%d\n",
					n, n, s.Tiles, s.Vertices, s.Indices, s.WireVertices)
			}
		}
	}
	fmt.Fprintf(a.out, "generated %d worlds for %d requests\n", cache.Generated(), 2*maxSize)
	return nil
}
