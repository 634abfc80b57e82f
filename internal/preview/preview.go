// Package preview renders a world's buffers into a top-down image.
//
// The projection is orthographic along -Z: X maps to image columns and Y to rows, with +Y
// pointing up. Solid triangles are filled with their vertex color, then wire segments are
// drawn on top. There is no depth buffer; from above, top faces cover everything below them.
package preview

import (
	"image"
	"image/color"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/chewxy/math32"

	"cube-world/internal/mapgen"
)

// Options controls the preview output.
type Options struct {
	PixelsPerUnit int // rasterization resolution; one tile is PixelsPerUnit pixels wide
	Scale         int // nearest-neighbor upscale applied after rasterization
	Margin        int // border in pixels around the world
	Background    color.RGBA
	DrawWire      bool
}

// DefaultOptions returns options that keep a 24-division wire grid readable.
func DefaultOptions() Options {
	return Options{
		PixelsPerUnit: 48,
		Scale:         1,
		Margin:        8,
		Background:    color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xFF},
		DrawWire:      true,
	}
}

// Render rasterizes w. An empty world renders as a single background pixel (plus scale).
func Render(w mapgen.World, opts Options) *image.RGBA {
	if opts.PixelsPerUnit <= 0 {
		opts.PixelsPerUnit = DefaultOptions().PixelsPerUnit
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}

	stats := w.Stats()
	if stats.Vertices == 0 {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.SetRGBA(0, 0, opts.Background)
		return upscale(img, opts.Scale)
	}

	ppu := float32(opts.PixelsPerUnit)
	size := stats.Bounds.Size()
	width := int(math32.Ceil(size[0]*ppu)) + 1 + 2*opts.Margin
	height := int(math32.Ceil(size[1]*ppu)) + 1 + 2*opts.Margin

	c := &canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		minX:   stats.Bounds.Min[0],
		maxY:   stats.Bounds.Max[1],
		ppu:    ppu,
		margin: opts.Margin,
	}
	c.clear(opts.Background)

	for i := 0; i+2 < len(w.Indices); i += 3 {
		v0 := w.Vertices[w.Indices[i]]
		v1 := w.Vertices[w.Indices[i+1]]
		v2 := w.Vertices[w.Indices[i+2]]
		c.fillTriangle(v0, v1, v2)
	}
	if opts.DrawWire {
		for i := 0; i+1 < len(w.WireVertices); i += 2 {
			a, b := w.WireVertices[i], w.WireVertices[i+1]
			x0, y0 := c.project(a.Pos)
			x1, y1 := c.project(b.Pos)
			c.drawLine(x0, y0, x1, y1, toRGBA(a.Color))
		}
	}
	return upscale(c.img, opts.Scale)
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return imgio.PNGEncoder()(w, img)
}

// Save writes img as a PNG file.
func Save(path string, img image.Image) error {
	return imgio.Save(path, img, imgio.PNGEncoder())
}

func upscale(img *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	return transform.Resize(img, b.Dx()*scale, b.Dy()*scale, transform.NearestNeighbor)
}

func toRGBA(c [3]float32) color.RGBA {
	ch := func(v float32) uint8 {
		return uint8(math32.Round(clamp01(v) * 255))
	}
	return color.RGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: 0xFF}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
