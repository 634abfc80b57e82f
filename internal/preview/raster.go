package preview

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"cube-world/internal/primitives"
)

// canvas maps world XY coordinates onto an RGBA image.
type canvas struct {
	img    *image.RGBA
	minX   float32
	maxY   float32
	ppu    float32
	margin int
}

func (c *canvas) project(p [3]float32) (x, y int) {
	x = c.margin + int(math32.Round((p[0]-c.minX)*c.ppu))
	y = c.margin + int(math32.Round((c.maxY-p[1])*c.ppu))
	return x, y
}

func (c *canvas) clear(bg color.RGBA) {
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.img.SetRGBA(x, y, bg)
		}
	}
}

// setPixel ignores out-of-bounds coordinates.
func (c *canvas) setPixel(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// drawLine is Bresenham's line algorithm.
func (c *canvas) drawLine(x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle fills the projected triangle with interpolated vertex colors.
// Triangles that project to a line (cube side faces seen from above) are skipped.
func (c *canvas) fillTriangle(v0, v1, v2 primitives.Vertex) {
	x0, y0 := c.project(v0.Pos)
	x1, y1 := c.project(v1.Pos)
	x2, y2 := c.project(v2.Pos)

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
		v1, v2 = v2, v1
		area = -area
	}

	b := c.img.Bounds()
	minX, maxX := max(min(x0, x1, x2), b.Min.X), min(max(x0, x1, x2), b.Max.X-1)
	minY, maxY := max(min(y0, y1, y2), b.Min.Y), min(max(y0, y1, y2), b.Max.Y-1)
	if minX > maxX || minY > maxY {
		return
	}

	invArea := 1 / float32(area)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			var col [3]float32
			for i := range col {
				col[i] = a0*v0.Color[i] + a1*v1.Color[i] + a2*v2.Color[i]
			}
			c.img.SetRGBA(x, y, toRGBA(col))
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
