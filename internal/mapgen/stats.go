package mapgen

import (
	"github.com/chewxy/math32"

	"cube-world/internal/primitives"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the extent of b on each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Center returns the midpoint of b.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Stats summarizes a world's buffers.
type Stats struct {
	Tiles        int
	Vertices     int
	Indices      int
	Triangles    int
	WireVertices int
	WireSegments int
	Bounds       Bounds
}

// Stats returns counts and the solid geometry's bounding box. An empty world has zero Bounds.
func (w World) Stats() Stats {
	s := Stats{
		Tiles:        w.Tiles(),
		Vertices:     len(w.Vertices),
		Indices:      len(w.Indices),
		Triangles:    len(w.Indices) / 3,
		WireVertices: len(w.WireVertices),
		WireSegments: len(w.WireVertices) / 2,
	}
	if len(w.Vertices) > 0 {
		s.Bounds = computeBounds(w.Vertices)
	}
	return s
}

func computeBounds(vertices []primitives.Vertex) Bounds {
	b := Bounds{
		Min: [3]float32{math32.Inf(1), math32.Inf(1), math32.Inf(1)},
		Max: [3]float32{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)},
	}
	for _, v := range vertices {
		for axis, c := range v.Pos {
			b.Min[axis] = math32.Min(b.Min[axis], c)
			b.Max[axis] = math32.Max(b.Max[axis], c)
		}
	}
	return b
}
