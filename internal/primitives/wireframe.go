package primitives

import "errors"

// ErrZeroDivisions is returned by Wireframe when asked for zero grid cells per face.
var ErrZeroDivisions = errors.New("wireframe: divisions must be at least 1")

// WireColor is the color of every wireframe vertex.
var WireColor = [3]float32{0, 0, 0}

// verticesPerDivision is the number of vertices emitted for each interior grid
// coordinate: 12 segments, two per face.
const verticesPerDivision = 24

// CubeEdges are the 12 edges of the unit cube as start/end corner pairs.
var CubeEdges = [12][2][3]float32{
	{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}},
	{{-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}},
	{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}},
	{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}},
	{{-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}},
	{{0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}},
	{{-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}},
	{{0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}},
	{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}},
	{{0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}},
	{{-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5}},
	{{0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},
}

// WireframeVertexCount returns len(Wireframe(divisions)) without generating it.
func WireframeVertexCount(divisions uint32) int {
	if divisions == 0 {
		return 0
	}
	return verticesPerDivision * int(divisions)
}

// Wireframe returns line-list vertices outlining a unit cube: on every face, the
// divisions-1 interior grid lines in each direction, followed by the cube's 12 edges.
// Vertices 2k and 2k+1 form one segment.
func Wireframe(divisions uint32) ([]Vertex, error) {
	if divisions == 0 {
		return nil, ErrZeroDivisions
	}
	vertices := make([]Vertex, 0, WireframeVertexCount(divisions))
	line := func(a, b [3]float32) {
		vertices = append(vertices, Vertex{Pos: a, Color: WireColor}, Vertex{Pos: b, Color: WireColor})
	}

	step := 1 / float32(divisions)
	for i := uint32(1); i < divisions; i++ {
		pos := -0.5 + float32(i)*step

		// XY planes (z = ±0.5)
		line([3]float32{-0.5, pos, -0.5}, [3]float32{0.5, pos, -0.5})
		line([3]float32{-0.5, pos, 0.5}, [3]float32{0.5, pos, 0.5})
		line([3]float32{pos, -0.5, -0.5}, [3]float32{pos, 0.5, -0.5})
		line([3]float32{pos, -0.5, 0.5}, [3]float32{pos, 0.5, 0.5})

		// XZ planes (y = ±0.5)
		line([3]float32{-0.5, -0.5, pos}, [3]float32{0.5, -0.5, pos})
		line([3]float32{-0.5, 0.5, pos}, [3]float32{0.5, 0.5, pos})
		line([3]float32{pos, -0.5, -0.5}, [3]float32{pos, -0.5, 0.5})
		line([3]float32{pos, 0.5, -0.5}, [3]float32{pos, 0.5, 0.5})

		// YZ planes (x = ±0.5)
		line([3]float32{-0.5, -0.5, pos}, [3]float32{-0.5, 0.5, pos})
		line([3]float32{0.5, -0.5, pos}, [3]float32{0.5, 0.5, pos})
		line([3]float32{-0.5, pos, -0.5}, [3]float32{-0.5, pos, 0.5})
		line([3]float32{0.5, pos, -0.5}, [3]float32{0.5, pos, 0.5})
	}

	for _, e := range CubeEdges {
		line(e[0], e[1])
	}
	return vertices, nil
}
