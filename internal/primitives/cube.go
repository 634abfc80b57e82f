package primitives

// CubeColor is the albedo of every solid cube vertex.
var CubeColor = [3]float32{0.298, 0.686, 0.314}

// CubeVertexCount and CubeIndexCount are the sizes of the cube tables.
const (
	CubeVertexCount = 8
	CubeIndexCount  = 36
)

// cubeVertices are the corners of a unit cube centered at the origin.
// 0-3 lie on the front face (z=+0.5), 4-7 on the back face (z=-0.5).
var cubeVertices = [CubeVertexCount]Vertex{
	{Pos: [3]float32{-0.5, -0.5, 0.5}, Color: CubeColor},  // [0]
	{Pos: [3]float32{0.5, -0.5, 0.5}, Color: CubeColor},   // [1]
	{Pos: [3]float32{0.5, 0.5, 0.5}, Color: CubeColor},    // [2]
	{Pos: [3]float32{-0.5, 0.5, 0.5}, Color: CubeColor},   // [3]
	{Pos: [3]float32{-0.5, -0.5, -0.5}, Color: CubeColor}, // [4]
	{Pos: [3]float32{0.5, -0.5, -0.5}, Color: CubeColor},  // [5]
	{Pos: [3]float32{0.5, 0.5, -0.5}, Color: CubeColor},   // [6]
	{Pos: [3]float32{-0.5, 0.5, -0.5}, Color: CubeColor},  // [7]
}

// cubeIndices is a triangle list, two triangles per face, counter-clockwise
// when the face is seen from outside the cube.
var cubeIndices = [CubeIndexCount]uint16{
	0, 1, 2, 2, 3, 0, // front
	4, 6, 5, 4, 7, 6, // back
	0, 7, 4, 0, 3, 7, // left
	1, 5, 6, 6, 2, 1, // right
	3, 2, 6, 6, 7, 3, // top
	0, 5, 1, 5, 0, 4, // bottom
}

// Cube returns the unit cube's vertices and triangle indices.
// Both are arrays, so the caller gets its own copy of the tables.
func Cube() ([CubeVertexCount]Vertex, [CubeIndexCount]uint16) {
	return cubeVertices, cubeIndices
}

// CubeVertices returns a copy of the cube's corner vertices.
func CubeVertices() [CubeVertexCount]Vertex { return cubeVertices }

// CubeIndices returns a copy of the cube's triangle indices.
func CubeIndices() [CubeIndexCount]uint16 { return cubeIndices }
