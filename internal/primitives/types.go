package primitives

// Vertex is one mesh vertex: a position followed by an RGB color (0–1).
// The struct is tightly packed so a []Vertex can be uploaded as-is:
//
//	offset 0:  Pos   (float32 * 3, 12 bytes)
//	offset 12: Color (float32 * 3, 12 bytes)
//	stride 24
type Vertex struct {
	Pos   [3]float32
	Color [3]float32
}

// Byte layout of Vertex as consumed by the renderer's vertex binding.
const (
	PositionOffset = 0
	ColorOffset    = 12
	VertexStride   = 24
)

// Translate returns a copy of v moved by offset. Color is unchanged.
func (v Vertex) Translate(offset [3]float32) Vertex {
	return Vertex{
		Pos: [3]float32{
			v.Pos[0] + offset[0],
			v.Pos[1] + offset[1],
			v.Pos[2] + offset[2],
		},
		Color: v.Color,
	}
}

// TranslateAll appends a translated copy of src to dst and returns the extended slice.
func TranslateAll(dst, src []Vertex, offset [3]float32) []Vertex {
	for _, v := range src {
		dst = append(dst, v.Translate(offset))
	}
	return dst
}
