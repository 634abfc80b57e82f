package primitives

import (
	"encoding/binary"
	"math"
)

// AppendVertexBytes appends the little-endian, tightly packed encoding of vertices
// to dst (VertexStride bytes each) and returns the extended slice.
func AppendVertexBytes(dst []byte, vertices []Vertex) []byte {
	dst = grow(dst, len(vertices)*VertexStride)
	for _, v := range vertices {
		for _, f := range v.Pos {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
		}
		for _, f := range v.Color {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
		}
	}
	return dst
}

// AppendIndexBytes appends indices as little-endian uint16 values.
func AppendIndexBytes(dst []byte, indices []uint16) []byte {
	dst = grow(dst, len(indices)*2)
	for _, i := range indices {
		dst = binary.LittleEndian.AppendUint16(dst, i)
	}
	return dst
}

// DecodeVertex reads one vertex from the first VertexStride bytes of b.
func DecodeVertex(b []byte) Vertex {
	var v Vertex
	for i := range v.Pos {
		v.Pos[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[PositionOffset+4*i:]))
		v.Color[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[ColorOffset+4*i:]))
	}
	return v
}

func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	return out
}
