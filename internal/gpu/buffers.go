package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"

	"cube-world/internal/mapgen"
	"cube-world/internal/primitives"
)

// copyAlignment is WebGPU's COPY_BUFFER_ALIGNMENT: buffer sizes written through the
// queue must be a multiple of 4 bytes.
const copyAlignment = 4

// Buffers holds init descriptors for the three world buffers.
type Buffers struct {
	Solid wgpu.BufferInitDescriptor
	Index wgpu.BufferInitDescriptor
	Wire  wgpu.BufferInitDescriptor

	indexCount      uint32
	wireVertexCount uint32
}

// IndexCount is the index count for DrawIndexed on the solid pass.
func (b Buffers) IndexCount() uint32 { return b.indexCount }

// WireVertexCount is the vertex count for Draw on the wireframe pass.
func (b Buffers) WireVertexCount() uint32 { return b.wireVertexCount }

// BufferDescriptors packs a world into buffer init descriptors ready for
// Device.CreateBufferInit. The index buffer is zero-padded to a 4-byte multiple;
// IndexCount excludes the padding.
func BufferDescriptors(w mapgen.World) Buffers {
	indexBytes := primitives.AppendIndexBytes(nil, w.Indices)
	if rem := len(indexBytes) % copyAlignment; rem != 0 {
		indexBytes = append(indexBytes, make([]byte, copyAlignment-rem)...)
	}
	return Buffers{
		Solid: wgpu.BufferInitDescriptor{
			Label:    "world solid vertices",
			Contents: primitives.AppendVertexBytes(nil, w.Vertices),
			Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		},
		Index: wgpu.BufferInitDescriptor{
			Label:    "world solid indices",
			Contents: indexBytes,
			Usage:    wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
		},
		Wire: wgpu.BufferInitDescriptor{
			Label:    "world wire vertices",
			Contents: primitives.AppendVertexBytes(nil, w.WireVertices),
			Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		},
		indexCount:      uint32(len(w.Indices)),
		wireVertexCount: uint32(len(w.WireVertices)),
	}
}
