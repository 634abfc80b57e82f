// Package gpu describes how world buffers are bound by a WebGPU pipeline: the vertex
// layout, primitive state for the solid and wireframe passes, and buffer init descriptors.
// It creates no device objects; callers pass the descriptors to their own device.
package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"

	"cube-world/internal/primitives"
)

// Shader locations of the vertex attributes.
const (
	PositionLocation = 0
	ColorLocation    = 1
)

// IndexFormat is the format of the solid index buffer.
const IndexFormat = wgpu.IndexFormatUint16

// VertexLayout returns the buffer layout shared by the solid and wireframe passes:
// one interleaved buffer, position then color, both float32x3.
func VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: primitives.VertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         primitives.PositionOffset,
				ShaderLocation: PositionLocation,
			},
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         primitives.ColorOffset,
				ShaderLocation: ColorLocation,
			},
		},
	}
}

// SolidPrimitive is the primitive state for the indexed cube pass.
// Cube faces wind counter-clockwise seen from outside, so back faces are culled.
func SolidPrimitive() wgpu.PrimitiveState {
	return wgpu.PrimitiveState{
		Topology:  wgpu.PrimitiveTopologyTriangleList,
		FrontFace: wgpu.FrontFaceCCW,
		CullMode:  wgpu.CullModeBack,
	}
}

// WirePrimitive is the primitive state for the non-indexed line pass.
func WirePrimitive() wgpu.PrimitiveState {
	return wgpu.PrimitiveState{
		Topology:  wgpu.PrimitiveTopologyLineList,
		FrontFace: wgpu.FrontFaceCCW,
		CullMode:  wgpu.CullModeNone,
	}
}
