package mapgen

import (
	"errors"
	"fmt"

	"cube-world/internal/primitives"
)

// WireDivisions is the number of grid cells per cube face in the wireframe overlay.
const WireDivisions = 24

// TileHeight lifts every cube so its bottom face rests on z=0 and its top face on z=1.
const TileHeight = 0.5

// MaxTiles is the largest tile count whose solid vertices stay addressable by uint16 indices
// (8 vertices per tile, 65536 vertices total).
const MaxTiles = (1 << 16) / primitives.CubeVertexCount

// ErrTooManyTiles is returned when width*depth tiles would overflow the 16-bit index range.
var ErrTooManyTiles = errors.New("mapgen: too many tiles for 16-bit indices")

// World holds the buffers of a generated flat world.
// Vertices/Indices form a triangle list; WireVertices is a line list with no index buffer.
type World struct {
	Width, Depth uint32

	Vertices     []primitives.Vertex
	Indices      []uint16
	WireVertices []primitives.Vertex
}

// TileOffset returns the translation applied to the cube at tile (x, y).
// Cube centers land on x - width/2 and y - depth/2, so the grid is not exactly
// symmetric about the origin.
func TileOffset(x, y, width, depth uint32) [3]float32 {
	return [3]float32{
		float32(x) - float32(width)/2,
		float32(y) - float32(depth)/2,
		TileHeight,
	}
}

// GenerateFlatWorld tiles width×depth unit cubes on the XY plane, with the wireframe
// overlay for each. Tiles are emitted x-major (x outer, y inner). The wireframe pattern is
// generated once and copied per tile.
// A zero width or depth yields empty buffers. More than MaxTiles tiles is ErrTooManyTiles.
func GenerateFlatWorld(width, depth uint32) (World, error) {
	tiles := uint64(width) * uint64(depth)
	if tiles > MaxTiles {
		return World{}, fmt.Errorf("%w: %dx%d is %d tiles, max %d", ErrTooManyTiles, width, depth, tiles, MaxTiles)
	}
	n := int(tiles)

	baseWire, err := primitives.Wireframe(WireDivisions)
	if err != nil {
		return World{}, err
	}
	cubeVerts, cubeIdx := primitives.Cube()

	w := World{
		Width:        width,
		Depth:        depth,
		Vertices:     make([]primitives.Vertex, 0, n*primitives.CubeVertexCount),
		Indices:      make([]uint16, 0, n*primitives.CubeIndexCount),
		WireVertices: make([]primitives.Vertex, 0, n*len(baseWire)),
	}

	var baseIndex int
	for x := uint32(0); x < width; x++ {
		for y := uint32(0); y < depth; y++ {
			offset := TileOffset(x, y, width, depth)
			w.Vertices = primitives.TranslateAll(w.Vertices, cubeVerts[:], offset)
			for _, i := range cubeIdx {
				w.Indices = append(w.Indices, uint16(baseIndex+int(i)))
			}
			w.WireVertices = primitives.TranslateAll(w.WireVertices, baseWire, offset)
			baseIndex += primitives.CubeVertexCount
		}
	}
	return w, nil
}

// Tiles returns the number of tiles in the world.
func (w World) Tiles() int {
	return int(w.Width) * int(w.Depth)
}
