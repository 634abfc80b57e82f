package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-world/internal/mapgen"
	"cube-world/internal/primitives"
)

const (
	axisLength    = 4
	axisLineAlpha = 220
	cameraPadding = 1.5
)

// Scene holds a free 3D camera and the raylib copy of the current world.
// Worlds are Z-up, so the camera's up vector is +Z.
type Scene struct {
	Camera      rl.Camera3D
	WireVisible bool
	AxesVisible bool

	cursorDone bool
	tris       []triangle
	lines      []segment
}

type triangle struct {
	a, b, c rl.Vector3
	color   rl.Color
}

type segment struct {
	a, b  rl.Vector3
	color rl.Color
}

// New returns a scene with a perspective camera and no world. The wireframe is visible by default.
func New() *Scene {
	s := &Scene{WireVisible: true, AxesVisible: true}
	s.Camera.Position = rl.NewVector3(10, -10, 10)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 0, 1)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetWorld replaces the drawn world. Triangles and wire segments are converted to raylib
// vectors once here so Draw does no per-frame conversion.
func (s *Scene) SetWorld(w mapgen.World) {
	s.tris = s.tris[:0]
	for i := 0; i+2 < len(w.Indices); i += 3 {
		a := w.Vertices[w.Indices[i]]
		b := w.Vertices[w.Indices[i+1]]
		c := w.Vertices[w.Indices[i+2]]
		s.tris = append(s.tris, triangle{a: vec(a), b: vec(b), c: vec(c), color: color(a.Color)})
	}
	s.lines = s.lines[:0]
	for i := 0; i+1 < len(w.WireVertices); i += 2 {
		a, b := w.WireVertices[i], w.WireVertices[i+1]
		s.lines = append(s.lines, segment{a: vec(a), b: vec(b), color: color(a.Color)})
	}
}

// Frame points the camera at the world's bounds from a distance that fits its extent.
func (s *Scene) Frame(b mapgen.Bounds) {
	size := b.Size()
	center := b.Center()
	reach := max(size[0], size[1], size[2]) * cameraPadding
	if reach <= 0 {
		reach = cameraPadding
	}
	s.Camera.Target = rl.NewVector3(center[0], center[1], center[2])
	s.Camera.Position = rl.NewVector3(center[0]+reach, center[1]-reach, center[2]+reach)
}

// ToggleWire flips wireframe visibility.
func (s *Scene) ToggleWire() {
	s.WireVisible = !s.WireVisible
}

// Update runs once per frame. The cursor is captured on the first call and raylib's
// free camera handles mouse and WASD movement.
func (s *Scene) Update() {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFree)
}

// Draw renders the world: solid triangles, then the wire overlay when visible.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	for i := range s.tris {
		t := &s.tris[i]
		rl.DrawTriangle3D(t.a, t.b, t.c, t.color)
	}
	if s.WireVisible {
		for i := range s.lines {
			l := &s.lines[i]
			rl.DrawLine3D(l.a, l.b, l.color)
		}
	}
	if s.AxesVisible {
		drawAxes()
	}
	rl.EndMode3D()
}

// drawAxes draws X (red), Y (green) and Z (blue) from the origin.
func drawAxes() {
	origin := rl.NewVector3(0, 0, 0)
	rl.DrawLine3D(origin, rl.NewVector3(axisLength, 0, 0), rl.NewColor(220, 80, 80, axisLineAlpha))
	rl.DrawLine3D(origin, rl.NewVector3(0, axisLength, 0), rl.NewColor(80, 220, 80, axisLineAlpha))
	rl.DrawLine3D(origin, rl.NewVector3(0, 0, axisLength), rl.NewColor(80, 80, 220, axisLineAlpha))
}

func vec(v primitives.Vertex) rl.Vector3 {
	return rl.NewVector3(v.Pos[0], v.Pos[1], v.Pos[2])
}

func color(c [3]float32) rl.Color {
	return rl.NewColor(channel(c[0]), channel(c[1]), channel(c[2]), 255)
}

func channel(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
