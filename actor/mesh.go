package actor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a mesh point with its RGBA colour
type Vertex struct {
	Position mgl64.Vec3
	Color    mgl64.Vec4
}

// Mesh is immutable geometry shared by reference between bodies.
// It must not be modified once a body holds it.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// NewMesh copies vertices and indices into a new mesh, rejecting indices that
// point past the vertex list or an index count that does not form triangles.
func NewMesh(vertices []Vertex, indices []uint16) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("actor: mesh index count %d is not a multiple of 3", len(indices))
	}
	for i, index := range indices {
		if int(index) >= len(vertices) {
			return nil, fmt.Errorf("actor: mesh index %d at %d out of range (%d vertices)", index, i, len(vertices))
		}
	}

	m := &Mesh{
		Vertices: make([]Vertex, len(vertices)),
		Indices:  make([]uint16, len(indices)),
	}
	copy(m.Vertices, vertices)
	copy(m.Indices, indices)

	return m, nil
}

// TriangleCount returns the number of indexed triangles
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

var (
	red     = mgl64.Vec4{1, 0, 0, 1}
	magenta = mgl64.Vec4{1, 0, 1, 1}
	cyan    = mgl64.Vec4{0, 1, 1, 1}
	green   = mgl64.Vec4{0, 1, 0, 1}
)

// cubeIndices lists the 12 triangles of the cube, clockwise when seen from outside
var cubeIndices = []uint16{
	0, 1, 2, 0, 2, 3,
	3, 2, 4, 3, 4, 5,
	5, 4, 6, 5, 6, 7,
	7, 6, 1, 7, 1, 0,
	1, 6, 4, 1, 4, 2,
	7, 0, 3, 7, 3, 5,
}

// NewCubeMesh returns the half-unit cube (corners at ±0.25) used by both bodies
func NewCubeMesh() *Mesh {
	return NewBoxMesh(mgl64.Vec3{0.25, 0.25, 0.25})
}

// NewBoxMesh returns a box mesh with the given half extents. The index table is
// fixed, so a NewMesh error here is a programming error and panics.
func NewBoxMesh(halfExtents mgl64.Vec3) *Mesh {
	hx, hy, hz := halfExtents.X(), halfExtents.Y(), halfExtents.Z()

	vertices := []Vertex{
		{Position: mgl64.Vec3{-hx, -hy, +hz}, Color: red},     // front bottom left
		{Position: mgl64.Vec3{-hx, +hy, +hz}, Color: red},     // front top left
		{Position: mgl64.Vec3{+hx, +hy, +hz}, Color: magenta}, // front top right
		{Position: mgl64.Vec3{+hx, -hy, +hz}, Color: magenta}, // front bottom right
		{Position: mgl64.Vec3{+hx, +hy, -hz}, Color: cyan},    // back top right
		{Position: mgl64.Vec3{+hx, -hy, -hz}, Color: cyan},    // back bottom right
		{Position: mgl64.Vec3{-hx, +hy, -hz}, Color: green},   // back top left
		{Position: mgl64.Vec3{-hx, -hy, -hz}, Color: green},   // back bottom left
	}

	mesh, err := NewMesh(vertices, cubeIndices)
	if err != nil {
		panic(err)
	}

	return mesh
}
