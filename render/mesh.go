package render

import (
	"fmt"
	"unsafe"

	"github.com/akmonengine/aabb3d/actor"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mesh is the GPU copy of an actor.Mesh, drawn with one program
type Mesh struct {
	mesh     rl.Mesh
	material rl.Material
}

// UploadMesh copies positions, colours and indices into raylib-owned memory and
// uploads them. The returned mesh owns program's shader from then on.
func UploadMesh(m *actor.Mesh, program *Program) (*Mesh, error) {
	vertexCount := len(m.Vertices)
	if vertexCount == 0 || len(m.Indices) == 0 {
		return nil, fmt.Errorf("render: upload mesh: empty geometry (%d vertices, %d indices)", vertexCount, len(m.Indices))
	}

	// Allocated through raylib so UnloadMesh can release them
	vertices := unsafe.Slice((*float32)(rl.MemAlloc(uint32(vertexCount*3*4))), vertexCount*3)
	colors := unsafe.Slice((*uint8)(rl.MemAlloc(uint32(vertexCount*4))), vertexCount*4)
	indices := unsafe.Slice((*uint16)(rl.MemAlloc(uint32(len(m.Indices)*2))), len(m.Indices))

	for i, v := range m.Vertices {
		vertices[i*3+0] = float32(v.Position.X())
		vertices[i*3+1] = float32(v.Position.Y())
		vertices[i*3+2] = float32(v.Position.Z())

		for c := 0; c < 4; c++ {
			colors[i*4+c] = colorByte(v.Color[c])
		}
	}
	copy(indices, m.Indices)

	gpu := &Mesh{
		mesh: rl.Mesh{
			VertexCount:   int32(vertexCount),
			TriangleCount: int32(m.TriangleCount()),
			Vertices:      &vertices[0],
			Colors:        &colors[0],
			Indices:       &indices[0],
		},
		material: rl.LoadMaterialDefault(),
	}
	rl.UploadMesh(&gpu.mesh, false)
	gpu.material.Shader = program.shader

	return gpu, nil
}

// Unload releases the GPU buffers, the vertex data and the program
func (m *Mesh) Unload() {
	rl.UnloadMesh(&m.mesh)
	rl.UnloadMaterial(m.material)
}

func colorByte(c float64) uint8 {
	switch {
	case c <= 0:
		return 0
	case c >= 1:
		return 255
	default:
		return uint8(c*255 + 0.5)
	}
}
