// Package render draws the simulation with raylib. It only reads body transforms;
// nothing here feeds back into the physics.
package render

import (
	"fmt"

	"github.com/akmonengine/aabb3d/actor"
	"github.com/akmonengine/aabb3d/view"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is anything exposing the bodies to draw
type Scene interface {
	Bodies() [2]*actor.RigidBody
}

// Context holds the GPU state for one window: program, cube mesh and the
// projection*view matrix, which only changes with the camera.
type Context struct {
	program *Program
	mesh    *Mesh
	pv      mgl32.Mat4
}

// NewContext compiles the program and uploads mesh. The window must already exist.
func NewContext(vertexSource, fragmentSource string, mesh *actor.Mesh, camera view.Camera) (*Context, error) {
	program := CompileProgram(vertexSource, fragmentSource)

	gpu, err := UploadMesh(mesh, program)
	if err != nil {
		return nil, fmt.Errorf("render: new context: %w", err)
	}

	return &Context{
		program: program,
		mesh:    gpu,
		pv:      camera.ProjectionView(),
	}, nil
}

func (c *Context) SetCamera(camera view.Camera) {
	c.pv = camera.ProjectionView()
}

// Draw renders one frame: every body of scene with its own MVP, then presents
func (c *Context) Draw(scene Scene) {
	BeginFrame()
	for _, body := range scene.Bodies() {
		c.program.SetUniformMatrix(MVPUniform, view.MVP(c.pv, body.ModelMatrix()))
		DrawMesh(c.mesh)
	}
	Present()
}

// Close releases the mesh and the program
func (c *Context) Close() {
	c.mesh.Unload()
}

// BeginFrame clears colour and depth to white and enables depth testing
func BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.White)
	rl.EnableDepthTest()
	rl.DisableBackfaceCulling()
}

// DrawMesh issues the indexed draw with the program's current uniforms.
// The model transform is already part of the MVP uniform.
func DrawMesh(mesh *Mesh) {
	rl.DrawMesh(mesh.mesh, mesh.material, rl.MatrixIdentity())
}

// Present swaps buffers and polls input
func Present() {
	rl.DisableDepthTest()
	rl.EndDrawing()
}
