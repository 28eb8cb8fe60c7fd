// Package view builds the camera matrices the renderer uploads to the GPU.
package view

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking at Target
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	FovY   float32 // radians
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultCamera looks at the origin from +Z, with the 800x600 aspect of the default window
func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 0, 2},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   mgl32.DegToRad(45),
		Aspect: 800.0 / 600.0,
		Near:   0.1,
		Far:    100,
	}
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ProjectionView returns projection * view. It only changes with the camera,
// so callers compute it once and reuse it for every draw.
func (c Camera) ProjectionView() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// MVP composes pv with a body's model matrix, narrowing it to float32 for upload
func MVP(pv mgl32.Mat4, model mgl64.Mat4) mgl32.Mat4 {
	return pv.Mul4(ToMat32(model))
}

// ToMat32 converts a column-major float64 matrix to float32
func ToMat32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}
