package actor

import (
	"github.com/go-gl/mathgl/mgl64"
)

// BodyType represents the type of rigid body
type BodyType int

const (
	// BodyTypeDynamic bodies move with their velocity
	BodyTypeDynamic BodyType = iota

	// BodyTypeStatic bodies never translate, whatever their velocity
	// They still rotate when asked to
	BodyTypeStatic
)

// RigidBody couples a transform, a velocity, a shared mesh and the bounding box
// recomputed from that mesh
type RigidBody struct {
	Transform Transform
	Velocity  mgl64.Vec3 // Linear velocity (units/s)
	BodyType  BodyType

	// Mesh is shared with other bodies and never written through this pointer
	Mesh *Mesh

	aabb AABB
}

// NewRigidBody creates a body over mesh and computes its initial AABB
func NewRigidBody(transform Transform, mesh *Mesh, bodyType BodyType) *RigidBody {
	if transform.Rotation == (mgl64.Quat{}) {
		transform.Rotation = mgl64.QuatIdent()
	}

	rb := &RigidBody{
		Transform: transform,
		BodyType:  bodyType,
		Mesh:      mesh,
		Velocity:  mgl64.Vec3{0, 0, 0},
	}
	rb.ComputeAABB()

	return rb
}

func (rb *RigidBody) SetVelocity(velocity mgl64.Vec3) {
	rb.Velocity = velocity
}

// Rotate composes an incremental world-space rotation with the current orientation
func (rb *RigidBody) Rotate(deltaEuler mgl64.Vec3) {
	rb.Transform.Rotate(deltaEuler)
}

// ReflectVelocity flips the sign of one velocity component (0=X, 1=Y, 2=Z)
func (rb *RigidBody) ReflectVelocity(axis int) {
	rb.Velocity[axis] = -rb.Velocity[axis]
}

// ComputeAABB rebuilds the bounding box from every mesh vertex under the current transform
func (rb *RigidBody) ComputeAABB() {
	rb.aabb = CalculateAABB(rb.Mesh, rb.Transform.ModelMatrix())
}

// GetAABB returns the box computed by the last ComputeAABB call
func (rb *RigidBody) GetAABB() AABB {
	return rb.aabb
}

// ModelMatrix returns the world transform used both for bounds and for drawing
func (rb *RigidBody) ModelMatrix() mgl64.Mat4 {
	return rb.Transform.ModelMatrix()
}

// Integrate advances the position by Velocity*dt
func (rb *RigidBody) Integrate(dt float64) {
	if rb.BodyType == BodyTypeStatic {
		return
	}

	rb.Transform.Update(rb.Velocity, dt)
}
