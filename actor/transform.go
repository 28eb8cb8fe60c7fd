package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position, orientation and scale in 3D space
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

func (t *Transform) SetPosition(position mgl64.Vec3) {
	t.Position = position
}

func (t *Transform) SetScale(scale mgl64.Vec3) {
	t.Scale = scale
}

// SetRotation replaces the orientation with the one described by euler (radians),
// composed in the same order as Rotate.
func (t *Transform) SetRotation(euler mgl64.Vec3) {
	t.Rotation = EulerToQuat(euler)
}

// Rotate applies an incremental rotation about the world axes:
// new orientation = delta * old orientation.
func (t *Transform) Rotate(deltaEuler mgl64.Vec3) {
	delta := EulerToQuat(deltaEuler)
	t.Rotation = delta.Mul(t.Rotation).Normalize()
}

// Update integrates the position by velocity*dt
func (t *Transform) Update(velocity mgl64.Vec3, dt float64) {
	t.Position = t.Position.Add(velocity.Mul(dt))
}

// ModelMatrix returns translate * rotate * scale, so a vertex is scaled first,
// then rotated, then translated.
func (t Transform) ModelMatrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

// EulerToQuat builds a quaternion applying X, then Y, then Z (q = qz * qy * qx).
func EulerToQuat(euler mgl64.Vec3) mgl64.Quat {
	qx := mgl64.QuatRotate(euler.X(), mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(euler.Y(), mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(euler.Z(), mgl64.Vec3{0, 0, 1})

	return qz.Mul(qy).Mul(qx)
}
