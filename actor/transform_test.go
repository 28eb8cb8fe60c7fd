package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewTransform_Identity(t *testing.T) {
	transform := NewTransform()

	if !transform.ModelMatrix().ApproxEqual(mgl64.Ident4()) {
		t.Errorf("ModelMatrix() = %v, want identity", transform.ModelMatrix())
	}
}

func TestTransform_Update(t *testing.T) {
	transform := NewTransform()
	transform.SetPosition(mgl64.Vec3{0.7, 0, 0})

	transform.Update(mgl64.Vec3{-0.9, 0, 0}, 0.5)

	if !vec3AlmostEqual(transform.Position, mgl64.Vec3{0.25, 0, 0}, 1e-12) {
		t.Errorf("Position = %v, want {0.25 0 0}", transform.Position)
	}
}

func TestTransform_ModelMatrixOrder(t *testing.T) {
	transform := NewTransform()
	transform.SetPosition(mgl64.Vec3{10, 0, 0})
	transform.SetScale(mgl64.Vec3{2, 2, 2})
	transform.SetRotation(mgl64.Vec3{0, 0, math.Pi / 2})

	// (1,0,0) scaled -> (2,0,0), rotated 90° about Z -> (0,2,0), translated -> (10,2,0)
	got := mgl64.TransformCoordinate(mgl64.Vec3{1, 0, 0}, transform.ModelMatrix())

	if !vec3AlmostEqual(got, mgl64.Vec3{10, 2, 0}, 1e-9) {
		t.Errorf("transformed point = %v, want {10 2 0}", got)
	}
}

func TestTransform_RotateComposesOnTheLeft(t *testing.T) {
	// Rotating 90° about X then 90° about Z in world space sends +Y to +Z then keeps it:
	// delta(Z) * delta(X) applied to +Y.
	transform := NewTransform()
	transform.Rotate(mgl64.Vec3{math.Pi / 2, 0, 0})
	transform.Rotate(mgl64.Vec3{0, 0, math.Pi / 2})

	got := transform.Rotation.Rotate(mgl64.Vec3{1, 0, 0})

	// +X is untouched by the X rotation, then Z rotation sends it to +Y
	if !vec3AlmostEqual(got, mgl64.Vec3{0, 1, 0}, 1e-9) {
		t.Errorf("rotated +X = %v, want +Y", got)
	}

	// With right-multiplication the result would be +Z instead
	wrong := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0}).
		Mul(mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})).
		Rotate(mgl64.Vec3{1, 0, 0})
	if vec3AlmostEqual(got, wrong, 1e-6) {
		t.Errorf("composition order is not observable: got %v", got)
	}
}

func TestTransform_RotateStaysNormalized(t *testing.T) {
	transform := NewTransform()
	delta := mgl64.Vec3{mgl64.DegToRad(1), mgl64.DegToRad(1), 0}

	for i := 0; i < 10000; i++ {
		transform.Rotate(delta)
	}

	if !almostEqual(transform.Rotation.Len(), 1.0, 1e-9) {
		t.Errorf("|Rotation| = %v after 10000 steps, want 1", transform.Rotation.Len())
	}
}

func TestEulerToQuat_Order(t *testing.T) {
	euler := mgl64.Vec3{0.3, -0.7, 1.1}
	q := EulerToQuat(euler)

	v := mgl64.Vec3{0.2, 0.5, -0.4}
	got := q.Rotate(v)

	// X applied first, then Y, then Z
	want := mgl64.QuatRotate(1.1, mgl64.Vec3{0, 0, 1}).Rotate(
		mgl64.QuatRotate(-0.7, mgl64.Vec3{0, 1, 0}).Rotate(
			mgl64.QuatRotate(0.3, mgl64.Vec3{1, 0, 0}).Rotate(v)))

	if !vec3AlmostEqual(got, want, 1e-12) {
		t.Errorf("EulerToQuat(%v).Rotate(%v) = %v, want %v", euler, v, got, want)
	}
}
