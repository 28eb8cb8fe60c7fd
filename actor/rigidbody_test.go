package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// BodyType Tests
// =============================================================================

func TestBodyType_Constants(t *testing.T) {
	if BodyTypeDynamic == BodyTypeStatic {
		t.Error("BodyTypeDynamic and BodyTypeStatic should have different values")
	}
	if BodyTypeDynamic != 0 {
		t.Errorf("BodyTypeDynamic = %d, want 0", BodyTypeDynamic)
	}
}

// =============================================================================
// NewRigidBody Tests
// =============================================================================

func TestNewRigidBody_ComputesInitialAABB(t *testing.T) {
	transform := NewTransform()
	transform.SetPosition(mgl64.Vec3{1, 2, 3})
	transform.SetScale(mgl64.Vec3{2, 2, 2})

	rb := NewRigidBody(transform, NewCubeMesh(), BodyTypeDynamic)

	aabb := rb.GetAABB()
	if !vec3AlmostEqual(aabb.Min, mgl64.Vec3{0.5, 1.5, 2.5}, 1e-10) {
		t.Errorf("AABB.Min = %v, want {0.5 1.5 2.5}", aabb.Min)
	}
	if !vec3AlmostEqual(aabb.Max, mgl64.Vec3{1.5, 2.5, 3.5}, 1e-10) {
		t.Errorf("AABB.Max = %v, want {1.5 2.5 3.5}", aabb.Max)
	}
	if rb.Velocity != (mgl64.Vec3{}) {
		t.Errorf("Velocity = %v, want zero", rb.Velocity)
	}
}

func TestNewRigidBody_ZeroRotationBecomesIdentity(t *testing.T) {
	rb := NewRigidBody(Transform{Scale: mgl64.Vec3{1, 1, 1}}, NewCubeMesh(), BodyTypeStatic)

	if !quatAlmostEqual(rb.Transform.Rotation, mgl64.QuatIdent(), 1e-12) {
		t.Errorf("Rotation = %v, want identity", rb.Transform.Rotation)
	}
	if !rb.GetAABB().Valid() {
		t.Errorf("AABB %v is not valid", rb.GetAABB())
	}
}

func TestNewRigidBody_SharesMesh(t *testing.T) {
	mesh := NewCubeMesh()
	a := NewRigidBody(NewTransform(), mesh, BodyTypeStatic)
	b := NewRigidBody(NewTransform(), mesh, BodyTypeDynamic)

	if a.Mesh != b.Mesh {
		t.Error("bodies built over the same mesh should reference it, not copy it")
	}
}

// =============================================================================
// Integrate Tests
// =============================================================================

func TestRigidBody_Integrate(t *testing.T) {
	tests := []struct {
		name     string
		bodyType BodyType
		velocity mgl64.Vec3
		dt       float64
		want     mgl64.Vec3
	}{
		{"dynamic moves", BodyTypeDynamic, mgl64.Vec3{-0.9, 0, 0}, 0.012, mgl64.Vec3{-0.0108, 0, 0}},
		{"dynamic all axes", BodyTypeDynamic, mgl64.Vec3{1, 2, 3}, 0.5, mgl64.Vec3{0.5, 1, 1.5}},
		{"static ignores velocity", BodyTypeStatic, mgl64.Vec3{1, 1, 1}, 1.0, mgl64.Vec3{0, 0, 0}},
		{"zero dt", BodyTypeDynamic, mgl64.Vec3{5, 5, 5}, 0, mgl64.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRigidBody(NewTransform(), NewCubeMesh(), tt.bodyType)
			rb.SetVelocity(tt.velocity)

			rb.Integrate(tt.dt)

			if !vec3AlmostEqual(rb.Transform.Position, tt.want, 1e-12) {
				t.Errorf("Position = %v, want %v", rb.Transform.Position, tt.want)
			}
		})
	}
}

func TestRigidBody_IntegrateDoesNotRecomputeAABB(t *testing.T) {
	rb := NewRigidBody(NewTransform(), NewCubeMesh(), BodyTypeDynamic)
	rb.SetVelocity(mgl64.Vec3{1, 0, 0})
	before := rb.GetAABB()

	rb.Integrate(1)

	if rb.GetAABB() != before {
		t.Errorf("AABB changed without ComputeAABB: %v -> %v", before, rb.GetAABB())
	}

	rb.ComputeAABB()
	if !almostEqual(rb.GetAABB().Min.X(), 0.75, 1e-12) {
		t.Errorf("AABB.Min.X after ComputeAABB = %v, want 0.75", rb.GetAABB().Min.X())
	}
}

// =============================================================================
// ReflectVelocity Tests
// =============================================================================

func TestRigidBody_ReflectVelocity(t *testing.T) {
	tests := []struct {
		name string
		axis int
		want mgl64.Vec3
	}{
		{"X", 0, mgl64.Vec3{-1, 2, 3}},
		{"Y", 1, mgl64.Vec3{1, -2, 3}},
		{"Z", 2, mgl64.Vec3{1, 2, -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRigidBody(NewTransform(), NewCubeMesh(), BodyTypeDynamic)
			rb.SetVelocity(mgl64.Vec3{1, 2, 3})

			rb.ReflectVelocity(tt.axis)

			if rb.Velocity != tt.want {
				t.Errorf("Velocity = %v, want %v", rb.Velocity, tt.want)
			}
		})
	}
}

// =============================================================================
// Rotate Tests
// =============================================================================

func TestRigidBody_RotateChangesAABB(t *testing.T) {
	rb := NewRigidBody(NewTransform(), NewCubeMesh(), BodyTypeStatic)
	before := rb.GetAABB()

	rb.Rotate(mgl64.Vec3{mgl64.DegToRad(30), mgl64.DegToRad(30), 0})
	rb.ComputeAABB()
	after := rb.GetAABB()

	beforeWidth := before.Max.X() - before.Min.X()
	afterWidth := after.Max.X() - after.Min.X()
	if afterWidth <= beforeWidth {
		t.Errorf("rotated AABB should be wider: before %v, after %v", beforeWidth, afterWidth)
	}
	// Rotation never moves a centred body
	if center := after.Min.Add(after.Max).Mul(0.5); !vec3AlmostEqual(center, mgl64.Vec3{}, 1e-9) {
		t.Errorf("center = %v, want origin", center)
	}
}

// Helper function to compare floats with epsilon tolerance
func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// Helper function to compare Vec3 with epsilon tolerance
func vec3AlmostEqual(a, b mgl64.Vec3, epsilon float64) bool {
	return almostEqual(a.X(), b.X(), epsilon) &&
		almostEqual(a.Y(), b.Y(), epsilon) &&
		almostEqual(a.Z(), b.Z(), epsilon)
}

// Helper function to compare quaternions with epsilon tolerance
func quatAlmostEqual(a, b mgl64.Quat, epsilon float64) bool {
	return almostEqual(a.W, b.W, epsilon) &&
		almostEqual(a.V.X(), b.V.X(), epsilon) &&
		almostEqual(a.V.Y(), b.V.Y(), epsilon) &&
		almostEqual(a.V.Z(), b.V.Z(), epsilon)
}
