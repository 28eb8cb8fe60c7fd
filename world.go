package aabb3d

import (
	"math"

	"github.com/akmonengine/aabb3d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// BodySettings describes the initial state of one body
type BodySettings struct {
	Position mgl64.Vec3
	// Rotation is the initial orientation as euler angles (radians)
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
	Velocity mgl64.Vec3
}

// Settings holds everything needed to build the two-body scene
type Settings struct {
	Stationary BodySettings
	Moving     BodySettings
	// Bounds are the half extents of the box the moving body is kept in
	Bounds mgl64.Vec3
	// RotationStep is the euler increment (radians) applied to both bodies every step
	RotationStep  mgl64.Vec3
	CollisionAxis Axis
}

// DefaultSettings returns the stock scene: a large cube at the origin and a small
// one moving towards it along -X.
func DefaultSettings() Settings {
	return Settings{
		Stationary: BodySettings{
			Position: mgl64.Vec3{0, 0, 0},
			Scale:    mgl64.Vec3{0.75, 0.75, 0.75},
		},
		Moving: BodySettings{
			Position: mgl64.Vec3{0.7, 0, 0},
			Scale:    mgl64.Vec3{0.25, 0.25, 0.25},
			Velocity: mgl64.Vec3{-0.9, 0, 0},
		},
		Bounds:        mgl64.Vec3{0.9, 0.8, 1.0},
		RotationStep:  mgl64.Vec3{mgl64.DegToRad(1), mgl64.DegToRad(1), 0},
		CollisionAxis: AssumeCollisionAxis,
	}
}

// World owns the shared mesh, both bodies and the collision latch.
// It is driven by a single goroutine: Step must not run concurrently with readers.
type World struct {
	Mesh       *actor.Mesh
	Stationary *actor.RigidBody
	Moving     *actor.RigidBody

	Bounds       mgl64.Vec3
	RotationStep mgl64.Vec3
	AxisPolicy   AxisPolicy

	Events Events

	// collisionActive suppresses repeated reflection while the boxes stay overlapped
	collisionActive bool
	steps           uint64
}

// NewWorld builds both bodies over mesh and computes their initial AABBs
func NewWorld(mesh *actor.Mesh, settings Settings) *World {
	w := &World{
		Mesh:   mesh,
		Events: NewEvents(),
	}
	w.Reset(settings)

	return w
}

// Reset rebuilds both bodies from settings and clears the latch.
// Event subscriptions are kept.
func (w *World) Reset(settings Settings) {
	w.Stationary = newBody(w.Mesh, settings.Stationary, actor.BodyTypeStatic)
	w.Moving = newBody(w.Mesh, settings.Moving, actor.BodyTypeDynamic)
	w.Bounds = settings.Bounds
	w.RotationStep = settings.RotationStep
	w.AxisPolicy = FixedAxis(settings.CollisionAxis)
	w.collisionActive = false
	w.steps = 0
	w.Events.buffer = w.Events.buffer[:0]
}

func newBody(mesh *actor.Mesh, settings BodySettings, bodyType actor.BodyType) *actor.RigidBody {
	transform := actor.NewTransform()
	transform.SetPosition(settings.Position)
	transform.SetRotation(settings.Rotation)
	transform.SetScale(settings.Scale)

	body := actor.NewRigidBody(transform, mesh, bodyType)
	body.SetVelocity(settings.Velocity)

	return body
}

// Bodies returns the stationary and the moving body, in draw order
func (w *World) Bodies() [2]*actor.RigidBody {
	return [2]*actor.RigidBody{w.Stationary, w.Moving}
}

// CollisionActive reports the state of the collision latch
func (w *World) CollisionActive() bool {
	return w.collisionActive
}

// Steps returns the number of steps run since the last Reset
func (w *World) Steps() uint64 {
	return w.steps
}

// Step runs one fixed-duration physics step:
// containment, rotation, AABB recomputation, intersection test, response, integration.
// The AABBs tested belong to the previous position with this step's rotation.
func (w *World) Step(h float64) {
	w.steps++

	w.contain(w.Moving)

	w.Stationary.Rotate(w.RotationStep)
	w.Moving.Rotate(w.RotationStep)

	w.Stationary.ComputeAABB()
	w.Moving.ComputeAABB()

	w.respond(w.Moving.GetAABB().Intersects(w.Stationary.GetAABB()))

	w.Stationary.Integrate(h)
	w.Moving.Integrate(h)

	w.Events.flush()
}

// contain reflects each velocity component whose position component is outside Bounds.
// The three axes are checked independently.
func (w *World) contain(body *actor.RigidBody) {
	for axis := AxisX; axis <= AxisZ; axis++ {
		if math.Abs(body.Transform.Position[axis]) > w.Bounds[axis] {
			body.ReflectVelocity(int(axis))
			w.Events.emit(BoundaryBounceEvent{Step: w.steps, Body: body, Axis: axis, Velocity: body.Velocity})
		}
	}
}

// respond drives the collision latch. Only the first step of an overlap reflects the
// velocity; the latch is cleared on the first step without overlap.
func (w *World) respond(intersecting bool) {
	switch {
	case intersecting && !w.collisionActive:
		axis := w.AxisPolicy(w.Moving.GetAABB(), w.Stationary.GetAABB())
		w.Moving.ReflectVelocity(int(axis))
		w.collisionActive = true

		w.Events.emit(CollisionEnterEvent{
			Step:     w.steps,
			BodyA:    w.Moving,
			BodyB:    w.Stationary,
			Axis:     axis,
			Velocity: w.Moving.Velocity,
		})
	case intersecting:
		w.Events.emit(CollisionStayEvent{Step: w.steps, BodyA: w.Moving, BodyB: w.Stationary})
	default:
		if w.collisionActive {
			w.Events.emit(CollisionExitEvent{Step: w.steps, BodyA: w.Moving, BodyB: w.Stationary})
		}
		w.collisionActive = false
	}
}
