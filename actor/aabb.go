package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// CalculateAABB transforms every vertex of the mesh by model and returns the
// component-wise min and max of the transformed set.
// An empty mesh yields the box reduced to the model's origin.
func CalculateAABB(mesh *Mesh, model mgl64.Mat4) AABB {
	if mesh == nil || len(mesh.Vertices) == 0 {
		origin := model.Col(3).Vec3()
		return AABB{Min: origin, Max: origin}
	}

	// Transformer le premier sommet pour initialiser min/max
	worldVertex := mgl64.TransformCoordinate(mesh.Vertices[0].Position, model)
	min := worldVertex
	max := worldVertex

	for i := 1; i < len(mesh.Vertices); i++ {
		worldVertex = mgl64.TransformCoordinate(mesh.Vertices[i].Position, model)

		min[0] = math.Min(min[0], worldVertex[0])
		min[1] = math.Min(min[1], worldVertex[1])
		min[2] = math.Min(min[2], worldVertex[2])

		max[0] = math.Max(max[0], worldVertex[0])
		max[1] = math.Max(max[1], worldVertex[1])
		max[2] = math.Max(max[2], worldVertex[2])
	}

	return AABB{Min: min, Max: max}
}

// Valid reports whether Min <= Max on every axis
func (a AABB) Valid() bool {
	return a.Min.X() <= a.Max.X() && a.Min.Y() <= a.Max.Y() && a.Min.Z() <= a.Max.Z()
}

// Intersects checks if two AABBs overlap on all three principal axes.
// Boxes that only touch on a face, edge or corner do not intersect.
// It does not tell which axis separated the boxes, nor the penetration depth.
func (a AABB) Intersects(other AABB) bool {
	for i := 0; i < 3; i++ {
		if !overlapAxis(a.Min[i], a.Max[i], other.Min[i], other.Max[i]) {
			return false
		}
	}

	return true
}

// Intersects is the free-function form of AABB.Intersects
func Intersects(a, b AABB) bool {
	return a.Intersects(b)
}

// overlapAxis tests two closed intervals. Coincident intervals always overlap,
// so a point-sized box intersects itself.
func overlapAxis(minA, maxA, minB, maxB float64) bool {
	if minA == minB && maxA == maxB {
		return true
	}

	return !(maxA <= minB) && !(minA >= maxB)
}
