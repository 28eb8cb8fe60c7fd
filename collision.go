package aabb3d

import (
	"fmt"
	"strings"

	"github.com/akmonengine/aabb3d/actor"
)

// Axis identifies one of the three principal axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// AssumeCollisionAxis is the axis reflected on a collision. The intersection test
// only answers yes or no, and the moving body only travels along X in this scene.
const AssumeCollisionAxis = AxisX

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis reads "x", "y" or "z" (case insensitive)
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return AxisX, fmt.Errorf("aabb3d: unknown axis %q", s)
	}
}

// AxisPolicy picks the velocity component of the moving body to reflect when the
// two boxes start intersecting.
type AxisPolicy func(moving, other actor.AABB) Axis

// FixedAxis always answers axis, whatever the boxes look like
func FixedAxis(axis Axis) AxisPolicy {
	return func(moving, other actor.AABB) Axis {
		return axis
	}
}
