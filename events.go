package aabb3d

import (
	"github.com/akmonengine/aabb3d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
	BOUNDARY_BOUNCE
)

type EventType uint8

func (t EventType) String() string {
	switch t {
	case COLLISION_ENTER:
		return "collision_enter"
	case COLLISION_STAY:
		return "collision_stay"
	case COLLISION_EXIT:
		return "collision_exit"
	case BOUNDARY_BOUNCE:
		return "boundary_bounce"
	default:
		return "unknown"
	}
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// CollisionEnterEvent is sent on the step the latch arms and the moving body's velocity is reflected
type CollisionEnterEvent struct {
	Step     uint64
	BodyA    *actor.RigidBody
	BodyB    *actor.RigidBody
	Axis     Axis
	Velocity mgl64.Vec3 // moving body velocity after reflection
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

// CollisionStayEvent is sent for every step the bodies keep overlapping with the latch armed
type CollisionStayEvent struct {
	Step  uint64
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

// CollisionExitEvent is sent on the first step without overlap after an enter
type CollisionExitEvent struct {
	Step  uint64
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// BoundaryBounceEvent is sent once per axis whose containment check reflected the velocity
type BoundaryBounceEvent struct {
	Step     uint64
	Body     *actor.RigidBody
	Axis     Axis
	Velocity mgl64.Vec3 // body velocity right after this reflection
}

func (e BoundaryBounceEvent) Type() EventType { return BOUNDARY_BOUNCE }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 16),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// emit buffers an event until the end of the step
func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events in emission order and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
