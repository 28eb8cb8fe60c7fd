package aabb3d

const (
	DEFAULT_PHYSICS_STEP   = 0.012
	DEFAULT_MAX_FRAME_TIME = 0.25
)

// Stepper advances a simulation by one fixed step of duration h
type Stepper interface {
	Step(h float64)
}

// Clock is a monotonic time source, in seconds
type Clock interface {
	Now() float64
}

// Scheduler decouples the variable frame time from the fixed physics step with
// an accumulator. Leftover time is carried to the next frame; no interpolation
// is done between steps.
type Scheduler struct {
	PhysicsStep  float64
	MaxFrameTime float64

	accumulator float64
	lastTime    float64

	frames uint64
	steps  uint64
}

// NewScheduler returns a scheduler with the given step and frame time clamp.
// It panics if physicsStep is not positive or if maxFrameTime is below one step,
// since the clamp could then never let a step run.
func NewScheduler(physicsStep, maxFrameTime float64) *Scheduler {
	if physicsStep <= 0 {
		panic("aabb3d: non-positive physics step")
	}
	if maxFrameTime < physicsStep {
		panic("aabb3d: max frame time below the physics step")
	}

	return &Scheduler{
		PhysicsStep:  physicsStep,
		MaxFrameTime: maxFrameTime,
	}
}

// Reset sets the reference time and empties the accumulator
func (s *Scheduler) Reset(now float64) {
	s.lastTime = now
	s.accumulator = 0
}

// Tick measures the time elapsed since the previous Tick (or Reset) and runs the
// due steps. It returns the number of steps run.
func (s *Scheduler) Tick(now float64, stepper Stepper) int {
	dt := now - s.lastTime
	s.lastTime = now

	return s.Advance(dt, stepper)
}

// Frame samples clock and ticks once
func (s *Scheduler) Frame(clock Clock, stepper Stepper) int {
	return s.Tick(clock.Now(), stepper)
}

// Advance accumulates dt, clamped to MaxFrameTime, and drains the accumulator in
// PhysicsStep increments. It returns the number of steps run.
func (s *Scheduler) Advance(dt float64, stepper Stepper) int {
	s.frames++

	if dt < 0 {
		dt = 0
	}
	if dt > s.MaxFrameTime {
		dt = s.MaxFrameTime
	}
	s.accumulator += dt

	n := 0
	for s.accumulator >= s.PhysicsStep {
		stepper.Step(s.PhysicsStep)
		s.accumulator -= s.PhysicsStep
		n++
	}
	s.steps += uint64(n)

	return n
}

// Accumulator returns the time not yet consumed by a step
func (s *Scheduler) Accumulator() float64 {
	return s.accumulator
}

// Frames returns the number of Advance calls
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Steps returns the total number of steps run
func (s *Scheduler) Steps() uint64 {
	return s.steps
}

// StepperFunc adapts a function to the Stepper interface
type StepperFunc func(h float64)

func (f StepperFunc) Step(h float64) {
	f(h)
}
