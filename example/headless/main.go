// Headless runs the default scene against a simulated clock and prints the
// collision and boundary events as they happen.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/akmonengine/aabb3d"
	"github.com/akmonengine/aabb3d/actor"
	"github.com/akmonengine/aabb3d/config"
)

// frameClock advances by a fixed frame time on every read
type frameClock struct {
	now       float64
	frameTime float64
}

func (c *frameClock) Now() float64 {
	c.now += c.frameTime
	return c.now
}

func main() {
	configPath := flag.String("config", "", "scene file (YAML); empty uses the built-in scene")
	frames := flag.Int("frames", 600, "number of frames to simulate")
	fps := flag.Float64("fps", 60, "simulated frame rate")
	stays := flag.Bool("stay", false, "also print collision_stay events")
	flag.Parse()

	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %v", *fps)
	}

	scene := config.Default()
	if *configPath != "" {
		var err error
		if scene, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	world := aabb3d.NewWorld(actor.NewCubeMesh(), scene.Settings())
	subscribe(world, *stays)

	clock := &frameClock{frameTime: 1 / *fps}
	scheduler := aabb3d.NewScheduler(scene.Physics.Step, scene.Physics.MaxFrameTime)
	scheduler.Reset(0)

	for i := 0; i < *frames; i++ {
		scheduler.Frame(clock, world)
	}

	moving := world.Moving
	fmt.Printf("%d frames, %d physics steps, %.4fs left in the accumulator\n",
		scheduler.Frames(), scheduler.Steps(), scheduler.Accumulator())
	fmt.Printf("moving body at %v, velocity %v, colliding %v\n",
		moving.Transform.Position, moving.Velocity, world.CollisionActive())
}

func subscribe(world *aabb3d.World, stays bool) {
	world.Events.Subscribe(aabb3d.COLLISION_ENTER, func(event aabb3d.Event) {
		e := event.(aabb3d.CollisionEnterEvent)
		fmt.Printf("step %5d  %-16s axis=%s velocity=%v\n", e.Step, event.Type(), e.Axis, e.Velocity)
	})
	world.Events.Subscribe(aabb3d.COLLISION_EXIT, func(event aabb3d.Event) {
		e := event.(aabb3d.CollisionExitEvent)
		fmt.Printf("step %5d  %-16s\n", e.Step, event.Type())
	})
	world.Events.Subscribe(aabb3d.BOUNDARY_BOUNCE, func(event aabb3d.Event) {
		e := event.(aabb3d.BoundaryBounceEvent)
		fmt.Printf("step %5d  %-16s axis=%s velocity=%v\n", e.Step, event.Type(), e.Axis, e.Velocity)
	})
	if stays {
		world.Events.Subscribe(aabb3d.COLLISION_STAY, func(event aabb3d.Event) {
			e := event.(aabb3d.CollisionStayEvent)
			fmt.Printf("step %5d  %-16s\n", e.Step, event.Type())
		})
	}
}
