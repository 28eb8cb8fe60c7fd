package main

import (
	"flag"
	"log"
	"os"

	"github.com/akmonengine/aabb3d"
	"github.com/akmonengine/aabb3d/actor"
	"github.com/akmonengine/aabb3d/assets"
	"github.com/akmonengine/aabb3d/config"
	"github.com/akmonengine/aabb3d/render"
	"github.com/akmonengine/aabb3d/view"
)

func main() {
	configPath := flag.String("config", "", "scene file (YAML); empty uses the built-in scene")
	watch := flag.Bool("watch", false, "reload the scene file when it changes")
	verbose := flag.Bool("v", false, "log collision and boundary events")
	dump := flag.Bool("dump", false, "print the effective scene as YAML and exit")
	flag.Parse()

	scene := config.Default()
	if *configPath != "" {
		var err error
		if scene, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	if *dump {
		data, err := scene.Marshal()
		if err != nil {
			log.Fatal(err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatal(err)
		}
		return
	}

	vertexSource, err := assets.ShaderSource(assets.VertexShader, scene.Shaders.Vertex)
	if err != nil {
		log.Fatal(err)
	}
	fragmentSource, err := assets.ShaderSource(assets.FragmentShader, scene.Shaders.Fragment)
	if err != nil {
		log.Fatal(err)
	}

	mesh := actor.NewCubeMesh()
	world := aabb3d.NewWorld(mesh, scene.Settings())
	if *verbose {
		logEvents(world)
	}

	window := render.CreateWindow(scene.Window.Width, scene.Window.Height, scene.Window.Title)
	defer window.Close()

	ctx, err := render.NewContext(vertexSource, fragmentSource, mesh, camera(scene, window))
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.Close()

	var watcher *config.Watcher
	if *watch && *configPath != "" {
		if watcher, err = config.NewWatcher(*configPath); err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	scheduler := aabb3d.NewScheduler(scene.Physics.Step, scene.Physics.MaxFrameTime)
	scheduler.Reset(window.Now())

	for !window.ShouldClose() {
		if watcher != nil {
			reload(watcher, window, world, scheduler, ctx)
		}

		scheduler.Frame(window, world)
		ctx.Draw(world)
	}

	log.Printf("%d frames, %d physics steps", scheduler.Frames(), scheduler.Steps())
}

// reload drains pending watcher notifications without blocking the frame.
// An invalid file is logged and the running scene is kept.
func reload(watcher *config.Watcher, window *render.Window, world *aabb3d.World, scheduler *aabb3d.Scheduler, ctx *render.Context) {
	for {
		select {
		case path, ok := <-watcher.Events:
			if !ok {
				return
			}
			scene, err := config.Load(path)
			if err != nil {
				log.Printf("reload %s: %v", path, err)
				continue
			}
			world.Reset(scene.Settings())
			scheduler.PhysicsStep = scene.Physics.Step
			scheduler.MaxFrameTime = scene.Physics.MaxFrameTime
			ctx.SetCamera(camera(scene, window))
			log.Printf("reloaded %s", path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

// camera uses the aspect of the open window; the window is not resized on reload
func camera(scene config.Scene, window *render.Window) view.Camera {
	c := scene.ViewCamera()
	c.Aspect = window.Aspect()
	return c
}

func logEvents(world *aabb3d.World) {
	world.Events.Subscribe(aabb3d.COLLISION_ENTER, func(event aabb3d.Event) {
		e := event.(aabb3d.CollisionEnterEvent)
		log.Printf("step %d: %s on %s, velocity %v", e.Step, event.Type(), e.Axis, e.Velocity)
	})
	world.Events.Subscribe(aabb3d.COLLISION_EXIT, func(event aabb3d.Event) {
		e := event.(aabb3d.CollisionExitEvent)
		log.Printf("step %d: %s", e.Step, event.Type())
	})
	world.Events.Subscribe(aabb3d.BOUNDARY_BOUNCE, func(event aabb3d.Event) {
		e := event.(aabb3d.BoundaryBounceEvent)
		log.Printf("step %d: %s on %s, velocity %v", e.Step, event.Type(), e.Axis, e.Velocity)
	})
}
