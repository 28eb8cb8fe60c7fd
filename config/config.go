// Package config loads the scene description (window, physics timing, bodies,
// camera and shaders) from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/akmonengine/aabb3d"
	"github.com/akmonengine/aabb3d/view"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid scene")

// Vec3 is a YAML friendly [x, y, z] triple
type Vec3 [3]float64

func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

// Radians reads v as degrees
func (v Vec3) Radians() mgl64.Vec3 {
	return mgl64.Vec3{mgl64.DegToRad(v[0]), mgl64.DegToRad(v[1]), mgl64.DegToRad(v[2])}
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PhysicsSpec struct {
	Step         float64 `yaml:"step"`
	MaxFrameTime float64 `yaml:"max_frame_time"`
}

type BodySpec struct {
	Position        Vec3 `yaml:"position"`
	RotationDegrees Vec3 `yaml:"rotation_degrees"`
	Scale           Vec3 `yaml:"scale"`
	Velocity        Vec3 `yaml:"velocity"`
}

type CameraSpec struct {
	Eye         Vec3    `yaml:"eye"`
	Target      Vec3    `yaml:"target"`
	Up          Vec3    `yaml:"up"`
	FovYDegrees float64 `yaml:"fovy_degrees"`
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
}

// ShaderSpec points at GLSL files read verbatim. Empty paths select the embedded sources.
type ShaderSpec struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// Scene is the whole configuration document
type Scene struct {
	Window                 WindowSpec  `yaml:"window"`
	Physics                PhysicsSpec `yaml:"physics"`
	Bounds                 Vec3        `yaml:"bounds"`
	RotationPerStepDegrees Vec3        `yaml:"rotation_per_step_degrees"`
	CollisionAxis          string      `yaml:"collision_axis"`
	Stationary             BodySpec    `yaml:"stationary"`
	Moving                 BodySpec    `yaml:"moving"`
	Camera                 CameraSpec  `yaml:"camera"`
	Shaders                ShaderSpec  `yaml:"shaders"`
}

// Default returns the stock scene
func Default() Scene {
	settings := aabb3d.DefaultSettings()

	return Scene{
		Window: WindowSpec{
			Width:  800,
			Height: 600,
			Title:  "AABB 3D Collision",
		},
		Physics: PhysicsSpec{
			Step:         aabb3d.DEFAULT_PHYSICS_STEP,
			MaxFrameTime: aabb3d.DEFAULT_MAX_FRAME_TIME,
		},
		Bounds:                 Vec3(settings.Bounds),
		RotationPerStepDegrees: Vec3{1, 1, 0},
		CollisionAxis:          settings.CollisionAxis.String(),
		Stationary: BodySpec{
			Position: Vec3(settings.Stationary.Position),
			Scale:    Vec3(settings.Stationary.Scale),
			Velocity: Vec3(settings.Stationary.Velocity),
		},
		Moving: BodySpec{
			Position: Vec3(settings.Moving.Position),
			Scale:    Vec3(settings.Moving.Scale),
			Velocity: Vec3(settings.Moving.Velocity),
		},
		Camera: CameraSpec{
			Eye:         Vec3{0, 0, 2},
			Target:      Vec3{0, 0, 0},
			Up:          Vec3{0, 1, 0},
			FovYDegrees: 45,
			Near:        0.1,
			Far:         100,
		},
	}
}

// Load reads a scene file. Keys absent from the file keep their Default value.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML scene over Default and validates it
func Parse(data []byte) (Scene, error) {
	scene := Default()
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return Scene{}, fmt.Errorf("config: unmarshal scene: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return Scene{}, err
	}

	return scene, nil
}

// Marshal encodes the scene as YAML
func (s Scene) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("config: marshal scene: %w", err)
	}
	return data, nil
}

// Validate checks the values the simulation and the renderer rely on
func (s Scene) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("config: window %dx%d: %w", s.Window.Width, s.Window.Height, ErrInvalid)
	}
	if s.Physics.Step <= 0 {
		return fmt.Errorf("config: physics step %v must be positive: %w", s.Physics.Step, ErrInvalid)
	}
	if s.Physics.MaxFrameTime < s.Physics.Step {
		return fmt.Errorf("config: max frame time %v is below the physics step %v: %w",
			s.Physics.MaxFrameTime, s.Physics.Step, ErrInvalid)
	}
	for i, b := range s.Bounds {
		if b <= 0 {
			return fmt.Errorf("config: bound %d is %v, must be positive: %w", i, b, ErrInvalid)
		}
	}
	if _, err := aabb3d.ParseAxis(s.CollisionAxis); err != nil {
		return fmt.Errorf("config: collision axis: %w: %w", ErrInvalid, err)
	}
	for name, body := range map[string]BodySpec{"stationary": s.Stationary, "moving": s.Moving} {
		for i, v := range body.Scale {
			if v <= 0 {
				return fmt.Errorf("config: %s scale %d is %v, must be positive: %w", name, i, v, ErrInvalid)
			}
		}
	}
	if s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near {
		return fmt.Errorf("config: camera planes near=%v far=%v: %w", s.Camera.Near, s.Camera.Far, ErrInvalid)
	}
	if s.Camera.FovYDegrees <= 0 || s.Camera.FovYDegrees >= 180 {
		return fmt.Errorf("config: camera fovy %v: %w", s.Camera.FovYDegrees, ErrInvalid)
	}

	return nil
}

// Settings converts the scene to simulation settings. The scene must be valid.
func (s Scene) Settings() aabb3d.Settings {
	axis, _ := aabb3d.ParseAxis(s.CollisionAxis)

	return aabb3d.Settings{
		Stationary:    s.Stationary.settings(),
		Moving:        s.Moving.settings(),
		Bounds:        s.Bounds.Mgl(),
		RotationStep:  s.RotationPerStepDegrees.Radians(),
		CollisionAxis: axis,
	}
}

func (b BodySpec) settings() aabb3d.BodySettings {
	return aabb3d.BodySettings{
		Position: b.Position.Mgl(),
		Rotation: b.RotationDegrees.Radians(),
		Scale:    b.Scale.Mgl(),
		Velocity: b.Velocity.Mgl(),
	}
}

// ViewCamera converts the camera section, taking the aspect ratio from the window
func (s Scene) ViewCamera() view.Camera {
	c := s.Camera

	return view.Camera{
		Eye:    vec32(c.Eye),
		Target: vec32(c.Target),
		Up:     vec32(c.Up),
		FovY:   mgl32.DegToRad(float32(c.FovYDegrees)),
		Aspect: float32(s.Window.Width) / float32(s.Window.Height),
		Near:   float32(c.Near),
		Far:    float32(c.Far),
	}
}

func vec32(v Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
