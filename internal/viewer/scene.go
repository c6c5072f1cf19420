package viewer

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a fixed perspective camera
type Camera struct {
	Eye    mgl64.Vec3
	Center mgl64.Vec3
	Up     mgl64.Vec3
	FovY   float64 // degrees
	Near   float64
	Far    float64
}

// DefaultCamera looks at the origin from (0, 0, 5)
func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl64.Vec3{0, 0, 5},
		Center: mgl64.Vec3{0, 0, 0},
		Up:     mgl64.Vec3{0, 1, 0},
		FovY:   45,
		Near:   0.1,
		Far:    100,
	}
}

// LightKind is the type of a light
type LightKind int

const (
	LightAmbient LightKind = iota
	LightDirectional
)

// Light is a scene light. Direction is used by directional lights only.
type Light struct {
	Color     mgl64.Vec3
	Direction mgl64.Vec3
	Intensity float64
	Kind      LightKind
}

// DefaultLights returns a soft ambient light and a white directional light from the upper right
func DefaultLights() []Light {
	return []Light{
		{Kind: LightAmbient, Color: mgl64.Vec3{1, 1, 1}, Intensity: 0.5},
		{Kind: LightDirectional, Color: mgl64.Vec3{1, 1, 1}, Intensity: 1, Direction: mgl64.Vec3{-1, -1, -1}.Normalize()},
	}
}

// Scene is a normalized model in front of a fixed camera and two lights
type Scene struct {
	Model     *Model
	Rotation  *Rotation
	Lights    []Light
	Camera    Camera
	Transform Transform
	Aspect    float64
}

// NewScene normalizes model and sets up the default camera and lights
func NewScene(model *Model, aspect float64) *Scene {
	if aspect <= 0 {
		aspect = 1
	}
	return &Scene{
		Model:     model,
		Rotation:  &Rotation{},
		Lights:    DefaultLights(),
		Camera:    DefaultCamera(),
		Transform: Normalize(model.Bounds),
		Aspect:    aspect,
	}
}

// Frame is everything a renderer needs to draw one picture
type Frame struct {
	Model      *Model
	Lights     []Light
	World      mgl64.Mat4
	View       mgl64.Mat4
	Projection mgl64.Mat4
	Index      uint64
}

// MVP returns Projection * View * World
func (f Frame) MVP() mgl64.Mat4 {
	return f.Projection.Mul4(f.View).Mul4(f.World)
}

// Frame builds frame index from the current rotation
func (s *Scene) Frame(index uint64) Frame {
	c := s.Camera
	return Frame{
		Index:      index,
		Model:      s.Model,
		Lights:     s.Lights,
		World:      s.Rotation.Matrix().Mul4(s.Transform.Matrix()),
		View:       mgl64.LookAtV(c.Eye, c.Center, c.Up),
		Projection: mgl64.Perspective(mgl64.DegToRad(c.FovY), s.Aspect, c.Near, c.Far),
	}
}
