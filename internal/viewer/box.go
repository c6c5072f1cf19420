package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// TargetSize is the edge of the cube a model is scaled to fit
	TargetSize = 2.0
	// FallbackScale is used when the bounding box is degenerate
	FallbackScale = 0.5
)

// Box3 is an axis-aligned bounding box
type Box3 struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoundsOf returns the bounding box of points. The box of no points is zero.
func BoundsOf(points []mgl64.Vec3) Box3 {
	if len(points) == 0 {
		return Box3{}
	}

	box := Box3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		for i := range 3 {
			box.Min[i] = math.Min(box.Min[i], p[i])
			box.Max[i] = math.Max(box.Max[i], p[i])
		}
	}
	return box
}

// Size returns the box dimensions
func (b Box3) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the box center
func (b Box3) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Transform places a model in the viewing volume: first Translate, then Scale
type Transform struct {
	Translate mgl64.Vec3
	Scale     float64
}

// Normalize centers the box at the origin and scales its largest side to TargetSize.
// A zero-size, non-finite or otherwise degenerate box gets FallbackScale.
func Normalize(box Box3) Transform {
	size := box.Size()
	maxDim := math.Max(size.X(), math.Max(size.Y(), size.Z()))

	scale := TargetSize / maxDim
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		scale = FallbackScale
	}

	translate := box.Center().Mul(-1)
	for i := range 3 {
		if math.IsNaN(translate[i]) || math.IsInf(translate[i], 0) {
			translate = mgl64.Vec3{}
			break
		}
	}

	return Transform{Translate: translate, Scale: scale}
}

// Matrix returns Scale * Translate
func (t Transform) Matrix() mgl64.Mat4 {
	return mgl64.Scale3D(t.Scale, t.Scale, t.Scale).Mul4(mgl64.Translate3D(t.Translate.X(), t.Translate.Y(), t.Translate.Z()))
}
