package viewer

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// DragSensitivity is the rotation in radians per pixel of drag
const DragSensitivity = 0.01

// Rotation holds the model orientation driven by drag gestures.
// Horizontal drag changes yaw, vertical drag changes pitch, pitch stays within ±π/2.
// There is no inertia: the angles only change in Drag.
// Safe for concurrent use by the gesture source and the render loop.
type Rotation struct {
	mu    sync.RWMutex
	yaw   float64
	pitch float64
}

// Drag applies a drag delta in pixels. Non-finite deltas are ignored.
func (r *Rotation) Drag(dx, dy float64) {
	if !finite(mgl64.Vec3{dx, dy, 0}) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.yaw += dx * DragSensitivity
	r.pitch = mgl64.Clamp(r.pitch+dy*DragSensitivity, -math.Pi/2, math.Pi/2)
}

// Angles returns yaw and pitch in radians
func (r *Rotation) Angles() (yaw, pitch float64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.yaw, r.pitch
}

// Reset returns to the initial orientation
func (r *Rotation) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.yaw, r.pitch = 0, 0
}

// Matrix returns the rotation matrix: pitch around X applied after yaw around Y
func (r *Rotation) Matrix() mgl64.Mat4 {
	yaw, pitch := r.Angles()
	return mgl64.HomogRotate3DX(pitch).Mul4(mgl64.HomogRotate3DY(yaw))
}
