package viewer

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// depthRamp goes from near to far
const depthRamp = "@%#*+=-:."

// TextRenderer projects model vertices onto a character grid.
// It keeps the last frame; Last returns it as text.
type TextRenderer struct {
	last   string
	mu     sync.Mutex
	Width  int
	Height int
}

// NewTextRenderer creates a renderer with a width x height grid
func NewTextRenderer(width, height int) *TextRenderer {
	return &TextRenderer{Width: width, Height: height}
}

// Render draws frame into the grid
func (r *TextRenderer) Render(ctx context.Context, frame Frame) error {
	if r.Width <= 0 || r.Height <= 0 {
		return errors.New("render target has no size")
	}
	if frame.Model == nil {
		return errors.New("frame has no model")
	}

	grid := make([][]byte, r.Height)
	depth := make([][]float64, r.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", r.Width))
		depth[y] = make([]float64, r.Width)
		for x := range depth[y] {
			depth[y][x] = math.Inf(1)
		}
	}

	mvp := frame.MVP()
	for _, v := range frame.Model.Vertices {
		clip := mvp.Mul4x1(v.Vec4(1))
		if clip.W() <= 0 {
			continue
		}
		ndc := clip.Vec3().Mul(1 / clip.W())
		if !inClipVolume(ndc) {
			continue
		}

		col := int(math.Round((ndc.X() + 1) / 2 * float64(r.Width-1)))
		row := int(math.Round((1 - ndc.Y()) / 2 * float64(r.Height-1)))
		if ndc.Z() >= depth[row][col] {
			continue
		}
		depth[row][col] = ndc.Z()
		grid[row][col] = shade(ndc.Z())
	}

	lines := make([]string, len(grid))
	for i, line := range grid {
		lines[i] = strings.TrimRight(string(line), " ")
	}

	r.mu.Lock()
	r.last = strings.Join(lines, "\n")
	r.mu.Unlock()
	return nil
}

// inClipVolume reports whether p is finite and inside [-1, 1] on every axis
func inClipVolume(p mgl64.Vec3) bool {
	for _, c := range p {
		if math.IsNaN(c) || math.Abs(c) > 1 {
			return false
		}
	}
	return true
}

// Last returns the most recent frame
func (r *TextRenderer) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// shade maps NDC depth to a character. Depth of a model near the origin
// is packed close to 1, so the ramp is spread over the upper part of the range.
func shade(z float64) byte {
	t := (z - 0.9) / 0.1
	t = math.Max(0, math.Min(1, t))
	return depthRamp[int(math.Round(t*float64(len(depthRamp)-1)))]
}
