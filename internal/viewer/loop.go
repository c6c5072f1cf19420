package viewer

import (
	"context"
	"time"
)

// DefaultFrameInterval is one frame at 60 Hz
const DefaultFrameInterval = time.Second / 60

// Renderer draws frames
type Renderer interface {
	Render(ctx context.Context, frame Frame) error
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(ctx context.Context, frame Frame) error

// Render calls f(ctx, frame)
func (f RendererFunc) Render(ctx context.Context, frame Frame) error {
	return f(ctx, frame)
}

// Loop renders the scene once per tick
type Loop struct {
	Scene    *Scene
	Renderer Renderer
	// Interval between frames, DefaultFrameInterval when zero
	Interval time.Duration
	// MaxFrames stops the loop after that many frames, zero means until ctx is done
	MaxFrames uint64
}

// Run renders frames until ctx is done or MaxFrames is reached.
// A renderer failure stops the loop with *RenderError. Cancellation is not an error.
// Returns the number of frames rendered.
func (l *Loop) Run(ctx context.Context) (uint64, error) {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var rendered uint64
	for {
		if ctx.Err() != nil {
			return rendered, nil
		}

		frame := l.Scene.Frame(rendered)
		if err := l.Renderer.Render(ctx, frame); err != nil {
			return rendered, &RenderError{Frame: frame.Index, Err: err}
		}
		rendered++

		if l.MaxFrames > 0 && rendered >= l.MaxFrames {
			return rendered, nil
		}

		select {
		case <-ctx.Done():
			return rendered, nil
		case <-ticker.C:
		}
	}
}
