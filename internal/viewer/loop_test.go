package viewer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_MaxFrames(t *testing.T) {
	var indexes []uint64
	loop := &Loop{
		Scene: NewScene(testModel(), 1),
		Renderer: RendererFunc(func(ctx context.Context, frame Frame) error {
			indexes = append(indexes, frame.Index)
			return nil
		}),
		Interval:  time.Millisecond,
		MaxFrames: 5,
	}

	n, err := loop.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(5), n)
	assert.Equal(t, []uint64{0, 1, 2, 3, 4}, indexes)
}

func TestLoop_RenderErrorStops(t *testing.T) {
	boom := errors.New("context lost")
	calls := 0
	loop := &Loop{
		Scene: NewScene(testModel(), 1),
		Renderer: RendererFunc(func(ctx context.Context, frame Frame) error {
			calls++
			if frame.Index == 2 {
				return boom
			}
			return nil
		}),
		Interval: time.Millisecond,
	}

	n, err := loop.Run(context.Background())
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, uint64(2), renderErr.Frame)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, uint64(2), n)
	assert.Equal(t, 3, calls)
}

func TestLoop_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := &Loop{
		Scene: NewScene(testModel(), 1),
		Renderer: RendererFunc(func(ctx context.Context, frame Frame) error {
			if frame.Index == 3 {
				cancel()
			}
			return nil
		}),
		Interval: time.Millisecond,
	}

	n, err := loop.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), n)
}
