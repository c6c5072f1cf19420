package viewer

import (
	"errors"
	"fmt"
)

// ErrRemoteSource is returned when a remote model is asked for a local path.
// Remote models are shown by the web viewer instead.
var ErrRemoteSource = errors.New("remote model source has no local path")

// ModelResolutionError means no local file could be produced for the model reference
type ModelResolutionError struct {
	Err error
	Ref string
}

func (e *ModelResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve model %q: %v", e.Ref, e.Err)
}

func (e *ModelResolutionError) Unwrap() error {
	return e.Err
}

// ModelLoadError means the model file could not be parsed
type ModelLoadError struct {
	Err  error
	Path string
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("failed to load model %s: %v", e.Path, e.Err)
}

func (e *ModelLoadError) Unwrap() error {
	return e.Err
}

// RenderError means the renderer failed on a frame. The loop stops and is not retried.
type RenderError struct {
	Err   error
	Frame uint64
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed at frame %d: %v", e.Frame, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
