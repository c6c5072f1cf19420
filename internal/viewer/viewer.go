package viewer

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
)

// ModelViewRequest is what a detail screen passes to the viewer
type ModelViewRequest struct {
	Name        string
	ModelURL    string
	Description string
}

// ViewState is the outcome of opening a model
type ViewState int

const (
	// ViewNative means the model was loaded and the scene is ready to render
	ViewNative ViewState = iota
	// ViewWeb means the model is remote and is shown by the web viewer
	ViewWeb
	// ViewFailed means the error panel replaces the 3D canvas
	ViewFailed
)

func (s ViewState) String() string {
	switch s {
	case ViewNative:
		return "native"
	case ViewWeb:
		return "web"
	case ViewFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// View is an opened model. Exactly one of Scene, RemoteURL, Err is set, depending on State.
type View struct {
	Err       error
	Scene     *Scene
	Request   ModelViewRequest
	RemoteURL string
	State     ViewState
}

// Viewer opens models for display
type Viewer struct {
	resolver *Resolver
	logger   *slog.Logger
	aspect   float64
}

// New creates a viewer. Bundled models are read from assets and cached in cacheDir.
func New(assets fs.FS, cacheDir string, aspect float64, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Viewer{
		resolver: NewResolver(assets, cacheDir, logger),
		logger:   logger,
		aspect:   aspect,
	}
}

// Open resolves, loads and normalizes the requested model.
// Failures are not retried; they are returned as a View in state ViewFailed.
func (v *Viewer) Open(ctx context.Context, req ModelViewRequest) *View {
	view := &View{Request: req}

	src, err := ParseSource(req.ModelURL)
	if err != nil {
		return v.fail(ctx, view, err)
	}

	if src.Kind == SourceRemote {
		view.State = ViewWeb
		view.RemoteURL = src.Ref
		return view
	}

	path, err := v.resolver.Resolve(ctx, src)
	if err != nil {
		return v.fail(ctx, view, err)
	}

	model, err := Load(ctx, path)
	if err != nil {
		return v.fail(ctx, view, err)
	}
	if model.Name == "" {
		model.Name = req.Name
	}

	view.State = ViewNative
	view.Scene = NewScene(model, v.aspect)

	v.logger.DebugContext(ctx, "model opened",
		"name", req.Name,
		"source", src.Kind.String(),
		"vertices", len(model.Vertices),
		"scale", view.Scene.Transform.Scale,
	)
	return view
}

func (v *Viewer) fail(ctx context.Context, view *View, err error) *View {
	view.State = ViewFailed
	view.Err = err

	kind := "load"
	var resErr *ModelResolutionError
	if errors.As(err, &resErr) {
		kind = "resolution"
	}
	v.logger.WarnContext(ctx, "failed to open model", "name", view.Request.Name, "kind", kind, "error", err)
	return view
}
