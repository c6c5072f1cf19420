package viewer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Resolver turns a model Source into a local file path.
// Bundled assets are copied from the asset FS into the cache dir on first use.
type Resolver struct {
	assets   fs.FS
	logger   *slog.Logger
	cacheDir string
}

// NewResolver creates a resolver. assets may be nil when there are no bundled models.
func NewResolver(assets fs.FS, cacheDir string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		assets:   assets,
		cacheDir: cacheDir,
		logger:   logger,
	}
}

// Resolve returns a local path for src.
// Remote sources return ErrRemoteSource; every other failure is a *ModelResolutionError.
func (r *Resolver) Resolve(ctx context.Context, src Source) (string, error) {
	switch src.Kind {
	case SourceRemote:
		return "", ErrRemoteSource
	case SourceLocal:
		return r.resolveLocal(src)
	case SourceBundled:
		return r.resolveBundled(ctx, src)
	default:
		return "", &ModelResolutionError{Ref: src.Ref, Err: fmt.Errorf("unknown source kind %s", src.Kind)}
	}
}

func (r *Resolver) resolveLocal(src Source) (string, error) {
	info, err := os.Stat(src.Ref)
	if err != nil {
		return "", &ModelResolutionError{Ref: src.Ref, Err: err}
	}
	if info.IsDir() {
		return "", &ModelResolutionError{Ref: src.Ref, Err: errors.New("is a directory")}
	}
	return src.Ref, nil
}

func (r *Resolver) resolveBundled(ctx context.Context, src Source) (string, error) {
	if r.assets == nil {
		return "", &ModelResolutionError{Ref: src.Ref, Err: errors.New("no bundled assets")}
	}

	data, err := fs.ReadFile(r.assets, src.Ref)
	if err != nil {
		return "", &ModelResolutionError{Ref: src.Ref, Err: err}
	}

	target := filepath.Join(r.cacheDir, filepath.FromSlash(src.Ref))

	// Файл в кэше уже актуален
	if cached, err := os.ReadFile(target); err == nil && bytes.Equal(cached, data) {
		return target, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
		return "", &ModelResolutionError{Ref: src.Ref, Err: fmt.Errorf("failed to create cache dir: %w", err)}
	}

	// Пишем во временный файл и переименовываем, чтобы не оставить обрезанный файл
	tmp, err := os.CreateTemp(filepath.Dir(target), ".model-*")
	if err != nil {
		return "", &ModelResolutionError{Ref: src.Ref, Err: err}
	}
	tmpName := tmp.Name()
	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return "", &ModelResolutionError{Ref: src.Ref, Err: fmt.Errorf("failed to write cache file: %w", err)}
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return "", &ModelResolutionError{Ref: src.Ref, Err: fmt.Errorf("failed to move cache file: %w", err)}
	}

	r.logger.DebugContext(ctx, "model cached", "ref", src.Ref, "path", target, "bytes", len(data))
	return target, nil
}
