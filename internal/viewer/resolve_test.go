package viewer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Bundled(t *testing.T) {
	assets := fstest.MapFS{
		"models/box.gltf": &fstest.MapFile{Data: []byte(`{"asset":{"version":"2.0"}}`)},
	}
	cacheDir := t.TempDir()
	r := NewResolver(assets, cacheDir, nil)
	ctx := context.Background()

	path, err := r.Resolve(ctx, Source{Kind: SourceBundled, Ref: "models/box.gltf"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cacheDir, "models", "box.gltf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"asset":{"version":"2.0"}}`, string(data))

	// Устаревший файл в кэше перезаписывается
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))
	path, err = r.Resolve(ctx, Source{Kind: SourceBundled, Ref: "models/box.gltf"})
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"asset":{"version":"2.0"}}`, string(data))
}

func TestResolver_Errors(t *testing.T) {
	dir := t.TempDir()
	r := NewResolver(fstest.MapFS{}, t.TempDir(), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		src  Source
	}{
		{name: "missing bundled", src: Source{Kind: SourceBundled, Ref: "models/none.gltf"}},
		{name: "missing local", src: Source{Kind: SourceLocal, Ref: filepath.Join(dir, "none.glb")}},
		{name: "local directory", src: Source{Kind: SourceLocal, Ref: dir}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(ctx, tt.src)
			var resErr *ModelResolutionError
			require.ErrorAs(t, err, &resErr)
			assert.Equal(t, tt.src.Ref, resErr.Ref)
		})
	}

	_, err := r.Resolve(ctx, Source{Kind: SourceRemote, Ref: "https://example.com/m.glb"})
	assert.ErrorIs(t, err, ErrRemoteSource)

	_, err = NewResolver(nil, dir, nil).Resolve(ctx, Source{Kind: SourceBundled, Ref: "models/box.gltf"})
	var resErr *ModelResolutionError
	assert.ErrorAs(t, err, &resErr)
}

func TestResolver_Local(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.gltf")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	got, err := NewResolver(nil, t.TempDir(), nil).Resolve(context.Background(), Source{Kind: SourceLocal, Ref: path})
	require.NoError(t, err)
	assert.Equal(t, path, got)
}
