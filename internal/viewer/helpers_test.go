package viewer

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeGLTF writes a single-primitive glTF file with positions in an embedded buffer
func writeGLTF(t *testing.T, dir string, positions [][3]float32) string {
	t.Helper()

	buf := make([]byte, 0, len(positions)*12)
	mins := [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	maxs := [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, p := range positions {
		for i, c := range p {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(c))
			if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
				// JSON не допускает NaN, такие значения не попадают в min/max
				continue
			}
			mins[i] = min(mins[i], c)
			maxs[i] = max(maxs[i], c)
		}
	}

	doc := map[string]any{
		"asset":  map[string]any{"version": "2.0"},
		"scene":  0,
		"scenes": []any{map[string]any{"nodes": []int{0}}},
		"nodes":  []any{map[string]any{"mesh": 0}},
		"meshes": []any{map[string]any{
			"name":       "Fixture",
			"primitives": []any{map[string]any{"attributes": map[string]int{"POSITION": 0}, "mode": 0}},
		}},
		"buffers": []any{map[string]any{
			"byteLength": len(buf),
			"uri":        "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf),
		}},
		"bufferViews": []any{map[string]any{"buffer": 0, "byteLength": len(buf)}},
		"accessors": []any{map[string]any{
			"bufferView":    0,
			"componentType": 5126,
			"count":         len(positions),
			"type":          "VEC3",
			"min":           mins,
			"max":           maxs,
		}},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(dir, "fixture.gltf")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func cubePositions(half float32) [][3]float32 {
	return [][3]float32{
		{-half, -half, -half}, {half, -half, -half}, {half, half, -half}, {-half, half, -half},
		{-half, -half, half}, {half, -half, half}, {half, half, half}, {-half, half, half},
	}
}
