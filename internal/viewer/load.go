package viewer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Model is the geometry of a loaded asset in model space
type Model struct {
	Name     string
	Vertices []mgl64.Vec3
	Bounds   Box3
}

// Load parses a glTF or GLB file and collects the POSITION data of every mesh primitive.
// Node transforms are not applied.
func Load(ctx context.Context, path string) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}

	model := &Model{Name: documentName(doc)}
	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			idx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			if int(idx) >= len(doc.Accessors) {
				return nil, &ModelLoadError{Path: path, Err: fmt.Errorf("mesh %d primitive %d: accessor %d out of range", mi, pi, idx)}
			}

			positions, err := modeler.ReadPosition(doc, doc.Accessors[idx], nil)
			if err != nil {
				return nil, &ModelLoadError{Path: path, Err: fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)}
			}
			for vi, p := range positions {
				v := mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
				if !finite(v) {
					return nil, &ModelLoadError{Path: path, Err: fmt.Errorf("mesh %d primitive %d: vertex %d is not finite", mi, pi, vi)}
				}
				model.Vertices = append(model.Vertices, v)
			}
		}
	}

	if len(model.Vertices) == 0 {
		return nil, &ModelLoadError{Path: path, Err: errors.New("model has no vertices")}
	}

	model.Bounds = BoundsOf(model.Vertices)
	return model, nil
}

func documentName(doc *gltf.Document) string {
	for _, mesh := range doc.Meshes {
		if mesh.Name != "" {
			return mesh.Name
		}
	}
	for _, node := range doc.Nodes {
		if node.Name != "" {
			return node.Name
		}
	}
	return ""
}

func finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
