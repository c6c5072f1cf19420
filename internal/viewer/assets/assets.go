// Package assets holds the 3D models shipped inside the binary.
// Catalog items reference them by path, e.g. "models/waruga.gltf".
package assets

import "embed"

//go:embed models
var FS embed.FS
