package viewer

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// SourceKind tells how a model reference is resolved
type SourceKind int

const (
	// SourceBundled is a model compiled into the binary, e.g. "models/waruga.gltf"
	SourceBundled SourceKind = iota
	// SourceLocal is an explicit file URI or absolute path
	SourceLocal
	// SourceRemote is an http(s) URL, shown by the web viewer
	SourceRemote
)

func (k SourceKind) String() string {
	switch k {
	case SourceBundled:
		return "bundled"
	case SourceLocal:
		return "local"
	case SourceRemote:
		return "remote"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Source is a parsed model reference.
// Ref is the asset path for bundled models, the file path for local ones and the URL for remote ones.
type Source struct {
	Ref  string
	Kind SourceKind
}

// ParseSource classifies a model reference
func ParseSource(ref string) (Source, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Source{}, &ModelResolutionError{Ref: ref, Err: errors.New("empty model reference")}
	}

	if strings.Contains(ref, "://") {
		u, err := url.Parse(ref)
		if err != nil {
			return Source{}, &ModelResolutionError{Ref: ref, Err: err}
		}

		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			if u.Host == "" {
				return Source{}, &ModelResolutionError{Ref: ref, Err: errors.New("remote url has no host")}
			}
			return Source{Kind: SourceRemote, Ref: u.String()}, nil
		case "file":
			if u.Path == "" {
				return Source{}, &ModelResolutionError{Ref: ref, Err: errors.New("file uri has no path")}
			}
			return Source{Kind: SourceLocal, Ref: filepath.FromSlash(u.Path)}, nil
		default:
			return Source{}, &ModelResolutionError{Ref: ref, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
		}
	}

	if filepath.IsAbs(ref) {
		return Source{Kind: SourceLocal, Ref: filepath.Clean(ref)}, nil
	}

	clean := path.Clean(filepath.ToSlash(ref))
	if clean == "." || strings.HasPrefix(clean, "../") || clean == ".." {
		return Source{}, &ModelResolutionError{Ref: ref, Err: errors.New("bundled asset path escapes the asset root")}
	}
	return Source{Kind: SourceBundled, Ref: clean}, nil
}
