package reader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/achilleasa/spheretrace/asset"
	"github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/scene/builtin"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(res *asset.Resource, aspect float32) (*scene.Scene, error)
}

// The scene name that reads a JSON scene from standard input.
const Stdin = "-"

var stdin io.Reader = os.Stdin

// Load a scene by name. Built-in scene names take precedence and "-" reads a
// JSON scene from stdin; anything else is treated as a path or http(s) URL
// to a scene file. The camera of the returned scene is set up for the given
// frame aspect ratio. The seed is only used by procedural built-in scenes.
func ReadScene(name string, aspect float32, seed int64) (*scene.Scene, error) {
	if aspect <= 0 {
		return nil, fmt.Errorf("reader: invalid aspect ratio %f", aspect)
	}

	if builder, ok := builtin.Lookup(name); ok {
		return builder(aspect, seed), nil
	}

	if name == Stdin {
		res := asset.NewResourceFromStream("stdin", stdin)
		defer res.Close()
		return newJSONReader().Read(res, aspect)
	}

	// Select reader based on file extension
	var reader Reader
	switch {
	case strings.HasSuffix(name, ".json"):
		reader = newJSONReader()
	default:
		return nil, fmt.Errorf("reader: unsupported scene %q; use a built-in scene (%s), a .json file or - for stdin", name, strings.Join(builtin.Names(), ", "))
	}

	res, err := asset.NewResource(name, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return reader.Read(res, aspect)
}
