package renderer

import "errors"

var (
	ErrNoTracers        = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrInvalidFrameDims = errors.New("renderer: frame width and height must be at least 2")
	ErrNoSamples        = errors.New("renderer: samples per pixel must be at least 1")
	ErrRendererClosed   = errors.New("renderer: renderer has been closed")
)
