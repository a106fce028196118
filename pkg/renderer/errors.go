package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: image width and height must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDepth      = errors.New("renderer: max depth must not be negative")
	ErrNilScene          = errors.New("renderer: nil scene")
	ErrNilCamera         = errors.New("renderer: nil camera")
	ErrNilWriter         = errors.New("renderer: nil pixel writer")
)
