package geometry

import "errors"

var (
	ErrInvalidRadius        = errors.New("geometry: sphere radius must be finite and positive")
	ErrInvalidCenter        = errors.New("geometry: sphere center must be finite")
	ErrInvalidMaterial      = errors.New("geometry: shape material was not built by a material constructor")
	ErrDegenerateCamera     = errors.New("geometry: camera basis is degenerate")
	ErrInvalidFieldOfView   = errors.New("geometry: vertical field of view must be in (0, 180) degrees")
	ErrInvalidAspectRatio   = errors.New("geometry: aspect ratio must be finite and positive")
	ErrInvalidAperture      = errors.New("geometry: aperture must be finite and non-negative")
	ErrInvalidFocusDistance = errors.New("geometry: focus distance must be finite and non-negative")
)
