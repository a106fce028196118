package scene

import "errors"

var (
	ErrUnknownScene      = errors.New("scene: unknown scene")
	ErrEmptyScene        = errors.New("scene: scene has no spheres")
	ErrSceneFrozen       = errors.New("scene: scene is frozen")
	ErrNilShape          = errors.New("scene: nil shape")
	ErrInvalidDescriptor = errors.New("scene: invalid scene descriptor")
)
