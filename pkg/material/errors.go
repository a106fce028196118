package material

import "errors"

var (
	ErrInvalidAlbedo          = errors.New("material: albedo components must be finite and within [0, 1]")
	ErrInvalidFuzz            = errors.New("material: fuzz must be finite")
	ErrInvalidRefractiveIndex = errors.New("material: refractive index must be finite and positive")
	ErrUnknownKind            = errors.New("material: unknown material kind")
)
