package imageio

import "errors"

var (
	ErrInvalidDimensions = errors.New("imageio: image width and height must be positive")
	ErrOutOfOrder        = errors.New("imageio: pixel written out of row-major order")
	ErrOutOfBounds       = errors.New("imageio: pixel outside the image")
	ErrIncomplete        = errors.New("imageio: image closed before every pixel was written")
	ErrInvalidThumbnail  = errors.New("imageio: thumbnail width must be positive")
)
