package window

import "errors"

var (
	// ErrInvalidLength indicates a non-positive window length or grid size.
	ErrInvalidLength = errors.New("window: invalid length")
	// ErrUnknownType indicates a window name or value that is not supported.
	ErrUnknownType = errors.New("window: unknown type")
	// ErrInvalidAlpha indicates a parameter outside the window's domain.
	ErrInvalidAlpha = errors.New("window: invalid alpha")
	// ErrBufferSize indicates a buffer too short for the grid it describes.
	ErrBufferSize = errors.New("window: buffer too short")
)
