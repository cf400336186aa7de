package loop

import "errors"

var (
	// ErrBadTimestep indicates a non-positive cycle period.
	ErrBadTimestep = errors.New("blendlab: cycle period must be positive")

	// ErrBadDuration indicates a non-positive run duration.
	ErrBadDuration = errors.New("blendlab: duration must be positive")
)
