package physics

import "errors"

// Contract violations. The engine panics with these; they are never returned.
var (
	ErrDegenerateSlope  = errors.New("physics: slope width and height must be positive")
	ErrSlopeOrientation = errors.New("physics: body carries more than one slope orientation")
	ErrReentrantMove    = errors.New("physics: body moved from inside its own movement")
	ErrStaticBody       = errors.New("physics: body is neither a collider nor a mobile wall")
	ErrNotSlope         = errors.New("physics: body is not a slope")
)
