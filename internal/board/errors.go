package board

import "fmt"

// Build error codes. Build failures are fatal and non-recoverable.
const (
	ErrCodeUnknownModule  = "UNKNOWN_MODULE"
	ErrCodeUnknownFace    = "UNKNOWN_FACE"
	ErrCodeDuplicateColor = "DUPLICATE_COLOR"
)

// BuildError reports a fatal board construction failure.
type BuildError struct {
	Code    string
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Placement error codes. Placement failures are recoverable by the caller.
const (
	ErrCodeOutOfBounds  = "OUT_OF_BOUNDS"
	ErrCodeInDeadZone   = "IN_DEAD_ZONE"
	ErrCodeOnRefractor  = "ON_REFRACTOR"
	ErrCodeOverlap      = "OVERLAP"
	ErrCodeBadColor     = "BAD_COLOR"
	ErrCodeRepeatColor  = "REPEAT_COLOR"
)

// PlacementError reports an invalid token starting position.
type PlacementError struct {
	Code    string
	Message string
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
