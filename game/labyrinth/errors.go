package labyrinth

import "errors"

// Board-related errors.
var (
	ErrOutOfBounds             = errors.New("location is outside of the maze")
	ErrInvalidShift            = errors.New("invalid shift location")
	ErrInconsistentPlayerState = errors.New("inconsistent player state")
	ErrInvalidRotation         = errors.New("rotation is not a multiple of 90 degrees")
	ErrInvalidOutPaths         = errors.New("invalid out paths")
	ErrInvalidMazeSize         = errors.New("maze size must be an odd number between 3 and 31")
	ErrInvalidSnapshot         = errors.New("invalid board snapshot")
	ErrUnknownMazeCard         = errors.New("unknown maze card")
)
