package i

import (
	"github.com/beka-birhanu/vinom-labyrinth/game/labyrinth"
	"github.com/google/uuid"
)

// BoardSessionManager owns the labyrinth boards of running games and answers
// queries against them.
type BoardSessionManager interface {
	// NewSession generates a random board of the given size (0 selects the default)
	// with the players on their start corners.
	NewSession(size int, playerIDs []int) (uuid.UUID, *labyrinth.Snapshot, error)

	// LoadSession creates a session from a server snapshot.
	LoadSession(s *labyrinth.Snapshot) (uuid.UUID, error)

	// Update replaces the board of a session with a newer snapshot.
	Update(id uuid.UUID, s *labyrinth.Snapshot) error

	// Snapshot exports the current board of a session.
	Snapshot(id uuid.UUID) (*labyrinth.Snapshot, error)

	// MazeCard returns the card at a location with the players on it.
	MazeCard(id uuid.UUID, l labyrinth.Location) (*labyrinth.CardView, error)

	// Reachable returns the locations connected to the source.
	Reachable(id uuid.UUID, source labyrinth.Location) ([]labyrinth.Location, error)

	// Path returns the shortest path between two locations, empty if unreachable.
	Path(id uuid.UUID, source, target labyrinth.Location) ([]labyrinth.Location, error)

	// Shift inserts the leftover at a border location and returns the new board.
	Shift(id uuid.UUID, l labyrinth.Location, rotation int) (*labyrinth.Snapshot, error)

	// Move moves a player to a reachable location and returns the path taken.
	Move(id uuid.UUID, playerID int, target labyrinth.Location) ([]labyrinth.Location, error)

	// SetShifting marks a shift animation as running or finished.
	SetShifting(id uuid.UUID, shifting bool) error

	// Close drops a session.
	Close(id uuid.UUID) error
}
