package labyrinth

import (
	"fmt"
	"slices"
)

const (
	minMazeSize = 3
	maxMazeSize = 31
)

// Board owns the grid of maze cards, the leftover card and the shift state.
// It is not safe for concurrent use; the owner serializes access.
type Board struct {
	size                  int
	cardsByID             map[int]*MazeCard
	layout                [][]int // card id by [row][column]
	leftoverID            int
	disabledShiftLocation *Location
	shifting              bool
}

// New builds a board from a snapshot.
func New(s *Snapshot) (*Board, error) {
	b := &Board{}
	if err := b.Update(s); err != nil {
		return nil, err
	}
	return b, nil
}

// Size returns the number of rows (and columns) of the grid.
func (b *Board) Size() int {
	return b.size
}

// IsInside reports whether the location is on the grid.
func (b *Board) IsInside(l Location) bool {
	return IsInside(l, b.size)
}

// MazeCardAt returns the card at the given location.
func (b *Board) MazeCardAt(l Location) (*MazeCard, error) {
	if !b.IsInside(l) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, l)
	}
	return b.cardsByID[b.layout[l.Row][l.Column]], nil
}

// MazeCard returns the card with the given id, on the grid or leftover.
func (b *Board) MazeCard(id int) (*MazeCard, error) {
	card, ok := b.cardsByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMazeCard, id)
	}
	return card, nil
}

// Leftover returns the card currently held off the grid.
func (b *Board) Leftover() *MazeCard {
	return b.cardsByID[b.leftoverID]
}

// LocationOf returns the location of a card. The second return value is false for
// the leftover and for unknown ids.
func (b *Board) LocationOf(cardID int) (Location, bool) {
	for row := range b.layout {
		if col := slices.Index(b.layout[row], cardID); col >= 0 {
			return Loc(row, col), true
		}
	}
	return Location{}, false
}

// PlayerLocation returns the location of the card the player stands on.
func (b *Board) PlayerLocation(playerID int) (Location, error) {
	for row := range b.layout {
		for col, id := range b.layout[row] {
			if b.cardsByID[id].HasPlayer(playerID) {
				return Loc(row, col), nil
			}
		}
	}
	return Location{}, fmt.Errorf("%w: player %d is not on the maze", ErrInconsistentPlayerState, playerID)
}

// DisabledShiftLocation returns the location forbidden for the next shift, if any.
func (b *Board) DisabledShiftLocation() (Location, bool) {
	if b.disabledShiftLocation == nil {
		return Location{}, false
	}
	return *b.disabledShiftLocation, true
}

// IsShiftAllowed reports whether a shift may currently be applied at l.
func (b *Board) IsShiftAllowed(l Location) bool {
	if !IsShiftLocation(l, b.size) {
		return false
	}
	return b.disabledShiftLocation == nil || *b.disabledShiftLocation != l
}

// IsShifting reports whether a shift is in progress, in which case the openings
// on the grid are not reliable.
func (b *Board) IsShifting() bool {
	return b.shifting
}

// SetShifting sets the in-progress shift flag.
func (b *Board) SetShifting(shifting bool) {
	b.shifting = shifting
}

// ApplyShift inserts the leftover at location l with the given rotation, pushing
// the row or column by one. The card pushed out becomes the new leftover and the
// players on it are moved onto the inserted card. Shifting at the disabled
// location fails with ErrInvalidShift.
func (b *Board) ApplyShift(l Location, rotation int) error {
	if !IsShiftLocation(l, b.size) {
		return fmt.Errorf("%w: %s is not shiftable", ErrInvalidShift, l)
	}
	if b.disabledShiftLocation != nil && *b.disabledShiftLocation == l {
		return fmt.Errorf("%w: %s reverts the previous shift", ErrInvalidShift, l)
	}

	inserted := b.Leftover()
	if err := inserted.SetRotation(rotation); err != nil {
		return err
	}

	path, err := ShiftPath(l, b.size)
	if err != nil {
		return err
	}

	last := path[len(path)-1]
	pushedOut := b.cardsByID[b.layout[last.Row][last.Column]]
	for i := len(path) - 1; i > 0; i-- {
		to, from := path[i], path[i-1]
		b.layout[to.Row][to.Column] = b.layout[from.Row][from.Column]
	}
	b.layout[l.Row][l.Column] = inserted.id
	b.leftoverID = pushedOut.id

	for _, playerID := range pushedOut.playerIDs {
		inserted.addPlayer(playerID)
	}
	pushedOut.playerIDs = pushedOut.playerIDs[:0]

	opposite, _ := OppositeLocation(l, b.size)
	b.disabledShiftLocation = &opposite
	return nil
}

// MovePlayer moves a player from one card to another. The player must stand on
// the source card.
func (b *Board) MovePlayer(sourceCardID, targetCardID, playerID int) error {
	source, err := b.MazeCard(sourceCardID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInconsistentPlayerState, err)
	}
	target, err := b.MazeCard(targetCardID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInconsistentPlayerState, err)
	}
	if !source.removePlayer(playerID) {
		return fmt.Errorf("%w: player %d is not on maze card %d", ErrInconsistentPlayerState, playerID, sourceCardID)
	}
	target.addPlayer(playerID)
	return nil
}
