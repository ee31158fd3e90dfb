package labyrinth

import (
	"fmt"
	"slices"
)

// Out path layouts of the card types used by the game.
const (
	Straight   = "NS"
	Corner     = "NE"
	TJunction  = "NES"
	Cross      = "NESW"
	NoOutPaths = ""
)

// MazeCard is a single tile of the maze. Its identity is stable for the lifetime
// of a game; a shift moves a card, it never copies it.
type MazeCard struct {
	id        int
	openings  Openings // before rotation
	rotation  int      // clockwise degrees
	playerIDs []int
}

// NewMazeCard creates a maze card from its out path letters and rotation.
func NewMazeCard(id int, outPaths string, rotation int) (*MazeCard, error) {
	if id < 0 {
		return nil, fmt.Errorf("%w: negative id %d", ErrInvalidSnapshot, id)
	}
	openings, err := ParseOpenings(outPaths)
	if err != nil {
		return nil, err
	}
	if err := validateRotation(rotation); err != nil {
		return nil, err
	}
	return &MazeCard{
		id:        id,
		openings:  openings,
		rotation:  rotation,
		playerIDs: make([]int, 0),
	}, nil
}

// ID returns the card identifier.
func (c *MazeCard) ID() int {
	return c.id
}

// Rotation returns the clockwise rotation in degrees.
func (c *MazeCard) Rotation() int {
	return c.rotation
}

// SetRotation changes the rotation; it must be one of 0, 90, 180, 270.
func (c *MazeCard) SetRotation(rotation int) error {
	if err := validateRotation(rotation); err != nil {
		return err
	}
	c.rotation = rotation
	return nil
}

// OutPaths returns the out path letters before rotation.
func (c *MazeCard) OutPaths() string {
	return c.openings.String()
}

// Openings returns the openings after rotation.
func (c *MazeCard) Openings() Openings {
	return c.openings.Rotate(c.rotation)
}

// HasOpening reports whether the rotated card has a path towards d.
func (c *MazeCard) HasOpening(d Direction) bool {
	return c.Openings().Has(d)
}

// PlayerIDs returns a copy of the ids of the players standing on the card.
func (c *MazeCard) PlayerIDs() []int {
	return slices.Clone(c.playerIDs)
}

// HasPlayer reports whether the player stands on the card.
func (c *MazeCard) HasPlayer(playerID int) bool {
	return slices.Contains(c.playerIDs, playerID)
}

func (c *MazeCard) addPlayer(playerID int) {
	c.playerIDs = append(c.playerIDs, playerID)
}

func (c *MazeCard) removePlayer(playerID int) bool {
	idx := slices.Index(c.playerIDs, playerID)
	if idx < 0 {
		return false
	}
	c.playerIDs = slices.Delete(c.playerIDs, idx, idx+1)
	return true
}

func (c *MazeCard) String() string {
	return fmt.Sprintf("(MazeCard: id: %d, rotation: %d, out paths: %s)", c.id, c.rotation, c.OutPaths())
}
