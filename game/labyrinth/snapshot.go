package labyrinth

import (
	"fmt"
	"slices"
)

// Snapshot is the board state exchanged with the game server.
// By convention the first maze card is the leftover and has no location.
type Snapshot struct {
	MazeSize              int           `json:"mazeSize"`
	MazeCards             []CardState   `json:"mazeCards"`
	EnabledShiftLocations []Location    `json:"enabledShiftLocations"`
	Players               []PlayerState `json:"players"`
}

// CardState describes one maze card of a snapshot.
type CardState struct {
	ID       int       `json:"id"`
	Location *Location `json:"location"`
	Rotation int       `json:"rotation"`
	OutPaths string    `json:"outPaths"`
}

// CardView is a grid card together with the players standing on it.
type CardView struct {
	CardState
	PlayerIDs []int `json:"playerIds"`
}

// PlayerState places a player on a maze card.
type PlayerState struct {
	ID         int `json:"id"`
	MazeCardID int `json:"mazeCardId"`
}

// Update replaces the whole board state with the snapshot. Cards are recreated, so
// references to cards obtained before the update are stale afterwards.
// On error the board is left unchanged.
func (b *Board) Update(s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("%w: nil snapshot", ErrInvalidSnapshot)
	}
	n := s.MazeSize
	if n < minMazeSize || n > maxMazeSize || n%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMazeSize, n)
	}
	if len(s.MazeCards) != n*n+1 {
		return fmt.Errorf("%w: expected %d maze cards, got %d", ErrInvalidSnapshot, n*n+1, len(s.MazeCards))
	}

	cardsByID := make(map[int]*MazeCard, len(s.MazeCards))
	layout := make([][]int, n)
	filled := make([][]bool, n)
	for row := range layout {
		layout[row] = make([]int, n)
		filled[row] = make([]bool, n)
	}

	for i, cs := range s.MazeCards {
		card, err := NewMazeCard(cs.ID, cs.OutPaths, cs.Rotation)
		if err != nil {
			return fmt.Errorf("%w: maze card %d: %w", ErrInvalidSnapshot, cs.ID, err)
		}
		if _, dup := cardsByID[cs.ID]; dup {
			return fmt.Errorf("%w: duplicate maze card id %d", ErrInvalidSnapshot, cs.ID)
		}
		cardsByID[cs.ID] = card

		if i == 0 {
			if cs.Location != nil {
				return fmt.Errorf("%w: leftover maze card %d has a location", ErrInvalidSnapshot, cs.ID)
			}
			continue
		}
		if cs.Location == nil || !IsInside(*cs.Location, n) {
			return fmt.Errorf("%w: maze card %d has no location inside the maze", ErrInvalidSnapshot, cs.ID)
		}
		l := *cs.Location
		if filled[l.Row][l.Column] {
			return fmt.Errorf("%w: location %s is occupied twice", ErrInvalidSnapshot, l)
		}
		layout[l.Row][l.Column] = cs.ID
		filled[l.Row][l.Column] = true
	}

	placed := make(map[int]struct{}, len(s.Players))
	for _, p := range s.Players {
		if _, dup := placed[p.ID]; dup {
			return fmt.Errorf("%w: player %d is placed twice", ErrInvalidSnapshot, p.ID)
		}
		placed[p.ID] = struct{}{}
		card, ok := cardsByID[p.MazeCardID]
		if !ok {
			return fmt.Errorf("%w: player %d is on unknown maze card %d", ErrInvalidSnapshot, p.ID, p.MazeCardID)
		}
		card.addPlayer(p.ID)
	}

	b.size = n
	b.cardsByID = cardsByID
	b.layout = layout
	b.leftoverID = s.MazeCards[0].ID
	b.disabledShiftLocation = findDisabledShiftLocation(n, s.EnabledShiftLocations)
	b.shifting = false
	return nil
}

// Snapshot exports the board in the same shape Update accepts: the leftover first,
// then the grid in row-major order.
func (b *Board) Snapshot() *Snapshot {
	s := &Snapshot{
		MazeSize:              b.size,
		MazeCards:             make([]CardState, 0, b.size*b.size+1),
		EnabledShiftLocations: make([]Location, 0),
		Players:               make([]PlayerState, 0),
	}

	appendCard := func(card *MazeCard, l *Location) {
		s.MazeCards = append(s.MazeCards, CardState{
			ID:       card.id,
			Location: l,
			Rotation: card.rotation,
			OutPaths: card.OutPaths(),
		})
		for _, playerID := range card.playerIDs {
			s.Players = append(s.Players, PlayerState{ID: playerID, MazeCardID: card.id})
		}
	}

	appendCard(b.Leftover(), nil)
	for row := range b.layout {
		for col, id := range b.layout[row] {
			l := Loc(row, col)
			appendCard(b.cardsByID[id], &l)
		}
	}

	for _, l := range ShiftLocations(b.size) {
		if b.IsShiftAllowed(l) {
			s.EnabledShiftLocations = append(s.EnabledShiftLocations, l)
		}
	}
	return s
}

// findDisabledShiftLocation returns the first candidate shift location missing
// from the enabled ones, or nil if all are enabled.
func findDisabledShiftLocation(n int, enabled []Location) *Location {
	for _, l := range ShiftLocations(n) {
		if !slices.Contains(enabled, l) {
			return &l
		}
	}
	return nil
}
