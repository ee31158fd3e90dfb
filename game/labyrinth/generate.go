package labyrinth

import (
	"fmt"
	"math/rand"
)

var rotations = []int{0, 90, 180, 270}

// StartLocations returns the corners players start on, in piece order.
func StartLocations(n int) []Location {
	return []Location{Loc(0, 0), Loc(0, n-1), Loc(n-1, n-1), Loc(n-1, 0)}
}

// Generate creates a random board of the given size following the layout of the
// physical game, generalized to any odd size.
//
// Cards on even rows and even columns are fixed: corners at the corners turned
// towards the center, a cross in the middle when (n-1) is a multiple of four and
// t-junctions everywhere else with the trunk pointing to the center. The free
// cards keep the 15:6:13 corner to t-junction to straight ratio of the original
// box, get random rotations and are dealt in random order; the last one dealt is
// the leftover. Grid cards get ids in row-major order and the leftover gets n*n.
// Players are placed on the start locations in order, wrapping around when there
// are more than four.
func Generate(n int, playerIDs []int, rng *rand.Rand) (*Board, error) {
	if n < minMazeSize || n > maxMazeSize || n%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMazeSize, n)
	}

	fixed := fixedCards(n)
	free := freeCardOutPaths(n*n + 1 - len(fixed))
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	s := &Snapshot{
		MazeSize:              n,
		MazeCards:             make([]CardState, 0, n*n+1),
		EnabledShiftLocations: ShiftLocations(n),
		Players:               make([]PlayerState, 0, len(playerIDs)),
	}

	dealt := 0
	deal := func(id int, l *Location) CardState {
		card := CardState{
			ID:       id,
			Location: l,
			OutPaths: free[dealt],
			Rotation: rotations[rng.Intn(len(rotations))],
		}
		dealt++
		return card
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			l := Loc(row, col)
			id := row*n + col
			if card, ok := fixed[l]; ok {
				card.ID = id
				card.Location = &l
				s.MazeCards = append(s.MazeCards, card)
				continue
			}
			s.MazeCards = append(s.MazeCards, deal(id, &l))
		}
	}
	// The leftover goes first by convention.
	s.MazeCards = append([]CardState{deal(n*n, nil)}, s.MazeCards...)

	starts := StartLocations(n)
	for i, playerID := range playerIDs {
		start := starts[i%len(starts)]
		s.Players = append(s.Players, PlayerState{ID: playerID, MazeCardID: start.Row*n + start.Column})
	}

	return New(s)
}

// fixedCards returns the out paths and rotations of the cards that never move
// during setup, keyed by location.
func fixedCards(n int) map[Location]CardState {
	border := n - 1
	fixed := map[Location]CardState{
		Loc(0, 0):           {OutPaths: Corner, Rotation: 90},
		Loc(0, border):      {OutPaths: Corner, Rotation: 180},
		Loc(border, border): {OutPaths: Corner, Rotation: 270},
		Loc(border, 0):      {OutPaths: Corner, Rotation: 0},
	}
	if border%4 == 0 {
		fixed[Loc(border/2, border/2)] = CardState{OutPaths: Cross}
	}

	for row := 0; row < n; row += 2 {
		for col := 0; col < n; col += 2 {
			l := Loc(row, col)
			if _, ok := fixed[l]; ok {
				continue
			}
			fixed[l] = CardState{OutPaths: TJunction, Rotation: tJunctionRotation(l, n)}
		}
	}
	return fixed
}

// tJunctionRotation turns a fixed t-junction so its trunk points to the center.
// Cards on a diagonal take the rotation of the side counter-clockwise of them.
func tJunctionRotation(l Location, n int) int {
	border := n - 1
	row, col := l.Row, l.Column
	switch {
	case col <= row && row < border-col:
		return 0
	case row < col && col <= border-row:
		return 90
	case border-col < row && row <= col:
		return 180
	default:
		return 270
	}
}

// freeCardOutPaths returns the out paths of the remaining free cards. Rounding
// favors corners first and then straights.
func freeCardOutPaths(remaining int) []string {
	corners := remaining * 15 / 34
	tJunctions := remaining * 6 / 34
	straights := remaining * 13 / 34
	left := remaining - corners - tJunctions - straights
	if left > 0 {
		corners++
	}
	if left > 1 {
		straights++
	}

	outPaths := make([]string, 0, remaining)
	for _, group := range []struct {
		outPaths string
		count    int
	}{{Corner, corners}, {TJunction, tJunctions}, {Straight, straights}} {
		for i := 0; i < group.count; i++ {
			outPaths = append(outPaths, group.outPaths)
		}
	}
	return outPaths
}
