package labyrinth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// tile is a card layout used to build test boards.
type tile struct {
	outPaths string
	rotation int
}

// snapshotOf builds a snapshot whose grid cards get ids row-major from 0 and whose
// leftover gets id n*n. All shift locations are enabled.
func snapshotOf(grid [][]tile, leftover tile) *Snapshot {
	n := len(grid)
	s := &Snapshot{
		MazeSize:              n,
		MazeCards:             []CardState{{ID: n * n, OutPaths: leftover.outPaths, Rotation: leftover.rotation}},
		EnabledShiftLocations: ShiftLocations(n),
	}
	for row := range grid {
		for col, t := range grid[row] {
			l := Loc(row, col)
			s.MazeCards = append(s.MazeCards, CardState{ID: row*n + col, Location: &l, OutPaths: t.outPaths, Rotation: t.rotation})
		}
	}
	return s
}

func mustBoard(t *testing.T, s *Snapshot) *Board {
	t.Helper()
	b, err := New(s)
	require.NoError(t, err)
	return b
}

// uniformGrid returns an n x n grid of identical tiles.
func uniformGrid(n int, t tile) [][]tile {
	grid := make([][]tile, n)
	for row := range grid {
		grid[row] = make([]tile, n)
		for col := range grid[row] {
			grid[row][col] = t
		}
	}
	return grid
}

// referenceSnapshot is a 3x3 game state as sent by the server, with shift location
// (2, 1) disabled and two players on card 2.
func referenceSnapshot() *Snapshot {
	loc := func(row, col int) *Location {
		l := Loc(row, col)
		return &l
	}
	return &Snapshot{
		MazeSize: 3,
		MazeCards: []CardState{
			{ID: 9, Location: nil, Rotation: 0, OutPaths: "NES"},
			{ID: 0, Location: loc(0, 0), Rotation: 180, OutPaths: "NES"},
			{ID: 1, Location: loc(0, 1), Rotation: 180, OutPaths: "NE"},
			{ID: 2, Location: loc(0, 2), Rotation: 90, OutPaths: "NS"},
			{ID: 3, Location: loc(1, 0), Rotation: 180, OutPaths: "NE"},
			{ID: 4, Location: loc(1, 1), Rotation: 270, OutPaths: "NE"},
			{ID: 5, Location: loc(1, 2), Rotation: 0, OutPaths: "NS"},
			{ID: 6, Location: loc(2, 0), Rotation: 180, OutPaths: "NS"},
			{ID: 7, Location: loc(2, 1), Rotation: 180, OutPaths: "NES"},
			{ID: 8, Location: loc(2, 2), Rotation: 0, OutPaths: "NE"},
		},
		EnabledShiftLocations: []Location{Loc(0, 1), Loc(1, 0), Loc(1, 2)},
		Players: []PlayerState{
			{ID: 42, MazeCardID: 2},
			{ID: 17, MazeCardID: 2},
		},
	}
}
