/*
Package labyrinth models the board of a labyrinth game: a square grid of rotatable
maze cards, a leftover card held off the grid, and the shift that pushes a row or
column by one position.

It also answers connectivity questions over the grid (reachable locations and
shortest paths) by breadth-first search over the openings of adjacent cards.
*/
package labyrinth

import "fmt"

// Location is a 0-indexed (row, column) pair on the board.
type Location struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Loc is a shorthand constructor for a Location.
func Loc(row, column int) Location {
	return Location{Row: row, Column: column}
}

// Add returns the location offset by the given deltas.
func (l Location) Add(rowDelta, columnDelta int) Location {
	return Location{Row: l.Row + rowDelta, Column: l.Column + columnDelta}
}

// Step returns the adjacent location in direction d.
func (l Location) Step(d Direction) Location {
	rowDelta, columnDelta := d.Delta()
	return l.Add(rowDelta, columnDelta)
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.Row, l.Column)
}

// IsInside reports whether the location lies within an n x n grid.
func IsInside(l Location, n int) bool {
	return l.Row >= 0 && l.Row < n && l.Column >= 0 && l.Column < n
}

// isBorder reports whether the location lies on the outermost ring of the grid.
func isBorder(l Location, n int) bool {
	if !IsInside(l, n) {
		return false
	}
	limit := n - 1
	return l.Row == 0 || l.Row == limit || l.Column == 0 || l.Column == limit
}

// ShiftLocations enumerates the border insertion points of an n x n board.
// Only odd offsets are shiftable, so corners never are.
func ShiftLocations(n int) []Location {
	locations := make([]Location, 0)
	for p := 1; p < n-1; p += 2 {
		locations = append(locations,
			Loc(0, p),
			Loc(p, 0),
			Loc(n-1, p),
			Loc(p, n-1),
		)
	}
	return locations
}

// IsShiftLocation reports whether l is one of ShiftLocations(n).
func IsShiftLocation(l Location, n int) bool {
	if !isBorder(l, n) {
		return false
	}
	limit := n - 1
	switch {
	case l.Row == 0 || l.Row == limit:
		return l.Column%2 == 1 && l.Column < limit
	default:
		return l.Row%2 == 1 && l.Row < limit
	}
}

// OppositeLocation mirrors a border location across the grid. Rows are mirrored
// before columns. The second return value is false if l is not on the border.
func OppositeLocation(l Location, n int) (Location, bool) {
	if !isBorder(l, n) {
		return Location{}, false
	}
	limit := n - 1
	if l.Row == 0 || l.Row == limit {
		return Loc(limit-l.Row, l.Column), true
	}
	return Loc(l.Row, limit-l.Column), true
}

// ShiftPath returns the n locations of the row or column containing l, ordered in
// the direction the shift pushes. Index 0 receives the inserted card and index n-1
// holds the card that is pushed out.
func ShiftPath(l Location, n int) ([]Location, error) {
	if !isBorder(l, n) {
		return nil, fmt.Errorf("%w: location %s is not on the border", ErrInvalidShift, l)
	}

	var push Direction
	switch {
	case l.Row == 0:
		push = South
	case l.Row == n-1:
		push = North
	case l.Column == n-1:
		push = West
	default:
		push = East
	}

	path := make([]Location, 0, n)
	for current := l; IsInside(current, n); current = current.Step(push) {
		path = append(path, current)
	}
	return path, nil
}
