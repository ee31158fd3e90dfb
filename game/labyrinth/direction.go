package labyrinth

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass directions.
// The numeric order N, E, S, W is also the neighbor visiting order of the graph search.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all directions in visiting order.
var Directions = [4]Direction{North, East, South, West}

var (
	directionLetters = [4]byte{'N', 'E', 'S', 'W'}
	directionDeltas  = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
)

// Opposite returns the mirrored direction (N<->S, E<->W).
func (d Direction) Opposite() Direction {
	return d ^ 2
}

// Delta returns the row and column offset of one step in direction d.
func (d Direction) Delta() (int, int) {
	delta := directionDeltas[d&3]
	return delta[0], delta[1]
}

func (d Direction) String() string {
	return string(directionLetters[d&3])
}

// Openings is the set of directions a maze card has paths towards.
type Openings uint8

// ParseOpenings reads a string of direction letters such as "NES".
// The empty string is a card without any paths.
func ParseOpenings(outPaths string) (Openings, error) {
	var o Openings
	for _, r := range strings.ToUpper(outPaths) {
		idx := strings.IndexRune("NESW", r)
		if idx < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOutPaths, outPaths)
		}
		o |= 1 << idx
	}
	return o, nil
}

// Has reports whether the set contains d.
func (o Openings) Has(d Direction) bool {
	return o&(1<<(d&3)) != 0
}

// Rotate turns the openings clockwise by the given rotation in degrees.
// The rotation must be a right angle.
func (o Openings) Rotate(rotation int) Openings {
	turns := uint(normalizeRotation(rotation) / 90)
	return ((o << turns) | (o >> (4 - turns))) & 0xF
}

// String renders the openings in N, E, S, W order.
func (o Openings) String() string {
	var sb strings.Builder
	for _, d := range Directions {
		if o.Has(d) {
			sb.WriteByte(directionLetters[d])
		}
	}
	return sb.String()
}

func normalizeRotation(rotation int) int {
	return ((rotation % 360) + 360) % 360
}

func validateRotation(rotation int) error {
	switch rotation {
	case 0, 90, 180, 270:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrInvalidRotation, rotation)
}
