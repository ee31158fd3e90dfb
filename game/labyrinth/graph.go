package labyrinth

import (
	"fmt"
	"slices"
)

// Graph answers connectivity queries over a board. Two adjacent locations are
// connected iff each card has an opening towards the other.
// Nothing is cached between calls; every query traverses the current grid.
type Graph struct {
	board *Board
}

// NewGraph returns a graph over the given board.
func NewGraph(b *Board) *Graph {
	return &Graph{board: b}
}

// traversal holds the per-query search state.
type traversal struct {
	n       int
	visited []bool
	parent  map[Location]Location
}

func newTraversal(n int) *traversal {
	return &traversal{
		n:       n,
		visited: make([]bool, n*n),
		parent:  make(map[Location]Location),
	}
}

func (t *traversal) isVisited(l Location) bool {
	return t.visited[l.Row*t.n+l.Column]
}

func (t *traversal) visit(l, parent Location) {
	t.visited[l.Row*t.n+l.Column] = true
	t.parent[l] = parent
}

// ReachableLocations returns all locations connected to source, source included,
// in row-major order. While the board is shifting the result is empty.
func (g *Graph) ReachableLocations(source Location) ([]Location, error) {
	if !g.board.IsInside(source) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, source)
	}
	if g.board.IsShifting() {
		return []Location{}, nil
	}

	t := g.search(source, nil)
	reached := make([]Location, 0)
	for row := 0; row < t.n; row++ {
		for col := 0; col < t.n; col++ {
			if l := Loc(row, col); t.isVisited(l) {
				reached = append(reached, l)
			}
		}
	}
	return reached, nil
}

// IsReachable reports whether target is connected to source.
func (g *Graph) IsReachable(source, target Location) (bool, error) {
	if !g.board.IsInside(target) {
		return false, fmt.Errorf("%w: %s", ErrOutOfBounds, target)
	}
	reached, err := g.ReachableLocations(source)
	if err != nil {
		return false, err
	}
	return slices.Contains(reached, target), nil
}

// ShortestPath returns the locations from source to target, both included, along
// a path with the fewest steps. Among equally short paths the one found first
// when visiting neighbors in N, E, S, W order wins. The path is empty if target
// is unreachable or the board is shifting.
func (g *Graph) ShortestPath(source, target Location) ([]Location, error) {
	if !g.board.IsInside(source) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, source)
	}
	if !g.board.IsInside(target) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, target)
	}
	if g.board.IsShifting() {
		return []Location{}, nil
	}

	t := g.search(source, &target)
	if !t.isVisited(target) {
		return []Location{}, nil
	}

	path := []Location{target}
	for current := target; current != source; {
		current = t.parent[current]
		path = append(path, current)
	}
	slices.Reverse(path)
	return path, nil
}

// search runs a breadth-first traversal from source. It stops early once target
// is dequeued, if target is given.
func (g *Graph) search(source Location, target *Location) *traversal {
	t := newTraversal(g.board.Size())
	t.visit(source, source)
	queue := []Location{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if target != nil && current == *target {
			break
		}
		for _, neighbor := range g.neighborLocations(current) {
			if !t.isVisited(neighbor) {
				t.visit(neighbor, current)
				queue = append(queue, neighbor)
			}
		}
	}
	return t
}

// neighborLocations lists the locations connected to l, in N, E, S, W order.
func (g *Graph) neighborLocations(l Location) []Location {
	neighbors := make([]Location, 0, len(Directions))
	card, err := g.board.MazeCardAt(l)
	if err != nil {
		return neighbors
	}
	for _, d := range Directions {
		if !card.HasOpening(d) {
			continue
		}
		next := l.Step(d)
		other, err := g.board.MazeCardAt(next)
		if err != nil {
			continue
		}
		if other.HasOpening(d.Opposite()) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}
