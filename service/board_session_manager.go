package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-labyrinth/game/labyrinth"
	"github.com/beka-birhanu/vinom-labyrinth/service/i"
	"github.com/google/uuid"
)

const (
	defaultMazeSize = 7
	maxPlayers      = 4
)

// Session-related errors.
var (
	ErrSessionNotFound = errors.New("no board session")
	ErrTooManyPlayers  = errors.New("too many players")
	ErrUnreachable     = errors.New("target location is not reachable")
	ErrShifting        = errors.New("board is shifting")
)

var _ i.BoardSessionManager = &BoardSessionManager{}

// BoardSessionManager keeps one board per game session. Boards are not safe for
// concurrent use, so every access goes through the manager's lock.
type BoardSessionManager struct {
	sessions        map[uuid.UUID]*labyrinth.Board
	defaultMazeSize int
	rng             *rand.Rand
	logger          i.Logger
	sync.RWMutex
}

// Config configures a BoardSessionManager.
type Config struct {
	DefaultMazeSize int        // Size of generated boards when none is requested
	Rand            *rand.Rand // Source for board generation; seeded from the clock if nil
	Logger          i.Logger
}

// NewBoardSessionManager creates an empty session manager.
func NewBoardSessionManager(c *Config) (*BoardSessionManager, error) {
	if c == nil || c.Logger == nil {
		return nil, errors.New("board session manager requires a logger")
	}

	size := c.DefaultMazeSize
	if size == 0 {
		size = defaultMazeSize
	}

	rng := c.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &BoardSessionManager{
		sessions:        make(map[uuid.UUID]*labyrinth.Board),
		defaultMazeSize: size,
		rng:             rng,
		logger:          c.Logger,
	}, nil
}

// NewSession implements i.BoardSessionManager.
func (m *BoardSessionManager) NewSession(size int, playerIDs []int) (uuid.UUID, *labyrinth.Snapshot, error) {
	if len(playerIDs) > maxPlayers {
		m.logger.Errorf("too many players for a new board: %d", len(playerIDs))
		return uuid.Nil, nil, ErrTooManyPlayers
	}
	if size == 0 {
		size = m.defaultMazeSize
	}

	m.Lock()
	defer m.Unlock()

	board, err := labyrinth.Generate(size, playerIDs, m.rng)
	if err != nil {
		m.logger.Errorf("generating board of size %d: %s", size, err)
		return uuid.Nil, nil, err
	}

	id := m.saveSession(board)
	m.logger.Infof("generated board %s of size %d for players %v", id, size, playerIDs)
	return id, board.Snapshot(), nil
}

// LoadSession implements i.BoardSessionManager.
func (m *BoardSessionManager) LoadSession(s *labyrinth.Snapshot) (uuid.UUID, error) {
	board, err := labyrinth.New(s)
	if err != nil {
		m.logger.Errorf("loading board snapshot: %s", err)
		return uuid.Nil, err
	}

	m.Lock()
	defer m.Unlock()
	id := m.saveSession(board)
	m.logger.Infof("loaded board %s of size %d", id, board.Size())
	return id, nil
}

// Update implements i.BoardSessionManager.
func (m *BoardSessionManager) Update(id uuid.UUID, s *labyrinth.Snapshot) error {
	m.Lock()
	defer m.Unlock()

	board, err := m.board(id)
	if err != nil {
		return err
	}
	if err := board.Update(s); err != nil {
		m.logger.Errorf("updating board %s: %s", id, err)
		return err
	}
	m.logger.Infof("updated board %s", id)
	return nil
}

// Snapshot implements i.BoardSessionManager.
func (m *BoardSessionManager) Snapshot(id uuid.UUID) (*labyrinth.Snapshot, error) {
	m.RLock()
	defer m.RUnlock()

	board, err := m.board(id)
	if err != nil {
		return nil, err
	}
	return board.Snapshot(), nil
}

// MazeCard implements i.BoardSessionManager.
func (m *BoardSessionManager) MazeCard(id uuid.UUID, l labyrinth.Location) (*labyrinth.CardView, error) {
	m.RLock()
	defer m.RUnlock()

	board, err := m.board(id)
	if err != nil {
		return nil, err
	}
	card, err := board.MazeCardAt(l)
	if err != nil {
		return nil, err
	}
	return &labyrinth.CardView{
		CardState: labyrinth.CardState{
			ID:       card.ID(),
			Location: &l,
			Rotation: card.Rotation(),
			OutPaths: card.OutPaths(),
		},
		PlayerIDs: append([]int{}, card.PlayerIDs()...),
	}, nil
}

// Reachable implements i.BoardSessionManager.
func (m *BoardSessionManager) Reachable(id uuid.UUID, source labyrinth.Location) ([]labyrinth.Location, error) {
	m.RLock()
	defer m.RUnlock()

	board, err := m.board(id)
	if err != nil {
		return nil, err
	}
	return labyrinth.NewGraph(board).ReachableLocations(source)
}

// Path implements i.BoardSessionManager.
func (m *BoardSessionManager) Path(id uuid.UUID, source, target labyrinth.Location) ([]labyrinth.Location, error) {
	m.RLock()
	defer m.RUnlock()

	board, err := m.board(id)
	if err != nil {
		return nil, err
	}
	return labyrinth.NewGraph(board).ShortestPath(source, target)
}

// Shift implements i.BoardSessionManager.
func (m *BoardSessionManager) Shift(id uuid.UUID, l labyrinth.Location, rotation int) (*labyrinth.Snapshot, error) {
	m.Lock()
	defer m.Unlock()

	board, err := m.board(id)
	if err != nil {
		return nil, err
	}
	if err := board.ApplyShift(l, rotation); err != nil {
		m.logger.Warnf("rejected shift at %s on board %s: %s", l, id, err)
		return nil, err
	}
	m.logger.Infof("shifted board %s at %s with rotation %d", id, l, rotation)
	return board.Snapshot(), nil
}

// Move implements i.BoardSessionManager.
func (m *BoardSessionManager) Move(id uuid.UUID, playerID int, target labyrinth.Location) ([]labyrinth.Location, error) {
	m.Lock()
	defer m.Unlock()

	board, err := m.board(id)
	if err != nil {
		return nil, err
	}

	if board.IsShifting() {
		return nil, fmt.Errorf("%w: player %d cannot move", ErrShifting, playerID)
	}

	source, err := board.PlayerLocation(playerID)
	if err != nil {
		m.logger.Errorf("moving player %d on board %s: %s", playerID, id, err)
		return nil, err
	}
	targetCard, err := board.MazeCardAt(target)
	if err != nil {
		return nil, err
	}

	path, err := labyrinth.NewGraph(board).ShortestPath(source, target)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: %s from %s", ErrUnreachable, target, source)
	}

	sourceCard, _ := board.MazeCardAt(source)
	if err := board.MovePlayer(sourceCard.ID(), targetCard.ID(), playerID); err != nil {
		m.logger.Errorf("moving player %d on board %s: %s", playerID, id, err)
		return nil, err
	}
	m.logger.Infof("moved player %d on board %s from %s to %s", playerID, id, source, target)
	return path, nil
}

// SetShifting implements i.BoardSessionManager.
func (m *BoardSessionManager) SetShifting(id uuid.UUID, shifting bool) error {
	m.Lock()
	defer m.Unlock()

	board, err := m.board(id)
	if err != nil {
		return err
	}
	board.SetShifting(shifting)
	return nil
}

// Close implements i.BoardSessionManager.
func (m *BoardSessionManager) Close(id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()

	if _, err := m.board(id); err != nil {
		return err
	}
	delete(m.sessions, id)
	m.logger.Infof("closed board %s", id)
	return nil
}

// board looks up a session; the caller holds the lock.
func (m *BoardSessionManager) board(id uuid.UUID) (*labyrinth.Board, error) {
	board, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return board, nil
}

// saveSession stores a board under a fresh id; the caller holds the lock.
func (m *BoardSessionManager) saveSession(board *labyrinth.Board) uuid.UUID {
	id := uuid.New()
	for {
		if _, ok := m.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	m.sessions[id] = board
	return id
}
