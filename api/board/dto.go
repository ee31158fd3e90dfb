// Package boardapi exposes labyrinth board sessions over HTTP.
package boardapi

import (
	"github.com/beka-birhanu/vinom-labyrinth/game/labyrinth"
	"github.com/google/uuid"
)

// NewBoardRequest asks for a randomly generated board.
type NewBoardRequest struct {
	Size      int   `json:"size"`
	PlayerIDs []int `json:"playerIds"`
}

// BoardResponse carries a session id with its board.
type BoardResponse struct {
	ID    uuid.UUID           `json:"id"`
	Board *labyrinth.Snapshot `json:"board"`
}

// ShiftRequest inserts the leftover at a border location.
type ShiftRequest struct {
	Location labyrinth.Location `json:"location"`
	Rotation int                `json:"rotation"`
}

// MoveRequest moves a player to a target location.
type MoveRequest struct {
	PlayerID int                `json:"playerId"`
	Target   labyrinth.Location `json:"target"`
}

// ShiftingRequest sets the shift-in-progress flag.
type ShiftingRequest struct {
	Shifting bool `json:"shifting"`
}

// LocationsResponse is a list of locations, a reachable set or a path.
type LocationsResponse struct {
	Locations []labyrinth.Location `json:"locations"`
}

// locationQuery binds a location from query parameters.
type locationQuery struct {
	Row    *int `form:"row" binding:"required"`
	Column *int `form:"column" binding:"required"`
}

// pathQuery binds source and target locations from query parameters.
type pathQuery struct {
	FromRow    *int `form:"fromRow" binding:"required"`
	FromColumn *int `form:"fromColumn" binding:"required"`
	ToRow      *int `form:"toRow" binding:"required"`
	ToColumn   *int `form:"toColumn" binding:"required"`
}
