package boardapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-labyrinth/game/labyrinth"
	"github.com/beka-birhanu/vinom-labyrinth/service"
	"github.com/beka-birhanu/vinom-labyrinth/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoardController serves board sessions to the game UI.
type BoardController struct {
	sessions i.BoardSessionManager
}

// NewBoardController initializes a BoardController.
func NewBoardController(sessions i.BoardSessionManager) *BoardController {
	return &BoardController{sessions: sessions}
}

// Register registers the board routes.
func (bc *BoardController) Register(route *gin.RouterGroup) {
	route.POST("/snapshots", bc.load)

	boards := route.Group("/boards")
	{
		boards.POST("", bc.create)
		boards.GET("/:ID", bc.snapshot)
		boards.PUT("/:ID", bc.update)
		boards.DELETE("/:ID", bc.close)
		boards.GET("/:ID/cards", bc.mazeCard)
		boards.GET("/:ID/reachable", bc.reachable)
		boards.GET("/:ID/path", bc.path)
		boards.POST("/:ID/shift", bc.shift)
		boards.POST("/:ID/moves", bc.move)
		boards.PUT("/:ID/shifting", bc.setShifting)
	}
}

// create generates a new random board.
func (bc *BoardController) create(ctx *gin.Context) {
	var request NewBoardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, board, err := bc.sessions.NewSession(request.Size, request.PlayerIDs)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, &BoardResponse{ID: id, Board: board})
}

// load creates a session from a server snapshot.
func (bc *BoardController) load(ctx *gin.Context) {
	var snapshot labyrinth.Snapshot
	if err := ctx.ShouldBindJSON(&snapshot); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := bc.sessions.LoadSession(&snapshot)
	if err != nil {
		respondError(ctx, err)
		return
	}
	board, err := bc.sessions.Snapshot(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, &BoardResponse{ID: id, Board: board})
}

// snapshot returns the current board.
func (bc *BoardController) snapshot(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	board, err := bc.sessions.Snapshot(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, board)
}

// update replaces the board with a newer snapshot.
func (bc *BoardController) update(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var snapshot labyrinth.Snapshot
	if err := ctx.ShouldBindJSON(&snapshot); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := bc.sessions.Update(id, &snapshot); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// close drops the session.
func (bc *BoardController) close(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	if err := bc.sessions.Close(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// mazeCard returns the card at ?row=&column=.
func (bc *BoardController) mazeCard(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var query locationQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := bc.sessions.MazeCard(id, labyrinth.Loc(*query.Row, *query.Column))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, card)
}

// reachable returns the locations reachable from ?row=&column=.
func (bc *BoardController) reachable(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var query locationQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	locations, err := bc.sessions.Reachable(id, labyrinth.Loc(*query.Row, *query.Column))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &LocationsResponse{Locations: locations})
}

// path returns the shortest path between two locations.
func (bc *BoardController) path(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var query pathQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source := labyrinth.Loc(*query.FromRow, *query.FromColumn)
	target := labyrinth.Loc(*query.ToRow, *query.ToColumn)
	locations, err := bc.sessions.Path(id, source, target)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &LocationsResponse{Locations: locations})
}

// shift inserts the leftover and returns the new board.
func (bc *BoardController) shift(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var request ShiftRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := bc.sessions.Shift(id, request.Location, request.Rotation)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, board)
}

// move moves a player and returns the path for the animation.
func (bc *BoardController) move(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	path, err := bc.sessions.Move(id, request.PlayerID, request.Target)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &LocationsResponse{Locations: path})
}

// setShifting marks a shift animation as running or finished.
func (bc *BoardController) setShifting(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var request ShiftingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := bc.sessions.SetShifting(id, request.Shifting); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// sessionID parses the :ID path parameter, responding 400 if it is malformed.
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid board id"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service and board errors to HTTP statuses.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, labyrinth.ErrInvalidShift),
		errors.Is(err, labyrinth.ErrInconsistentPlayerState),
		errors.Is(err, service.ErrShifting):
		status = http.StatusConflict
	case errors.Is(err, service.ErrUnreachable):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, labyrinth.ErrOutOfBounds),
		errors.Is(err, labyrinth.ErrInvalidRotation),
		errors.Is(err, labyrinth.ErrInvalidOutPaths),
		errors.Is(err, labyrinth.ErrInvalidMazeSize),
		errors.Is(err, labyrinth.ErrInvalidSnapshot),
		errors.Is(err, service.ErrTooManyPlayers):
		status = http.StatusBadRequest
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
