package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-laze/internal/maze"
	"github.com/vovakirdan/tui-laze/internal/registry"
	"github.com/vovakirdan/tui-laze/internal/storage"
)

// Limits for query parameters.
const (
	defaultLimit = 10
	maxLimit     = 100
	maxMazeSize  = 201
)

// ScoreStore is the part of the storage layer the leaderboard reads.
type ScoreStore interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
	GetAllGamesStats() (map[string]*storage.GameStats, error)
	BestRuns(gameID string, limit int) ([]storage.Run, error)
	RecentRuns(limit int) ([]storage.Run, error)
	RunByID(runID string) (*storage.Run, error)
}

var _ ScoreStore = (*storage.Store)(nil)

// queryLimit reads ?limit= clamped to [1, maxLimit].
func queryLimit(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || n <= 0 {
		return defaultLimit
	}
	return min(n, maxLimit)
}

func abortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// GamesController lists the playable modes.
type GamesController struct {
	store ScoreStore
}

// NewGamesController creates a GamesController. store may be nil.
func NewGamesController(store ScoreStore) *GamesController {
	return &GamesController{store: store}
}

// RegisterPublic registers public routes.
func (gc *GamesController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/games", gc.list)
}

type gameResponse struct {
	registry.GameInfo
	Stats *storage.GameStats `json:"stats,omitempty"`
}

func (gc *GamesController) list(c *gin.Context) {
	var stats map[string]*storage.GameStats
	if gc.store != nil {
		s, err := gc.store.GetAllGamesStats()
		if err != nil {
			abortError(c, http.StatusInternalServerError, "cannot load stats")
			return
		}
		stats = s
	}

	games := registry.List()
	resp := make([]gameResponse, len(games))
	for i, g := range games {
		resp[i] = gameResponse{GameInfo: g, Stats: stats[g.ID]}
	}
	c.JSON(http.StatusOK, gin.H{"games": resp})
}

// ScoresController serves per-mode leaderboards.
type ScoresController struct {
	store ScoreStore
}

// NewScoresController creates a ScoresController.
func NewScoresController(store ScoreStore) *ScoresController {
	return &ScoresController{store: store}
}

// RegisterPublic registers public routes.
func (sc *ScoresController) RegisterPublic(route *gin.RouterGroup) {
	scores := route.Group("/scores")
	{
		scores.GET("/:game", sc.top)
		scores.GET("/:game/best", sc.best)
	}
}

func (sc *ScoresController) game(c *gin.Context) (string, bool) {
	id := c.Param("game")
	if !registry.Exists(id) {
		abortError(c, http.StatusNotFound, "unknown game")
		return "", false
	}
	return id, true
}

func (sc *ScoresController) top(c *gin.Context) {
	id, ok := sc.game(c)
	if !ok {
		return
	}

	scores, err := sc.store.TopScores(id, queryLimit(c))
	if err != nil {
		abortError(c, http.StatusInternalServerError, "cannot load scores")
		return
	}
	stats, err := sc.store.GetGameStats(id)
	if err != nil {
		abortError(c, http.StatusInternalServerError, "cannot load stats")
		return
	}

	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"game": id, "scores": scores, "stats": stats})
}

func (sc *ScoresController) best(c *gin.Context) {
	id, ok := sc.game(c)
	if !ok {
		return
	}

	runs, err := sc.store.BestRuns(id, queryLimit(c))
	if err != nil {
		abortError(c, http.StatusInternalServerError, "cannot load runs")
		return
	}
	if runs == nil {
		runs = []storage.Run{}
	}
	c.JSON(http.StatusOK, gin.H{"game": id, "runs": runs})
}

// RunsController serves individual run records.
type RunsController struct {
	store ScoreStore
}

// NewRunsController creates a RunsController.
func NewRunsController(store ScoreStore) *RunsController {
	return &RunsController{store: store}
}

// RegisterPublic registers public routes.
func (rc *RunsController) RegisterPublic(route *gin.RouterGroup) {
	runs := route.Group("/runs")
	{
		runs.GET("/recent", rc.recent)
		runs.GET("/:id", rc.byID)
	}
}

func (rc *RunsController) recent(c *gin.Context) {
	runs, err := rc.store.RecentRuns(queryLimit(c))
	if err != nil {
		abortError(c, http.StatusInternalServerError, "cannot load runs")
		return
	}
	if runs == nil {
		runs = []storage.Run{}
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (rc *RunsController) byID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid run id")
		return
	}

	run, err := rc.store.RunByID(id.String())
	if errors.Is(err, storage.ErrNotFound) {
		abortError(c, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		abortError(c, http.StatusInternalServerError, "cannot load run")
		return
	}
	c.JSON(http.StatusOK, run)
}

// MazeController generates mazes on request.
type MazeController struct{}

// NewMazeController creates a MazeController.
func NewMazeController() *MazeController {
	return &MazeController{}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/maze", mc.generate)
}

// MazeRequest holds the query parameters of GET /maze.
type MazeRequest struct {
	Width  int    `form:"width,default=11"`
	Height int    `form:"height,default=11"`
	Seed   int64  `form:"seed,default=1"`
	Solve  bool   `form:"solve"`
	Format string `form:"format,default=json"`
}

// MazeResponse is the JSON form of a generated maze.
type MazeResponse struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Seed   int64        `json:"seed"`
	Rows   []string     `json:"rows"`
	Start  maze.Point   `json:"start"`
	Exit   maze.Point   `json:"exit"`
	Stats  maze.Stats   `json:"stats"`
	Path   []maze.Point `json:"path,omitempty"`
}

func (mc *MazeController) generate(c *gin.Context) {
	var req MazeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Width > maxMazeSize || req.Height > maxMazeSize {
		abortError(c, http.StatusBadRequest, "maze too large")
		return
	}

	g, err := maze.Generate(req.Width, req.Height, maze.NewSource(req.Seed))
	if err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	var path []maze.Point
	if req.Solve {
		path = maze.Solve(g, g.Entrance(), g.Exit())
	}

	switch strings.ToLower(req.Format) {
	case "text":
		c.String(http.StatusOK, strings.Join(maze.Overlay(g, path, 'o'), "\n")+"\n")
	case "json", "":
		c.JSON(http.StatusOK, MazeResponse{
			Width:  g.Width(),
			Height: g.Height(),
			Seed:   req.Seed,
			Rows:   g.Rows(),
			Start:  g.Start(),
			Exit:   g.Exit(),
			Stats:  maze.Measure(g),
			Path:   path,
		})
	default:
		abortError(c, http.StatusBadRequest, "format must be json or text")
	}
}
