package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/vovakirdan/tui-laze/internal/games/laze"
	"github.com/vovakirdan/tui-laze/internal/maze"
	"github.com/vovakirdan/tui-laze/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*httptest.Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	router := NewRouter(Config{
		BaseURL: "/api",
		Logger:  log.New(io.Discard),
		Controllers: []Controller{
			NewGamesController(store),
			NewScoresController(store),
			NewRunsController(store),
			NewMazeController(),
		},
	})
	srv := httptest.NewServer(router.Handler())
	t.Cleanup(srv.Close)
	return srv, store
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestGames(t *testing.T) {
	srv, store := newTestServer(t)
	_, err := store.SaveScore("laze", 3)
	require.NoError(t, err)

	var body struct {
		Games []struct {
			ID    string             `json:"id"`
			Title string             `json:"title"`
			Stats *storage.GameStats `json:"stats"`
		} `json:"games"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/games", &body))

	ids := make(map[string]bool)
	for _, g := range body.Games {
		ids[g.ID] = true
		if g.ID == "laze" {
			require.NotNil(t, g.Stats)
			assert.Equal(t, 3, g.Stats.HighScore)
		}
	}
	assert.True(t, ids["laze"])
	assert.True(t, ids["laze_daily"])
}

func TestScores(t *testing.T) {
	srv, store := newTestServer(t)
	for _, s := range []int{2, 5, 1} {
		_, err := store.SaveScore("laze", s)
		require.NoError(t, err)
	}

	var body struct {
		Game   string               `json:"game"`
		Scores []storage.ScoreEntry `json:"scores"`
		Stats  storage.GameStats    `json:"stats"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/scores/laze?limit=2", &body))
	assert.Equal(t, "laze", body.Game)
	require.Len(t, body.Scores, 2)
	assert.Equal(t, 5, body.Scores[0].Score)
	assert.Equal(t, 2, body.Scores[1].Score)
	assert.Equal(t, 3, body.Stats.GamesCount)

	var empty struct {
		Scores []storage.ScoreEntry `json:"scores"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/scores/laze_daily", &empty))
	assert.NotNil(t, empty.Scores)
	assert.Empty(t, empty.Scores)

	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/api/v1/scores/pong", nil))
}

func TestBestRuns(t *testing.T) {
	srv, store := newTestServer(t)
	_, err := store.SaveRun(storage.Run{GameID: "laze", Seed: 1, Levels: 1})
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{GameID: "laze", Seed: 2, Levels: 4})
	require.NoError(t, err)

	var body struct {
		Runs []storage.Run `json:"runs"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/scores/laze/best", &body))
	require.Len(t, body.Runs, 2)
	assert.Equal(t, int64(2), body.Runs[0].Seed)
}

func TestRuns(t *testing.T) {
	srv, store := newTestServer(t)
	id, err := store.SaveRun(storage.Run{
		GameID:     "laze",
		Player:     "ada",
		Seed:       7,
		Levels:     2,
		MaxSize:    19,
		PathCells:  55,
		DurationMs: 1234,
	})
	require.NoError(t, err)

	var run storage.Run
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/runs/"+id, &run))
	assert.Equal(t, id, run.RunID)
	assert.Equal(t, "ada", run.Player)
	assert.Equal(t, 19, run.MaxSize)

	var recent struct {
		Runs []storage.Run `json:"runs"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/runs/recent", &recent))
	require.Len(t, recent.Runs, 1)
	assert.Equal(t, id, recent.Runs[0].RunID)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/api/v1/runs/not-a-uuid", nil))
	assert.Equal(t, http.StatusNotFound,
		getJSON(t, srv.URL+"/api/v1/runs/00000000-0000-0000-0000-000000000000", nil))
}

func TestMazeJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	var body MazeResponse
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/maze?width=10&height=15&seed=4&solve=true", &body))
	assert.Equal(t, 11, body.Width)
	assert.Equal(t, 15, body.Height)
	assert.Equal(t, int64(4), body.Seed)
	require.Len(t, body.Rows, 15)

	rows := make([]string, len(body.Rows))
	copy(rows, body.Rows)
	g, err := maze.FromRows(rows)
	require.NoError(t, err)
	assert.NoError(t, maze.Validate(g))
	assert.Equal(t, g.Exit(), body.Exit)
	require.NotEmpty(t, body.Path)
	assert.Equal(t, body.Exit, body.Path[len(body.Path)-1])

	// Same seed, same maze.
	var again MazeResponse
	getJSON(t, srv.URL+"/api/v1/maze?width=10&height=15&seed=4", &again)
	assert.Equal(t, body.Rows, again.Rows)
	assert.Empty(t, again.Path)
}

func TestMazeDefaults(t *testing.T) {
	srv, _ := newTestServer(t)

	var body MazeResponse
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/maze", &body))
	assert.Equal(t, 11, body.Width)
	assert.Equal(t, 11, body.Height)
	assert.Equal(t, int64(1), body.Seed)
}

func TestMazeText(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/maze?width=7&height=7&format=text&solve=true")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, byte('o'), lines[1][0], "entrance should be on the path")
	assert.Equal(t, byte('o'), lines[5][6], "exit should be on the path")
}

func TestMazeRejectsBadInput(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, q := range []string{
		"width=0",
		"width=-3",
		"width=abc",
		"width=999",
		"format=xml",
	} {
		assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/api/v1/maze?"+q, nil), q)
	}
}
