package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/api"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/api/response"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/factory"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/testutil"
)

// testServer wires a router over a test factory with deterministic
// clock and random. With no values queued, every spawned block has
// value 1 and every target is the minimum of 10, so any ten blocks
// form a match.
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:           testutil.NopLogger(),
		GameController:   app.GameController,
		HighScoreService: app.HighScoreService,
		Storage:          app.Storage,
		HubManager:       app.HubManager,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) createGame(t *testing.T) response.GameState {
	t.Helper()
	ts.app.MockRandom.QueueString("APITEST00001")
	rr := ts.request(http.MethodPost, "/api/v1/games", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var state response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	return state
}

func (ts *testServer) startGame(t *testing.T, id, mode string) response.GameState {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/games/"+id+"/start", map[string]string{"mode": mode})
	require.Equal(t, http.StatusOK, rr.Code)

	var state response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	return state
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	state := ts.createGame(t)
	assert.Equal(t, "APITEST00001", state.ID)
	assert.Equal(t, "idle", state.Status)
	assert.Zero(t, state.Score)
	assert.Empty(t, state.Blocks)
}

func TestGetGameNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/NOPE", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

func TestStartGameClassic(t *testing.T) {
	ts := newTestServer(t)
	state := ts.createGame(t)

	state = ts.startGame(t, state.ID, "classic")
	assert.Equal(t, "playing", state.Status)
	assert.Equal(t, "classic", state.Mode)
	assert.Equal(t, 10, state.Target)
	assert.Len(t, state.Blocks, 18)
}

func TestStartGameInvalidMode(t *testing.T) {
	ts := newTestServer(t)
	state := ts.createGame(t)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+state.ID+"/start", map[string]string{"mode": "turbo"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_MODE")
}

func TestStartGameInvalidBody(t *testing.T) {
	ts := newTestServer(t)
	state := ts.createGame(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/games/"+state.ID+"/start", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestSelectBlocksToMatch(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t)
	state := ts.startGame(t, created.ID, "classic")

	// Every block is a 1 and the target is 10;
	// toggle nine blocks, then the tenth completes the match
	var last response.GameState
	for i, block := range state.Blocks[:10] {
		rr := ts.request(http.MethodPost, "/api/v1/games/"+state.ID+"/select", map[string]int64{"block_id": block.ID})
		require.Equal(t, http.StatusOK, rr.Code)
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &last))

		if i < 9 {
			assert.Equal(t, i+1, last.SelectionSum)
		}
	}

	assert.Equal(t, 100, last.Score)
	assert.Empty(t, last.Selection)
	assert.Zero(t, last.SelectionSum)
	// Classic mode spawns a fresh bottom row after the match
	assert.Len(t, last.Blocks, 14)
	assert.Equal(t, 100, last.HighScore)
}

func TestSelectBlockUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games/NOPE/select", map[string]int64{"block_id": 1})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHomeReturnsToIdle(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t)
	ts.startGame(t, created.ID, "classic")

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/home", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var state response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, "idle", state.Status)
	assert.Zero(t, state.Score)
	assert.Empty(t, state.Blocks)
}

func TestTutorialRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/tutorial/open", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var state response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, "tutorial", state.Status)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/tutorial/close", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, "idle", state.Status)
}

func TestCloseGame(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t)

	rr := ts.request(http.MethodDelete, "/api/v1/games/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHighScoreEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/highscore", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var high response.HighScore
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &high))
	assert.Zero(t, high.HighScore)

	// A match pushes the running high score through the service
	created := ts.createGame(t)
	state := ts.startGame(t, created.ID, "classic")
	for _, block := range state.Blocks[:10] {
		ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/select", map[string]int64{"block_id": block.ID})
	}

	rr = ts.request(http.MethodGet, "/api/v1/highscore", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &high))
	assert.Equal(t, 100, high.HighScore)
}

func TestListRecords(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/records", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var list response.GameRecordList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list.Records)
}

func TestListRecordsInvalidLimit(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/records?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}
