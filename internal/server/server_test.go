package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barragoon/internal/game"
)

func testServer() *Server {
	return New(zerolog.New(io.Discard), "")
}

func createGame(t *testing.T, router http.Handler, body string) gameState {
	t.Helper()

	var buf io.Reader
	if body != "" {
		buf = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/games", buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var state gameState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	return state
}

func TestCreateGame(t *testing.T) {
	router := testServer().Router()

	state := createGame(t, router, "")

	assert.NotEmpty(t, state.ID)
	assert.Equal(t, game.InitialFEN, state.FEN)
	assert.Equal(t, "white", state.Turn)
	assert.Empty(t, state.Moves)
}

func TestCreateGameFromFEN(t *testing.T) {
	router := testServer().Router()

	state := createGame(t, router, `{"fen": "7/7/7/7/3Z3/7/7/7/7 b"}`)

	assert.Equal(t, "7/7/7/7/3Z3/7/7/7/7", state.FEN)
	assert.Equal(t, "brown", state.Turn)
}

func TestCreateGameInvalidFEN(t *testing.T) {
	router := testServer().Router()

	req := httptest.NewRequest(http.MethodPost, "/games", bytes.NewBufferString(`{"fen": "8/7"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetGame(t *testing.T) {
	router := testServer().Router()
	state := createGame(t, router, "")

	req := httptest.NewRequest(http.MethodGet, "/games/"+state.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got gameState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, state.ID, got.ID)
	assert.Equal(t, game.InitialFEN, got.FEN)
	assert.Contains(t, got.Board, "9 . v d . d v .")
}

func TestGetGameNotFound(t *testing.T) {
	router := testServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/games/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListMoves(t *testing.T) {
	router := testServer().Router()
	state := createGame(t, router, "")

	req := httptest.NewRequest(http.MethodGet, "/games/"+state.ID+"/moves", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string][]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got["moves"], 28)
	assert.Contains(t, got["moves"], "Zc2c4")
}

func TestPlayMove(t *testing.T) {
	router := testServer().Router()
	state := createGame(t, router, "")

	body := bytes.NewBufferString(`{"move": "Zc2c4"}`)
	req := httptest.NewRequest(http.MethodPost, "/games/"+state.ID+"/moves", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got gameState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "brown", got.Turn)
	assert.Equal(t, []string{"Zc2c4"}, got.Moves)
	assert.NotEqual(t, game.InitialFEN, got.FEN)
}

func TestPlayIllegalMove(t *testing.T) {
	router := testServer().Router()
	state := createGame(t, router, "")

	body := bytes.NewBufferString(`{"move": "Za1a9"}`)
	req := httptest.NewRequest(http.MethodPost, "/games/"+state.ID+"/moves", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Session untouched.
	req = httptest.NewRequest(http.MethodGet, "/games/"+state.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var got gameState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, game.InitialFEN, got.FEN)
	assert.Empty(t, got.Moves)
}

func TestPlayMoveBadBody(t *testing.T) {
	router := testServer().Router()
	state := createGame(t, router, "")

	body := bytes.NewBufferString(`not json`)
	req := httptest.NewRequest(http.MethodPost, "/games/"+state.ID+"/moves", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIndexPage(t *testing.T) {
	srv := testServer()
	router := srv.Router()
	state := createGame(t, router, "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), state.ID)
}

func TestBoardPage(t *testing.T) {
	router := testServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/board", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "table class=\"board\"")
	assert.Contains(t, body, game.InitialFEN)
	assert.Contains(t, body, ">Z<")
}

func TestBoardPageSquareParity(t *testing.T) {
	router := testServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/board", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	// Even rank+file sums are light: a9 is empty and light, b9 holds the
	// brown four on a dark square.
	assert.Contains(t, body, `<td class="light"></td><td class="dark brown-tile">v</td>`)
	// a1 (both indices zero) is light.
	assert.Contains(t, body, `<th>1</th>
<td class="light"></td>`)
}

func TestBoardPageCustomFEN(t *testing.T) {
	router := testServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/board?fen=7/7/7/7/3Z3/7/7/7/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "7/7/7/7/3Z3/7/7/7/7")
}

func TestBoardPageInvalidFEN(t *testing.T) {
	router := testServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/board?fen=8/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
