package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/hint-server/internal/config"
	"github.com/robalobadob/wordle/apps/hint-server/internal/db"
	"github.com/robalobadob/wordle/apps/hint-server/internal/hint"
	"github.com/robalobadob/wordle/apps/hint-server/internal/store"
	"github.com/robalobadob/wordle/apps/hint-server/internal/words"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	dict, err := words.New([]string{"crane", "slate", "trace", "pious", "mound", "bumpy"})
	require.NoError(t, err)

	conn, err := db.Open(db.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.Migrate(conn))

	return New(config.Default(), dict, store.NewSQLStore(conn), conn).Router()
}

func do(t *testing.T, h http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func board(t *testing.T, rows ...string) hint.Board {
	t.Helper()
	b, err := hint.ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func TestHealthAndWords(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/debug/words", nil)
	assert.JSONEq(t, `{"words":6}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHints(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/hints", hintsReq{Board: board(t, "crane/xxxxx")})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[hintsRes](t, rec)
	assert.Equal(t, []string{"pious", "bumpy"}, res.Candidates)
	assert.Equal(t, 2, res.Matched)
	assert.Equal(t, 6, res.Total)
	assert.Equal(t, "narrowing to 2 of 6 words", res.Message)
	assert.Len(t, res.Ranked, 2)
	assert.NotEmpty(t, res.TopPicks)
}

func TestHints_EmptyBoardIsStable(t *testing.T) {
	h := newTestServer(t)

	first := decode[hintsRes](t, do(t, h, http.MethodPost, "/hints", hintsReq{}))
	second := decode[hintsRes](t, do(t, h, http.MethodPost, "/hints", hintsReq{}))
	assert.Equal(t, 6, first.Matched)
	assert.LessOrEqual(t, len(first.TopPicks), 3)
	assert.Equal(t, first.TopPicks, second.TopPicks)
}

func TestHints_BadInput(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/hints", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rows := make([]string, maxRows+1)
	for i := range rows {
		rows[i] = "crane/xxxxx"
	}
	rec = do(t, h, http.MethodPost, "/hints", hintsReq{Board: board(t, rows...)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBoards_GuestLifecycle(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/boards", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode[newBoardRes](t, rec).ID
	require.NotEmpty(t, id)

	rec = do(t, h, http.MethodPut, "/boards/"+id, putBoardReq{Board: board(t, "crane/xxxxx")})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[store.Session](t, rec).Board, 1)

	rec = do(t, h, http.MethodGet, "/boards/"+id+"/hints", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[hintsRes](t, rec).Matched)

	rec = do(t, h, http.MethodDelete, "/boards/"+id+"/rows", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[store.Session](t, rec).Board)

	rec = do(t, h, http.MethodDelete, "/boards/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/boards/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func authCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == config.Default().CookieName {
			return c
		}
	}
	t.Fatal("no auth cookie")
	return nil
}

func TestAuth_SignupLoginMe(t *testing.T) {
	h := newTestServer(t)
	creds := credentials{Username: "solver_1", Password: "correct horse"}

	rec := do(t, h, http.MethodPost, "/auth/signup", creds)
	require.Equal(t, http.StatusCreated, rec.Code)
	cookie := authCookie(t, rec)

	rec = do(t, h, http.MethodPost, "/auth/signup", creds)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/auth/signup", credentials{Username: "x", Password: "correct horse"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/auth/login", credentials{Username: "solver_1", Password: "wrong password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/auth/login", creds)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodGet, "/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "solver_1", decode[authUser](t, rec).Username)

	rec = do(t, h, http.MethodGet, "/auth/me", nil, &http.Cookie{Name: cookie.Name, Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBoards_OwnedByUser(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/auth/signup", credentials{Username: "owner", Password: "password123"})
	require.Equal(t, http.StatusCreated, rec.Code)
	cookie := authCookie(t, rec)

	rec = do(t, h, http.MethodPost, "/boards", nil, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode[newBoardRes](t, rec).ID

	rec = do(t, h, http.MethodGet, "/boards/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "guests cannot see owned boards")

	rec = do(t, h, http.MethodGet, "/boards/"+id, nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/boards/mine", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decode[[]store.Session](t, rec)
	require.Len(t, mine, 1)
	assert.Equal(t, id, mine[0].ID)

	rec = do(t, h, http.MethodGet, "/boards/mine", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -1, authCookie(t, rec).MaxAge)
}
