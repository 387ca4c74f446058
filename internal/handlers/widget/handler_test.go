package widget_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/onja-org/w2-scss-lab/internal/data"
	"github.com/onja-org/w2-scss-lab/internal/handlers/widget"
	"github.com/onja-org/w2-scss-lab/internal/models"
	"github.com/onja-org/w2-scss-lab/internal/repository/session"
)

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) ObserveDismissal() {
	m.Called()
}

type failingStore struct{}

func (failingStore) Save(context.Context, string, models.WidgetState) error {
	return errors.New("redis down")
}

func (failingStore) Load(context.Context, string) (models.WidgetState, error) {
	return models.WidgetState{}, errors.New("redis down")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("redis down")
}

type testServer struct {
	router   *gin.Engine
	recorder *mockRecorder
}

func newTestServer(store interface {
	Save(context.Context, string, models.WidgetState) error
	Load(context.Context, string) (models.WidgetState, error)
	Delete(context.Context, string) error
},
) *testServer {
	gin.SetMode(gin.TestMode)

	rec := &mockRecorder{}
	h := widget.NewHandler(data.Madagascar(), store, rec, zerolog.New(io.Discard))

	router := gin.New()
	sessions := router.Group("/api/widget/sessions")
	sessions.POST("", h.Create)
	sessions.GET("/:id", h.Get)
	sessions.POST("/:id/input", h.Input)
	sessions.POST("/:id/select", h.Select)
	sessions.POST("/:id/submit", h.Submit)
	sessions.POST("/:id/click", h.Click)
	sessions.DELETE("/:id", h.Delete)

	return &testServer{router: router, recorder: rec}
}

func (s *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) widget.SessionResponse {
	t.Helper()
	var resp widget.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *testServer) create(t *testing.T) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/widget/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decode(t, rec).ID
}

func TestWidget_ConcurrentSessionsStayIsolated(t *testing.T) {
	srv := newTestServer(session.NewMemoryStore())
	texts := []string{"to", "ma", "an", "fi", "Paris"}

	ids := make([]string, len(texts))
	for i := range texts {
		ids[i] = srv.create(t)
	}

	codes := make([]int, len(texts))
	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/widget/sessions/"+ids[i]+"/input",
				strings.NewReader(`{"text":"`+text+`"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			srv.router.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}(i, text)
	}
	wg.Wait()

	for i, text := range texts {
		assert.Equal(t, http.StatusOK, codes[i], text)

		rec := srv.do(t, http.MethodGet, "/api/widget/sessions/"+ids[i], nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, text, decode(t, rec).State.QueryText)
	}
}

func TestWidget_FullFlow(t *testing.T) {
	srv := newTestServer(session.NewMemoryStore())
	id := srv.create(t)
	base := "/api/widget/sessions/" + id

	rec := srv.do(t, http.MethodPost, base+"/input", widget.InputRequest{Text: "to"})
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode(t, rec).State
	assert.True(t, state.SuggestionsVisible)
	assert.Equal(t, []string{"Toamasina", "Toliara"}, state.Suggestions)

	rec = srv.do(t, http.MethodPost, base+"/select", widget.SelectRequest{City: "Toliara"})
	require.Equal(t, http.StatusOK, rec.Code)
	state = decode(t, rec).State
	assert.Equal(t, "Toliara", state.QueryText)
	assert.False(t, state.SuggestionsVisible)

	rec = srv.do(t, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	state = decode(t, rec).State
	require.NotNil(t, state.Result)
	assert.Equal(t, "Toliara", state.Result.City)
	assert.Equal(t, "https://openweathermap.org/img/wn/50d@2x.png", state.Result.ImageURL)

	rec = srv.do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, state, decode(t, rec).State)

	rec = srv.do(t, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWidget_EmptyInputHidesSuggestions(t *testing.T) {
	srv := newTestServer(session.NewMemoryStore())
	base := "/api/widget/sessions/" + srv.create(t)

	srv.do(t, http.MethodPost, base+"/input", widget.InputRequest{Text: "to"})
	rec := srv.do(t, http.MethodPost, base+"/input", widget.InputRequest{Text: ""})

	require.Equal(t, http.StatusOK, rec.Code)
	state := decode(t, rec).State
	assert.False(t, state.SuggestionsVisible)
	assert.Empty(t, state.Suggestions)
}

func TestWidget_SubmitNotFound(t *testing.T) {
	srv := newTestServer(session.NewMemoryStore())
	base := "/api/widget/sessions/" + srv.create(t)

	srv.do(t, http.MethodPost, base+"/input", widget.InputRequest{Text: "Paris"})
	rec := srv.do(t, http.MethodPost, base+"/submit", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	state := decode(t, rec).State
	assert.Nil(t, state.Result)
	assert.Equal(t, "City not found in our Madagascar data.", state.Message)
	assert.Equal(t, "Paris", state.QueryText)
}

func TestWidget_SelectUnsuggested(t *testing.T) {
	srv := newTestServer(session.NewMemoryStore())
	base := "/api/widget/sessions/" + srv.create(t)

	srv.do(t, http.MethodPost, base+"/input", widget.InputRequest{Text: "to"})
	rec := srv.do(t, http.MethodPost, base+"/select", widget.SelectRequest{City: "Mahajanga"})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWidget_SelectMissingCity(t *testing.T) {
	srv := newTestServer(session.NewMemoryStore())
	base := "/api/widget/sessions/" + srv.create(t)

	rec := srv.do(t, http.MethodPost, base+"/select", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWidget_ClickOutsideDismisses(t *testing.T) {
	srv := newTestServer(session.NewMemoryStore())
	srv.recorder.On("ObserveDismissal").Once()
	t.Cleanup(func() {
		srv.recorder.AssertExpectations(t)
	})
	base := "/api/widget/sessions/" + srv.create(t)

	srv.do(t, http.MethodPost, base+"/input", widget.InputRequest{Text: "to"})

	rec := srv.do(t, http.MethodPost, base+"/click", widget.ClickRequest{Target: "cityInput"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode(t, rec).State.SuggestionsVisible)

	rec = srv.do(t, http.MethodPost, base+"/click", widget.ClickRequest{Target: "weatherInfo"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode(t, rec).State.SuggestionsVisible)
}

func TestWidget_MalformedBody(t *testing.T) {
	srv := newTestServer(session.NewMemoryStore())
	base := "/api/widget/sessions/" + srv.create(t)

	req, err := http.NewRequest(http.MethodPost, base+"/input", bytes.NewBufferString("{"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWidget_UnknownSession(t *testing.T) {
	srv := newTestServer(session.NewMemoryStore())

	rec := srv.do(t, http.MethodPost, "/api/widget/sessions/nope/submit", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Session not found"}`, rec.Body.String())
}

func TestWidget_StoreFailure(t *testing.T) {
	srv := newTestServer(failingStore{})

	rec := srv.do(t, http.MethodPost, "/api/widget/sessions", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/widget/sessions/abc", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
