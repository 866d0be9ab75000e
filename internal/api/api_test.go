package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/gatherly/internal/api/recovery"
	"github.com/gatherly/gatherly/internal/app/activities"
	"github.com/gatherly/gatherly/internal/mediator"
	"github.com/gatherly/gatherly/internal/model"
	"github.com/gatherly/gatherly/internal/storage"
	"github.com/gatherly/gatherly/internal/storage/sqlite"
)

func newTestServer(t *testing.T) (*httptest.Server, storage.Store) {
	t.Helper()
	db, err := sqlite.OpenInMemory()
	require.NoError(t, err)
	st := sqlite.NewWithDB(db)

	d := mediator.New()
	require.NoError(t, activities.Register(d, st))

	srv := httptest.NewServer(NewRouter(d, st, true))
	t.Cleanup(func() {
		srv.Close()
		_ = st.Close()
	})
	return srv, st
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestActivityLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	base := srv.URL + "/api/activities"

	a := model.Activity{
		ID:          uuid.New(),
		Title:       "Run",
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Description: "morning run",
		Category:    "sport",
		City:        "X",
		Venue:       "Y",
	}

	resp := doJSON(t, http.MethodPost, base, a)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]model.Activity](t, resp)
	require.Len(t, list, 1)
	require.Equal(t, "Run", list[0].Title)

	a.City = "Z"
	resp = doJSON(t, http.MethodPut, fmt.Sprintf("%s/%s", base, a.ID), a)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, http.MethodGet, fmt.Sprintf("%s/%s", base, a.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[model.Activity](t, resp)
	require.Equal(t, "Z", got.City)
	require.Equal(t, "Run", got.Title)

	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/%s", base, a.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, http.MethodGet, base, nil)
	list = decode[[]model.Activity](t, resp)
	require.Empty(t, list)

	resp = doJSON(t, http.MethodGet, fmt.Sprintf("%s/%s", base, a.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCreateValidationErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	a := model.Activity{ID: uuid.New(), Date: time.Now().UTC()}
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/activities", a)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[struct {
		Errors map[string][]string `json:"errors"`
	}](t, resp)
	for _, field := range []string{"title", "description", "category", "city", "venue"} {
		require.Contains(t, body.Errors, field)
	}
}

func TestMalformedIDOnReadIsKeyedValidationError(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/activities/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[struct {
		Errors map[string][]string `json:"errors"`
	}](t, resp)
	require.Contains(t, body.Errors, "id")
}

func TestInvalidJSONBody(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/activities", "application/json", bytes.NewBufferString("{nope"))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	require.Equal(t, "invalid JSON", body["error"])
}

func TestUpdateUnknownIDIsBusinessFailure(t *testing.T) {
	srv, _ := newTestServer(t)

	a := model.Activity{
		ID: uuid.New(), Title: "Run", Date: time.Now().UTC(),
		Description: "d", Category: "sport", City: "X", Venue: "Y",
	}
	resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/activities/%s", srv.URL, a.ID), a)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	require.Equal(t, "failed to update activity", body["error"])
}

func TestDeleteUnknownIDIsNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/activities/%s", srv.URL, uuid.New()), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestStorageFaultHitsExceptionBoundary(t *testing.T) {
	srv, st := newTestServer(t)

	// Kill the backing store so the list query faults.
	require.NoError(t, st.Close())

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/activities", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decode[recovery.ErrorBody](t, resp)
	require.Equal(t, 500, body.StatusCode)
	require.NotEmpty(t, body.Message)
	require.NotEmpty(t, body.Details) // development mode carries the trace
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	require.Equal(t, "healthy", body["status"])
}
