package themes

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/verbo-blog/verbo/internal/auth"
)

func themesServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	issuer := auth.NewIssuer("themes-test-secret", time.Hour)
	handler := NewHandler(logger, NewService(newMemoryRepo()), auth.RequireAuth(issuer, logger))

	r := chi.NewRouter()
	r.Route("/themes", handler.MountRoutes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	token, err := issuer.Sign("root@root.com")
	require.NoError(t, err)
	return srv, auth.BearerScheme + token
}

func themesDo(t *testing.T, srv *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestThemesRequireToken(t *testing.T) {
	srv, _ := themesServer(t)

	resp := themesDo(t, srv, http.MethodGet, "/themes/", "", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestThemesCrudFlow(t *testing.T) {
	srv, token := themesServer(t)

	resp := themesDo(t, srv, http.MethodPost, "/themes/", token, `{"description":"Tecnologia"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created ThemeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, "Tecnologia", created.Description)

	resp = themesDo(t, srv, http.MethodGet, "/themes/description/tecno", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var found []ThemeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&found))
	require.Len(t, found, 1)

	resp = themesDo(t, srv, http.MethodPut, "/themes/1", token, `{"description":"Viagens"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = themesDo(t, srv, http.MethodDelete, "/themes/1", token, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = themesDo(t, srv, http.MethodGet, "/themes/1", token, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestThemesCreateEmptyDescription(t *testing.T) {
	srv, token := themesServer(t)

	resp := themesDo(t, srv, http.MethodPost, "/themes/", token, `{"description":""}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
