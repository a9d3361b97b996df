package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func loginServer(t *testing.T, users ...User) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, newTestService(t, users...), nil)

	r := chi.NewRouter()
	r.Route("/users", handler.MountRoutes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postLogin(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := srv.Client().Post(srv.URL+"/users/login", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandleLoginSuccess(t *testing.T) {
	srv := loginServer(t, storedUser(t, "root@root.com", "rootroot"))

	resp := postLogin(t, srv, `{"handle":"root@root.com","password":"rootroot"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `"token":"Bearer `)
	require.Contains(t, string(body), `"password":""`)
}

func TestHandleLoginWrongPassword(t *testing.T) {
	srv := loginServer(t, storedUser(t, "root@root.com", "rootroot"))

	resp := postLogin(t, srv, `{"handle":"root@root.com","password":"wrongpass"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleLoginUnknownHandle(t *testing.T) {
	srv := loginServer(t)

	resp := postLogin(t, srv, `{"handle":"ghost@root.com","password":"rootroot"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleLoginMalformedBody(t *testing.T) {
	srv := loginServer(t)

	resp := postLogin(t, srv, `{"handle":`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleLoginRejectsNonEmailHandle(t *testing.T) {
	srv := loginServer(t)

	resp := postLogin(t, srv, `{"handle":"not-an-email","password":"rootroot"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleLoginRateLimited(t *testing.T) {
	srv := loginServer(t, storedUser(t, "root@root.com", "rootroot"))

	var last int
	for i := 0; i < 12; i++ {
		resp := postLogin(t, srv, `{"handle":"root@root.com","password":"rootroot"}`)
		last = resp.StatusCode
	}
	require.Equal(t, http.StatusTooManyRequests, last)
}

func TestHandleLoginTokenTTL(t *testing.T) {
	repo := &memoryRepo{users: map[string]User{
		"root@root.com": storedUser(t, "root@root.com", "rootroot"),
	}}
	issuer := NewIssuer("ttl-secret", 24*time.Hour)
	svc := NewService(repo, NewPasswordHasher(4), issuer)

	resp, err := svc.Login(context.Background(), "root@root.com", "rootroot")
	require.NoError(t, err)

	claims, err := issuer.Verify(strings.TrimPrefix(resp.Token, BearerScheme))
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}
