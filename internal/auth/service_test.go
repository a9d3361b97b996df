package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verbo-blog/verbo/internal/shared"
)

type memoryRepo struct {
	users map[string]User
}

func (m *memoryRepo) FindByHandle(_ context.Context, handle string) (*User, error) {
	user, ok := m.users[handle]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	return &user, nil
}

func newTestService(t *testing.T, users ...User) *Service {
	t.Helper()
	repo := &memoryRepo{users: map[string]User{}}
	for _, u := range users {
		repo.users[u.Handle] = u
	}
	return NewService(repo, NewPasswordHasher(4), NewIssuer("test-secret", time.Hour))
}

func storedUser(t *testing.T, handle, password string) User {
	t.Helper()
	digest, err := NewPasswordHasher(4).Hash(password)
	require.NoError(t, err)
	return User{ID: 1, Name: "Root", Handle: handle, PasswordHash: digest, Avatar: "https://example.com/root.png"}
}

func TestValidateCredentialsUnknownHandle(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.ValidateCredentials(context.Background(), "ghost@root.com", "rootroot")
	require.ErrorIs(t, err, shared.ErrUserNotFound)
	require.Nil(t, user)
}

func TestValidateCredentialsWrongPassword(t *testing.T) {
	svc := newTestService(t, storedUser(t, "root@root.com", "rootroot"))

	user, err := svc.ValidateCredentials(context.Background(), "root@root.com", "wrongpass")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestValidateCredentialsSuccessRedactsHash(t *testing.T) {
	svc := newTestService(t, storedUser(t, "root@root.com", "rootroot"))

	user, err := svc.ValidateCredentials(context.Background(), "root@root.com", "rootroot")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "root@root.com", user.Handle)
	require.Empty(t, user.PasswordHash)
}

func TestLoginUnknownHandle(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), "ghost@root.com", "rootroot")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
	require.Nil(t, resp)
}

func TestLoginIssuesBearerToken(t *testing.T) {
	svc := newTestService(t, storedUser(t, "root@root.com", "rootroot"))

	resp, err := svc.Login(context.Background(), "root@root.com", "rootroot")
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.ID)
	require.Equal(t, "root@root.com", resp.Handle)
	require.Empty(t, resp.Password)
	require.True(t, strings.HasPrefix(resp.Token, BearerScheme))

	claims, err := NewIssuer("test-secret", time.Hour).Verify(strings.TrimPrefix(resp.Token, BearerScheme))
	require.NoError(t, err)
	require.Equal(t, "root@root.com", claims.Subject)
}

func TestLoginDoesNotCheckPassword(t *testing.T) {
	// Login issues a token for any stored handle. Password checking belongs
	// to ValidateCredentials, which the HTTP handler runs first.
	svc := newTestService(t, storedUser(t, "root@root.com", "rootroot"))

	resp, err := svc.Login(context.Background(), "root@root.com", "not-the-password")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(resp.Token, BearerScheme))
}
