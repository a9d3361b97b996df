package users

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/verbo-blog/verbo/internal/auth"
	"github.com/verbo-blog/verbo/internal/shared"
)

type memoryRepo struct {
	nextID int64
	byID   map[int64]User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: map[int64]User{}}
}

func (m *memoryRepo) Create(_ context.Context, user User) (*User, error) {
	for _, existing := range m.byID {
		if existing.Handle == user.Handle {
			return nil, fmt.Errorf("%w: handle already registered", shared.ErrDuplicate)
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.byID[user.ID] = user
	return &user, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id int64) (*User, error) {
	user, ok := m.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &user, nil
}

func (m *memoryRepo) List(_ context.Context) ([]User, error) {
	list := make([]User, 0, len(m.byID))
	for id := int64(1); id <= m.nextID; id++ {
		if user, ok := m.byID[id]; ok {
			list = append(list, user)
		}
	}
	return list, nil
}

func (m *memoryRepo) Update(_ context.Context, user User) (*User, error) {
	current, ok := m.byID[user.ID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	for id, existing := range m.byID {
		if id != user.ID && existing.Handle == user.Handle {
			return nil, fmt.Errorf("%w: handle already registered", shared.ErrDuplicate)
		}
	}
	user.CreatedAt = current.CreatedAt
	user.UpdatedAt = time.Now()
	m.byID[user.ID] = user
	return &user, nil
}

func registerRoot(t *testing.T, svc *Service) *User {
	t.Helper()
	user, err := svc.Register(context.Background(), CreateUserRequest{
		Name:     "Root",
		Handle:   "root@root.com",
		Password: "rootroot",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewService(newMemoryRepo(), auth.NewPasswordHasher(4))

	user := registerRoot(t, svc)
	require.NotEqual(t, "rootroot", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("rootroot")))
}

func TestRegisterDuplicateHandle(t *testing.T) {
	svc := NewService(newMemoryRepo(), auth.NewPasswordHasher(4))
	registerRoot(t, svc)

	_, err := svc.Register(context.Background(), CreateUserRequest{
		Name:     "Other Root",
		Handle:   "root@root.com",
		Password: "otherpass",
	})
	require.ErrorIs(t, err, shared.ErrDuplicate)
}

func TestUpdateKeepsHashWhenPasswordEmpty(t *testing.T) {
	svc := NewService(newMemoryRepo(), auth.NewPasswordHasher(4))
	user := registerRoot(t, svc)

	updated, err := svc.Update(context.Background(), UpdateUserRequest{
		ID:     user.ID,
		Name:   "Root Renamed",
		Handle: "root@root.com",
	})
	require.NoError(t, err)
	require.Equal(t, "Root Renamed", updated.Name)
	require.Equal(t, user.PasswordHash, updated.PasswordHash)
}

func TestUpdateRehashesNewPassword(t *testing.T) {
	svc := NewService(newMemoryRepo(), auth.NewPasswordHasher(4))
	user := registerRoot(t, svc)

	updated, err := svc.Update(context.Background(), UpdateUserRequest{
		ID:       user.ID,
		Name:     "Root",
		Handle:   "root@root.com",
		Password: "newpassword",
	})
	require.NoError(t, err)
	require.NotEqual(t, user.PasswordHash, updated.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpassword")))
}

func TestUpdateUnknownUser(t *testing.T) {
	svc := NewService(newMemoryRepo(), auth.NewPasswordHasher(4))

	_, err := svc.Update(context.Background(), UpdateUserRequest{
		ID:     42,
		Name:   "Ghost",
		Handle: "ghost@root.com",
	})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGetAndList(t *testing.T) {
	svc := NewService(newMemoryRepo(), auth.NewPasswordHasher(4))
	user := registerRoot(t, svc)

	got, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Handle, got.Handle)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
}
