package themes

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verbo-blog/verbo/internal/shared"
)

type memoryRepo struct {
	nextID     int64
	byID       map[int64]Theme
	referenced map[int64]bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: map[int64]Theme{}, referenced: map[int64]bool{}}
}

func (m *memoryRepo) Create(_ context.Context, theme Theme) (*Theme, error) {
	m.nextID++
	theme.ID = m.nextID
	theme.CreatedAt = time.Now()
	theme.UpdatedAt = theme.CreatedAt
	m.byID[theme.ID] = theme
	return &theme, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id int64) (*Theme, error) {
	theme, ok := m.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &theme, nil
}

func (m *memoryRepo) List(_ context.Context) ([]Theme, error) {
	list := make([]Theme, 0, len(m.byID))
	for id := int64(1); id <= m.nextID; id++ {
		if theme, ok := m.byID[id]; ok {
			list = append(list, theme)
		}
	}
	return list, nil
}

func (m *memoryRepo) SearchByDescription(_ context.Context, description string) ([]Theme, error) {
	var list []Theme
	needle := strings.ToLower(description)
	for id := int64(1); id <= m.nextID; id++ {
		theme, ok := m.byID[id]
		if ok && strings.Contains(strings.ToLower(theme.Description), needle) {
			list = append(list, theme)
		}
	}
	return list, nil
}

func (m *memoryRepo) Update(_ context.Context, theme Theme) (*Theme, error) {
	current, ok := m.byID[theme.ID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	theme.CreatedAt = current.CreatedAt
	theme.UpdatedAt = time.Now()
	m.byID[theme.ID] = theme
	return &theme, nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return shared.ErrNotFound
	}
	if m.referenced[id] {
		return fmt.Errorf("%w: theme still referenced by posts", shared.ErrValidation)
	}
	delete(m.byID, id)
	return nil
}

func TestCreateTrimsDescription(t *testing.T) {
	svc := NewService(newMemoryRepo())

	theme, err := svc.Create(context.Background(), ThemeRequest{Description: "  Tecnologia  "})
	require.NoError(t, err)
	require.Equal(t, "Tecnologia", theme.Description)
}

func TestSearchMatchesSubstringCaseInsensitive(t *testing.T) {
	svc := NewService(newMemoryRepo())
	_, err := svc.Create(context.Background(), ThemeRequest{Description: "Tecnologia"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), ThemeRequest{Description: "Viagens"})
	require.NoError(t, err)

	found, err := svc.Search(context.Background(), "tecno")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Tecnologia", found[0].Description)
}

func TestUpdateUnknownTheme(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Update(context.Background(), 42, ThemeRequest{Description: "Tecnologia"})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDeleteReferencedTheme(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	theme, err := svc.Create(context.Background(), ThemeRequest{Description: "Tecnologia"})
	require.NoError(t, err)
	repo.referenced[theme.ID] = true

	err = svc.Delete(context.Background(), theme.ID)
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestDeleteRemovesTheme(t *testing.T) {
	svc := NewService(newMemoryRepo())
	theme, err := svc.Create(context.Background(), ThemeRequest{Description: "Tecnologia"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), theme.ID))
	_, err = svc.Get(context.Background(), theme.ID)
	require.ErrorIs(t, err, shared.ErrNotFound)
}
