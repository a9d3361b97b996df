package themes

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verbo-blog/verbo/internal/shared"
)

// RepositoryPort defines data access methods for themes.
type RepositoryPort interface {
	Create(ctx context.Context, theme Theme) (*Theme, error)
	GetByID(ctx context.Context, id int64) (*Theme, error)
	List(ctx context.Context) ([]Theme, error)
	SearchByDescription(ctx context.Context, description string) ([]Theme, error)
	Update(ctx context.Context, theme Theme) (*Theme, error)
	Delete(ctx context.Context, id int64) error
}

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const themeColumns = `id, description, created_at, updated_at`

// Create inserts a theme.
func (r *Repository) Create(ctx context.Context, theme Theme) (*Theme, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO themes (description) VALUES ($1) RETURNING `+themeColumns,
		theme.Description)
	return scanTheme(row)
}

// GetByID returns a theme by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Theme, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+themeColumns+` FROM themes WHERE id = $1`, id)
	theme, err := scanTheme(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return theme, nil
}

// List returns all themes ordered by id.
func (r *Repository) List(ctx context.Context) ([]Theme, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+themeColumns+` FROM themes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectThemes(rows)
}

// SearchByDescription returns themes whose description contains the fragment,
// case-insensitively.
func (r *Repository) SearchByDescription(ctx context.Context, description string) ([]Theme, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+themeColumns+` FROM themes WHERE description ILIKE $1 ORDER BY id`,
		"%"+description+"%")
	if err != nil {
		return nil, err
	}
	return collectThemes(rows)
}

// Update rewrites a theme's description.
func (r *Repository) Update(ctx context.Context, theme Theme) (*Theme, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE themes SET description = $1, updated_at = NOW() WHERE id = $2 RETURNING `+themeColumns,
		theme.Description, theme.ID)
	updated, err := scanTheme(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a theme. Themes still referenced by posts cannot be removed.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM themes WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: theme still referenced by posts", shared.ErrValidation)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func scanTheme(row pgx.Row) (*Theme, error) {
	var theme Theme
	if err := row.Scan(&theme.ID, &theme.Description, &theme.CreatedAt, &theme.UpdatedAt); err != nil {
		return nil, err
	}
	return &theme, nil
}

func collectThemes(rows pgx.Rows) ([]Theme, error) {
	defer rows.Close()
	var list []Theme
	for rows.Next() {
		var theme Theme
		if err := rows.Scan(&theme.ID, &theme.Description, &theme.CreatedAt, &theme.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, theme)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
