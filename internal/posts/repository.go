package posts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verbo-blog/verbo/internal/platform/db"
	"github.com/verbo-blog/verbo/internal/shared"
)

// RepositoryPort defines data access methods for posts.
type RepositoryPort interface {
	Create(ctx context.Context, post Post) (*Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	Recent(ctx context.Context, limit int) ([]Post, error)
	SearchByTitle(ctx context.Context, title string) ([]Post, error)
	Update(ctx context.Context, post Post) (*Post, error)
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

const postSelect = `
	SELECT p.id, p.title, p.text, p.theme_id, p.user_id, p.created_at, p.updated_at,
	       t.description, u.name
	FROM posts p
	JOIN themes t ON t.id = p.theme_id
	JOIN users u ON u.id = p.user_id`

// Create inserts a post and returns it with joined labels. The insert and the
// joined re-read run in one transaction so the returned row cannot be stale.
func (r *Repository) Create(ctx context.Context, post Post) (*Post, error) {
	var created *Post
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var id int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO posts (title, text, title_search, theme_id, user_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			post.Title, post.Text, FoldForSearch(post.Title), post.ThemeID, post.UserID).Scan(&id); err != nil {
			return err
		}
		row := tx.QueryRow(ctx, postSelect+` WHERE p.id = $1`, id)
		found, err := scanPost(row)
		if err != nil {
			return err
		}
		created = found
		return nil
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: unknown theme or user", shared.ErrValidation)
		}
		return nil, err
	}
	return created, nil
}

// GetByID returns a post by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Post, error) {
	row := r.pool.QueryRow(ctx, postSelect+` WHERE p.id = $1`, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// List returns all posts ordered by id.
func (r *Repository) List(ctx context.Context) ([]Post, error) {
	rows, err := r.pool.Query(ctx, postSelect+` ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

// Recent returns the newest posts first, up to limit.
func (r *Repository) Recent(ctx context.Context, limit int) ([]Post, error) {
	rows, err := r.pool.Query(ctx, postSelect+` ORDER BY p.created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

// SearchByTitle returns posts whose folded title contains the folded
// fragment.
func (r *Repository) SearchByTitle(ctx context.Context, title string) ([]Post, error) {
	rows, err := r.pool.Query(ctx,
		postSelect+` WHERE p.title_search LIKE $1 ORDER BY p.id`,
		"%"+FoldForSearch(title)+"%")
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

// Update rewrites a post.
func (r *Repository) Update(ctx context.Context, post Post) (*Post, error) {
	var updated *Post
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE posts SET title = $1, text = $2, title_search = $3, theme_id = $4, updated_at = NOW() WHERE id = $5`,
			post.Title, post.Text, FoldForSearch(post.Title), post.ThemeID, post.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return shared.ErrNotFound
		}
		row := tx.QueryRow(ctx, postSelect+` WHERE p.id = $1`, post.ID)
		found, err := scanPost(row)
		if err != nil {
			return err
		}
		updated = found
		return nil
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: unknown theme", shared.ErrValidation)
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a post.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (*Post, error) {
	var post Post
	if err := row.Scan(&post.ID, &post.Title, &post.Text, &post.ThemeID, &post.UserID,
		&post.CreatedAt, &post.UpdatedAt, &post.ThemeDescription, &post.AuthorName); err != nil {
		return nil, err
	}
	return &post, nil
}

func collectPosts(rows pgx.Rows) ([]Post, error) {
	defer rows.Close()
	var list []Post
	for rows.Next() {
		var post Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Text, &post.ThemeID, &post.UserID,
			&post.CreatedAt, &post.UpdatedAt, &post.ThemeDescription, &post.AuthorName); err != nil {
			return nil, err
		}
		list = append(list, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
