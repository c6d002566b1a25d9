package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/blog-service/internal/domain"
)

// PostRepository encapsulates post persistence with soft-delete semantics.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	SoftDelete(ctx context.Context, id string) (*domain.Post, error)
}

type postRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository instantiates the repository.
func NewPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postRepository{pool: pool}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	const query = `
        INSERT INTO posts (author_id, title, content, is_deleted)
        VALUES ($1, $2, $3, FALSE)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		post.AuthorID,
		post.Title,
		post.Content,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	const query = `
        SELECT id, author_id, title, content, is_deleted, created_at, updated_at
        FROM posts WHERE id=$1`

	var post domain.Post
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.IsDeleted,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByAuthor returns the author's live posts, newest-created-first.
// Tombstoned rows are excluded here but remain reachable via GetByID.
func (r *postRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	const query = `
        SELECT id, author_id, title, content, is_deleted, created_at, updated_at
        FROM posts
        WHERE author_id=$1 AND is_deleted=FALSE
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	const query = `
        UPDATE posts SET title=$1, content=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query,
		post.Title,
		post.Content,
		post.ID,
	).Scan(&post.UpdatedAt)
}

func (r *postRepository) SoftDelete(ctx context.Context, id string) (*domain.Post, error) {
	const query = `
        UPDATE posts SET is_deleted=TRUE, updated_at=NOW()
        WHERE id=$1
        RETURNING id, author_id, title, content, is_deleted, created_at, updated_at`

	var post domain.Post
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.IsDeleted,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	var result []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Title,
			&post.Content,
			&post.IsDeleted,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	return result, rows.Err()
}
