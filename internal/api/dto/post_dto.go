package dto

import (
	"time"

	"github.com/spec-kit/blog-service/internal/domain"
)

// PostCreateRequest payload for creating a post.
type PostCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostUpdateRequest payload for partial updates; absent fields stay unchanged.
type PostUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// PostView is the transport shape of a post.
type PostView struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPostView maps the domain record to its transport shape.
func NewPostView(post *domain.Post) PostView {
	return PostView{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Content:   post.Content,
		IsDeleted: post.IsDeleted,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// NewPostViews maps a post slice.
func NewPostViews(posts []domain.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for i := range posts {
		views = append(views, NewPostView(&posts[i]))
	}
	return views
}
