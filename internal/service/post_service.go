package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/blog-service/internal/domain"
	"github.com/spec-kit/blog-service/internal/events"
	"github.com/spec-kit/blog-service/internal/persistence"
	"github.com/spec-kit/blog-service/internal/repository"
	apperrors "github.com/spec-kit/blog-service/pkg/util"
)

// PostService coordinates post CRUD with ownership enforcement.
type PostService struct {
	posts      repository.PostRepository
	accounts   repository.AccountRepository
	cache      *persistence.PostCache
	dispatcher events.Dispatcher
}

// PostDependencies bundles collaborators for the post service.
type PostDependencies struct {
	PostRepo    repository.PostRepository
	AccountRepo repository.AccountRepository
	Cache       *persistence.PostCache
	Dispatcher  events.Dispatcher
}

// PostUpdateInput is a partial update: nil fields are left untouched.
type PostUpdateInput struct {
	Title   *string
	Content *string
}

// NewPostService constructs the service.
func NewPostService(deps PostDependencies) *PostService {
	return &PostService{
		posts:      deps.PostRepo,
		accounts:   deps.AccountRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// Create persists a new post owned by the acting account. The directory is
// re-checked even though the session guard already authenticated the caller;
// the store, not the token, is the source of truth for authorship.
func (s *PostService) Create(ctx context.Context, actingID, title, content string) (*domain.Post, error) {
	if _, err := s.accounts.GetByID(ctx, actingID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAuthorNotFound()
		}
		return nil, apperrors.NewInternalError(err)
	}

	post := &domain.Post{
		AuthorID: actingID,
		Title:    strings.TrimSpace(title),
		Content:  content,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventPostCreated,
		AccountID: actingID,
		Payload:   events.PostCreatedPayload{PostID: post.ID, Title: post.Title},
	})
	return post, nil
}

// ListByAuthor returns the caller's non-tombstoned posts, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, actingID string) ([]domain.Post, error) {
	posts, err := s.posts.ListByAuthor(ctx, actingID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// GetByID fetches a post by identifier. Tombstoned posts stay retrievable;
// there is no ownership check on the read-by-id path.
func (s *PostService) GetByID(ctx context.Context, postID string) (*domain.Post, error) {
	if cached := s.cache.Get(ctx, postID); cached != nil {
		return cached, nil
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewPostNotFound()
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.cache.Set(ctx, post)
	return post, nil
}

// Update applies a partial update for the owning account. Checks run in
// order: existence, ownership, tombstone state.
func (s *PostService) Update(ctx context.Context, postID, actingID string, input PostUpdateInput) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewPostNotFound()
		}
		return nil, apperrors.NewInternalError(err)
	}

	if post.AuthorID != actingID {
		return nil, apperrors.NewNotOwner()
	}
	if post.IsDeleted {
		return nil, apperrors.NewPostDeleted()
	}

	if input.Title != nil {
		post.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		post.Content = *input.Content
	}

	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewPostNotFound()
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.cache.Invalidate(ctx, post.ID)
	s.publishEvent(ctx, events.Event{
		Type:      events.EventPostUpdated,
		AccountID: actingID,
		Payload:   events.PostUpdatedPayload{PostID: post.ID, Title: post.Title},
	})
	return post, nil
}

// Delete tombstones a post for the owning account. Unlike Update there is no
// already-deleted guard: re-deleting a tombstoned post succeeds again.
func (s *PostService) Delete(ctx context.Context, postID, actingID string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewPostNotFound()
		}
		return nil, apperrors.NewInternalError(err)
	}

	if post.AuthorID != actingID {
		return nil, apperrors.NewNotOwner()
	}

	deleted, err := s.posts.SoftDelete(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewPostNotFound()
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.cache.Invalidate(ctx, deleted.ID)
	s.publishEvent(ctx, events.Event{
		Type:      events.EventPostDeleted,
		AccountID: actingID,
		Payload:   events.PostDeletedPayload{PostID: deleted.ID},
	})
	return deleted, nil
}

func (s *PostService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
