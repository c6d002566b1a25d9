package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/blog-service/internal/domain"
)

// testClock hands out strictly increasing timestamps so updated_at
// comparisons behave like the database's NOW() under load.
type testClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newTestClock() *testClock {
	return &testClock{now: time.Now(), step: time.Millisecond}
}

func (c *testClock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	clock    *testClock
	accounts map[string]*domain.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{clock: newTestClock(), accounts: make(map[string]*domain.Account)}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account.ID = uuid.NewString()
	now := r.clock.next()
	account.CreatedAt = now
	account.UpdatedAt = now
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAccountRepo) setStatus(id string, status domain.AccountStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if account, ok := r.accounts[id]; ok {
		account.Status = status
	}
}

type fakePostRepo struct {
	mu    sync.Mutex
	clock *testClock
	posts map[string]*domain.Post
	order []string
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{clock: newTestClock(), posts: make(map[string]*domain.Post)}
}

func (r *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = uuid.NewString()
	now := r.clock.next()
	post.CreatedAt = now
	post.UpdatedAt = now
	post.IsDeleted = false
	copied := *post
	r.posts[post.ID] = &copied
	r.order = append(r.order, post.ID)
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *post
	return &copied, nil
}

func (r *fakePostRepo) ListByAuthor(_ context.Context, authorID string) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Post
	// creation order is reversed to mimic ORDER BY created_at DESC
	for i := len(r.order) - 1; i >= 0; i-- {
		post := r.posts[r.order[i]]
		if post.AuthorID == authorID && !post.IsDeleted {
			result = append(result, *post)
		}
	}
	return result, nil
}

func (r *fakePostRepo) Update(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.posts[post.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Title = post.Title
	stored.Content = post.Content
	stored.UpdatedAt = r.clock.next()
	post.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *fakePostRepo) SoftDelete(_ context.Context, id string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.posts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	stored.IsDeleted = true
	stored.UpdatedAt = r.clock.next()
	copied := *stored
	return &copied, nil
}
