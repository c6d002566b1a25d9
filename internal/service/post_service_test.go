package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/blog-service/internal/domain"
	apperrors "github.com/spec-kit/blog-service/pkg/util"
)

type postServiceFixture struct {
	svc      *PostService
	accounts *fakeAccountRepo
	posts    *fakePostRepo
}

func newPostServiceFixture() *postServiceFixture {
	accounts := newFakeAccountRepo()
	posts := newFakePostRepo()
	svc := NewPostService(PostDependencies{
		PostRepo:    posts,
		AccountRepo: accounts,
	})
	return &postServiceFixture{svc: svc, accounts: accounts, posts: posts}
}

func (f *postServiceFixture) registerAccount(t *testing.T, email string) *domain.Account {
	t.Helper()
	account := &domain.Account{Email: email, PasswordHash: "x", Status: domain.AccountStatusActive}
	require.NoError(t, f.accounts.Create(context.Background(), account))
	return account
}

func TestPostService_Create(t *testing.T) {
	f := newPostServiceFixture()
	owner := f.registerAccount(t, "a@x.com")

	post, err := f.svc.Create(context.Background(), owner.ID, "  Hello  ", "World")
	require.NoError(t, err)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "World", post.Content)
	assert.Equal(t, owner.ID, post.AuthorID)
	assert.False(t, post.IsDeleted)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
}

func TestPostService_CreateUnknownAuthor(t *testing.T) {
	f := newPostServiceFixture()

	_, err := f.svc.Create(context.Background(), "ghost-id", "Hello", "World")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeAuthorNotFound))
}

func TestPostService_GetByID_NotFound(t *testing.T) {
	f := newPostServiceFixture()

	_, err := f.svc.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodePostNotFound))
}

func TestPostService_GetByID_NoOwnershipCheck(t *testing.T) {
	f := newPostServiceFixture()
	owner := f.registerAccount(t, "a@x.com")

	post, err := f.svc.Create(context.Background(), owner.ID, "Hello", "World")
	require.NoError(t, err)

	// read-by-id is not ownership scoped
	fetched, err := f.svc.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, fetched.ID)
}

func TestPostService_OwnershipEnforcement(t *testing.T) {
	f := newPostServiceFixture()
	owner := f.registerAccount(t, "a@x.com")
	intruder := f.registerAccount(t, "b@x.com")

	post, err := f.svc.Create(context.Background(), owner.ID, "Hello", "World")
	require.NoError(t, err)

	title := "Hijacked"
	_, err = f.svc.Update(context.Background(), post.ID, intruder.ID, PostUpdateInput{Title: &title})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotOwner))

	_, err = f.svc.Delete(context.Background(), post.ID, intruder.ID)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotOwner))

	// the owner still succeeds
	_, err = f.svc.Update(context.Background(), post.ID, owner.ID, PostUpdateInput{Title: &title})
	require.NoError(t, err)
	_, err = f.svc.Delete(context.Background(), post.ID, owner.ID)
	require.NoError(t, err)
}

func TestPostService_PartialUpdate(t *testing.T) {
	f := newPostServiceFixture()
	owner := f.registerAccount(t, "a@x.com")

	post, err := f.svc.Create(context.Background(), owner.ID, "Hello", "World")
	require.NoError(t, err)

	title := "Hi"
	updated, err := f.svc.Update(context.Background(), post.ID, owner.ID, PostUpdateInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Hi", updated.Title)
	assert.Equal(t, "World", updated.Content)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	content := "Universe"
	updated, err = f.svc.Update(context.Background(), post.ID, owner.ID, PostUpdateInput{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "Hi", updated.Title)
	assert.Equal(t, "Universe", updated.Content)
}

func TestPostService_UpdateMissingPost(t *testing.T) {
	f := newPostServiceFixture()
	owner := f.registerAccount(t, "a@x.com")

	title := "Hi"
	_, err := f.svc.Update(context.Background(), "missing", owner.ID, PostUpdateInput{Title: &title})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodePostNotFound))
}

func TestPostService_TombstoneSemantics(t *testing.T) {
	f := newPostServiceFixture()
	owner := f.registerAccount(t, "a@x.com")

	post, err := f.svc.Create(context.Background(), owner.ID, "Hello", "World")
	require.NoError(t, err)

	deleted, err := f.svc.Delete(context.Background(), post.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)
	assert.True(t, deleted.UpdatedAt.After(deleted.CreatedAt))

	// a tombstoned post rejects further content mutation
	title := "Hi"
	_, err = f.svc.Update(context.Background(), post.ID, owner.ID, PostUpdateInput{Title: &title})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodePostDeleted))

	// it disappears from listings but stays readable by id
	listed, err := f.svc.ListByAuthor(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	fetched, err := f.svc.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsDeleted)

	// the delete path carries no tombstone guard: re-delete succeeds
	again, err := f.svc.Delete(context.Background(), post.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, again.IsDeleted)
	assert.True(t, again.UpdatedAt.After(deleted.UpdatedAt))
}

func TestPostService_ListByAuthor(t *testing.T) {
	f := newPostServiceFixture()
	owner := f.registerAccount(t, "a@x.com")
	other := f.registerAccount(t, "b@x.com")

	first, err := f.svc.Create(context.Background(), owner.ID, "First", "1")
	require.NoError(t, err)
	second, err := f.svc.Create(context.Background(), owner.ID, "Second", "2")
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), other.ID, "Foreign", "3")
	require.NoError(t, err)

	listed, err := f.svc.ListByAuthor(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	// newest-created-first, scoped to the caller
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}

func TestPostService_ListByAuthorEmpty(t *testing.T) {
	f := newPostServiceFixture()
	owner := f.registerAccount(t, "a@x.com")

	listed, err := f.svc.ListByAuthor(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}

func TestPostService_AuthorLifecycleScenario(t *testing.T) {
	f := newPostServiceFixture()
	owner := f.registerAccount(t, "a@x.com")

	post, err := f.svc.Create(context.Background(), owner.ID, "Hello", "World")
	require.NoError(t, err)

	listed, err := f.svc.ListByAuthor(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Hello", listed[0].Title)

	title := "Hi"
	_, err = f.svc.Update(context.Background(), post.ID, owner.ID, PostUpdateInput{Title: &title})
	require.NoError(t, err)

	listed, err = f.svc.ListByAuthor(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Hi", listed[0].Title)
	assert.True(t, listed[0].UpdatedAt.After(listed[0].CreatedAt))

	_, err = f.svc.Delete(context.Background(), post.ID, owner.ID)
	require.NoError(t, err)

	listed, err = f.svc.ListByAuthor(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
