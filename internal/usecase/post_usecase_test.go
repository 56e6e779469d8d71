package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPostFixture(t *testing.T) (domain.PostUsecase, *fakePostRepo, *MockCommentRepo, int64) {
	t.Helper()
	posts := newFakePostRepo(newFakeInteractionRepo())
	comments := new(MockCommentRepo)
	uc := usecase.NewPostUsecase(posts, comments)

	post := &domain.Post{OwnerID: "owner", Title: "Backend engineer", Description: "Go service work"}
	require.NoError(t, posts.Create(context.Background(), post))

	return uc, posts, comments, post.ID
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("sets owner and timestamps", func(t *testing.T) {
		uc, repo, _, _ := newPostFixture(t)

		post := &domain.Post{Title: "Designer", Description: "Product design"}
		require.NoError(t, uc.CreatePost(ctx, "carol", post))

		stored, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "carol", stored.OwnerID)
		assert.False(t, stored.CreatedAt.IsZero())
		assert.NotNil(t, stored.RequiredSkills)
	})

	t.Run("title is required", func(t *testing.T) {
		uc, _, _, _ := newPostFixture(t)

		err := uc.CreatePost(ctx, "carol", &domain.Post{Description: "No title"})
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
	})
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can update, ownership is preserved", func(t *testing.T) {
		uc, repo, _, postID := newPostFixture(t)

		post := &domain.Post{ID: postID, OwnerID: "hacker", Title: "New title", Description: "Updated"}
		require.NoError(t, uc.UpdatePost(ctx, "owner", post))

		stored, err := repo.GetByID(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, "owner", stored.OwnerID)
		assert.Equal(t, "New title", stored.Title)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		uc, _, _, postID := newPostFixture(t)

		err := uc.UpdatePost(ctx, "mallory", &domain.Post{ID: postID, Title: "Hijacked"})
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
	})

	t.Run("missing post", func(t *testing.T) {
		uc, _, _, _ := newPostFixture(t)

		err := uc.UpdatePost(ctx, "owner", &domain.Post{ID: 999, Title: "Ghost"})
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("owner delete removes the post", func(t *testing.T) {
		uc, repo, _, postID := newPostFixture(t)

		require.NoError(t, uc.DeletePost(ctx, "owner", postID))

		_, err := repo.GetByID(ctx, postID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		uc, repo, _, postID := newPostFixture(t)

		err := uc.DeletePost(ctx, "mallory", postID)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))

		_, err = repo.GetByID(ctx, postID)
		assert.NoError(t, err)
	})

	t.Run("delete removes applications and interests", func(t *testing.T) {
		uc, repo, _, postID := newPostFixture(t)

		require.NoError(t, repo.interactions.SetState(ctx, postID, "alice", domain.StateApplied))
		require.NoError(t, repo.interactions.AddInterest(ctx, postID, "bob"))

		require.NoError(t, uc.DeletePost(ctx, "owner", postID))

		state, err := repo.interactions.GetState(ctx, postID, "alice")
		require.NoError(t, err)
		assert.Equal(t, domain.StateNone, state)

		has, err := repo.interactions.HasInterest(ctx, postID, "bob")
		require.NoError(t, err)
		assert.False(t, has)

		// The deleted post no longer surfaces in anyone's interactions
		views, total, err := uc.ListUserInteractions(ctx, "alice", 1, 10)
		require.NoError(t, err)
		assert.Empty(t, views)
		assert.Zero(t, total)
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("markup outside the UGC policy is stripped", func(t *testing.T) {
		uc, _, comments, postID := newPostFixture(t)

		comments.On("Create", ctx, mock.AnythingOfType("*domain.Comment")).Return(nil)

		comment, err := uc.AddComment(ctx, "alice", postID, `Nice post<script>alert("x")</script>`)
		require.NoError(t, err)
		assert.Equal(t, "Nice post", comment.Body)
		assert.Equal(t, "alice", comment.AuthorID)
	})

	t.Run("body that sanitizes to nothing is rejected", func(t *testing.T) {
		uc, _, comments, postID := newPostFixture(t)

		_, err := uc.AddComment(ctx, "alice", postID, `<script>alert("x")</script>`)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		comments.AssertNotCalled(t, "Create")
	})

	t.Run("comment on a missing post", func(t *testing.T) {
		uc, _, _, _ := newPostFixture(t)

		_, err := uc.AddComment(ctx, "alice", 999, "Hello")
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}

func TestListComments(t *testing.T) {
	ctx := context.Background()

	t.Run("empty list is not nil", func(t *testing.T) {
		uc, _, comments, postID := newPostFixture(t)

		comments.On("ListByPost", ctx, postID).Return(nil, nil)

		result, err := uc.ListComments(ctx, postID)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}
