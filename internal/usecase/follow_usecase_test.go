package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollow(t *testing.T) {
	ctx := context.Background()

	t.Run("follow an existing user", func(t *testing.T) {
		followRepo := new(MockFollowRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewFollowUsecase(followRepo, userRepo)

		userRepo.On("GetByID", ctx, "bob").Return(&domain.User{ID: "bob"}, nil)
		followRepo.On("Create", ctx, "alice", "bob").Return(nil)

		require.NoError(t, uc.Follow(ctx, "alice", "bob"))
		followRepo.AssertExpectations(t)
	})

	t.Run("self-follow is rejected", func(t *testing.T) {
		followRepo := new(MockFollowRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewFollowUsecase(followRepo, userRepo)

		err := uc.Follow(ctx, "alice", "alice")
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		followRepo.AssertNotCalled(t, "Create")
	})

	t.Run("following a missing user is 404", func(t *testing.T) {
		followRepo := new(MockFollowRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewFollowUsecase(followRepo, userRepo)

		userRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		err := uc.Follow(ctx, "alice", "ghost")
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}

func TestIsFollowing(t *testing.T) {
	ctx := context.Background()

	followRepo := new(MockFollowRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewFollowUsecase(followRepo, userRepo)

	followRepo.On("Exists", ctx, "alice", "bob").Return(true, nil)
	followRepo.On("Exists", ctx, "bob", "alice").Return(false, nil)

	following, err := uc.IsFollowing(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, following)

	following, err = uc.IsFollowing(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowers(t *testing.T) {
	ctx := context.Background()

	t.Run("empty follower list is not nil", func(t *testing.T) {
		followRepo := new(MockFollowRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewFollowUsecase(followRepo, userRepo)

		followRepo.On("Followers", ctx, "alice").Return(nil, nil)

		users, err := uc.Followers(ctx, "alice")
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})
}
