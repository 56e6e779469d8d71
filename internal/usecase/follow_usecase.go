package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type followUsecase struct {
	followRepo domain.FollowRepository
	userRepo   domain.UserRepository
}

func NewFollowUsecase(followRepo domain.FollowRepository, userRepo domain.UserRepository) domain.FollowUsecase {
	return &followUsecase{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (u *followUsecase) Follow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return apperror.BadRequest("You cannot follow yourself")
	}

	if _, err := u.userRepo.GetByID(ctx, followeeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}

	return u.followRepo.Create(ctx, followerID, followeeID)
}

func (u *followUsecase) Unfollow(ctx context.Context, followerID, followeeID string) error {
	return u.followRepo.Delete(ctx, followerID, followeeID)
}

func (u *followUsecase) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	return u.followRepo.Exists(ctx, followerID, followeeID)
}

func (u *followUsecase) Followers(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	users, err := u.followRepo.Followers(ctx, userID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.UserSummary{}
	}
	return users, nil
}

func (u *followUsecase) Following(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	users, err := u.followRepo.Following(ctx, userID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.UserSummary{}
	}
	return users, nil
}
