package domain

import "context"

type FollowRepository interface {
	// Create is idempotent: following twice is a no-op.
	Create(ctx context.Context, followerID, followeeID string) error
	Delete(ctx context.Context, followerID, followeeID string) error
	Exists(ctx context.Context, followerID, followeeID string) (bool, error)
	Followers(ctx context.Context, userID string) ([]UserSummary, error)
	Following(ctx context.Context, userID string) ([]UserSummary, error)
}

type FollowUsecase interface {
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	Followers(ctx context.Context, userID string) ([]UserSummary, error)
	Following(ctx context.Context, userID string) ([]UserSummary, error)
}
