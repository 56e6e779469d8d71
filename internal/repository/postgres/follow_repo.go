package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type followRepo struct {
	db *pgxpool.Pool
}

func NewFollowRepository(db *pgxpool.Pool) domain.FollowRepository {
	return &followRepo{db: db}
}

func (r *followRepo) Create(ctx context.Context, followerID, followeeID string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO follows (follower_id, followee_id, created_at) VALUES ($1, $2, now())
		 ON CONFLICT (follower_id, followee_id) DO NOTHING`,
		followerID, followeeID,
	)
	return err
}

func (r *followRepo) Delete(ctx context.Context, followerID, followeeID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		followerID, followeeID,
	)
	return err
}

func (r *followRepo) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`,
		followerID, followeeID,
	).Scan(&exists)
	return exists, err
}

func (r *followRepo) Followers(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	query := `SELECT u.id, u.first_name, u.last_name, u.photo_url
	          FROM follows f
	          JOIN users u ON u.id = f.follower_id
	          WHERE f.followee_id = $1
	          ORDER BY f.created_at DESC`
	return r.listUsers(ctx, query, userID)
}

func (r *followRepo) Following(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	query := `SELECT u.id, u.first_name, u.last_name, u.photo_url
	          FROM follows f
	          JOIN users u ON u.id = f.followee_id
	          WHERE f.follower_id = $1
	          ORDER BY f.created_at DESC`
	return r.listUsers(ctx, query, userID)
}

func (r *followRepo) listUsers(ctx context.Context, query string, userID string) ([]domain.UserSummary, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserSummary
	for rows.Next() {
		var u domain.UserSummary
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.PhotoURL); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
