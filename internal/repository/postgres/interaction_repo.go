package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interactionRepo struct {
	db *pgxpool.Pool
}

func NewInteractionRepository(db *pgxpool.Pool) domain.InteractionRepository {
	return &interactionRepo{db: db}
}

// GetState returns StateNone when the (post, user) pair has no
// application row. The row is the single source of truth: a user can be
// in at most one of applied/approved/declined per post.
func (r *interactionRepo) GetState(ctx context.Context, postID int64, userID string) (domain.ApplicationState, error) {
	var status string
	err := r.db.QueryRow(ctx,
		`SELECT status FROM applications WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.StateNone, nil
	}
	if err != nil {
		return domain.StateNone, err
	}
	return domain.ApplicationState(status), nil
}

func (r *interactionRepo) SetState(ctx context.Context, postID int64, userID string, state domain.ApplicationState) error {
	query := `INSERT INTO applications (post_id, user_id, status, created_at, updated_at)
	          VALUES ($1, $2, $3, now(), now())
	          ON CONFLICT (post_id, user_id) DO UPDATE SET status = $3, updated_at = now()`
	_, err := r.db.Exec(ctx, query, postID, userID, string(state))
	return err
}

func (r *interactionRepo) ClearState(ctx context.Context, postID int64, userID string) (bool, error) {
	result, err := r.db.Exec(ctx,
		`DELETE FROM applications WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *interactionRepo) ClearStateIf(ctx context.Context, postID int64, userID string, state domain.ApplicationState) (bool, error) {
	result, err := r.db.Exec(ctx,
		`DELETE FROM applications WHERE post_id = $1 AND user_id = $2 AND status = $3`,
		postID, userID, string(state),
	)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *interactionRepo) HasInterest(ctx context.Context, postID int64, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM interests WHERE post_id = $1 AND user_id = $2)`,
		postID, userID,
	).Scan(&exists)
	return exists, err
}

func (r *interactionRepo) AddInterest(ctx context.Context, postID int64, userID string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO interests (post_id, user_id, created_at) VALUES ($1, $2, now())
		 ON CONFLICT (post_id, user_id) DO NOTHING`,
		postID, userID,
	)
	return err
}

func (r *interactionRepo) RemoveInterest(ctx context.Context, postID int64, userID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM interests WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	)
	return err
}

func (r *interactionRepo) ListApplicants(ctx context.Context, postID int64) ([]domain.Applicant, error) {
	query := `SELECT u.id, u.first_name, u.last_name, u.photo_url, a.status, a.created_at
	          FROM applications a
	          JOIN users u ON u.id = a.user_id
	          WHERE a.post_id = $1
	          ORDER BY a.created_at`
	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applicants []domain.Applicant
	for rows.Next() {
		var a domain.Applicant
		var status string
		if err := rows.Scan(&a.User.ID, &a.User.FirstName, &a.User.LastName, &a.User.PhotoURL, &status, &a.AppliedAt); err != nil {
			return nil, err
		}
		a.State = domain.ApplicationState(status)
		applicants = append(applicants, a)
	}
	return applicants, rows.Err()
}

func (r *interactionRepo) ListInterested(ctx context.Context, postID int64) ([]domain.UserSummary, error) {
	query := `SELECT u.id, u.first_name, u.last_name, u.photo_url
	          FROM interests i
	          JOIN users u ON u.id = i.user_id
	          WHERE i.post_id = $1
	          ORDER BY i.created_at`
	rows, err := r.db.Query(ctx, query, postID)
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
