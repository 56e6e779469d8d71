package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) domain.CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	query := `INSERT INTO comments (post_id, author_id, body, created_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query,
		comment.PostID, comment.AuthorID, comment.Body, comment.CreatedAt,
	).Scan(&comment.ID)
}

func (r *commentRepo) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	query := `SELECT c.id, c.post_id, c.author_id, c.body, c.created_at,
	                 u.id, u.first_name, u.last_name, u.photo_url
	          FROM comments c
	          JOIN users u ON u.id = c.author_id
	          WHERE c.post_id = $1
	          ORDER BY c.created_at`
	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		var author domain.UserSummary
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Body, &c.CreatedAt,
			&author.ID, &author.FirstName, &author.LastName, &author.PhotoURL); err != nil {
			return nil, err
		}
		c.Author = &author
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
