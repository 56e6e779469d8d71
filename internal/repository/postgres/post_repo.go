package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type postRepo struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) domain.PostRepository {
	return &postRepo{db: db}
}

const postColumns = `id, owner_id, title, description, required_skills, required_time, location, type, salary, created_at, updated_at`

// viewFlags computes the viewer projection flags from the post-side
// membership tables. $1 is always the viewer id in queries that use it.
const viewFlags = `
	EXISTS(SELECT 1 FROM applications a WHERE a.post_id = p.id AND a.user_id = $1 AND a.status = 'applied')  AS has_applied,
	EXISTS(SELECT 1 FROM interests i    WHERE i.post_id = p.id AND i.user_id = $1)                           AS is_interested,
	EXISTS(SELECT 1 FROM applications a WHERE a.post_id = p.id AND a.user_id = $1 AND a.status = 'approved') AS is_working,
	EXISTS(SELECT 1 FROM applications a WHERE a.post_id = p.id AND a.user_id = $1 AND a.status = 'declined') AS is_declined`

func scanPostFields(row interface{ Scan(...any) error }, post *domain.Post, extra ...any) error {
	var skills []string
	dest := []any{
		&post.ID, &post.OwnerID, &post.Title, &post.Description, pq.Array(&skills),
		&post.RequiredTime, &post.Location, &post.Type, &post.Salary,
		&post.CreatedAt, &post.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	post.RequiredSkills = skills
	return nil
}

func (r *postRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `INSERT INTO posts (owner_id, title, description, required_skills, required_time, location, type, salary, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRow(ctx, query,
		post.OwnerID, post.Title, post.Description, pq.Array(post.RequiredSkills),
		post.RequiredTime, post.Location, post.Type, post.Salary,
		post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID)
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	var post domain.Post
	if err := scanPostFields(r.db.QueryRow(ctx, query, id), &post); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepo) GetViewByID(ctx context.Context, viewerID string, id int64) (*domain.PostView, error) {
	query := `SELECT p.id, p.owner_id, p.title, p.description, p.required_skills, p.required_time, p.location, p.type, p.salary, p.created_at, p.updated_at,` +
		viewFlags + ` FROM posts p WHERE p.id = $2`
	var view domain.PostView
	err := scanPostFields(r.db.QueryRow(ctx, query, viewerID, id), &view.Post,
		&view.HasApplied, &view.IsInterested, &view.IsWorking, &view.IsDeclined)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *postRepo) Update(ctx context.Context, post *domain.Post) error {
	query := `UPDATE posts SET
		title = $2,
		description = $3,
		required_skills = $4,
		required_time = $5,
		location = $6,
		type = $7,
		salary = $8,
		updated_at = $9
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		post.ID, post.Title, post.Description, pq.Array(post.RequiredSkills),
		post.RequiredTime, post.Location, post.Type, post.Salary, post.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCascade removes the post and every membership row that references
// it inside one transaction, so no user-side projection can observe a
// half-deleted post.
func (r *postRepo) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE post_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM interests WHERE post_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *postRepo) fetchViews(ctx context.Context, query string, countQuery string, args ...any) ([]domain.PostView, int64, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var views []domain.PostView
	for rows.Next() {
		var v domain.PostView
		if err := scanPostFields(rows, &v.Post, &v.HasApplied, &v.IsInterested, &v.IsWorking, &v.IsDeclined); err != nil {
			return nil, 0, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args[0]).Scan(&total); err != nil {
		return nil, 0, err
	}

	return views, total, nil
}

// FetchOthers returns the feed of posts not owned by the viewer, with
// the viewer's projection flags.
func (r *postRepo) FetchOthers(ctx context.Context, viewerID string, limit, offset int) ([]domain.PostView, int64, error) {
	query := `SELECT p.id, p.owner_id, p.title, p.description, p.required_skills, p.required_time, p.location, p.type, p.salary, p.created_at, p.updated_at,` +
		viewFlags + `
	FROM posts p
	WHERE p.owner_id <> $1
	ORDER BY p.created_at DESC
	LIMIT $2 OFFSET $3`
	countQuery := `SELECT COUNT(*) FROM posts p WHERE p.owner_id <> $1`
	return r.fetchViews(ctx, query, countQuery, viewerID, limit, offset)
}

// FetchWorking returns posts where the viewer's application is approved.
func (r *postRepo) FetchWorking(ctx context.Context, viewerID string, limit, offset int) ([]domain.PostView, int64, error) {
	query := `SELECT p.id, p.owner_id, p.title, p.description, p.required_skills, p.required_time, p.location, p.type, p.salary, p.created_at, p.updated_at,` +
		viewFlags + `
	FROM posts p
	JOIN applications w ON w.post_id = p.id AND w.user_id = $1 AND w.status = 'approved'
	ORDER BY p.created_at DESC
	LIMIT $2 OFFSET $3`
	countQuery := `SELECT COUNT(*) FROM applications w WHERE w.user_id = $1 AND w.status = 'approved'`
	return r.fetchViews(ctx, query, countQuery, viewerID, limit, offset)
}

// FetchInteractions returns posts the viewer has applied to or marked
// interest in.
func (r *postRepo) FetchInteractions(ctx context.Context, viewerID string, limit, offset int) ([]domain.PostView, int64, error) {
	query := `SELECT p.id, p.owner_id, p.title, p.description, p.required_skills, p.required_time, p.location, p.type, p.salary, p.created_at, p.updated_at,` +
		viewFlags + `
	FROM posts p
	WHERE EXISTS(SELECT 1 FROM applications a WHERE a.post_id = p.id AND a.user_id = $1)
	   OR EXISTS(SELECT 1 FROM interests i WHERE i.post_id = p.id AND i.user_id = $1)
	ORDER BY p.created_at DESC
	LIMIT $2 OFFSET $3`
	countQuery := `SELECT COUNT(*) FROM posts p
	WHERE EXISTS(SELECT 1 FROM applications a WHERE a.post_id = p.id AND a.user_id = $1)
	   OR EXISTS(SELECT 1 FROM interests i WHERE i.post_id = p.id AND i.user_id = $1)`
	return r.fetchViews(ctx, query, countQuery, viewerID, limit, offset)
}

// FetchOwned returns the owner's posts with applicant counts.
func (r *postRepo) FetchOwned(ctx context.Context, ownerID string, limit, offset int) ([]domain.OwnedPost, int64, error) {
	query := `SELECT p.id, p.owner_id, p.title, p.description, p.required_skills, p.required_time, p.location, p.type, p.salary, p.created_at, p.updated_at,
		(SELECT COUNT(*) FROM applications a WHERE a.post_id = p.id AND a.status = 'applied')  AS pending_count,
		(SELECT COUNT(*) FROM applications a WHERE a.post_id = p.id AND a.status = 'approved') AS approved_count,
		(SELECT COUNT(*) FROM interests i WHERE i.post_id = p.id)                              AS interest_count
	FROM posts p
	WHERE p.owner_id = $1
	ORDER BY p.created_at DESC
	LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []domain.OwnedPost
	for rows.Next() {
		var p domain.OwnedPost
		if err := scanPostFields(rows, &p.Post, &p.PendingCount, &p.ApprovedCount, &p.InterestCount); err != nil {
			return nil, 0, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE owner_id = $1`, ownerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// Search matches posts by keyword over title/description plus optional
// skill, location and type filters.
func (r *postRepo) Search(ctx context.Context, q domain.PostSearchQuery) ([]domain.Post, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Keyword != "" {
		p := arg("%" + q.Keyword + "%")
		conds = append(conds, fmt.Sprintf("(title ILIKE %s OR description ILIKE %s)", p, p))
	}
	if len(q.Skills) > 0 {
		conds = append(conds, fmt.Sprintf("required_skills && %s", arg(pq.Array(q.Skills))))
	}
	if q.Location != "" {
		conds = append(conds, fmt.Sprintf("location = %s", arg(q.Location)))
	}
	if q.Type != "" {
		conds = append(conds, fmt.Sprintf("type = %s", arg(q.Type)))
	}

	query := `SELECT ` + postColumns + ` FROM posts`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT 50"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := scanPostFields(rows, &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
