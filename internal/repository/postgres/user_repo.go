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

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, country, bio, photo_url, skills, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	var skills []string
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Country, &u.Bio, &u.PhotoURL, pq.Array(&skills),
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.Skills = skills
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, first_name, last_name, country, bio, skills, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Country, user.Bio, pq.Array(user.Skills),
		user.CreatedAt, user.UpdatedAt,
	)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET
		first_name = $2,
		last_name = $3,
		country = $4,
		bio = $5,
		updated_at = $6
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Country, user.Bio, user.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdateSkills(ctx context.Context, id string, skills []string) error {
	query := `UPDATE users SET skills = $2, updated_at = now() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, pq.Array(skills))
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdatePhotoURL(ctx context.Context, id string, url string) error {
	query := `UPDATE users SET photo_url = $2, updated_at = now() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, url)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) AddEducation(ctx context.Context, edu *domain.Education) error {
	query := `INSERT INTO educations (user_id, school, degree, field, start_year, end_year)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		edu.UserID, edu.School, edu.Degree, edu.Field, edu.StartYear, edu.EndYear,
	).Scan(&edu.ID)
}

func (r *userRepo) UpdateEducation(ctx context.Context, edu *domain.Education) error {
	query := `UPDATE educations SET school = $3, degree = $4, field = $5, start_year = $6, end_year = $7
	          WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query,
		edu.ID, edu.UserID, edu.School, edu.Degree, edu.Field, edu.StartYear, edu.EndYear,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) DeleteEducation(ctx context.Context, userID string, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) ListEducations(ctx context.Context, userID string) ([]domain.Education, error) {
	query := `SELECT id, user_id, school, degree, field, start_year, end_year
	          FROM educations WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.UserID, &e.School, &e.Degree, &e.Field, &e.StartYear, &e.EndYear); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *userRepo) AddExperience(ctx context.Context, exp *domain.Experience) error {
	query := `INSERT INTO experiences (user_id, title, company, location, start_date, end_date, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		exp.UserID, exp.Title, exp.Company, exp.Location, exp.StartDate, exp.EndDate, exp.Description,
	).Scan(&exp.ID)
}

func (r *userRepo) UpdateExperience(ctx context.Context, exp *domain.Experience) error {
	query := `UPDATE experiences SET title = $3, company = $4, location = $5, start_date = $6, end_date = $7, description = $8
	          WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query,
		exp.ID, exp.UserID, exp.Title, exp.Company, exp.Location, exp.StartDate, exp.EndDate, exp.Description,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) DeleteExperience(ctx context.Context, userID string, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) ListExperiences(ctx context.Context, userID string) ([]domain.Experience, error) {
	query := `SELECT id, user_id, title, company, location, start_date, end_date, description
	          FROM experiences WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.Location, &e.StartDate, &e.EndDate, &e.Description); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SearchPeople matches users by keyword over name/bio plus optional
// skill and location filters.
func (r *userRepo) SearchPeople(ctx context.Context, q domain.PersonSearchQuery) ([]domain.PersonResult, error) {
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
		conds = append(conds, fmt.Sprintf("(first_name || ' ' || last_name ILIKE %s OR bio ILIKE %s)", p, p))
	}
	if len(q.Skills) > 0 {
		conds = append(conds, fmt.Sprintf("skills && %s", arg(pq.Array(q.Skills))))
	}
	if q.Location != "" {
		conds = append(conds, fmt.Sprintf("country = %s", arg(q.Location)))
	}

	query := `SELECT id, first_name, last_name, email, country, skills FROM users`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT 50"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.PersonResult
	for rows.Next() {
		var p domain.PersonResult
		var skills []string
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Country, pq.Array(&skills)); err != nil {
			return nil, err
		}
		p.Skills = skills
		results = append(results, p)
	}
	return results, rows.Err()
}
