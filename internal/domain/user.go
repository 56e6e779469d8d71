package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Country      string    `json:"country"`
	Bio          string    `json:"bio"`
	PhotoURL     *string   `json:"photo_url,omitempty"`
	Skills       []string  `json:"skills"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the compact representation used in listings
// (applicants, followers, comment authors).
type UserSummary struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	PhotoURL  *string `json:"photo_url,omitempty"`
}

type Education struct {
	ID        int64  `json:"id"`
	UserID    string `json:"user_id"`
	School    string `json:"school" validate:"required,max=200"`
	Degree    string `json:"degree" validate:"max=200"`
	Field     string `json:"field" validate:"max=200"`
	StartYear *int   `json:"start_year,omitempty"`
	EndYear   *int   `json:"end_year,omitempty"`
}

type Experience struct {
	ID          int64  `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title" validate:"required,max=200"`
	Company     string `json:"company" validate:"max=200"`
	Location    string `json:"location" validate:"max=200"`
	StartDate   string `json:"start_date" validate:"max=40"`
	EndDate     string `json:"end_date" validate:"max=40"`
	Description string `json:"description" validate:"max=2000"`
}

// Profile is the full user document returned by the profile endpoint.
type Profile struct {
	User
	Educations  []Education  `json:"educations"`
	Experiences []Experience `json:"experiences"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, user *User) error
	UpdateSkills(ctx context.Context, id string, skills []string) error
	UpdatePhotoURL(ctx context.Context, id string, url string) error

	AddEducation(ctx context.Context, edu *Education) error
	UpdateEducation(ctx context.Context, edu *Education) error
	DeleteEducation(ctx context.Context, userID string, id int64) error
	ListEducations(ctx context.Context, userID string) ([]Education, error)

	AddExperience(ctx context.Context, exp *Experience) error
	UpdateExperience(ctx context.Context, exp *Experience) error
	DeleteExperience(ctx context.Context, userID string, id int64) error
	ListExperiences(ctx context.Context, userID string) ([]Experience, error)

	SearchPeople(ctx context.Context, q PersonSearchQuery) ([]PersonResult, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User, password string) error
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, user *User) error
	UpdateSkills(ctx context.Context, userID string, skills []string) error
	UpdatePhoto(ctx context.Context, userID string, data []byte) (string, error)

	AddEducation(ctx context.Context, edu *Education) error
	UpdateEducation(ctx context.Context, edu *Education) error
	DeleteEducation(ctx context.Context, userID string, id int64) error

	AddExperience(ctx context.Context, exp *Experience) error
	UpdateExperience(ctx context.Context, exp *Experience) error
	DeleteExperience(ctx context.Context, userID string, id int64) error
}
