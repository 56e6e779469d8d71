package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/google/uuid"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenService
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenService) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, user *domain.User, password string) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" {
		return apperror.BadRequest("Email is required")
	}
	if user.FirstName == "" {
		return apperror.BadRequest("First name is required")
	}

	// Email uniqueness check. The unique index on users.email is the
	// real guard; this just produces a friendlier error.
	existing, err := u.userRepo.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}
	if existing != nil {
		return apperror.Conflict("An account with this email already exists")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperror.Internal(err)
	}

	user.ID = uuid.NewString()
	user.PasswordHash = hash
	if user.Skills == nil {
		user.Skills = []string{}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	if err := u.userRepo.Create(ctx, user); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid email or password")
		}
		return nil, "", apperror.Internal(err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	token, err := u.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
