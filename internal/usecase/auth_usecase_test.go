package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTokenService() *auth.TokenService {
	return auth.NewTokenService("test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password and generated id", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenService())

		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.NotEmpty(t, u.ID)
			assert.NotEmpty(t, u.PasswordHash)
			assert.NotEqual(t, "password123", u.PasswordHash)
			assert.True(t, auth.CheckPassword(u.PasswordHash, "password123"))
		})

		user := &domain.User{Email: "Alice@Example.com", FirstName: "Alice"}
		err := uc.Register(ctx, user, "password123")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenService())

		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(&domain.User{ID: "existing"}, nil)

		err := uc.Register(ctx, &domain.User{Email: "alice@example.com", FirstName: "Alice"}, "password123")
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("missing first name is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenService())

		err := uc.Register(ctx, &domain.User{Email: "bob@example.com"}, "password123")
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	stored := &domain.User{ID: "user-1", Email: "alice@example.com", PasswordHash: hash}

	t.Run("valid credentials return a parseable token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := newTokenService()
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil)

		user, token, err := uc.Login(ctx, "Alice@Example.com ", "password123")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)

		claims, err := tokens.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenService())

		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil)

		_, _, err := uc.Login(ctx, "alice@example.com", "wrong")
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, err))
	})

	t.Run("unknown email is unauthorized, not not-found", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenService())

		mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, _, err := uc.Login(ctx, "ghost@example.com", "password123")
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, err))
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("missing user maps to 404", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenService())

		mockRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.GetCurrentUser(ctx, "ghost")
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}
