package usecase_test

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePhotoStore struct {
	key         string
	data        []byte
	contentType string
}

func (f *fakePhotoStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.key = key
	f.data = data
	f.contentType = contentType
	return "https://photos.example.com/" + key, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUpdatePhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("resizes large images and stores JPEG", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		store := &fakePhotoStore{}
		uc := usecase.NewProfileUsecase(userRepo, store)

		userRepo.On("UpdatePhotoURL", ctx, "user-1", "https://photos.example.com/photos/user-1.jpg").Return(nil)

		url, err := uc.UpdatePhoto(ctx, "user-1", pngBytes(t, 2048, 1024))
		require.NoError(t, err)
		assert.Equal(t, "https://photos.example.com/photos/user-1.jpg", url)
		assert.Equal(t, "image/jpeg", store.contentType)

		stored, err := jpeg.Decode(bytes.NewReader(store.data))
		require.NoError(t, err)
		bounds := stored.Bounds()
		assert.Equal(t, 512, bounds.Dx())
		assert.Equal(t, 256, bounds.Dy())
	})

	t.Run("small images keep their dimensions", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		store := &fakePhotoStore{}
		uc := usecase.NewProfileUsecase(userRepo, store)

		userRepo.On("UpdatePhotoURL", ctx, "user-1", "https://photos.example.com/photos/user-1.jpg").Return(nil)

		_, err := uc.UpdatePhoto(ctx, "user-1", pngBytes(t, 100, 80))
		require.NoError(t, err)

		stored, err := jpeg.Decode(bytes.NewReader(store.data))
		require.NoError(t, err)
		assert.Equal(t, 100, stored.Bounds().Dx())
		assert.Equal(t, 80, stored.Bounds().Dy())
	})

	t.Run("non-image data is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(userRepo, &fakePhotoStore{})

		_, err := uc.UpdatePhoto(ctx, "user-1", []byte("not an image"))
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
	})

	t.Run("unconfigured storage is a 503", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(userRepo, nil)

		_, err := uc.UpdatePhoto(ctx, "user-1", pngBytes(t, 10, 10))
		assert.Equal(t, http.StatusServiceUnavailable, appErrCode(t, err))
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates user, educations and experiences", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(userRepo, nil)

		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{ID: "user-1", FirstName: "Alice"}, nil)
		userRepo.On("ListEducations", ctx, "user-1").Return([]domain.Education{{ID: 1, School: "MIT"}}, nil)
		userRepo.On("ListExperiences", ctx, "user-1").Return(nil, nil)

		profile, err := uc.GetProfile(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", profile.FirstName)
		assert.Len(t, profile.Educations, 1)
		assert.NotNil(t, profile.Experiences)
	})

	t.Run("missing user is 404", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(userRepo, nil)

		userRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.GetProfile(ctx, "ghost")
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}
