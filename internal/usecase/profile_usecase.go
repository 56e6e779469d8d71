package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"golang.org/x/image/draw"
)

// maxPhotoEdge caps the longest edge of a stored profile photo.
const maxPhotoEdge = 512

// PhotoStorage is the subset of the object store the profile usecase needs.
type PhotoStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type profileUsecase struct {
	userRepo domain.UserRepository
	photos   PhotoStorage
}

func NewProfileUsecase(userRepo domain.UserRepository, photos PhotoStorage) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo: userRepo,
		photos:   photos,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	educations, err := u.userRepo.ListEducations(ctx, userID)
	if err != nil {
		return nil, err
	}
	experiences, err := u.userRepo.ListExperiences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if educations == nil {
		educations = []domain.Education{}
	}
	if experiences == nil {
		experiences = []domain.Experience{}
	}

	return &domain.Profile{
		User:        *user,
		Educations:  educations,
		Experiences: experiences,
	}, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, user *domain.User) error {
	if user.FirstName == "" {
		return apperror.BadRequest("First name is required")
	}
	user.UpdatedAt = time.Now()

	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}

func (u *profileUsecase) UpdateSkills(ctx context.Context, userID string, skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	if err := u.userRepo.UpdateSkills(ctx, userID, skills); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}

// UpdatePhoto decodes the uploaded image, scales it down to maxPhotoEdge,
// re-encodes it as JPEG and stores it under a per-user key. Re-uploading
// overwrites the previous photo.
func (u *profileUsecase) UpdatePhoto(ctx context.Context, userID string, data []byte) (string, error) {
	if u.photos == nil {
		return "", apperror.New(http.StatusServiceUnavailable, "Photo storage is not configured", nil)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", apperror.BadRequest("Unsupported image format")
	}

	resized := resizePhoto(src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return "", apperror.Internal(err)
	}

	key := fmt.Sprintf("photos/%s.jpg", userID)
	url, err := u.photos.Put(ctx, key, buf.Bytes(), "image/jpeg")
	if err != nil {
		return "", apperror.Internal(err)
	}

	if err := u.userRepo.UpdatePhotoURL(ctx, userID, url); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("User not found")
		}
		return "", err
	}
	return url, nil
}

func resizePhoto(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxPhotoEdge && h <= maxPhotoEdge {
		return src
	}

	if w >= h {
		h = h * maxPhotoEdge / w
		w = maxPhotoEdge
	} else {
		w = w * maxPhotoEdge / h
		h = maxPhotoEdge
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

func (u *profileUsecase) AddEducation(ctx context.Context, edu *domain.Education) error {
	if edu.School == "" {
		return apperror.BadRequest("School is required")
	}
	return u.userRepo.AddEducation(ctx, edu)
}

func (u *profileUsecase) UpdateEducation(ctx context.Context, edu *domain.Education) error {
	if edu.School == "" {
		return apperror.BadRequest("School is required")
	}
	if err := u.userRepo.UpdateEducation(ctx, edu); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Education entry not found")
		}
		return err
	}
	return nil
}

func (u *profileUsecase) DeleteEducation(ctx context.Context, userID string, id int64) error {
	if err := u.userRepo.DeleteEducation(ctx, userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Education entry not found")
		}
		return err
	}
	return nil
}

func (u *profileUsecase) AddExperience(ctx context.Context, exp *domain.Experience) error {
	if exp.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	return u.userRepo.AddExperience(ctx, exp)
}

func (u *profileUsecase) UpdateExperience(ctx context.Context, exp *domain.Experience) error {
	if exp.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if err := u.userRepo.UpdateExperience(ctx, exp); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Experience entry not found")
		}
		return err
	}
	return nil
}

func (u *profileUsecase) DeleteExperience(ctx context.Context, userID string, id int64) error {
	if err := u.userRepo.DeleteExperience(ctx, userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Experience entry not found")
		}
		return err
	}
	return nil
}
