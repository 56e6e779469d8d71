package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/microcosm-cc/bluemonday"
)

type postUsecase struct {
	postRepo    domain.PostRepository
	commentRepo domain.CommentRepository
	sanitizer   *bluemonday.Policy
}

func NewPostUsecase(postRepo domain.PostRepository, commentRepo domain.CommentRepository) domain.PostUsecase {
	return &postUsecase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		sanitizer:   bluemonday.UGCPolicy(),
	}
}

func (u *postUsecase) CreatePost(ctx context.Context, ownerID string, post *domain.Post) error {
	if post.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if post.Description == "" {
		return apperror.BadRequest("Description is required")
	}

	post.OwnerID = ownerID
	if post.RequiredSkills == nil {
		post.RequiredSkills = []string{}
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	return u.postRepo.Create(ctx, post)
}

func (u *postUsecase) GetPost(ctx context.Context, viewerID string, id int64) (*domain.PostView, error) {
	view, err := u.postRepo.GetViewByID(ctx, viewerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, err
	}
	return view, nil
}

func (u *postUsecase) UpdatePost(ctx context.Context, ownerID string, post *domain.Post) error {
	existing, err := u.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Post not found")
		}
		return err
	}
	if existing.OwnerID != ownerID {
		return apperror.Forbidden("You do not own this post")
	}
	if post.Title == "" {
		return apperror.BadRequest("Title is required")
	}

	post.OwnerID = existing.OwnerID
	post.CreatedAt = existing.CreatedAt
	post.UpdatedAt = time.Now()
	if post.RequiredSkills == nil {
		post.RequiredSkills = []string{}
	}

	return u.postRepo.Update(ctx, post)
}

func (u *postUsecase) DeletePost(ctx context.Context, ownerID string, id int64) error {
	existing, err := u.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Post not found")
		}
		return err
	}
	if existing.OwnerID != ownerID {
		return apperror.Forbidden("You do not own this post")
	}

	return u.postRepo.DeleteCascade(ctx, id)
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}

func (u *postUsecase) ListOtherPosts(ctx context.Context, viewerID string, page, pageSize int) ([]domain.PostView, int64, error) {
	limit, offset := normalizePage(page, pageSize)
	return u.postRepo.FetchOthers(ctx, viewerID, limit, offset)
}

func (u *postUsecase) ListUserPosts(ctx context.Context, ownerID string, page, pageSize int) ([]domain.OwnedPost, int64, error) {
	limit, offset := normalizePage(page, pageSize)
	return u.postRepo.FetchOwned(ctx, ownerID, limit, offset)
}

func (u *postUsecase) ListWorkingPosts(ctx context.Context, viewerID string, page, pageSize int) ([]domain.PostView, int64, error) {
	limit, offset := normalizePage(page, pageSize)
	return u.postRepo.FetchWorking(ctx, viewerID, limit, offset)
}

func (u *postUsecase) ListUserInteractions(ctx context.Context, viewerID string, page, pageSize int) ([]domain.PostView, int64, error) {
	limit, offset := normalizePage(page, pageSize)
	return u.postRepo.FetchInteractions(ctx, viewerID, limit, offset)
}

// AddComment sanitizes the body before storing it. Comments render as
// user-generated HTML on the frontend, so markup outside the UGC policy
// is stripped.
func (u *postUsecase) AddComment(ctx context.Context, authorID string, postID int64, body string) (*domain.Comment, error) {
	body = strings.TrimSpace(u.sanitizer.Sanitize(body))
	if body == "" {
		return nil, apperror.BadRequest("Comment body is required")
	}

	if _, err := u.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, err
	}

	comment := &domain.Comment{
		PostID:    postID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (u *postUsecase) ListComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	if _, err := u.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, err
	}

	comments, err := u.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}
