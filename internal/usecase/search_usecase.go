package usecase

import (
	"context"
	"strings"

	"go-jobboard-backend/internal/domain"
)

type searchUsecase struct {
	postRepo domain.PostRepository
	userRepo domain.UserRepository
}

func NewSearchUsecase(postRepo domain.PostRepository, userRepo domain.UserRepository) domain.SearchUsecase {
	return &searchUsecase{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (u *searchUsecase) SearchPosts(ctx context.Context, q domain.PostSearchQuery) ([]domain.Post, error) {
	q.Keyword = strings.TrimSpace(q.Keyword)

	posts, err := u.postRepo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

func (u *searchUsecase) SearchPeople(ctx context.Context, q domain.PersonSearchQuery) ([]domain.PersonResult, error) {
	q.Keyword = strings.TrimSpace(q.Keyword)

	results, err := u.userRepo.SearchPeople(ctx, q)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []domain.PersonResult{}
	}
	return results, nil
}
