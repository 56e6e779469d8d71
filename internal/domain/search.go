package domain

import "context"

type PostSearchQuery struct {
	Keyword  string
	Skills   []string
	Location string
	Type     string
}

type PersonSearchQuery struct {
	Keyword  string
	Skills   []string
	Location string
}

// PersonResult is the public shape returned by people search.
type PersonResult struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Country   string   `json:"country"`
	Skills    []string `json:"skills"`
}

type SearchUsecase interface {
	SearchPosts(ctx context.Context, q PostSearchQuery) ([]Post, error)
	SearchPeople(ctx context.Context, q PersonSearchQuery) ([]PersonResult, error)
}
