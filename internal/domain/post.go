package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Post struct {
	ID             int64     `json:"id"`
	OwnerID        string    `json:"owner_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	RequiredTime   string    `json:"required_time"`
	Location       string    `json:"location"`
	Type           string    `json:"type"`
	Salary         string    `json:"salary"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PostView decorates a post with the viewer's interaction flags.
// The flags are computed from membership checks and never persisted.
type PostView struct {
	Post
	HasApplied   bool `json:"has_applied"`
	IsInterested bool `json:"is_interested"`
	IsWorking    bool `json:"is_working"`
	IsDeclined   bool `json:"is_declined"`
}

// OwnedPost extends a post with applicant counts for the owner's dashboard.
type OwnedPost struct {
	Post
	PendingCount  int64 `json:"pending_count"`
	ApprovedCount int64 `json:"approved_count"`
	InterestCount int64 `json:"interest_count"`
}

type Comment struct {
	ID        int64        `json:"id"`
	PostID    int64        `json:"post_id"`
	AuthorID  string       `json:"author_id"`
	Author    *UserSummary `json:"author,omitempty"`
	Body      string       `json:"body"`
	CreatedAt time.Time    `json:"created_at"`
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	GetViewByID(ctx context.Context, viewerID string, id int64) (*PostView, error)
	Update(ctx context.Context, post *Post) error
	// DeleteCascade removes the post together with its applications,
	// interests and comments in a single transaction.
	DeleteCascade(ctx context.Context, id int64) error

	FetchOthers(ctx context.Context, viewerID string, limit, offset int) ([]PostView, int64, error)
	FetchOwned(ctx context.Context, ownerID string, limit, offset int) ([]OwnedPost, int64, error)
	FetchWorking(ctx context.Context, viewerID string, limit, offset int) ([]PostView, int64, error)
	FetchInteractions(ctx context.Context, viewerID string, limit, offset int) ([]PostView, int64, error)
	Search(ctx context.Context, q PostSearchQuery) ([]Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
}

type PostUsecase interface {
	CreatePost(ctx context.Context, ownerID string, post *Post) error
	GetPost(ctx context.Context, viewerID string, id int64) (*PostView, error)
	UpdatePost(ctx context.Context, ownerID string, post *Post) error
	DeletePost(ctx context.Context, ownerID string, id int64) error

	ListOtherPosts(ctx context.Context, viewerID string, page, pageSize int) ([]PostView, int64, error)
	ListUserPosts(ctx context.Context, ownerID string, page, pageSize int) ([]OwnedPost, int64, error)
	ListWorkingPosts(ctx context.Context, viewerID string, page, pageSize int) ([]PostView, int64, error)
	ListUserInteractions(ctx context.Context, viewerID string, page, pageSize int) ([]PostView, int64, error)

	AddComment(ctx context.Context, authorID string, postID int64, body string) (*Comment, error)
	ListComments(ctx context.Context, postID int64) ([]Comment, error)
}
