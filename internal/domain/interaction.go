package domain

import (
	"context"
	"time"
)

// ApplicationState is the per-(post,user) application lifecycle state.
// A user holds exactly one state per post; interest is tracked separately.
type ApplicationState string

const (
	StateNone     ApplicationState = "none"
	StateApplied  ApplicationState = "applied"
	StateApproved ApplicationState = "approved"
	StateDeclined ApplicationState = "declined"
)

// Applicant is an applicant entry in the owner's management view.
type Applicant struct {
	User      UserSummary      `json:"user"`
	State     ApplicationState `json:"state"`
	AppliedAt time.Time        `json:"applied_at"`
}

// PostInteractions is the owner-facing view of who interacted with a post.
type PostInteractions struct {
	Applicants []Applicant   `json:"applicants"`
	Interested []UserSummary `json:"interested"`
}

type InteractionRepository interface {
	// GetState returns StateNone when no application row exists.
	GetState(ctx context.Context, postID int64, userID string) (ApplicationState, error)
	// SetState upserts the single application row for (post, user).
	SetState(ctx context.Context, postID int64, userID string, state ApplicationState) error
	// ClearState deletes the application row. Returns false if none existed.
	ClearState(ctx context.Context, postID int64, userID string) (bool, error)
	// ClearStateIf deletes the row only when it is in the given state.
	ClearStateIf(ctx context.Context, postID int64, userID string, state ApplicationState) (bool, error)

	HasInterest(ctx context.Context, postID int64, userID string) (bool, error)
	AddInterest(ctx context.Context, postID int64, userID string) error
	RemoveInterest(ctx context.Context, postID int64, userID string) error

	ListApplicants(ctx context.Context, postID int64) ([]Applicant, error)
	ListInterested(ctx context.Context, postID int64) ([]UserSummary, error)
}

// InteractionUsecase keeps a post's membership sets and the derived user
// relationship sets consistent. All transitions go through a single
// transition table.
type InteractionUsecase interface {
	ToggleApplication(ctx context.Context, viewerID string, postID int64) (ApplicationState, error)
	ToggleInterest(ctx context.Context, viewerID string, postID int64) (bool, error)
	Approve(ctx context.Context, ownerID string, postID int64, applicantID string) error
	Decline(ctx context.Context, ownerID string, postID int64, applicantID string) error
	RemoveApplication(ctx context.Context, viewerID string, postID int64) error
	ListInteractions(ctx context.Context, ownerID string, postID int64) (*PostInteractions, error)
}
