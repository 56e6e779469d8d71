package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
)

type interactionUsecase struct {
	interactionRepo domain.InteractionRepository
	postRepo        domain.PostRepository
	userRepo        domain.UserRepository
}

func NewInteractionUsecase(interactionRepo domain.InteractionRepository, postRepo domain.PostRepository, userRepo domain.UserRepository) domain.InteractionUsecase {
	return &interactionUsecase{
		interactionRepo: interactionRepo,
		postRepo:        postRepo,
		userRepo:        userRepo,
	}
}

func (u *interactionUsecase) getPost(ctx context.Context, postID int64) (*domain.Post, error) {
	post, err := u.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, err
	}
	return post, nil
}

// checkApplicant validates an applicant id supplied by the post owner.
// Unlike viewer ids, these arrive as path parameters and may be malformed
// or reference a deleted account.
func (u *interactionUsecase) checkApplicant(ctx context.Context, applicantID string) error {
	if uuid.Validate(applicantID) != nil {
		return apperror.BadRequest("Invalid user ID")
	}
	if _, err := u.userRepo.GetByID(ctx, applicantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}

// ToggleApplication flips the viewer's application on a post.
//
// Transitions:
//
//	none     -> applied   (apply)
//	applied  -> none      (withdraw)
//	declined -> applied   (re-apply, clears the decline)
//	approved -> approved  (no-op; the owner controls approved applications)
func (u *interactionUsecase) ToggleApplication(ctx context.Context, viewerID string, postID int64) (domain.ApplicationState, error) {
	post, err := u.getPost(ctx, postID)
	if err != nil {
		return domain.StateNone, err
	}
	if post.OwnerID == viewerID {
		return domain.StateNone, apperror.BadRequest("You cannot apply to your own post")
	}

	state, err := u.interactionRepo.GetState(ctx, postID, viewerID)
	if err != nil {
		return domain.StateNone, err
	}

	switch state {
	case domain.StateNone, domain.StateDeclined:
		if err := u.interactionRepo.SetState(ctx, postID, viewerID, domain.StateApplied); err != nil {
			return domain.StateNone, err
		}
		return domain.StateApplied, nil
	case domain.StateApplied:
		if _, err := u.interactionRepo.ClearState(ctx, postID, viewerID); err != nil {
			return domain.StateNone, err
		}
		return domain.StateNone, nil
	case domain.StateApproved:
		return domain.StateApproved, nil
	default:
		return domain.StateNone, apperror.Internal(errors.New("unknown application state: " + string(state)))
	}
}

// ToggleInterest flips the viewer's interest flag. Interest is independent
// of the application state.
func (u *interactionUsecase) ToggleInterest(ctx context.Context, viewerID string, postID int64) (bool, error) {
	post, err := u.getPost(ctx, postID)
	if err != nil {
		return false, err
	}
	if post.OwnerID == viewerID {
		return false, apperror.BadRequest("You cannot mark interest in your own post")
	}

	has, err := u.interactionRepo.HasInterest(ctx, postID, viewerID)
	if err != nil {
		return false, err
	}

	if has {
		if err := u.interactionRepo.RemoveInterest(ctx, postID, viewerID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := u.interactionRepo.AddInterest(ctx, postID, viewerID); err != nil {
		return false, err
	}
	return true, nil
}

// Approve moves an applicant to approved. Any prior state is accepted so
// the owner can approve someone who never applied (a direct hire).
func (u *interactionUsecase) Approve(ctx context.Context, ownerID string, postID int64, applicantID string) error {
	post, err := u.getPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.OwnerID != ownerID {
		return apperror.Forbidden("Only the post owner can approve applicants")
	}
	if applicantID == ownerID {
		return apperror.BadRequest("You cannot approve yourself")
	}
	if err := u.checkApplicant(ctx, applicantID); err != nil {
		return err
	}

	return u.interactionRepo.SetState(ctx, postID, applicantID, domain.StateApproved)
}

// Decline rejects a pending application. Only applied can move to
// declined; declining an approved or absent application is a conflict.
func (u *interactionUsecase) Decline(ctx context.Context, ownerID string, postID int64, applicantID string) error {
	post, err := u.getPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.OwnerID != ownerID {
		return apperror.Forbidden("Only the post owner can decline applicants")
	}
	if err := u.checkApplicant(ctx, applicantID); err != nil {
		return err
	}

	state, err := u.interactionRepo.GetState(ctx, postID, applicantID)
	if err != nil {
		return err
	}
	if state != domain.StateApplied {
		return apperror.Conflict("Only pending applications can be declined")
	}

	return u.interactionRepo.SetState(ctx, postID, applicantID, domain.StateDeclined)
}

// RemoveApplication lets the applicant dismiss a declined application so
// it no longer shows in their interactions. It is a no-op for any other
// state.
func (u *interactionUsecase) RemoveApplication(ctx context.Context, viewerID string, postID int64) error {
	if _, err := u.getPost(ctx, postID); err != nil {
		return err
	}

	_, err := u.interactionRepo.ClearStateIf(ctx, postID, viewerID, domain.StateDeclined)
	return err
}

func (u *interactionUsecase) ListInteractions(ctx context.Context, ownerID string, postID int64) (*domain.PostInteractions, error) {
	post, err := u.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.OwnerID != ownerID {
		return nil, apperror.Forbidden("Only the post owner can view applicants")
	}

	applicants, err := u.interactionRepo.ListApplicants(ctx, postID)
	if err != nil {
		return nil, err
	}
	interested, err := u.interactionRepo.ListInterested(ctx, postID)
	if err != nil {
		return nil, err
	}

	if applicants == nil {
		applicants = []domain.Applicant{}
	}
	if interested == nil {
		interested = []domain.UserSummary{}
	}

	return &domain.PostInteractions{
		Applicants: applicants,
		Interested: interested,
	}, nil
}
