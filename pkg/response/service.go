package response

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/orgresponse"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/pkg/models"
	"github.com/jordanlanch/squadscore/pkg/plan"
)

// Service sentinel errors
var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrResponseNotFound = errors.New("response not found")
	ErrPlanNotSupported = errors.New("current plan does not allow responding to reviews")
)

// PlanResolver resolves the plan that governs a team's paid features.
type PlanResolver interface {
	EffectivePlanForTeam(ctx context.Context, teamID int) (string, error)
}

// Service handles organization responses to reviews. Responding is a
// paid feature: writes are gated on the effective plan, deletes are not.
type Service struct {
	db    *ent.Client
	plans PlanResolver
}

// NewService creates a new response service
func NewService(db *ent.Client, plans PlanResolver) *Service {
	return &Service{
		db:    db,
		plans: plans,
	}
}

// RespondToReview creates or replaces the single organization response
// on a review. The plan gate runs on every write, create and update
// alike.
func (s *Service) RespondToReview(ctx context.Context, responderID, reviewID int, req models.ResponseRequest) (*ent.OrgResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	target, err := s.db.Review.Query().
		Where(review.IDEQ(reviewID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to load review: %w", err)
	}

	effective, err := s.plans.EffectivePlanForTeam(ctx, target.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve effective plan: %w", err)
	}
	if !plan.AllowsResponses(effective) {
		return nil, ErrPlanNotSupported
	}

	existing, err := s.db.OrgResponse.Query().
		Where(orgresponse.ReviewIDEQ(reviewID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load existing response: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetBody(req.Body).
			SetResponderID(responderID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update response: %w", err)
		}
		return updated, nil
	}

	created, err := s.db.OrgResponse.Create().
		SetReviewID(reviewID).
		SetResponderID(responderID).
		SetBody(req.Body).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create response: %w", err)
	}

	log.Printf("✅ Response posted on review %d by user %d", reviewID, responderID)

	return created, nil
}

// GetResponse returns the response attached to a review
func (s *Service) GetResponse(ctx context.Context, reviewID int) (*ent.OrgResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	resp, err := s.db.OrgResponse.Query().
		Where(orgresponse.ReviewIDEQ(reviewID)).
		WithResponder().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrResponseNotFound
		}
		return nil, fmt.Errorf("failed to get response: %w", err)
	}

	return resp, nil
}

// DeleteResponse removes the response from a review. Deliberately not
// plan-gated: an expired plan can still take a response down.
func (s *Service) DeleteResponse(ctx context.Context, reviewID int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := s.db.OrgResponse.Delete().
		Where(orgresponse.ReviewIDEQ(reviewID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete response: %w", err)
	}
	if n == 0 {
		return ErrResponseNotFound
	}

	log.Printf("🗑️  Response deleted from review %d", reviewID)

	return nil
}
