package flag

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/jordanlanch/squadscore/ent"
	entflag "github.com/jordanlanch/squadscore/ent/flag"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/pkg/audit"
	"github.com/jordanlanch/squadscore/pkg/models"
)

// Service sentinel errors
var (
	ErrReviewNotFound = errors.New("review not found")
	ErrFlagNotFound   = errors.New("flag not found")
	ErrFlagClosed     = errors.New("flag has already been resolved or rejected")
	ErrBannedUser     = errors.New("banned users cannot submit content")
)

// Service handles moderation flags against reviews
type Service struct {
	db    *ent.Client
	audit *audit.Service
}

// NewService creates a new flag service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// SetAuditService sets the audit trail writer
func (s *Service) SetAuditService(a *audit.Service) {
	s.audit = a
}

// FlagReview raises a moderation flag against a review. The client IP
// is recorded for anonymous attribution.
func (s *Service) FlagReview(ctx context.Context, reporterID, reviewID int, reason, clientIP string) (*ent.Flag, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	reporter, err := s.db.User.Get(ctx, reporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reporter: %w", err)
	}
	if reporter.IsBanned {
		return nil, ErrBannedUser
	}

	exists, err := s.db.Review.Query().
		Where(review.IDEQ(reviewID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve review: %w", err)
	}
	if !exists {
		return nil, ErrReviewNotFound
	}

	create := s.db.Flag.Create().
		SetReviewID(reviewID).
		SetReporterID(reporterID).
		SetReason(reason)
	if clientIP != "" {
		create.SetReporterIP(clientIP)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create flag: %w", err)
	}

	log.Printf("⚠️  Review %d flagged by user %d", reviewID, reporterID)

	return created, nil
}

// ListFlags lists flags newest first, optionally filtered by status
func (s *Service) ListFlags(ctx context.Context, p models.Pagination, status string) ([]*ent.Flag, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q := s.db.Flag.Query()
	if status != "" {
		q = q.Where(entflag.StatusEQ(entflag.Status(status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count flags: %w", err)
	}

	flags, err := q.
		WithReview().
		WithReporter().
		Order(ent.Desc(entflag.FieldCreatedAt)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list flags: %w", err)
	}

	return flags, total, nil
}

// GetFlag retrieves a flag with its review and reporter
func (s *Service) GetFlag(ctx context.Context, flagID int) (*ent.Flag, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	f, err := s.db.Flag.Query().
		Where(entflag.IDEQ(flagID)).
		WithReview().
		WithReporter().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrFlagNotFound
		}
		return nil, fmt.Errorf("failed to get flag: %w", err)
	}

	return f, nil
}

// ModerateFlag records an admin decision on a flag. Resolved and
// rejected flags are terminal.
func (s *Service) ModerateFlag(ctx context.Context, flagID int, status string, actorID *int) (*ent.Flag, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	existing, err := s.db.Flag.Get(ctx, flagID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrFlagNotFound
		}
		return nil, fmt.Errorf("failed to load flag: %w", err)
	}

	if existing.Status == entflag.StatusResolved || existing.Status == entflag.StatusRejected {
		return nil, ErrFlagClosed
	}

	updated, err := existing.Update().
		SetStatus(entflag.Status(status)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to moderate flag: %w", err)
	}

	if s.audit != nil {
		s.audit.LogBestEffort(ctx, actorID, audit.ActionFlagModerated, "flag", strconv.Itoa(flagID), map[string]interface{}{
			"status": status,
		}, "")
	}

	return updated, nil
}
