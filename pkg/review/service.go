package review

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/rating"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/team"
	"github.com/jordanlanch/squadscore/ent/user"
	"github.com/jordanlanch/squadscore/pkg/audit"
	"github.com/jordanlanch/squadscore/pkg/models"
)

// Service sentinel errors
var (
	ErrNotFound        = errors.New("review not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrDuplicate       = errors.New("a review for this team and season already exists")
	ErrAdminsCannot    = errors.New("admin accounts cannot submit reviews")
	ErrNotAuthorized   = errors.New("user is not the author of this review")
	ErrBannedUser      = errors.New("banned users cannot submit content")
	ErrUnknownReviewer = errors.New("reviewer not found")
)

// SortRecent and SortRating are the supported list orderings.
const (
	SortRecent = "recent"
	SortRating = "rating"
)

// Service handles review business logic
type Service struct {
	db    *ent.Client
	audit *audit.Service
}

// NewService creates a new review service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// SetAuditService sets the audit trail writer
func (s *Service) SetAuditService(a *audit.Service) {
	s.audit = a
}

// CreateReview creates a review with its rating row. One review per
// reviewer, team and season; admin accounts are rejected.
func (s *Service) CreateReview(ctx context.Context, userID int, req models.CreateReviewRequest, clientIP string) (*ent.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	reviewer, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnknownReviewer
		}
		return nil, fmt.Errorf("failed to load reviewer: %w", err)
	}
	if reviewer.IsBanned {
		return nil, ErrBannedUser
	}
	switch reviewer.Role {
	case user.RoleTeamAdmin, user.RoleOrgAdmin, user.RoleSiteAdmin:
		return nil, ErrAdminsCannot
	}

	reviewedTeam, err := s.db.Team.Query().
		Where(team.IDEQ(req.TeamID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to resolve team: %w", err)
	}

	exists, err := s.db.Review.Query().
		Where(
			review.UserIDEQ(userID),
			review.TeamIDEQ(req.TeamID),
			review.SeasonTermEQ(req.SeasonTerm),
			review.SeasonYearEQ(req.SeasonYear),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate review: %w", err)
	}
	if exists {
		return nil, ErrDuplicate
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	create := tx.Review.Create().
		SetUserID(userID).
		SetTeamID(req.TeamID).
		SetTitle(req.Title).
		SetBody(req.Body).
		SetSeasonTerm(req.SeasonTerm).
		SetSeasonYear(req.SeasonYear)
	if reviewedTeam.AgeLevel != "" {
		create.SetAgeLevelAtReview(reviewedTeam.AgeLevel)
	}

	created, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if _, err := tx.Rating.Create().
		SetReviewID(created.ID).
		SetCoaching(req.Rating.Coaching).
		SetDevelopment(req.Rating.Development).
		SetTransparency(req.Rating.Transparency).
		SetCulture(req.Rating.Culture).
		SetSafety(req.Rating.Safety).
		SetOverall(overallScore(req.Rating)).
		Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit review: %w", err)
	}

	log.Printf("✅ Review created: id=%d team=%d season=%s %d", created.ID, req.TeamID, req.SeasonTerm, req.SeasonYear)

	if s.audit != nil {
		s.audit.LogBestEffort(ctx, &userID, audit.ActionReviewCreated, "review", strconv.Itoa(created.ID), map[string]interface{}{
			"team_id": req.TeamID,
		}, clientIP)
	}

	return created, nil
}

// overallScore averages the five rating axes
func overallScore(r models.RatingInput) float64 {
	return float64(r.Coaching+r.Development+r.Transparency+r.Culture+r.Safety) / 5.0
}

// GetReview retrieves a review with its rating and response
func (s *Service) GetReview(ctx context.Context, reviewID int) (*ent.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	row, err := s.db.Review.Query().
		Where(review.IDEQ(reviewID)).
		WithRating().
		WithOrgResponse().
		WithUser().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return row, nil
}

// ListTeamReviews lists a team's public reviews with ratings and
// responses, sorted by recency or by overall rating.
func (s *Service) ListTeamReviews(ctx context.Context, teamID int, p models.Pagination, sortBy string) ([]*ent.Review, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q := s.db.Review.Query().
		Where(
			review.TeamIDEQ(teamID),
			review.IsPublic(true),
		).
		WithRating().
		WithOrgResponse()

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	if sortBy == SortRating {
		// Rating order crosses a relation; sort the team's review set in
		// memory and page over the result.
		rows, err := q.All(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return ratingOf(rows[i]) > ratingOf(rows[j])
		})
		return pageOf(rows, p), total, nil
	}

	rows, err := q.
		Order(ent.Desc(review.FieldCreatedAt)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	return rows, total, nil
}

func ratingOf(r *ent.Review) float64 {
	if r.Edges.Rating == nil {
		return 0
	}
	return r.Edges.Rating.Overall
}

func pageOf(rows []*ent.Review, p models.Pagination) []*ent.Review {
	start := p.Offset()
	if start >= len(rows) {
		return []*ent.Review{}
	}
	end := start + p.Limit()
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// UpdateReview updates a review's content and rating. Only the author
// may edit; edits stamp edited_at and recompute the overall score.
func (s *Service) UpdateReview(ctx context.Context, reviewID, userID int, req models.UpdateReviewRequest) (*ent.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	existing, err := s.db.Review.Query().
		Where(review.IDEQ(reviewID)).
		WithRating().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load review: %w", err)
	}
	if existing.UserID != userID {
		return nil, ErrNotAuthorized
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	update := tx.Review.UpdateOneID(reviewID).
		SetEditedAt(time.Now())
	if req.Title != nil {
		update.SetTitle(*req.Title)
	}
	if req.Body != nil {
		update.SetBody(*req.Body)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	if req.Rating != nil {
		if _, err := tx.Rating.Update().
			Where(rating.ReviewIDEQ(reviewID)).
			SetCoaching(req.Rating.Coaching).
			SetDevelopment(req.Rating.Development).
			SetTransparency(req.Rating.Transparency).
			SetCulture(req.Rating.Culture).
			SetSafety(req.Rating.Safety).
			SetOverall(overallScore(*req.Rating)).
			Save(ctx); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to update rating: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit review update: %w", err)
	}

	return updated, nil
}

// SetVisibility toggles a review's public visibility (moderation)
func (s *Service) SetVisibility(ctx context.Context, reviewID int, public bool, actorID *int) (*ent.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updated, err := s.db.Review.UpdateOneID(reviewID).
		SetIsPublic(public).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update review visibility: %w", err)
	}

	if s.audit != nil {
		s.audit.LogBestEffort(ctx, actorID, audit.ActionReviewVisibility, "review", strconv.Itoa(reviewID), map[string]interface{}{
			"is_public": public,
		}, "")
	}

	return updated, nil
}

// SetHighlight marks a review as its team's single highlighted review,
// clearing any previous highlight.
func (s *Service) SetHighlight(ctx context.Context, reviewID int) (*ent.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	existing, err := s.db.Review.Get(ctx, reviewID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load review: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	// At most one highlight per team
	if _, err := tx.Review.Update().
		Where(
			review.TeamIDEQ(existing.TeamID),
			review.IsHighlight(true),
		).
		SetIsHighlight(false).
		Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to clear previous highlight: %w", err)
	}

	updated, err := tx.Review.UpdateOneID(reviewID).
		SetIsHighlight(true).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to set highlight: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit highlight: %w", err)
	}

	return updated, nil
}

// TeamSummary aggregates a team's public review ratings
type TeamSummary struct {
	TeamID      int     `json:"team_id"`
	ReviewCount int     `json:"review_count"`
	Overall     float64 `json:"overall"`
}

// GetTeamSummary computes the average overall rating across a team's
// public reviews.
func (s *Service) GetTeamSummary(ctx context.Context, teamID int) (*TeamSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.db.Review.Query().
		Where(
			review.TeamIDEQ(teamID),
			review.IsPublic(true),
		).
		WithRating().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load team reviews: %w", err)
	}

	summary := &TeamSummary{TeamID: teamID}
	var sum float64
	for _, r := range rows {
		if r.Edges.Rating == nil {
			continue
		}
		summary.ReviewCount++
		sum += r.Edges.Rating.Overall
	}
	if summary.ReviewCount > 0 {
		summary.Overall = sum / float64(summary.ReviewCount)
	}

	return summary, nil
}

// EnsureAnonymousUser finds or creates the ad-hoc user row for an
// unauthenticated writer, attributed by the caller-presented anonymous
// key and client IP. Creation is audit-logged.
func (s *Service) EnsureAnonymousUser(ctx context.Context, anonymousKey, clientIP string) (*ent.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	name := "anonymous"
	if anonymousKey != "" {
		name = "anonymous-" + anonymousKey
	}

	q := s.db.User.Query().
		Where(user.RoleEQ(user.RoleAnonymous))
	if anonymousKey != "" {
		q = q.Where(user.NameEQ(name))
	} else {
		q = q.Where(user.CreatedIPEQ(clientIP))
	}

	existing, err := q.First(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up anonymous user: %w", err)
	}

	created, err := s.db.User.Create().
		SetName(name).
		SetRole(user.RoleAnonymous).
		SetCreatedIP(clientIP).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create anonymous user: %w", err)
	}

	log.Printf("✅ Ad-hoc anonymous user created: id=%d ip=%s", created.ID, clientIP)

	if s.audit != nil {
		s.audit.LogBestEffort(ctx, nil, audit.ActionAnonymousUserCreated, "user", strconv.Itoa(created.ID), nil, clientIP)
	}

	return created, nil
}
