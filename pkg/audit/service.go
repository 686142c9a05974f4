package audit

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/auditlog"
	"github.com/jordanlanch/squadscore/pkg/models"
)

// Action names recorded in the audit log.
const (
	ActionReviewCreated         = "review.create"
	ActionReviewVisibility      = "review.visibility"
	ActionAnonymousUserCreated  = "user.anonymous_create"
	ActionUserBanned            = "user.ban"
	ActionTeamCreated           = "team.create"
	ActionTeamsImported         = "team.import"
	ActionFlagModerated         = "flag.moderate"
	ActionSubscriptionActivated = "subscription.activate"
)

// Service writes and reads the audit trail
type Service struct {
	db *ent.Client
}

// NewService creates a new audit service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// Log records an action. Audit writes are best-effort from the caller's
// perspective; callers decide whether a failure is fatal.
func (s *Service) Log(ctx context.Context, actorID *int, action, targetType, targetID string, metadata map[string]interface{}, ip string) error {
	create := s.db.AuditLog.Create().
		SetAction(action).
		SetTargetType(targetType).
		SetTargetID(targetID)
	if actorID != nil {
		create.SetActorID(*actorID)
	}
	if metadata != nil {
		create.SetMetadata(metadata)
	}
	if ip != "" {
		create.SetIPAddress(ip)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// LogBestEffort records an action and only logs failures. Used on paths
// where the audit write must never fail the operation.
func (s *Service) LogBestEffort(ctx context.Context, actorID *int, action, targetType, targetID string, metadata map[string]interface{}, ip string) {
	if err := s.Log(ctx, actorID, action, targetType, targetID, metadata, ip); err != nil {
		log.Printf("⚠️  Audit write failed for %s on %s/%s: %v", action, targetType, targetID, err)
	}
}

// LogSubscriptionActivated records a webhook-driven plan activation.
// The billing webhook path carries no request context, so a short
// background timeout is used.
func (s *Service) LogSubscriptionActivated(targetType string, targetID int, metadata map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.Log(ctx, nil, ActionSubscriptionActivated, targetType, strconv.Itoa(targetID), metadata, "")
}

// List returns audit entries newest first, optionally filtered by action.
func (s *Service) List(ctx context.Context, p models.Pagination, action string) ([]*ent.AuditLog, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q := s.db.AuditLog.Query()
	if action != "" {
		q = q.Where(auditlog.ActionEQ(action))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	rows, err := q.
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}

	return rows, total, nil
}
