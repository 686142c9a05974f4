package organization

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/organization"
	"github.com/jordanlanch/squadscore/ent/subscription"
	"github.com/jordanlanch/squadscore/pkg/models"
)

// ErrNotFound is returned when the organization does not exist
var ErrNotFound = errors.New("organization not found")

// Service handles organization business logic
type Service struct {
	db *ent.Client
}

// NewService creates a new organization service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// CreateOrganization creates an organization together with its
// placeholder basic subscription. Both rows commit or neither does.
func (s *Service) CreateOrganization(ctx context.Context, req models.CreateOrganizationRequest) (*ent.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	create := tx.Organization.Create().
		SetName(req.Name)
	if req.Description != "" {
		create.SetDescription(req.Description)
	}
	if req.Website != "" {
		create.SetWebsite(req.Website)
	}
	if req.City != "" {
		create.SetCity(req.City)
	}
	if req.State != "" {
		create.SetState(req.State)
	}

	org, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	// Every organization starts on the free basic plan
	if _, err := tx.Subscription.Create().
		SetOrganizationID(org.ID).
		SetPlan(subscription.PlanBasic).
		SetStatus(subscription.StatusActive).
		Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create placeholder subscription: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit organization: %w", err)
	}

	log.Printf("✅ Organization created: %s (id=%d)", org.Name, org.ID)

	return org, nil
}

// GetOrganization retrieves an organization by ID with its teams
func (s *Service) GetOrganization(ctx context.Context, orgID int) (*ent.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	org, err := s.db.Organization.Query().
		Where(organization.IDEQ(orgID)).
		WithTeams().
		WithSubscription().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return org, nil
}

// ListOrganizations lists approved organizations, optionally filtered
// by name substring and state.
func (s *Service) ListOrganizations(ctx context.Context, p models.Pagination, name, state string) ([]*ent.Organization, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q := s.db.Organization.Query().
		Where(organization.StatusEQ(organization.StatusApproved))
	if name != "" {
		q = q.Where(organization.NameContainsFold(name))
	}
	if state != "" {
		q = q.Where(organization.StateEqualFold(state))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	orgs, err := q.
		Order(ent.Asc(organization.FieldName)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}

	return orgs, total, nil
}

// UpdateOrganizationRequest represents a request to update an organization
type UpdateOrganizationRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description"`
	Website     *string `json:"website" validate:"omitempty,url"`
	City        *string `json:"city"`
	State       *string `json:"state"`
}

// UpdateOrganization updates an organization's profile fields
func (s *Service) UpdateOrganization(ctx context.Context, orgID int, req UpdateOrganizationRequest) (*ent.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := s.db.Organization.UpdateOneID(orgID)

	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.Website != nil {
		update.SetWebsite(*req.Website)
	}
	if req.City != nil {
		update.SetCity(*req.City)
	}
	if req.State != nil {
		update.SetState(*req.State)
	}

	org, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return org, nil
}
