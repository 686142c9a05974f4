package team

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/organization"
	"github.com/jordanlanch/squadscore/ent/subscription"
	"github.com/jordanlanch/squadscore/ent/team"
	"github.com/jordanlanch/squadscore/pkg/audit"
	"github.com/jordanlanch/squadscore/pkg/models"
)

// Service sentinel errors
var (
	ErrNotFound             = errors.New("team not found")
	ErrOrganizationNotFound = errors.New("organization not found")
)

// Service handles team business logic
type Service struct {
	db    *ent.Client
	audit *audit.Service
}

// NewService creates a new team service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// SetAuditService sets the audit trail writer
func (s *Service) SetAuditService(a *audit.Service) {
	s.audit = a
}

// CreateTeam creates a team together with its placeholder basic
// subscription. Both rows commit or neither does.
func (s *Service) CreateTeam(ctx context.Context, actorID *int, req models.CreateTeamRequest) (*ent.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := s.db.Organization.Query().
		Where(organization.IDEQ(req.OrganizationID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve organization: %w", err)
	}
	if !exists {
		return nil, ErrOrganizationNotFound
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	created, err := buildTeamCreate(tx, req).Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	// Singly created teams start on the free basic plan
	if _, err := tx.Subscription.Create().
		SetTeamID(created.ID).
		SetPlan(subscription.PlanBasic).
		SetStatus(subscription.StatusActive).
		Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create placeholder subscription: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit team: %w", err)
	}

	log.Printf("✅ Team created: %s (id=%d, org=%d)", created.Name, created.ID, created.OrganizationID)

	if s.audit != nil {
		s.audit.LogBestEffort(ctx, actorID, audit.ActionTeamCreated, "team", strconv.Itoa(created.ID), map[string]interface{}{
			"organization_id": created.OrganizationID,
		}, "")
	}

	return created, nil
}

// ImportTeams bulk-creates teams for an organization. Imported teams
// carry no placeholder subscription; they inherit the organization's
// plan until purchased separately.
func (s *Service) ImportTeams(ctx context.Context, actorID *int, req models.ImportTeamsRequest) ([]*ent.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	exists, err := s.db.Organization.Query().
		Where(organization.IDEQ(req.OrganizationID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve organization: %w", err)
	}
	if !exists {
		return nil, ErrOrganizationNotFound
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	builders := make([]*ent.TeamCreate, 0, len(req.Teams))
	for _, tr := range req.Teams {
		tr.OrganizationID = req.OrganizationID
		builders = append(builders, buildTeamCreate(tx, tr))
	}

	teams, err := tx.Team.CreateBulk(builders...).Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to import teams: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit team import: %w", err)
	}

	log.Printf("✅ Imported %d teams into organization %d", len(teams), req.OrganizationID)

	if s.audit != nil {
		s.audit.LogBestEffort(ctx, actorID, audit.ActionTeamsImported, "organization", strconv.Itoa(req.OrganizationID), map[string]interface{}{
			"count": len(teams),
		}, "")
	}

	return teams, nil
}

// buildTeamCreate assembles a team create builder from a request
func buildTeamCreate(tx *ent.Tx, req models.CreateTeamRequest) *ent.TeamCreate {
	create := tx.Team.Create().
		SetName(req.Name).
		SetOrganizationID(req.OrganizationID)
	if req.Division != "" {
		create.SetDivision(req.Division)
	}
	if req.AgeLevel != "" {
		create.SetAgeLevel(req.AgeLevel)
	}
	if req.City != "" {
		create.SetCity(req.City)
	}
	if req.State != "" {
		create.SetState(req.State)
	}
	return create
}

// GetTeam retrieves a team by ID with its organization
func (s *Service) GetTeam(ctx context.Context, teamID int) (*ent.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	row, err := s.db.Team.Query().
		Where(team.IDEQ(teamID)).
		WithOrganization().
		WithSubscription().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return row, nil
}

// ListTeams lists a team directory page. Public listings only show
// approved teams; admin callers pass approvedOnly=false to see all.
func (s *Service) ListTeams(ctx context.Context, p models.Pagination, orgID int, name string, approvedOnly bool) ([]*ent.Team, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q := s.db.Team.Query()
	if approvedOnly {
		q = q.Where(team.StatusEQ(team.StatusApproved))
	}
	if orgID > 0 {
		q = q.Where(team.OrganizationIDEQ(orgID))
	}
	if name != "" {
		q = q.Where(team.NameContainsFold(name))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count teams: %w", err)
	}

	teams, err := q.
		Order(ent.Asc(team.FieldName)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list teams: %w", err)
	}

	return teams, total, nil
}

// UpdateTeamStatus moves a team through the listing approval flow
func (s *Service) UpdateTeamStatus(ctx context.Context, teamID int, status string) (*ent.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row, err := s.db.Team.UpdateOneID(teamID).
		SetStatus(team.Status(status)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update team status: %w", err)
	}

	return row, nil
}
