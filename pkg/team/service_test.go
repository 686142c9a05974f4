package team

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/enttest"
	"github.com/jordanlanch/squadscore/ent/subscription"
	"github.com/jordanlanch/squadscore/ent/team"
	"github.com/jordanlanch/squadscore/pkg/audit"
	"github.com/jordanlanch/squadscore/pkg/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *ent.Client {
	opts := []enttest.Option{
		enttest.WithOptions(ent.Log(t.Log)),
	}

	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1", opts...)
	return client
}

func createTestOrg(t *testing.T, client *ent.Client, name string) int {
	org, err := client.Organization.Create().
		SetName(name).
		Save(context.Background())
	require.NoError(t, err)
	return org.ID
}

func TestCreateTeam_CreatesPlaceholderSubscription(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	svc.SetAuditService(audit.NewService(client))
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")

	created, err := svc.CreateTeam(ctx, nil, models.CreateTeamRequest{
		Name:           "U12 Hawks",
		OrganizationID: orgID,
		AgeLevel:       "U12",
	})
	require.NoError(t, err)
	assert.Equal(t, "U12 Hawks", created.Name)
	assert.Equal(t, team.StatusPending, created.Status)

	sub := client.Subscription.Query().
		Where(subscription.TeamIDEQ(created.ID)).
		OnlyX(ctx)
	assert.Equal(t, subscription.PlanBasic, sub.Plan)

	// Audit trail records the creation
	assert.Equal(t, 1, client.AuditLog.Query().CountX(ctx))
}

func TestCreateTeam_UnknownOrganization(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)

	_, err := svc.CreateTeam(context.Background(), nil, models.CreateTeamRequest{
		Name:           "U12 Hawks",
		OrganizationID: 9999,
	})
	assert.ErrorIs(t, err, ErrOrganizationNotFound)
	assert.Zero(t, client.Team.Query().CountX(context.Background()))
}

func TestImportTeams_NoPlaceholderSubscriptions(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")

	teams, err := svc.ImportTeams(ctx, nil, models.ImportTeamsRequest{
		OrganizationID: orgID,
		Teams: []models.CreateTeamRequest{
			{Name: "U10 Falcons"},
			{Name: "U12 Hawks"},
			{Name: "U14 Eagles"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, teams, 3)

	// Imported teams inherit the org plan, no subscription rows of their own
	assert.Zero(t, client.Subscription.Query().CountX(ctx))
	assert.Equal(t, 3, client.Team.Query().CountX(ctx))
}

func TestImportTeams_AtomicOnFailure(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")

	// Second entry violates the non-empty name constraint
	_, err := svc.ImportTeams(ctx, nil, models.ImportTeamsRequest{
		OrganizationID: orgID,
		Teams: []models.CreateTeamRequest{
			{Name: "U10 Falcons"},
			{Name: ""},
		},
	})
	assert.Error(t, err)
	assert.Zero(t, client.Team.Query().CountX(ctx), "a failed import leaves no partial rows")
}

func TestGetTeam(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	created, err := svc.CreateTeam(ctx, nil, models.CreateTeamRequest{
		Name:           "U12 Hawks",
		OrganizationID: orgID,
	})
	require.NoError(t, err)

	got, err := svc.GetTeam(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.Edges.Organization)
	assert.Equal(t, "Westside United", got.Edges.Organization.Name)

	_, err = svc.GetTeam(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTeams_ApprovedOnly(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")

	pending, err := svc.CreateTeam(ctx, nil, models.CreateTeamRequest{Name: "U12 Hawks", OrganizationID: orgID})
	require.NoError(t, err)
	approved, err := svc.CreateTeam(ctx, nil, models.CreateTeamRequest{Name: "U14 Eagles", OrganizationID: orgID})
	require.NoError(t, err)

	_, err = svc.UpdateTeamStatus(ctx, approved.ID, "approved")
	require.NoError(t, err)

	teams, total, err := svc.ListTeams(ctx, models.Pagination{}, orgID, "", true)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, approved.ID, teams[0].ID)

	teams, total, err = svc.ListTeams(ctx, models.Pagination{}, orgID, "", false)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, teams, 2)
	assert.Equal(t, team.StatusPending, pending.Status)
}

func TestUpdateTeamStatus_UnknownTeam(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)

	_, err := svc.UpdateTeamStatus(context.Background(), 9999, "approved")
	assert.ErrorIs(t, err, ErrNotFound)
}
