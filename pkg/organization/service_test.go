package organization

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/enttest"
	"github.com/jordanlanch/squadscore/ent/subscription"
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

func TestCreateOrganization_CreatesPlaceholderSubscription(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	org, err := svc.CreateOrganization(ctx, models.CreateOrganizationRequest{
		Name:  "Westside United",
		City:  "Portland",
		State: "OR",
	})
	require.NoError(t, err)
	assert.Equal(t, "Westside United", org.Name)

	sub := client.Subscription.Query().
		Where(subscription.OrganizationIDEQ(org.ID)).
		OnlyX(ctx)
	assert.Equal(t, subscription.PlanBasic, sub.Plan)
	assert.Equal(t, subscription.StatusActive, sub.Status)
}

func TestCreateOrganization_EmptyNameRejected(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)

	_, err := svc.CreateOrganization(context.Background(), models.CreateOrganizationRequest{})
	assert.Error(t, err)

	// Nothing committed on failure
	assert.Zero(t, client.Organization.Query().CountX(context.Background()))
	assert.Zero(t, client.Subscription.Query().CountX(context.Background()))
}

func TestGetOrganization(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	org, err := svc.CreateOrganization(ctx, models.CreateOrganizationRequest{Name: "Westside United"})
	require.NoError(t, err)

	got, err := svc.GetOrganization(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, org.ID, got.ID)
	require.NotNil(t, got.Edges.Subscription)
	assert.Equal(t, subscription.PlanBasic, got.Edges.Subscription.Plan)

	_, err = svc.GetOrganization(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrganizations_Filters(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	_, err := svc.CreateOrganization(ctx, models.CreateOrganizationRequest{Name: "Westside United", State: "OR"})
	require.NoError(t, err)
	_, err = svc.CreateOrganization(ctx, models.CreateOrganizationRequest{Name: "Eastside FC", State: "WA"})
	require.NoError(t, err)

	orgs, total, err := svc.ListOrganizations(ctx, models.Pagination{}, "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, orgs, 2)

	orgs, total, err = svc.ListOrganizations(ctx, models.Pagination{}, "westside", "")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Westside United", orgs[0].Name)

	orgs, total, err = svc.ListOrganizations(ctx, models.Pagination{}, "", "wa")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Eastside FC", orgs[0].Name)
}

func TestUpdateOrganization(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	org, err := svc.CreateOrganization(ctx, models.CreateOrganizationRequest{Name: "Westside United"})
	require.NoError(t, err)

	newName := "Westside United FC"
	newCity := "Beaverton"
	updated, err := svc.UpdateOrganization(ctx, org.ID, UpdateOrganizationRequest{
		Name: &newName,
		City: &newCity,
	})
	require.NoError(t, err)
	assert.Equal(t, "Westside United FC", updated.Name)
	assert.Equal(t, "Beaverton", updated.City)

	_, err = svc.UpdateOrganization(ctx, 9999, UpdateOrganizationRequest{Name: &newName})
	assert.ErrorIs(t, err, ErrNotFound)
}
