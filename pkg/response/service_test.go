package response

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/enttest"
	"github.com/jordanlanch/squadscore/ent/subscription"
	"github.com/jordanlanch/squadscore/pkg/billing"
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

type fixture struct {
	client *ent.Client
	svc    *Service
	orgID  int
	teamID int
	userID int
	admin  int
	review int
}

func setupFixture(t *testing.T) *fixture {
	client := setupTestDB(t)
	t.Cleanup(func() { client.Close() })
	ctx := context.Background()

	org, err := client.Organization.Create().SetName("Westside United").Save(ctx)
	require.NoError(t, err)
	team, err := client.Team.Create().SetName("U12 Hawks").SetOrganizationID(org.ID).Save(ctx)
	require.NoError(t, err)
	parent, err := client.User.Create().SetEmail("parent@example.com").SetName("Parent").SetPasswordHash("h").Save(ctx)
	require.NoError(t, err)
	admin, err := client.User.Create().SetEmail("admin@example.com").SetName("Admin").SetPasswordHash("h").Save(ctx)
	require.NoError(t, err)

	review, err := client.Review.Create().
		SetUserID(parent.ID).
		SetTeamID(team.ID).
		SetTitle("Great season").
		SetBody("The coaching staff really developed my kid this year.").
		SetSeasonTerm("fall").
		SetSeasonYear(2025).
		Save(ctx)
	require.NoError(t, err)

	// The real plan resolver keeps the gate semantics honest
	plans := billing.NewService(client, &billing.StripeConfig{SecretKey: "sk_test"})

	return &fixture{
		client: client,
		svc:    NewService(client, plans),
		orgID:  org.ID,
		teamID: team.ID,
		userID: parent.ID,
		admin:  admin.ID,
		review: review.ID,
	}
}

func (f *fixture) setOrgPlan(t *testing.T, p subscription.Plan) {
	_, err := f.client.Subscription.Create().
		SetOrganizationID(f.orgID).
		SetPlan(p).
		SetStatus(subscription.StatusActive).
		Save(context.Background())
	require.NoError(t, err)
}

func (f *fixture) setTeamPlan(t *testing.T, p subscription.Plan) {
	_, err := f.client.Subscription.Create().
		SetTeamID(f.teamID).
		SetPlan(p).
		SetStatus(subscription.StatusActive).
		Save(context.Background())
	require.NoError(t, err)
}

func TestRespondToReview_RequiresPaidPlan(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	// No subscription at all
	_, err := f.svc.RespondToReview(ctx, f.admin, f.review, models.ResponseRequest{Body: "Thanks!"})
	assert.ErrorIs(t, err, ErrPlanNotSupported)

	// Basic is not enough either
	f.setOrgPlan(t, subscription.PlanBasic)
	_, err = f.svc.RespondToReview(ctx, f.admin, f.review, models.ResponseRequest{Body: "Thanks!"})
	assert.ErrorIs(t, err, ErrPlanNotSupported)

	assert.Zero(t, f.client.OrgResponse.Query().CountX(ctx))
}

func TestRespondToReview_ProAllows(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	f.setOrgPlan(t, subscription.PlanPro)

	created, err := f.svc.RespondToReview(ctx, f.admin, f.review, models.ResponseRequest{
		Body: "Thanks for the kind words!",
	})
	require.NoError(t, err)
	assert.Equal(t, f.review, created.ReviewID)
	assert.Equal(t, f.admin, created.ResponderID)
}

func TestRespondToReview_TeamBasicOverridesOrgElite(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	// Org holds elite, but the team bought its own basic subscription.
	// The team plan wins, so responding is denied.
	f.setOrgPlan(t, subscription.PlanElite)
	f.setTeamPlan(t, subscription.PlanBasic)

	_, err := f.svc.RespondToReview(ctx, f.admin, f.review, models.ResponseRequest{Body: "Thanks!"})
	assert.ErrorIs(t, err, ErrPlanNotSupported)
}

func TestRespondToReview_UpsertReplacesBody(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	f.setOrgPlan(t, subscription.PlanElite)

	_, err := f.svc.RespondToReview(ctx, f.admin, f.review, models.ResponseRequest{Body: "First draft"})
	require.NoError(t, err)

	updated, err := f.svc.RespondToReview(ctx, f.admin, f.review, models.ResponseRequest{Body: "Final wording"})
	require.NoError(t, err)
	assert.Equal(t, "Final wording", updated.Body)

	// Still exactly one response on the review
	assert.Equal(t, 1, f.client.OrgResponse.Query().CountX(ctx))
}

func TestRespondToReview_UnknownReview(t *testing.T) {
	f := setupFixture(t)

	_, err := f.svc.RespondToReview(context.Background(), f.admin, 9999, models.ResponseRequest{Body: "Thanks!"})
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestDeleteResponse_NotPlanGated(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	f.setOrgPlan(t, subscription.PlanPro)
	_, err := f.svc.RespondToReview(ctx, f.admin, f.review, models.ResponseRequest{Body: "Thanks!"})
	require.NoError(t, err)

	// Simulate the plan lapsing to basic after the response was posted
	f.client.Subscription.Update().SetPlan(subscription.PlanBasic).ExecX(ctx)

	// Delete still works without a qualifying plan
	err = f.svc.DeleteResponse(ctx, f.review)
	require.NoError(t, err)
	assert.Zero(t, f.client.OrgResponse.Query().CountX(ctx))

	err = f.svc.DeleteResponse(ctx, f.review)
	assert.ErrorIs(t, err, ErrResponseNotFound)
}

func TestGetResponse(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.svc.GetResponse(ctx, f.review)
	assert.ErrorIs(t, err, ErrResponseNotFound)

	f.setOrgPlan(t, subscription.PlanPro)
	_, err = f.svc.RespondToReview(ctx, f.admin, f.review, models.ResponseRequest{Body: "Thanks!"})
	require.NoError(t, err)

	got, err := f.svc.GetResponse(ctx, f.review)
	require.NoError(t, err)
	assert.Equal(t, "Thanks!", got.Body)
	require.NotNil(t, got.Edges.Responder)
	assert.Equal(t, f.admin, got.Edges.Responder.ID)
}
