package review

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/enttest"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/user"
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

func createTestTeam(t *testing.T, client *ent.Client) int {
	ctx := context.Background()
	org, err := client.Organization.Create().SetName("Westside United").Save(ctx)
	require.NoError(t, err)
	team, err := client.Team.Create().
		SetName("U12 Hawks").
		SetOrganizationID(org.ID).
		SetAgeLevel("U12").
		Save(ctx)
	require.NoError(t, err)
	return team.ID
}

func createTestUser(t *testing.T, client *ent.Client, email string, role user.Role) int {
	u, err := client.User.Create().
		SetEmail(email).
		SetName("Test User").
		SetPasswordHash("hashed").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u.ID
}

func testRating() models.RatingInput {
	return models.RatingInput{
		Coaching:     5,
		Development:  4,
		Transparency: 3,
		Culture:      5,
		Safety:       4,
	}
}

func TestCreateReview(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	svc.SetAuditService(audit.NewService(client))
	ctx := context.Background()

	teamID := createTestTeam(t, client)
	userID := createTestUser(t, client, "parent@example.com", user.RoleParent)

	created, err := svc.CreateReview(ctx, userID, models.CreateReviewRequest{
		TeamID:     teamID,
		Title:      "Great season",
		Body:       "The coaching staff really developed my kid this year.",
		SeasonTerm: "fall",
		SeasonYear: 2025,
		Rating:     testRating(),
	}, "203.0.113.5")
	require.NoError(t, err)
	assert.Equal(t, "Great season", created.Title)
	assert.Equal(t, "U12", created.AgeLevelAtReview)
	assert.True(t, created.IsPublic)

	got, err := svc.GetReview(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Edges.Rating)
	assert.InDelta(t, 4.2, got.Edges.Rating.Overall, 0.001)

	// Creation is audit-logged
	assert.Equal(t, 1, client.AuditLog.Query().CountX(ctx))
}

func TestCreateReview_OnePerSeason(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	teamID := createTestTeam(t, client)
	userID := createTestUser(t, client, "parent@example.com", user.RoleParent)

	req := models.CreateReviewRequest{
		TeamID:     teamID,
		Title:      "Great season",
		Body:       "The coaching staff really developed my kid this year.",
		SeasonTerm: "fall",
		SeasonYear: 2025,
		Rating:     testRating(),
	}

	_, err := svc.CreateReview(ctx, userID, req, "")
	require.NoError(t, err)

	_, err = svc.CreateReview(ctx, userID, req, "")
	assert.ErrorIs(t, err, ErrDuplicate)

	// A different season is fine
	req.SeasonTerm = "spring"
	_, err = svc.CreateReview(ctx, userID, req, "")
	assert.NoError(t, err)
}

func TestCreateReview_AdminsRejected(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	teamID := createTestTeam(t, client)

	for _, role := range []user.Role{user.RoleTeamAdmin, user.RoleOrgAdmin, user.RoleSiteAdmin} {
		userID := createTestUser(t, client, string(role)+"@example.com", role)
		_, err := svc.CreateReview(ctx, userID, models.CreateReviewRequest{
			TeamID:     teamID,
			Title:      "Great season",
			Body:       "Admins should never be able to write these.",
			SeasonTerm: "fall",
			SeasonYear: 2025,
			Rating:     testRating(),
		}, "")
		assert.ErrorIs(t, err, ErrAdminsCannot)
	}
}

func TestCreateReview_BannedUserRejected(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	teamID := createTestTeam(t, client)
	userID := createTestUser(t, client, "banned@example.com", user.RoleParent)
	client.User.UpdateOneID(userID).SetIsBanned(true).ExecX(ctx)

	_, err := svc.CreateReview(ctx, userID, models.CreateReviewRequest{
		TeamID:     teamID,
		Title:      "Should not land",
		Body:       "This content must never be persisted at all.",
		SeasonTerm: "fall",
		SeasonYear: 2025,
		Rating:     testRating(),
	}, "")
	assert.ErrorIs(t, err, ErrBannedUser)
}

func TestCreateReview_UnknownTeam(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	userID := createTestUser(t, client, "parent@example.com", user.RoleParent)

	_, err := svc.CreateReview(context.Background(), userID, models.CreateReviewRequest{
		TeamID:     9999,
		Title:      "Great season",
		Body:       "The coaching staff really developed my kid this year.",
		SeasonTerm: "fall",
		SeasonYear: 2025,
		Rating:     testRating(),
	}, "")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestUpdateReview(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	teamID := createTestTeam(t, client)
	authorID := createTestUser(t, client, "author@example.com", user.RoleParent)
	otherID := createTestUser(t, client, "other@example.com", user.RoleParent)

	created, err := svc.CreateReview(ctx, authorID, models.CreateReviewRequest{
		TeamID:     teamID,
		Title:      "Great season",
		Body:       "The coaching staff really developed my kid this year.",
		SeasonTerm: "fall",
		SeasonYear: 2025,
		Rating:     testRating(),
	}, "")
	require.NoError(t, err)
	assert.Nil(t, created.EditedAt)

	// Only the author may edit
	newTitle := "Updated title"
	_, err = svc.UpdateReview(ctx, created.ID, otherID, models.UpdateReviewRequest{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	newRating := models.RatingInput{Coaching: 1, Development: 1, Transparency: 1, Culture: 1, Safety: 1}
	updated, err := svc.UpdateReview(ctx, created.ID, authorID, models.UpdateReviewRequest{
		Title:  &newTitle,
		Rating: &newRating,
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated title", updated.Title)
	assert.NotNil(t, updated.EditedAt)

	got, err := svc.GetReview(ctx, created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.Edges.Rating.Overall, 0.001)
}

func TestListTeamReviews_SortAndVisibility(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	teamID := createTestTeam(t, client)

	low := createTestUser(t, client, "low@example.com", user.RoleParent)
	high := createTestUser(t, client, "high@example.com", user.RoleParent)
	hidden := createTestUser(t, client, "hidden@example.com", user.RoleParent)

	lowReview, err := svc.CreateReview(ctx, low, models.CreateReviewRequest{
		TeamID: teamID, Title: "Mediocre", Body: "Not much development this season.",
		SeasonTerm: "fall", SeasonYear: 2025,
		Rating: models.RatingInput{Coaching: 2, Development: 2, Transparency: 2, Culture: 2, Safety: 2},
	}, "")
	require.NoError(t, err)

	highReview, err := svc.CreateReview(ctx, high, models.CreateReviewRequest{
		TeamID: teamID, Title: "Fantastic", Body: "Best club we have ever been part of.",
		SeasonTerm: "fall", SeasonYear: 2025,
		Rating: models.RatingInput{Coaching: 5, Development: 5, Transparency: 5, Culture: 5, Safety: 5},
	}, "")
	require.NoError(t, err)

	hiddenReview, err := svc.CreateReview(ctx, hidden, models.CreateReviewRequest{
		TeamID: teamID, Title: "Hidden", Body: "This one gets moderated away entirely.",
		SeasonTerm: "fall", SeasonYear: 2025,
		Rating: testRating(),
	}, "")
	require.NoError(t, err)

	_, err = svc.SetVisibility(ctx, hiddenReview.ID, false, nil)
	require.NoError(t, err)

	rows, total, err := svc.ListTeamReviews(ctx, teamID, models.Pagination{}, SortRating)
	require.NoError(t, err)
	assert.Equal(t, 2, total, "hidden reviews are excluded")
	require.Len(t, rows, 2)
	assert.Equal(t, highReview.ID, rows[0].ID)
	assert.Equal(t, lowReview.ID, rows[1].ID)

	rows, _, err = svc.ListTeamReviews(ctx, teamID, models.Pagination{}, SortRecent)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestSetHighlight_SinglePerTeam(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	teamID := createTestTeam(t, client)
	first := createTestUser(t, client, "first@example.com", user.RoleParent)
	second := createTestUser(t, client, "second@example.com", user.RoleParent)

	r1, err := svc.CreateReview(ctx, first, models.CreateReviewRequest{
		TeamID: teamID, Title: "First", Body: "The first review written for this team.",
		SeasonTerm: "fall", SeasonYear: 2025, Rating: testRating(),
	}, "")
	require.NoError(t, err)
	r2, err := svc.CreateReview(ctx, second, models.CreateReviewRequest{
		TeamID: teamID, Title: "Second", Body: "The second review written for this team.",
		SeasonTerm: "fall", SeasonYear: 2025, Rating: testRating(),
	}, "")
	require.NoError(t, err)

	_, err = svc.SetHighlight(ctx, r1.ID)
	require.NoError(t, err)
	_, err = svc.SetHighlight(ctx, r2.ID)
	require.NoError(t, err)

	highlights := client.Review.Query().
		Where(review.TeamIDEQ(teamID), review.IsHighlight(true)).
		AllX(ctx)
	require.Len(t, highlights, 1)
	assert.Equal(t, r2.ID, highlights[0].ID)
}

func TestGetTeamSummary(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	teamID := createTestTeam(t, client)

	summary, err := svc.GetTeamSummary(ctx, teamID)
	require.NoError(t, err)
	assert.Zero(t, summary.ReviewCount)
	assert.Zero(t, summary.Overall)

	u1 := createTestUser(t, client, "one@example.com", user.RoleParent)
	u2 := createTestUser(t, client, "two@example.com", user.RoleParent)

	_, err = svc.CreateReview(ctx, u1, models.CreateReviewRequest{
		TeamID: teamID, Title: "Solid", Body: "A good season overall for everyone involved.",
		SeasonTerm: "fall", SeasonYear: 2025,
		Rating: models.RatingInput{Coaching: 4, Development: 4, Transparency: 4, Culture: 4, Safety: 4},
	}, "")
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, u2, models.CreateReviewRequest{
		TeamID: teamID, Title: "Poor", Body: "Communication from the club was lacking badly.",
		SeasonTerm: "fall", SeasonYear: 2025,
		Rating: models.RatingInput{Coaching: 2, Development: 2, Transparency: 2, Culture: 2, Safety: 2},
	}, "")
	require.NoError(t, err)

	summary, err = svc.GetTeamSummary(ctx, teamID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ReviewCount)
	assert.InDelta(t, 3.0, summary.Overall, 0.001)
}

func TestEnsureAnonymousUser(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	svc.SetAuditService(audit.NewService(client))
	ctx := context.Background()

	u1, err := svc.EnsureAnonymousUser(ctx, "abc123", "203.0.113.5")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAnonymous, u1.Role)
	assert.Equal(t, "anonymous-abc123", u1.Name)
	assert.Nil(t, u1.Email)

	// Same key resolves to the same row
	u2, err := svc.EnsureAnonymousUser(ctx, "abc123", "198.51.100.7")
	require.NoError(t, err)
	assert.Equal(t, u1.ID, u2.ID)

	// Without a key, attribution falls back to the client IP
	u3, err := svc.EnsureAnonymousUser(ctx, "", "198.51.100.7")
	require.NoError(t, err)
	assert.NotEqual(t, u1.ID, u3.ID)

	u4, err := svc.EnsureAnonymousUser(ctx, "", "198.51.100.7")
	require.NoError(t, err)
	assert.Equal(t, u3.ID, u4.ID)

	// Only the two creations were audit-logged
	assert.Equal(t, 2, client.AuditLog.Query().CountX(ctx))
}
