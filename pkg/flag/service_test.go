package flag

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/enttest"
	entflag "github.com/jordanlanch/squadscore/ent/flag"
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

func seedReview(t *testing.T, client *ent.Client) (reviewID, reporterID int) {
	ctx := context.Background()

	org, err := client.Organization.Create().SetName("Westside United").Save(ctx)
	require.NoError(t, err)
	team, err := client.Team.Create().SetName("U12 Hawks").SetOrganizationID(org.ID).Save(ctx)
	require.NoError(t, err)
	author, err := client.User.Create().SetEmail("author@example.com").SetName("Author").SetPasswordHash("h").Save(ctx)
	require.NoError(t, err)
	reporter, err := client.User.Create().SetEmail("reporter@example.com").SetName("Reporter").SetPasswordHash("h").Save(ctx)
	require.NoError(t, err)

	r, err := client.Review.Create().
		SetUserID(author.ID).
		SetTeamID(team.ID).
		SetTitle("Questionable claims").
		SetBody("This review makes claims that other families dispute.").
		SetSeasonTerm("fall").
		SetSeasonYear(2025).
		Save(ctx)
	require.NoError(t, err)

	return r.ID, reporter.ID
}

func TestFlagReview(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	reviewID, reporterID := seedReview(t, client)

	f, err := svc.FlagReview(ctx, reporterID, reviewID, "Contains personal attacks", "203.0.113.5")
	require.NoError(t, err)
	assert.Equal(t, entflag.StatusOpen, f.Status)
	assert.Equal(t, "Contains personal attacks", f.Reason)
	assert.Equal(t, "203.0.113.5", f.ReporterIP)
}

func TestFlagReview_UnknownReview(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	_, reporterID := seedReview(t, client)

	_, err := svc.FlagReview(context.Background(), reporterID, 9999, "Spam", "")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestFlagReview_BannedReporter(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	reviewID, reporterID := seedReview(t, client)
	client.User.UpdateOneID(reporterID).SetIsBanned(true).ExecX(ctx)

	_, err := svc.FlagReview(ctx, reporterID, reviewID, "Spam", "")
	assert.ErrorIs(t, err, ErrBannedUser)
}

func TestListFlags_StatusFilter(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	reviewID, reporterID := seedReview(t, client)

	f1, err := svc.FlagReview(ctx, reporterID, reviewID, "Spam", "")
	require.NoError(t, err)
	_, err = svc.FlagReview(ctx, reporterID, reviewID, "Harassment", "")
	require.NoError(t, err)

	_, err = svc.ModerateFlag(ctx, f1.ID, "resolved", nil)
	require.NoError(t, err)

	flags, total, err := svc.ListFlags(ctx, models.Pagination{}, "open")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, flags, 1)
	assert.Equal(t, "Harassment", flags[0].Reason)
	require.NotNil(t, flags[0].Edges.Review)
	require.NotNil(t, flags[0].Edges.Reporter)

	_, total, err = svc.ListFlags(ctx, models.Pagination{}, "")
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestModerateFlag_TerminalStatuses(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	svc.SetAuditService(audit.NewService(client))
	ctx := context.Background()

	reviewID, reporterID := seedReview(t, client)

	f, err := svc.FlagReview(ctx, reporterID, reviewID, "Spam", "")
	require.NoError(t, err)

	// open -> reviewed -> resolved is a valid path
	updated, err := svc.ModerateFlag(ctx, f.ID, "reviewed", nil)
	require.NoError(t, err)
	assert.Equal(t, entflag.StatusReviewed, updated.Status)

	updated, err = svc.ModerateFlag(ctx, f.ID, "resolved", nil)
	require.NoError(t, err)
	assert.Equal(t, entflag.StatusResolved, updated.Status)

	// Resolved is terminal
	_, err = svc.ModerateFlag(ctx, f.ID, "rejected", nil)
	assert.ErrorIs(t, err, ErrFlagClosed)

	// Both decisions were audit-logged
	assert.Equal(t, 2, client.AuditLog.Query().CountX(ctx))
}

func TestGetFlag(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	reviewID, reporterID := seedReview(t, client)
	f, err := svc.FlagReview(ctx, reporterID, reviewID, "Spam", "")
	require.NoError(t, err)

	got, err := svc.GetFlag(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)

	_, err = svc.GetFlag(ctx, 9999)
	assert.ErrorIs(t, err, ErrFlagNotFound)
}
