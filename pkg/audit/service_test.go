package audit

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/enttest"
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

func TestLog(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	u, err := client.User.Create().
		SetEmail("actor@example.com").
		SetName("Actor").
		SetPasswordHash("hashed").
		Save(ctx)
	require.NoError(t, err)

	err = svc.Log(ctx, &u.ID, ActionReviewCreated, "review", "42", map[string]interface{}{
		"team_id": 7,
	}, "203.0.113.5")
	require.NoError(t, err)

	row := client.AuditLog.Query().OnlyX(ctx)
	require.NotNil(t, row.ActorID)
	assert.Equal(t, u.ID, *row.ActorID)
	assert.Equal(t, ActionReviewCreated, row.Action)
	assert.Equal(t, "review", row.TargetType)
	assert.Equal(t, "42", row.TargetID)
	assert.Equal(t, "203.0.113.5", row.IPAddress)
}

func TestLog_SystemActionHasNoActor(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)

	err := svc.LogSubscriptionActivated("organization", 9, map[string]interface{}{
		"plan": "pro",
	})
	require.NoError(t, err)

	row := client.AuditLog.Query().OnlyX(context.Background())
	assert.Nil(t, row.ActorID)
	assert.Equal(t, ActionSubscriptionActivated, row.Action)
	assert.Equal(t, "organization", row.TargetType)
	assert.Equal(t, "9", row.TargetID)
}

func TestList_FilterAndOrder(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	require.NoError(t, svc.Log(ctx, nil, ActionTeamCreated, "team", "1", nil, ""))
	require.NoError(t, svc.Log(ctx, nil, ActionTeamCreated, "team", "2", nil, ""))
	require.NoError(t, svc.Log(ctx, nil, ActionUserBanned, "user", "3", nil, ""))

	rows, total, err := svc.List(ctx, models.Pagination{}, ActionTeamCreated)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, rows, 2)

	rows, total, err = svc.List(ctx, models.Pagination{}, "")
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, rows, 3)
}

func TestList_Pagination(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewService(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Log(ctx, nil, ActionReviewCreated, "review", "1", nil, ""))
	}

	rows, total, err := svc.List(ctx, models.Pagination{Page: 2, PerPage: 2}, "")
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, rows, 2)
}
