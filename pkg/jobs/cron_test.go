package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/checkoutsession"
	"github.com/jordanlanch/squadscore/ent/enttest"
	"github.com/jordanlanch/squadscore/ent/subscription"
	"github.com/jordanlanch/squadscore/pkg/cache"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *ent.Client {
	opts := []enttest.Option{
		enttest.WithOptions(ent.Log(t.Log)),
	}

	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1", opts...)
	return client
}

func setupTestCache(t *testing.T) *cache.Client {
	mr := miniredis.RunT(t)
	return &cache.Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
}

func seedSession(t *testing.T, client *ent.Client, id string, paid bool, age time.Duration) {
	create := client.CheckoutSession.Create().
		SetID(id).
		SetTargetType(checkoutsession.TargetTypeOrganization).
		SetTargetID(1).
		SetPlan(checkoutsession.PlanPro).
		SetCreatedAt(time.Now().Add(-age))
	if paid {
		create.SetStatus(checkoutsession.StatusPaid)
	}
	_, err := create.Save(context.Background())
	require.NoError(t, err)
}

func TestSweepStaleSessions(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	mgr := NewCronManager(client, setupTestCache(t), nil, "0 3 * * *", 48)
	ctx := context.Background()

	seedSession(t, client, "cs_stale", false, 72*time.Hour)
	seedSession(t, client, "cs_fresh", false, time.Hour)
	seedSession(t, client, "cs_old_paid", true, 72*time.Hour)

	deleted, err := mgr.SweepStaleSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := client.CheckoutSession.Query().All(ctx)
	require.NoError(t, err)
	ids := make([]string, len(remaining))
	for i, s := range remaining {
		ids[i] = s.ID
	}
	assert.ElementsMatch(t, []string{"cs_fresh", "cs_old_paid"}, ids)
}

func TestSweepStaleSessions_LockSkipsSecondRun(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	cacheClient := setupTestCache(t)
	mgr := NewCronManager(client, cacheClient, nil, "0 3 * * *", 48)
	ctx := context.Background()

	seedSession(t, client, "cs_stale_1", false, 72*time.Hour)

	deleted, err := mgr.SweepStaleSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	// Lock is still held, so a second sweep is a no-op even with new
	// stale rows present.
	seedSession(t, client, "cs_stale_2", false, 72*time.Hour)

	deleted, err = mgr.SweepStaleSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
}

func TestPlatformStats(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	mgr := NewCronManager(client, nil, nil, "0 3 * * *", 48)
	ctx := context.Background()

	org := client.Organization.Create().SetName("Westside United").SaveX(ctx)
	team := client.Team.Create().SetName("U12 Hawks").SetOrganizationID(org.ID).SaveX(ctx)
	client.Subscription.Create().
		SetTeamID(team.ID).
		SetPlan(subscription.PlanPro).
		SetStatus(subscription.StatusActive).
		SaveX(ctx)

	stats, err := mgr.PlatformStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats["organizations"])
	assert.Equal(t, 1, stats["teams"])
	assert.Equal(t, 0, stats["public_reviews"])
	assert.Equal(t, 1, stats["paid_subscriptions"])
}
