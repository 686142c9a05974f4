package testdata

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/enttest"
)

func setupTestDB(t *testing.T) *ent.Client {
	opts := []enttest.Option{
		enttest.WithOptions(ent.Log(t.Log)),
	}

	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1", opts...)
	return client
}

func TestSeed(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	cfg := GeneratorConfig{
		Organizations:  2,
		TeamsPerOrg:    3,
		ReviewsPerTeam: 2,
		Sports:         []string{"soccer"},
	}

	ctx := context.Background()
	require.NoError(t, Seed(ctx, client, cfg))

	assert.Equal(t, 2, client.Organization.Query().CountX(ctx))
	assert.Equal(t, 6, client.Team.Query().CountX(ctx))
	assert.Equal(t, 12, client.Review.Query().CountX(ctx))
	assert.Equal(t, 12, client.Rating.Query().CountX(ctx))
	// One seeded parent account per review
	assert.Equal(t, 12, client.User.Query().CountX(ctx))
}

func TestGenerateClubName(t *testing.T) {
	name := GenerateClubName("soccer")
	assert.NotEmpty(t, name)

	// Unknown sports fall back to a generic name
	assert.NotEmpty(t, GenerateClubName("curling"))
}
