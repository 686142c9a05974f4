package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/enttest"
	"github.com/jordanlanch/squadscore/ent/user"
	"github.com/jordanlanch/squadscore/pkg/billing"
	"github.com/jordanlanch/squadscore/pkg/response"
	"github.com/jordanlanch/squadscore/pkg/review"
)

func setupReviewTest(t *testing.T) (*ent.Client, *ReviewHandler, int) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	ctx := context.Background()

	org, err := client.Organization.Create().SetName("Westside United").Save(ctx)
	require.NoError(t, err)
	team, err := client.Team.Create().SetName("U12 Hawks").SetOrganizationID(org.ID).Save(ctx)
	require.NoError(t, err)

	handler := NewReviewHandler(review.NewService(client), nil)

	return client, handler, team.ID
}

func reviewBody(teamID int) string {
	return fmt.Sprintf(`{
		"team_id": %d,
		"title": "Great coaching staff",
		"body": "Our player developed a lot this season and had fun doing it.",
		"season_term": "fall",
		"season_year": 2025,
		"rating": {"coaching":5,"development":4,"transparency":4,"culture":5,"safety":5}
	}`, teamID)
}

func TestReviewHandler_CreateReview(t *testing.T) {
	t.Run("anonymous_caller_gets_adhoc_user", func(t *testing.T) {
		client, handler, teamID := setupReviewTest(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(reviewBody(teamID)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("X-Anonymous-Id", "device-abc123")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		// No user_id in context

		err := handler.CreateReview(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		anon := client.User.Query().
			Where(user.RoleEQ(user.RoleAnonymous)).
			OnlyX(context.Background())
		assert.Equal(t, "anonymous-device-abc123", anon.Name)

		assert.Equal(t, 1, client.Review.Query().CountX(context.Background()))
	})

	t.Run("authenticated_caller_is_the_author", func(t *testing.T) {
		client, handler, teamID := setupReviewTest(t)
		ctx := context.Background()

		parent := client.User.Create().
			SetEmail("parent@example.com").
			SetName("Parent").
			SetPasswordHash("h").
			SaveX(ctx)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(reviewBody(teamID)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", parent.ID)

		err := handler.CreateReview(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		created := client.Review.Query().OnlyX(ctx)
		assert.Equal(t, parent.ID, created.UserID)
	})

	t.Run("admins_rejected", func(t *testing.T) {
		client, handler, teamID := setupReviewTest(t)

		admin := client.User.Create().
			SetEmail("admin@example.com").
			SetName("Admin").
			SetPasswordHash("h").
			SetRole(user.RoleOrgAdmin).
			SaveX(context.Background())

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(reviewBody(teamID)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", admin.ID)

		err := handler.CreateReview(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown_team", func(t *testing.T) {
		_, handler, _ := setupReviewTest(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(reviewBody(9999)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.CreateReview(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "TEAM_NOT_FOUND", resp["error"])
	})
}

func TestResponseHandler_Respond(t *testing.T) {
	t.Run("unpaid_plan_rejected", func(t *testing.T) {
		client, _, teamID := setupReviewTest(t)
		ctx := context.Background()

		author := client.User.Create().
			SetEmail("author@example.com").
			SetName("Author").
			SetPasswordHash("h").
			SaveX(ctx)
		r := client.Review.Create().
			SetUserID(author.ID).
			SetTeamID(teamID).
			SetTitle("Mixed experience").
			SetBody("Good drills, poor communication around schedule changes.").
			SetSeasonTerm("fall").
			SetSeasonYear(2025).
			SaveX(ctx)

		plans := billing.NewService(client, &billing.StripeConfig{SecretKey: "sk_test"})
		handler := NewResponseHandler(response.NewService(client, plans), nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/reviews/1/response", strings.NewReader(`{"body":"Thanks for the feedback."}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("reviewId")
		c.SetParamValues(fmt.Sprintf("%d", r.ID))
		c.Set("user_id", author.ID)

		err := handler.Respond(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "PLAN_NOT_SUPPORTED", resp["error"])
	})
}
