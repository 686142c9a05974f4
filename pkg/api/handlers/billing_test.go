package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/checkoutsession"
	"github.com/jordanlanch/squadscore/ent/enttest"
	"github.com/jordanlanch/squadscore/pkg/billing"
)

const testWebhookSecret = "whsec_test_secret"

func setupBillingTest(t *testing.T) (*ent.Client, *BillingHandler) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	service := billing.NewService(client, &billing.StripeConfig{
		SecretKey:     "sk_test_key",
		WebhookSecret: testWebhookSecret,
		PricePro:      "price_pro",
		PriceElite:    "price_elite",
	})

	return client, NewBillingHandler(service)
}

// signPayload produces a Stripe-Signature header value for a payload
func signPayload(payload []byte) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestBillingHandler_Webhook(t *testing.T) {
	t.Run("ignored_event_acknowledged", func(t *testing.T) {
		_, handler := setupBillingTest(t)

		payload := []byte(`{"id":"evt_1","type":"customer.created","data":{"object":{}}}`)
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/webhook", strings.NewReader(string(payload)))
		req.Header.Set("Stripe-Signature", signPayload(payload))
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Webhook(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, true, resp["received"])
	})

	t.Run("invalid_signature_rejected", func(t *testing.T) {
		_, handler := setupBillingTest(t)

		payload := []byte(`{"id":"evt_1","type":"invoice.payment_succeeded","data":{"object":{}}}`)
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/webhook", strings.NewReader(string(payload)))
		req.Header.Set("Stripe-Signature", "t=123,v1=deadbeef")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Webhook(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBillingHandler_GetActiveCheckoutSession(t *testing.T) {
	t.Run("newest_unpaid_session_wins", func(t *testing.T) {
		client, handler := setupBillingTest(t)
		ctx := context.Background()

		seed := func(id string, age time.Duration, status checkoutsession.Status) {
			client.CheckoutSession.Create().
				SetID(id).
				SetTargetType(checkoutsession.TargetTypeOrganization).
				SetTargetID(7).
				SetPlan(checkoutsession.PlanPro).
				SetStatus(status).
				SetURL("https://checkout.stripe.com/c/" + id).
				SetCreatedAt(time.Now().Add(-age)).
				SaveX(ctx)
		}
		seed("cs_old", 2*time.Hour, checkoutsession.StatusUnpaid)
		seed("cs_new", 10*time.Minute, checkoutsession.StatusUnpaid)
		seed("cs_paid", time.Minute, checkoutsession.StatusPaid)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/checkout-session?target_type=organization&target_id=7&plan=pro", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.GetActiveCheckoutSession(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "cs_new", resp["id"])
	})

	t.Run("no_unpaid_session", func(t *testing.T) {
		_, handler := setupBillingTest(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/checkout-session?target_type=team&target_id=3&plan=elite", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.GetActiveCheckoutSession(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBillingHandler_CreateCheckoutSession(t *testing.T) {
	t.Run("parents_cannot_purchase", func(t *testing.T) {
		_, handler := setupBillingTest(t)

		body := `{"plan":"pro","organizationId":1}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/checkout-session", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", 1)
		c.Set("user_role", "parent")

		err := handler.CreateCheckoutSession(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "USER_NOT_AUTHORIZED", resp["error"])
	})

	t.Run("team_admins_cannot_buy_org_plans", func(t *testing.T) {
		_, handler := setupBillingTest(t)

		body := `{"plan":"pro","organizationId":1}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/checkout-session", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", 1)
		c.Set("user_role", "team_admin")

		err := handler.CreateCheckoutSession(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("ambiguous_target_rejected", func(t *testing.T) {
		_, handler := setupBillingTest(t)

		body := `{"plan":"pro"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/checkout-session", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", 1)
		c.Set("user_role", "org_admin")

		err := handler.CreateCheckoutSession(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("basic_plan_has_no_price", func(t *testing.T) {
		client, handler := setupBillingTest(t)

		org := client.Organization.Create().SetName("Westside United").SaveX(context.Background())
		body := fmt.Sprintf(`{"plan":"basic","organizationId":%d}`, org.ID)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/checkout-session", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", 1)
		c.Set("user_role", "org_admin")

		err := handler.CreateCheckoutSession(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "INVALID_PLAN_OR_STRIPE_PRICE", resp["error"])
	})
}
