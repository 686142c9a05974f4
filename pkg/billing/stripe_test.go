package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/checkoutsession"
	"github.com/jordanlanch/squadscore/ent/enttest"
	"github.com/jordanlanch/squadscore/ent/subscription"
	"github.com/jordanlanch/squadscore/pkg/models"
)

const testWebhookSecret = "whsec_test_secret"

// mockSessionCreator captures checkout params instead of calling Stripe
type mockSessionCreator struct {
	calls      int
	lastParams *stripe.CheckoutSessionParams
	err        error
}

func (m *mockSessionCreator) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	m.calls++
	m.lastParams = params
	if m.err != nil {
		return nil, m.err
	}
	return &stripe.CheckoutSession{
		ID:          "cs_test_123",
		URL:         "https://checkout.stripe.com/pay/cs_test_123",
		ExpiresAt:   time.Now().Add(24 * time.Hour).Unix(),
		AmountTotal: 2900,
		Currency:    "usd",
	}, nil
}

// mockSubscriptionRetriever serves a canned provider subscription
type mockSubscriptionRetriever struct {
	sub *stripe.Subscription
	err error
}

func (m *mockSubscriptionRetriever) Get(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sub, nil
}

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *ent.Client {
	opts := []enttest.Option{
		enttest.WithOptions(ent.Log(t.Log)),
	}

	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1", opts...)
	return client
}

func setupService(t *testing.T) (*Service, *ent.Client, *mockSessionCreator, *mockSubscriptionRetriever) {
	client := setupTestDB(t)
	t.Cleanup(func() { client.Close() })

	svc := NewService(client, &StripeConfig{
		SecretKey:     "sk_test_key",
		WebhookSecret: testWebhookSecret,
		PricePro:      "price_pro",
		PriceElite:    "price_elite",
		SuccessURL:    "https://squadscore.io/billing/success",
		CancelURL:     "https://squadscore.io/billing/cancel",
		BaseURL:       "https://squadscore.io",
	})

	sessions := &mockSessionCreator{}
	subs := &mockSubscriptionRetriever{}
	svc.SetSessionCreator(sessions)
	svc.SetSubscriptionRetriever(subs)

	return svc, client, sessions, subs
}

func createTestOrg(t *testing.T, client *ent.Client, name string) int {
	org, err := client.Organization.Create().
		SetName(name).
		Save(context.Background())
	require.NoError(t, err)
	return org.ID
}

func createTestTeam(t *testing.T, client *ent.Client, orgID int, name string) int {
	team, err := client.Team.Create().
		SetName(name).
		SetOrganizationID(orgID).
		Save(context.Background())
	require.NoError(t, err)
	return team.ID
}

func createTestUser(t *testing.T, client *ent.Client, email, name string) int {
	u, err := client.User.Create().
		SetEmail(email).
		SetName(name).
		SetPasswordHash("hashed_password").
		Save(context.Background())
	require.NoError(t, err)
	return u.ID
}

// signPayload computes a Stripe-style webhook signature header
func signPayload(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

// paymentSucceededEvent builds a raw invoice.payment_succeeded payload
func paymentSucceededEvent(subscriptionID, paymentIntentID string, total int64) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_test_1",
		"type": "invoice.payment_succeeded",
		"data": {
			"object": {
				"id": "in_test_1",
				"object": "invoice",
				"total": %d,
				"currency": "usd",
				"subscription": %q,
				"payment_intent": %q
			}
		}
	}`, total, subscriptionID, paymentIntentID))
}

func intPtr(i int) *int { return &i }

// -----------------------------------------------------------------------------
// Checkout-session creation
// -----------------------------------------------------------------------------

func TestCreateCheckoutSession_OrgSuccess(t *testing.T) {
	svc, client, sessions, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	userID := createTestUser(t, client, "buyer@example.com", "Buyer")

	resp, err := svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:           "pro",
		OrganizationID: intPtr(orgID),
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", resp.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", resp.URL)

	// Metadata must ride at both session and subscription level
	require.NotNil(t, sessions.lastParams)
	assert.Equal(t, "pro", sessions.lastParams.Metadata["plan"])
	assert.Equal(t, fmt.Sprintf("%d", orgID), sessions.lastParams.Metadata["organizationId"])
	require.NotNil(t, sessions.lastParams.SubscriptionData)
	assert.Equal(t, sessions.lastParams.Metadata, sessions.lastParams.SubscriptionData.Metadata)
	assert.Equal(t, "price_pro", *sessions.lastParams.LineItems[0].Price)

	// A pending row was persisted
	cs := client.CheckoutSession.GetX(ctx, "cs_test_123")
	assert.Equal(t, checkoutsession.StatusUnpaid, cs.Status)
	assert.Equal(t, checkoutsession.TargetTypeOrganization, cs.TargetType)
	assert.Equal(t, orgID, cs.TargetID)
	assert.Equal(t, checkoutsession.PlanPro, cs.Plan)
	assert.Equal(t, int64(2900), cs.Amount)
}

func TestCreateCheckoutSession_TeamSuccess(t *testing.T) {
	svc, client, sessions, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	teamID := createTestTeam(t, client, orgID, "U12 Hawks")
	userID := createTestUser(t, client, "coach@example.com", "Coach")

	_, err := svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:   "elite",
		TeamID: intPtr(teamID),
	})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("%d", teamID), sessions.lastParams.Metadata["teamId"])
	assert.Equal(t, "price_elite", *sessions.lastParams.LineItems[0].Price)
}

func TestCreateCheckoutSession_UnknownPlanRejected(t *testing.T) {
	svc, client, sessions, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	userID := createTestUser(t, client, "buyer@example.com", "Buyer")

	_, err := svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:           "platinum",
		OrganizationID: intPtr(orgID),
	})
	assert.ErrorIs(t, err, ErrInvalidPlanOrPrice)
	assert.Zero(t, sessions.calls, "no provider call for an unknown plan")
	assert.Zero(t, client.CheckoutSession.Query().CountX(ctx))
}

func TestCreateCheckoutSession_BasicHasNoPrice(t *testing.T) {
	svc, client, sessions, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	userID := createTestUser(t, client, "buyer@example.com", "Buyer")

	// Basic is the free placeholder plan, it cannot be purchased
	_, err := svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:           "basic",
		OrganizationID: intPtr(orgID),
	})
	assert.ErrorIs(t, err, ErrInvalidPlanOrPrice)
	assert.Zero(t, sessions.calls)
}

func TestCreateCheckoutSession_TargetNotFound(t *testing.T) {
	svc, client, sessions, _ := setupService(t)
	ctx := context.Background()

	userID := createTestUser(t, client, "buyer@example.com", "Buyer")

	_, err := svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:   "pro",
		TeamID: intPtr(9999),
	})
	assert.ErrorIs(t, err, ErrTeamNotFound)

	_, err = svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:           "pro",
		OrganizationID: intPtr(9999),
	})
	assert.ErrorIs(t, err, ErrOrganizationNotFound)

	assert.Zero(t, sessions.calls)
	assert.Zero(t, client.CheckoutSession.Query().CountX(ctx))
}

func TestCreateCheckoutSession_MissingOrAmbiguousTarget(t *testing.T) {
	svc, client, _, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	teamID := createTestTeam(t, client, orgID, "U12 Hawks")
	userID := createTestUser(t, client, "buyer@example.com", "Buyer")

	_, err := svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{Plan: "pro"})
	assert.ErrorIs(t, err, ErrAmbiguousTarget)

	_, err = svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:           "pro",
		OrganizationID: intPtr(orgID),
		TeamID:         intPtr(teamID),
	})
	assert.ErrorIs(t, err, ErrAmbiguousTarget)
}

func TestCreateCheckoutSession_DowngradeRejectedBeforeProviderCall(t *testing.T) {
	svc, client, sessions, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	userID := createTestUser(t, client, "buyer@example.com", "Buyer")

	_, err := client.Subscription.Create().
		SetOrganizationID(orgID).
		SetPlan(subscription.PlanElite).
		SetStatus(subscription.StatusActive).
		Save(ctx)
	require.NoError(t, err)

	// Downgrade
	_, err = svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:           "pro",
		OrganizationID: intPtr(orgID),
	})
	assert.ErrorIs(t, err, ErrInvalidPlanOrPrice)

	// Lateral move
	_, err = svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:           "elite",
		OrganizationID: intPtr(orgID),
	})
	assert.ErrorIs(t, err, ErrInvalidPlanOrPrice)

	assert.Zero(t, sessions.calls, "rejection must happen before any provider call")
	assert.Zero(t, client.CheckoutSession.Query().CountX(ctx))
}

func TestCreateCheckoutSession_UpgradeFromBasicPlaceholder(t *testing.T) {
	svc, client, _, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	userID := createTestUser(t, client, "buyer@example.com", "Buyer")

	_, err := client.Subscription.Create().
		SetOrganizationID(orgID).
		SetPlan(subscription.PlanBasic).
		SetStatus(subscription.StatusActive).
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:           "pro",
		OrganizationID: intPtr(orgID),
	})
	assert.NoError(t, err, "basic to pro is a strict upgrade")
}

func TestCreateCheckoutSession_ProviderFailurePersistsNothing(t *testing.T) {
	svc, client, sessions, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	userID := createTestUser(t, client, "buyer@example.com", "Buyer")
	sessions.err = errors.New("stripe is down")

	_, err := svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:           "pro",
		OrganizationID: intPtr(orgID),
	})
	assert.Error(t, err)
	assert.Zero(t, client.CheckoutSession.Query().CountX(ctx))
}

// -----------------------------------------------------------------------------
// Webhook handling
// -----------------------------------------------------------------------------

func TestHandleWebhook_InvalidSignature(t *testing.T) {
	svc, client, _, _ := setupService(t)
	ctx := context.Background()

	payload := paymentSucceededEvent("sub_123", "pi_123", 2900)

	err := svc.HandleWebhook(ctx, payload, signPayload(payload, "whsec_wrong_secret"))
	assert.Error(t, err)

	// No state mutation of any kind
	assert.Zero(t, client.Subscription.Query().CountX(ctx))
	assert.Zero(t, client.CheckoutSession.Query().CountX(ctx))
	assert.Zero(t, client.SubscriptionTransaction.Query().CountX(ctx))
}

func TestHandleWebhook_TamperedPayload(t *testing.T) {
	svc, client, _, _ := setupService(t)
	ctx := context.Background()

	payload := paymentSucceededEvent("sub_123", "pi_123", 2900)
	signature := signPayload(payload, testWebhookSecret)
	tampered := paymentSucceededEvent("sub_123", "pi_123", 1)

	err := svc.HandleWebhook(ctx, tampered, signature)
	assert.Error(t, err)
	assert.Zero(t, client.SubscriptionTransaction.Query().CountX(ctx))
}

func TestHandleWebhook_IgnoredEventType(t *testing.T) {
	svc, client, _, _ := setupService(t)
	ctx := context.Background()

	payload := []byte(`{
		"id": "evt_test_2",
		"type": "customer.subscription.updated",
		"data": {"object": {"id": "sub_123", "object": "subscription"}}
	}`)

	err := svc.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret))
	assert.NoError(t, err, "unhandled event types are acknowledged, not failed")
	assert.Zero(t, client.Subscription.Query().CountX(ctx))
}

func TestHandleWebhook_MissingSubscriptionReference(t *testing.T) {
	svc, _, _, _ := setupService(t)
	ctx := context.Background()

	payload := []byte(`{
		"id": "evt_test_3",
		"type": "invoice.payment_succeeded",
		"data": {"object": {"id": "in_test_3", "object": "invoice", "total": 2900, "currency": "usd"}}
	}`)

	err := svc.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret))
	assert.Error(t, err)
}

func TestHandleWebhook_MissingMetadata(t *testing.T) {
	svc, client, _, subs := setupService(t)
	ctx := context.Background()

	subs.sub = &stripe.Subscription{
		ID:       "sub_123",
		Metadata: map[string]string{},
	}

	payload := paymentSucceededEvent("sub_123", "pi_123", 2900)
	err := svc.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret))
	assert.Error(t, err)
	assert.Zero(t, client.Subscription.Query().CountX(ctx))
}

func TestHandleWebhook_PaymentSucceeded_EndToEnd(t *testing.T) {
	svc, client, _, subs := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	userID := createTestUser(t, client, "buyer@example.com", "Buyer")

	// Step 1: checkout session requested for pro
	_, err := svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:           "pro",
		OrganizationID: intPtr(orgID),
	})
	require.NoError(t, err)

	// Step 2: provider fires invoice.payment_succeeded
	subs.sub = &stripe.Subscription{
		ID: "sub_123",
		Metadata: map[string]string{
			"plan":           "pro",
			"organizationId": fmt.Sprintf("%d", orgID),
		},
		Customer: &stripe.Customer{ID: "cus_123"},
	}

	payload := paymentSucceededEvent("sub_123", "pi_123", 2900)
	err = svc.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret))
	require.NoError(t, err)

	// Subscription upserted
	sub := client.Subscription.Query().
		Where(subscription.OrganizationIDEQ(orgID)).
		OnlyX(ctx)
	assert.Equal(t, subscription.PlanPro, sub.Plan)
	assert.Equal(t, subscription.StatusActive, sub.Status)
	assert.Equal(t, "sub_123", sub.StripeSubscriptionID)
	assert.Equal(t, "cus_123", sub.StripeCustomerID)

	// Checkout session flipped to paid
	cs := client.CheckoutSession.GetX(ctx, "cs_test_123")
	assert.Equal(t, checkoutsession.StatusPaid, cs.Status)

	// One ledger row referencing the payment intent
	txs := client.SubscriptionTransaction.Query().AllX(ctx)
	require.Len(t, txs, 1)
	assert.Equal(t, sub.ID, txs[0].SubscriptionID)
	assert.Equal(t, int64(2900), txs[0].Amount)
	assert.Equal(t, "usd", txs[0].Currency)
	require.NotNil(t, txs[0].StripePaymentID)
	assert.Equal(t, "pi_123", *txs[0].StripePaymentID)
}

func TestHandleWebhook_UpsertUpdatesInPlace(t *testing.T) {
	svc, client, _, subs := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")

	// Placeholder created at organization creation time
	_, err := client.Subscription.Create().
		SetOrganizationID(orgID).
		SetPlan(subscription.PlanBasic).
		SetStatus(subscription.StatusActive).
		Save(ctx)
	require.NoError(t, err)

	subs.sub = &stripe.Subscription{
		ID: "sub_456",
		Metadata: map[string]string{
			"plan":           "elite",
			"organizationId": fmt.Sprintf("%d", orgID),
		},
	}

	payload := paymentSucceededEvent("sub_456", "pi_456", 9900)
	require.NoError(t, svc.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret)))

	// Still exactly one row for the org, updated in place
	subsRows := client.Subscription.Query().
		Where(subscription.OrganizationIDEQ(orgID)).
		AllX(ctx)
	require.Len(t, subsRows, 1)
	assert.Equal(t, subscription.PlanElite, subsRows[0].Plan)
}

func TestHandleWebhook_ReplayIsSubscriptionIdempotentButDuplicatesLedger(t *testing.T) {
	svc, client, _, subs := setupService(t)
	ctx := context.Background()

	teamOrg := createTestOrg(t, client, "Westside United")
	teamID := createTestTeam(t, client, teamOrg, "U12 Hawks")

	subs.sub = &stripe.Subscription{
		ID: "sub_789",
		Metadata: map[string]string{
			"plan":   "pro",
			"teamId": fmt.Sprintf("%d", teamID),
		},
	}

	payload := paymentSucceededEvent("sub_789", "pi_789", 2900)

	require.NoError(t, svc.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret)))
	first := client.Subscription.Query().Where(subscription.TeamIDEQ(teamID)).OnlyX(ctx)

	// Replay the identical event
	require.NoError(t, svc.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret)))
	second := client.Subscription.Query().Where(subscription.TeamIDEQ(teamID)).OnlyX(ctx)

	// Subscription state is idempotent: same row, same plan, same refs
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Plan, second.Plan)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.StripeSubscriptionID, second.StripeSubscriptionID)

	// The ledger append is not idempotent: replay duplicates the row
	assert.Equal(t, 2, client.SubscriptionTransaction.Query().CountX(ctx))
}

// -----------------------------------------------------------------------------
// Effective plan resolution
// -----------------------------------------------------------------------------

func TestEffectivePlanForTeam_InheritsOrganizationPlan(t *testing.T) {
	svc, client, _, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	teamID := createTestTeam(t, client, orgID, "U12 Hawks")

	_, err := client.Subscription.Create().
		SetOrganizationID(orgID).
		SetPlan(subscription.PlanPro).
		SetStatus(subscription.StatusActive).
		Save(ctx)
	require.NoError(t, err)

	got, err := svc.EffectivePlanForTeam(ctx, teamID)
	require.NoError(t, err)
	assert.Equal(t, "pro", got)
}

func TestEffectivePlanForTeam_TeamPlanWinsEvenWhenLower(t *testing.T) {
	svc, client, _, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	teamID := createTestTeam(t, client, orgID, "U12 Hawks")

	_, err := client.Subscription.Create().
		SetOrganizationID(orgID).
		SetPlan(subscription.PlanElite).
		SetStatus(subscription.StatusActive).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Subscription.Create().
		SetTeamID(teamID).
		SetPlan(subscription.PlanBasic).
		SetStatus(subscription.StatusActive).
		Save(ctx)
	require.NoError(t, err)

	got, err := svc.EffectivePlanForTeam(ctx, teamID)
	require.NoError(t, err)
	assert.Equal(t, "basic", got, "a team subscription overrides the org plan even when lower")
}

func TestEffectivePlanForTeam_NoSubscriptionAnywhere(t *testing.T) {
	svc, client, _, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	teamID := createTestTeam(t, client, orgID, "U12 Hawks")

	got, err := svc.EffectivePlanForTeam(ctx, teamID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEffectivePlanForTeam_UnknownTeam(t *testing.T) {
	svc, _, _, _ := setupService(t)

	_, err := svc.EffectivePlanForTeam(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

// -----------------------------------------------------------------------------
// Status query, session lookup, ledger listing
// -----------------------------------------------------------------------------

func TestGetSubscriptionStatus(t *testing.T) {
	svc, client, _, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")

	// No subscription yet
	status, err := svc.GetSubscriptionStatus(ctx, orgID)
	require.NoError(t, err)
	assert.Equal(t, orgID, status.OrganizationID)
	assert.Nil(t, status.Subscription)

	_, err = client.Subscription.Create().
		SetOrganizationID(orgID).
		SetPlan(subscription.PlanPro).
		SetStatus(subscription.StatusActive).
		SetStripeCustomerID("cus_123").
		Save(ctx)
	require.NoError(t, err)

	status, err = svc.GetSubscriptionStatus(ctx, orgID)
	require.NoError(t, err)
	require.NotNil(t, status.Subscription)
	assert.Equal(t, "pro", status.Subscription.Plan)
	assert.Equal(t, "active", status.Subscription.Status)
	assert.Equal(t, "cus_123", status.Subscription.StripeCustomerID)
}

func TestGetSubscriptionStatus_UnknownOrganization(t *testing.T) {
	svc, _, _, _ := setupService(t)

	_, err := svc.GetSubscriptionStatus(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrOrganizationNotFound)
}

func TestGetCheckoutSession(t *testing.T) {
	svc, client, _, _ := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")
	userID := createTestUser(t, client, "buyer@example.com", "Buyer")

	_, err := svc.CreateCheckoutSession(ctx, userID, &models.CheckoutRequest{
		Plan:           "pro",
		OrganizationID: intPtr(orgID),
	})
	require.NoError(t, err)

	info, err := svc.GetCheckoutSession(ctx, "cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, "organization", info.TargetType)
	assert.Equal(t, orgID, info.TargetID)
	assert.Equal(t, "unpaid", info.Status)

	_, err = svc.GetCheckoutSession(ctx, "cs_missing")
	assert.True(t, ent.IsNotFound(err))
}

func TestListTransactions(t *testing.T) {
	svc, client, _, subs := setupService(t)
	ctx := context.Background()

	orgID := createTestOrg(t, client, "Westside United")

	// Empty ledger before any payment
	txs, err := svc.ListTransactions(ctx, OrgOwner(orgID))
	require.NoError(t, err)
	assert.Empty(t, txs)

	subs.sub = &stripe.Subscription{
		ID: "sub_123",
		Metadata: map[string]string{
			"plan":           "pro",
			"organizationId": fmt.Sprintf("%d", orgID),
		},
	}
	payload := paymentSucceededEvent("sub_123", "pi_123", 2900)
	require.NoError(t, svc.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret)))

	txs, err = svc.ListTransactions(ctx, OrgOwner(orgID))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, int64(2900), txs[0].Amount)
	assert.Equal(t, "pi_123", txs[0].StripePaymentID)
}

// -----------------------------------------------------------------------------
// Owner tagged union
// -----------------------------------------------------------------------------

func TestOwnerFromRequest(t *testing.T) {
	owner, err := OwnerFromRequest(&models.CheckoutRequest{TeamID: intPtr(5)})
	require.NoError(t, err)
	assert.True(t, owner.IsTeam())
	assert.Equal(t, 5, owner.ID())
	assert.Equal(t, "teamId", owner.MetadataKey())

	owner, err = OwnerFromRequest(&models.CheckoutRequest{OrganizationID: intPtr(7)})
	require.NoError(t, err)
	assert.False(t, owner.IsTeam())
	assert.Equal(t, "organizationId", owner.MetadataKey())

	_, err = OwnerFromRequest(&models.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrAmbiguousTarget)
}

// -----------------------------------------------------------------------------
// Email templates
// -----------------------------------------------------------------------------

func TestBuildCheckoutStartedEmail(t *testing.T) {
	subject, html, plain := buildCheckoutStartedEmail("John", "pro", "https://checkout.stripe.com/pay/cs_1")

	assert.Contains(t, subject, "pro")
	assert.Contains(t, html, "John")
	assert.Contains(t, html, "https://checkout.stripe.com/pay/cs_1")
	assert.Contains(t, plain, "John")
	assert.Contains(t, plain, "pro")
}

func TestBuildSubscriptionActivatedEmail(t *testing.T) {
	subject, html, plain := buildSubscriptionActivatedEmail("Jane", "elite", "https://squadscore.io")

	assert.Contains(t, subject, "activated")
	assert.Contains(t, html, "Jane")
	assert.Contains(t, html, "elite")
	assert.Contains(t, plain, "Jane")
	assert.Contains(t, plain, "elite")
}
