package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/checkoutsession"
	"github.com/jordanlanch/squadscore/ent/organization"
	"github.com/jordanlanch/squadscore/ent/subscription"
	"github.com/jordanlanch/squadscore/ent/subscriptiontransaction"
	"github.com/jordanlanch/squadscore/pkg/models"
	"github.com/jordanlanch/squadscore/pkg/plan"
	"github.com/stripe/stripe-go/v76"
	stripecheckout "github.com/stripe/stripe-go/v76/checkout/session"
	stripesubscription "github.com/stripe/stripe-go/v76/subscription"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Domain failures surfaced to the handler layer, which maps each to a
// stable response code.
var (
	ErrInvalidPlanOrPrice   = errors.New("invalid plan or stripe price")
	ErrTeamNotFound         = errors.New("team not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrAmbiguousTarget      = errors.New("exactly one of teamId or organizationId must be set")
)

// EmailSender abstracts email sending for billing notifications.
type EmailSender interface {
	SendRawEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error
}

// AuditLogger abstracts audit logging for billing events.
type AuditLogger interface {
	LogSubscriptionActivated(targetType string, targetID int, metadata map[string]interface{}) error
}

// MetricsRecorder abstracts the business counters billing increments.
type MetricsRecorder interface {
	RecordSubscriptionSold(plan string)
	RecordWebhookEvent(eventType, outcome string)
}

// SessionCreator abstracts Stripe checkout session creation so tests
// can run without the real API.
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// SubscriptionRetriever abstracts Stripe subscription retrieval. The
// webhook handler needs it to read plan/target metadata that invoices
// do not carry reliably.
type SubscriptionRetriever interface {
	Get(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
}

type stripeSessionCreator struct{}

func (stripeSessionCreator) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return stripecheckout.New(params)
}

type stripeSubscriptionRetriever struct{}

func (stripeSubscriptionRetriever) Get(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return stripesubscription.Get(id, params)
}

// Service handles Stripe billing operations
type Service struct {
	db       *ent.Client
	config   *StripeConfig
	email    EmailSender
	audit    AuditLogger
	metrics  MetricsRecorder
	sessions SessionCreator
	subs     SubscriptionRetriever
}

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PricePro      string
	PriceElite    string
	SuccessURL    string
	CancelURL     string
	BaseURL       string
}

// NewService creates a new billing service
func NewService(db *ent.Client, config *StripeConfig) *Service {
	// Set Stripe API key
	stripe.Key = config.SecretKey

	return &Service{
		db:       db,
		config:   config,
		sessions: stripeSessionCreator{},
		subs:     stripeSubscriptionRetriever{},
	}
}

// SetEmailSender sets the email sender for billing notifications.
func (s *Service) SetEmailSender(e EmailSender) {
	s.email = e
}

// SetAuditLogger sets the audit logger for billing events.
func (s *Service) SetAuditLogger(a AuditLogger) {
	s.audit = a
}

// SetMetrics sets the metrics recorder for billing counters.
func (s *Service) SetMetrics(m MetricsRecorder) {
	s.metrics = m
}

// SetSessionCreator overrides the Stripe checkout client (tests).
func (s *Service) SetSessionCreator(c SessionCreator) {
	s.sessions = c
}

// SetSubscriptionRetriever overrides the Stripe subscription client (tests).
func (s *Service) SetSubscriptionRetriever(r SubscriptionRetriever) {
	s.subs = r
}

// CreateCheckoutSession validates an upgrade request and produces a
// provider-hosted payment URL. Validation order matters: plan/price
// first, then target resolution, then upgrade ordering. No
// CheckoutSession row is persisted unless every check passes and the
// provider session was created.
func (s *Service) CreateCheckoutSession(ctx context.Context, userID int, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	priceID, err := s.getPriceIDForPlan(req.Plan)
	if err != nil {
		return nil, err
	}

	owner, err := OwnerFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.resolveTarget(ctx, owner); err != nil {
		return nil, err
	}

	// Upgrade ordering: a target that already holds a plan may only
	// move strictly up. Equal or lower rank is rejected before any
	// provider call.
	current, err := s.subscriptionForOwner(ctx, owner)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load current subscription: %w", err)
	}
	if current != nil && !plan.IsUpgrade(current.Plan.String(), req.Plan) {
		return nil, ErrInvalidPlanOrPrice
	}

	// Metadata rides at both the session level and the subscription
	// level so later invoice events can still resolve the target.
	metadata := map[string]string{
		"plan":              req.Plan,
		owner.MetadataKey(): strconv.Itoa(owner.ID()),
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
		Metadata:   metadata,
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: metadata,
		},
	}

	sess, err := s.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	create := s.db.CheckoutSession.Create().
		SetID(sess.ID).
		SetTargetType(checkoutsession.TargetType(owner.Kind())).
		SetTargetID(owner.ID()).
		SetPlan(checkoutsession.Plan(req.Plan)).
		SetStatus(checkoutsession.StatusUnpaid).
		SetURL(sess.URL).
		SetCreatedBy(userID)
	if sess.AmountTotal > 0 {
		create.SetAmount(sess.AmountTotal)
	}
	if sess.Currency != "" {
		create.SetCurrency(string(sess.Currency))
	}
	if _, err := create.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist checkout session: %w", err)
	}

	log.Printf("🛒 Checkout session created: %s (%s, plan=%s)", sess.ID, owner, req.Plan)

	// Best-effort confirmation email; failure never fails the checkout
	s.sendCheckoutStartedEmail(ctx, userID, req.Plan, sess.URL)

	return &models.CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// sendCheckoutStartedEmail fires the checkout confirmation email and
// swallows every failure.
func (s *Service) sendCheckoutStartedEmail(ctx context.Context, userID int, planName, url string) {
	if s.email == nil {
		return
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil || u.Email == nil {
		log.Printf("⚠️  Skipping checkout email for user %d: %v", userID, err)
		return
	}

	subject, html, plain := buildCheckoutStartedEmail(u.Name, planName, url)
	if err := s.email.SendRawEmail(*u.Email, u.Name, subject, html, plain); err != nil {
		log.Printf("⚠️  Failed to send checkout email to %s: %v", *u.Email, err)
	}
}

// resolveTarget verifies the purchase target exists.
func (s *Service) resolveTarget(ctx context.Context, owner Owner) error {
	if owner.IsTeam() {
		if _, err := s.db.Team.Get(ctx, owner.ID()); err != nil {
			if ent.IsNotFound(err) {
				return ErrTeamNotFound
			}
			return fmt.Errorf("failed to resolve team: %w", err)
		}
		return nil
	}

	if _, err := s.db.Organization.Get(ctx, owner.ID()); err != nil {
		if ent.IsNotFound(err) {
			return ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to resolve organization: %w", err)
	}
	return nil
}

// subscriptionForOwner loads the owner's subscription row, if any.
func (s *Service) subscriptionForOwner(ctx context.Context, owner Owner) (*ent.Subscription, error) {
	q := s.db.Subscription.Query()
	if owner.IsTeam() {
		q = q.Where(subscription.TeamIDEQ(owner.ID()))
	} else {
		q = q.Where(subscription.OrganizationIDEQ(owner.ID()))
	}
	sub, err := q.Only(ctx)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// HandleWebhook processes Stripe webhook events. The payload must be
// the untouched raw request body, since the signature covers it.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	// Verify webhook signature
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	log.Printf("📨 Stripe webhook received: %s", event.Type)

	// Only successful invoice payments mutate state; everything else
	// is acknowledged and ignored.
	switch event.Type {
	case "invoice.payment_succeeded":
		if err := s.handleInvoicePaymentSucceeded(ctx, event); err != nil {
			s.recordWebhookEvent(string(event.Type), "error")
			return err
		}
		s.recordWebhookEvent(string(event.Type), "ok")
		return nil
	default:
		log.Printf("⚠️  Unhandled webhook event type: %s", event.Type)
		s.recordWebhookEvent(string(event.Type), "ignored")
		return nil
	}
}

func (s *Service) recordWebhookEvent(eventType, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordWebhookEvent(eventType, outcome)
	}
}

// handleInvoicePaymentSucceeded applies a successful payment: upsert
// the subscription keyed by its owner, flip that owner's checkout
// sessions to paid and append a ledger row, all in one transaction.
func (s *Service) handleInvoicePaymentSucceeded(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	if invoice.Subscription == nil || invoice.Subscription.ID == "" {
		return fmt.Errorf("invoice %s carries no subscription reference", invoice.ID)
	}

	// The invoice does not reliably carry our metadata; the
	// subscription object does.
	stripeSub, err := s.subs.Get(invoice.Subscription.ID, nil)
	if err != nil {
		return fmt.Errorf("failed to retrieve subscription %s: %w", invoice.Subscription.ID, err)
	}

	owner, planName, err := ownerFromMetadata(stripeSub.Metadata)
	if err != nil {
		return err
	}

	err = withTx(ctx, s.db, func(tx *ent.Tx) error {
		sub, err := s.upsertSubscription(ctx, tx, owner, planName, stripeSub)
		if err != nil {
			return err
		}

		// Best-effort correlation: the originating session id is not
		// threaded through the provider metadata, so every session for
		// this target flips to paid.
		if _, err := tx.CheckoutSession.Update().
			Where(checkoutsession.TargetIDEQ(owner.ID())).
			SetStatus(checkoutsession.StatusPaid).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to mark checkout sessions paid: %w", err)
		}

		ledger := tx.SubscriptionTransaction.Create().
			SetSubscriptionID(sub.ID).
			SetAmount(invoice.Total).
			SetStatus("succeeded").
			SetStripeInvoiceID(invoice.ID)
		if invoice.Currency != "" {
			ledger.SetCurrency(string(invoice.Currency))
		}
		if invoice.PaymentIntent != nil && invoice.PaymentIntent.ID != "" {
			ledger.SetStripePaymentID(invoice.PaymentIntent.ID)
		}
		if _, err := ledger.Save(ctx); err != nil {
			return fmt.Errorf("failed to append transaction ledger: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("💰 Payment applied: %s now on plan %s (invoice=%s)", owner, planName, invoice.ID)

	if s.metrics != nil {
		s.metrics.RecordSubscriptionSold(planName)
	}

	if s.audit != nil {
		metadata := map[string]interface{}{
			"invoice_id": invoice.ID,
			"plan":       planName,
			"amount":     invoice.Total,
		}
		if err := s.audit.LogSubscriptionActivated(string(owner.Kind()), owner.ID(), metadata); err != nil {
			log.Printf("⚠️  Failed to write subscription audit log: %v", err)
		}
	}

	// Best-effort activation email to whoever started the checkout
	s.sendActivationEmail(ctx, owner, planName)

	return nil
}

// sendActivationEmail notifies the user who initiated the most recent
// checkout for this target. Failures are logged and swallowed.
func (s *Service) sendActivationEmail(ctx context.Context, owner Owner, planName string) {
	if s.email == nil {
		return
	}

	cs, err := s.db.CheckoutSession.Query().
		Where(checkoutsession.TargetIDEQ(owner.ID()), checkoutsession.CreatedByNotNil()).
		Order(ent.Desc(checkoutsession.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return
	}

	u, err := s.db.User.Get(ctx, *cs.CreatedBy)
	if err != nil || u.Email == nil {
		return
	}

	subject, html, plain := buildSubscriptionActivatedEmail(u.Name, planName, s.config.BaseURL)
	if err := s.email.SendRawEmail(*u.Email, u.Name, subject, html, plain); err != nil {
		log.Printf("⚠️  Failed to send activation email to %s: %v", *u.Email, err)
	}
}

// upsertSubscription updates the owner's subscription row in place, or
// creates it when the owner never had one. The unique index on each
// owner foreign key guarantees at most one row per owner.
func (s *Service) upsertSubscription(ctx context.Context, tx *ent.Tx, owner Owner, planName string, stripeSub *stripe.Subscription) (*ent.Subscription, error) {
	q := tx.Subscription.Query()
	if owner.IsTeam() {
		q = q.Where(subscription.TeamIDEQ(owner.ID()))
	} else {
		q = q.Where(subscription.OrganizationIDEQ(owner.ID()))
	}

	existing, err := q.Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query subscription for %s: %w", owner, err)
	}

	if existing != nil {
		upd := existing.Update().
			SetPlan(subscription.Plan(planName)).
			SetStatus(subscription.StatusActive).
			SetStripeSubscriptionID(stripeSub.ID)
		if stripeSub.Customer != nil {
			upd.SetStripeCustomerID(stripeSub.Customer.ID)
		}
		sub, err := upd.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update subscription: %w", err)
		}
		return sub, nil
	}

	create := tx.Subscription.Create().
		SetPlan(subscription.Plan(planName)).
		SetStatus(subscription.StatusActive).
		SetStripeSubscriptionID(stripeSub.ID)
	if stripeSub.Customer != nil {
		create.SetStripeCustomerID(stripeSub.Customer.ID)
	}
	if owner.IsTeam() {
		create.SetTeamID(owner.ID())
	} else {
		create.SetOrganizationID(owner.ID())
	}
	sub, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return sub, nil
}

// ownerFromMetadata reconstructs the purchase target from provider
// metadata. Missing plan or target id is malformed upstream state and
// rejected outright.
func ownerFromMetadata(metadata map[string]string) (Owner, string, error) {
	planName := metadata["plan"]
	if !plan.Valid(planName) {
		return Owner{}, "", fmt.Errorf("subscription metadata carries no valid plan")
	}

	if idStr, ok := metadata["teamId"]; ok && idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return Owner{}, "", fmt.Errorf("malformed teamId in metadata: %q", idStr)
		}
		return TeamOwner(id), planName, nil
	}

	if idStr, ok := metadata["organizationId"]; ok && idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return Owner{}, "", fmt.Errorf("malformed organizationId in metadata: %q", idStr)
		}
		return OrgOwner(id), planName, nil
	}

	return Owner{}, "", fmt.Errorf("subscription metadata carries no target id")
}

// GetSubscriptionStatus returns an organization's current subscription
// for display, or a nil subscription when only the default placeholder
// semantics apply.
func (s *Service) GetSubscriptionStatus(ctx context.Context, organizationID int) (*models.BillingStatusResponse, error) {
	if _, err := s.db.Organization.Query().
		Where(organization.IDEQ(organizationID)).
		Only(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to resolve organization: %w", err)
	}

	sub, err := s.subscriptionForOwner(ctx, OrgOwner(organizationID))
	if err != nil {
		if ent.IsNotFound(err) {
			return &models.BillingStatusResponse{OrganizationID: organizationID, Subscription: nil}, nil
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	return &models.BillingStatusResponse{
		OrganizationID: organizationID,
		Subscription:   subscriptionInfo(sub),
	}, nil
}

func subscriptionInfo(sub *ent.Subscription) *models.SubscriptionInfo {
	info := &models.SubscriptionInfo{
		ID:               sub.ID,
		Plan:             sub.Plan.String(),
		Status:           sub.Status.String(),
		StripeCustomerID: sub.StripeCustomerID,
	}
	if sub.CurrentPeriodEnd != nil {
		info.CurrentPeriodEnd = sub.CurrentPeriodEnd.Format("2006-01-02")
	}
	return info
}

// GetCheckoutSession returns a persisted checkout session by its
// provider session id.
func (s *Service) GetCheckoutSession(ctx context.Context, sessionID string) (*models.CheckoutSessionInfo, error) {
	cs, err := s.db.CheckoutSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load checkout session: %w", err)
	}

	return checkoutSessionInfo(cs), nil
}

// ActiveCheckoutSession returns the most recent unpaid session for a
// target and plan. That is the session whose payment link is still the
// live one; older unpaid rows are superseded attempts.
func (s *Service) ActiveCheckoutSession(ctx context.Context, owner Owner, planName string) (*models.CheckoutSessionInfo, error) {
	cs, err := s.db.CheckoutSession.Query().
		Where(
			checkoutsession.TargetTypeEQ(checkoutsession.TargetType(owner.Kind())),
			checkoutsession.TargetIDEQ(owner.ID()),
			checkoutsession.PlanEQ(checkoutsession.Plan(planName)),
			checkoutsession.StatusEQ(checkoutsession.StatusUnpaid),
		).
		Order(ent.Desc(checkoutsession.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load active checkout session: %w", err)
	}

	return checkoutSessionInfo(cs), nil
}

func checkoutSessionInfo(cs *ent.CheckoutSession) *models.CheckoutSessionInfo {
	return &models.CheckoutSessionInfo{
		ID:         cs.ID,
		TargetType: cs.TargetType.String(),
		TargetID:   cs.TargetID,
		Plan:       cs.Plan.String(),
		Amount:     cs.Amount,
		Currency:   cs.Currency,
		Status:     cs.Status.String(),
		URL:        cs.URL,
	}
}

// ListTransactions returns the payment ledger for a target, newest
// first. A target without a subscription has an empty ledger.
func (s *Service) ListTransactions(ctx context.Context, owner Owner) ([]*models.TransactionInfo, error) {
	sub, err := s.subscriptionForOwner(ctx, owner)
	if err != nil {
		if ent.IsNotFound(err) {
			return []*models.TransactionInfo{}, nil
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	rows, err := s.db.SubscriptionTransaction.Query().
		Where(subscriptiontransaction.SubscriptionIDEQ(sub.ID)).
		Order(ent.Desc(subscriptiontransaction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	out := make([]*models.TransactionInfo, 0, len(rows))
	for _, row := range rows {
		info := &models.TransactionInfo{
			ID:             row.ID,
			SubscriptionID: row.SubscriptionID,
			Amount:         row.Amount,
			Currency:       row.Currency,
			Status:         row.Status,
			CreatedAt:      row.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if row.StripePaymentID != nil {
			info.StripePaymentID = *row.StripePaymentID
		}
		out = append(out, info)
	}
	return out, nil
}

// EffectivePlanForTeam resolves the plan used for authorization: the
// team's own subscription plan when one exists, otherwise the owning
// organization's. A team subscription always wins, even when its plan
// is lower than the organization's.
func (s *Service) EffectivePlanForTeam(ctx context.Context, teamID int) (string, error) {
	teamSub, err := s.subscriptionForOwner(ctx, TeamOwner(teamID))
	if err == nil {
		return teamSub.Plan.String(), nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to load team subscription: %w", err)
	}

	team, err := s.db.Team.Get(ctx, teamID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrTeamNotFound
		}
		return "", fmt.Errorf("failed to resolve team: %w", err)
	}

	orgSub, err := s.subscriptionForOwner(ctx, OrgOwner(team.OrganizationID))
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load organization subscription: %w", err)
	}
	return orgSub.Plan.String(), nil
}

// getPriceIDForPlan returns the Stripe price ID for a paid plan.
// Basic is placeholder-only and has no price.
func (s *Service) getPriceIDForPlan(planName string) (string, error) {
	switch planName {
	case plan.Pro:
		if s.config.PricePro == "" {
			return "", ErrInvalidPlanOrPrice
		}
		return s.config.PricePro, nil
	case plan.Elite:
		if s.config.PriceElite == "" {
			return "", ErrInvalidPlanOrPrice
		}
		return s.config.PriceElite, nil
	default:
		return "", ErrInvalidPlanOrPrice
	}
}
