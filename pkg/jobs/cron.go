package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/checkoutsession"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/subscription"
	"github.com/jordanlanch/squadscore/pkg/cache"
)

// CronManager schedules background maintenance jobs
type CronManager struct {
	cron      *cron.Cron
	db        *ent.Client
	cache     *cache.Client
	logger    *log.Logger
	sweepSpec string
	maxAge    time.Duration
}

// NewCronManager creates a new cron manager. sweepSpec is a standard
// cron expression; maxAgeHours bounds how long an unpaid checkout
// session may linger before the sweep deletes it.
func NewCronManager(db *ent.Client, cacheClient *cache.Client, logger *log.Logger, sweepSpec string, maxAgeHours int) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:      cron.New(),
		db:        db,
		cache:     cacheClient,
		logger:    logger,
		sweepSpec: sweepSpec,
		maxAge:    time.Duration(maxAgeHours) * time.Hour,
	}
}

// SetupJobs registers the scheduled jobs
func (m *CronManager) SetupJobs() error {
	if _, err := m.cron.AddFunc(m.sweepSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if _, err := m.SweepStaleSessions(ctx); err != nil {
			m.logger.Printf("❌ Stale session sweep failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule stale session sweep: %w", err)
	}

	// Daily platform stats at 4AM
	if _, err := m.cron.AddFunc("0 4 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		stats, err := m.PlatformStats(ctx)
		if err != nil {
			m.logger.Printf("❌ Platform stats job failed: %v", err)
			return
		}
		m.logger.Printf("📊 Platform stats: %v", stats)
	}); err != nil {
		return fmt.Errorf("failed to schedule stats job: %w", err)
	}

	return nil
}

// Start starts the cron scheduler
func (m *CronManager) Start() {
	m.cron.Start()
}

// Stop stops the cron scheduler and waits for running jobs
func (m *CronManager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
}

// SweepStaleSessions deletes unpaid checkout sessions older than the
// configured maximum age. Paid sessions are kept as purchase history.
// A short-lived Redis lock keeps concurrent instances from sweeping
// twice.
func (m *CronManager) SweepStaleSessions(ctx context.Context) (int, error) {
	if m.cache != nil {
		acquired, err := m.cache.SetNX(ctx, "jobs:stale_session_sweep", time.Now().Unix(), 10*time.Minute)
		if err != nil {
			m.logger.Printf("⚠️  Failed to acquire sweep lock: %v", err)
		} else if !acquired {
			m.logger.Printf("Stale session sweep already running elsewhere, skipping")
			return 0, nil
		}
	}

	cutoff := time.Now().Add(-m.maxAge)

	deleted, err := m.db.CheckoutSession.Delete().
		Where(
			checkoutsession.StatusEQ(checkoutsession.StatusUnpaid),
			checkoutsession.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep stale sessions: %w", err)
	}

	m.logger.Printf("🗑️  Swept %d stale checkout sessions (older than %s)", deleted, m.maxAge)

	return deleted, nil
}

// PlatformStats gathers daily counters for the stats log
func (m *CronManager) PlatformStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	orgs, err := m.db.Organization.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count organizations: %w", err)
	}
	stats["organizations"] = orgs

	teams, err := m.db.Team.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count teams: %w", err)
	}
	stats["teams"] = teams

	reviews, err := m.db.Review.Query().
		Where(review.IsPublic(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}
	stats["public_reviews"] = reviews

	paid, err := m.db.Subscription.Query().
		Where(subscription.PlanNEQ(subscription.PlanBasic)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count paid subscriptions: %w", err)
	}
	stats["paid_subscriptions"] = paid

	return stats, nil
}
