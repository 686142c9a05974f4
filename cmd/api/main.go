package main

// @title SquadScore API
// @version 1.0
// @description Youth sports club and team reviews. By parents, for parents.

// @contact.name API Support
// @contact.url https://squadscore.io/support
// @contact.email support@squadscore.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/jordanlanch/squadscore/config"
	"github.com/jordanlanch/squadscore/ent/user"
	"github.com/jordanlanch/squadscore/pkg/api/handlers"
	custommw "github.com/jordanlanch/squadscore/pkg/api/middleware"
	"github.com/jordanlanch/squadscore/pkg/audit"
	"github.com/jordanlanch/squadscore/pkg/auth"
	"github.com/jordanlanch/squadscore/pkg/billing"
	"github.com/jordanlanch/squadscore/pkg/cache"
	"github.com/jordanlanch/squadscore/pkg/database"
	"github.com/jordanlanch/squadscore/pkg/email"
	"github.com/jordanlanch/squadscore/pkg/flag"
	"github.com/jordanlanch/squadscore/pkg/jobs"
	"github.com/jordanlanch/squadscore/pkg/metrics"
	custommiddleware "github.com/jordanlanch/squadscore/pkg/middleware"
	"github.com/jordanlanch/squadscore/pkg/organization"
	"github.com/jordanlanch/squadscore/pkg/response"
	"github.com/jordanlanch/squadscore/pkg/review"
	"github.com/jordanlanch/squadscore/pkg/team"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.APIEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)       // 5 req/min for login
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1)   // 3 req/min for register
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // 100 req/min for Stripe webhooks
	writeRateLimiter := custommiddleware.NewRateLimiter(10, 5)     // 10 req/min for anonymous writes

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))

	e.Use(middleware.Gzip())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))

	// Global rate limiting (default 60 req/min)
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "SquadScore API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize audit logger
	auditLogger := audit.NewService(db.Ent)
	log.Printf("✅ Audit logging initialized")

	// Initialize email service
	emailService := email.NewService(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.FrontendURL,
		cfg.SendGridAPIKey,
	)
	emailService.SetResendCooldown(redisClient, time.Duration(cfg.EmailResendCooldown)*time.Second)

	// Initialize services
	billingService := billing.NewService(db.Ent, &billing.StripeConfig{
		SecretKey:     cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		PricePro:      cfg.StripePricePro,
		PriceElite:    cfg.StripePriceElite,
		SuccessURL:    cfg.FrontendURL + "/billing?success=true",
		CancelURL:     cfg.FrontendURL + "/billing?canceled=true",
		BaseURL:       cfg.FrontendURL,
	})
	billingService.SetEmailSender(emailService)
	billingService.SetAuditLogger(auditLogger)
	billingService.SetMetrics(prometheusMetrics)

	organizationService := organization.NewService(db.Ent)
	teamService := team.NewService(db.Ent)
	teamService.SetAuditService(auditLogger)
	reviewService := review.NewService(db.Ent)
	reviewService.SetAuditService(auditLogger)
	responseService := response.NewService(db.Ent, billingService)
	flagService := flag.NewService(db.Ent)
	flagService.SetAuditService(auditLogger)
	log.Printf("✅ Services initialized")

	// Initialize cron manager for maintenance jobs
	cronManager := jobs.NewCronManager(db.Ent, redisClient, log.Default(), cfg.StaleSessionSweepCron, cfg.StaleSessionMaxAgeHrs)
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist, redisClient, emailService, prometheusMetrics)
	billingHandler := handlers.NewBillingHandler(billingService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	teamHandler := handlers.NewTeamHandler(teamService)
	reviewHandler := handlers.NewReviewHandler(reviewService, prometheusMetrics)
	responseHandler := handlers.NewResponseHandler(responseService, prometheusMetrics)
	flagHandler := handlers.NewFlagHandler(flagService, reviewService, prometheusMetrics)
	adminHandler := handlers.NewAdminHandler(db.Ent, reviewService, auditLogger)

	v1 := e.Group("/api/v1")

	// Ping endpoint (public)
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register, registerRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/refresh", authHandler.Refresh)
		authRoutes.GET("/me", authHandler.Me, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent))
		authRoutes.POST("/logout", authHandler.Logout, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent))
		authRoutes.GET("/verify-email/:token", authHandler.VerifyEmail)
		authRoutes.POST("/resend-verification", authHandler.ResendVerificationEmail)
		authRoutes.POST("/forgot-password", authHandler.ForgotPassword)
		authRoutes.POST("/reset-password", authHandler.ResetPassword)
	}

	// Public directory routes
	v1.GET("/organizations", organizationHandler.List)
	v1.GET("/organizations/:id", organizationHandler.Get)
	v1.GET("/teams", teamHandler.List, custommw.OptionalJWTMiddleware(cfg.JWTSecret, tokenBlacklist))
	v1.GET("/teams/:id", teamHandler.Get)
	v1.GET("/teams/:teamId/reviews", reviewHandler.ListTeamReviews)
	v1.GET("/teams/:teamId/summary", reviewHandler.GetTeamSummary)
	v1.GET("/reviews/:id", reviewHandler.GetReview)
	v1.GET("/reviews/:reviewId/response", responseHandler.Get)

	// Anonymous-friendly write routes: authenticated callers are
	// attributed by JWT, the rest by anonymous key or client IP.
	v1.POST("/reviews", reviewHandler.CreateReview,
		custommw.OptionalJWTMiddleware(cfg.JWTSecret, tokenBlacklist),
		writeRateLimiter.RateLimitMiddleware())
	v1.POST("/reviews/:reviewId/flags", flagHandler.FlagReview,
		custommw.OptionalJWTMiddleware(cfg.JWTSecret, tokenBlacklist),
		writeRateLimiter.RateLimitMiddleware())

	// Stripe webhook (public, signature-checked, higher rate limit)
	v1.POST("/billing/webhook", billingHandler.Webhook, webhookRateLimiter.RateLimitMiddleware())
	v1.GET("/billing/status/:organizationId", billingHandler.GetStatus)

	// Protected routes (require JWT with blacklist validation)
	protected := v1.Group("")
	protected.Use(custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent))
	{
		protected.PATCH("/reviews/:id", reviewHandler.UpdateReview)

		// Responses (org/team admins, plan-gated in the service)
		responderRoles := custommiddleware.RequireRole(db.Ent, user.RoleOrgAdmin, user.RoleTeamAdmin)
		protected.PUT("/reviews/:reviewId/response", responseHandler.Respond, responderRoles)
		protected.DELETE("/reviews/:reviewId/response", responseHandler.Delete, responderRoles)

		// Organizations and teams
		orgAdmin := custommiddleware.RequireRole(db.Ent, user.RoleOrgAdmin)
		protected.POST("/organizations", organizationHandler.Create, orgAdmin)
		protected.PATCH("/organizations/:id", organizationHandler.Update, orgAdmin)
		protected.POST("/teams", teamHandler.Create, orgAdmin)
		protected.POST("/teams/import", teamHandler.Import, orgAdmin)

		// Billing
		billingGroup := protected.Group("/billing")
		{
			billingGroup.POST("/checkout-session", billingHandler.CreateCheckoutSession)
			billingGroup.GET("/checkout-session", billingHandler.GetActiveCheckoutSession)
			billingGroup.GET("/checkout-session/:sessionId", billingHandler.GetCheckoutSession)
			billingGroup.GET("/transactions", billingHandler.ListTransactions)
		}

		// Admin routes (require site admin role)
		adminGroup := protected.Group("/admin")
		adminGroup.Use(custommiddleware.RequireSiteAdmin(db.Ent))
		{
			adminGroup.GET("/users", adminHandler.ListUsers)
			adminGroup.POST("/users/:id/ban", adminHandler.BanUser)
			adminGroup.GET("/reviews", adminHandler.ListReviews)
			adminGroup.PATCH("/reviews/:id/visibility", adminHandler.SetReviewVisibility)
			adminGroup.POST("/reviews/:id/highlight", adminHandler.SetHighlight)
			adminGroup.GET("/flags", flagHandler.ListFlags)
			adminGroup.GET("/flags/:id", flagHandler.GetFlag)
			adminGroup.PATCH("/flags/:id", flagHandler.ModerateFlag)
			adminGroup.PATCH("/teams/:id/status", teamHandler.UpdateStatus)
			adminGroup.GET("/audit-logs", adminHandler.ListAuditLogs)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 SquadScore API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours, refresh TTL: %d days", cfg.JWTExpirationHours, cfg.RefreshTokenTTLDays)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron: stale session sweep %q (max age %dh), daily stats 4AM", cfg.StaleSessionSweepCron, cfg.StaleSessionMaxAgeHrs)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
