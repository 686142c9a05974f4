package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/squadscore/config"
	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/refreshtoken"
	"github.com/jordanlanch/squadscore/ent/user"
	"github.com/jordanlanch/squadscore/pkg/api/errors"
	"github.com/jordanlanch/squadscore/pkg/auth"
	"github.com/jordanlanch/squadscore/pkg/cache"
	"github.com/jordanlanch/squadscore/pkg/email"
	"github.com/jordanlanch/squadscore/pkg/metrics"
	"github.com/jordanlanch/squadscore/pkg/models"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	db           *ent.Client
	config       *config.Config
	blacklist    *auth.TokenBlacklist
	cache        *cache.Client
	emailService *email.Service
	metrics      *metrics.Metrics
	validator    *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *ent.Client, cfg *config.Config, blacklist *auth.TokenBlacklist, cache *cache.Client, emailService *email.Service, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		db:           db,
		config:       cfg,
		blacklist:    blacklist,
		cache:        cache,
		emailService: emailService,
		metrics:      m,
		validator:    validator.New(),
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a new user account with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.AuthResponse "User registered successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exists, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	if exists {
		return errors.ConflictError(c, "User with this email already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return errors.InternalError(c, err)
	}

	verificationToken, err := auth.GenerateToken()
	if err != nil {
		return errors.InternalError(c, err)
	}

	newUser, err := h.db.User.Create().
		SetEmail(req.Email).
		SetName(req.Name).
		SetPasswordHash(hashedPassword).
		SetRole(user.RoleParent).
		SetEmailVerificationToken(verificationToken).
		Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordUserRegistered()
	}

	// Send verification email (async)
	go h.emailService.SendVerificationEmail(req.Email, newUser.Name, verificationToken)

	token, err := auth.GenerateJWT(newUser.ID, req.Email, string(newUser.Role), h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  userInfo(newUser),
	})
}

// Login godoc
// @Summary Login user
// @Description Authenticate user with email and password, returns JWT and refresh token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 403 {object} models.ErrorResponse "Email not verified"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx)
	if err != nil {
		h.recordLogin(false)
		if ent.IsNotFound(err) {
			return invalidCredentials(c)
		}
		return errors.DatabaseError(c, err)
	}

	if u.PasswordHash == nil || !auth.CheckPassword(*u.PasswordHash, req.Password) {
		h.recordLogin(false)
		return invalidCredentials(c)
	}

	if u.IsBanned {
		h.recordLogin(false)
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "account_banned",
			Message: "This account has been banned",
		})
	}

	// Only verified accounts may log in
	if !u.IsVerified {
		h.recordLogin(false)
		return c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "email_not_verified",
			Message: "Please verify your email address before logging in",
		})
	}

	// Update last login, best effort
	h.db.User.UpdateOneID(u.ID).SetLastLoginAt(time.Now()).Exec(ctx)

	token, err := auth.GenerateJWT(u.ID, req.Email, string(u.Role), h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	refresh, err := h.issueRefreshToken(ctx, u.ID)
	if err != nil {
		return errors.InternalError(c, err)
	}

	h.recordLogin(true)

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token:        token,
		RefreshToken: refresh,
		User:         userInfo(u),
	})
}

// Refresh godoc
// @Summary Rotate a refresh token
// @Description Exchange a refresh token for a new access token and refresh token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RefreshRequest true "Refresh token"
// @Success 200 {object} models.AuthResponse "New token pair"
// @Failure 401 {object} models.ErrorResponse "Invalid refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	row, err := h.db.RefreshToken.Query().
		Where(
			refreshtoken.TokenHashEQ(auth.HashToken(req.RefreshToken)),
			refreshtoken.Revoked(false),
			refreshtoken.ExpiresAtGT(time.Now()),
		).
		WithUser().
		Only(ctx)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_refresh_token",
			Message: "Refresh token is invalid, revoked or expired",
		})
	}

	u := row.Edges.User
	if u == nil || u.IsBanned {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	// Rotation: the presented token is revoked and a fresh one issued
	if err := h.db.RefreshToken.UpdateOneID(row.ID).SetRevoked(true).Exec(ctx); err != nil {
		return errors.DatabaseError(c, err)
	}

	var emailStr string
	if u.Email != nil {
		emailStr = *u.Email
	}
	token, err := auth.GenerateJWT(u.ID, emailStr, string(u.Role), h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	refresh, err := h.issueRefreshToken(ctx, u.ID)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token:        token,
		RefreshToken: refresh,
		User:         userInfo(u),
	})
}

// Logout revokes the current JWT token and all refresh tokens
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "missing_token",
			Message: "No token found in request",
		})
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Blacklist the access token for the rest of its lifetime
	expiration := time.Duration(h.config.JWTExpirationHours) * time.Hour
	if err := h.blacklist.Add(ctx, token, expiration); err != nil {
		return errors.InternalError(c, err)
	}

	// Revoke outstanding refresh tokens
	if userID > 0 {
		h.db.RefreshToken.Update().
			Where(refreshtoken.UserIDEQ(userID), refreshtoken.Revoked(false)).
			SetRevoked(true).
			Exec(ctx)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Successfully logged out",
	})
}

// Me returns the current user's information
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "user")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, userInfo(u))
}

// VerifyEmail verifies a user's email with the emailed token
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_token",
			Message: "Verification token is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(user.EmailVerificationTokenEQ(token)).
		Only(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired verification token",
		})
	}

	if u.IsVerified {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Email already verified",
		})
	}

	if err := h.db.User.UpdateOneID(u.ID).
		SetIsVerified(true).
		ClearEmailVerificationToken().
		Exec(ctx); err != nil {
		return errors.DatabaseError(c, err)
	}

	if u.Email != nil {
		go h.emailService.SendWelcomeEmail(*u.Email, u.Name)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Email verified successfully",
	})
}

// ResendVerificationEmail resends the verification email, throttled by
// a Redis cooldown per address.
func (h *AuthHandler) ResendVerificationEmail(c echo.Context) error {
	var req models.ResendVerificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx)
	if err != nil {
		// Don't reveal whether the address exists
		return c.JSON(http.StatusOK, map[string]string{
			"message": "If an unverified account exists with this email, a verification email was sent",
		})
	}

	if u.IsVerified {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "already_verified",
			Message: "Email is already verified",
		})
	}

	allowed, err := h.emailService.CheckResendCooldown(ctx, req.Email)
	if err != nil {
		return errors.InternalError(c, err)
	}
	if !allowed {
		return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "resend_cooldown",
			Message: "A verification email was sent recently, please wait before retrying",
		})
	}

	verificationToken, err := auth.GenerateToken()
	if err != nil {
		return errors.InternalError(c, err)
	}

	if err := h.db.User.UpdateOneID(u.ID).
		SetEmailVerificationToken(verificationToken).
		Exec(ctx); err != nil {
		return errors.DatabaseError(c, err)
	}

	go h.emailService.SendVerificationEmail(req.Email, u.Name, verificationToken)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "If an unverified account exists with this email, a verification email was sent",
	})
}

// ForgotPassword generates a password reset token and emails it
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	neutral := map[string]string{
		"message": "If an account exists with this email, you will receive a password reset link",
	}

	u, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx)
	if err != nil {
		// Don't reveal whether the address exists
		return c.JSON(http.StatusOK, neutral)
	}

	resetToken, err := auth.GenerateToken()
	if err != nil {
		return errors.InternalError(c, err)
	}

	// Token hash lives in Redis for one hour, one-time use
	key := "password_reset:" + auth.HashToken(resetToken)
	if err := h.cache.Set(ctx, key, strconv.Itoa(u.ID), time.Hour); err != nil {
		return errors.InternalError(c, err)
	}

	resetURL := h.config.FrontendURL + "/reset-password/" + resetToken
	subject := "Reset your SquadScore password"
	go h.emailService.SendRawEmail(req.Email, u.Name, subject,
		"<p>Hi "+u.Name+",</p><p>Reset your password: <a href=\""+resetURL+"\">"+resetURL+"</a></p><p>This link expires in one hour.</p>",
		"Hi "+u.Name+",\n\nReset your password: "+resetURL+"\n\nThis link expires in one hour.\n")

	return c.JSON(http.StatusOK, neutral)
}

// ResetPassword validates the reset token and updates the password
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	key := "password_reset:" + auth.HashToken(req.Token)
	userIDStr, err := h.cache.Get(ctx, key)
	if err != nil || userIDStr == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired reset token",
		})
	}

	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return errors.InternalError(c, err)
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return errors.InternalError(c, err)
	}

	if err := h.db.User.UpdateOneID(userID).
		SetPasswordHash(hashedPassword).
		Exec(ctx); err != nil {
		return errors.DatabaseError(c, err)
	}

	// One-time use
	h.cache.Delete(ctx, key)

	// A password reset invalidates outstanding refresh tokens
	h.db.RefreshToken.Update().
		Where(refreshtoken.UserIDEQ(userID), refreshtoken.Revoked(false)).
		SetRevoked(true).
		Exec(ctx)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Password reset successfully",
	})
}

// issueRefreshToken creates a refresh token row and returns the opaque
// token. Only the SHA-256 hash is stored.
func (h *AuthHandler) issueRefreshToken(ctx context.Context, userID int) (string, error) {
	token, err := auth.GenerateToken()
	if err != nil {
		return "", err
	}

	ttl := time.Duration(h.config.RefreshTokenTTLDays) * 24 * time.Hour
	if _, err := h.db.RefreshToken.Create().
		SetUserID(userID).
		SetTokenHash(auth.HashToken(token)).
		SetExpiresAt(time.Now().Add(ttl)).
		Save(ctx); err != nil {
		return "", err
	}

	return token, nil
}

func (h *AuthHandler) recordLogin(success bool) {
	if h.metrics != nil {
		h.metrics.RecordLoginAttempt(success)
	}
}

func invalidCredentials(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "invalid_credentials",
		Message: "Invalid email or password",
	})
}

// userInfo maps an ent user to its response shape
func userInfo(u *ent.User) *models.UserInfo {
	info := &models.UserInfo{
		ID:            u.ID,
		Name:          u.Name,
		Role:          string(u.Role),
		EmailVerified: u.IsVerified,
	}
	if u.Email != nil {
		info.Email = *u.Email
	}
	return info
}
