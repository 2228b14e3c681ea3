package handler

import (
	"net/http"
	"time"

	"erp-service/internal/store"
	"erp-service/pkg/apperr"
	"erp-service/pkg/jwtutil"
	"erp-service/pkg/logger"
	"erp-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	users   store.UserStore
	tenants store.TenantStore
	jwt     *jwtutil.JWTUtil
}

// NewAuthHandler creates the auth handler with its dependencies
func NewAuthHandler(users store.UserStore, tenants store.TenantStore, jwt *jwtutil.JWTUtil) *AuthHandler {
	return &AuthHandler{users: users, tenants: tenants, jwt: jwt}
}

// RegisterRequest is the signup payload: one tenant, one admin user.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
}

// LoginRequest is the credential payload for all accounts, the seeded
// super-admin included.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a tenant in trial status together with its admin user and
// returns a session token bound to the new tenant.
func (h *AuthHandler) Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		prometheus.RecordAuthError("incomplete_registration")
		return respondError(c, log, err)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		prometheus.RecordAuthError("password_hash_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	tenant, user, err := h.users.RegisterTenant(c.Request().Context(), req.CompanyName, req.Email, string(hashedPassword))
	if err != nil {
		prometheus.RecordAuthError("registration_failed")
		return respondError(c, log, err)
	}

	token, err := h.jwt.GenerateToken(user.Email, user.ID, user.TenantID, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	log.Info("Tenant registered",
		zap.String("email", user.Email),
		zap.Uint("tenant_id", tenant.ID),
		zap.String("company_name", tenant.CompanyName))

	return c.JSON(http.StatusCreated, echo.Map{
		"token": token,
		"user": echo.Map{
			"id":           user.ID,
			"email":        user.Email,
			"tenant_id":    tenant.ID,
			"company_name": tenant.CompanyName,
			"role":         user.Role,
		},
	})
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password produce the same response.
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		prometheus.RecordAuthError("incomplete_login")
		return respondError(c, log, err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	user, err := h.users.FindByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			log.Warn("Login with unknown email", zap.String("email", req.Email))
			prometheus.RecordAuthError("invalid_credentials")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return respondError(c, log, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn("Login with invalid password", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_credentials")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := h.jwt.GenerateToken(user.Email, user.ID, user.TenantID, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	userPayload := echo.Map{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	}
	if user.TenantID != nil {
		userPayload["tenant_id"] = *user.TenantID
		if tenant, err := h.tenants.Get(c.Request().Context(), *user.TenantID); err == nil {
			userPayload["company_name"] = tenant.CompanyName
			userPayload["plan"] = tenant.Plan
			userPayload["status"] = tenant.Status
		}
	}

	log.Info("User logged in",
		zap.String("email", user.Email),
		zap.String("role", user.Role))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  userPayload,
	})
}
