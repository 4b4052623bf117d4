package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ninokhhh/lunacase/internal/store"
	"github.com/ninokhhh/lunacase/pkg/database"
	"github.com/ninokhhh/lunacase/pkg/jwtutil"
	"github.com/ninokhhh/lunacase/pkg/logger"
	"github.com/ninokhhh/lunacase/prometheus"
	"go.uber.org/zap"
)

// RegisterRequest defines the registration payload
type RegisterRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginRequest defines the login payload
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Register creates a new account
func Register(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse register request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if msg := validateRegistration(&req); msg != "" {
		prometheus.RecordAuthError("invalid_registration")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	user, err := store.CreateUser(database.GetDB(), req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			log.Warn("Email already registered", zap.String("email", store.NormalizeEmail(req.Email)))
			prometheus.RecordAuthError("duplicate_email")
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered, please login"})
		}
		log.Error("Failed to create user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create account"})
	}

	log.Info("Account created",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email))
	return c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and returns a bearer token
func Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	user, err := store.AuthenticateUser(database.GetDB(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			log.Warn("Invalid credentials", zap.String("email", store.NormalizeEmail(req.Email)))
			prometheus.RecordAuthError("invalid_credentials")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid email or password"})
		}
		log.Error("Failed to authenticate user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	token, err := jwtutil.GenerateToken(user.Email, user.ID, user.IsAdmin)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	log.Info("User logged in",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
		zap.Bool("is_admin", user.IsAdmin))
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated account
func Me(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := store.GetUser(database.GetDB(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "account not found"})
		}
		logger.FromEcho(c).Error("Failed to load account", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load account"})
	}
	return c.JSON(http.StatusOK, user)
}

// validateRegistration applies the registration form rules. Returns an empty
// string when the request is acceptable.
func validateRegistration(req *RegisterRequest) string {
	if len(strings.TrimSpace(req.FullName)) < 2 {
		return "full name must be at least 2 characters"
	}
	email := store.NormalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return "a valid email is required"
	}
	if len(req.Password) < 6 {
		return "password must be at least 6 characters"
	}
	return ""
}
