package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ninokhhh/lunacase/pkg/jwtutil"
	"github.com/ninokhhh/lunacase/pkg/logger"
	"go.uber.org/zap"
)

// JWTAuth creates a middleware that validates Bearer tokens and stores the
// claims in the context. Every protected route runs behind it, so handlers
// always see an authenticated identity.
func JWTAuth(jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("Missing authorization header")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization header"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization header format"})
			}

			claims, err := jwtUtil.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			c.Set("user", claims)
			log.Debug("JWT token validated",
				zap.Uint("user_id", claims.UserID),
				zap.String("email", claims.Email))

			return next(c)
		}
	}
}

// RequireAdmin rejects requests whose token does not carry the admin flag.
// It is the first step of every admin operation, not an ambient decorator:
// it must be chained after JWTAuth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("user").(*jwtutil.UserClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}
		if !claims.IsAdmin {
			logger.FromEcho(c).Warn("admin access denied",
				zap.Uint("user_id", claims.UserID))
			return c.JSON(http.StatusForbidden, echo.Map{"error": "admin access required"})
		}
		return next(c)
	}
}
