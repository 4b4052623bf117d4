package jwtutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/ninokhhh/lunacase/pkg/config"
)

// UserClaims represents the JWT claims for an authenticated user
type UserClaims struct {
	Email   string `json:"email"`
	UserID  uint   `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// JWTUtil is a utility for JWT token operations
type JWTUtil struct {
	config *config.JWTConfig
}

// NewJWTUtil creates a new JWT utility with the given configuration
func NewJWTUtil(cfg *config.JWTConfig) *JWTUtil {
	return &JWTUtil{config: cfg}
}

var defaultUtil *JWTUtil

// Initialize sets up the package-level JWT utility used by handlers and
// returns it for middleware wiring.
func Initialize(cfg *config.JWTConfig) *JWTUtil {
	defaultUtil = NewJWTUtil(cfg)
	return defaultUtil
}

// GenerateToken creates a token with the package-level utility.
func GenerateToken(email string, userID uint, isAdmin bool) (string, error) {
	if defaultUtil == nil {
		return "", errors.New("jwtutil is not initialized")
	}
	return defaultUtil.GenerateToken(email, userID, isAdmin)
}

// GenerateToken creates a signed JWT token carrying the user's identity
func (j *JWTUtil) GenerateToken(email string, userID uint, isAdmin bool) (string, error) {
	if j.config == nil {
		return "", errors.New("JWT configuration not provided")
	}

	claims := UserClaims{
		Email:   email,
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(j.config.ExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.SigningKey))
}

// ValidateToken validates and parses the JWT token
func (j *JWTUtil) ValidateToken(tokenString string) (*UserClaims, error) {
	if j.config == nil {
		return nil, errors.New("JWT configuration not provided")
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&UserClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// Validate the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(j.config.SigningKey), nil
		},
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
