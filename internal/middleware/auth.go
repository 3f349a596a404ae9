package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"pfa/internal/config"
	apperrors "pfa/internal/errors"
	"pfa/internal/models"
)

// Context keys set by the auth middleware.
const (
	UserIDKey  = "userID"
	OwnerIDKey = "ownerID"
	EmailKey   = "email"
)

const tokenIssuer = "pfa-api"

// getJWTKey returns the JWT key from configuration
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateToken issues an access token for user that expires after the
// configured JWT_EXPIRES_IN duration.
func GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID:    user.ID,
		Email:     user.Email,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.Get().JWTExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// ValidateToken parses an access token and returns its claims.
func ValidateToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}
	if claims.TokenType != "access" || claims.UserID == "" {
		return nil, fmt.Errorf("token is not an access token")
	}
	return claims, nil
}

// bearerToken extracts the credential from the Authorization header.
// ok is false when the header is absent.
func bearerToken(c *gin.Context) (token string, ok bool, err error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false, nil
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", true, errors.New("invalid authorization header format")
	}
	return parts[1], true, nil
}

// authenticate sets the user and owner on the context from a valid token.
func authenticate(c *gin.Context, tokenString string) bool {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		abortUnauthorized(c, "Invalid or expired token")
		return false
	}
	c.Set(UserIDKey, claims.UserID)
	c.Set(OwnerIDKey, claims.UserID)
	c.Set(EmailKey, claims.Email)
	return true
}

func abortUnauthorized(c *gin.Context, message string) {
	err := apperrors.WithMessage(apperrors.ErrUnauthorized, message)
	c.AbortWithStatusJSON(err.StatusCode, gin.H{
		"error": gin.H{"code": err.Code, "message": err.Message},
	})
}

// AuthMiddleware verifies the JWT token and sets the user in the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, present, err := bearerToken(c)
		if !present {
			abortUnauthorized(c, "Authorization header is required")
			return
		}
		if err != nil {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}
		if authenticate(c, token) {
			c.Next()
		}
	}
}

// OptionalAuthMiddleware authenticates requests that carry a bearer token
// and lets requests without one through as the guest owner when allowGuest
// is set. A token that is present but invalid is always rejected.
func OptionalAuthMiddleware(allowGuest bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, present, err := bearerToken(c)
		if !present {
			if !allowGuest {
				abortUnauthorized(c, "Authorization header is required")
				return
			}
			c.Set(OwnerIDKey, models.GuestOwnerID)
			c.Next()
			return
		}
		if err != nil {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}
		if authenticate(c, token) {
			c.Next()
		}
	}
}
