package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"cardslite/backend/internal/config"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MintAdminToken issues a signed HS256 token for the authoring endpoint. The
// admin CLI calls this; the HTTP layer only verifies.
func MintAdminToken(secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"jti":  uuid.New().String(),
		"role": "admin",
		"exp":  time.Now().Add(config.AdminTokenTTL).Unix(),
		"iss":  config.AdminTokenIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// validateAdminToken parses the bearer token and checks the admin role claim.
func validateAdminToken(secret []byte, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return errors.New("token has no admin role")
	}
	return nil
}

// RequireAdmin is the gin middleware guarding authoring routes.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}
		if err := validateAdminToken(h.JWTSecret, strings.TrimPrefix(authHeader, "Bearer ")); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
			return
		}
		c.Next()
	}
}
