package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{JWTSecret: secret}
	r := gin.New()
	r.POST("/topics", h.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

// TestRequireAdminAcceptsMintedToken pairs the CLI minting path with the
// middleware verification path.
func TestRequireAdminAcceptsMintedToken(t *testing.T) {
	// Arrange
	secret := []byte("test-secret")
	token, err := MintAdminToken(secret)
	require.NoError(t, err)
	router := protectedRouter(secret)

	// Act
	req := httptest.NewRequest(http.MethodPost, "/topics", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNoContent, w.Code)
}

// TestRequireAdminRejectsMissingHeader returns 401 without a bearer token.
func TestRequireAdminRejectsMissingHeader(t *testing.T) {
	router := protectedRouter([]byte("test-secret"))

	req := httptest.NewRequest(http.MethodPost, "/topics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestRequireAdminRejectsWrongSecret returns 401 for a token signed with a
// different secret.
func TestRequireAdminRejectsWrongSecret(t *testing.T) {
	token, err := MintAdminToken([]byte("other-secret"))
	require.NoError(t, err)
	router := protectedRouter([]byte("test-secret"))

	req := httptest.NewRequest(http.MethodPost, "/topics", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
