package middleware

import (
	"editorial/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func setupActorRouter() (*gin.Engine, *models.Actor) {
	gin.SetMode(gin.TestMode)
	captured := &models.Actor{}
	router := gin.New()
	router.Use(ActorMiddleware())
	router.GET("/probe", func(c *gin.Context) {
		*captured = ActorFromContext(c)
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})
	return router, captured
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestMissingHeaderMeansGuest(t *testing.T) {
	router, captured := setupActorRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleGuest, captured.Role)
	assert.Nil(t, captured.PersonID)
}

func TestValidTokenResolvesActor(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router, captured := setupActorRouter()

	tokenString := signToken(t, "test-secret", jwt.MapClaims{
		"role":        "censor",
		"person_id":   float64(5),
		"is_approved": true,
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleCensor, captured.Role)
	assert.Equal(t, uint(5), *captured.PersonID)
	assert.True(t, captured.IsApproved)
}

func TestMalformedHeaderIsRejected(t *testing.T) {
	router, _ := setupActorRouter()

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenWithWrongSecretIsRejected(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router, _ := setupActorRouter()

	tokenString := signToken(t, "other-secret", jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
