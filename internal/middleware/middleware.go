package middleware

import (
	"editorial/internal/models"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorContextKey = "actor"

// ActorMiddleware resolves the acting identity from the bearer token minted
// by the external authentication service. A request without an Authorization
// header proceeds as guest; a malformed or invalid token is rejected.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(actorContextKey, models.Guest())
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid authorization header format",
				"error":   "Use format: Bearer {token}",
			})
			c.Abort()
			return
		}

		tokenString := parts[1]
		jwtSecret := []byte(os.Getenv("JWT_SECRET_KEY"))

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		})
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid token claims",
				"error":   "Token validation failed",
			})
			c.Abort()
			return
		}

		c.Set(actorContextKey, actorFromClaims(claims))
		c.Next()
	}
}

func actorFromClaims(claims jwt.MapClaims) models.Actor {
	actor := models.Guest()
	if role, ok := claims["role"].(string); ok {
		actor.Role = models.Role(role)
	}
	if personID, ok := claims["person_id"].(float64); ok {
		id := uint(personID)
		actor.PersonID = &id
	}
	if approved, ok := claims["is_approved"].(bool); ok {
		actor.IsApproved = approved
	}
	return actor
}

// ActorFromContext returns the actor resolved by ActorMiddleware, or guest.
func ActorFromContext(c *gin.Context) models.Actor {
	if value, exists := c.Get(actorContextKey); exists {
		if actor, ok := value.(models.Actor); ok {
			return actor
		}
	}
	return models.Guest()
}
