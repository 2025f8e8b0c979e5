package middleware

import (
	"net/http"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const actorKey = contextKey("actor")

// Identity header names set by the authenticating frontend. This service
// performs no authentication itself; callers are pre-checked upstream and
// pass their identity and factory scope explicitly.
const (
	HeaderUserID    = "X-User-ID"
	HeaderFactoryID = "X-Factory-ID"
)

// IdentityMiddleware extracts the caller identity from request headers and
// stores it in the Gin context. Requests without a user id are rejected.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + HeaderUserID + " header"})
			return
		}

		actor := domain.Actor{
			UserID:    userID,
			FactoryID: c.GetHeader(HeaderFactoryID),
		}
		c.Set(string(actorKey), actor)

		c.Next()
	}
}

// GetActorFromContext retrieves the caller identity from the Gin context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	actorVal, exists := c.Get(string(actorKey))
	if !exists {
		return domain.Actor{}, false
	}

	actor, ok := actorVal.(domain.Actor)
	if !ok {
		return domain.Actor{}, false
	}

	return actor, true
}
