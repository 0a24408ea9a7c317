package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/game-journal-api/internal/auth"
	"github.com/yukikurage/game-journal-api/internal/constants"
	apierrors "github.com/yukikurage/game-journal-api/internal/errors"
)

// Authenticator resolves a session token to an identity.
type Authenticator interface {
	Authenticate(token string) (auth.Identity, error)
}

// RequireAuth checks the session token and stores its identity in the context.
// Requests without a valid token are rejected before any handler runs.
func RequireAuth(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		token, ok := session.Get(constants.SessionTokenKey).(string)
		if !ok || token == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		identity, err := authenticator.Authenticate(token)
		if err != nil {
			apierrors.Unauthorized(c, "")
			return
		}

		c.Set(constants.ContextKeyIdentity, identity)
		c.Next()
	}
}

// GetIdentity retrieves the authenticated identity from context
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	if !ok || identity.ID == 0 {
		return auth.Identity{}, false
	}
	return identity, true
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return 0, false
	}
	return identity.ID, true
}
