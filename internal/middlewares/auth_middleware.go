package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"starwars_api/internal/models"
	"starwars_api/internal/responses"
	"starwars_api/internal/utils"
)

// Context keys set by Authenticate.
const (
	UserIDKey  = "userId"
	SessionKey = "session"
)

// TokenBlacklist reports whether a token id has been revoked.
type TokenBlacklist interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// Authenticate verifies the bearer token and stores the caller's user id in the
// context. blacklist may be nil, in which case tokens are never treated as revoked.
func Authenticate(secret []byte, blacklist TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Abort(c, http.StatusUnauthorized, "Missing Authorization header")
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			responses.Abort(c, http.StatusUnauthorized, "Invalid Authorization format")
			return
		}

		session, err := utils.SessionFromToken(parts[1], secret)
		if err != nil {
			responses.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		if blacklist != nil && session.TokenID != "" {
			revoked, err := blacklist.IsBlacklisted(c.Request.Context(), session.TokenID)
			if err != nil {
				zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Token blacklist lookup failed")
				responses.Abort(c, http.StatusInternalServerError, "Could not verify token")
				return
			}
			if revoked {
				responses.Abort(c, http.StatusUnauthorized, "Token has been revoked")
				return
			}
		}

		c.Set(UserIDKey, session.UserID)
		c.Set(SessionKey, session)

		c.Next()
	}
}

// CurrentUserID returns the id stored by Authenticate.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func CurrentSession(c *gin.Context) (*models.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*models.Session)
	return session, ok
}
