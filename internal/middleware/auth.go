package middleware

import (
	"net/http"

	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/anamikapanwar73/proctored-exam-system/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const identityKey = "identity"

// LoadIdentity resolves the session cookie once per request. Requests without
// a valid session continue anonymously.
func LoadIdentity(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		identity, err := store.Resolve(c.Request.Context(), token)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("LoadIdentity: session store error, treating request as anonymous")
		}
		if identity != nil {
			c.Set(identityKey, *identity)
		}
		c.Next()
	}
}

// RequireRole redirects callers that do not hold role. It relies on
// LoadIdentity having run earlier in the chain.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := Check(CurrentIdentity(c), role)
		if decision.Outcome != Allowed {
			log.Debug().
				Str("path", c.Request.URL.Path).
				Str("required", string(role)).
				Stringer("outcome", decision.Outcome).
				Msg("Access denied")
			c.Redirect(http.StatusFound, decision.Redirect)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the caller's identity or nil when anonymous.
func CurrentIdentity(c *gin.Context) *session.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, ok := v.(session.Identity)
	if !ok {
		return nil
	}
	return &identity
}
