package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/linkup-api/internal/auth"
	"github.com/franciscosanchezn/linkup-api/internal/models"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// identityKey is the gin context key holding the verified auth.Identity
const identityKey = "identity"

// TokenVerifier turns a bearer token into a verified identity
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Authenticate verifies the bearer token of every request and stores the decoded identity on the
// context. It is purely cryptographic: it never touches storage.
// Missing, malformed, invalid and expired credentials all answer 401 {"message":"unauthorized access"}.
func Authenticate(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			rejectUnauthorized(c, "missing authorization header", nil)
			return
		}

		// RFC 6750: "Bearer <token>"
		fields := strings.Fields(authHeader)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
			rejectUnauthorized(c, "malformed authorization header", nil)
			return
		}

		identity, err := tokens.Verify(fields[1])
		if err != nil {
			reason := "invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				reason = "expired token"
			}
			rejectUnauthorized(c, reason, err)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentifyIfPresent attaches the identity of a valid bearer token but never rejects: requests
// without a usable token continue anonymously. It serves open routes that record who acted
// when the caller is known.
func IdentifyIfPresent(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := strings.Fields(c.GetHeader("Authorization"))
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			if identity, err := tokens.Verify(fields[1]); err == nil {
				c.Set(identityKey, identity)
			} else {
				log.WithError(err).WithField("path", c.FullPath()).Debug("Ignoring unusable bearer token on open route")
			}
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by Authenticate
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	if !ok || identity.IsZero() {
		return auth.Identity{}, false
	}
	return identity, true
}

func rejectUnauthorized(c *gin.Context, reason string, err error) {
	entry := log.WithFields(logrus.Fields{
		"reason": reason,
		"path":   c.FullPath(),
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("Rejected unauthenticated request")

	c.AbortWithStatusJSON(http.StatusUnauthorized, models.Unauthorized())
}
