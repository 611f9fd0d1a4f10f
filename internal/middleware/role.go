package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/linkup-api/internal/auth"
	"github.com/franciscosanchezn/linkup-api/internal/models"
)

// RoleChecker decides whether a verified identity holds a stored role
type RoleChecker interface {
	Require(ctx context.Context, id auth.Identity, role string) error
}

// RequireRole is a middleware that checks the caller's stored role. It must run after Authenticate;
// without an identity on the context it answers 401.
func RequireRole(checker RoleChecker, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Unauthorized())
			return
		}

		err := checker.Require(c.Request.Context(), identity, requiredRole)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, auth.ErrForbidden):
			log.WithFields(logrus.Fields{
				"email":         identity.Email(),
				"required_role": requiredRole,
				"path":          c.FullPath(),
			}).Info("Rejected request with insufficient role")
			c.AbortWithStatusJSON(http.StatusForbidden, models.Forbidden())
		default:
			log.WithError(err).WithField("email", identity.Email()).Error("Role lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewMessage(err.Error()))
		}
	}
}

// RequireSelf allows the request only when the path parameter param equals the token email.
// It guards self-service routes independently of role.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Unauthorized())
			return
		}

		if identity.Email() == "" || c.Param(param) != identity.Email() {
			log.WithFields(logrus.Fields{
				"email": identity.Email(),
				"path":  c.FullPath(),
			}).Info("Rejected request for another user's resource")
			c.AbortWithStatusJSON(http.StatusForbidden, models.Forbidden())
			return
		}
		c.Next()
	}
}
