package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snezamha/cms-core/internal/common/cnst"
	"github.com/snezamha/cms-core/internal/identity"
)

// AuthMiddleware resolves the Bearer session token into an identity and
// stores it on the context. Requests without a valid token pass through
// unauthenticated; the per-route guards decide what that means.
func AuthMiddleware(provider identity.Provider, logger *zap.Logger) gin.HandlerFunc {
	logger = logger.Named("apiserver.middleware.auth")
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		ident, err := provider.Verify(c.Request.Context(), parts[1])
		if err != nil {
			logger.Debug("session token rejected",
				zap.String("remote_addr", c.ClientIP()),
				zap.Error(err))
			c.Next()
			return
		}

		c.Set(cnst.IdentityKey, ident)
		c.Next()
	}
}

// IdentityFromContext returns the identity stored by AuthMiddleware,
// or nil for unauthenticated requests.
func IdentityFromContext(c *gin.Context) *identity.Identity {
	v, exists := c.Get(cnst.IdentityKey)
	if !exists {
		return nil
	}
	ident, _ := v.(*identity.Identity)
	return ident
}
