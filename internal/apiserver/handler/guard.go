package handler

import (
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"

	"github.com/snezamha/cms-core/internal/apiserver/database"
	"github.com/snezamha/cms-core/internal/apiserver/middleware"
	"github.com/snezamha/cms-core/internal/apiserver/service"
	"github.com/snezamha/cms-core/internal/i18n"
)

// requireRole authenticates the request, syncs the caller's local row
// and checks its role against the allowed set. On failure the error
// response has already been written and ok is false.
func requireRole(c *gin.Context, db database.Database, sync *service.SyncService, logger *zap.Logger, roles ...database.UserRole) (*database.User, bool) {
	ident := middleware.IdentityFromContext(c)
	if ident == nil {
		logger.Warn("unauthenticated request", zap.String("remote_addr", c.ClientIP()))
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return nil, false
	}

	if db == nil {
		logger.Warn("storage not configured", zap.String("path", c.Request.URL.Path))
		i18n.RespondWithError(c, i18n.ErrStorageNotConfigured)
		return nil, false
	}

	user, err := sync.Sync(c.Request.Context(), ident)
	if err != nil {
		logger.Error("failed to sync user", zap.String("external_id", ident.ID), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer.WithParam("Reason", err.Error()))
		return nil, false
	}

	if len(roles) > 0 && !roleAllowed(user.Role, roles) {
		logger.Warn("insufficient role",
			zap.Uint("user_id", user.ID),
			zap.String("role", string(user.Role)),
			zap.String("path", c.Request.URL.Path))
		i18n.RespondWithError(c, i18n.ErrForbidden)
		return nil, false
	}

	return user, true
}

func roleAllowed(role database.UserRole, allowed []database.UserRole) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
