package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snezamha/cms-core/internal/apiserver/database"
	"github.com/snezamha/cms-core/internal/apiserver/middleware"
	"github.com/snezamha/cms-core/internal/apiserver/service"
	"github.com/snezamha/cms-core/internal/i18n"
)

// Me reports the caller's session state and role.
type Me struct {
	db     database.Database
	sync   *service.SyncService
	logger *zap.Logger
}

// NewMe creates a new Me handler
func NewMe(db database.Database, sync *service.SyncService, logger *zap.Logger) *Me {
	return &Me{db: db, sync: sync, logger: logger.Named("apiserver.handler.me")}
}

// Get returns whether the request carries a valid session, and the
// caller's local role. Without storage every session reports the
// lowest role.
func (h *Me) Get(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)
	if ident == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "role": string(database.RoleUser)})
		return
	}

	user, err := h.sync.Sync(c.Request.Context(), ident)
	if err != nil {
		h.logger.Error("failed to sync user", zap.String("external_id", ident.ID), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer.WithParam("Reason", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": true, "role": string(user.Role)})
}
