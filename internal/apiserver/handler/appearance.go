package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snezamha/cms-core/internal/apiserver/database"
	"github.com/snezamha/cms-core/internal/apiserver/service"
	"github.com/snezamha/cms-core/internal/common/dto"
	"github.com/snezamha/cms-core/internal/i18n"
	"github.com/snezamha/cms-core/internal/settings"
)

// Appearance serves the global theme configuration.
type Appearance struct {
	db     database.Database
	sync   *service.SyncService
	logger *zap.Logger
}

// NewAppearance creates a new Appearance handler
func NewAppearance(db database.Database, sync *service.SyncService, logger *zap.Logger) *Appearance {
	return &Appearance{db: db, sync: sync, logger: logger.Named("apiserver.handler.appearance")}
}

// stored returns the persisted appearance row, or nil when storage is
// unavailable, the row is absent, or the read fails.
func (h *Appearance) stored(c *gin.Context) *database.SettingsAppearance {
	if h.db == nil {
		return nil
	}
	row, err := h.db.GetSettingsAppearance(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load appearance, serving defaults", zap.Error(err))
		return nil
	}
	return row
}

// Get returns the resolved appearance. Reads never fail: anything
// invalid or unavailable resolves to the defaults.
func (h *Appearance) Get(c *gin.Context) {
	resolved := settings.DefaultAppearance()
	if row := h.stored(c); row != nil {
		resolved = settings.NormalizeAppearance(settings.Appearance{
			Theme:  row.Theme,
			Radius: row.Radius,
			Layout: row.Layout,
		})
	}
	c.JSON(http.StatusOK, resolved)
}

// Save updates the appearance. Each field is validated independently:
// an invalid or absent field keeps the stored value, and the hard
// default when there is none.
func (h *Appearance) Save(c *gin.Context) {
	user, ok := requireRole(c, h.db, h.sync, h.logger, database.RoleSuperAdmin)
	if !ok {
		return
	}

	var req dto.AppearanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Uint("user_id", user.ID), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrMalformedBody)
		return
	}

	row, err := h.db.GetSettingsAppearance(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load appearance", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer.WithParam("Reason", err.Error()))
		return
	}

	fallback := settings.DefaultAppearance()
	if row != nil {
		fallback = settings.NormalizeAppearance(settings.Appearance{
			Theme:  row.Theme,
			Radius: row.Radius,
			Layout: row.Layout,
		})
	} else {
		row = &database.SettingsAppearance{}
	}

	next := fallback
	if req.Theme != nil && settings.ValidTheme(*req.Theme) {
		next.Theme = *req.Theme
	}
	if req.Radius != nil && settings.ValidRadius(*req.Radius) {
		next.Radius = *req.Radius
	}
	if req.Layout != nil && settings.ValidLayout(*req.Layout) {
		next.Layout = *req.Layout
	}

	row.Theme = next.Theme
	row.Radius = next.Radius
	row.Layout = next.Layout
	if err := h.db.SaveSettingsAppearance(c.Request.Context(), row); err != nil {
		h.logger.Error("failed to save appearance", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer.WithParam("Reason", err.Error()))
		return
	}

	h.logger.Info("appearance saved",
		zap.Uint("user_id", user.ID),
		zap.String("theme", next.Theme),
		zap.Float64("radius", next.Radius),
		zap.String("layout", next.Layout))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
