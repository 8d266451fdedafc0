package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snezamha/cms-core/internal/apiserver/database"
	"github.com/snezamha/cms-core/internal/apiserver/service"
	"github.com/snezamha/cms-core/internal/common/cnst"
	"github.com/snezamha/cms-core/internal/common/dto"
	"github.com/snezamha/cms-core/internal/i18n"
	"github.com/snezamha/cms-core/internal/settings"
)

// DashboardFooter serves the footer sub-object of the locale settings.
type DashboardFooter struct {
	db     database.Database
	sync   *service.SyncService
	logger *zap.Logger
}

// NewDashboardFooter creates a new DashboardFooter handler
func NewDashboardFooter(db database.Database, sync *service.SyncService, logger *zap.Logger) *DashboardFooter {
	return &DashboardFooter{db: db, sync: sync, logger: logger.Named("apiserver.handler.dashboard_footer")}
}

// Get returns the resolved footer for the requested locale, falling
// back to the negotiated request language.
func (h *DashboardFooter) Get(c *gin.Context) {
	loc := c.Query("locale")
	if loc == "" {
		loc = i18n.LangFromContext(c)
	}
	loc = cnst.NormalizeLocale(loc)

	resolved := settings.DefaultLocaleSettings()
	if h.db != nil {
		row, err := h.db.GetSettingsGeneral(c.Request.Context())
		if err != nil {
			h.logger.Error("failed to load settings, serving defaults", zap.Error(err))
		} else if row != nil {
			resolved = settings.DecodeLocaleDocument(row.Locale(loc)).Resolve()
		}
	}

	c.JSON(http.StatusOK, gin.H{"locale": loc, "settings": resolved.DashboardFooter})
}

// footerWriteBody accepts both the locale-keyed shape and the older
// single-locale shape.
type footerWriteBody struct {
	dto.SettingsByLocaleRequest
	dto.LegacySettingsRequest
}

func (b *footerWriteBody) byLocale() map[string]map[string]any {
	if b.SettingsByLocale != nil {
		return b.SettingsByLocale
	}
	if b.Settings != nil {
		return map[string]map[string]any{cnst.NormalizeLocale(b.Locale): b.Settings}
	}
	return nil
}

// Save merges footer lines into the stored row. Only lines present in
// the body change; the rest keep their stored value. Creating the row
// fills the metadata side with defaults.
func (h *DashboardFooter) Save(c *gin.Context) {
	user, ok := requireRole(c, h.db, h.sync, h.logger, database.RoleSuperAdmin, database.RoleAdmin)
	if !ok {
		return
	}

	var req footerWriteBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Uint("user_id", user.ID), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrMalformedBody)
		return
	}
	byLocale := req.byLocale()
	if byLocale == nil {
		h.logger.Warn("request body carries no settings", zap.Uint("user_id", user.ID))
		i18n.RespondWithError(c, i18n.ErrMalformedBody)
		return
	}

	row, err := h.db.GetSettingsGeneral(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load settings", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer.WithParam("Reason", err.Error()))
		return
	}
	if row == nil {
		row = &database.SettingsGeneral{}
	}

	for _, loc := range cnst.Locales {
		incoming, ok := byLocale[loc]
		if !ok {
			continue
		}
		doc := settings.DecodeLocaleDocument(row.Locale(loc))
		resolved := doc.Resolve()
		// merge against the raw stored lines, not the resolved ones, so a
		// partial write never bakes default text into storage
		resolved.DashboardFooter = settings.MergeFooter(doc.StoredFooter(), incoming)
		data, err := settings.Encode(doc.Apply(resolved))
		if err != nil {
			h.logger.Error("failed to encode settings", zap.String("locale", loc), zap.Error(err))
			i18n.RespondWithError(c, i18n.ErrInternalServer.WithParam("Reason", err.Error()))
			return
		}
		row.SetLocale(loc, data)
	}

	if err := h.db.SaveSettingsGeneral(c.Request.Context(), row); err != nil {
		h.logger.Error("failed to save settings", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer.WithParam("Reason", err.Error()))
		return
	}

	h.logger.Info("dashboard footer saved", zap.Uint("user_id", user.ID))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
