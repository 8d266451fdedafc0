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

// SettingsGeneral serves the per-locale site settings documents.
type SettingsGeneral struct {
	db     database.Database
	sync   *service.SyncService
	logger *zap.Logger
}

// NewSettingsGeneral creates a new SettingsGeneral handler
func NewSettingsGeneral(db database.Database, sync *service.SyncService, logger *zap.Logger) *SettingsGeneral {
	return &SettingsGeneral{db: db, sync: sync, logger: logger.Named("apiserver.handler.settings_general")}
}

// resolveStored loads the singleton row and resolves every locale.
// Storage failures resolve to defaults so reads never break the site.
func (h *SettingsGeneral) resolveStored(c *gin.Context) map[string]settings.LocaleSettings {
	out := make(map[string]settings.LocaleSettings, len(cnst.Locales))
	for _, loc := range cnst.Locales {
		out[loc] = settings.DefaultLocaleSettings()
	}
	if h.db == nil {
		return out
	}
	row, err := h.db.GetSettingsGeneral(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load settings, serving defaults", zap.Error(err))
		return out
	}
	if row == nil {
		return out
	}
	for _, loc := range cnst.Locales {
		out[loc] = settings.DecodeLocaleDocument(row.Locale(loc)).Resolve()
	}
	return out
}

// Get returns the resolved settings, for one locale when ?locale= is
// given, otherwise for all of them.
func (h *SettingsGeneral) Get(c *gin.Context) {
	resolved := h.resolveStored(c)

	if locale := c.Query("locale"); locale != "" {
		loc := cnst.NormalizeLocale(locale)
		c.JSON(http.StatusOK, gin.H{"locale": loc, "settings": resolved[loc]})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settingsByLocale": resolved})
}

// Save merges partial documents into the stored row, one locale at a
// time. Locales absent from the body stay untouched.
func (h *SettingsGeneral) Save(c *gin.Context) {
	user, ok := requireRole(c, h.db, h.sync, h.logger, database.RoleSuperAdmin, database.RoleAdmin)
	if !ok {
		return
	}

	var req dto.SettingsByLocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SettingsByLocale == nil {
		h.logger.Warn("invalid request body", zap.Uint("user_id", user.ID), zap.Error(err))
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
		incoming, ok := req.SettingsByLocale[loc]
		if !ok {
			continue
		}
		doc := settings.DecodeLocaleDocument(row.Locale(loc))
		merged := settings.MergeLocale(doc.Fields, incoming)
		data, err := settings.Encode(doc.Apply(merged))
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

	h.logger.Info("settings saved", zap.Uint("user_id", user.ID))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
