package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/snezamha/cms-core/internal/apiserver/database"
	"github.com/snezamha/cms-core/internal/identity"
)

func TestDashboardFooter_Get_DefaultsWithoutStorage(t *testing.T) {
	h := NewDashboardFooter(nil, newSync(nil), zap.NewNop())
	r := newTestRouter(nil)
	r.GET("/api/dashboard-footer", h.Get)

	body := decodeBody(t, doJSON(t, r, "GET", "/api/dashboard-footer?locale=de", nil))
	assert.Equal(t, "de", body["locale"])
	footer := body["settings"].(map[string]any)
	assert.Contains(t, footer["line1"], "Next.js Starter Kit")
}

func TestDashboardFooter_Get_NegotiatedLocaleFallback(t *testing.T) {
	db := newFakeDB()
	db.seedGeneral("en", `{"metadata":{"title":"T"},"dashboardFooter":{"line1":"EN Line","line2":"x"}}`)
	h := NewDashboardFooter(db, newSync(db), zap.NewNop())
	r := newTestRouter(nil)
	r.GET("/api/dashboard-footer", h.Get)

	// no ?locale= falls back to the request language set by the router
	body := decodeBody(t, doJSON(t, r, "GET", "/api/dashboard-footer", nil))
	assert.Equal(t, "en", body["locale"])
	assert.Equal(t, "EN Line", body["settings"].(map[string]any)["line1"])
}

func TestDashboardFooter_Save_LineLevelMerge(t *testing.T) {
	db := newFakeDB()
	db.seedUser("boss", database.RoleSuperAdmin)
	db.seedGeneral("en", `{"metadata":{"title":"Keep"},"dashboardFooter":{"line1":"Old 1","line2":"Old 2"}}`)
	h := NewDashboardFooter(db, newSync(db), zap.NewNop())
	r := newTestRouter(&identity.Identity{ID: "boss"})
	r.POST("/api/dashboard-footer", h.Save)
	r.GET("/api/dashboard-footer", h.Get)

	w := doJSON(t, r, "POST", "/api/dashboard-footer", map[string]any{
		"settingsByLocale": map[string]any{
			"en": map[string]any{"line2": "New 2"},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, doJSON(t, r, "GET", "/api/dashboard-footer?locale=en", nil))
	footer := body["settings"].(map[string]any)
	assert.Equal(t, "Old 1", footer["line1"])
	assert.Equal(t, "New 2", footer["line2"])
	// metadata side untouched
	assert.Contains(t, string(db.general.Locale("en")), "Keep")
}

func TestDashboardFooter_Save_PartialWriteOnFreshRow(t *testing.T) {
	db := newFakeDB()
	db.seedUser("boss", database.RoleSuperAdmin)
	h := NewDashboardFooter(db, newSync(db), zap.NewNop())
	r := newTestRouter(&identity.Identity{ID: "boss"})
	r.POST("/api/dashboard-footer", h.Save)
	r.GET("/api/dashboard-footer", h.Get)

	w := doJSON(t, r, "POST", "/api/dashboard-footer", map[string]any{
		"settingsByLocale": map[string]any{
			"en": map[string]any{"line2": "Only Line 2"},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// the absent line stores as "", never as the default text
	var stored map[string]map[string]any
	assert.NoError(t, json.Unmarshal(db.general.Locale("en"), &stored))
	assert.Equal(t, "", stored["dashboardFooter"]["line1"])

	body := decodeBody(t, doJSON(t, r, "GET", "/api/dashboard-footer?locale=en", nil))
	footer := body["settings"].(map[string]any)
	assert.Equal(t, "", footer["line1"])
	assert.Equal(t, "Only Line 2", footer["line2"])
}

func TestDashboardFooter_Save_LegacyBody(t *testing.T) {
	db := newFakeDB()
	db.seedUser("boss", database.RoleSuperAdmin)
	h := NewDashboardFooter(db, newSync(db), zap.NewNop())
	r := newTestRouter(&identity.Identity{ID: "boss"})
	r.POST("/api/dashboard-footer", h.Save)

	w := doJSON(t, r, "POST", "/api/dashboard-footer", map[string]any{
		"locale":   "fa",
		"settings": map[string]any{"line1": "FA Line"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(db.general.Locale("fa")), "FA Line")
	// creating the row fills the metadata side with defaults
	assert.Contains(t, string(db.general.Locale("fa")), "Next.js Starter Kit")
}

func TestDashboardFooter_Save_RequiresAdmin(t *testing.T) {
	db := newFakeDB()
	db.seedUser("boss", database.RoleSuperAdmin)
	db.seedUser("pleb", database.RoleUser)
	h := NewDashboardFooter(db, newSync(db), zap.NewNop())
	r := newTestRouter(&identity.Identity{ID: "pleb"})
	r.POST("/api/dashboard-footer", h.Save)

	w := doJSON(t, r, "POST", "/api/dashboard-footer", map[string]any{
		"settingsByLocale": map[string]any{"en": map[string]any{"line1": "x"}},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
