package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/snezamha/cms-core/internal/apiserver/database"
	"github.com/snezamha/cms-core/internal/identity"
)

func TestAppearance_Get_DefaultsWithoutRow(t *testing.T) {
	db := newFakeDB()
	h := NewAppearance(db, newSync(db), zap.NewNop())
	r := newTestRouter(nil)
	r.GET("/api/settings-appearance", h.Get)

	body := decodeBody(t, doJSON(t, r, "GET", "/api/settings-appearance", nil))
	assert.Equal(t, "zinc", body["theme"])
	assert.Equal(t, 0.5, body["radius"])
	assert.Equal(t, "vertical", body["layout"])
}

func TestAppearance_Get_DefaultsOnStorageFailure(t *testing.T) {
	db := newFakeDB()
	db.failReads = true
	h := NewAppearance(db, newSync(db), zap.NewNop())
	r := newTestRouter(nil)
	r.GET("/api/settings-appearance", h.Get)

	w := doJSON(t, r, "GET", "/api/settings-appearance", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "zinc", body["theme"])
}

func TestAppearance_Get_InvalidStoredFieldFallsBack(t *testing.T) {
	db := newFakeDB()
	db.appearance = &database.SettingsAppearance{ID: 1, Theme: "sparkly", Radius: 0.75, Layout: "vertical"}
	h := NewAppearance(db, newSync(db), zap.NewNop())
	r := newTestRouter(nil)
	r.GET("/api/settings-appearance", h.Get)

	body := decodeBody(t, doJSON(t, r, "GET", "/api/settings-appearance", nil))
	assert.Equal(t, "zinc", body["theme"])
	assert.Equal(t, 0.75, body["radius"])
}

func TestAppearance_Save_SuperAdminOnly(t *testing.T) {
	db := newFakeDB()
	db.seedUser("boss", database.RoleSuperAdmin)
	db.seedUser("mod", database.RoleAdmin)
	h := NewAppearance(db, newSync(db), zap.NewNop())
	r := newTestRouter(&identity.Identity{ID: "mod"})
	r.POST("/api/settings-appearance", h.Save)

	w := doJSON(t, r, "POST", "/api/settings-appearance", map[string]any{"theme": "rose"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAppearance_Save_InvalidRadiusKeepsStored(t *testing.T) {
	db := newFakeDB()
	db.seedUser("boss", database.RoleSuperAdmin)
	db.appearance = &database.SettingsAppearance{ID: 1, Theme: "blue", Radius: 0.75, Layout: "horizontal"}
	h := NewAppearance(db, newSync(db), zap.NewNop())
	r := newTestRouter(&identity.Identity{ID: "boss"})
	r.POST("/api/settings-appearance", h.Save)

	w := doJSON(t, r, "POST", "/api/settings-appearance", map[string]any{"radius": 0.42})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.75, db.appearance.Radius)
	assert.Equal(t, "blue", db.appearance.Theme)
}

func TestAppearance_Save_InvalidRadiusWithoutRowUsesDefault(t *testing.T) {
	db := newFakeDB()
	db.seedUser("boss", database.RoleSuperAdmin)
	h := NewAppearance(db, newSync(db), zap.NewNop())
	r := newTestRouter(&identity.Identity{ID: "boss"})
	r.POST("/api/settings-appearance", h.Save)

	w := doJSON(t, r, "POST", "/api/settings-appearance", map[string]any{"radius": 7.0})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.5, db.appearance.Radius)
	assert.Equal(t, "zinc", db.appearance.Theme)
}

func TestAppearance_Save_ValidFieldsApply(t *testing.T) {
	db := newFakeDB()
	db.seedUser("boss", database.RoleSuperAdmin)
	h := NewAppearance(db, newSync(db), zap.NewNop())
	r := newTestRouter(&identity.Identity{ID: "boss"})
	r.POST("/api/settings-appearance", h.Save)

	w := doJSON(t, r, "POST", "/api/settings-appearance", map[string]any{
		"theme": "violet", "radius": 1.0, "layout": "horizontal",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "violet", db.appearance.Theme)
	assert.Equal(t, 1.0, db.appearance.Radius)
	assert.Equal(t, "horizontal", db.appearance.Layout)
}
