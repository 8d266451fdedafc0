package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snezamha/cms-core/pkg/version"
)

// ServiceInfoHandler represents the service information handler
type ServiceInfoHandler struct {
	started time.Time
}

// NewServiceInfoHandler creates a new service information handler
func NewServiceInfoHandler() *ServiceInfoHandler {
	return &ServiceInfoHandler{started: time.Now()}
}

// ServiceInfo represents the service identity information
type ServiceInfo struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Version      string   `json:"version"`
	Type         string   `json:"type"`
	Capabilities []string `json:"capabilities"`
}

// HandleServiceInfo serves service identity information as JSON
func (h *ServiceInfoHandler) HandleServiceInfo(c *gin.Context) {
	info := ServiceInfo{
		Name:        "cms-core",
		Description: "Localized admin dashboard backend serving per-locale site settings, appearance configuration and role-gated user management",
		Version:     version.Get(),
		Type:        "cms-backend",
		Capabilities: []string{
			"settings-general",
			"settings-appearance",
			"dashboard-footer",
			"metadata",
			"user-management",
			"i18n",
		},
	}

	c.JSON(http.StatusOK, info)
}

// HandleHealth serves liveness information as JSON
func (h *ServiceInfoHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Get(),
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}
