package handler

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HandleRuntimeConfig serves frontend runtime config as JSON
func HandleRuntimeConfig(c *gin.Context) {
	debugMode := false
	if debugModeStr := os.Getenv("DEBUG_MODE"); debugModeStr != "" {
		if parsed, err := strconv.ParseBool(debugModeStr); err == nil {
			debugMode = parsed
		}
	}

	appVersion := os.Getenv("APP_VERSION")
	if appVersion == "" {
		appVersion = "production"
	}

	c.JSON(http.StatusOK, gin.H{
		"apiBaseUrl": os.Getenv("API_BASE_URL"),
		"appUrl":     os.Getenv("APP_URL"),
		"debugMode":  debugMode,
		"version":    appVersion,
	})
}
