package handler

import (
	"net/http"
	"runtime/debug"
	"time"

	"wellness/config"
	"wellness/internal/delivery/http/response"
	"wellness/internal/util"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves liveness and service information endpoints.
type HealthHandler struct {
	serviceName string
	basePath    string
	version     string
	started     time.Time
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	version := "dev"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	return &HealthHandler{
		serviceName: cfg.Env.ServiceName,
		basePath:    cfg.HTTP.BasePath,
		version:     version,
		started:     time.Now(),
	}
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": util.FormatDuration(time.Since(h.started)),
	})
}

// Index describes the API.
func (h *HealthHandler) Index(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]any{
		"message":   "API Bem-Estar funcionando!",
		"service":   h.serviceName,
		"version":   h.version,
		"timestamp": util.FormatTimestamp(time.Now()),
		"endpoints": map[string]string{
			"auth":      h.basePath + "/auth",
			"mood":      h.basePath + "/mood",
			"moodTypes": h.basePath + "/mood-types",
		},
	})
}
