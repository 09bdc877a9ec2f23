// Package api contains the HTTP handlers for the framework's own surface:
// health and workflow introspection. Webhook dispatch lives in
// internal/dispatch.
package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hookflow/internal/registry"
	"hookflow/pkg/models"
)

// Handler contains the non-dispatch HTTP handlers.
type Handler struct {
	registry *registry.Registry
	started  time.Time
}

// NewHandler creates a new Handler over a loaded registry.
func NewHandler(reg *registry.Registry) *Handler {
	return &Handler{registry: reg, started: time.Now()}
}

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status          string  `json:"status"`
	Uptime          float64 `json:"uptime"`
	LoadedWorkflows int     `json:"loadedWorkflows"`
}

// HandleHealth returns basic health status (always returns 200 OK).
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthStatus{
		Status:          "ok",
		Uptime:          time.Since(h.started).Seconds(),
		LoadedWorkflows: h.registry.Count(),
	})
}

// WorkflowInfo is the introspection view of one registered workflow. It never
// exposes credential material.
type WorkflowInfo struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Auth        models.AuthKind `json:"auth"`
	Schedule    string          `json:"schedule,omitempty"`
	HasSchema   bool            `json:"hasSchema"`
}

// HandleListWorkflows returns the registered workflow set, sorted by id.
func (h *Handler) HandleListWorkflows(c echo.Context) error {
	all := h.registry.All()
	infos := make([]WorkflowInfo, 0, len(all))
	for _, wf := range all {
		kind := wf.Config.Auth.Kind
		if kind == "" {
			kind = models.AuthNone
		}
		infos = append(infos, WorkflowInfo{
			ID:          wf.Config.ID,
			Name:        wf.DisplayName(),
			Description: wf.Config.Description,
			Auth:        kind,
			Schedule:    wf.Config.Schedule,
			HasSchema:   wf.Schema != nil,
		})
	}
	return c.JSON(http.StatusOK, infos)
}
