package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/promaster-id/konstruksi-backend/internal/projects/store"
	"github.com/promaster-id/konstruksi-backend/internal/report"
	settingsstore "github.com/promaster-id/konstruksi-backend/internal/settings/store"
)

// Handler serves PDF report downloads.
type Handler struct {
	projects *store.Store
	settings *settingsstore.Store
	now      func() time.Time
}

func New(projects *store.Store, settings *settingsstore.Store) *Handler {
	return &Handler{projects: projects, settings: settings, now: time.Now}
}

// Register attaches the report route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.export)
}

type exportReq struct {
	Title     string `json:"title"`
	ProjectID string `json:"project_id,omitempty"`
}

// export renders either the single-project report (when project_id is
// given) or the all-projects listing, and sends it as a download.
func (h *Handler) export(c *gin.Context) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	title := strings.TrimSpace(req.Title)

	profile := h.settings.Profile()
	by := report.Preparer{Name: profile.Name, Role: profile.Role}

	var (
		pdf []byte
		err error
	)
	if req.ProjectID != "" {
		p, getErr := h.projects.Get(strings.TrimSpace(req.ProjectID))
		if getErr != nil {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		pdf, err = report.RenderProject(p, title, by, h.now())
	} else {
		pdf, err = report.RenderAll(h.projects.List(), title, by, h.now())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	filename := report.SlugFilename(title)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
