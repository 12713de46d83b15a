package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/promaster-id/konstruksi-backend/internal/settings/domain"
	"github.com/promaster-id/konstruksi-backend/internal/settings/store"
)

// Handler serves the profile and app-settings endpoints.
type Handler struct {
	store *store.Store
}

func New(store *store.Store) *Handler {
	return &Handler{store: store}
}

// Register attaches settings routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.get)
	rg.PUT("", h.save)
}

func (h *Handler) get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"profile":  h.store.Profile(),
		"settings": h.store.Settings(),
	})
}

type saveReq struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AppName     string `json:"app_name"`
	CompanyName string `json:"company_name"`
}

func (h *Handler) save(c *gin.Context) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.AppName) == "" || strings.TrimSpace(req.CompanyName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "name, email, app_name and company_name are required"})
		return
	}

	profile, settings := h.store.Save(
		domain.UserProfile{
			Name:  strings.TrimSpace(req.Name),
			Email: strings.TrimSpace(req.Email),
		},
		domain.AppSettings{
			AppName:     strings.TrimSpace(req.AppName),
			CompanyName: strings.TrimSpace(req.CompanyName),
		},
	)

	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": profile, "settings": settings})
}
