package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promaster-id/konstruksi-backend/internal/projects/store"
	"github.com/promaster-id/konstruksi-backend/internal/stats"
)

// Handler serves the derived dashboard statistics.
type Handler struct {
	store *store.Store
	cache stats.Cache
}

func New(store *store.Store) *Handler {
	return &Handler{store: store}
}

// Register attaches the stats route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.summary)
}

func (h *Handler) summary(c *gin.Context) {
	version, projects := h.store.VersionedList()
	sum := h.cache.Summary(version, projects)
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": sum})
}
