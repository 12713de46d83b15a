package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/promaster-id/konstruksi-backend/internal/inventory/store"
)

// Handler bundles the dependencies for inventory HTTP endpoints.
type Handler struct {
	store *store.Store
}

func New(store *store.Store) *Handler {
	return &Handler{store: store}
}

// Register attaches material routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "materials": h.store.List()})
}

func (h *Handler) get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	m, err := h.store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "material not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "material": m})
}
