package http

import (
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/promaster-id/konstruksi-backend/internal/insight"
)

// Handler serves the AI insight endpoint. One request may be in flight
// at a time; a second ask while one is outstanding is rejected, which
// mirrors disabling the submit control in a client.
type Handler struct {
	service *insight.Service
	busy    atomic.Bool
}

func New(service *insight.Service) *Handler {
	return &Handler{service: service}
}

// Register attaches the insight route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.ask)
}

type askReq struct {
	Question string `json:"question"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if !h.busy.CompareAndSwap(false, true) {
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "analysis already in progress"})
		return
	}
	defer h.busy.Store(false)

	answer := h.service.Ask(c.Request.Context(), strings.TrimSpace(req.Question))
	c.JSON(http.StatusOK, gin.H{"ok": true, "answer": answer})
}
