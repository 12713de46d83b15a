package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/promaster-id/konstruksi-backend/internal/projects/domain"
)

type projectReq struct {
	Name      string `json:"name"`
	Client    string `json:"client"`
	Location  string `json:"location"`
	Budget    int64  `json:"budget"`
	Spent     int64  `json:"spent"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Progress  int    `json:"progress"`
	Status    string `json:"status"`
	Manager   string `json:"manager"`
}

// toProject coerces the request into a domain record. Progress is kept
// as submitted, even outside 0-100.
func (r projectReq) toProject(id string) domain.Project {
	status := domain.Status(r.Status)
	if !status.Valid() {
		status = domain.StatusPlanning
	}
	return domain.Project{
		ID:        id,
		Name:      strings.TrimSpace(r.Name),
		Client:    strings.TrimSpace(r.Client),
		Location:  strings.TrimSpace(r.Location),
		Budget:    r.Budget,
		Spent:     r.Spent,
		StartDate: strings.TrimSpace(r.StartDate),
		EndDate:   strings.TrimSpace(r.EndDate),
		Progress:  r.Progress,
		Status:    status,
		Manager:   strings.TrimSpace(r.Manager),
	}
}

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.store.Create(req.toProject(""))
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) || errors.Is(err, domain.ErrClientRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": h.store.List()})
}

func (h *Handler) get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	p, err := h.store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.store.Update(req.toProject(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		case errors.Is(err, domain.ErrNameRequired), errors.Is(err, domain.ErrClientRequired):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// delete removes a project. The confirm query flag stands in for the
// user confirmation step; without it no mutation happens.
func (h *Handler) delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "deletion requires confirm=true"})
		return
	}

	if err := h.store.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
