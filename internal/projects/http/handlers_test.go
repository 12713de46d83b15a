package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promaster-id/konstruksi-backend/internal/projects/domain"
	"github.com/promaster-id/konstruksi-backend/internal/projects/store"
)

func newRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(s).Register(r.Group("/api/v1/projects"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProject(t *testing.T) {
	s := store.New()
	r := newRouter(s)

	t.Run("valid body creates record", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/projects", gin.H{
			"name":   "Menara A",
			"client": "PT. Contoh",
			"budget": 5000,
			"spent":  1000,
			"status": "Sedang Berjalan",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			OK      bool           `json:"ok"`
			Project domain.Project `json:"project"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.NotEmpty(t, resp.Project.ID)
		assert.Equal(t, domain.StatusOngoing, resp.Project.Status)
		assert.Len(t, s.List(), 1)
	})

	t.Run("missing name blocks creation", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/projects", gin.H{"client": "PT. Contoh"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Len(t, s.List(), 1)
	})

	t.Run("unknown status falls back to planning", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/projects", gin.H{
			"name":   "Menara B",
			"client": "PT. Contoh",
			"status": "bukan status",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Project domain.Project `json:"project"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.StatusPlanning, resp.Project.Status)
	})
}

func TestUpdateProject_UnknownID(t *testing.T) {
	r := newRouter(store.New())

	w := doJSON(t, r, http.MethodPut, "/api/v1/projects/PRJ-404", gin.H{
		"name":   "Hilang",
		"client": "PT. Contoh",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProject_ConfirmGate(t *testing.T) {
	s := store.New()
	_, err := s.Create(domain.Project{ID: "PRJ-001", Name: "Satu", Client: "PT. Contoh"})
	require.NoError(t, err)
	r := newRouter(s)

	t.Run("without confirm no mutation happens", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/v1/projects/PRJ-001", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Len(t, s.List(), 1)
	})

	t.Run("with confirm the record is removed", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/v1/projects/PRJ-001?confirm=true", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, s.List())
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/v1/projects/PRJ-001?confirm=true", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProgress_NotClamped(t *testing.T) {
	s := store.New()
	r := newRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", gin.H{
		"name":     "Lebih Dari Seratus",
		"client":   "PT. Contoh",
		"progress": 150,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, 150, list[0].Progress)
}
