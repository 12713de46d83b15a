package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/promaster-id/konstruksi-backend/internal/api/http"
	"github.com/promaster-id/konstruksi-backend/internal/api/http/middleware"
	"github.com/promaster-id/konstruksi-backend/internal/insight"
	insighthttp "github.com/promaster-id/konstruksi-backend/internal/insight/http"
	inventoryhttp "github.com/promaster-id/konstruksi-backend/internal/inventory/http"
	invstore "github.com/promaster-id/konstruksi-backend/internal/inventory/store"
	projectshttp "github.com/promaster-id/konstruksi-backend/internal/projects/http"
	"github.com/promaster-id/konstruksi-backend/internal/projects/store"
	reporthttp "github.com/promaster-id/konstruksi-backend/internal/report/http"
	settingshttp "github.com/promaster-id/konstruksi-backend/internal/settings/http"
	settingsstore "github.com/promaster-id/konstruksi-backend/internal/settings/store"
	statshttp "github.com/promaster-id/konstruksi-backend/internal/stats/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Projects    *store.Store
	Materials   *invstore.Store
	Settings    *settingsstore.Store
	Generator   insight.Generator
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	projectshttp.New(dep.Projects).Register(api.Group("/projects"))
	inventoryhttp.New(dep.Materials).Register(api.Group("/materials"))
	statshttp.New(dep.Projects).Register(api.Group("/stats"))
	settingshttp.New(dep.Settings).Register(api.Group("/settings"))
	reporthttp.New(dep.Projects, dep.Settings).Register(api.Group("/reports"))

	insightService := insight.NewService(dep.Projects, dep.Materials, dep.Generator)
	insighthttp.New(insightService).Register(api.Group("/insights"))

	return r
}
