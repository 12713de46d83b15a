package main

import (
	"log"
	"time"

	"github.com/promaster-id/konstruksi-backend/config"
	"github.com/promaster-id/konstruksi-backend/internal/bootstrap"
	"github.com/promaster-id/konstruksi-backend/internal/insight/llm"
	invstore "github.com/promaster-id/konstruksi-backend/internal/inventory/store"
	"github.com/promaster-id/konstruksi-backend/internal/projects/store"
	"github.com/promaster-id/konstruksi-backend/internal/seed"
	settingsstore "github.com/promaster-id/konstruksi-backend/internal/settings/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	projects := store.New()
	projects.Seed(seed.Projects())

	materials := invstore.New()
	materials.Seed(seed.Materials())

	settings := settingsstore.New()

	gemini := llm.NewGemini(
		cfg.AI.BaseURL,
		cfg.AI.APIKey,
		cfg.AI.Model,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
	)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "konstruksi-backend",
		Version:     cfg.App.Version,
		Projects:    projects,
		Materials:   materials,
		Settings:    settings,
		Generator:   gemini,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
