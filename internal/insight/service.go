// Package insight answers free-text questions about the current
// project and material data via the external generation endpoint.
package insight

import (
	"context"
	"log"

	invstore "github.com/promaster-id/konstruksi-backend/internal/inventory/store"
	"github.com/promaster-id/konstruksi-backend/internal/insight/llm"
	"github.com/promaster-id/konstruksi-backend/internal/projects/store"
)

const (
	// emptyFallback is returned when the endpoint answers with no text.
	emptyFallback = "Maaf, tidak dapat menghasilkan analisis saat ini."
	// errorFallback is returned on any request failure. The error is
	// logged, never propagated to the caller.
	errorFallback = "Terjadi kesalahan saat menghubungi layanan AI. Silakan coba lagi nanti."
)

// Generator is the external text-generation collaborator.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

var _ Generator = (*llm.GeminiClient)(nil)

// Service builds prompts from store snapshots and mediates the single
// round-trip to the generation endpoint.
type Service struct {
	projects  *store.Store
	materials *invstore.Store
	gen       Generator
}

func NewService(projects *store.Store, materials *invstore.Store, gen Generator) *Service {
	return &Service{projects: projects, materials: materials, gen: gen}
}

// Ask makes exactly one generation attempt and always returns a
// user-readable answer.
func (s *Service) Ask(ctx context.Context, question string) string {
	prompt := BuildPrompt(s.projects.List(), s.materials.List(), question)

	text, err := s.gen.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("[insight] generation failed: %v", err)
		return errorFallback
	}
	if text == "" {
		return emptyFallback
	}
	return text
}
