package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invdomain "github.com/promaster-id/konstruksi-backend/internal/inventory/domain"
	invstore "github.com/promaster-id/konstruksi-backend/internal/inventory/store"
	"github.com/promaster-id/konstruksi-backend/internal/projects/domain"
	"github.com/promaster-id/konstruksi-backend/internal/projects/store"
)

type stubGenerator struct {
	text string
	err  error
	last string
}

func (g *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	g.last = prompt
	return g.text, g.err
}

func fixtures(t *testing.T) (*store.Store, *invstore.Store) {
	t.Helper()

	projects := store.New()
	projects.Seed([]domain.Project{
		{ID: "PRJ-001", Name: "Menara A", Client: "PT. Contoh", Budget: 1000000, Spent: 400000, Progress: 35, Status: domain.StatusOngoing},
		{ID: "PRJ-002", Name: "Menara B", Client: "PT. Contoh", Budget: 1000000, Spent: 1500000, Progress: 80, Status: domain.StatusOngoing},
	})

	materials := invstore.New()
	materials.Seed([]invdomain.Material{
		{ID: "MAT-001", Name: "Semen Portland", Quantity: 500, Unit: "Zak", UnitPrice: 65000},
	})

	return projects, materials
}

func TestBuildPrompt(t *testing.T) {
	projects, materials := fixtures(t)
	prompt := BuildPrompt(projects.List(), materials.List(), "Bagaimana kondisi anggaran?")

	t.Run("per-project summary lines", func(t *testing.T) {
		assert.Contains(t, prompt, "- Menara A (Sedang Berjalan): Dana Masuk Rp1.000.000, Terpakai Rp400.000, Sisa Dana Rp600.000, Progress 35%")
		assert.Contains(t, prompt, "- Menara B (Sedang Berjalan): Dana Masuk Rp1.000.000, Terpakai Rp1.500.000, Dana Kurang Rp500.000, Progress 80%")
	})

	t.Run("per-material summary lines", func(t *testing.T) {
		assert.Contains(t, prompt, "- Semen Portland: Stok 500 Zak @ Rp65.000")
	})

	t.Run("question and instruction block", func(t *testing.T) {
		assert.Contains(t, prompt, `Pertanyaan User: "Bagaimana kondisi anggaran?"`)
		assert.True(t, strings.HasPrefix(prompt, "Anda adalah Konsultan Senior Manajemen Konstruksi AI"))
		assert.Contains(t, prompt, "Gunakan Bahasa Indonesia yang formal dan korporat.")
	})

	t.Run("deterministic", func(t *testing.T) {
		again := BuildPrompt(projects.List(), materials.List(), "Bagaimana kondisi anggaran?")
		assert.Equal(t, prompt, again)
	})
}

func TestAsk(t *testing.T) {
	projects, materials := fixtures(t)

	t.Run("returns generated text", func(t *testing.T) {
		gen := &stubGenerator{text: "Analisis: anggaran sehat."}
		svc := NewService(projects, materials, gen)

		answer := svc.Ask(context.Background(), "Bagaimana?")
		assert.Equal(t, "Analisis: anggaran sehat.", answer)
		assert.Contains(t, gen.last, "Menara A")
	})

	t.Run("failure returns apology, never raises", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("connection refused")}
		svc := NewService(projects, materials, gen)

		require.NotPanics(t, func() {
			answer := svc.Ask(context.Background(), "Bagaimana?")
			assert.Equal(t, "Terjadi kesalahan saat menghubungi layanan AI. Silakan coba lagi nanti.", answer)
		})
	})

	t.Run("empty response uses fixed fallback", func(t *testing.T) {
		gen := &stubGenerator{text: ""}
		svc := NewService(projects, materials, gen)

		answer := svc.Ask(context.Background(), "Bagaimana?")
		assert.Equal(t, "Maaf, tidak dapat menghasilkan analisis saat ini.", answer)
	})
}
