package insight

import (
	"fmt"
	"strings"

	"github.com/promaster-id/konstruksi-backend/internal/currency"
	invdomain "github.com/promaster-id/konstruksi-backend/internal/inventory/domain"
	"github.com/promaster-id/konstruksi-backend/internal/projects/domain"
)

// BuildPrompt assembles the deterministic consultant prompt: one
// summary line per project, one per material, the user question, and
// the fixed instruction block.
func BuildPrompt(projects []domain.Project, materials []invdomain.Material, question string) string {
	projectLines := make([]string, 0, len(projects))
	for _, p := range projects {
		balance := p.Balance()
		balanceText := "Sisa Dana " + currency.FormatRupiah(balance)
		if balance < 0 {
			balanceText = "Dana Kurang " + currency.FormatRupiah(-balance)
		}
		projectLines = append(projectLines, fmt.Sprintf(
			"- %s (%s): Dana Masuk %s, Terpakai %s, %s, Progress %d%%",
			p.Name, p.Status,
			currency.FormatRupiah(p.Budget), currency.FormatRupiah(p.Spent),
			balanceText, p.Progress,
		))
	}

	materialLines := make([]string, 0, len(materials))
	for _, m := range materials {
		materialLines = append(materialLines, fmt.Sprintf(
			"- %s: Stok %d %s @ %s",
			m.Name, m.Quantity, m.Unit, currency.FormatRupiah(m.UnitPrice),
		))
	}

	var b strings.Builder
	b.WriteString("Anda adalah Konsultan Senior Manajemen Konstruksi AI yang ahli.\n\n")
	b.WriteString("Data Proyek Saat Ini:\n")
	b.WriteString(strings.Join(projectLines, "\n"))
	b.WriteString("\n\nData Material Saat Ini:\n")
	b.WriteString(strings.Join(materialLines, "\n"))
	b.WriteString("\n\nPertanyaan User: \"" + question + "\"\n\n")
	b.WriteString("Berikan analisis singkat, tajam, dan profesional seperti laporan perusahaan besar.\n")
	b.WriteString("Fokus pada \"Dana Masuk\" vs \"Dana Terpakai\". Jika ada \"Dana Kurang\" (Defisit), berikan peringatan risiko.\n")
	b.WriteString("Gunakan Bahasa Indonesia yang formal dan korporat.\n")
	b.WriteString("Jangan gunakan markdown bold/italic yang berlebihan, cukup teks bersih.")
	return b.String()
}
