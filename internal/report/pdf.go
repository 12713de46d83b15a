// Package report renders project data into downloadable PDF documents:
// either a single-project report with an attribute table and financial
// summary, or a tabular listing of every project.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/promaster-id/konstruksi-backend/internal/currency"
	"github.com/promaster-id/konstruksi-backend/internal/projects/domain"
)

// Preparer identifies who generated the report in the header block.
type Preparer struct {
	Name string
	Role string
}

// RenderProject produces the single-project report.
func RenderProject(p domain.Project, title string, by Preparer, now time.Time) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	writeHeader(doc, title, by, now)

	// Attribute table
	attrs := [][2]string{
		{"ID Proyek", p.ID},
		{"Nama Proyek", p.Name},
		{"Klien", p.Client},
		{"Manajer Proyek", p.Manager},
		{"Lokasi", p.Location},
		{"Periode", PeriodString(p.StartDate, p.EndDate)},
		{"Status", string(p.Status)},
		{"Progress", fmt.Sprintf("%d%%", p.Progress)},
	}

	doc.SetY(40)
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(59, 130, 246)
	doc.SetTextColor(255, 255, 255)
	doc.CellFormat(50, 8, "Atribut", "1", 0, "L", true, 0, "")
	doc.CellFormat(132, 8, "Detail Informasi", "1", 1, "L", true, 0, "")

	doc.SetTextColor(15, 23, 42)
	for _, row := range attrs {
		doc.SetFont("Helvetica", "B", 10)
		doc.SetFillColor(241, 245, 249)
		doc.CellFormat(50, 8, row[0], "1", 0, "L", true, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(132, 8, row[1], "1", 1, "L", false, 0, "")
	}

	// Financial summary
	balance := p.Balance()
	note := "Surplus Anggaran"
	if balance < 0 {
		note = "Defisit Anggaran"
	}

	doc.Ln(7)
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(15, 23, 42)
	doc.CellFormat(0, 8, "Ringkasan Keuangan", "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(30, 41, 59)
	doc.SetTextColor(255, 255, 255)
	doc.CellFormat(61, 8, "Kategori", "1", 0, "L", true, 0, "")
	doc.CellFormat(61, 8, "Nominal", "1", 0, "L", true, 0, "")
	doc.CellFormat(60, 8, "Keterangan", "1", 1, "L", true, 0, "")

	finRows := [][3]string{
		{"Total Dana Masuk", currency.FormatRupiah(p.Budget), "Anggaran Awal"},
		{"Total Dana Terpakai", currency.FormatRupiah(p.Spent), "Pengeluaran Real"},
		{"Sisa / (Kurang)", currency.FormatBalance(balance), note},
	}
	for _, row := range finRows {
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(15, 23, 42)
		doc.CellFormat(61, 8, row[0], "1", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(61, 8, row[1], "1", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "I", 10)
		if balance < 0 {
			doc.SetTextColor(220, 38, 38)
		} else {
			doc.SetTextColor(22, 163, 74)
		}
		doc.CellFormat(60, 8, row[2], "1", 1, "L", false, 0, "")
	}

	return output(doc)
}

// RenderAll produces the tabular all-projects report.
func RenderAll(projects []domain.Project, title string, by Preparer, now time.Time) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	writeHeader(doc, title, by, now)

	headers := []string{"Nama Proyek", "Lokasi", "Dana Masuk", "Terpakai", "Sisa / (Kurang)", "Progress"}
	widths := []float64{42, 26, 32, 32, 34, 16}

	doc.SetY(40)
	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(59, 130, 246)
	doc.SetTextColor(255, 255, 255)
	for i, h := range headers {
		align := "L"
		if i >= 2 {
			align = "R"
		}
		last := 0
		if i == len(headers)-1 {
			last = 1
		}
		doc.CellFormat(widths[i], 7, h, "1", last, align, true, 0, "")
	}

	for i, p := range projects {
		balance := p.Balance()
		fill := i%2 == 1

		doc.SetFillColor(248, 250, 252)
		doc.SetTextColor(15, 23, 42)
		doc.SetFont("Helvetica", "B", 8)
		doc.CellFormat(widths[0], 7, p.Name, "1", 0, "L", fill, 0, "")
		doc.SetFont("Helvetica", "", 8)
		doc.CellFormat(widths[1], 7, p.Location, "1", 0, "L", fill, 0, "")
		doc.CellFormat(widths[2], 7, currency.FormatRupiah(p.Budget), "1", 0, "R", fill, 0, "")
		doc.CellFormat(widths[3], 7, currency.FormatRupiah(p.Spent), "1", 0, "R", fill, 0, "")

		// Deficit rows are flagged in red.
		doc.SetFont("Helvetica", "B", 8)
		if balance < 0 {
			doc.SetTextColor(220, 38, 38)
		} else {
			doc.SetTextColor(22, 163, 74)
		}
		doc.CellFormat(widths[4], 7, currency.FormatBalance(balance), "1", 0, "R", fill, 0, "")

		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(15, 23, 42)
		doc.CellFormat(widths[5], 7, fmt.Sprintf("%d%%", p.Progress), "1", 1, "R", fill, 0, "")
	}

	return output(doc)
}

func writeHeader(doc *fpdf.Fpdf, title string, by Preparer, now time.Time) {
	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(15, 23, 42)
	doc.SetXY(14, 16)
	doc.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(100, 116, 139)
	doc.SetX(14)
	doc.CellFormat(0, 5, "Dicetak pada: "+formatLongDate(now), "", 1, "L", false, 0, "")
	doc.SetX(14)
	doc.CellFormat(0, 5, fmt.Sprintf("Dicetak oleh: %s (%s)", by.Name, by.Role), "", 1, "L", false, 0, "")
}

func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
