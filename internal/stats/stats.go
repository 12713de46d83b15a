// Package stats derives aggregate statistics from the project
// collection. Compute is a pure function of its input; Cache memoizes
// it keyed by the store's version counter.
package stats

import (
	"github.com/promaster-id/konstruksi-backend/internal/projects/domain"
)

// chartLabelMax is the truncation point for chart labels.
const chartLabelMax = 15

// ChartPoint is one budget-vs-spent entry per project.
type ChartPoint struct {
	Label  string `json:"label"`
	Budget int64  `json:"budget"`
	Spent  int64  `json:"spent"`
}

// StatusCount pairs a status with its project count. The slice form
// keeps the fixed enumeration order on the wire.
type StatusCount struct {
	Status domain.Status `json:"status"`
	Count  int           `json:"count"`
}

// Summary holds every derived aggregate over the project collection.
type Summary struct {
	TotalBudget     int64         `json:"total_budget"`
	TotalSpent      int64         `json:"total_spent"`
	TotalBalance    int64         `json:"total_balance"`
	ActiveCount     int           `json:"active_count"`
	CompletedCount  int           `json:"completed_count"`
	PendingCount    int           `json:"pending_count"`
	StatusBreakdown []StatusCount `json:"status_breakdown"`
	ChartSeries     []ChartPoint  `json:"chart_series"`
}

// Compute derives the full summary. Deterministic for a given project
// list; all four statuses appear in the breakdown even at zero.
func Compute(projects []domain.Project) Summary {
	sum := Summary{
		StatusBreakdown: make([]StatusCount, 0, 4),
		ChartSeries:     make([]ChartPoint, 0, len(projects)),
	}

	counts := make(map[domain.Status]int, 4)
	for _, p := range projects {
		sum.TotalBudget += p.Budget
		sum.TotalSpent += p.Spent
		counts[p.Status]++

		sum.ChartSeries = append(sum.ChartSeries, ChartPoint{
			Label:  TruncateLabel(p.Name),
			Budget: p.Budget,
			Spent:  p.Spent,
		})
	}
	sum.TotalBalance = sum.TotalBudget - sum.TotalSpent

	sum.ActiveCount = counts[domain.StatusOngoing]
	sum.CompletedCount = counts[domain.StatusCompleted]
	sum.PendingCount = counts[domain.StatusPlanning]

	for _, st := range domain.AllStatuses() {
		sum.StatusBreakdown = append(sum.StatusBreakdown, StatusCount{Status: st, Count: counts[st]})
	}

	return sum
}

// TruncateLabel shortens a project name for chart axes: names longer
// than 15 characters become the first 15 plus "...". Counted in runes
// so multi-byte names are never cut mid-character.
func TruncateLabel(name string) string {
	r := []rune(name)
	if len(r) > chartLabelMax {
		return string(r[:chartLabelMax]) + "..."
	}
	return name
}
