package report

import "fmt"

// PeriodString formats the project schedule for display. Either date
// may be absent (empty string).
func PeriodString(startDate, endDate string) string {
	switch {
	case startDate != "" && endDate != "":
		return fmt.Sprintf("%s s/d %s", startDate, endDate)
	case startDate != "":
		return "Mulai: " + startDate
	case endDate != "":
		return "Target: " + endDate
	default:
		return "-"
	}
}
