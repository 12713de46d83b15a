package report

import (
	"fmt"
	"time"
)

var indonesianDays = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// formatLongDate renders t in the Indonesian long form used on report
// headers, e.g. "Senin, 20 Mei 2024".
func formatLongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d",
		indonesianDays[t.Weekday()], t.Day(), indonesianMonths[t.Month()-1], t.Year())
}
