package domain

// Status is the lifecycle state of a construction project. The values
// are the Indonesian display strings used across the API and reports.
type Status string

const (
	StatusPlanning  Status = "Perencanaan"
	StatusOngoing   Status = "Sedang Berjalan"
	StatusCompleted Status = "Selesai"
	StatusOnHold    Status = "Tertunda"
)

// AllStatuses returns every status in its fixed enumeration order.
// Breakdown maps must carry all four keys even when a count is zero.
func AllStatuses() []Status {
	return []Status{StatusOngoing, StatusCompleted, StatusPlanning, StatusOnHold}
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusOngoing, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Project represents a single construction project. It is
// storage-agnostic and used across store and HTTP layers.
// Monetary amounts are whole rupiah. Dates are "2006-01-02" strings
// and independently optional (empty string means unset).
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Client    string `json:"client"`
	Location  string `json:"location"`
	Budget    int64  `json:"budget"`
	Spent     int64  `json:"spent"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Progress  int    `json:"progress"`
	Status    Status `json:"status"`
	Manager   string `json:"manager"`
}

// Balance is the derived funding position. Negative means deficit.
// It is never stored.
func (p Project) Balance() int64 {
	return p.Budget - p.Spent
}
