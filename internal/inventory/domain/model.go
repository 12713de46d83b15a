package domain

import "errors"

var ErrNotFound = errors.New("material not found")

// Material is a stock record. Read-mostly: the API exposes no CRUD for
// materials, only display, so the store is list-focused.
type Material struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Quantity    int64  `json:"quantity"`
	Unit        string `json:"unit"`
	UnitPrice   int64  `json:"unit_price"`
	LastUpdated string `json:"last_updated"`
}
