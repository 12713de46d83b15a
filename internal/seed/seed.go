// Package seed supplies the startup dataset loaded into the stores at
// boot. State is memory-resident for the process lifetime.
package seed

import (
	invdomain "github.com/promaster-id/konstruksi-backend/internal/inventory/domain"
	"github.com/promaster-id/konstruksi-backend/internal/projects/domain"
)

func Projects() []domain.Project {
	return []domain.Project{
		{
			ID:        "PRJ-001",
			Name:      "Grand City Mall Expansion",
			Client:    "PT. Grand City Property",
			Location:  "Jakarta Selatan",
			Budget:    15000000000,
			Spent:     4500000000,
			StartDate: "2023-11-01",
			EndDate:   "2025-06-30",
			Progress:  35,
			Status:    domain.StatusOngoing,
			Manager:   "Budi Santoso",
		},
		{
			ID:        "PRJ-002",
			Name:      "Skyline Apartment Tower B",
			Client:    "Skyline Group",
			Location:  "Surabaya",
			Budget:    45000000000,
			Spent:     44800000000,
			StartDate: "2022-03-15",
			EndDate:   "2024-05-20",
			Progress:  98,
			Status:    domain.StatusCompleted,
			Manager:   "Dewi Lestari",
		},
		{
			ID:        "PRJ-003",
			Name:      "Jembatan Layang Antasari",
			Client:    "Dinas PU",
			Location:  "Jakarta Selatan",
			Budget:    7500000000,
			Spent:     1200000000,
			StartDate: "2024-01-10",
			EndDate:   "2024-12-20",
			Progress:  15,
			Status:    domain.StatusOngoing,
			Manager:   "Hendra Gunawan",
		},
		{
			ID:        "PRJ-004",
			Name:      "Gudang Logistik Modern",
			Client:    "PT. Logistik Maju",
			Location:  "Cikarang",
			Budget:    2500000000,
			Spent:     0,
			StartDate: "2024-06-01",
			EndDate:   "2024-11-30",
			Progress:  0,
			Status:    domain.StatusPlanning,
			Manager:   "Siti Aminah",
		},
	}
}

func Materials() []invdomain.Material {
	return []invdomain.Material{
		{ID: "MAT-001", Name: "Semen Portland", Category: "Struktural", Quantity: 500, Unit: "Zak", UnitPrice: 65000, LastUpdated: "2024-05-20"},
		{ID: "MAT-002", Name: "Besi Beton Ulir 13mm", Category: "Besi & Baja", Quantity: 1200, Unit: "Batang", UnitPrice: 85000, LastUpdated: "2024-05-18"},
		{ID: "MAT-003", Name: "Pasir Beton", Category: "Agregat", Quantity: 45, Unit: "Kubik", UnitPrice: 350000, LastUpdated: "2024-05-21"},
		{ID: "MAT-004", Name: "Batu Bata Merah", Category: "Dinding", Quantity: 15000, Unit: "Buah", UnitPrice: 800, LastUpdated: "2024-05-15"},
	}
}
