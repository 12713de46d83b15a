package store

import (
	"sync"

	"github.com/promaster-id/konstruksi-backend/internal/inventory/domain"
)

// Store holds the canonical in-memory material collection.
type Store struct {
	mu        sync.RWMutex
	materials []domain.Material
}

func New() *Store {
	return &Store{materials: make([]domain.Material, 0, 16)}
}

// Seed loads the startup dataset. Intended for boot only.
func (s *Store) Seed(materials []domain.Material) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materials = append(s.materials[:0], materials...)
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []domain.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Material, len(s.materials))
	copy(out, s.materials)
	return out
}

// Get returns the material with the given ID.
func (s *Store) Get(id string) (domain.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.materials {
		if s.materials[i].ID == id {
			return s.materials[i], nil
		}
	}
	return domain.Material{}, domain.ErrNotFound
}
