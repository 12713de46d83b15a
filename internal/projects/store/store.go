package store

import (
	"strings"
	"sync"

	"github.com/promaster-id/konstruksi-backend/internal/projects/domain"
)

// Store owns the canonical in-memory project collection. All mutation
// flows through Create/Update/Delete; readers get copies, never the
// internal slice. Insertion order is preserved across updates.
type Store struct {
	mu       sync.RWMutex
	projects []domain.Project
	version  uint64
}

func New() *Store {
	return &Store{projects: make([]domain.Project, 0, 16)}
}

// Seed loads the startup dataset. Intended for boot only.
func (s *Store) Seed(projects []domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects[:0], projects...)
	s.version++
}

// Create appends a new project. When p.ID is empty an ID is generated;
// generation retries on the unlikely collision with an existing record.
func (s *Store) Create(p domain.Project) (domain.Project, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Project{}, domain.ErrNameRequired
	}
	if strings.TrimSpace(p.Client) == "" {
		return domain.Project{}, domain.ErrClientRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID != "" && s.indexOf(p.ID) != -1 {
		return domain.Project{}, domain.ErrDuplicateID
	}

	if p.ID == "" {
		for i := 0; i < 5; i++ {
			id, err := NewProjectID()
			if err != nil {
				return domain.Project{}, err
			}
			if s.indexOf(id) == -1 {
				p.ID = id
				break
			}
		}
		if p.ID == "" {
			return domain.Project{}, domain.ErrIDGeneration
		}
	}

	s.projects = append(s.projects, p)
	s.version++
	return p, nil
}

// Update replaces the record whose ID matches, preserving its position.
func (s *Store) Update(p domain.Project) (domain.Project, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Project{}, domain.ErrNameRequired
	}
	if strings.TrimSpace(p.Client) == "" {
		return domain.Project{}, domain.ErrClientRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(p.ID)
	if i == -1 {
		return domain.Project{}, domain.ErrNotFound
	}
	s.projects[i] = p
	s.version++
	return p, nil
}

// Delete removes the record with the given ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return domain.ErrNotFound
	}
	s.projects = append(s.projects[:i], s.projects[i+1:]...)
	s.version++
	return nil
}

// Get returns the project with the given ID.
func (s *Store) Get(id string) (domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		return domain.Project{}, domain.ErrNotFound
	}
	return s.projects[i], nil
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Version is a counter bumped on every mutation. Derived-value caches
// key on it as the collection fingerprint.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// VersionedList returns the version and the matching collection copy
// under one lock, so callers never pair a list with a stale version.
func (s *Store) VersionedList() (uint64, []domain.Project) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return s.version, out
}

// indexOf requires the caller to hold s.mu.
func (s *Store) indexOf(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}
