package store

import (
	"sync"

	"github.com/promaster-id/konstruksi-backend/internal/settings/domain"
)

// Store holds the profile and app settings, replaced wholesale on save.
type Store struct {
	mu       sync.RWMutex
	profile  domain.UserProfile
	settings domain.AppSettings
}

func New() *Store {
	return &Store{
		profile: domain.UserProfile{
			Name:  "Admin Utama",
			Email: "admin@promaster.id",
			Role:  "Administrator",
		},
		settings: domain.AppSettings{
			AppName:     "KONSTRUKSI",
			CompanyName: "PRO MASTER",
		},
	}
}

func (s *Store) Profile() domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Store) Settings() domain.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Save replaces both records. The stored role is kept regardless of
// what the caller submits.
func (s *Store) Save(profile domain.UserProfile, settings domain.AppSettings) (domain.UserProfile, domain.AppSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile.Role = s.profile.Role
	s.profile = profile
	s.settings = settings
	return s.profile, s.settings
}
