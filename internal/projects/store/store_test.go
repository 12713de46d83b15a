package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promaster-id/konstruksi-backend/internal/projects/domain"
)

func sample(id, name string) domain.Project {
	return domain.Project{
		ID:       id,
		Name:     name,
		Client:   "PT. Contoh",
		Location: "Jakarta",
		Budget:   1000,
		Spent:    400,
		Status:   domain.StatusPlanning,
		Manager:  "Budi",
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	s := New()

	created, err := s.Create(sample("PRJ-100", "Menara A"))
	require.NoError(t, err)
	assert.Equal(t, "PRJ-100", created.ID)

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestCreate_GeneratesID(t *testing.T) {
	s := New()

	created, err := s.Create(sample("", "Menara B"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "PRJ-"))
	assert.Len(t, created.ID, len("PRJ-0000"))
}

func TestCreate_RequiredFields(t *testing.T) {
	s := New()

	t.Run("missing name", func(t *testing.T) {
		p := sample("", "")
		_, err := s.Create(p)
		assert.ErrorIs(t, err, domain.ErrNameRequired)
	})

	t.Run("missing client", func(t *testing.T) {
		p := sample("", "Menara C")
		p.Client = "  "
		_, err := s.Create(p)
		assert.ErrorIs(t, err, domain.ErrClientRequired)
	})

	assert.Empty(t, s.List(), "no record may be created on validation failure")
}

func TestUpdate_ReplacesInPlace(t *testing.T) {
	s := New()
	for _, p := range []domain.Project{sample("PRJ-001", "Satu"), sample("PRJ-002", "Dua"), sample("PRJ-003", "Tiga")} {
		_, err := s.Create(p)
		require.NoError(t, err)
	}

	updated := sample("PRJ-002", "Dua Revisi")
	updated.Budget = 9999
	_, err := s.Update(updated)
	require.NoError(t, err)

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Satu", list[0].Name)
	assert.Equal(t, "Dua Revisi", list[1].Name, "update must preserve position")
	assert.Equal(t, int64(9999), list[1].Budget)
	assert.Equal(t, "Tiga", list[2].Name)
}

func TestUpdate_UnknownID(t *testing.T) {
	s := New()

	_, err := s.Update(sample("PRJ-404", "Hilang"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	s := New()
	for _, p := range []domain.Project{sample("PRJ-001", "Satu"), sample("PRJ-002", "Dua"), sample("PRJ-003", "Tiga")} {
		_, err := s.Create(p)
		require.NoError(t, err)
	}

	require.NoError(t, s.Delete("PRJ-002"))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "PRJ-001", list[0].ID)
	assert.Equal(t, "PRJ-003", list[1].ID)

	assert.ErrorIs(t, s.Delete("PRJ-002"), domain.ErrNotFound)
}

func TestVersion_BumpsOnEveryMutation(t *testing.T) {
	s := New()
	v0 := s.Version()

	_, err := s.Create(sample("PRJ-001", "Satu"))
	require.NoError(t, err)
	v1 := s.Version()
	assert.Greater(t, v1, v0)

	_, err = s.Update(sample("PRJ-001", "Satu Revisi"))
	require.NoError(t, err)
	v2 := s.Version()
	assert.Greater(t, v2, v1)

	require.NoError(t, s.Delete("PRJ-001"))
	assert.Greater(t, s.Version(), v2)

	// Reads do not bump.
	_ = s.List()
	_, _ = s.Get("PRJ-001")
	assert.Equal(t, s.Version(), s.Version())
}

func TestCreate_DuplicateID(t *testing.T) {
	s := New()

	_, err := s.Create(sample("PRJ-001", "Satu"))
	require.NoError(t, err)

	_, err = s.Create(sample("PRJ-001", "Bayangan"))
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Satu", list[0].Name, "original record must not be shadowed")
}

func TestVersionedList_ConsistentSnapshot(t *testing.T) {
	s := New()
	_, err := s.Create(sample("PRJ-001", "Satu"))
	require.NoError(t, err)

	version, list := s.VersionedList()
	assert.Equal(t, s.Version(), version)
	assert.Equal(t, s.List(), list)

	// The snapshot is a copy, detached from later mutations.
	_, err = s.Create(sample("PRJ-002", "Dua"))
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Less(t, version, s.Version())
}

func TestList_ReturnsCopy(t *testing.T) {
	s := New()
	_, err := s.Create(sample("PRJ-001", "Satu"))
	require.NoError(t, err)

	list := s.List()
	list[0].Name = "Diubah"

	fresh := s.List()
	assert.Equal(t, "Satu", fresh[0].Name)
}
