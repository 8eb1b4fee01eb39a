package catalog

import (
	"testing"

	"realty/internal/domain"

	"github.com/stretchr/testify/assert"
)

func collect(s *Service, criteria string) []domain.Property {
	out := []domain.Property{}
	for p := range s.Search(criteria) {
		out = append(out, p)
	}
	return out
}

func TestService_Add_DuplicateID(t *testing.T) {
	s := NewService()

	err := s.Add(domain.Property{ID: 1, Location: "Boston", Price: 500000, Type: "condo"})
	assert.NoError(t, err)

	err = s.Add(domain.Property{ID: 1, Location: "Cambridge", Price: 100, Type: "house"})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, s.Len())

	// the original record is untouched by the failed insert
	p, ok := s.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "Boston", p.Location)
}

func TestService_Add_EntersAvailable(t *testing.T) {
	s := NewService()

	assert.NoError(t, s.Add(domain.Property{ID: 1, Location: "Boston", Price: 500000, Type: "condo", Available: false}))

	p, ok := s.Get(1)
	assert.True(t, ok)
	assert.True(t, p.Available)
}

func TestService_Remove(t *testing.T) {
	s := NewService()

	assert.NoError(t, s.Add(domain.Property{ID: 1, Location: "Boston", Price: 500000, Type: "condo"}))
	assert.NoError(t, s.Remove(1))
	assert.Equal(t, 0, s.Len())

	assert.ErrorIs(t, s.Remove(1), ErrNotFound)

	// id is free for re-listing after removal
	assert.NoError(t, s.Add(domain.Property{ID: 1, Location: "Boston", Price: 500000, Type: "condo"}))
}

func TestService_Update(t *testing.T) {
	s := NewService()

	assert.NoError(t, s.Add(domain.Property{ID: 1, Location: "Boston", Price: 500000, Type: "condo"}))
	assert.NoError(t, s.Update(1, "Back Bay", 650000, "loft"))

	p, ok := s.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "Back Bay", p.Location)
	assert.Equal(t, int64(650000), p.Price)
	assert.Equal(t, "loft", p.Type)

	assert.ErrorIs(t, s.Update(99, "x", 1, "y"), ErrNotFound)
}

func TestService_Search_EmptyCriteriaReturnsAllInInsertionOrder(t *testing.T) {
	s := NewService()

	assert.NoError(t, s.Add(domain.Property{ID: 3, Location: "Boston", Price: 500000, Type: "condo"}))
	assert.NoError(t, s.Add(domain.Property{ID: 1, Location: "Cambridge", Price: 750000, Type: "house"}))
	assert.NoError(t, s.Add(domain.Property{ID: 2, Location: "Somerville", Price: 420000, Type: "apartment"}))

	results := collect(s, "")
	assert.Len(t, results, 3)
	assert.Equal(t, int64(3), results[0].ID)
	assert.Equal(t, int64(1), results[1].ID)
	assert.Equal(t, int64(2), results[2].ID)
}

func TestService_Search_CaseInsensitiveOverLocationAndType(t *testing.T) {
	s := NewService()

	assert.NoError(t, s.Add(domain.Property{ID: 1, Location: "Boston", Price: 500000, Type: "condo"}))
	assert.NoError(t, s.Add(domain.Property{ID: 2, Location: "Cambridge", Price: 750000, Type: "Victorian house"}))

	assert.Len(t, collect(s, "boston"), 1)
	assert.Equal(t, collect(s, "boston"), collect(s, "BOSTON"))

	// matches on type as well as location
	byType := collect(s, "victorian")
	assert.Len(t, byType, 1)
	assert.Equal(t, int64(2), byType[0].ID)

	assert.Empty(t, collect(s, "chicago"))
}

func TestService_Search_Restartable(t *testing.T) {
	s := NewService()

	assert.NoError(t, s.Add(domain.Property{ID: 1, Location: "Boston", Price: 500000, Type: "condo"}))
	assert.NoError(t, s.Add(domain.Property{ID: 2, Location: "Boston", Price: 300000, Type: "studio"}))

	seq := s.Search("boston")

	first := []domain.Property{}
	for p := range seq {
		first = append(first, p)
	}
	second := []domain.Property{}
	for p := range seq {
		second = append(second, p)
	}
	assert.Equal(t, first, second)

	// early break doesn't poison later iteration
	for range seq {
		break
	}
	third := []domain.Property{}
	for p := range seq {
		third = append(third, p)
	}
	assert.Len(t, third, 2)
}

func TestService_PresenceFollowsAddRemoveParity(t *testing.T) {
	s := NewService()

	p := domain.Property{ID: 7, Location: "Boston", Price: 1, Type: "condo"}

	assert.NoError(t, s.Add(p))
	assert.NoError(t, s.Remove(7))
	assert.NoError(t, s.Add(p))

	_, ok := s.Get(7)
	assert.True(t, ok)

	assert.NoError(t, s.Remove(7))
	_, ok = s.Get(7)
	assert.False(t, ok)
}
