package catalog

import (
	"iter"
	"strings"

	"realty/internal/domain"
)

// Service owns the set of listings. Insertion order is preserved so search
// results come back in the order properties were listed, with no re-sort.
// The service is exclusively owned by one registry instance; it does no
// locking of its own.
type Service struct {
	byID  map[int64]*domain.Property
	order []int64
}

func NewService() *Service {
	return &Service{byID: make(map[int64]*domain.Property)}
}

// Add inserts a new listing. Listings enter the catalog available.
func (s *Service) Add(p domain.Property) error {
	if _, ok := s.byID[p.ID]; ok {
		return ErrDuplicateID
	}
	p.Available = true
	s.byID[p.ID] = &p
	s.order = append(s.order, p.ID)
	return nil
}

// Remove deletes the listing. Bookings referencing the id are untouched.
func (s *Service) Remove(id int64) error {
	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Update replaces the mutable fields in place. The availability flag is
// not touched.
func (s *Service) Update(id int64, location string, price int64, propertyType string) error {
	p, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	p.Location = location
	p.Price = price
	p.Type = propertyType
	return nil
}

func (s *Service) Get(id int64) (domain.Property, bool) {
	p, ok := s.byID[id]
	if !ok {
		return domain.Property{}, false
	}
	return *p, true
}

func (s *Service) Len() int {
	return len(s.order)
}

// Search yields the listings whose location or type contains criteria as a
// case-insensitive substring, in insertion order. Empty criteria matches
// everything. The sequence is lazy and can be ranged over more than once.
func (s *Service) Search(criteria string) iter.Seq[domain.Property] {
	return func(yield func(domain.Property) bool) {
		for _, id := range s.order {
			p := s.byID[id]
			if p == nil || !Matches(*p, criteria) {
				continue
			}
			if !yield(*p) {
				return
			}
		}
	}
}

// Matches reports whether the listing satisfies the search criteria.
func Matches(p domain.Property, criteria string) bool {
	needle := strings.ToLower(criteria)
	return strings.Contains(strings.ToLower(p.Location), needle) ||
		strings.Contains(strings.ToLower(p.Type), needle)
}
