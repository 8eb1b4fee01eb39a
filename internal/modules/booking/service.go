package booking

import "realty/internal/domain"

// AvailabilityFunc decides whether a pending booking may be confirmed.
// The registry ships a constant-true predicate: nothing in the current
// system ever marks a property unavailable, and no overlap checking exists.
// The seam is kept so a real date-conflict policy can be plugged in later.
type AvailabilityFunc func(b domain.Booking) bool

// Service owns the active reservations. A booking is created Pending,
// confirmed if the availability predicate passes, and discarded otherwise;
// rejected bookings never enter the ledger. Confirmed bookings are immutable
// except for cancellation, which removes them from the active set.
type Service struct {
	byID      map[int64]*domain.Booking
	order     []int64
	available AvailabilityFunc
}

func NewService(available AvailabilityFunc) *Service {
	if available == nil {
		available = func(domain.Booking) bool { return true }
	}
	return &Service{
		byID:      make(map[int64]*domain.Booking),
		available: available,
	}
}

// Create runs the availability check on a pending booking and inserts it as
// Confirmed on success. On failure the booking is discarded and
// ErrNotAvailable returned.
func (s *Service) Create(b domain.Booking) (*domain.Booking, error) {
	if _, ok := s.byID[b.ID]; ok {
		return nil, ErrDuplicateID
	}

	b.Status = domain.BookingPending
	if !s.available(b) {
		return nil, ErrNotAvailable
	}

	b.Status = domain.BookingConfirmed
	s.byID[b.ID] = &b
	s.order = append(s.order, b.ID)

	out := b
	return &out, nil
}

// Cancel transitions a confirmed booking to Cancelled and removes it from
// the active ledger. Anything not currently confirmed is ErrNotFound.
func (s *Service) Cancel(id int64) (*domain.Booking, error) {
	b, ok := s.byID[id]
	if !ok || b.Status != domain.BookingConfirmed {
		return nil, ErrNotFound
	}

	b.Status = domain.BookingCancelled
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	out := *b
	return &out, nil
}

func (s *Service) Get(id int64) (domain.Booking, bool) {
	b, ok := s.byID[id]
	if !ok {
		return domain.Booking{}, false
	}
	return *b, true
}

func (s *Service) Len() int {
	return len(s.order)
}

// Active returns the confirmed bookings in creation order.
func (s *Service) Active() []domain.Booking {
	out := make([]domain.Booking, 0, len(s.order))
	for _, id := range s.order {
		if b, ok := s.byID[id]; ok {
			out = append(out, *b)
		}
	}
	return out
}
