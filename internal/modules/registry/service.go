package registry

import (
	"fmt"
	"sync"

	"realty/internal/domain"
	"realty/internal/modules/booking"
	"realty/internal/modules/catalog"
)

// Service is the single entry point coordinating the catalog, the booking
// ledger and the user directory. It owns all three exclusively. The HTTP
// shell serves many clients against one Service, so every operation runs
// under one coarse lock; the collections have no finer partitioning worth
// splitting it for.
type Service struct {
	mu      sync.Mutex
	catalog *catalog.Service
	ledger  *booking.Service
	users   []*domain.User
	events  EventSink
	creds   CredentialComparer
}

func NewService(cat *catalog.Service, ledger *booking.Service, events EventSink, creds CredentialComparer) *Service {
	if creds == nil {
		creds = ExactMatch()
	}
	return &Service{
		catalog: cat,
		ledger:  ledger,
		events:  events,
		creds:   creds,
	}
}

func (s *Service) publish(kind domain.EventKind, subjectID int64, note string) {
	if s.events != nil {
		s.events.Publish(domain.NewEvent(kind, subjectID, note))
	}
}

/* ---------- USERS ---------- */

// RegisterUser adds the user to the directory and assigns the next id.
// Ids grow monotonically; removal is unsupported so they are never reused.
// Username uniqueness is the caller's contract, not enforced here.
// The directory keeps its own copy; the returned user is the caller's.
func (s *Service) RegisterUser(u *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = int64(len(s.users) + 1)
	s.users = append(s.users, u.Clone())

	s.publish(domain.EventRegistered, u.ID, fmt.Sprintf("%s registered: %s", u.Role, u.Username))
	return u, nil
}

// Authenticate scans the directory in registration order and returns the
// first user whose credentials match. A failed login is a normal outcome,
// not an error: callers get (nil, false) and re-prompt.
func (s *Service) Authenticate(username, password string) (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username && s.creds.Compare(u.Password, password) {
			return u.Clone(), true
		}
	}
	return nil, false
}

// UserByID returns a snapshot of the user. Directory records never leave
// the lock; handlers marshal the copy while other requests mutate.
func (s *Service) UserByID(id int64) (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.userByID(id)
	return u.Clone(), ok
}

func (s *Service) userByID(id int64) (*domain.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

func (s *Service) UserByUsername(username string) (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return u.Clone(), true
		}
	}
	return nil, false
}

// UpdateProfile replaces the user's username, email and credential.
func (s *Service) UpdateProfile(userID int64, username, email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.userByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	u.Username = username
	u.Email = email
	u.Password = password
	return u.Clone(), nil
}

/* ---------- PROPERTIES ---------- */

// AddProperty inserts the listing into the catalog and records it in the
// seller's personal view, keeping the two consistent.
func (s *Service) AddProperty(sellerID int64, p domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seller, err := s.sellerByID(sellerID)
	if err != nil {
		return err
	}
	if err := s.catalog.Add(p); err != nil {
		return err
	}
	seller.Seller.Listings = append(seller.Seller.Listings, p.ID)

	s.publish(domain.EventAdded, p.ID, fmt.Sprintf("property added by seller %d: %d", sellerID, p.ID))
	return nil
}

// RemoveProperty deletes the listing from the catalog and from the seller's
// personal view. Both removals match by id; existing bookings referencing
// the id are left alone. Only the listing seller may remove it.
func (s *Service) RemoveProperty(sellerID, propertyID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seller, err := s.sellerByID(sellerID)
	if err != nil {
		return err
	}
	if _, ok := s.catalog.Get(propertyID); !ok {
		return catalog.ErrNotFound
	}

	owned := -1
	for i, id := range seller.Seller.Listings {
		if id == propertyID {
			owned = i
			break
		}
	}
	if owned < 0 {
		return ErrForbidden
	}

	if err := s.catalog.Remove(propertyID); err != nil {
		return err
	}
	seller.Seller.Listings = append(seller.Seller.Listings[:owned], seller.Seller.Listings[owned+1:]...)

	s.publish(domain.EventRemoved, propertyID, fmt.Sprintf("property removed by seller %d: %d", sellerID, propertyID))
	return nil
}

func (s *Service) UpdateProperty(id int64, location string, price int64, propertyType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Update(id, location, price, propertyType)
}

// Search snapshots the matching listings under the lock. The lazy sequence
// lives on the catalog; here callers are concurrent HTTP handlers and need
// a stable copy.
func (s *Service) Search(criteria string) []domain.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Property, 0)
	for p := range s.catalog.Search(criteria) {
		out = append(out, p)
	}
	return out
}

// SearchListings filters the seller's own view with the same predicate as
// the global search.
func (s *Service) SearchListings(sellerID int64, criteria string) ([]domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seller, err := s.sellerByID(sellerID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Property, 0, len(seller.Seller.Listings))
	for _, id := range seller.Seller.Listings {
		p, ok := s.catalog.Get(id)
		if ok && catalog.Matches(p, criteria) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) ViewDetails(propertyID int64) (domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.catalog.Get(propertyID)
	if !ok {
		return domain.Property{}, catalog.ErrNotFound
	}
	return p, nil
}

/* ---------- BOOKINGS ---------- */

// ProcessBooking runs the booking through the ledger's availability gate.
// A confirmed booking yields a Confirmed event; a rejected one yields
// Rejected and is never stored.
func (s *Service) ProcessBooking(b domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	confirmed, err := s.ledger.Create(b)
	if err != nil {
		if err == booking.ErrNotAvailable {
			s.publish(domain.EventRejected, b.ID, fmt.Sprintf("booking rejected for property: %d", b.PropertyID))
		}
		return nil, err
	}

	s.publish(domain.EventConfirmed, confirmed.ID, fmt.Sprintf("booking confirmed: %d", confirmed.ID))
	return confirmed, nil
}

func (s *Service) CancelBooking(id int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancelled, err := s.ledger.Cancel(id)
	if err != nil {
		return nil, err
	}

	s.publish(domain.EventCancelled, id, fmt.Sprintf("booking cancelled: %d", id))
	return cancelled, nil
}

func (s *Service) ActiveBookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Active()
}

/* ---------- BUYER PROFILE ---------- */

// AddToWishlist appends a free-text entry to the buyer's wishlist.
// Entries are never deduplicated or removed.
func (s *Service) AddToWishlist(buyerID int64, entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buyer, err := s.buyerByID(buyerID)
	if err != nil {
		return err
	}
	buyer.Buyer.Wishlist = append(buyer.Buyer.Wishlist, entry)
	return nil
}

func (s *Service) SetBudgetRange(buyerID, budget int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buyer, err := s.buyerByID(buyerID)
	if err != nil {
		return err
	}
	buyer.Buyer.BudgetRange = budget
	return nil
}

/* ---------- helpers ---------- */

func (s *Service) sellerByID(id int64) (*domain.User, error) {
	u, ok := s.userByID(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	if u.Role != domain.RoleSeller || u.Seller == nil {
		return nil, ErrForbidden
	}
	return u, nil
}

func (s *Service) buyerByID(id int64) (*domain.User, error) {
	u, ok := s.userByID(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	if u.Role != domain.RoleBuyer || u.Buyer == nil {
		return nil, ErrForbidden
	}
	return u, nil
}
