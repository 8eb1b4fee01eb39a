package registry

import "realty/internal/domain"

// Role sessions narrow the facade to the capability set of one role.
// Handing a handler a SellerSession instead of the whole Service makes
// "buyer calls removeProperty" a compile error rather than a runtime check.

type SellerSession struct {
	svc    *Service
	userID int64
}

type BuyerSession struct {
	svc    *Service
	userID int64
}

// SellerSession mints a seller-scoped view of the registry.
func (s *Service) SellerSession(userID int64) (*SellerSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.sellerByID(userID); err != nil {
		return nil, err
	}
	return &SellerSession{svc: s, userID: userID}, nil
}

// BuyerSession mints a buyer-scoped view of the registry.
func (s *Service) BuyerSession(userID int64) (*BuyerSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.buyerByID(userID); err != nil {
		return nil, err
	}
	return &BuyerSession{svc: s, userID: userID}, nil
}

func (ss *SellerSession) AddProperty(p domain.Property) error {
	return ss.svc.AddProperty(ss.userID, p)
}

func (ss *SellerSession) RemoveProperty(propertyID int64) error {
	return ss.svc.RemoveProperty(ss.userID, propertyID)
}

func (ss *SellerSession) UpdateProperty(id int64, location string, price int64, propertyType string) error {
	return ss.svc.UpdateProperty(id, location, price, propertyType)
}

// SearchListings searches only this seller's own listings.
func (ss *SellerSession) SearchListings(criteria string) ([]domain.Property, error) {
	return ss.svc.SearchListings(ss.userID, criteria)
}

func (ss *SellerSession) UpdateProfile(username, email, password string) (*domain.User, error) {
	return ss.svc.UpdateProfile(ss.userID, username, email, password)
}

func (bs *BuyerSession) Search(criteria string) []domain.Property {
	return bs.svc.Search(criteria)
}

func (bs *BuyerSession) ViewDetails(propertyID int64) (domain.Property, error) {
	return bs.svc.ViewDetails(propertyID)
}

func (bs *BuyerSession) AddToWishlist(entry string) error {
	return bs.svc.AddToWishlist(bs.userID, entry)
}

func (bs *BuyerSession) SetBudgetRange(budget int64) error {
	return bs.svc.SetBudgetRange(bs.userID, budget)
}

func (bs *BuyerSession) Book(b domain.Booking) (*domain.Booking, error) {
	return bs.svc.ProcessBooking(b)
}

func (bs *BuyerSession) CancelBooking(id int64) (*domain.Booking, error) {
	return bs.svc.CancelBooking(id)
}

func (bs *BuyerSession) UpdateProfile(username, email, password string) (*domain.User, error) {
	return bs.svc.UpdateProfile(bs.userID, username, email, password)
}
