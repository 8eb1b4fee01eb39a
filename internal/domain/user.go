package domain

type UserRole string

const (
	RoleSeller UserRole = "seller"
	RoleBuyer  UserRole = "buyer"
)

// User is a registered identity. Exactly one of Seller or Buyer is set,
// matching Role. IDs are assigned by the registry at registration time and
// are never reused.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"-"`
	Role     UserRole `json:"role"`

	Seller *SellerProfile `json:"seller,omitempty"`
	Buyer  *BuyerProfile  `json:"buyer,omitempty"`
}

// Clone returns a deep copy of the user, including the role profile and
// its slices, so callers can hold the result outside the registry's lock.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	if u.Seller != nil {
		sp := *u.Seller
		sp.Listings = append([]int64(nil), u.Seller.Listings...)
		out.Seller = &sp
	}
	if u.Buyer != nil {
		bp := *u.Buyer
		bp.Wishlist = append([]string(nil), u.Buyer.Wishlist...)
		out.Buyer = &bp
	}
	return &out
}

// SellerProfile carries the seller-only attributes plus the seller's own
// view of their listings. Listings holds property ids in the order the
// seller added them; the catalog remains the owner of the records.
type SellerProfile struct {
	ContactInfo string  `json:"contact_info"`
	Rating      int     `json:"rating"`
	Listings    []int64 `json:"listings"`
}

// BuyerProfile carries the buyer-only attributes. Wishlist is append-only
// free text, no dedup.
type BuyerProfile struct {
	BudgetRange    int64    `json:"budget_range"`
	LocationWanted string   `json:"location_wanted"`
	Wishlist       []string `json:"wishlist"`
}
