package domain

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a reservation against a catalog property. Dates are opaque
// strings; the registry performs no calendar arithmetic on them.
type Booking struct {
	ID           int64         `json:"id"`
	PropertyID   int64         `json:"property_id"`
	BookingDate  string        `json:"booking_date"`
	CheckInDate  string        `json:"check_in_date"`
	CheckOutDate string        `json:"check_out_date"`
	Status       BookingStatus `json:"status"`
}
