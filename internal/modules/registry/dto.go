package registry

type CreatePropertyRequest struct {
	ID       int64  `json:"id" binding:"required"`
	Location string `json:"location" binding:"required"`
	Price    int64  `json:"price" binding:"gte=0"`
	Type     string `json:"type" binding:"required"`
}

type UpdatePropertyRequest struct {
	Location string `json:"location" binding:"required"`
	Price    int64  `json:"price" binding:"gte=0"`
	Type     string `json:"type" binding:"required"`
}

type CreateBookingRequest struct {
	ID           int64  `json:"id" binding:"required"`
	PropertyID   int64  `json:"property_id" binding:"required"`
	BookingDate  string `json:"booking_date" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type WishlistRequest struct {
	Entry string `json:"entry" binding:"required"`
}

type BudgetRequest struct {
	BudgetRange int64 `json:"budget_range" binding:"required"`
}
