package auth

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=seller buyer"`

	// seller fields
	ContactInfo string `json:"contact_info"`
	Rating      int    `json:"rating"`

	// buyer fields
	BudgetRange    int64  `json:"budget_range"`
	LocationWanted string `json:"location_wanted"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
