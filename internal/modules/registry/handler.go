package registry

import (
	"net/http"
	"strconv"

	"realty/internal/domain"
	"realty/internal/modules/booking"
	"realty/internal/modules/catalog"
	"realty/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// PasswordHasher turns a plaintext password into the stored credential.
// Injected by the shell so the registry never learns the hashing scheme.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Handler struct {
	service *Service
	hasher  PasswordHasher
}

func NewHandler(service *Service, hasher PasswordHasher) *Handler {
	return &Handler{service: service, hasher: hasher}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties", h.SearchProperties)
	rg.GET("/properties/:id", h.GetProperty)
}

func (h *Handler) RegisterSellerRoutes(rg *gin.RouterGroup) {
	rg.POST("/properties", h.AddProperty)
	rg.PUT("/properties/:id", h.UpdateProperty)
	rg.DELETE("/properties/:id", h.RemoveProperty)
	rg.GET("/listings", h.SearchListings)
}

func (h *Handler) RegisterBuyerRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.DELETE("/bookings/:id", h.CancelBooking)
	rg.POST("/profile/wishlist", h.AddToWishlist)
	rg.PUT("/profile/budget", h.SetBudgetRange)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/profile", h.GetProfile)
	rg.PUT("/profile", h.UpdateProfile)
}

/* ---------- PROPERTIES ---------- */

func (h *Handler) SearchProperties(c *gin.Context) {
	results := h.service.Search(c.Query("search"))
	response.Success(c, http.StatusOK, gin.H{"properties": results})
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.service.ViewDetails(id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"property": p})
}

func (h *Handler) AddProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	session, ok := h.sellerSession(c)
	if !ok {
		return
	}

	err := session.AddProperty(domain.Property{
		ID:       req.ID,
		Location: req.Location,
		Price:    req.Price,
		Type:     req.Type,
	})
	if err != nil {
		switch err {
		case catalog.ErrDuplicateID:
			response.Error(c, http.StatusConflict, "DUPLICATE_ID", "Property id already in catalog")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add property")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"property_id": req.ID})
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	session, ok := h.sellerSession(c)
	if !ok {
		return
	}

	if err := session.UpdateProperty(id, req.Location, req.Price, req.Type); err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"property_id": id})
}

func (h *Handler) RemoveProperty(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	session, ok := h.sellerSession(c)
	if !ok {
		return
	}

	if err := session.RemoveProperty(id); err != nil {
		switch err {
		case catalog.ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your listing")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove property")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"property_id": id})
}

func (h *Handler) SearchListings(c *gin.Context) {
	session, ok := h.sellerSession(c)
	if !ok {
		return
	}

	results, err := session.SearchListings(c.Query("search"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search listings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": results})
}

/* ---------- BOOKINGS ---------- */

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	session, ok := h.buyerSession(c)
	if !ok {
		return
	}

	b, err := session.Book(domain.Booking{
		ID:           req.ID,
		PropertyID:   req.PropertyID,
		BookingDate:  req.BookingDate,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
	})
	if err != nil {
		switch err {
		case booking.ErrNotAvailable:
			response.Error(c, http.StatusConflict, "PROPERTY_UNAVAILABLE", "Property is not available")
		case booking.ErrDuplicateID:
			response.Error(c, http.StatusConflict, "DUPLICATE_ID", "Booking id already in ledger")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	session, ok := h.buyerSession(c)
	if !ok {
		return
	}

	b, err := session.CancelBooking(id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No confirmed booking with that id")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListBookings(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"bookings": h.service.ActiveBookings()})
}

/* ---------- PROFILE ---------- */

func (h *Handler) GetProfile(c *gin.Context) {
	user, ok := h.service.UserByID(c.GetInt64("user_id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hash, err := h.hasher.HashPassword(req.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile")
		return
	}

	user, err := h.service.UpdateProfile(c.GetInt64("user_id"), req.Username, req.Email, hash)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) AddToWishlist(c *gin.Context) {
	var req WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	session, ok := h.buyerSession(c)
	if !ok {
		return
	}

	if err := session.AddToWishlist(req.Entry); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update wishlist")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"entry": req.Entry})
}

func (h *Handler) SetBudgetRange(c *gin.Context) {
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	session, ok := h.buyerSession(c)
	if !ok {
		return
	}

	if err := session.SetBudgetRange(req.BudgetRange); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update budget range")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"budget_range": req.BudgetRange})
}

/* ---------- helpers ---------- */

func (h *Handler) sellerSession(c *gin.Context) (*SellerSession, bool) {
	session, err := h.service.SellerSession(c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Seller role required")
		return nil, false
	}
	return session, true
}

func (h *Handler) buyerSession(c *gin.Context) (*BuyerSession, bool) {
	session, err := h.service.BuyerSession(c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Buyer role required")
		return nil, false
	}
	return session, true
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}
