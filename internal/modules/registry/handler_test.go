package registry

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"realty/internal/domain"
	"realty/internal/modules/booking"
	"realty/internal/modules/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainHasher struct{}

func (plainHasher) HashPassword(password string) (string, error) { return password, nil }

// actAs stands in for the auth middleware in handler tests.
func actAs(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func handlerRouter(svc *Service, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(svc, plainHasher{})
	r := gin.New()

	v1 := r.Group("/api/v1")
	h.RegisterPublicRoutes(v1)

	authed := v1.Group("/", actAs(userID))
	h.RegisterProtectedRoutes(authed)
	h.RegisterSellerRoutes(authed)
	h.RegisterBuyerRoutes(authed)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_PropertyLifecycle(t *testing.T) {
	svc, _ := newTestService()
	alice := registerSeller(t, svc, "alice", "seller123")
	r := handlerRouter(svc, alice.ID)

	w := doJSON(t, r, http.MethodPost, "/api/v1/properties", gin.H{
		"id":       1,
		"location": "Boston",
		"price":    500000,
		"type":     "condo",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// duplicate id conflicts
	w = doJSON(t, r, http.MethodPost, "/api/v1/properties", gin.H{
		"id":       1,
		"location": "Boston",
		"price":    500000,
		"type":     "condo",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "DUPLICATE_ID")

	w = doJSON(t, r, http.MethodGet, "/api/v1/properties?search=boston", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"location":"Boston"`)

	w = doJSON(t, r, http.MethodGet, "/api/v1/properties/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/properties/1", gin.H{
		"location": "Back Bay",
		"price":    650000,
		"type":     "loft",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/properties/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/properties/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SellerRoutesNeedSellerRole(t *testing.T) {
	svc, _ := newTestService()
	bob := registerBuyer(t, svc, "bob", "buyer123")
	r := handlerRouter(svc, bob.ID)

	w := doJSON(t, r, http.MethodPost, "/api/v1/properties", gin.H{
		"id":       1,
		"location": "Boston",
		"price":    500000,
		"type":     "condo",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestHandler_RemovePropertyOfAnotherSeller(t *testing.T) {
	svc, _ := newTestService()
	alice := registerSeller(t, svc, "alice", "seller123")
	carol := registerSeller(t, svc, "carol", "seller456")
	require.NoError(t, svc.AddProperty(alice.ID, domain.Property{ID: 1, Location: "Boston", Price: 500000, Type: "condo"}))

	r := handlerRouter(svc, carol.ID)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/properties/1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")

	// the listing is still there
	w = doJSON(t, r, http.MethodGet, "/api/v1/properties/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_BookingLifecycle(t *testing.T) {
	svc, _ := newTestService()
	alice := registerSeller(t, svc, "alice", "seller123")
	bob := registerBuyer(t, svc, "bob", "buyer123")
	require.NoError(t, svc.AddProperty(alice.ID, domain.Property{ID: 1, Location: "Boston", Price: 500000, Type: "condo"}))

	r := handlerRouter(svc, bob.ID)

	body := gin.H{
		"id":             10,
		"property_id":    1,
		"booking_date":   "2026-08-30",
		"check_in_date":  "2026-09-10",
		"check_out_date": "2026-09-17",
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/bookings", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)

	w = doJSON(t, r, http.MethodPost, "/api/v1/bookings", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/bookings", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":10`)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/bookings/10", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cancelled"`)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/bookings/10", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_BookingRejected(t *testing.T) {
	sink := &recordingSink{}
	svc := NewService(
		catalog.NewService(),
		booking.NewService(func(domain.Booking) bool { return false }),
		sink,
		nil,
	)
	bob := registerBuyer(t, svc, "bob", "buyer123")
	r := handlerRouter(svc, bob.ID)

	w := doJSON(t, r, http.MethodPost, "/api/v1/bookings", gin.H{
		"id":             10,
		"property_id":    1,
		"booking_date":   "2026-08-30",
		"check_in_date":  "2026-09-10",
		"check_out_date": "2026-09-17",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROPERTY_UNAVAILABLE")
}

func TestHandler_Profile(t *testing.T) {
	svc, _ := newTestService()
	bob := registerBuyer(t, svc, "bob", "buyer123")
	r := handlerRouter(svc, bob.ID)

	w := doJSON(t, r, http.MethodGet, "/api/v1/profile", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"bob"`)

	w = doJSON(t, r, http.MethodPost, "/api/v1/profile/wishlist", gin.H{"entry": "Property ID: 2"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/profile/budget", gin.H{"budget_range": 600000})
	assert.Equal(t, http.StatusOK, w.Code)

	user, ok := svc.UserByID(bob.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"Property ID: 2"}, user.Buyer.Wishlist)
	assert.Equal(t, int64(600000), user.Buyer.BudgetRange)
}

func TestHandler_InvalidIDParam(t *testing.T) {
	svc, _ := newTestService()
	alice := registerSeller(t, svc, "alice", "seller123")
	r := handlerRouter(svc, alice.ID)

	w := doJSON(t, r, http.MethodGet, "/api/v1/properties/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}
