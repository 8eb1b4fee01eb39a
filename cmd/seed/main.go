package main

import (
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"realty/internal/audit"
	"realty/internal/config"
	"realty/internal/database"
	"realty/internal/domain"
	"realty/internal/modules/auth"
	"realty/internal/modules/booking"
	"realty/internal/modules/catalog"
	"realty/internal/modules/registry"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	auditStore, err := audit.NewStore(db)
	if err != nil {
		log.Fatal("audit store init failed:", err)
	}
	fileSink, err := audit.NewFileSink(cfg.AuditDir)
	if err != nil {
		log.Fatal("audit dir init failed:", err)
	}

	reg := registry.NewService(
		catalog.NewService(),
		booking.NewService(nil),
		audit.MultiSink{auditStore, fileSink},
		auth.PasswordComparer(),
	)

	log.Println("Creating users...")

	aliceHash, _ := bcrypt.GenerateFromPassword([]byte("seller123"), bcrypt.DefaultCost)
	alice, err := reg.RegisterUser(&domain.User{
		Username: "alice",
		Email:    "alice@realty.dev",
		Password: string(aliceHash),
		Role:     domain.RoleSeller,
		Seller:   &domain.SellerProfile{ContactInfo: "+1 617 555 0101", Rating: 5},
	})
	if err != nil {
		log.Fatal(err)
	}

	bobHash, _ := bcrypt.GenerateFromPassword([]byte("buyer123"), bcrypt.DefaultCost)
	bob, err := reg.RegisterUser(&domain.User{
		Username: "bob",
		Email:    "bob@realty.dev",
		Password: string(bobHash),
		Role:     domain.RoleBuyer,
		Buyer:    &domain.BuyerProfile{BudgetRange: 600000, LocationWanted: "Boston"},
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Creating properties...")

	listings := []domain.Property{
		{ID: 1, Location: "Boston", Price: 500000, Type: "condo"},
		{ID: 2, Location: "Cambridge", Price: 750000, Type: "house"},
		{ID: 3, Location: "Somerville", Price: 420000, Type: "apartment"},
	}
	for _, p := range listings {
		if err := reg.AddProperty(alice.ID, p); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating bookings...")

	if _, err := reg.ProcessBooking(domain.Booking{
		ID:           10,
		PropertyID:   1,
		BookingDate:  "2026-08-30",
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-17",
	}); err != nil {
		log.Fatal(err)
	}

	_ = reg.AddToWishlist(bob.ID, "Property ID: 2")

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Seller: alice / seller123")
	log.Println("Buyer:  bob / buyer123")
}
