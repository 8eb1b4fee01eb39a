package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"realty/internal/audit"
	"realty/internal/config"
	"realty/internal/database"
	"realty/internal/middleware"
	"realty/internal/modules/auth"
	"realty/internal/modules/booking"
	"realty/internal/modules/catalog"
	"realty/internal/modules/feed"
	"realty/internal/modules/registry"
	jwtsvc "realty/internal/pkg/jwt"

	"realty/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	auditStore, err := audit.NewStore(db)
	if err != nil {
		log.Fatal(err)
	}
	fileSink, err := audit.NewFileSink(cfg.AuditDir)
	if err != nil {
		log.Fatal(err)
	}
	hub := feed.NewHub()
	defer hub.Close()

	sink := audit.MultiSink{auditStore, fileSink, hub}

	reg := registry.NewService(
		catalog.NewService(),
		booking.NewService(nil),
		sink,
		auth.PasswordComparer(),
	)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL, "realty")

	authService := auth.NewService(reg, j)
	authHandler := auth.NewHandler(authService)
	registryHandler := registry.NewHandler(reg, authService)
	feedHandler := feed.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.RequestID())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		registryHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.AuthRequired(j))
		{
			registryHandler.RegisterProtectedRoutes(protected)
			feedHandler.RegisterRoutes(protected)

			seller := protected.Group("/")
			seller.Use(middleware.RequireRole(string(domain.RoleSeller)))
			registryHandler.RegisterSellerRoutes(seller)

			buyer := protected.Group("/")
			buyer.Use(middleware.RequireRole(string(domain.RoleBuyer)))
			registryHandler.RegisterBuyerRoutes(buyer)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
