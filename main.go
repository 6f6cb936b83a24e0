package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/scentara/perfume-api/auth"
	"github.com/scentara/perfume-api/config"
	"github.com/scentara/perfume-api/models"
	"github.com/scentara/perfume-api/payments"
	"github.com/scentara/perfume-api/realtime"
	"github.com/scentara/perfume-api/repository"
	"github.com/scentara/perfume-api/routes"
	"github.com/scentara/perfume-api/services"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.SocialAccount{},
		&models.Address{},
		&models.Product{},
		&models.Cart{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	); err != nil {
		log.Fatal("auto-migrate failed", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepo(db)
	socialRepo := repository.NewSocialAccountRepo(db)
	addressRepo := repository.NewAddressRepo(db)
	productRepo := repository.NewProductRepo(db)
	cartRepo := repository.NewCartRepo(db)
	wishlistRepo := repository.NewWishlistRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)

	// Auth plumbing
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	hasher := auth.NewBcryptHasher(0)
	google := auth.NewGoogleClient(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	states := auth.NewStateStore(10 * time.Minute)
	go func() {
		for range time.Tick(5 * time.Minute) {
			states.Sweep()
		}
	}()

	// Payment gateways. A gateway without credentials stays unregistered
	// and requests naming it fail with a clear error.
	var gateways []payments.Provider
	if cfg.StripeAPIKey != "" {
		gateways = append(gateways, payments.NewStripeProvider(cfg.StripeAPIKey, cfg.StripeWebhookSecret))
	}
	if cfg.RazorpayKeyID != "" {
		gateways = append(gateways, payments.NewRazorpayProvider(
			cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayWebhookSecret))
	}
	if cfg.MockPayments {
		log.Warn("mock payment gateway enabled")
		gateways = append(gateways, payments.NewMockProvider())
	}

	hub := realtime.NewHub(log)

	deps := routes.Deps{
		Auth:     services.NewAuthService(userRepo, socialRepo, tokens, hasher, google, states, log),
		Products: services.NewProductService(productRepo, log),
		Cart:     services.NewCartService(cartRepo, productRepo, log),
		Wishlist: services.NewWishlistService(wishlistRepo, productRepo, log),
		Address:  services.NewAddressService(addressRepo, log),
		Orders:   services.NewOrderService(orderRepo, cartRepo, productRepo, addressRepo, log),
		Checkout: services.NewCheckoutService(orderRepo, paymentRepo, gateways, log),
		Admin:    services.NewAdminService(orderRepo, userRepo, log),
		Tokens:   tokens,
		Users:    userRepo,
		Hub:      hub,
		Log:      log,
	}

	corsCfg := cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	// Credentials cannot be combined with a wildcard origin.
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		corsCfg.AllowCredentials = true
	}

	r := gin.Default()
	r.Use(requestid.New())
	r.Use(cors.New(corsCfg))

	routes.SetupRoutes(r, deps)

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
