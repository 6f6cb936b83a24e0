package main

import (
	"os"

	"github.com/scentara/perfume-api/auth"
	"github.com/scentara/perfume-api/config"
	"github.com/scentara/perfume-api/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the catalog with a starter set of perfumes and, when ADMIN_EMAIL
// and ADMIN_PASSWORD are set, a superadmin account. Idempotent: products
// upsert on slug, the admin is only created if the email is free.
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

	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		log.Fatal("auto-migrate failed", zap.Error(err))
	}

	products := starterCatalog()
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "quantity", "rank_of_product", "is_active"}),
	}).Create(&products).Error
	if err != nil {
		log.Fatal("product seed failed", zap.Error(err))
	}
	log.Info("catalog seeded", zap.Int("products", len(products)))

	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		seedAdmin(db, log, email, os.Getenv("ADMIN_PASSWORD"))
	}
}

func seedAdmin(db *gorm.DB, log *zap.Logger, email, password string) {
	if password == "" {
		log.Warn("ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Fatal("admin lookup failed", zap.Error(err))
	}
	if count > 0 {
		log.Info("admin already exists", zap.String("email", email))
		return
	}

	hash, err := auth.NewBcryptHasher(0).Hash(password)
	if err != nil {
		log.Fatal("admin password hash failed", zap.Error(err))
	}

	admin := &models.User{
		ID:            models.NewID(),
		Email:         email,
		PasswordHash:  hash,
		UserType:      models.UserTypeEmail,
		Role:          models.RoleSuperAdmin,
		IsActive:      true,
		EmailVerified: true,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatal("admin seed failed", zap.Error(err))
	}
	log.Info("admin created", zap.String("email", email))
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func starterCatalog() []models.Product {
	return []models.Product{
		{
			ID: models.NewID(), Name: "Midnight Oud", Slug: "midnight-oud",
			Description: "Dense resinous oud rounded with rose and saffron.",
			Price:       price("4999.00"), Currency: "INR", Quantity: 40,
			Brand: "Scentara", FragranceFamily: "Oriental", Concentration: "EDP",
			VolumeML: 100, Gender: "Unisex",
			TopNotes:    []string{"saffron", "bergamot"},
			MiddleNotes: []string{"rose", "oud"},
			BaseNotes:   []string{"amber", "musk"},
			RankOfProduct: 100, IsActive: true,
		},
		{
			ID: models.NewID(), Name: "Citrus Veil", Slug: "citrus-veil",
			Description: "Sparkling yuzu and neroli over a light cedar base.",
			Price:       price("2499.00"), Currency: "INR", Quantity: 120,
			Brand: "Scentara", FragranceFamily: "Fresh", Concentration: "EDT",
			VolumeML: 50, Gender: "Unisex",
			TopNotes:    []string{"yuzu", "neroli"},
			MiddleNotes: []string{"green tea"},
			BaseNotes:   []string{"cedar"},
			RankOfProduct: 80, IsActive: true,
		},
		{
			ID: models.NewID(), Name: "Velvet Iris", Slug: "velvet-iris",
			Description: "Powdery iris with violet leaf and tonka.",
			Price:       price("3799.00"), Currency: "INR", Quantity: 60,
			Brand: "Scentara", FragranceFamily: "Floral", Concentration: "EDP",
			VolumeML: 75, Gender: "Women",
			TopNotes:    []string{"violet leaf"},
			MiddleNotes: []string{"iris", "heliotrope"},
			BaseNotes:   []string{"tonka bean", "vanilla"},
			RankOfProduct: 90, IsActive: true,
		},
		{
			ID: models.NewID(), Name: "Ember Wood", Slug: "ember-wood",
			Description: "Smoked vetiver and palo santo with a leather drydown.",
			Price:       price("4299.00"), Currency: "INR", Quantity: 35,
			Brand: "Scentara", FragranceFamily: "Woody", Concentration: "Parfum",
			VolumeML: 50, Gender: "Men",
			TopNotes:    []string{"pink pepper"},
			MiddleNotes: []string{"vetiver", "palo santo"},
			BaseNotes:   []string{"leather", "patchouli"},
			RankOfProduct: 85, IsActive: true,
		},
		{
			ID: models.NewID(), Name: "Monsoon Bloom", Slug: "monsoon-bloom",
			Description: "Wet jasmine and petrichor over sandalwood.",
			Price:       price("3199.00"), Currency: "INR", Quantity: 80,
			Brand: "Scentara", FragranceFamily: "Floral", Concentration: "EDP",
			VolumeML: 100, Gender: "Unisex",
			TopNotes:    []string{"rain accord"},
			MiddleNotes: []string{"jasmine sambac", "tuberose"},
			BaseNotes:   []string{"sandalwood"},
			RankOfProduct: 70, IsActive: true,
		},
	}
}
