package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          string `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null;index" json:"name"`
	Slug        string `gorm:"size:255;unique;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	MainImageURL   string   `gorm:"size:500" json:"main_image_url,omitempty"`
	SlideImageURLs []string `gorm:"serializer:json" json:"slide_image_urls,omitempty"`

	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Currency string          `gorm:"size:3;not null;default:'INR'" json:"currency"`
	Quantity int             `gorm:"not null;default:0;index" json:"quantity"`

	// Perfume attributes
	Brand           string   `gorm:"size:100;index" json:"brand,omitempty"`
	FragranceFamily string   `gorm:"size:50;index" json:"fragrance_family,omitempty"` // Oriental, Fresh, Floral, Woody
	Concentration   string   `gorm:"size:20" json:"concentration,omitempty"`          // EDT, EDP, Parfum
	VolumeML        int      `json:"volume_ml,omitempty"`
	Gender          string   `gorm:"size:10;index" json:"gender,omitempty"` // Men, Women, Unisex
	TopNotes        []string `gorm:"serializer:json" json:"top_notes,omitempty"`
	MiddleNotes     []string `gorm:"serializer:json" json:"middle_notes,omitempty"`
	BaseNotes       []string `gorm:"serializer:json" json:"base_notes,omitempty"`

	DateOfManufacture    *time.Time `json:"date_of_manufacture,omitempty"`
	ExpiryDurationMonths int        `json:"expiry_duration_months,omitempty"`
	RankOfProduct        int        `gorm:"not null;default:0;index" json:"rank_of_product"`
	IsActive             bool       `gorm:"not null;default:true;index" json:"is_active"`

	CreatedBy string `gorm:"type:char(36)" json:"-"`
	UpdatedBy string `gorm:"type:char(36)" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) IsAvailable() bool {
	return p.IsActive && p.Quantity > 0
}

func (p *Product) CanFulfillQuantity(requested int) bool {
	return p.Quantity >= requested
}
