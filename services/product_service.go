package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/scentara/perfume-api/models"
	"github.com/scentara/perfume-api/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductService struct {
	products ProductRepository
	log      *zap.Logger
}

func NewProductService(products ProductRepository, log *zap.Logger) *ProductService {
	return &ProductService{products: products, log: log}
}

// ProductInput carries the admin-writable catalog fields.
type ProductInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`

	MainImageURL   string   `json:"main_image_url"`
	SlideImageURLs []string `json:"slide_image_urls"`

	Price    decimal.Decimal `json:"price" binding:"required"`
	Currency string          `json:"currency"`
	Quantity int             `json:"quantity" binding:"gte=0"`

	Brand           string   `json:"brand"`
	FragranceFamily string   `json:"fragrance_family"`
	Concentration   string   `json:"concentration"`
	VolumeML        int      `json:"volume_ml"`
	Gender          string   `json:"gender"`
	TopNotes        []string `json:"top_notes"`
	MiddleNotes     []string `json:"middle_notes"`
	BaseNotes       []string `json:"base_notes"`

	DateOfManufacture    *time.Time `json:"date_of_manufacture"`
	ExpiryDurationMonths int        `json:"expiry_duration_months"`
	RankOfProduct        int        `json:"rank_of_product"`
	IsActive             *bool      `json:"is_active"`
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name and collapses every non-alphanumeric run
// into a single hyphen.
func Slugify(name string) string {
	slug := slugCleaner.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

func (s *ProductService) Create(ctx context.Context, adminID string, in ProductInput) (*models.Product, error) {
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Name)
	}

	taken, err := s.products.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	currency := in.Currency
	if currency == "" {
		currency = "INR"
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	p := &models.Product{
		ID:                   models.NewID(),
		Name:                 in.Name,
		Slug:                 slug,
		Description:          in.Description,
		MainImageURL:         in.MainImageURL,
		SlideImageURLs:       in.SlideImageURLs,
		Price:                in.Price,
		Currency:             currency,
		Quantity:             in.Quantity,
		Brand:                in.Brand,
		FragranceFamily:      in.FragranceFamily,
		Concentration:        in.Concentration,
		VolumeML:             in.VolumeML,
		Gender:               in.Gender,
		TopNotes:             in.TopNotes,
		MiddleNotes:          in.MiddleNotes,
		BaseNotes:            in.BaseNotes,
		DateOfManufacture:    in.DateOfManufacture,
		ExpiryDurationMonths: in.ExpiryDurationMonths,
		RankOfProduct:        in.RankOfProduct,
		IsActive:             active,
		CreatedBy:            adminID,
		UpdatedBy:            adminID,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("product created",
		zap.String("product_id", p.ID), zap.String("slug", p.Slug))
	return p, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	p, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context, f repository.ProductFilter) ([]models.Product, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	return s.products.List(ctx, f)
}

func (s *ProductService) Update(ctx context.Context, adminID, id string, in ProductInput) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	if in.Slug != "" && in.Slug != p.Slug {
		taken, err := s.products.ExistsBySlug(ctx, in.Slug)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
		p.Slug = in.Slug
	}

	p.Name = in.Name
	p.Description = in.Description
	p.MainImageURL = in.MainImageURL
	p.SlideImageURLs = in.SlideImageURLs
	p.Price = in.Price
	if in.Currency != "" {
		p.Currency = in.Currency
	}
	p.Quantity = in.Quantity
	p.Brand = in.Brand
	p.FragranceFamily = in.FragranceFamily
	p.Concentration = in.Concentration
	p.VolumeML = in.VolumeML
	p.Gender = in.Gender
	p.TopNotes = in.TopNotes
	p.MiddleNotes = in.MiddleNotes
	p.BaseNotes = in.BaseNotes
	p.DateOfManufacture = in.DateOfManufacture
	p.ExpiryDurationMonths = in.ExpiryDurationMonths
	p.RankOfProduct = in.RankOfProduct
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.UpdatedBy = adminID

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) SetStock(ctx context.Context, id string, quantity int) error {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return s.products.UpdateStock(ctx, id, quantity)
}

// Delete soft-deletes the product. Existing order items keep their
// snapshot and still resolve through the product id.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return s.products.Delete(ctx, p)
}
