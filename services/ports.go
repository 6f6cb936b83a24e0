package services

import (
	"context"
	"time"

	"github.com/scentara/perfume-api/models"
	"github.com/scentara/perfume-api/repository"
	"github.com/shopspring/decimal"
)

// Repository ports. The concrete gorm repositories satisfy these; tests
// substitute func-field fakes.

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *models.User) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	List(ctx context.Context, limit, offset int) ([]models.User, int64, error)
}

type SocialAccountRepository interface {
	Create(ctx context.Context, a *models.SocialAccount) error
	GetByProviderAccount(ctx context.Context, provider, providerAccountID string) (*models.SocialAccount, error)
	GetByUserAndProvider(ctx context.Context, userID, provider string) (*models.SocialAccount, error)
	UpdateTokens(ctx context.Context, id, accessToken, refreshToken string) error
}

type AddressRepository interface {
	Create(ctx context.Context, a *models.Address) error
	GetByUserAndID(ctx context.Context, userID, addressID string) (*models.Address, error)
	GetByUserAndHash(ctx context.Context, userID, hash, excludeID string) (*models.Address, error)
	ListByUser(ctx context.Context, userID string) ([]models.Address, error)
	Update(ctx context.Context, a *models.Address) error
	Delete(ctx context.Context, a *models.Address) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, f repository.ProductFilter) ([]models.Product, int64, error)
	Update(ctx context.Context, p *models.Product) error
	UpdateStock(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, p *models.Product) error
}

type CartRepository interface {
	GetItem(ctx context.Context, userID, productID string) (*models.Cart, error)
	GetActiveItem(ctx context.Context, userID, productID string) (*models.Cart, error)
	ListActiveByUser(ctx context.Context, userID string) ([]models.Cart, error)
	Create(ctx context.Context, item *models.Cart) error
	Save(ctx context.Context, item *models.Cart) error
	Delete(ctx context.Context, item *models.Cart) error
	DeleteActiveByUser(ctx context.Context, userID string) error
}

type WishlistRepository interface {
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.WishlistItem, error)
	ListByUser(ctx context.Context, userID string) ([]models.WishlistItem, error)
	Create(ctx context.Context, item *models.WishlistItem) error
	Delete(ctx context.Context, item *models.WishlistItem) error
	DeleteAllByUser(ctx context.Context, userID string) error
}

type OrderRepository interface {
	WithTx(ctx context.Context, fn func(tx repository.OrderTx) error) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByUserAndID(ctx context.Context, userID, orderID string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Order, int64, error)
	ListRecent(ctx context.Context, limit, offset int) ([]models.Order, int64, error)
	ListByStatus(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
	UpdateAdminFields(ctx context.Context, id string, fields map[string]any) error
	CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	SumRevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	GetByProviderPaymentID(ctx context.Context, provider models.PaymentProvider, providerPaymentID string) (*models.Payment, error)
	Update(ctx context.Context, p *models.Payment) error
	ListByOrder(ctx context.Context, orderID string) ([]models.Payment, error)
}
