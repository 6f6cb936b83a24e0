package services

import (
	"context"
	"time"

	"github.com/scentara/perfume-api/auth"
	"github.com/scentara/perfume-api/models"
	"github.com/scentara/perfume-api/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
)

type fakeUserRepo struct {
	CreateFn        func(ctx context.Context, u *models.User) error
	GetByIDFn       func(ctx context.Context, id string) (*models.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailFn func(ctx context.Context, email string) (bool, error)
	UpdateFn        func(ctx context.Context, u *models.User) error
	TouchFn         func(ctx context.Context, id string, at time.Time) error
	ListFn          func(ctx context.Context, limit, offset int) ([]models.User, int64, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error { return f.CreateFn(ctx, u) }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.GetByEmailFn(ctx, email)
}
func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.ExistsByEmailFn(ctx, email)
}
func (f *fakeUserRepo) Update(ctx context.Context, u *models.User) error { return f.UpdateFn(ctx, u) }
func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	if f.TouchFn == nil {
		return nil
	}
	return f.TouchFn(ctx, id, at)
}
func (f *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	return f.ListFn(ctx, limit, offset)
}

type fakeSocialRepo struct {
	CreateFn               func(ctx context.Context, a *models.SocialAccount) error
	GetByProviderAccountFn func(ctx context.Context, provider, providerAccountID string) (*models.SocialAccount, error)
	GetByUserAndProviderFn func(ctx context.Context, userID, provider string) (*models.SocialAccount, error)
	UpdateTokensFn         func(ctx context.Context, id, accessToken, refreshToken string) error
}

func (f *fakeSocialRepo) Create(ctx context.Context, a *models.SocialAccount) error {
	return f.CreateFn(ctx, a)
}
func (f *fakeSocialRepo) GetByProviderAccount(ctx context.Context, provider, providerAccountID string) (*models.SocialAccount, error) {
	return f.GetByProviderAccountFn(ctx, provider, providerAccountID)
}
func (f *fakeSocialRepo) GetByUserAndProvider(ctx context.Context, userID, provider string) (*models.SocialAccount, error) {
	return f.GetByUserAndProviderFn(ctx, userID, provider)
}
func (f *fakeSocialRepo) UpdateTokens(ctx context.Context, id, accessToken, refreshToken string) error {
	if f.UpdateTokensFn == nil {
		return nil
	}
	return f.UpdateTokensFn(ctx, id, accessToken, refreshToken)
}

type fakeGoogle struct {
	AuthCodeURLFn     func(state string) (string, string)
	ExchangeFn        func(ctx context.Context, code, verifier string) (*oauth2.Token, error)
	FetchProfileFn    func(ctx context.Context, token *oauth2.Token) (*auth.GoogleProfile, error)
	ValidateIDTokenFn func(ctx context.Context, rawIDToken string) (*auth.GoogleProfile, error)
}

func (f *fakeGoogle) AuthCodeURL(state string) (string, string) { return f.AuthCodeURLFn(state) }
func (f *fakeGoogle) Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error) {
	return f.ExchangeFn(ctx, code, verifier)
}
func (f *fakeGoogle) FetchProfile(ctx context.Context, token *oauth2.Token) (*auth.GoogleProfile, error) {
	return f.FetchProfileFn(ctx, token)
}
func (f *fakeGoogle) ValidateIDToken(ctx context.Context, rawIDToken string) (*auth.GoogleProfile, error) {
	return f.ValidateIDTokenFn(ctx, rawIDToken)
}

type fakeAddressRepo struct {
	CreateFn           func(ctx context.Context, a *models.Address) error
	GetByUserAndIDFn   func(ctx context.Context, userID, addressID string) (*models.Address, error)
	GetByUserAndHashFn func(ctx context.Context, userID, hash, excludeID string) (*models.Address, error)
	ListByUserFn       func(ctx context.Context, userID string) ([]models.Address, error)
	UpdateFn           func(ctx context.Context, a *models.Address) error
	DeleteFn           func(ctx context.Context, a *models.Address) error
}

func (f *fakeAddressRepo) Create(ctx context.Context, a *models.Address) error {
	return f.CreateFn(ctx, a)
}
func (f *fakeAddressRepo) GetByUserAndID(ctx context.Context, userID, addressID string) (*models.Address, error) {
	return f.GetByUserAndIDFn(ctx, userID, addressID)
}
func (f *fakeAddressRepo) GetByUserAndHash(ctx context.Context, userID, hash, excludeID string) (*models.Address, error) {
	return f.GetByUserAndHashFn(ctx, userID, hash, excludeID)
}
func (f *fakeAddressRepo) ListByUser(ctx context.Context, userID string) ([]models.Address, error) {
	return f.ListByUserFn(ctx, userID)
}
func (f *fakeAddressRepo) Update(ctx context.Context, a *models.Address) error {
	return f.UpdateFn(ctx, a)
}
func (f *fakeAddressRepo) Delete(ctx context.Context, a *models.Address) error {
	return f.DeleteFn(ctx, a)
}

type fakeProductRepo struct {
	CreateFn       func(ctx context.Context, p *models.Product) error
	GetByIDFn      func(ctx context.Context, id string) (*models.Product, error)
	GetBySlugFn    func(ctx context.Context, slug string) (*models.Product, error)
	ExistsBySlugFn func(ctx context.Context, slug string) (bool, error)
	ListFn         func(ctx context.Context, f repository.ProductFilter) ([]models.Product, int64, error)
	UpdateFn       func(ctx context.Context, p *models.Product) error
	UpdateStockFn  func(ctx context.Context, id string, quantity int) error
	DeleteFn       func(ctx context.Context, p *models.Product) error
}

func (f *fakeProductRepo) Create(ctx context.Context, p *models.Product) error {
	return f.CreateFn(ctx, p)
}
func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return f.GetBySlugFn(ctx, slug)
}
func (f *fakeProductRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return f.ExistsBySlugFn(ctx, slug)
}
func (f *fakeProductRepo) List(ctx context.Context, flt repository.ProductFilter) ([]models.Product, int64, error) {
	return f.ListFn(ctx, flt)
}
func (f *fakeProductRepo) Update(ctx context.Context, p *models.Product) error {
	return f.UpdateFn(ctx, p)
}
func (f *fakeProductRepo) UpdateStock(ctx context.Context, id string, quantity int) error {
	return f.UpdateStockFn(ctx, id, quantity)
}
func (f *fakeProductRepo) Delete(ctx context.Context, p *models.Product) error {
	return f.DeleteFn(ctx, p)
}

type fakeCartRepo struct {
	GetItemFn            func(ctx context.Context, userID, productID string) (*models.Cart, error)
	GetActiveItemFn      func(ctx context.Context, userID, productID string) (*models.Cart, error)
	ListActiveByUserFn   func(ctx context.Context, userID string) ([]models.Cart, error)
	CreateFn             func(ctx context.Context, item *models.Cart) error
	SaveFn               func(ctx context.Context, item *models.Cart) error
	DeleteFn             func(ctx context.Context, item *models.Cart) error
	DeleteActiveByUserFn func(ctx context.Context, userID string) error
}

func (f *fakeCartRepo) GetItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	return f.GetItemFn(ctx, userID, productID)
}
func (f *fakeCartRepo) GetActiveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	return f.GetActiveItemFn(ctx, userID, productID)
}
func (f *fakeCartRepo) ListActiveByUser(ctx context.Context, userID string) ([]models.Cart, error) {
	return f.ListActiveByUserFn(ctx, userID)
}
func (f *fakeCartRepo) Create(ctx context.Context, item *models.Cart) error {
	return f.CreateFn(ctx, item)
}
func (f *fakeCartRepo) Save(ctx context.Context, item *models.Cart) error { return f.SaveFn(ctx, item) }
func (f *fakeCartRepo) Delete(ctx context.Context, item *models.Cart) error {
	return f.DeleteFn(ctx, item)
}
func (f *fakeCartRepo) DeleteActiveByUser(ctx context.Context, userID string) error {
	return f.DeleteActiveByUserFn(ctx, userID)
}

type fakeWishlistRepo struct {
	GetByUserAndProductFn func(ctx context.Context, userID, productID string) (*models.WishlistItem, error)
	ListByUserFn          func(ctx context.Context, userID string) ([]models.WishlistItem, error)
	CreateFn              func(ctx context.Context, item *models.WishlistItem) error
	DeleteFn              func(ctx context.Context, item *models.WishlistItem) error
	DeleteAllByUserFn     func(ctx context.Context, userID string) error
}

func (f *fakeWishlistRepo) GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.WishlistItem, error) {
	return f.GetByUserAndProductFn(ctx, userID, productID)
}
func (f *fakeWishlistRepo) ListByUser(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	return f.ListByUserFn(ctx, userID)
}
func (f *fakeWishlistRepo) Create(ctx context.Context, item *models.WishlistItem) error {
	return f.CreateFn(ctx, item)
}
func (f *fakeWishlistRepo) Delete(ctx context.Context, item *models.WishlistItem) error {
	return f.DeleteFn(ctx, item)
}
func (f *fakeWishlistRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	return f.DeleteAllByUserFn(ctx, userID)
}

type fakeOrderTx struct {
	CreateOrderFn      func(ctx context.Context, o *models.Order) error
	CreateOrderItemsFn func(ctx context.Context, items []models.OrderItem) error
	ExpireCartLinesFn  func(ctx context.Context, lineIDs []string, checkoutID string) error
}

func (f *fakeOrderTx) CreateOrder(ctx context.Context, o *models.Order) error {
	return f.CreateOrderFn(ctx, o)
}
func (f *fakeOrderTx) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	return f.CreateOrderItemsFn(ctx, items)
}
func (f *fakeOrderTx) ExpireCartLines(ctx context.Context, lineIDs []string, checkoutID string) error {
	return f.ExpireCartLinesFn(ctx, lineIDs, checkoutID)
}

type fakeOrderRepo struct {
	Tx                  *fakeOrderTx
	GetByIDFn           func(ctx context.Context, id string) (*models.Order, error)
	GetByUserAndIDFn    func(ctx context.Context, userID, orderID string) (*models.Order, error)
	ListByUserFn        func(ctx context.Context, userID string, limit, offset int) ([]models.Order, int64, error)
	ListRecentFn        func(ctx context.Context, limit, offset int) ([]models.Order, int64, error)
	ListByStatusFn      func(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int64, error)
	UpdateStatusFn      func(ctx context.Context, id string, status models.OrderStatus) error
	UpdateAdminFieldsFn func(ctx context.Context, id string, fields map[string]any) error
	CountByStatusFn     func(ctx context.Context, status models.OrderStatus) (int64, error)
	CountSinceFn        func(ctx context.Context, since time.Time) (int64, error)
	SumRevenueSinceFn   func(ctx context.Context, since time.Time) (decimal.Decimal, error)
}

func (f *fakeOrderRepo) WithTx(ctx context.Context, fn func(tx repository.OrderTx) error) error {
	return fn(f.Tx)
}
func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeOrderRepo) GetByUserAndID(ctx context.Context, userID, orderID string) (*models.Order, error) {
	return f.GetByUserAndIDFn(ctx, userID, orderID)
}
func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Order, int64, error) {
	return f.ListByUserFn(ctx, userID, limit, offset)
}
func (f *fakeOrderRepo) ListRecent(ctx context.Context, limit, offset int) ([]models.Order, int64, error) {
	return f.ListRecentFn(ctx, limit, offset)
}
func (f *fakeOrderRepo) ListByStatus(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int64, error) {
	return f.ListByStatusFn(ctx, status, limit, offset)
}
func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return f.UpdateStatusFn(ctx, id, status)
}
func (f *fakeOrderRepo) UpdateAdminFields(ctx context.Context, id string, fields map[string]any) error {
	return f.UpdateAdminFieldsFn(ctx, id, fields)
}
func (f *fakeOrderRepo) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	return f.CountByStatusFn(ctx, status)
}
func (f *fakeOrderRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return f.CountSinceFn(ctx, since)
}
func (f *fakeOrderRepo) SumRevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	return f.SumRevenueSinceFn(ctx, since)
}

type fakePaymentRepo struct {
	CreateFn                 func(ctx context.Context, p *models.Payment) error
	GetByIDFn                func(ctx context.Context, id string) (*models.Payment, error)
	GetByProviderPaymentIDFn func(ctx context.Context, provider models.PaymentProvider, providerPaymentID string) (*models.Payment, error)
	UpdateFn                 func(ctx context.Context, p *models.Payment) error
	ListByOrderFn            func(ctx context.Context, orderID string) ([]models.Payment, error)
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	return f.CreateFn(ctx, p)
}
func (f *fakePaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakePaymentRepo) GetByProviderPaymentID(ctx context.Context, provider models.PaymentProvider, providerPaymentID string) (*models.Payment, error) {
	return f.GetByProviderPaymentIDFn(ctx, provider, providerPaymentID)
}
func (f *fakePaymentRepo) Update(ctx context.Context, p *models.Payment) error {
	return f.UpdateFn(ctx, p)
}
func (f *fakePaymentRepo) ListByOrder(ctx context.Context, orderID string) ([]models.Payment, error) {
	return f.ListByOrderFn(ctx, orderID)
}
