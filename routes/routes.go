package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/scentara/perfume-api/auth"
	"github.com/scentara/perfume-api/controllers"
	"github.com/scentara/perfume-api/middleware"
	"github.com/scentara/perfume-api/models"
	"github.com/scentara/perfume-api/realtime"
	"github.com/scentara/perfume-api/services"
	"go.uber.org/zap"
)

// Deps carries everything the route tree needs.
type Deps struct {
	Auth     *services.AuthService
	Products *services.ProductService
	Cart     *services.CartService
	Wishlist *services.WishlistService
	Address  *services.AddressService
	Orders   *services.OrderService
	Checkout *services.CheckoutService
	Admin    *services.AdminService

	Tokens *auth.TokenManager
	Users  services.UserRepository
	Hub    *realtime.Hub
	Log    *zap.Logger
}

func SetupRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api/v1")

	authed := middleware.ValidateToken(d.Tokens)
	optional := middleware.OptionalToken(d.Tokens)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/anonymous", controllers.CreateAnonymousSession(d.Auth, d.Log))
		authGroup.POST("/login", controllers.Login(d.Auth, d.Log))
		authGroup.POST("/refresh", controllers.RefreshTokens(d.Auth, d.Log))
		authGroup.POST("/convert", authed, controllers.ConvertAccount(d.Auth, d.Log))
		authGroup.GET("/me", authed, controllers.CurrentUser(d.Auth, d.Log))

		authGroup.GET("/google/login", optional, controllers.GoogleLogin(d.Auth))
		authGroup.GET("/google/callback", controllers.GoogleCallback(d.Auth, d.Log))
		authGroup.POST("/google/onetap", optional, controllers.GoogleOneTap(d.Auth, d.Log))
	}

	products := api.Group("/products")
	{
		products.GET("", controllers.ListProducts(d.Products, d.Log))
		products.GET("/:id", controllers.GetProduct(d.Products, d.Log))
		products.GET("/slug/:slug", controllers.GetProductBySlug(d.Products, d.Log))
	}

	cart := api.Group("/cart", authed)
	{
		cart.GET("", controllers.GetCart(d.Cart, d.Log))
		cart.POST("/items", controllers.AddToCart(d.Cart, d.Log))
		cart.POST("/items/:productId/increment", controllers.IncrementCartItem(d.Cart, d.Log))
		cart.POST("/items/:productId/decrement", controllers.DecrementCartItem(d.Cart, d.Log))
		cart.DELETE("/items/:productId", controllers.RemoveCartItem(d.Cart, d.Log))
		cart.DELETE("", controllers.ClearCart(d.Cart, d.Log))
	}

	wishlist := api.Group("/wishlist", authed)
	{
		wishlist.GET("", controllers.GetWishlist(d.Wishlist, d.Log))
		wishlist.POST("/items", controllers.AddToWishlist(d.Wishlist, d.Log))
		wishlist.POST("/toggle", controllers.ToggleWishlist(d.Wishlist, d.Log))
		wishlist.DELETE("/items/:productId", controllers.RemoveFromWishlist(d.Wishlist, d.Log))
		wishlist.DELETE("", controllers.ClearWishlist(d.Wishlist, d.Log))
	}

	addresses := api.Group("/addresses", authed)
	{
		addresses.GET("", controllers.ListAddresses(d.Address, d.Log))
		addresses.POST("", controllers.CreateAddress(d.Address, d.Log))
		addresses.GET("/:id", controllers.GetAddress(d.Address, d.Log))
		addresses.PATCH("/:id", controllers.UpdateAddress(d.Address, d.Log))
		addresses.DELETE("/:id", controllers.DeleteAddress(d.Address, d.Log))
	}

	checkout := api.Group("/checkout")
	{
		orders := checkout.Group("/orders", authed)
		orders.POST("", controllers.CreateOrder(d.Orders, d.Hub, d.Log))
		orders.GET("", controllers.ListOrders(d.Orders, d.Log))
		orders.GET("/:id", controllers.GetOrder(d.Orders, d.Log))
		orders.POST("/:id/payments", controllers.CreatePaymentIntent(d.Checkout, d.Log))
		orders.GET("/:id/payments", controllers.ListOrderPayments(d.Checkout, d.Log))

		// Gateways authenticate webhooks with signatures, not bearer tokens.
		checkout.POST("/webhooks/stripe",
			controllers.PaymentWebhook(d.Checkout, models.PaymentProviderStripe, d.Log))
		checkout.POST("/webhooks/razorpay",
			controllers.PaymentWebhook(d.Checkout, models.PaymentProviderRazorpay, d.Log))
		checkout.POST("/webhooks/mock",
			controllers.PaymentWebhook(d.Checkout, models.PaymentProviderMock, d.Log))
	}

	admin := api.Group("/admin", authed, middleware.RequireAdmin(d.Users))
	{
		admin.GET("/orders", controllers.AdminRecentOrders(d.Admin, d.Log))
		admin.GET("/orders/stats", controllers.AdminOrderStats(d.Admin, d.Log))
		admin.GET("/orders/export", controllers.AdminExportShipped(d.Admin, d.Log))
		admin.GET("/orders/feed", controllers.AdminOrderFeed(d.Hub))
		admin.POST("/orders/ship-bulk", controllers.AdminBulkShip(d.Admin, d.Log))
		admin.PATCH("/orders/:id", controllers.AdminAnnotateOrder(d.Admin, d.Log))
		admin.PATCH("/orders/:id/ship", controllers.AdminShipOrder(d.Admin, d.Log))
		admin.POST("/orders/:id/cancel", controllers.AdminCancelOrder(d.Admin, d.Log))

		admin.GET("/users", controllers.AdminListUsers(d.Admin, d.Log))

		admin.POST("/products", controllers.CreateProduct(d.Products, d.Log))
		admin.PUT("/products/:id", controllers.UpdateProduct(d.Products, d.Log))
		admin.PATCH("/products/:id/stock", controllers.SetProductStock(d.Products, d.Log))
		admin.DELETE("/products/:id", controllers.DeleteProduct(d.Products, d.Log))
	}
}
