package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scentara/perfume-api/models"
	"github.com/scentara/perfume-api/realtime"
	"github.com/scentara/perfume-api/services"
	"go.uber.org/zap"
)

type createOrderRequest struct {
	AddressID string `json:"address_id" binding:"required"`
}

// CreateOrder snapshots the active cart into an order and announces it on
// the admin feed.
func CreateOrder(svc *services.OrderService, hub *realtime.Hub, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		order, err := svc.CreateFromCart(c.Request.Context(), currentUserID(c), req.AddressID)
		if err != nil {
			respondError(c, log, err)
			return
		}

		hub.Broadcast(order)
		c.JSON(http.StatusCreated, order)
	}
}

func GetOrder(svc *services.OrderService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func ListOrders(svc *services.OrderService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pagination(c)
		orders, total, err := svc.List(c.Request.Context(), currentUserID(c), limit, offset)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total})
	}
}

type paymentIntentRequest struct {
	Provider models.PaymentProvider `json:"provider" binding:"required,oneof=stripe razorpay mock"`
}

// CreatePaymentIntent opens a gateway payment attempt for the order.
func CreatePaymentIntent(svc *services.CheckoutService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req paymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		attempt, err := svc.CreatePaymentIntent(c.Request.Context(), currentUserID(c), c.Param("id"), req.Provider)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, attempt)
	}
}

func ListOrderPayments(svc *services.CheckoutService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		payments, err := svc.ListPayments(c.Request.Context(), currentUserID(c), c.Param("id"))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": payments})
	}
}

// PaymentWebhook receives gateway notifications. The raw body is read
// before parsing because signature verification runs over the exact
// bytes the gateway signed.
func PaymentWebhook(svc *services.CheckoutService, provider models.PaymentProvider, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
			return
		}

		if err := svc.HandleWebhook(c.Request.Context(), provider, payload, c.Request.Header); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
