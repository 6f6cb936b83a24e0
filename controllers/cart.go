package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scentara/perfume-api/services"
	"go.uber.org/zap"
)

func GetCart(svc *services.CartService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Get(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

func AddToCart(svc *services.CartService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		item, err := svc.Add(c.Request.Context(), currentUserID(c), req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func IncrementCartItem(svc *services.CartService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Increment(c.Request.Context(), currentUserID(c), c.Param("productId"))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DecrementCartItem lowers the quantity by one; reaching zero removes the
// line and returns an empty body.
func DecrementCartItem(svc *services.CartService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Decrement(c.Request.Context(), currentUserID(c), c.Param("productId"))
		if err != nil {
			respondError(c, log, err)
			return
		}
		if item == nil {
			c.JSON(http.StatusOK, gin.H{"message": "item removed"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func RemoveCartItem(svc *services.CartService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RemoveProduct(c.Request.Context(), currentUserID(c), c.Param("productId")); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "item removed"})
	}
}

func ClearCart(svc *services.CartService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), currentUserID(c)); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
	}
}
