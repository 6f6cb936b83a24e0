package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scentara/perfume-api/services"
	"go.uber.org/zap"
)

func GetWishlist(svc *services.WishlistService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

type wishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func AddToWishlist(svc *services.WishlistService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req wishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		item, err := svc.Add(c.Request.Context(), currentUserID(c), req.ProductID)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// ToggleWishlist adds or removes in one call for heart-icon UIs.
func ToggleWishlist(svc *services.WishlistService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req wishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		item, err := svc.Toggle(c.Request.Context(), currentUserID(c), req.ProductID)
		if err != nil {
			respondError(c, log, err)
			return
		}
		if item == nil {
			c.JSON(http.StatusOK, gin.H{"wishlisted": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"wishlisted": true, "item": item})
	}
}

func RemoveFromWishlist(svc *services.WishlistService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Remove(c.Request.Context(), currentUserID(c), c.Param("productId")); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "item removed"})
	}
}

func ClearWishlist(svc *services.WishlistService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), currentUserID(c)); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "wishlist cleared"})
	}
}
