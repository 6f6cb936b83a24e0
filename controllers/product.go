package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/scentara/perfume-api/repository"
	"github.com/scentara/perfume-api/services"
	"go.uber.org/zap"
)

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListProducts serves the public catalog with optional filters.
func ListProducts(svc *services.ProductService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pagination(c)
		filter := repository.ProductFilter{
			Brand:           c.Query("brand"),
			Gender:          c.Query("gender"),
			FragranceFamily: c.Query("fragrance_family"),
			Search:          c.Query("search"),
			ActiveOnly:      true,
			Limit:           limit,
			Offset:          offset,
		}

		products, total, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
	}
}

func GetProduct(svc *services.ProductService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func GetProductBySlug(svc *services.ProductService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// Admin catalog management.

func CreateProduct(svc *services.ProductService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			bindError(c, err)
			return
		}

		p, err := svc.Create(c.Request.Context(), currentUserID(c), in)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func UpdateProduct(svc *services.ProductService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			bindError(c, err)
			return
		}

		p, err := svc.Update(c.Request.Context(), currentUserID(c), c.Param("id"), in)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

type stockRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

func SetProductStock(svc *services.ProductService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req stockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		if err := svc.SetStock(c.Request.Context(), c.Param("id"), *req.Quantity); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "stock updated"})
	}
}

func DeleteProduct(svc *services.ProductService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
