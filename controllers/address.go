package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scentara/perfume-api/services"
	"go.uber.org/zap"
)

func ListAddresses(svc *services.AddressService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		addrs, err := svc.List(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": addrs})
	}
}

func GetAddress(svc *services.AddressService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := svc.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func CreateAddress(svc *services.AddressService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.AddressInput
		if err := c.ShouldBindJSON(&in); err != nil {
			bindError(c, err)
			return
		}

		a, err := svc.Create(c.Request.Context(), currentUserID(c), in)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

// UpdateAddress applies a partial update; omitted fields keep their
// stored values.
func UpdateAddress(svc *services.AddressService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch services.AddressPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			bindError(c, err)
			return
		}

		a, err := svc.Update(c.Request.Context(), currentUserID(c), c.Param("id"), patch)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func DeleteAddress(svc *services.AddressService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "address deleted"})
	}
}
