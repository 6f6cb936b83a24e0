package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scentara/perfume-api/models"
	"github.com/scentara/perfume-api/realtime"
	"github.com/scentara/perfume-api/services"
	"go.uber.org/zap"
)

func AdminRecentOrders(svc *services.AdminService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pagination(c)

		if status := c.Query("status"); status != "" {
			orders, total, err := svc.OrdersByStatus(c.Request.Context(), models.OrderStatus(status), limit, offset)
			if err != nil {
				respondError(c, log, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total})
			return
		}

		orders, total, err := svc.RecentOrders(c.Request.Context(), limit, offset)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total})
	}
}

type shipRequest struct {
	ShippingID string `json:"shipping_id" binding:"required"`
}

func AdminShipOrder(svc *services.AdminService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req shipRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		order, err := svc.MarkShipped(c.Request.Context(), c.Param("id"), req.ShippingID)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type bulkShipRequest struct {
	// order id -> courier tracking id
	Shipments map[string]string `json:"shipments" binding:"required"`
}

func AdminBulkShip(svc *services.AdminService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bulkShipRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		failures := svc.BulkShip(c.Request.Context(), req.Shipments)
		c.JSON(http.StatusOK, gin.H{
			"shipped":  len(req.Shipments) - len(failures),
			"failures": failures,
		})
	}
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func AdminCancelOrder(svc *services.AdminService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cancelRequest
		if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
			bindError(c, err)
			return
		}

		if err := svc.Cancel(c.Request.Context(), c.Param("id"), req.Reason); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order cancelled"})
	}
}

type annotateRequest struct {
	AdminNotes *string `json:"admin_notes"`
	SpamOrder  *bool   `json:"spam_order"`
}

func AdminAnnotateOrder(svc *services.AdminService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req annotateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		if err := svc.Annotate(c.Request.Context(), c.Param("id"), req.AdminNotes, req.SpamOrder); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order updated"})
	}
}

func AdminOrderStats(svc *services.AdminService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func AdminListUsers(svc *services.AdminService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pagination(c)
		users, total, err := svc.ListUsers(c.Request.Context(), limit, offset)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users, "total": total})
	}
}

// AdminExportShipped streams the shipped-order address sheet.
func AdminExportShipped(svc *services.AdminService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := svc.ExportShippedAddresses(c.Request.Context())
		if err != nil {
			respondError(c, log, err)
			return
		}

		c.Header("Content-Disposition", `attachment; filename="shipped_orders.xlsx"`)
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	}
}

// AdminOrderFeed upgrades to a websocket that receives every new order.
func AdminOrderFeed(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		hub.Serve(c.Writer, c.Request)
	}
}
