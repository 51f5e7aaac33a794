package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chitsa/order-service/internal/apperrors"
	"github.com/chitsa/order-service/internal/auth"
	"github.com/chitsa/order-service/internal/orders"
)

// RegisterOrdersRoutes registers the order API under /api/orders. All order
// routes require an authenticated subject, which is used as the customer id.
func RegisterOrdersRoutes(r *gin.Engine, cfg HandlerConfig) {
	grp := r.Group("/api/orders")
	if cfg.Auth != nil {
		grp.Use(cfg.Auth)
	}

	grp.POST("/create", createOrder(cfg.Orders))
	grp.GET("/customer-orders", customerOrders(cfg.Orders))
	grp.GET("/details/:orderId", orderDetails(cfg.Orders))
	grp.DELETE("/delete/:orderId", deleteOrder(cfg.Orders))
}

func createOrder(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := requireSubject(c)
		if !ok {
			return
		}

		var req orders.OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order request: malformed request body"})
			return
		}

		if err := svc.Create(c.Request.Context(), &req, customerID); err != nil {
			if apperrors.KindOf(err) == apperrors.KindInvalidArgument {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order request: " + apperrors.ClientMessage(err)})
				return
			}
			writeError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully."})
	}
}

func customerOrders(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := requireSubject(c)
		if !ok {
			return
		}

		found, err := svc.ListByCustomer(c.Request.Context(), customerID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, found)
	}
}

func orderDetails(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.GetItems(c.Request.Context(), c.Param("orderId"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func deleteOrder(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := requireSubject(c)
		if !ok {
			return
		}

		if err := svc.Delete(c.Request.Context(), c.Param("orderId"), customerID); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully."})
	}
}

func requireSubject(c *gin.Context) (string, bool) {
	subject := auth.Subject(c)
	if subject == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token not provided"})
		return "", false
	}
	return subject, true
}
