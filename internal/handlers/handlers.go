package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chitsa/order-service/internal/apperrors"
	"github.com/chitsa/order-service/internal/orders"
	"github.com/chitsa/order-service/internal/users"
)

// HandlerConfig groups the explicitly constructed collaborators the routes
// depend on. Everything is built once at startup and passed in; there is no
// implicit registry.
type HandlerConfig struct {
	Orders *orders.Service
	Users  *users.Service
	Auth   gin.HandlerFunc
}

// writeError maps a classified error onto an HTTP status and a client-safe
// body. Unclassified errors become a generic 500.
func writeError(c *gin.Context, err error) {
	var ae *apperrors.Error
	if !errors.As(err, &ae) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch ae.Kind {
	case apperrors.KindInvalidArgument:
		status = http.StatusBadRequest
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindUnauthorized:
		status = http.StatusForbidden
	case apperrors.KindAuthentication:
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": ae.Message})
}
