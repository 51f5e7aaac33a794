package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/chitsa/order-service/internal/apperrors"
	"github.com/chitsa/order-service/internal/users"
)

// RegisterUsersRoutes registers the public sign-up and login routes.
func RegisterUsersRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validatorv10.New()

	r.POST("/api/users/signUp", signUp(cfg.Users, v))
	r.POST("/api/users/login", login(cfg.Users, v))
}

func signUp(svc *users.Service, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req users.RegisterRequest
		if err := bindAndValidate(c, &req, v); err != nil {
			return
		}

		username, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindInvalidArgument {
				writeError(c, err)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred while creating the user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("User created successfully with Username: %s", username),
		})
	}
}

func login(svc *users.Service, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req users.LoginRequest
		if err := bindAndValidate(c, &req, v); err != nil {
			return
		}

		tokens, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindAuthentication {
				writeError(c, err)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred during login"})
			return
		}

		c.JSON(http.StatusOK, tokens)
	}
}
