package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salestrack-api/internal/application/service"
	"github.com/sangkips/salestrack-api/internal/presentation/http/dto/request"
	"github.com/sangkips/salestrack-api/internal/presentation/http/dto/response"
)

// AuthHandler handles operator login
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges operator credentials for a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", out)
}
