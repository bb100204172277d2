package handlers

import (
	"net/http"

	"sheetbase/internal/models"
	"sheetbase/internal/responses"
	"sheetbase/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type registerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"display_name" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	user := &models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	}
	tokens, err := h.userService.Register(c.Request.Context(), user)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{
		"user":   user,
		"tokens": tokens,
	}, "User registered successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	user, tokens, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"user":   user,
		"tokens": tokens,
	}, "Logged in successfully")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("jti")
	if jti == "" {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	if err := h.userService.Logout(c.Request.Context(), jti); err != nil {
		responses.FromError(c, err)
		return
	}

	responses.Success(c, http.StatusOK, nil, "Logged out successfully")
}
