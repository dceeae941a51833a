package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models/dto"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/services"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/middleware"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/apperrors"
)

// AuthController handles registration, login and profile requests
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func userResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		InstitutionalID: user.InstitutionalID,
		Name:            user.Name,
		Role:            string(user.Role),
	}
}

// Register creates a new account and returns a token for it
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	token, user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "Registration successful",
		Token:   token,
		User:    userResponse(user),
	})
}

// Login verifies credentials and returns a token
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	token, user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    userResponse(user),
	})
}

// Profile returns the authenticated user's own record
func (c *AuthController) Profile(ctx *gin.Context) {
	user, err := c.authService.Profile(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{
		Success: true,
		User:    userResponse(user),
	})
}
