package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/fleetops/fleet-backoffice/internal/auth"
	"github.com/fleetops/fleet-backoffice/internal/db"
	"github.com/fleetops/fleet-backoffice/internal/middleware"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

// AuthHandler handles login, registration, and profile lookup.
type AuthHandler struct {
	Users db.UserStore
	Auth  *auth.Service
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(users db.UserStore, authService *auth.Service) *AuthHandler {
	return &AuthHandler{Users: users, Auth: authService}
}

// Login exchanges credentials for a signed token. Unknown usernames and
// wrong passwords return the same message so the endpoint leaks nothing.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.Users.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondStoreError(c, err, "User", "")
		return
	}
	if !user.IsActive {
		respondError(c, http.StatusUnauthorized, "Account is disabled")
		return
	}
	if !h.Auth.CheckPassword(req.Password, user.PasswordHash) {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Auth.GenerateToken(user)
	if err != nil {
		log.WithError(err).Error("failed to generate token")
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}
	refreshToken, err := h.Auth.GenerateRefreshToken()
	if err != nil {
		log.WithError(err).Error("failed to generate refresh token")
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	if err := h.Users.UpdateLastLogin(c.Request.Context(), user.ID.Hex()); err != nil {
		log.WithError(err).Warn("failed to stamp last login")
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User:         *user,
	})
}

// Register creates a new back-office account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	hash, err := h.Auth.HashPassword(req.Password)
	if err != nil {
		log.WithError(err).Error("failed to hash password")
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := h.Users.Insert(c.Request.Context(), user); err != nil {
		respondStoreError(c, err, "User", "User with this username or email already exists")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Profile returns the authenticated user's account.
func (h *AuthHandler) Profile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		respondStoreError(c, err, "User", "")
		return
	}
	c.JSON(http.StatusOK, user)
}
