package handlers

import (
	"errors"
	"net/http"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account and token endpoints.
type UserHandler struct {
	Svc    user.Service
	Logger *zap.Logger
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.Service, logger *zap.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// RegisterUser handles POST /api/users/register.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		h.Logger.Error("RegisterUser: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": u.ID})
}

// IssueToken handles POST /api/users/login.
func (h *UserHandler) IssueToken(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Svc.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
			return
		}
		h.Logger.Error("IssueToken: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// ListUsers handles GET /api/users (admin only).
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListUsers: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// IsAdmin handles GET /api/users/admin/:email.
func (h *UserHandler) IsAdmin(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.Svc.IsAdmin(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("IsAdmin: lookup failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// PromoteToAdmin handles PUT /api/users/admin/:id (admin only).
func (h *UserHandler) PromoteToAdmin(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.PromoteToAdmin(c.Request.Context(), id); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.Logger.Error("PromoteToAdmin: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified": true})
}
