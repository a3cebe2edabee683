// internal/handler/users.go
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shoham404/Cost-Manager-REStful-Web-Services/internal/domain"
	"github.com/shoham404/Cost-Manager-REStful-Web-Services/internal/storage"

	"github.com/gin-gonic/gin"
)

// AddUser creates a user. All fields are mandatory; a duplicate id is a
// conflict and leaves the stored user untouched.
func (h *CostHandler) AddUser(c *gin.Context) {
	var req AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	birthday, err := parseDate(req.Birthday)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := domain.User{
		ID:            req.ID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Birthday:      birthday,
		MaritalStatus: req.MaritalStatus,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := h.store.CreateUser(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateUser) {
			c.JSON(http.StatusConflict, gin.H{"error": "User ID already exists"})
			return
		}
		slog.Error("Failed to create user", "error", err, "id", req.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	slog.Info("User created", "id", created.ID)
	c.JSON(http.StatusOK, created)
}

// GetUser returns a user together with the naive age and the sum of all
// their cost entries (0 when there are none).
func (h *CostHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.store.FindUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Error("Failed to fetch user", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	total, err := h.store.TotalCost(c.Request.Context(), id)
	if err != nil {
		slog.Error("Failed to compute total cost", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"age":        user.Age(),
		"total_cost": total,
	})
}

// === DTO ===

type AddUserRequest struct {
	ID            string `json:"id" validate:"required,notblank"`
	FirstName     string `json:"first_name" validate:"required,min=2"`
	LastName      string `json:"last_name" validate:"required,min=2"`
	Birthday      string `json:"birthday" validate:"required"`
	MaritalStatus string `json:"marital_status" validate:"required,maritalstatus"`
}
