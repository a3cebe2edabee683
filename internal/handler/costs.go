// internal/handler/costs.go
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

// AddCost records one expense for an existing user. The date defaults to
// the request time when omitted. Entries are immutable once created.
func (h *CostHandler) AddCost(c *gin.Context) {
	var req AddCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		date = parsed
	}

	if _, err := h.store.FindUserByID(c.Request.Context(), req.UserID); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Error("Failed to check user", "error", err, "userid", req.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	entry := domain.CostEntry{
		Description: req.Description,
		Category:    req.Category,
		UserID:      req.UserID,
		Sum:         req.Sum,
		Date:        date,
	}

	created, err := h.store.CreateCost(c.Request.Context(), entry)
	if err != nil {
		slog.Error("Failed to create cost", "error", err, "userid", req.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	slog.Info("Cost created", "userid", created.UserID, "category", created.Category, "sum", created.Sum)
	c.JSON(http.StatusOK, created)
}

// === DTO ===

type AddCostRequest struct {
	Description string  `json:"description" validate:"required,notblank,max=255"`
	Category    string  `json:"category" validate:"required,category"`
	UserID      string  `json:"userid" validate:"required,notblank"`
	Sum         float64 `json:"sum" validate:"required,gt=0"`
	Date        string  `json:"date"`
}
