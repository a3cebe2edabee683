// internal/handler/handler.go
package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/shoham404/Cost-Manager-REStful-Web-Services/internal/storage"
	val "github.com/shoham404/Cost-Manager-REStful-Web-Services/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CombinedStorage interface {
	storage.UserStorage
	storage.CostStorage
	storage.ReportStorage
}

type CostHandler struct {
	store CombinedStorage
}

func NewCostHandler(store CombinedStorage) *CostHandler {
	return &CostHandler{store: store}
}

// RegisterRoutes mounts the API on router. Route names follow the
// original service layout.
func RegisterRoutes(router *gin.Engine, store CombinedStorage) {
	h := NewCostHandler(store)
	api := router.Group("/api")
	{
		api.POST("/users/add", h.AddUser)
		api.GET("/users/:id", h.GetUser)
		api.POST("/add", h.AddCost)
		api.GET("/report", h.GetReport)
		api.GET("/about", h.About)
	}
}

// dateLayouts accepted for birthday and cost dates in request bodies.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", s)
}

func validateStruct(v any) error {
	if err := val.Validate.Struct(v); err != nil {
		var errs []string
		for _, e := range err.(validator.ValidationErrors) {
			errs = append(errs, fieldErrorToString(e))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(errs, "; "))
	}
	return nil
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "category":
		return fmt.Sprintf("%s must be a known category", e.Field())
	case "maritalstatus":
		return fmt.Sprintf("%s must be one of: single, married, divorced, widowed", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
