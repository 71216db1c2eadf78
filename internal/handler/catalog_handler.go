package handler

import (
	"errors"
	"net/http"

	"go-booking-assistant/internal/model"
	"go-booking-assistant/internal/repository"
	apperrors "go-booking-assistant/pkg/app_errors"
	"go-booking-assistant/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog repository.CatalogRepository
}

func NewCatalogHandler(catalog repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("catalog/:category", h.ListByCategory)
	}
}

func (h *CatalogHandler) ListByCategory(c *gin.Context) {
	category := model.Category(c.Param("category"))

	items, err := h.catalog.ListByCategory(c, category)
	if err != nil {
		h.handleError(c, err, "ListByCategory")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidCategory):
		log.Warn("Invalid category")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
