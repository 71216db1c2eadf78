package handler

import (
	"errors"
	"net/http"

	"go-booking-assistant/internal/repository"
	apperrors "go-booking-assistant/pkg/app_errors"
	"go-booking-assistant/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TicketHandler struct {
	tickets repository.TicketRepository
}

func NewTicketHandler(tickets repository.TicketRepository) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("tickets", h.List)
		router.GET("tickets/:number", h.GetByNumber)
	}
}

func (h *TicketHandler) List(c *gin.Context) {
	tickets, err := h.tickets.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")

	ticket, err := h.tickets.FindByNumber(c, number)
	if err != nil {
		h.handleError(c, err, "GetByNumber")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrTicketNotFound):
		log.Warn("Ticket not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
