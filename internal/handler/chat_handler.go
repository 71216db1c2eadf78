package handler

import (
	"net/http"

	"go-booking-assistant/internal/model"
	"go-booking-assistant/internal/service"
	"go-booking-assistant/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler struct {
	service service.ChatService
}

func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("chat", h.Turn)
	}
}

// Turn handles one utterance. Engine failures never surface as errors: the
// reply degrades to the top-level category prompt so the conversation always
// has a way forward.
func (h *ChatHandler) Turn(c *gin.Context) {
	var req model.TurnRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	reply, err := h.service.ProcessTurn(c, req)
	if err != nil {
		logger.WithComponent("handler").With(zap.String("operation", "Turn"), zap.Error(err)).
			Error("turn failed, replying with category prompt")
		c.JSON(http.StatusOK, fallbackReply(req.SessionID))
		return
	}

	c.JSON(http.StatusOK, reply)
}

func fallbackReply(sessionID string) *model.TurnReply {
	return &model.TurnReply{
		Message: "I understand you're interested in booking. What would you like to book? (Movies, Events, or Travel)",
		Options: []model.Option{
			{Title: "Movies"},
			{Title: "Events"},
			{Title: "Travel"},
		},
		SessionID: sessionID,
	}
}
