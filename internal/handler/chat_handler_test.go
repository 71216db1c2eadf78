package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-booking-assistant/internal/handler"
	"go-booking-assistant/internal/model"
	"go-booking-assistant/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupChatRouter(chatService *mocks.ChatServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewChatHandler(chatService).RegisterRoutes(router)
	return router
}

func postChat(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatHandler_Turn(t *testing.T) {
	t.Run("Success - returns the service reply", func(t *testing.T) {
		chatService := mocks.NewChatServiceMock()
		chatService.On("ProcessTurn", mock.Anything, model.TurnRequest{Message: "a movie please", SessionID: "s1"}).
			Return(&model.TurnReply{
				Message:   "Great! Here are the available movies:",
				Options:   []model.Option{{Title: "Dune"}},
				SessionID: "s1",
			}, nil)

		w := postChat(t, setupChatRouter(chatService), model.TurnRequest{Message: "a movie please", SessionID: "s1"})

		require.Equal(t, http.StatusOK, w.Code)

		var reply model.TurnReply
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
		assert.Equal(t, "Great! Here are the available movies:", reply.Message)
		assert.Equal(t, "s1", reply.SessionID)
		require.Len(t, reply.Options, 1)
		assert.Equal(t, "Dune", reply.Options[0].Title)

		chatService.AssertExpectations(t)
	})

	t.Run("Success - service failure degrades to the category prompt", func(t *testing.T) {
		chatService := mocks.NewChatServiceMock()
		chatService.On("ProcessTurn", mock.Anything, mock.Anything).
			Return(nil, errors.New("redis down"))

		w := postChat(t, setupChatRouter(chatService), model.TurnRequest{Message: "a movie please", SessionID: "s1"})

		require.Equal(t, http.StatusOK, w.Code)

		var reply model.TurnReply
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
		assert.Equal(t, "I understand you're interested in booking. What would you like to book? (Movies, Events, or Travel)", reply.Message)
		assert.Equal(t, "s1", reply.SessionID)
		require.Len(t, reply.Options, 3)
		assert.Equal(t, "Movies", reply.Options[0].Title)
	})

	t.Run("Failed - missing message is a bad request", func(t *testing.T) {
		chatService := mocks.NewChatServiceMock()

		w := postChat(t, setupChatRouter(chatService), gin.H{"session_id": "s1"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request format")
		chatService.AssertNotCalled(t, "ProcessTurn")
	})
}
