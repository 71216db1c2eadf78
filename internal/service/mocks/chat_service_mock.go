package mocks

import (
	"context"

	"go-booking-assistant/internal/model"

	"github.com/stretchr/testify/mock"
)

type ChatServiceMock struct {
	mock.Mock
}

func NewChatServiceMock() *ChatServiceMock {
	return &ChatServiceMock{}
}

func (m *ChatServiceMock) ProcessTurn(ctx context.Context, req model.TurnRequest) (*model.TurnReply, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TurnReply), args.Error(1)
}
