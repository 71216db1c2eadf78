package service

import (
	"context"
	"time"

	"go-booking-assistant/internal/cache"
	"go-booking-assistant/internal/model"
	"go-booking-assistant/internal/queue"
	"go-booking-assistant/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatService runs one full turn: read-modify-write of the session state,
// transcript logging, and publishing the completed-booking snapshot when the
// confirmation turn is reached.
type ChatService interface {
	ProcessTurn(ctx context.Context, req model.TurnRequest) (*model.TurnReply, error)
}

type ChatServiceImpl struct {
	sessions    cache.SessionStore
	transcripts cache.TranscriptLog
	dialog      DialogService
	bookings    queue.BookingQueue
}

func NewChatService(
	sessions cache.SessionStore,
	transcripts cache.TranscriptLog,
	dialog DialogService,
	bookings queue.BookingQueue,
) ChatService {
	return &ChatServiceImpl{
		sessions:    sessions,
		transcripts: transcripts,
		dialog:      dialog,
		bookings:    bookings,
	}
}

func (s *ChatServiceImpl) ProcessTurn(ctx context.Context, req model.TurnRequest) (*model.TurnReply, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.transcripts.Append(ctx, sessionID, model.TranscriptEntry{Text: req.Message, IsUser: true}); err != nil {
		return nil, err
	}

	result, err := s.dialog.HandleTurn(ctx, state, req.Message)
	if err != nil {
		return nil, err
	}

	if err := s.transcripts.Append(ctx, sessionID, model.TranscriptEntry{Text: result.Message, IsUser: false}); err != nil {
		return nil, err
	}

	if result.Completed {
		s.completeBooking(ctx, sessionID)
	} else if err := s.sessions.Put(ctx, sessionID, &result.NextState); err != nil {
		return nil, err
	}

	return &model.TurnReply{
		Message:   result.Message,
		Options:   result.Options,
		SessionID: sessionID,
	}, nil
}

// completeBooking snapshots the transcript, hands it to the ticket pipeline
// and drops all per-session state. Publish failures are logged, not surfaced:
// the confirmation already happened and the conversation must stay
// recoverable.
func (s *ChatServiceImpl) completeBooking(ctx context.Context, sessionID string) {
	log := logger.WithComponent("service").With(zap.String("session_id", sessionID))

	snapshot, err := s.transcripts.Window(ctx, sessionID)
	if err != nil {
		log.Error("transcript snapshot failed", zap.Error(err))
		snapshot = nil
	}

	if len(snapshot) > 0 {
		booking := &model.BookingCompleted{
			SessionID:   sessionID,
			Transcript:  snapshot,
			CompletedAt: time.Now(),
		}
		if err := s.bookings.PublishBooking(ctx, booking); err != nil {
			log.Error("publish booking failed", zap.Error(err))
		}
	}

	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		log.Warn("session clear failed", zap.Error(err))
	}
	if err := s.transcripts.Clear(ctx, sessionID); err != nil {
		log.Warn("transcript clear failed", zap.Error(err))
	}
}
