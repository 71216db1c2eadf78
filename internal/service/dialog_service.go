package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-booking-assistant/internal/model"
	"go-booking-assistant/internal/repository"
)

// TurnResult is the state machine's answer to one utterance: the prompt, the
// candidate options, the state to store, and whether the booking completed on
// this turn.
type TurnResult struct {
	Message   string
	Options   []model.Option
	NextState model.DialogState
	Completed bool
}

// DialogService decides, deterministically, what to ask next given the
// current dialog state and one utterance. Every unrecognized input re-asks;
// no branch fails the conversation.
type DialogService interface {
	HandleTurn(ctx context.Context, state *model.DialogState, message string) (*TurnResult, error)
}

type DialogServiceImpl struct {
	catalog repository.CatalogRepository
}

func NewDialogService(catalog repository.CatalogRepository) DialogService {
	return &DialogServiceImpl{catalog: catalog}
}

func (s *DialogServiceImpl) HandleTurn(ctx context.Context, state *model.DialogState, message string) (*TurnResult, error) {
	if state == nil {
		state = model.NewDialogState()
	}

	switch state.Step {
	case model.StepInitial:
		return s.handleInitial(ctx, state, message)
	case model.StepSelectItem:
		return s.handleSelectItem(ctx, state, message)
	case model.StepSelectDate:
		return s.handleSelectDate(state, message)
	case model.StepSelectTime:
		return s.handleSelectTime(state, message)
	case model.StepSelectSeatType:
		return s.handleSelectSeatType(state, message)
	case model.StepSelectQuantity:
		return s.handleSelectQuantity(state, message)
	default:
		return fallbackResult(), nil
	}
}

func (s *DialogServiceImpl) handleInitial(ctx context.Context, state *model.DialogState, message string) (*TurnResult, error) {
	lower := strings.ToLower(message)

	var category model.Category
	var prompt string
	switch {
	case strings.Contains(lower, "movie"):
		category, prompt = model.CategoryMovie, "Great! Here are the available movies:"
	case strings.Contains(lower, "event"):
		category, prompt = model.CategoryEvent, "Here are our upcoming events:"
	case strings.Contains(lower, "travel"):
		category, prompt = model.CategoryTravel, "Here are our available destinations:"
	default:
		return &TurnResult{
			Message:   "What would you like to book? (Movies, Events, or Travel)",
			Options:   categoryOptions(),
			NextState: *state,
		}, nil
	}

	items, err := s.catalog.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	return &TurnResult{
		Message:   prompt,
		Options:   itemOptions(items),
		NextState: model.DialogState{Step: model.StepSelectItem, Category: category},
	}, nil
}

func (s *DialogServiceImpl) handleSelectItem(ctx context.Context, state *model.DialogState, message string) (*TurnResult, error) {
	items, err := s.catalog.ListByCategory(ctx, state.Category)
	if err != nil {
		return nil, err
	}

	answer := strings.TrimSpace(message)
	for _, item := range items {
		if !strings.EqualFold(item.Label(), answer) {
			continue
		}

		selected := *item
		next := *state
		next.Step = model.StepSelectDate
		next.SelectedItem = &selected

		return &TurnResult{
			Message:   "Great choice! Please select a date:",
			Options:   stringOptions(selected.DateOptions(time.Now())),
			NextState: next,
		}, nil
	}

	return &TurnResult{
		Message:   "I couldn't find that option. Please select from the available options:",
		Options:   itemOptions(items),
		NextState: *state,
	}, nil
}

// handleSelectDate accepts the utterance verbatim; dates are display-only and
// deliberately unvalidated against the offered list.
func (s *DialogServiceImpl) handleSelectDate(state *model.DialogState, message string) (*TurnResult, error) {
	if state.SelectedItem == nil {
		return fallbackResult(), nil
	}

	next := *state
	next.Step = model.StepSelectTime
	next.SelectedDate = strings.TrimSpace(message)

	return &TurnResult{
		Message:   "Please select your preferred time:",
		Options:   stringOptions(state.SelectedItem.TimeOptions()),
		NextState: next,
	}, nil
}

func (s *DialogServiceImpl) handleSelectTime(state *model.DialogState, message string) (*TurnResult, error) {
	if state.SelectedItem == nil {
		return fallbackResult(), nil
	}

	item := state.SelectedItem
	seatClasses := make([]model.SeatClassOption, 0, len(item.SeatClasses))
	for _, key := range item.SeatClassKeys() {
		seatClasses = append(seatClasses, model.SeatClassOption{
			Key:         key,
			Description: item.SeatClasses[key],
			Price:       item.Pricing[key],
		})
	}

	next := *state
	next.Step = model.StepSelectSeatType
	next.SelectedTime = strings.TrimSpace(message)
	next.AvailableSeatClasses = seatClasses

	return &TurnResult{
		Message:   "Please select your preferred seat type:",
		Options:   seatClassOptions(seatClasses),
		NextState: next,
	}, nil
}

// handleSelectSeatType resolves the answer through three tiers, first match
// wins: exact key, then full description, then any word of the description.
func (s *DialogServiceImpl) handleSelectSeatType(state *model.DialogState, message string) (*TurnResult, error) {
	if state.SelectedItem == nil {
		return fallbackResult(), nil
	}

	item := state.SelectedItem
	key := matchSeatClass(item, message)
	if key == "" {
		return &TurnResult{
			Message:   "Please select a valid seat type from the following options:",
			Options:   seatClassOptions(state.AvailableSeatClasses),
			NextState: *state,
		}, nil
	}

	next := *state
	next.Step = model.StepSelectQuantity
	next.SelectedSeatClass = key

	return &TurnResult{
		Message:   "How many tickets would you like?",
		Options:   quantityOptions(),
		NextState: next,
	}, nil
}

func (s *DialogServiceImpl) handleSelectQuantity(state *model.DialogState, message string) (*TurnResult, error) {
	if state.SelectedItem == nil {
		return fallbackResult(), nil
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(message))
	if err != nil || quantity <= 0 {
		return &TurnResult{
			Message:   "Please select a valid number of tickets:",
			Options:   quantityOptions(),
			NextState: *state,
		}, nil
	}

	item := state.SelectedItem
	unitPrice := item.Pricing[state.SelectedSeatClass]
	totalPrice := unitPrice * float64(quantity)

	message = fmt.Sprintf(
		"Perfect! Here's your booking confirmation:\n\n"+
			"%s\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Seat Type: %s\n"+
			"Price per ticket: $%.2f\n"+
			"Number of tickets: %d\n"+
			"Total Price: $%.2f\n\n"+
			"Your booking is confirmed! Would you like to book something else?",
		item.Label(),
		state.SelectedDate,
		state.SelectedTime,
		item.SeatClasses[state.SelectedSeatClass],
		unitPrice,
		quantity,
		totalPrice,
	)

	return &TurnResult{
		Message:   message,
		Options:   stringOptions([]string{"Book Another", "No, thank you"}),
		NextState: *model.NewDialogState(),
		Completed: true,
	}, nil
}

func matchSeatClass(item *model.CatalogItem, message string) string {
	lower := strings.ToLower(strings.TrimSpace(message))
	keys := item.SeatClassKeys()

	for _, key := range keys {
		if strings.EqualFold(key, lower) {
			return key
		}
	}
	for _, key := range keys {
		desc := strings.ToLower(item.SeatClasses[key])
		if lower == desc || strings.Contains(lower, desc) {
			return key
		}
	}
	for _, key := range keys {
		for _, word := range strings.Fields(strings.ToLower(item.SeatClasses[key])) {
			if strings.Contains(lower, word) {
				return key
			}
		}
	}
	return ""
}

func fallbackResult() *TurnResult {
	return &TurnResult{
		Message:   "I'm not sure what you'd like to do. Would you like to start over?",
		Options:   stringOptions([]string{"Yes, start over", "No, thank you"}),
		NextState: *model.NewDialogState(),
	}
}

func categoryOptions() []model.Option {
	return stringOptions([]string{"Movies", "Events", "Travel"})
}

func itemOptions(items []*model.CatalogItem) []model.Option {
	options := make([]model.Option, len(items))
	for i, item := range items {
		options[i] = model.Option{
			ID:          strconv.Itoa(item.ID),
			Title:       item.Label(),
			Price:       item.BasePrice,
			Description: fmt.Sprintf("Starting from $%.2f", item.BasePrice),
		}
	}
	return options
}

func seatClassOptions(seatClasses []model.SeatClassOption) []model.Option {
	options := make([]model.Option, len(seatClasses))
	for i, seat := range seatClasses {
		options[i] = model.Option{
			ID:          seat.Key,
			Title:       fmt.Sprintf("%s - $%.2f", seat.Description, seat.Price),
			Price:       seat.Price,
			Description: fmt.Sprintf("$%.2f per ticket", seat.Price),
		}
	}
	return options
}

func quantityOptions() []model.Option {
	return stringOptions([]string{"1", "2", "3", "4", "5"})
}

func stringOptions(values []string) []model.Option {
	options := make([]model.Option, len(values))
	for i, v := range values {
		options[i] = model.Option{Title: v}
	}
	return options
}
