package model

// Step is the discrete state of the dialog state machine for one session.
type Step string

const (
	StepInitial        Step = "initial"
	StepSelectItem     Step = "select_item"
	StepSelectDate     Step = "select_date"
	StepSelectTime     Step = "select_time"
	StepSelectSeatType Step = "select_seat_type"
	StepSelectQuantity Step = "select_quantity"
)

func (s Step) IsValid() bool {
	switch s {
	case StepInitial, StepSelectItem, StepSelectDate, StepSelectTime,
		StepSelectSeatType, StepSelectQuantity:
		return true
	}
	return false
}

// CanTransitionTo reports whether the dialog may move from s to target in one
// turn. Every step may re-enter itself (unrecognized input re-asks) and every
// step may fall back to initial; forward movement never skips a step.
func (s Step) CanTransitionTo(target Step) bool {
	if target == s || target == StepInitial {
		return target.IsValid() && s.IsValid()
	}

	next := map[Step]Step{
		StepInitial:        StepSelectItem,
		StepSelectItem:     StepSelectDate,
		StepSelectDate:     StepSelectTime,
		StepSelectTime:     StepSelectSeatType,
		StepSelectSeatType: StepSelectQuantity,
		StepSelectQuantity: StepInitial,
	}

	forward, ok := next[s]
	return ok && forward == target
}

// SeatClassOption is one seat tier cached in the dialog state for
// re-prompting after an invalid answer.
type SeatClassOption struct {
	Key         string  `json:"key"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// DialogState is the mutable per-session record. SelectedItem holds a value
// copy of the catalog entry from the moment of selection.
type DialogState struct {
	Step                 Step              `json:"step"`
	Category             Category          `json:"category,omitempty"`
	SelectedItem         *CatalogItem      `json:"selected_item,omitempty"`
	SelectedDate         string            `json:"selected_date,omitempty"`
	SelectedTime         string            `json:"selected_time,omitempty"`
	SelectedSeatClass    string            `json:"selected_seat_class,omitempty"`
	AvailableSeatClasses []SeatClassOption `json:"available_seat_classes,omitempty"`
}

// NewDialogState is the state every session starts from.
func NewDialogState() *DialogState {
	return &DialogState{Step: StepInitial}
}
