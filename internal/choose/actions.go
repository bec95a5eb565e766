package choose

// Action is a single state change requested by an input event
type Action interface {
	Type() string
}

// Direction of a highlight move
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// CancelAction discards the selection and ends the session
type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }

// ConfirmAction ends the session keeping the selection
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

// InsertTextAction appends typed text to the search
type InsertTextAction struct {
	Text string
}

func (a InsertTextAction) Type() string { return "insert_text" }

// EraseAction removes the last character of the search
type EraseAction struct{}

func (a EraseAction) Type() string { return "erase" }

// NavigateAction moves the highlighted row
type NavigateAction struct {
	Direction Direction
}

func (a NavigateAction) Type() string { return "navigate" }

// ToggleOneAction flips the highlighted entry (multi-select only)
type ToggleOneAction struct{}

func (a ToggleOneAction) Type() string { return "toggle_one" }

// ToggleAllAction flips every displayed entry (multi-select only)
type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }
