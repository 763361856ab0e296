package components

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// RatingInput wraps bubbles/textinput for a single-digit distress rating
// on the 0-4 scale. Non-digit keys are swallowed; range validation
// happens at Rating() so out-of-range digits can be reported back to
// the respondent instead of silently dropped.
type RatingInput struct {
	Model textinput.Model
	min   int
	max   int
}

// NewRatingInput creates a focused input accepting one digit.
func NewRatingInput(min, max int) RatingInput {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d-%d", min, max)
	ti.CharLimit = 1
	ti.Focus()

	return RatingInput{Model: ti, min: min, max: max}
}

// Init returns the initial command.
func (r RatingInput) Init() tea.Cmd {
	return r.Model.Focus()
}

// Update handles messages, filtering out non-digit printable keys.
func (r RatingInput) Update(msg tea.Msg) (RatingInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return r, nil
		}
	}

	var cmd tea.Cmd
	r.Model, cmd = r.Model.Update(msg)
	return r, cmd
}

// View renders the input.
func (r RatingInput) View() string {
	return r.Model.View()
}

// Empty reports whether nothing has been typed.
func (r RatingInput) Empty() bool {
	return r.Model.Value() == ""
}

// Rating parses the typed value and checks it against the scale range.
func (r RatingInput) Rating() (int, error) {
	v, err := strconv.Atoi(r.Model.Value())
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", r.Model.Value())
	}
	if v < r.min || v > r.max {
		return 0, fmt.Errorf("rating %d outside %d-%d", v, r.min, r.max)
	}
	return v, nil
}

// Reset clears the input for the next item.
func (r *RatingInput) Reset() {
	r.Model.SetValue("")
}
