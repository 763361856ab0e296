package administer

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/clinicli/scl90/internal/catalog"
	"github.com/clinicli/scl90/internal/results"
	"github.com/clinicli/scl90/internal/router"
	"github.com/clinicli/scl90/internal/scoring"
	"github.com/clinicli/scl90/internal/screen"
	"github.com/clinicli/scl90/internal/screens/summary"
	"github.com/clinicli/scl90/internal/ui/components"
	"github.com/clinicli/scl90/internal/ui/layout"
)

// Screen collects one rating per item, one item at a time. Abandoning
// the administration leaves the store untouched; a record only exists
// once all items have been answered.
type Screen struct {
	store       *results.Store
	participant string

	item      int // 1-based, current item
	responses scoring.ResponseSet
	input     components.RatingInput

	errNote     string
	confirmQuit bool
	saving      bool
	saveErr     error
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.ProgressProvider = (*Screen)(nil)

// New creates an administration screen for one participant.
func New(store *results.Store, participant string) *Screen {
	return &Screen{
		store:       store,
		participant: participant,
		item:        catalog.FirstItem,
		responses:   make(scoring.ResponseSet, catalog.ItemCount),
		input:       components.NewRatingInput(scoring.MinResponse, scoring.MaxResponse),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Title() string {
	return "Questionnaire"
}

// Progress feeds the header's item counter.
func (s *Screen) Progress() string {
	if s.item > catalog.LastItem {
		return ""
	}
	return fmt.Sprintf("Item %d/%d", s.item, catalog.ItemCount)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon"},
			{Key: "N", Description: "Resume"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-4", Description: "Rate"},
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordSavedMsg:
		return s.handleSaved(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.confirmQuit && !s.saving {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.saveErr != nil {
		// Any key leaves after a failed save.
		return s, tea.Quit
	}
	if s.saving {
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			// No partial record is ever written.
			return s, tea.Quit
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submitRating()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) submitRating() (screen.Screen, tea.Cmd) {
	if s.input.Empty() {
		return s, nil
	}

	v, err := s.input.Rating()
	if err != nil {
		s.errNote = fmt.Sprintf("Please enter a number from %d to %d.",
			scoring.MinResponse, scoring.MaxResponse)
		s.input.Reset()
		return s, nil
	}

	s.errNote = ""
	s.responses[s.item] = v
	s.item++
	s.input.Reset()

	if s.item > catalog.LastItem {
		s.saving = true
		return s, s.saveRecord()
	}
	return s, nil
}

// saveRecord scores the responses, appends the record, and flushes the
// store.
func (s *Screen) saveRecord() tea.Cmd {
	store := s.store
	participant := s.participant
	responses := s.responses
	return func() tea.Msg {
		rec, err := results.Build(participant, responses)
		if err != nil {
			return recordSavedMsg{Err: err}
		}
		if err := store.Append(rec); err != nil {
			return recordSavedMsg{Err: err}
		}
		return recordSavedMsg{Record: rec}
	}
}

func (s *Screen) handleSaved(msg recordSavedMsg) (screen.Screen, tea.Cmd) {
	s.saving = false
	if msg.Err != nil {
		s.saveErr = msg.Err
		return s, nil
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(msg.Record)}
	}
}
