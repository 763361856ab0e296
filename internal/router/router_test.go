package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/clinicli/scl90/internal/screen"
)

// stubScreen is a minimal screen.Screen for router tests.
type stubScreen struct {
	name     string
	initRuns int
	lastMsg  tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRuns++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.name }
func (s *stubScreen) Title() string                 { return s.name }

func TestPushPop(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}
	r := New(first)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	r.Push(second)
	if r.Depth() != 2 {
		t.Errorf("Depth after push = %d, want 2", r.Depth())
	}
	if r.Active() != second {
		t.Error("Active is not the pushed screen")
	}
	if second.initRuns != 1 {
		t.Errorf("pushed screen Init ran %d times, want 1", second.initRuns)
	}

	r.Pop()
	if r.Active() != first {
		t.Error("Active after pop is not the original screen")
	}
}

func TestPopNeverEmptiesStack(t *testing.T) {
	r := New(&stubScreen{name: "only"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth after pop on single-screen stack = %d, want 1", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}
	replacement := &stubScreen{name: "replacement"}
	r := New(first)
	r.Push(second)

	r.Replace(replacement)
	if r.Depth() != 2 {
		t.Errorf("Depth after replace = %d, want 2", r.Depth())
	}
	if r.Active() != replacement {
		t.Error("Active is not the replacement screen")
	}
	if replacement.initRuns != 1 {
		t.Errorf("replacement Init ran %d times, want 1", replacement.initRuns)
	}

	// Popping the replacement lands on the original bottom screen.
	r.Pop()
	if r.Active() != first {
		t.Error("screen replaced out of the stack came back on pop")
	}
}

func TestUpdateRoutesNavigationMessages(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}
	r := New(first)

	r.Update(PushScreenMsg{Screen: second})
	if r.Active() != second {
		t.Error("PushScreenMsg did not push")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != first {
		t.Error("PopScreenMsg did not pop")
	}

	replacement := &stubScreen{name: "replacement"}
	r.Update(ReplaceScreenMsg{Screen: replacement})
	if r.Active() != replacement {
		t.Error("ReplaceScreenMsg did not replace")
	}
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}
	r := New(first)
	r.Push(second)

	msg := tea.KeyPressMsg{Code: tea.KeyEnter}
	r.Update(msg)

	if second.lastMsg == nil {
		t.Error("active screen did not receive the message")
	}
	if first.lastMsg != nil {
		t.Error("inactive screen received the message")
	}
}
