package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"thorbench/internal/accuracy"
	"thorbench/internal/report"
)

func browseDocument(t *testing.T) report.Document {
	t.Helper()
	items := []accuracy.ScoredItem{
		{IsCorrect: true, QuestionType: "count", Difficulty: "easy", MovementType: "rotate", FrameCount: 3},
		{IsCorrect: false, QuestionType: "count", Difficulty: "hard", MovementType: "forward", FrameCount: 5},
	}
	r, err := accuracy.Aggregate(items, accuracy.ProfileCounting)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	return report.Build(r, report.Meta{Title: "Counting", Decimals: 2})
}

func press(m Model, key tea.KeyMsg) Model {
	next, _ := m.Update(key)
	return next.(Model)
}

// TestModelCyclesSections verifies tab and shift+tab wrap around the dimensions.
func TestModelCyclesSections(t *testing.T) {
	m := NewModel(browseDocument(t), Options{NoColor: true})
	section, ok := m.Section()
	if !ok || section.Dimension != accuracy.DimQuestionType {
		t.Fatalf("expected question type first, got %v", section.Dimension)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if section, _ := m.Section(); section.Dimension != accuracy.DimDifficulty {
		t.Fatalf("expected difficulty after tab, got %v", section.Dimension)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if section, _ := m.Section(); section.Dimension != accuracy.DimFrameCount {
		t.Fatalf("expected wrap to frame count, got %v", section.Dimension)
	}
	view := m.View()
	for _, token := range []string{"[By Number of Frames]", "5 frames", "Overall Accuracy: 50.00% (1/2)"} {
		if !strings.Contains(view, token) {
			t.Fatalf("expected %q in view:\n%s", token, view)
		}
	}
}

// TestModelQuit verifies q returns the quit command.
func TestModelQuit(t *testing.T) {
	m := NewModel(browseDocument(t), Options{NoColor: true})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

// TestModelEmptyReport verifies an empty report renders without sections.
func TestModelEmptyReport(t *testing.T) {
	r, err := accuracy.Aggregate(nil, accuracy.ProfileFull)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	m := NewModel(report.Build(r, report.Meta{Decimals: 2}), Options{NoColor: true})
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "No groups to show.") {
		t.Fatalf("expected empty message, got:\n%s", m.View())
	}
}
