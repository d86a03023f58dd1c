package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/ayumu/zukan/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Options and the correct
// answer are identified by their text, matching the quiz data model.
type MultiChoice struct {
	Question  string
	Options   []string
	Correct   string
	Selected  int
	Submitted bool
	Chosen    string
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string, correct string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Correct:  correct,
		Selected: 0,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		if len(m.Options) > 0 {
			m.Submitted = true
			m.Chosen = m.Options[m.Selected]
		}
	}

	return m, nil
}

// View renders the component. After submission the correct option is
// highlighted and a wrong choice is marked.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Unselected.Bold(true).Render(m.Question) + "\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := theme.Unselected
		switch {
		case m.Submitted && opt == m.Correct:
			style = theme.Correct
		case m.Submitted && opt == m.Chosen:
			style = theme.Incorrect
		case m.Submitted:
			style = theme.CountBadge
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line) + "\n")
	}

	return b.String()
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Chosen == m.Correct
}
