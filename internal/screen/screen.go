// Package screen defines what every zukan screen implements. Screens
// render only their content area; the app model draws the header and
// footer around them.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ayumu/zukan/internal/ui/layout"
)

type Screen interface {
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area between header and footer.
	View(width, height int) string

	// Title is shown centered in the header bar.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
// Screens without it get the default hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
