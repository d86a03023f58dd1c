// Package theme holds the zukan palette and the shared lipgloss styles.
package theme

import "charm.land/lipgloss/v2"

// Palette, calm encyclopedia tones on a dark slate background.
var (
	Primary   = lipgloss.Color("#38BDF8") // sky
	Secondary = lipgloss.Color("#34D399") // emerald
	Accent    = lipgloss.Color("#FBBF24") // amber, the favorite star
	Error     = lipgloss.Color("#F43F5E") // rose
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)

	Correct   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// Card frames the term detail view.
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Breadcrumb     = lipgloss.NewStyle().Foreground(TextDim)
	BreadcrumbHead = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	Favorite      = lipgloss.NewStyle().Foreground(Accent)
	CategoryBadge = lipgloss.NewStyle().Foreground(Secondary)
	CountBadge    = lipgloss.NewStyle().Foreground(TextDim)
)
