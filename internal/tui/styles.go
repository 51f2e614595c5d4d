package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the clock view.
type Styles struct {
	Title        lipgloss.Style
	Marker       lipgloss.Style // Plain hour marker.
	MarkerMajor  lipgloss.Style // Quadrant (12, 3, 6, 9) or active marker.
	MarkerNote   lipgloss.Style // Hour with a recorded note.
	Selected     lipgloss.Style
	HourHand     lipgloss.Style
	MinuteHand   lipgloss.Style
	SecondHand   lipgloss.Style
	Dot          lipgloss.Style
	Status       lipgloss.Style
	Secured      lipgloss.Style
	ModalBorder  lipgloss.Style
	ModalTitle   lipgloss.Style
	Footer       lipgloss.Style
	PreviewFrame lipgloss.Style
}

var (
	goldPrimary = lipgloss.Color("#D4AF37")
	goldLight   = lipgloss.Color("#FCF6BA")
	goldDark    = lipgloss.Color("#AA771C")
	noteGold    = lipgloss.Color("#FFD700")
	dim         = lipgloss.Color("#444444")
)

// DefaultStyles is the gold-on-black theme.
func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(goldLight),
		Marker:       lipgloss.NewStyle().Foreground(dim),
		MarkerMajor:  lipgloss.NewStyle().Foreground(goldLight),
		MarkerNote:   lipgloss.NewStyle().Bold(true).Foreground(noteGold),
		Selected:     lipgloss.NewStyle().Reverse(true),
		HourHand:     lipgloss.NewStyle().Foreground(goldPrimary),
		MinuteHand:   lipgloss.NewStyle().Foreground(goldLight),
		SecondHand:   lipgloss.NewStyle().Foreground(goldDark),
		Dot:          lipgloss.NewStyle().Bold(true).Foreground(goldLight),
		Status:       lipgloss.NewStyle().Foreground(goldPrimary),
		Secured:      lipgloss.NewStyle().Bold(true).Foreground(goldLight).Border(lipgloss.RoundedBorder()).BorderForeground(goldPrimary).Padding(0, 1),
		ModalBorder:  lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(goldPrimary).Padding(0, 1),
		ModalTitle:   lipgloss.NewStyle().Bold(true).Foreground(goldPrimary),
		Footer:       lipgloss.NewStyle().Foreground(dim),
		PreviewFrame: lipgloss.NewStyle().BorderTop(true).BorderStyle(lipgloss.NormalBorder()).BorderForeground(goldDark),
	}
}
