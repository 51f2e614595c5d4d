package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/chronos/internal/clock"
	"github.com/aretw0/chronos/internal/markdown"
)

const (
	title  = "CHRONOS PLANTACERIUM"
	footer = "LIFE BANK EXPERIENCE V1 • TIME ANCHOR SYSTEM"

	securedBanner = "TIME VAULT SECURED"

	// Dial grid. Terminal cells are about twice as tall as wide, so columns
	// are scaled by two to keep the face round.
	dialRows   = 21
	dialCols   = 2*dialRows + 1
	dialRadius = 9.0 // Rows between the center and the minute dot.

	hourHandLength   = clock.MarkerRadius * 0.5
	minuteHandLength = clock.MarkerRadius * 0.8
	secondHandLength = clock.MarkerRadius * 0.95
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.dial())
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(m.modal())
	} else {
		b.WriteString(m.preview())
	}
	b.WriteString("\n")

	if m.secured {
		b.WriteString("\n")
		b.WriteString(m.styles.Secured.Render(securedBanner))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(footer))
	if !m.editing {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m Model) header() string {
	half := "AM"
	if m.half() == 12 {
		half = "PM"
	}
	return m.styles.Title.Render(title) + "  " + m.styles.Status.Render(half)
}

func (m Model) status() string {
	f := m.face
	return m.styles.Status.Render(fmt.Sprintf(
		"%s  ·  life earned %ss  ·  day %.1f%%",
		f.Time.Format("15:04:05"),
		strconv.FormatInt(int64(f.Experience), 10),
		f.DayProgress*100,
	))
}

// grid is a character canvas. Each cell holds the rendered text for one
// column; an empty cell is the tail of a wider label to its left.
type grid [][]string

func newGrid() grid {
	g := make(grid, dialRows)
	for r := range g {
		g[r] = make([]string, dialCols)
		for c := range g[r] {
			g[r][c] = " "
		}
	}
	return g
}

// cell maps a face offset (face units from the center) to a grid position.
func cell(dx, dy float64) (row, col int) {
	scale := dialRadius / clock.DotRadius
	row = dialRows/2 + int(math.Round(dy*scale))
	col = dialCols/2 + int(math.Round(dx*scale*2))
	return row, col
}

func (g grid) set(row, col int, s string) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return
	}
	g[row][col] = s
}

func (g grid) hand(deg, length float64, glyph string) {
	for r := 1.0; r <= length; r += clock.DotRadius / dialRadius / 2 {
		row, col := cell(clock.Polar(deg, r))
		g.set(row, col, glyph)
	}
}

func (g grid) String() string {
	lines := make([]string, len(g))
	for r, row := range g {
		lines[r] = strings.TrimRight(strings.Join(row, ""), " ")
	}
	return strings.Join(lines, "\n")
}

func (m Model) dial() string {
	g := newGrid()
	f := m.face

	g.hand(f.SecondDeg, secondHandLength, m.styles.SecondHand.Render("·"))
	g.hand(f.MinuteDeg, minuteHandLength, m.styles.MinuteHand.Render("•"))
	g.hand(f.HourDeg, hourHandLength, m.styles.HourHand.Render("█"))

	row, col := cell(f.DotX-clock.Center, f.DotY-clock.Center)
	g.set(row, col, m.styles.Dot.Render("●"))

	half := m.half()
	for h := 0; h < 12; h++ {
		hour := half + h
		label := strconv.Itoa(clock.DisplayHour(hour))
		row, col := cell(clock.Polar(clock.MarkerAngle(h), clock.MarkerRadius))
		if len(label) > 1 {
			col--
		}
		g.set(row, col, m.markerStyle(hour).Render(label))
		for i := 1; i < len(label); i++ {
			g.set(row, col+i, "")
		}
	}

	row, col = cell(0, 0)
	g.set(row, col, m.styles.HourHand.Render("◆"))
	return g.String()
}

func (m Model) markerStyle(hour int) lipgloss.Style {
	var style lipgloss.Style
	switch {
	case m.hasNote(hour):
		style = m.styles.MarkerNote
	case clock.Active(m.face.Time, hour), hour%3 == 0:
		style = m.styles.MarkerMajor
	default:
		style = m.styles.Marker
	}
	if hour == m.selected {
		return m.styles.Selected.Inherit(style)
	}
	return style
}

func (m Model) hasNote(hour int) bool {
	k, err := m.store.KeyForHour(hour)
	if err != nil {
		return false
	}
	return m.store.Has(k)
}

func (m Model) previewWidth() int {
	if m.width < 24 {
		return 20
	}
	return m.width - 4
}

func (m Model) preview() string {
	heading := m.styles.ModalTitle.Render(fmt.Sprintf("Hour %d", clock.DisplayHour(m.selected)))
	note, ok := m.store.Get(m.selectedKey())
	if !ok || strings.TrimSpace(note.Content) == "" {
		return heading + "\n" + m.styles.Footer.Render("no observation recorded")
	}
	body := markdown.Terminal(note.Content, markdown.DefaultStyles, m.previewWidth())
	return heading + "\n" + m.styles.PreviewFrame.Render(body)
}

func (m Model) modal() string {
	heading := m.styles.ModalTitle.Render(
		fmt.Sprintf("Temporal Observation · Hour %d", clock.DisplayHour(m.selected)),
	)
	content := lipgloss.JoinVertical(lipgloss.Left,
		heading,
		"",
		m.editor.View(),
		"",
		m.help.ShortHelpView(m.keys.editorHelp()),
	)
	return m.styles.ModalBorder.Render(content)
}
