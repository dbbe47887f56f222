// Package ui hosts the interactive mood calendar browser.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/noesis/pkg/glyph"
	"tableflip.dev/noesis/pkg/printers"
	"tableflip.dev/noesis/pkg/runner/dashboard"
	"tableflip.dev/noesis/pkg/store"
)

// UI runs the Bubble Tea month browser over the mood calendar.
type UI struct {
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not start ui, no persistence")
	}

	m := model{
		month: time.Now(),
		moods: dashboard.CalendarMoods(n.Persistence.ListEntries(ctx)),
		theme: defaultTheme(),
	}
	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

type theme struct {
	header     lipgloss.Style
	positive   lipgloss.Style
	neutral    lipgloss.Style
	negative   lipgloss.Style
	unanalyzed lipgloss.Style
	empty      lipgloss.Style
	today      lipgloss.Style
	help       lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		positive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		neutral:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		negative:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		unanalyzed: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		today:      lipgloss.NewStyle().Underline(true),
		help:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

type model struct {
	month time.Time
	moods map[string]glyph.Mood
	theme theme
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.month = m.month.AddDate(0, -1, 0)
		case "right", "l":
			m.month = m.month.AddDate(0, 1, 0)
		case "t":
			m.month = time.Now()
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.header.Render(m.month.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(m.theme.help.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	startOffset := int(printers.StartDay(m.month))
	daysInMonth := printers.DaysIn(m.month)
	todayKey := time.Now().Format("2006-01-02")

	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, "  ")
				continue
			}
			key := fmt.Sprintf("%04d-%02d-%02d", m.month.Year(), int(m.month.Month()), day)
			style := m.styleFor(key)
			if key == todayKey {
				style = style.Inherit(m.theme.today)
			}
			cells = append(cells, style.Render(fmt.Sprintf("%2d", day)))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.positive.Render("●") + m.theme.help.Render(" positive  "))
	b.WriteString(m.theme.neutral.Render("◐") + m.theme.help.Render(" neutral  "))
	b.WriteString(m.theme.negative.Render("○") + m.theme.help.Render(" negative  "))
	b.WriteString(m.theme.unanalyzed.Render("◌") + m.theme.help.Render(" unanalyzed"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.help.Render("←/→ month · t today · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m model) styleFor(dayKey string) lipgloss.Style {
	mood, ok := m.moods[dayKey]
	if !ok {
		return m.theme.empty
	}
	switch mood {
	case glyph.Positive:
		return m.theme.positive
	case glyph.Neutral:
		return m.theme.neutral
	case glyph.Negative:
		return m.theme.negative
	case glyph.Unanalyzed:
		return m.theme.unanalyzed
	}
	return m.theme.empty
}
