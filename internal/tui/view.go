package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch m.phase {
	case phaseName:
		content = m.renderNamePrompt()
	case phaseLoading:
		content = m.renderLoading()
	case phaseAlreadyPlayed:
		content = m.renderAlreadyPlayed()
	case phaseQuestion:
		content = m.renderQuestion()
	case phaseFeedback:
		content = m.renderFeedback()
	case phaseResults:
		content = m.renderResults()
	case phaseError:
		content = m.renderError()
	}

	v.SetContent(content)
	return v
}

func (m Model) renderNamePrompt() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Width(m.width).Render("COURTSIDE"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Width(m.width).Render("Daily NBA trivia"))
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, "Name: "+m.nameInput.View()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Width(m.width).Align(lipgloss.Center).Render("Enter to continue · Esc to quit"))
	return b.String()
}

func (m Model) renderLoading() string {
	frame := spinnerFrames[m.spinner%len(spinnerFrames)]
	return dimStyle.
		Width(m.width).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("\n\n\n%s Preparing today's quiz...", frame))
}

func (m Model) renderAlreadyPlayed() string {
	state := m.prior
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Width(m.width).Render("Already played today"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Width(m.width).Align(lipgloss.Center).
		Render(fmt.Sprintf("You scored %d earlier today.", state.LastScore)))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Width(m.width).Align(lipgloss.Center).
		Render(fmt.Sprintf("Streak: %d (best %d)", state.CurrentStreak, state.LongestStreak)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Width(m.width).Align(lipgloss.Center).Render("Come back tomorrow! Press any key to exit."))
	return b.String()
}

func (m Model) renderQuestion() string {
	questions := m.session.Questions()
	q := questions[m.current]

	remaining := time.Until(m.deadline)
	if remaining < 0 {
		remaining = 0
	}

	var b strings.Builder

	infoLeft := selectedStyle.Render(fmt.Sprintf("  Q %d/%d", m.current+1, len(questions)))
	infoRight := dimStyle.Render(fmt.Sprintf("%2ds  ", int(remaining.Seconds())))
	pad := m.width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight)
	if pad < 0 {
		pad = 0
	}
	b.WriteString(infoLeft + strings.Repeat(" ", pad) + infoRight)
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(strings.Repeat("─", max(m.width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(bodyStyle.Width(m.width).Align(lipgloss.Center).Bold(true).Render(q.Text))
	b.WriteString("\n\n")

	var choices strings.Builder
	for i, choice := range q.Choices {
		prefix := "  "
		if i == m.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, choice)
		if i == m.selected {
			choices.WriteString(selectedStyle.Render(line))
		} else {
			choices.WriteString(bodyStyle.Render(line))
		}
		choices.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, choices.String()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Width(m.width).Align(lipgloss.Center).Render("Select (1-4) or use arrows + Enter"))

	return b.String()
}

func (m Model) renderFeedback() string {
	q := m.session.Questions()[m.current]

	var b strings.Builder
	b.WriteString("\n\n")

	switch {
	case m.timedOut:
		b.WriteString(incorrectStyle.Width(m.width).Align(lipgloss.Center).Render("Time's up!"))
	case m.lastCorrect:
		b.WriteString(correctStyle.Width(m.width).Align(lipgloss.Center).Render("Correct!"))
	default:
		b.WriteString(incorrectStyle.Width(m.width).Align(lipgloss.Center).Render("Not quite"))
	}

	if !m.lastCorrect {
		b.WriteString("\n")
		b.WriteString(dimStyle.Width(m.width).Align(lipgloss.Center).
			Render(fmt.Sprintf("Correct answer: %s", q.Answer)))
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Width(m.width).Align(lipgloss.Center).Render("Press any key to continue..."))
	return b.String()
}

func (m Model) renderResults() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Width(m.width).Render("Final score"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Width(m.width).Align(lipgloss.Center).Bold(true).
		Render(fmt.Sprintf("%d / %d", m.result.Score, m.result.Total)))
	b.WriteString("\n\n")

	out := m.outcome
	switch {
	case out.Passed:
		b.WriteString(correctStyle.Width(m.width).Align(lipgloss.Center).
			Render(fmt.Sprintf("You passed! Streak: %d", out.CurrentStreak)))
	case out.StreakBroken:
		b.WriteString(incorrectStyle.Width(m.width).Align(lipgloss.Center).
			Render("Streak broken. Back to zero."))
	default:
		b.WriteString(incorrectStyle.Width(m.width).Align(lipgloss.Center).
			Render("No streak this time."))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Width(m.width).Align(lipgloss.Center).
		Render(fmt.Sprintf("Longest streak: %d", out.LongestStreak)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Width(m.width).Align(lipgloss.Center).Render("Press any key to exit."))
	return b.String()
}

func (m Model) renderError() string {
	return incorrectStyle.
		Width(m.width).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("\n\n\nError: %s\n\nPress any key to exit.", m.errMsg))
}
