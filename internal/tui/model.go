// Package tui renders the daily quiz in the terminal. It is a thin
// presentation layer: all scoring and streak decisions live in the quiz and
// streak packages; the countdown here only decides when an answer is
// treated as absent.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/courtside/internal/app"
	"github.com/abhisek/courtside/internal/daily"
	"github.com/abhisek/courtside/internal/quiz"
	"github.com/abhisek/courtside/internal/store"
	"github.com/abhisek/courtside/internal/streak"
)

// questionTime is how long the player has to answer each question.
const questionTime = 20 * time.Second

type phase int

const (
	phaseName phase = iota
	phaseAlreadyPlayed
	phaseLoading
	phaseQuestion
	phaseFeedback
	phaseResults
	phaseError
)

// Model is the root Bubble Tea model for a quiz run.
type Model struct {
	pipeline *app.Pipeline
	tracker  *streak.Tracker

	phase    phase
	width    int
	height   int
	errMsg   string
	spinner  int
	loadedAt time.Time

	player    string
	nameInput textinput.Model
	prior     *store.PlayerState

	quiz     *daily.Quiz
	session  *quiz.Session
	current  int
	selected int
	deadline time.Time

	lastChosen  string
	lastCorrect bool
	timedOut    bool

	result  *quiz.Result
	outcome *streak.Outcome
	already *streak.AlreadyPlayedError
}

// NewModel creates the quiz model. If player is empty the model prompts for
// a name first.
func NewModel(pipeline *app.Pipeline, tracker *streak.Tracker, player string) Model {
	input := textinput.New()
	input.Placeholder = "Your name"
	input.CharLimit = 32

	m := Model{
		pipeline:  pipeline,
		tracker:   tracker,
		player:    player,
		nameInput: input,
		phase:     phaseName,
	}
	if player != "" {
		m.phase = phaseLoading
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.phase == phaseLoading {
		return tea.Batch(m.startRun(), spinnerTick())
	}
	return m.nameInput.Focus()
}

// startRun checks for a prior play today and otherwise fetches the quiz.
func (m Model) startRun() tea.Cmd {
	pipeline, tracker, player := m.pipeline, m.tracker, m.player
	return func() tea.Msg {
		ctx := context.Background()

		state, err := tracker.Get(ctx, player)
		if err != nil {
			return quizReadyMsg{Err: err}
		}
		if state.LastPlayed == pipeline.TodayKey().Day {
			return streakDoneMsg{Err: &streak.AlreadyPlayedError{
				Player: player,
				Day:    state.LastPlayed,
				State:  *state,
			}}
		}

		q, err := pipeline.TodayQuiz(ctx)
		return quizReadyMsg{Quiz: q, Err: err}
	}
}

// completeRun applies the finished session to the streak record.
func (m Model) completeRun(result *quiz.Result) tea.Cmd {
	pipeline, tracker, player := m.pipeline, m.tracker, m.player
	return func() tea.Msg {
		outcome, err := tracker.Complete(context.Background(), player, pipeline.TodayKey().Day, result.Score)
		return streakDoneMsg{Outcome: outcome, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinnerTickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		m.spinner++
		return m, spinnerTick()

	case quizReadyMsg:
		return m.handleQuizReady(msg)

	case timerTickMsg:
		return m.handleTimerTick()

	case streakDoneMsg:
		return m.handleStreakDone(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleQuizReady(msg quizReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.phase = phaseError
		m.errMsg = msg.Err.Error()
		return m, nil
	}

	m.quiz = msg.Quiz
	m.session = quiz.NewSession(msg.Quiz.Questions)
	m.current = 0
	m.selected = 0
	m.loadedAt = time.Now()
	m.deadline = time.Now().Add(questionTime)
	m.phase = phaseQuestion
	return m, timerTick()
}

func (m Model) handleTimerTick() (tea.Model, tea.Cmd) {
	if m.phase != phaseQuestion {
		return m, nil
	}
	if time.Now().Before(m.deadline) {
		return m, timerTick()
	}

	// Countdown expired: the question scores as unanswered.
	_ = m.session.RecordTimeout(m.current)
	m.timedOut = true
	m.lastChosen = ""
	m.lastCorrect = false
	m.phase = phaseFeedback
	return m, nil
}

func (m Model) handleStreakDone(msg streakDoneMsg) (tea.Model, tea.Cmd) {
	var already *streak.AlreadyPlayedError
	if errors.As(msg.Err, &already) {
		m.already = already
		m.prior = &already.State
		m.phase = phaseAlreadyPlayed
		return m, nil
	}
	if msg.Err != nil {
		m.phase = phaseError
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	m.outcome = msg.Outcome
	m.phase = phaseResults
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseName:
		switch key {
		case "enter":
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				return m, nil
			}
			m.player = name
			m.phase = phaseLoading
			return m, tea.Batch(m.startRun(), spinnerTick())
		case "esc":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd

	case phaseQuestion:
		return m.handleQuestionKey(key)

	case phaseFeedback:
		return m.advance()

	case phaseAlreadyPlayed, phaseResults, phaseError:
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleQuestionKey(key string) (tea.Model, tea.Cmd) {
	choices := m.session.Questions()[m.current].Choices

	switch key {
	case "esc":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(choices)-1 {
			m.selected++
		}
		return m, nil
	case "enter":
		return m.submit(m.selected)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(choices) {
			return m.submit(idx)
		}
	}
	return m, nil
}

func (m Model) submit(choice int) (tea.Model, tea.Cmd) {
	q := m.session.Questions()[m.current]
	answer := q.Choices[choice]

	if err := m.session.Record(m.current, answer); err != nil {
		m.phase = phaseError
		m.errMsg = err.Error()
		return m, nil
	}

	m.lastChosen = answer
	m.lastCorrect = answer == q.Answer
	m.timedOut = false
	m.phase = phaseFeedback
	return m, nil
}

// advance moves past the feedback overlay to the next question, or to
// completion when the last question is done.
func (m Model) advance() (tea.Model, tea.Cmd) {
	m.current++
	if m.current < len(m.session.Questions()) {
		m.selected = 0
		m.deadline = time.Now().Add(questionTime)
		m.phase = phaseQuestion
		return m, timerTick()
	}

	m.result = m.session.Complete()
	m.phase = phaseLoading
	return m, tea.Batch(m.completeRun(m.result), spinnerTick())
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(pipeline *app.Pipeline, tracker *streak.Tracker, player string) error {
	p := tea.NewProgram(NewModel(pipeline, tracker, player))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
