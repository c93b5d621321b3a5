package quizscreen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/quizgen"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/store"
	"github.com/abhisek/kanjiz/internal/ui/components"
	"github.com/abhisek/kanjiz/internal/ui/layout"
)

// phase is the screen's display state.
type phase int

const (
	phaseGenerating phase = iota
	phaseQuestion
	phaseFeedback
	phaseFailed
)

// QuizScreen runs one quiz session for a fixed JLPT level: generate a
// question, let the learner answer, show feedback, repeat on demand.
type QuizScreen struct {
	session *quiz.Session
	phase   phase
	spinner components.Spinner
	mc      components.MultiChoice
	failMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given level.
func New(generator quizgen.Generator, eventRepo store.EventRepo, level string) *QuizScreen {
	return &QuizScreen{
		session: quiz.NewSession(level, generator, eventRepo, nil),
		phase:   phaseGenerating,
		spinner: components.NewSpinner("Generating question..."),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return tea.Batch(q.spinner.Init(), q.generate())
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

// Level returns the JLPT level this screen was opened for.
func (q *QuizScreen) Level() string {
	return q.session.Level()
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓/1-4", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "N", Description: "Next question"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseFailed:
		return []layout.KeyHint{
			{Key: "G", Description: "Try again"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return q.handleQuestionReady(msg)

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	if q.phase == phaseGenerating {
		var cmd tea.Cmd
		q.spinner, cmd = q.spinner.Update(msg)
		return q, cmd
	}

	return q, nil
}

// generate asks the session for a fresh question off the UI goroutine.
func (q *QuizScreen) generate() tea.Cmd {
	return func() tea.Msg {
		question, err := q.session.Generate(context.Background())
		return questionReadyMsg{Question: question, Err: err}
	}
}

func (q *QuizScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		q.phase = phaseFailed
		q.failMsg = quiz.FailureMessage(msg.Err)
		return q, nil
	}

	q.phase = phaseQuestion
	q.mc = components.NewMultiChoice(msg.Question.Choices)
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch q.phase {
	case phaseQuestion:
		if msg.String() == "enter" {
			return q, q.submit()
		}
		var cmd tea.Cmd
		q.mc, cmd = q.mc.Update(msg)
		return q, cmd

	case phaseFeedback:
		if msg.String() == "n" {
			return q, q.regenerate()
		}

	case phaseFailed:
		if msg.String() == "g" {
			return q, q.regenerate()
		}
	}

	return q, nil
}

// submit grades the current selection and locks the choice component.
func (q *QuizScreen) submit() tea.Cmd {
	question := q.session.Round.Question
	if question == nil {
		return nil
	}

	if _, err := q.session.SelectChoice(context.Background(), q.mc.Selected); err != nil {
		return nil
	}

	correct := 0
	for i, c := range question.Choices {
		if c == question.Answer {
			correct = i
			break
		}
	}
	q.mc.Submit(q.mc.Selected, correct)

	q.phase = phaseFeedback
	return nil
}

// regenerate starts a fresh round with a new spinner.
func (q *QuizScreen) regenerate() tea.Cmd {
	q.phase = phaseGenerating
	q.failMsg = ""
	q.spinner = components.NewSpinner("Generating question...")
	return tea.Batch(q.spinner.Init(), q.generate())
}
