package quizscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjiz/internal/quiz"
	"github.com/abhisek/kanjiz/internal/ui/layout"
	"github.com/abhisek/kanjiz/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseGenerating:
		return layout.Center(q.spinner.View(), width, height)
	case phaseFailed:
		return q.renderFailure(width, height)
	case phaseFeedback:
		return q.renderQuestion(width, height, true)
	default:
		return q.renderQuestion(width, height, false)
	}
}

// renderQuestion shows the kanji, the prompt, and the choices. In
// feedback mode a result banner is appended below the choices.
func (q *QuizScreen) renderQuestion(width, height int, feedback bool) string {
	question := q.session.Round.Question
	if question == nil {
		return ""
	}

	var b strings.Builder

	// Info line: which kanji and which archetype produced this question.
	info := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s quiz", q.session.TaskType()))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// The kanji under quiz, rendered large and centered.
	b.WriteString(theme.Glyph.Width(width).Render(question.Kanji))
	b.WriteString("\n\n")

	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(question.Prompt))
	b.WriteString("\n\n")

	choices := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(q.mc.View())
	b.WriteString(choices)

	if feedback {
		b.WriteString("\n")
		b.WriteString(q.renderResultBanner(width))
	}

	return b.String()
}

func (q *QuizScreen) renderResultBanner(width int) string {
	var banner string
	switch q.session.Round.Result {
	case quiz.ResultCorrect:
		banner = theme.Correct.Render("Correct!")
	case quiz.ResultWrong:
		banner = theme.Incorrect.Render("Wrong. The answer is highlighted above.")
	default:
		return ""
	}

	hint := theme.Hint.Render("Press N for the next question")

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(banner + "\n\n" + hint)
}

func (q *QuizScreen) renderFailure(width, height int) string {
	msg := theme.Incorrect.Render(q.failMsg)
	hint := theme.Hint.Render("Press G to try again, Esc to go back")
	return layout.Center(msg+"\n\n"+hint, width, height)
}
