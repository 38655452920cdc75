// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"html"
	"strings"

	"github.com/aliskhannn/state-capitals-bot/internal/domain/entities"
)

// Error and notice messages.
const (
	msgInternalError        = "Something went wrong. Please start a new quiz with /quiz."
	msgInvalidQuestionCount = "Please choose between 1 and %d questions, e.g. /quiz 10."
	msgNoActiveQuiz         = "There is no quiz running. Start one with /quiz."
	msgUseButtons           = "Please answer the current question using the buttons above."
	msgSelectCapitals       = "Select at least one capital first."
	msgStaleCallback        = "This question is no longer active."
	msgUnknownCommand       = "Unknown command. Available commands:\n\n/quiz N — start a quiz with N questions\n/summary — show your score\n/help — help"
)

const (
	msgWelcome = "<b>State Capitals Quiz</b>\n\n" +
		"Match the U.S. states to their capitals. " +
		"Questions come in three flavours: pick one capital, pick two capitals, or type the capital yourself.\n\n" +
		"How many questions would you like?"
	msgChooseCount = "How many questions would you like?"
	msgHelp        = "<b>Commands</b>\n\n" +
		"/start — welcome screen\n" +
		"/quiz — start a quiz (optionally /quiz N for N questions)\n" +
		"/summary — score of the running quiz\n" +
		"/help — this message"
)

func formatQuestion(q *entities.Question) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<b>Question %d of %d</b>\n\n", q.Number, q.Total))
	sb.WriteString(html.EscapeString(q.Prompt))
	sb.WriteString("\n\n")

	switch q.Type {
	case entities.QuestionTypeSingleChoice:
		sb.WriteString("<i>Tap the capital.</i>")
	case entities.QuestionTypeMultiChoice:
		sb.WriteString("<i>Select both capitals, then press Check answer.</i>")
	case entities.QuestionTypeFreeText:
		sb.WriteString("<i>Reply with the name of the capital.</i>")
	}

	return sb.String()
}

func formatOutcome(o *entities.Outcome) string {
	var sb strings.Builder

	if o.Correct {
		sb.WriteString("✅ <b>Correct!</b>")
	} else {
		sb.WriteString("❌ <b>Incorrect.</b>")
	}

	capitals := make([]string, 0, len(o.CorrectCapitals))
	for _, c := range o.CorrectCapitals {
		capitals = append(capitals, "<b>"+html.EscapeString(c)+"</b>")
	}

	switch len(capitals) {
	case 0:
	case 1:
		sb.WriteString("\nThe capital is " + capitals[0] + ".")
	default:
		sb.WriteString("\nThe capitals are " + strings.Join(capitals, " and ") + ".")
	}

	return sb.String()
}

func formatGradedQuestion(q *entities.Question, o *entities.Outcome) string {
	return formatQuestion(q) + "\n\n" + formatOutcome(o)
}

func formatSummary(s entities.Summary) string {
	return fmt.Sprintf(
		"🏁 <b>Quiz finished!</b>\n\nYou answered %d of %d questions correctly (%d%%).",
		s.Correct, s.Asked, s.Percentage,
	)
}

func formatProgress(state entities.SessionState) string {
	return fmt.Sprintf(
		"📊 <b>Current quiz</b>\n\nAnswered: %d of %d\nCorrect: %d (%d%%)",
		state.Asked, state.Requested, state.Correct, state.Summary().Percentage,
	)
}
