package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/state-capitals-bot/internal/domain/entities"
)

// questionCounts are the session lengths offered on the welcome screen.
var questionCounts = []int{5, 10, 15, 20, 25}

// buildCountKeyboard builds keyboard for choosing the number of questions.
func buildCountKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, n := range questionCounts {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(strconv.Itoa(n), buildCountCallback(n)))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuestionKeyboard builds keyboard for a question. Free-text questions have none.
func buildQuestionKeyboard(q *entities.Question, selected []bool) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	switch q.Type {
	case entities.QuestionTypeSingleChoice:
		for i, option := range q.Options {
			button := tgbotapi.NewInlineKeyboardButtonData(option.Capital, buildAnswerCallback(q.Number, i))
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
		}

	case entities.QuestionTypeMultiChoice:
		for i, option := range q.Options {
			mark := "⬜ "
			if i < len(selected) && selected[i] {
				mark = "☑️ "
			}
			button := tgbotapi.NewInlineKeyboardButtonData(mark+option.Capital, buildToggleCallback(q.Number, i))
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✔️ Check answer", buildCheckCallback(q.Number)),
		))

	default:
		return nil
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// buildNextKeyboard builds keyboard shown under a graded question.
func buildNextKeyboard(questionNum int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Next question ▶️", buildNextCallback(questionNum)),
		),
	)
}

// buildSummaryKeyboard builds keyboard for quiz results screen.
func buildSummaryKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 New quiz", buildNewQuizCallback()),
		),
	)
}
