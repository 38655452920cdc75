package service

import (
	"slices"
	"strings"

	"github.com/aliskhannn/state-capitals-bot/internal/domain/entities"
)

// Evaluate grades an answer against the question it was given for.
// An answer of a different type than the question is never correct.
func Evaluate(q *entities.Question, a entities.Answer) entities.Outcome {
	outcome := entities.Outcome{CorrectCapitals: q.CorrectCapitals()}

	if a.Type != q.Type || len(q.Correct) == 0 {
		return outcome
	}

	switch q.Type {
	case entities.QuestionTypeSingleChoice:
		outcome.Correct = EvaluateSingleChoice(a.Selected, q.Correct[0])
	case entities.QuestionTypeMultiChoice:
		outcome.Correct = EvaluateMultiChoice(q.Options, q.Correct, a.SelectedSet)
	case entities.QuestionTypeFreeText:
		outcome.Correct = EvaluateFreeText(a.Text, q.Correct[0])
	}

	return outcome
}

// EvaluateSingleChoice compares the selected option text with the capital
// exactly. Case matters here, unlike free-text answers.
func EvaluateSingleChoice(selected string, correct entities.CapitalEntry) bool {
	return selected == correct.Capital
}

// EvaluateMultiChoice requires every displayed option to be selected exactly
// when it is one of the correct entries. A selection that is not among the
// options fails the question too.
func EvaluateMultiChoice(
	options []entities.CapitalEntry,
	correct []entities.CapitalEntry,
	selected []string,
) bool {
	for _, s := range selected {
		if !slices.ContainsFunc(options, func(o entities.CapitalEntry) bool { return o.Capital == s }) {
			return false
		}
	}

	for _, o := range options {
		isSelected := slices.Contains(selected, o.Capital)
		isCorrect := slices.ContainsFunc(correct, o.Equal)
		if isSelected != isCorrect {
			return false
		}
	}

	return true
}

// EvaluateFreeText accepts the capital typed in any case, surrounded by spaces.
func EvaluateFreeText(input string, correct entities.CapitalEntry) bool {
	return strings.EqualFold(strings.TrimSpace(input), correct.Capital)
}
