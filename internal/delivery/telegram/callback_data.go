package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionCount  = "count"  // start a quiz with N questions
	actionAnswer = "answer" // single-choice pick
	actionToggle = "toggle" // multi-choice checkbox
	actionCheck  = "check"  // grade a multi-choice question
	actionNext   = "next"   // record the outcome and move on
	actionNew    = "new"    // back to question count selection
)

var errMalformedCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// intParam returns the i-th parameter as an integer.
func (cd callbackData) intParam(i int) (int, error) {
	if i >= len(cd.Params) {
		return 0, fmt.Errorf("%w: %q has no parameter %d", errMalformedCallback, cd.Raw, i)
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", errMalformedCallback, cd.Raw, err)
	}
	return n, nil
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildCountCallback(count int) string {
	return callbackData{
		Action: actionCount,
		Params: []string{strconv.Itoa(count)},
	}.encode()
}

// buildAnswerCallback builds callback data for a single-choice pick.
func buildAnswerCallback(questionNum, optionIndex int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{strconv.Itoa(questionNum), strconv.Itoa(optionIndex)},
	}.encode()
}

// buildToggleCallback builds callback data for a multi-choice checkbox.
func buildToggleCallback(questionNum, optionIndex int) string {
	return callbackData{
		Action: actionToggle,
		Params: []string{strconv.Itoa(questionNum), strconv.Itoa(optionIndex)},
	}.encode()
}

func buildCheckCallback(questionNum int) string {
	return callbackData{
		Action: actionCheck,
		Params: []string{strconv.Itoa(questionNum)},
	}.encode()
}

func buildNextCallback(questionNum int) string {
	return callbackData{
		Action: actionNext,
		Params: []string{strconv.Itoa(questionNum)},
	}.encode()
}

func buildNewQuizCallback() string {
	return actionNew
}
