package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/state-capitals-bot/internal/domain/entities"
	"github.com/aliskhannn/state-capitals-bot/internal/service"
	"github.com/aliskhannn/state-capitals-bot/internal/storage"
)

var (
	errStaleCallback   = errors.New("callback refers to an inactive question")
	errNothingSelected = errors.New("no option selected")
)

// handleStart shows the welcome screen with the question count keyboard.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newHTMLMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildCountKeyboard()
		_, err := h.send(msg)
		return err
	}
}

// handleQuiz starts a quiz with the question count given as argument.
func (h *Handler) handleQuiz(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		count := h.defaultQuestions
		if args = strings.TrimSpace(args); args != "" {
			n, err := strconv.Atoi(args)
			if err != nil {
				return h.sendInvalidCount(chatID)
			}
			count = n
		}
		return h.startQuiz(chatID, count)
	}
}

// handleSummary shows the score of the running quiz.
func (h *Handler) handleSummary() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.sessions.Get(chatID)
		if errors.Is(err, storage.ErrSessionNotFound) {
			_, err = h.send(newHTMLMessage(chatID, msgNoActiveQuiz))
			return err
		}
		if err != nil {
			return err
		}

		_, err = h.send(newHTMLMessage(chatID, formatProgress(session.Coordinator.State())))
		return err
	}
}

// handleTextAnswer treats a plain message as the answer to a free-text question.
func (h *Handler) handleTextAnswer(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.sessions.Get(chatID)
		if errors.Is(err, storage.ErrSessionNotFound) {
			_, err = h.send(newHTMLMessage(chatID, msgNoActiveQuiz))
			return err
		}
		if err != nil {
			return err
		}

		coord := session.Coordinator
		q := coord.Current()
		if q == nil || coord.Phase() != entities.PhaseAskingQuestion || q.Type != entities.QuestionTypeFreeText {
			_, err = h.send(newHTMLMessage(chatID, msgUseButtons))
			return err
		}

		outcome, err := coord.Submit(entities.NewFreeTextAnswer(text))
		if err != nil {
			return h.abort(chatID, err)
		}
		h.logGraded(chatID, q, outcome)

		msg := newHTMLMessage(chatID, formatOutcome(outcome))
		msg.ReplyMarkup = buildNextKeyboard(q.Number)
		sent, err := h.send(msg)
		if err != nil {
			return err
		}
		session.MessageID = sent.MessageID
		return nil
	}
}

func (h *Handler) startQuiz(chatID int64, count int) error {
	coord := h.newCoordinator()

	q, err := coord.Start(count)
	if errors.Is(err, service.ErrInvalidQuestionCount) {
		return h.sendInvalidCount(chatID)
	}
	if err != nil {
		h.sessions.Delete(chatID)
		return fmt.Errorf("start quiz: %w", err)
	}

	session := &storage.Session{Coordinator: coord}
	h.sessions.Store(chatID, session)

	h.logger.Info("quiz started",
		zap.Int64("chat_id", chatID),
		zap.Int("questions", count),
	)

	return h.sendQuestion(chatID, session, q)
}

func (h *Handler) sendInvalidCount(chatID int64) error {
	maxQuestions := h.newCoordinator().MaxQuestions()
	_, err := h.send(newHTMLMessage(chatID, fmt.Sprintf(msgInvalidQuestionCount, maxQuestions)))
	return err
}

func (h *Handler) sendQuestion(chatID int64, session *storage.Session, q *entities.Question) error {
	session.ResetSelection(len(q.Options))

	msg := newHTMLMessage(chatID, formatQuestion(q))
	if kb := buildQuestionKeyboard(q, session.Selected); kb != nil {
		msg.ReplyMarkup = *kb
	} else {
		msg.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true, InputFieldPlaceholder: "Capital"}
	}

	sent, err := h.send(msg)
	if err != nil {
		return err
	}
	session.MessageID = sent.MessageID

	h.logger.Debug("question sent",
		zap.Int64("chat_id", chatID),
		zap.Int("number", q.Number),
		zap.String("type", string(q.Type)),
		zap.Strings("states", q.States()),
	)

	return nil
}

// openQuestion returns the session whose open question has the given number.
func (h *Handler) openQuestion(chatID int64, number int) (*storage.Session, *entities.Question, error) {
	session, err := h.sessions.Get(chatID)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return nil, nil, errStaleCallback
	}
	if err != nil {
		return nil, nil, err
	}

	q := session.Coordinator.Current()
	if q == nil || q.Number != number || session.Coordinator.Phase() != entities.PhaseAskingQuestion {
		return nil, nil, errStaleCallback
	}

	return session, q, nil
}

func (h *Handler) answerSingle(chatID int64, msgID, number, index int) error {
	session, q, err := h.openQuestion(chatID, number)
	if err != nil {
		return err
	}
	if q.Type != entities.QuestionTypeSingleChoice || index < 0 || index >= len(q.Options) {
		return errStaleCallback
	}

	outcome, err := session.Coordinator.Submit(entities.NewSingleChoiceAnswer(q.Options[index].Capital))
	if err != nil {
		return h.abort(chatID, err)
	}
	h.logGraded(chatID, q, outcome)

	return h.showOutcome(chatID, msgID, q, outcome)
}

func (h *Handler) toggleOption(chatID int64, msgID, number, index int) error {
	session, q, err := h.openQuestion(chatID, number)
	if err != nil {
		return err
	}
	if q.Type != entities.QuestionTypeMultiChoice || index < 0 || index >= len(session.Selected) {
		return errStaleCallback
	}

	session.Selected[index] = !session.Selected[index]

	kb := buildQuestionKeyboard(q, session.Selected)
	_, err = h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, msgID, *kb))
	return err
}

func (h *Handler) checkMulti(chatID int64, msgID, number int) error {
	session, q, err := h.openQuestion(chatID, number)
	if err != nil {
		return err
	}
	if q.Type != entities.QuestionTypeMultiChoice {
		return errStaleCallback
	}

	var selected []string
	for i, on := range session.Selected {
		if on && i < len(q.Options) {
			selected = append(selected, q.Options[i].Capital)
		}
	}
	if len(selected) == 0 {
		return errNothingSelected
	}

	outcome, err := session.Coordinator.Submit(entities.NewMultiChoiceAnswer(selected))
	if err != nil {
		return h.abort(chatID, err)
	}
	h.logGraded(chatID, q, outcome)

	return h.showOutcome(chatID, msgID, q, outcome)
}

func (h *Handler) showOutcome(chatID int64, msgID int, q *entities.Question, outcome *entities.Outcome) error {
	kb := buildNextKeyboard(q.Number)
	_, err := h.send(newHTMLEdit(chatID, msgID, formatGradedQuestion(q, outcome), &kb))
	return err
}

// advance records the graded question and shows the next one or the summary.
func (h *Handler) advance(chatID int64, msgID, number int) error {
	session, err := h.sessions.Get(chatID)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return errStaleCallback
	}
	if err != nil {
		return err
	}

	coord := session.Coordinator
	q := coord.Current()
	if q == nil || q.Number != number || coord.Phase() != entities.PhaseGradingQuestion {
		return errStaleCallback
	}

	step, err := coord.Advance()
	if err != nil {
		return h.abort(chatID, err)
	}

	_, _ = h.send(removeKeyboard(chatID, msgID))

	if step.Done() {
		h.sessions.Delete(chatID)
		h.logger.Info("quiz finished",
			zap.Int64("chat_id", chatID),
			zap.Int("asked", step.Summary.Asked),
			zap.Int("correct", step.Summary.Correct),
		)

		msg := newHTMLMessage(chatID, formatSummary(*step.Summary))
		msg.ReplyMarkup = buildSummaryKeyboard()
		_, err = h.send(msg)
		return err
	}

	return h.sendQuestion(chatID, session, step.Question)
}

func (h *Handler) showCountSelection(chatID int64) error {
	h.sessions.Delete(chatID)

	msg := newHTMLMessage(chatID, msgChooseCount)
	msg.ReplyMarkup = buildCountKeyboard()
	_, err := h.send(msg)
	return err
}

// abort drops a session the coordinator can no longer serve.
func (h *Handler) abort(chatID int64, err error) error {
	h.sessions.Delete(chatID)
	return fmt.Errorf("quiz session aborted: %w", err)
}

func (h *Handler) logGraded(chatID int64, q *entities.Question, outcome *entities.Outcome) {
	h.logger.Debug("answer graded",
		zap.Int64("chat_id", chatID),
		zap.Int("number", q.Number),
		zap.String("type", string(q.Type)),
		zap.Bool("correct", outcome.Correct),
	)
}
