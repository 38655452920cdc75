package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	err := h.dispatchCallback(ctx, chatID, cb.Message.MessageID, decodeCallback(cb.Data))

	notice := ""
	switch {
	case err == nil:
	case errors.Is(err, errStaleCallback), errors.Is(err, errMalformedCallback):
		h.logger.Debug("ignoring callback",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		notice = msgStaleCallback
	case errors.Is(err, errNothingSelected):
		notice = msgSelectCapitals
	default:
		h.logger.Error("handle callback error",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
	}

	h.answerCallback(cb.ID, notice)
}

func (h *Handler) dispatchCallback(_ context.Context, chatID int64, msgID int, data callbackData) error {
	switch data.Action {
	case actionCount:
		count, err := data.intParam(0)
		if err != nil {
			return err
		}
		return h.startQuiz(chatID, count)

	case actionAnswer, actionToggle:
		number, err := data.intParam(0)
		if err != nil {
			return err
		}
		index, err := data.intParam(1)
		if err != nil {
			return err
		}
		if data.Action == actionAnswer {
			return h.answerSingle(chatID, msgID, number, index)
		}
		return h.toggleOption(chatID, msgID, number, index)

	case actionCheck, actionNext:
		number, err := data.intParam(0)
		if err != nil {
			return err
		}
		if data.Action == actionCheck {
			return h.checkMulti(chatID, msgID, number)
		}
		return h.advance(chatID, msgID, number)

	case actionNew:
		return h.showCountSelection(chatID)

	default:
		return errMalformedCallback
	}
}
