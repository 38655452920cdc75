package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Options holds handler tuning parameters.
type Options struct {
	DefaultQuestions int           // question count for /quiz without arguments
	UpdateTimeout    time.Duration // long polling timeout
}

type Handler struct {
	bot              Bot
	logger           *zap.Logger
	sessions         SessionStorage
	newCoordinator   CoordinatorFactory
	defaultQuestions int
	updateTimeout    time.Duration
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	sessions SessionStorage,
	newCoordinator CoordinatorFactory,
	opts Options,
) *Handler {
	return &Handler{
		bot:              bot,
		logger:           logger,
		sessions:         sessions,
		newCoordinator:   newCoordinator,
		defaultQuestions: opts.DefaultQuestions,
		updateTimeout:    opts.UpdateTimeout,
	}
}

// Run processes updates one at a time until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(h.updateTimeout.Seconds())

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.handleStart())(ctx, chatID)

		case "quiz":
			_ = h.withErrorHandling(h.handleQuiz(update.Message.CommandArguments()))(ctx, chatID)

		case "summary":
			_ = h.withErrorHandling(h.handleSummary())(ctx, chatID)

		case "help":
			_, _ = h.send(newHTMLMessage(chatID, msgHelp))

		default:
			_, _ = h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}

		return
	}

	_ = h.withErrorHandling(h.handleTextAnswer(update.Message.Text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newHTMLMessage(chatID, err)
	_, _ = h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	sent, err := h.bot.Send(c)
	if err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
	return sent, err
}

// answerCallback removes the user's "clock" and optionally shows a notice.
func (h *Handler) answerCallback(callbackID, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}
