package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/state-capitals-bot/internal/service"
	"github.com/aliskhannn/state-capitals-bot/internal/storage"
)

// Bot is the part of *tgbotapi.BotAPI the handler talks to.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type SessionStorage interface {
	Store(chatID int64, session *storage.Session)
	Get(chatID int64) (*storage.Session, error)
	Delete(chatID int64)
}

// CoordinatorFactory creates a fresh coordinator for a new quiz.
type CoordinatorFactory func() *service.Coordinator
