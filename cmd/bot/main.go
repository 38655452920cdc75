package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/state-capitals-bot/internal/config"
	"github.com/aliskhannn/state-capitals-bot/internal/delivery/telegram"
	"github.com/aliskhannn/state-capitals-bot/internal/logger"
	"github.com/aliskhannn/state-capitals-bot/internal/repository"
	"github.com/aliskhannn/state-capitals-bot/internal/service"
	"github.com/aliskhannn/state-capitals-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Welcome screen",
		},
		{
			Command:     "quiz",
			Description: "Start a quiz (usage: /quiz 10)",
		},
		{
			Command:     "summary",
			Description: "Score of the running quiz",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	_, err = bot.Request(tgbotapi.NewSetMyCommands(commands...))
	if err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	bot.Debug = cfg.Telegram.Debug
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	capitalRepo, err := repository.NewCapitalRepository(cfg.CapitalsJSONPath, rng)
	if err != nil {
		lg.Fatal("failed to load capitals", zap.Error(err))
	}

	sessions := storage.NewSessionStorage()

	handler := telegram.NewHandler(
		bot,
		lg,
		sessions,
		func() *service.Coordinator {
			return service.NewCoordinator(capitalRepo, rng)
		},
		telegram.Options{
			DefaultQuestions: cfg.Quiz.DefaultQuestions,
			UpdateTimeout:    cfg.Telegram.UpdateTimeout,
		},
	)

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler failed", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}
