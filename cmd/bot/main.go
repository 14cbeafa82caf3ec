package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/category-quiz-bot/internal/codec"
	"github.com/aliskhannn/category-quiz-bot/internal/config"
	"github.com/aliskhannn/category-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/category-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/category-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/category-quiz-bot/internal/logger"
	"github.com/aliskhannn/category-quiz-bot/internal/repository"
	"github.com/aliskhannn/category-quiz-bot/internal/service"
	"github.com/aliskhannn/category-quiz-bot/internal/storage"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil && ctx.Err() == nil {
		lg.Fatal("bot stopped", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Debug
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "categories", Description: "List quiz categories"},
		{Command: "play", Description: "Play a category (usage: /play geography)"},
		{Command: "current", Description: "Repeat the current question"},
		{Command: "reset", Description: "Start a category over"},
		{Command: "help", Description: "Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	registry := codec.Default()

	categoryRepo, err := repository.NewCategoryRepository(cfg.CategoriesJSONPath, registry)
	if err != nil {
		return err
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	userRepo := pgrepo.NewUserRepository(pool)
	progressRepo := pgrepo.NewProgressRepository(pool)
	recorder := pgrepo.NewAttemptRecorder(postgres.NewTransactor(pool))

	sessions := storage.NewSessionStorage()
	sweeper := service.NewSessionSweeper(sessions, cfg.Session.IdleTTL, cfg.Session.SweepSchedule, lg)
	go func() {
		if err := sweeper.Start(ctx); err != nil {
			lg.Error("session sweeper failed", zap.Error(err))
		}
	}()

	userService := service.NewUserService(userRepo)
	quizService := service.NewQuizService(
		categoryRepo,
		progressRepo,
		recorder,
		sessions,
		registry,
		service.NewAnswerMatcher(service.NewAnswerValidator()),
	)

	handler := telegram.NewHandler(bot, lg, quizService, userService)
	return handler.Run(ctx)
}
