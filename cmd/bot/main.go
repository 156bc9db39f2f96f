package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/config"
	"github.com/aliskhannn/flag-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/flag-quiz-bot/internal/logger"
	"github.com/aliskhannn/flag-quiz-bot/internal/metrics"
	"github.com/aliskhannn/flag-quiz-bot/internal/repository"
	"github.com/aliskhannn/flag-quiz-bot/internal/service"
	"github.com/aliskhannn/flag-quiz-bot/internal/storage"
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

	// Country table must hold at least four entries or no round can be built.
	table, err := repository.LoadCountryTable(cfg.Quiz.CountriesPath)
	if err != nil {
		lg.Fatal("failed to load country table",
			zap.String("path", cfg.Quiz.CountriesPath),
			zap.Error(err),
		)
	}
	lg.Info("country table loaded", zap.Int("countries", table.Len()))

	generator, err := service.NewRoundGenerator(table, nil)
	if err != nil {
		lg.Fatal("failed to create round generator", zap.Error(err))
	}

	// Metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	quizMetrics := metrics.NewQuiz(reg)

	// Player registry and round log: PostgreSQL when configured, memory otherwise.
	var (
		players  service.PlayerRepository = storage.NewPlayerRegistry()
		recorder service.RoundRecorder    = storage.NewRoundLog(0)
	)
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			lg.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		players = pgrepo.NewPlayerRepository(pool)
		recorder = pgrepo.NewRoundResultRepository(pool, postgres.NewTransactor(pool))
		lg.Info("round log backed by postgres")
	}

	sessions := storage.NewSessionStorage()
	quizService := service.NewQuizService(
		generator,
		sessions,
		recorder,
		quizMetrics,
		cfg.Quiz.Policy,
		lg,
	)
	countryService := service.NewCountryService(table, cfg.Quiz.FlagsDir)
	playerService := service.NewPlayerService(players)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Telegram.Debug
	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "play", Description: "Show a new flag"},
		{Command: "score", Description: "Show your score"},
		{Command: "history", Description: "Show your last flags"},
		{Command: "help", Description: "How to play"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	if cfg.Metrics.Address != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Address, metrics.NewRouter(reg), lg); err != nil {
				lg.Error("ops listener failed", zap.Error(err))
			}
		}()
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.Telegram.UpdateTimeout
	updates := bot.GetUpdatesChan(u)

	handler := telegram.NewHandler(bot, lg, quizService, countryService, playerService)
	if err := handler.Run(ctx, updates); err != nil && ctx.Err() == nil {
		lg.Error("handler stopped", zap.Error(err))
	}

	bot.StopReceivingUpdates()
	lg.Info("shutdown signal received", zap.Int("sessions", sessions.Len()))
}
