package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Unreala9/metabot/internal/audit"
	"github.com/Unreala9/metabot/internal/audit/ch"
	"github.com/Unreala9/metabot/internal/audit/sheets"
	"github.com/Unreala9/metabot/internal/bot"
	"github.com/Unreala9/metabot/internal/config"
	"github.com/Unreala9/metabot/internal/kb"
	"github.com/Unreala9/metabot/internal/llm"
)

// App represents the application
type App struct {
	config *config.Config
	logger *zap.Logger
	bot    *bot.Bot
	mirror *ch.Recorder
	server *http.Server
}

// New creates and initializes a new application instance
func New() (*App, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	app := &App{config: cfg, logger: logger}

	logger.Info("Starting Metabull Universe bot...")

	if err := app.initBot(); err != nil {
		return nil, err
	}
	app.initHTTPServer()

	return app, nil
}

// initRecorder assembles the audit fan-out: Google Sheets/Docs when
// credentials are configured, a ClickHouse mirror when enabled, a nop
// sink otherwise. A broken sink is reported and skipped; the bot runs
// without it.
func (a *App) initRecorder() (audit.Recorder, bot.HistoryReader) {
	var sinks audit.Multi

	if a.config.GoogleCredentialsFile != "" && (a.config.SpreadsheetID != "" || a.config.DocumentID != "") {
		rec, err := sheets.New(context.Background(),
			a.config.GoogleCredentialsFile, a.config.SpreadsheetID, a.config.DocumentID, a.logger)
		if err != nil {
			a.logger.Error("Google audit sink unavailable", zap.Error(err))
		} else {
			a.logger.Info("Google audit sink enabled",
				zap.Bool("sheet", a.config.SpreadsheetID != ""),
				zap.Bool("doc", a.config.DocumentID != ""))
			sinks = append(sinks, rec)
		}
	}

	var history bot.HistoryReader
	if a.config.UseClickHouse {
		a.logger.Info("Connecting to ClickHouse audit mirror",
			zap.String("host", a.config.ClickHouseHost),
			zap.Int("port", a.config.ClickHousePort),
			zap.String("database", a.config.ClickHouseDatabase),
			zap.Bool("tls", a.config.ClickHouseUseTLS))
		mirror, err := ch.New(
			a.config.ClickHouseHost,
			a.config.ClickHousePort,
			a.config.ClickHouseDatabase,
			a.config.ClickHouseUser,
			a.config.ClickHousePassword,
			a.config.ClickHouseUseTLS,
			a.logger,
		)
		if err != nil {
			a.logger.Error("ClickHouse audit mirror unavailable", zap.Error(err))
		} else {
			a.mirror = mirror
			history = mirror
			sinks = append(sinks, mirror)
		}
	}

	if len(sinks) == 0 {
		a.logger.Info("No audit sinks configured, conversations will not be recorded")
		return audit.Nop{}, history
	}
	return sinks, history
}

// initBot initializes the Telegram bot
func (a *App) initBot() error {
	table, err := kb.Metabull()
	if err != nil {
		return fmt.Errorf("failed to build knowledge base: %w", err)
	}

	var asker bot.Asker
	if a.config.GeminiAPIKey != "" {
		client, err := llm.NewClient(a.config.GeminiAPIKey, a.logger)
		if err != nil {
			return fmt.Errorf("failed to create gemini client: %w", err)
		}
		asker = client
		a.logger.Info("Gemini fallback enabled")
	} else {
		a.logger.Info("GEMINI_API_KEY not set, generative fallback disabled")
	}

	recorder, history := a.initRecorder()

	telegramBot, err := bot.NewBot(a.config.TelegramToken, bot.Options{
		Table:      table,
		Asker:      asker,
		Recorder:   recorder,
		History:    history,
		AdminIDs:   a.config.AdminUserIDs,
		Follow:     a.config.FollowLinks,
		DefaultCTA: a.config.WhatsAppLink(),
		Logger:     a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	a.logger.Info("Bot created successfully", zap.Int64s("admin_ids", a.config.AdminUserIDs))

	a.bot = telegramBot
	return nil
}

// initHTTPServer initializes the HTTP server for health checks and webhook
func (a *App) initHTTPServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Default port
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		mode := "polling"
		if a.config.WebhookMode {
			mode = "webhook"
		}
		fmt.Fprintf(w, "Metabull Universe bot is running (mode: %s)", mode)
	})

	// Webhook endpoint (only used in webhook mode)
	mux.HandleFunc("/telegram-webhook", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var update tgbotapi.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			a.logger.Warn("Error decoding webhook update", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Enqueue and respond quickly; Telegram retries slow webhooks.
		a.bot.HandleWebhookUpdate(update)
		w.WriteHeader(http.StatusOK)
	})

	a.server = &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		a.logger.Info("Starting HTTP server", zap.String("port", port))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server error", zap.Error(err))
		}
	}()
}

// Run starts the application and blocks until shutdown
func (a *App) Run() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if a.config.WebhookMode {
		a.logger.Info("Starting bot in WEBHOOK mode", zap.String("url", a.config.WebhookURL))
		if err := a.bot.StartWebhook(a.config.WebhookURL); err != nil {
			return fmt.Errorf("failed to setup webhook: %w", err)
		}
		a.logger.Info("Webhook configured. Updates arrive via /telegram-webhook")
	} else {
		go func() {
			a.logger.Info("Starting bot in POLLING mode...")
			if err := a.bot.Start(); err != nil {
				a.logger.Fatal("Failed to start bot", zap.Error(err))
			}
		}()
	}

	<-sigChan

	a.logger.Info("Shutting down...")
	return a.Shutdown()
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Warn("HTTP server shutdown error", zap.Error(err))
	}

	if a.mirror != nil {
		if err := a.mirror.Close(); err != nil {
			a.logger.Warn("Error closing ClickHouse mirror", zap.Error(err))
		}
	}

	a.logger.Info("Shutdown complete")
	_ = a.logger.Sync()
	return nil
}
