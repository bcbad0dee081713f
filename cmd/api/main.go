package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mdmehedi135712-tech/account-books/internal/application/ledger"
	"github.com/mdmehedi135712-tech/account-books/internal/application/ports"
	"github.com/mdmehedi135712-tech/account-books/internal/application/prefs"
	"github.com/mdmehedi135712-tech/account-books/internal/application/reminder"
	"github.com/mdmehedi135712-tech/account-books/internal/domain/repository"
	infraai "github.com/mdmehedi135712-tech/account-books/internal/infrastructure/ai"
	infrapdf "github.com/mdmehedi135712-tech/account-books/internal/infrastructure/pdf"
	"github.com/mdmehedi135712-tech/account-books/internal/infrastructure/postgres"
	"github.com/mdmehedi135712-tech/account-books/internal/infrastructure/storage"
	httpRouter "github.com/mdmehedi135712-tech/account-books/internal/interfaces/http"
	"github.com/mdmehedi135712-tech/account-books/pkg/config"
	"github.com/mdmehedi135712-tech/account-books/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Persistence Adapter: JSON en disco por defecto, PostgreSQL como alternativa.
	var store repository.LedgerStore
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgStore := postgres.NewStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema PostgreSQL")
		}
		store = pgStore
	default:
		jsonStore, err := storage.NewJSONStore(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("store JSON")
		}
		store = jsonStore
	}

	ledgerUC := ledger.NewLedgerUseCase(store, log)
	if err := ledgerUC.Load(); err != nil {
		log.Fatal().Err(err).Msg("cargar libro de cuentas")
	}
	prefsUC := prefs.NewPreferenceUseCase(store)

	// Generador de texto para recordatorios. Sin API key el redactor degrada a
	// la plantilla local; no es un error de arranque.
	var gen ports.TextGenerator
	switch cfg.AI.Provider {
	case "anthropic":
		gen = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		gen = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	reminderUC := reminder.NewReminderUseCase(gen, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:   ledgerUC,
		ReminderUC: reminderUC,
		PrefsUC:    prefsUC,
		SummaryPDF: infrapdf.NewSummaryPDFGenerator(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
