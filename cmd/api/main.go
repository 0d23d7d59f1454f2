package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gabrielxlive96/portaldecompras/internal/application/auth"
	"github.com/gabrielxlive96/portaldecompras/internal/application/importer"
	"github.com/gabrielxlive96/portaldecompras/internal/application/usecase"
	infrapdf "github.com/gabrielxlive96/portaldecompras/internal/infrastructure/pdf"
	"github.com/gabrielxlive96/portaldecompras/internal/infrastructure/postgres"
	"github.com/gabrielxlive96/portaldecompras/internal/infrastructure/storage"
	httpRouter "github.com/gabrielxlive96/portaldecompras/internal/interfaces/http"
	"github.com/gabrielxlive96/portaldecompras/pkg/config"
	"github.com/gabrielxlive96/portaldecompras/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	responseRepo := postgres.NewResponseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Contas iniciais (admin e fornecedor1). Idempotente.
	if err := postgres.SeedUsers(userRepo, cfg.Seed); err != nil {
		log.Fatal().Err(err).Msg("seed de usuários")
	}

	attachments, err := storage.NewAttachmentStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("diretório de anexos")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	quotationUC := usecase.NewQuotationUseCase(quotationRepo, responseRepo)
	responseUC := usecase.NewResponseUseCase(quotationRepo, responseRepo)
	importUC := importer.NewImportUseCase(txRunner)

	// PDF: mapa comparativo da cotação para o administrador
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := usecase.NewPDFUseCase(quotationUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    20 * 1024 * 1024, // planilhas e anexos
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Portal de Compras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		QuotationUC: quotationUC,
		ResponseUC:  responseUC,
		ImportUC:    importUC,
		PDFUC:       pdfUC,
		Attachments: attachments,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
