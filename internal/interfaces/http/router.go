package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabrielxlive96/portaldecompras/internal/application/auth"
	"github.com/gabrielxlive96/portaldecompras/internal/application/importer"
	"github.com/gabrielxlive96/portaldecompras/internal/application/usecase"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/entity"
	"github.com/gabrielxlive96/portaldecompras/internal/infrastructure/storage"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	QuotationUC *usecase.QuotationUseCase
	ResponseUC  *usecase.ResponseUseCase
	ImportUC    *importer.ImportUseCase
	PDFUC       *usecase.PDFUseCase
	Attachments *storage.AttachmentStore
	JWTSecret   string
}

// Router registra as rotas da API. O check de papel roda como middleware
// explícito antes de cada grupo de handlers.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.ImportUC, deps.PDFUC)
	responseHandler := NewResponseHandler(deps.ResponseUC, deps.Attachments)

	// Listados visíveis para os dois papéis (admin acompanha, fornecedor responde)
	cotacoes := protected.Group("/cotacoes")
	cotacoes.Get("/", quotationHandler.List)
	cotacoes.Get("/:id/itens", quotationHandler.ListItems)

	// Ações exclusivas do administrador
	adminOnly := RequireRole(entity.RoleAdmin)
	cotacoes.Post("/importar", adminOnly, quotationHandler.Import)
	cotacoes.Get("/:id/mapa", adminOnly, quotationHandler.ComparisonMap)
	cotacoes.Get("/:id/mapa/pdf", adminOnly, quotationHandler.ComparisonPDF)

	itens := protected.Group("/itens")
	itens.Get("/:id/respostas", adminOnly, quotationHandler.ListRankedResponses)

	// Envio de proposta: exclusivo de fornecedores
	itens.Post("/:id/respostas", RequireRole(entity.RoleFornecedor), responseHandler.Submit)
}
