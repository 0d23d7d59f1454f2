package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gabrielxlive96/portaldecompras/internal/application/dto"
	"github.com/gabrielxlive96/portaldecompras/internal/application/importer"
	"github.com/gabrielxlive96/portaldecompras/internal/application/usecase"
	"github.com/gabrielxlive96/portaldecompras/internal/domain"
)

// QuotationHandler trata listados, importação e mapa comparativo.
type QuotationHandler struct {
	quotationUC *usecase.QuotationUseCase
	importUC    *importer.ImportUseCase
	pdfUC       *usecase.PDFUseCase
}

// NewQuotationHandler constrói o handler.
func NewQuotationHandler(quotationUC *usecase.QuotationUseCase, importUC *importer.ImportUseCase, pdfUC *usecase.PDFUseCase) *QuotationHandler {
	return &QuotationHandler{quotationUC: quotationUC, importUC: importUC, pdfUC: pdfUC}
}

// List godoc
// @Summary      Listar cotações (mais recentes primeiro)
// @Tags         cotacoes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.QuotationResponse
// @Router       /api/cotacoes [get]
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	out, err := h.quotationUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Listar itens de uma cotação
// @Tags         cotacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da cotação"
// @Success      200  {array}  dto.LineItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cotacoes/{id}/itens [get]
func (h *QuotationHandler) ListItems(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.quotationUC.ListItems(int64(id))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar planilha de solicitações (.xlsx)
// @Tags         cotacoes
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        arquivo  formData  file  true  "Planilha com colunas Item, Rubrica, Descrição, Unidade de Medida, Quantidade"
// @Success      201  {object}  dto.ImportResult
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/cotacoes/importar [post]
func (h *QuotationHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo 'arquivo' com a planilha é requerido"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}
	defer file.Close()

	result, err := h.importUC.Import(c.Context(), file)
	if err != nil {
		if errors.Is(err, domain.ErrValidacao) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// ComparisonMap godoc
// @Summary      Mapa comparativo de uma cotação (itens e propostas ranqueadas)
// @Tags         cotacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da cotação"
// @Success      200  {object}  dto.ComparisonMap
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cotacoes/{id}/mapa [get]
func (h *QuotationHandler) ComparisonMap(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.quotationUC.ComparisonMap(int64(id))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// ComparisonPDF godoc
// @Summary      Mapa comparativo em PDF
// @Tags         cotacoes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID da cotação"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cotacoes/{id}/mapa/pdf [get]
func (h *QuotationHandler) ComparisonPDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	pdfBytes, err := h.pdfUC.ComparisonPDF(c.Context(), int64(id))
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="mapa_comparativo.pdf"`)
	return c.Send(pdfBytes)
}

// ListRankedResponses godoc
// @Summary      Propostas de um item, ranqueadas por preço
// @Tags         itens
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do item"
// @Success      200  {object}  dto.ComparisonItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/itens/{id}/respostas [get]
func (h *QuotationHandler) ListRankedResponses(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.quotationUC.ListRankedResponses(int64(id))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

func (h *QuotationHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case errors.Is(err, domain.ErrDadosInvalidos):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATA", Message: "dado armazenado inválido"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
