package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/gabrielxlive96/portaldecompras/internal/application/dto"
	"github.com/gabrielxlive96/portaldecompras/internal/application/usecase"
	"github.com/gabrielxlive96/portaldecompras/internal/domain"
	"github.com/gabrielxlive96/portaldecompras/internal/infrastructure/storage"
)

// ResponseHandler trata o envio de propostas por fornecedores.
type ResponseHandler struct {
	uc    *usecase.ResponseUseCase
	store *storage.AttachmentStore
}

// NewResponseHandler constrói o handler.
func NewResponseHandler(uc *usecase.ResponseUseCase, store *storage.AttachmentStore) *ResponseHandler {
	return &ResponseHandler{uc: uc, store: store}
}

// Submit godoc
// @Summary      Enviar proposta para um item
// @Tags         itens
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id         path      int     true   "ID do item"
// @Param        preco      formData  string  true   "Preço unitário (decimal, >= 0)"
// @Param        prazo      formData  string  false  "Prazo de entrega"
// @Param        condicoes  formData  string  false  "Condições de pagamento"
// @Param        anexo      formData  file    false  "Anexo opcional (.pdf, .doc, .docx)"
// @Success      201  {object}  dto.SupplierResponseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/itens/{id}/respostas [post]
func (h *ResponseHandler) Submit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	itemID := int64(id)
	supplier := GetUsername(c)

	precoRaw := c.FormValue("preco")
	if precoRaw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "preco é requerido"})
	}
	preco, err := decimal.NewFromString(precoRaw)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "preco deve ser um número decimal"})
	}

	// Anexo é opcional; quando presente, é gravado antes da proposta.
	attachmentPath := ""
	if fileHeader, err := c.FormFile("anexo"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o anexo"})
		}
		defer file.Close()
		attachmentPath, err = h.store.Save(supplier, itemID, fileHeader.Filename, file)
		if err != nil {
			if errors.Is(err, domain.ErrAnexoNaoPermitido) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "ATTACHMENT_TYPE", Message: "anexo deve ser .pdf, .doc ou .docx"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	out, err := h.uc.Submit(itemID, supplier, dto.SubmitResponseRequest{
		UnitPrice:    preco,
		DeliveryTerm: c.FormValue("prazo"),
		PaymentTerms: c.FormValue("condicoes"),
	}, attachmentPath)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item de cotação não encontrado"})
		case errors.Is(err, domain.ErrValidacao):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "preco não pode ser negativo"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
