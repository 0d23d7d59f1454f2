package usecase

import (
	"time"

	"github.com/gabrielxlive96/portaldecompras/internal/application/dto"
	"github.com/gabrielxlive96/portaldecompras/internal/domain"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/entity"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/repository"
)

// ResponseUseCase envio de propostas por fornecedores.
type ResponseUseCase struct {
	quotationRepo repository.QuotationRepository
	responseRepo  repository.ResponseRepository
	now           func() time.Time
}

// NewResponseUseCase constrói o caso de uso.
func NewResponseUseCase(quotationRepo repository.QuotationRepository, responseRepo repository.ResponseRepository) *ResponseUseCase {
	return &ResponseUseCase{quotationRepo: quotationRepo, responseRepo: responseRepo, now: time.Now}
}

// Submit registra a proposta de um fornecedor para um item. Sempre insere uma
// nova linha: reenvios do mesmo fornecedor ficam todos no histórico.
// ErrNaoEncontrado se o item não existir; ErrValidacao se o preço for negativo.
func (uc *ResponseUseCase) Submit(lineItemID int64, supplier string, in dto.SubmitResponseRequest, attachmentPath string) (*dto.SupplierResponseResponse, error) {
	if in.UnitPrice.IsNegative() {
		return nil, domain.ErrValidacao
	}
	item, err := uc.quotationRepo.GetItemByID(lineItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNaoEncontrado
	}
	r := &entity.SupplierResponse{
		LineItemID:     lineItemID,
		Supplier:       supplier,
		UnitPrice:      in.UnitPrice,
		DeliveryTerm:   in.DeliveryTerm,
		PaymentTerms:   in.PaymentTerms,
		AttachmentPath: attachmentPath,
		SubmittedAt:    uc.now(),
	}
	if err := uc.responseRepo.Create(r); err != nil {
		return nil, err
	}
	out := toSupplierResponseResponse(r)
	return &out, nil
}
