package usecase

import (
	"github.com/gabrielxlive96/portaldecompras/internal/application/dto"
	"github.com/gabrielxlive96/portaldecompras/internal/domain"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/entity"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/ranking"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/repository"
)

// QuotationUseCase consultas de cotações: listado, itens e mapa comparativo.
type QuotationUseCase struct {
	quotationRepo repository.QuotationRepository
	responseRepo  repository.ResponseRepository
}

// NewQuotationUseCase constrói o caso de uso.
func NewQuotationUseCase(quotationRepo repository.QuotationRepository, responseRepo repository.ResponseRepository) *QuotationUseCase {
	return &QuotationUseCase{quotationRepo: quotationRepo, responseRepo: responseRepo}
}

// List devolve as cotações da mais recente para a mais antiga.
func (uc *QuotationUseCase) List() ([]dto.QuotationResponse, error) {
	quotations, err := uc.quotationRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		out = append(out, toQuotationResponse(q))
	}
	return out, nil
}

// ListItems devolve os itens de uma cotação. ErrNaoEncontrado se a cotação não existir.
func (uc *QuotationUseCase) ListItems(quotationID int64) ([]dto.LineItemResponse, error) {
	q, err := uc.quotationRepo.GetByID(quotationID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNaoEncontrado
	}
	items, err := uc.quotationRepo.ListItems(quotationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toLineItemResponse(it))
	}
	return out, nil
}

// ListRankedResponses devolve as propostas de um item em ordem crescente de
// preço, com a mais barata destacada. Item sem propostas devolve lista vazia
// e menor_preco ausente, não erro.
func (uc *QuotationUseCase) ListRankedResponses(lineItemID int64) (*dto.ComparisonItem, error) {
	item, err := uc.quotationRepo.GetItemByID(lineItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return uc.comparisonForItem(item)
}

// ComparisonMap monta a visão em árvore do administrador para uma cotação:
// itens com propostas ranqueadas e menor preço por item.
func (uc *QuotationUseCase) ComparisonMap(quotationID int64) (*dto.ComparisonMap, error) {
	q, err := uc.quotationRepo.GetByID(quotationID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNaoEncontrado
	}
	items, err := uc.quotationRepo.ListItems(quotationID)
	if err != nil {
		return nil, err
	}
	out := &dto.ComparisonMap{
		Quotation: toQuotationResponse(q),
		Items:     make([]dto.ComparisonItem, 0, len(items)),
	}
	for _, item := range items {
		ci, err := uc.comparisonForItem(item)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, *ci)
	}
	return out, nil
}

func (uc *QuotationUseCase) comparisonForItem(item *entity.LineItem) (*dto.ComparisonItem, error) {
	responses, err := uc.responseRepo.ListByItem(item.ID)
	if err != nil {
		return nil, err
	}
	ranked, err := ranking.Rank(responses)
	if err != nil {
		return nil, err
	}
	ci := &dto.ComparisonItem{
		Item:      toLineItemResponse(item),
		Responses: make([]dto.SupplierResponseResponse, 0, len(ranked)),
	}
	for _, r := range ranked {
		ci.Responses = append(ci.Responses, toSupplierResponseResponse(r))
	}
	if len(ci.Responses) > 0 {
		ci.Cheapest = &ci.Responses[0]
	}
	return ci, nil
}

func toQuotationResponse(q *entity.Quotation) dto.QuotationResponse {
	return dto.QuotationResponse{ID: q.ID, Rubrica: q.Rubrica, CreatedAt: q.CreatedAt}
}

func toLineItemResponse(it *entity.LineItem) dto.LineItemResponse {
	return dto.LineItemResponse{
		ID:          it.ID,
		QuotationID: it.QuotationID,
		ItemCode:    it.ItemCode,
		Description: it.Description,
		Unit:        it.Unit,
		Quantity:    it.Quantity,
	}
}

func toSupplierResponseResponse(r *entity.SupplierResponse) dto.SupplierResponseResponse {
	return dto.SupplierResponseResponse{
		ID:             r.ID,
		LineItemID:     r.LineItemID,
		Supplier:       r.Supplier,
		UnitPrice:      r.UnitPrice,
		DeliveryTerm:   r.DeliveryTerm,
		PaymentTerms:   r.PaymentTerms,
		AttachmentPath: r.AttachmentPath,
		SubmittedAt:    r.SubmittedAt,
	}
}
