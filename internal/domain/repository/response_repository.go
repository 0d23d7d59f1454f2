package repository

import "github.com/gabrielxlive96/portaldecompras/internal/domain/entity"

// ResponseRepository define a porta de persistência para propostas de fornecedores.
type ResponseRepository interface {
	// Create insere sempre uma nova linha (append-only) e devolve o ID em r.ID.
	Create(r *entity.SupplierResponse) error
	ListByItem(lineItemID int64) ([]*entity.SupplierResponse, error)
}
