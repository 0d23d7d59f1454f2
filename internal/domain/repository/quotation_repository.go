package repository

import "github.com/gabrielxlive96/portaldecompras/internal/domain/entity"

// QuotationRepository define a porta de persistência para cotações e itens.
type QuotationRepository interface {
	// Create insere a cotação e devolve o ID gerado em q.ID.
	Create(q *entity.Quotation) error
	// CreateItem insere o item e devolve o ID gerado em item.ID.
	CreateItem(item *entity.LineItem) error
	GetByID(id int64) (*entity.Quotation, error)
	// List devolve as cotações da mais recente para a mais antiga (por ID).
	List() ([]*entity.Quotation, error)
	ListItems(quotationID int64) ([]*entity.LineItem, error)
	GetItemByID(id int64) (*entity.LineItem, error)
}
