package postgres

import (
	"context"
	"fmt"

	"github.com/gabrielxlive96/portaldecompras/internal/domain"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/entity"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/repository"
)

var _ repository.ResponseRepository = (*ResponseRepo)(nil)

// ResponseRepo implementação de ResponseRepository sobre PostgreSQL.
// A tabela respostas_itens é append-only.
type ResponseRepo struct {
	q Querier
}

// NewResponseRepository constrói o adaptador de persistência para propostas.
func NewResponseRepository(q Querier) *ResponseRepo {
	return &ResponseRepo{q: q}
}

// Create insere sempre uma nova linha e preenche r.ID com o ID gerado.
// ErrNaoEncontrado se o item referenciado não existir (FK).
func (r *ResponseRepo) Create(resp *entity.SupplierResponse) error {
	query := `
		INSERT INTO respostas_itens (item_id, fornecedor, preco, prazo, condicoes, anexo, data_resposta)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		resp.LineItemID, resp.Supplier, resp.UnitPrice, resp.DeliveryTerm,
		resp.PaymentTerms, resp.AttachmentPath, resp.SubmittedAt,
	).Scan(&resp.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("insert resposta: %w", err)
	}
	return nil
}

// ListByItem devolve as propostas de um item, na ordem de inserção.
// O ranqueamento por preço é responsabilidade do domínio (ranking).
func (r *ResponseRepo) ListByItem(lineItemID int64) ([]*entity.SupplierResponse, error) {
	query := `
		SELECT id, item_id, fornecedor, preco, prazo, condicoes, anexo, data_resposta
		FROM respostas_itens WHERE item_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, lineItemID)
	if err != nil {
		return nil, fmt.Errorf("list respostas: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierResponse
	for rows.Next() {
		var resp entity.SupplierResponse
		if err := rows.Scan(&resp.ID, &resp.LineItemID, &resp.Supplier, &resp.UnitPrice,
			&resp.DeliveryTerm, &resp.PaymentTerms, &resp.AttachmentPath, &resp.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan resposta: %w", err)
		}
		list = append(list, &resp)
	}
	return list, rows.Err()
}
