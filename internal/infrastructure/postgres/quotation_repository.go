package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gabrielxlive96/portaldecompras/internal/domain/entity"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementação de QuotationRepository (usável com pool ou tx).
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// Create insere a cotação e preenche q.ID com o ID gerado.
func (r *QuotationRepo) Create(q *entity.Quotation) error {
	query := `
		INSERT INTO cotacoes (rubrica, created_at)
		VALUES ($1, $2)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, q.Rubrica, q.CreatedAt).Scan(&q.ID)
	if err != nil {
		return fmt.Errorf("insert cotacao: %w", err)
	}
	return nil
}

// CreateItem insere o item e preenche item.ID com o ID gerado.
func (r *QuotationRepo) CreateItem(item *entity.LineItem) error {
	query := `
		INSERT INTO itens_cotacao (cotacao_id, item, descricao, unidade, quantidade)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.QuotationID, item.ItemCode, item.Description, item.Unit, item.Quantity,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert item de cotacao: %w", err)
	}
	return nil
}

// GetByID obtém uma cotação por ID. Devolve nil se não existir.
func (r *QuotationRepo) GetByID(id int64) (*entity.Quotation, error) {
	query := `SELECT id, rubrica, created_at FROM cotacoes WHERE id = $1`
	var q entity.Quotation
	err := r.q.QueryRow(context.Background(), query, id).Scan(&q.ID, &q.Rubrica, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cotacao by id: %w", err)
	}
	return &q, nil
}

// List devolve as cotações da mais recente para a mais antiga (por ID).
func (r *QuotationRepo) List() ([]*entity.Quotation, error) {
	query := `SELECT id, rubrica, created_at FROM cotacoes ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cotacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		var q entity.Quotation
		if err := rows.Scan(&q.ID, &q.Rubrica, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cotacao: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// ListItems devolve os itens de uma cotação, na ordem de inserção.
func (r *QuotationRepo) ListItems(quotationID int64) ([]*entity.LineItem, error) {
	query := `
		SELECT id, cotacao_id, item, descricao, unidade, quantidade
		FROM itens_cotacao WHERE cotacao_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list itens de cotacao: %w", err)
	}
	defer rows.Close()
	var list []*entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(&it.ID, &it.QuotationID, &it.ItemCode, &it.Description, &it.Unit, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetItemByID obtém um item por ID. Devolve nil se não existir.
func (r *QuotationRepo) GetItemByID(id int64) (*entity.LineItem, error) {
	query := `
		SELECT id, cotacao_id, item, descricao, unidade, quantidade
		FROM itens_cotacao WHERE id = $1`
	var it entity.LineItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.QuotationID, &it.ItemCode, &it.Description, &it.Unit, &it.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return &it, nil
}
