package importer

import (
	"context"
	"io"
	"time"

	"github.com/gabrielxlive96/portaldecompras/internal/application/dto"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/entity"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação, com o repositório atado à tx.
// Implementado por postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.QuotationRepository) error) error
}

// ImportUseCase importa a planilha de solicitações do administrador.
type ImportUseCase struct {
	tx  TxRunner
	now func() time.Time
}

// NewImportUseCase constrói o caso de uso de importação.
func NewImportUseCase(tx TxRunner) *ImportUseCase {
	return &ImportUseCase{tx: tx, now: time.Now}
}

// Import valida e grava a planilha. A validação de colunas acontece antes de
// qualquer escrita; a gravação inteira roda em uma transação, então uma falha
// no meio do lote não deixa cotações ou itens parciais.
//
// Cada rubrica distinta gera uma cotação nova, na ordem de primeira
// aparição na planilha — mesmo que já exista cotação com a mesma rubrica de
// uma importação anterior (reimportar o mesmo arquivo duplica as cotações;
// comportamento intencional, o histórico de rodadas de cotação é preservado).
func (uc *ImportUseCase) Import(ctx context.Context, file io.Reader) (*dto.ImportResult, error) {
	rows, err := ParseXLSX(file)
	if err != nil {
		return nil, err
	}

	// Agrupa por rubrica preservando a ordem de primeira aparição.
	order := make([]string, 0)
	groups := make(map[string][]Row)
	for _, row := range rows {
		if _, seen := groups[row.Rubrica]; !seen {
			order = append(order, row.Rubrica)
		}
		groups[row.Rubrica] = append(groups[row.Rubrica], row)
	}

	result := &dto.ImportResult{}
	createdAt := uc.now()
	err = uc.tx.Run(ctx, func(repo repository.QuotationRepository) error {
		for _, rubrica := range order {
			q := &entity.Quotation{Rubrica: rubrica, CreatedAt: createdAt}
			if err := repo.Create(q); err != nil {
				return err
			}
			result.Quotations++
			for _, row := range groups[rubrica] {
				item := &entity.LineItem{
					QuotationID: q.ID,
					ItemCode:    row.ItemCode,
					Description: row.Description,
					Unit:        row.Unit,
					Quantity:    row.Quantity,
				}
				if err := repo.CreateItem(item); err != nil {
					return err
				}
				result.Items++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
