// Package ranking compara propostas de fornecedores para um item de cotação.
// Funções puras, sem efeito colateral: ordenam por preço unitário e apontam
// a proposta mais barata. Propostas repetidas do mesmo fornecedor são
// ranqueadas de forma independente (sem deduplicação).
package ranking

import (
	"sort"

	"github.com/gabrielxlive96/portaldecompras/internal/domain"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/entity"
)

// Rank devolve uma nova fatia com as propostas em ordem crescente de preço
// unitário. A ordenação é estável: empates preservam a ordem de inserção.
// O slice de entrada não é modificado.
//
// Preço negativo nunca deveria chegar aqui (a coluna tem CHECK >= 0), mas um
// dado corrompido é rejeitado com ErrDadosInvalidos em vez de ranqueado.
func Rank(responses []*entity.SupplierResponse) ([]*entity.SupplierResponse, error) {
	for _, r := range responses {
		if r == nil || r.UnitPrice.IsNegative() {
			return nil, domain.ErrDadosInvalidos
		}
	}
	ranked := make([]*entity.SupplierResponse, len(responses))
	copy(ranked, responses)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].UnitPrice.LessThan(ranked[j].UnitPrice)
	})
	return ranked, nil
}

// Cheapest devolve a proposta de menor preço, ou nil quando não há propostas.
// Equivale ao primeiro elemento de Rank.
func Cheapest(responses []*entity.SupplierResponse) (*entity.SupplierResponse, error) {
	ranked, err := Rank(responses)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	return ranked[0], nil
}
