package ranking_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielxlive96/portaldecompras/internal/domain"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/entity"
	"github.com/gabrielxlive96/portaldecompras/internal/domain/ranking"
)

func resposta(id int64, fornecedor string, preco string) *entity.SupplierResponse {
	return &entity.SupplierResponse{
		ID:         id,
		LineItemID: 1,
		Supplier:   fornecedor,
		UnitPrice:  decimal.RequireFromString(preco),
	}
}

// Cenário do mapa comparativo: três propostas, duas do mesmo fornecedor.
// A ordem esperada é crescente por preço, sem deduplicação por fornecedor.
func TestRank_OrdenaPorPrecoCrescente(t *testing.T) {
	in := []*entity.SupplierResponse{
		resposta(1, "fornecedor1", "12.50"),
		resposta(2, "fornecedor2", "9.99"),
		resposta(3, "fornecedor1", "11.00"),
	}

	ranked, err := ranking.Rank(in)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "fornecedor2", ranked[0].Supplier)
	assert.True(t, ranked[0].UnitPrice.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, "fornecedor1", ranked[1].Supplier)
	assert.True(t, ranked[1].UnitPrice.Equal(decimal.RequireFromString("11.00")))
	assert.Equal(t, "fornecedor1", ranked[2].Supplier)
	assert.True(t, ranked[2].UnitPrice.Equal(decimal.RequireFromString("12.50")))
}

// Empates devem preservar a ordem de inserção (ordenação estável).
func TestRank_EmpatePreservaOrdemDeInsercao(t *testing.T) {
	in := []*entity.SupplierResponse{
		resposta(10, "fornecedor1", "5.00"),
		resposta(11, "fornecedor2", "5.00"),
		resposta(12, "fornecedor3", "5.00"),
	}

	ranked, err := ranking.Rank(in)
	require.NoError(t, err)

	assert.Equal(t, int64(10), ranked[0].ID)
	assert.Equal(t, int64(11), ranked[1].ID)
	assert.Equal(t, int64(12), ranked[2].ID)
}

// Rank(Rank(x)) == Rank(x): ranquear duas vezes não altera nada.
func TestRank_Idempotente(t *testing.T) {
	in := []*entity.SupplierResponse{
		resposta(1, "a", "3.10"),
		resposta(2, "b", "1.05"),
		resposta(3, "c", "1.05"),
		resposta(4, "d", "2.00"),
	}

	once, err := ranking.Rank(in)
	require.NoError(t, err)
	twice, err := ranking.Rank(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

// Rank não deve modificar a fatia de entrada.
func TestRank_NaoModificaEntrada(t *testing.T) {
	in := []*entity.SupplierResponse{
		resposta(1, "a", "9.00"),
		resposta(2, "b", "1.00"),
	}

	_, err := ranking.Rank(in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), in[0].ID, "entrada deve continuar na ordem original")
	assert.Equal(t, int64(2), in[1].ID)
}

func TestRank_EntradaVazia(t *testing.T) {
	ranked, err := ranking.Rank(nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

// Preço negativo é dado corrompido: rejeitar, não ranquear.
func TestRank_PrecoNegativoRetornaErrDadosInvalidos(t *testing.T) {
	in := []*entity.SupplierResponse{
		resposta(1, "a", "10.00"),
		resposta(2, "b", "-0.01"),
	}

	_, err := ranking.Rank(in)
	assert.ErrorIs(t, err, domain.ErrDadosInvalidos)

	_, err = ranking.Cheapest(in)
	assert.ErrorIs(t, err, domain.ErrDadosInvalidos)
}

func TestCheapest_EquivaleAoPrimeiroDoRank(t *testing.T) {
	in := []*entity.SupplierResponse{
		resposta(1, "fornecedor1", "12.50"),
		resposta(2, "fornecedor2", "9.99"),
		resposta(3, "fornecedor1", "11.00"),
	}

	cheapest, err := ranking.Cheapest(in)
	require.NoError(t, err)
	require.NotNil(t, cheapest)

	ranked, err := ranking.Rank(in)
	require.NoError(t, err)
	assert.Equal(t, ranked[0], cheapest)
	assert.Equal(t, "fornecedor2", cheapest.Supplier)
}

// Sem propostas: ausência (nil), não erro.
func TestCheapest_SemPropostasRetornaNil(t *testing.T) {
	cheapest, err := ranking.Cheapest(nil)
	require.NoError(t, err)
	assert.Nil(t, cheapest)
}
