// Package importer implementa a importação da planilha de solicitações:
// leitura do .xlsx, validação das colunas obrigatórias e gravação de uma
// cotação por rubrica distinta, com os respectivos itens, em uma única
// transação.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gabrielxlive96/portaldecompras/internal/domain"
)

// Colunas obrigatórias da planilha, como nomeadas pelo setor de compras.
// O casamento é feito de forma normalizada (sem acentos, sem caixa), então
// "Descricao" e "DESCRIÇÃO" também são aceitos.
const (
	ColItem       = "Item"
	ColRubrica    = "Rubrica"
	ColDescricao  = "Descrição"
	ColUnidade    = "Unidade de Medida"
	ColQuantidade = "Quantidade"
)

var requiredColumns = []string{ColItem, ColRubrica, ColDescricao, ColUnidade, ColQuantidade}

// Row uma linha validada da planilha.
type Row struct {
	ItemCode    string
	Rubrica     string
	Description string
	Unit        string
	Quantity    int
}

// ValidationError planilha rejeitada antes de qualquer gravação.
type ValidationError struct {
	MissingColumns []string
	Detail         string
}

func (e *ValidationError) Error() string {
	if len(e.MissingColumns) > 0 {
		return "planilha inválida: colunas obrigatórias ausentes: " + strings.Join(e.MissingColumns, ", ")
	}
	return "planilha inválida: " + e.Detail
}

// Unwrap permite errors.Is(err, domain.ErrValidacao).
func (e *ValidationError) Unwrap() error { return domain.ErrValidacao }

// normalizeHeader remove acentos, espaços redundantes e caixa para casar
// cabeçalhos independentemente de acentuação (Descrição == Descricao).
func normalizeHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.Join(strings.Fields(out), " "))
}

// ParseXLSX lê a primeira aba da planilha e devolve as linhas validadas.
// Retorna *ValidationError se faltar alguma coluna obrigatória ou se alguma
// quantidade não for um inteiro positivo. Linhas totalmente vazias são
// ignoradas.
func ParseXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ValidationError{Detail: "não foi possível abrir o arquivo: " + err.Error()}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ValidationError{Detail: "arquivo sem abas"}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ler aba %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, &ValidationError{MissingColumns: requiredColumns}
	}

	// Índice de cada coluna obrigatória no cabeçalho.
	colIndex := map[string]int{}
	for i, header := range rows[0] {
		colIndex[normalizeHeader(header)] = i
	}
	var missing []string
	idx := map[string]int{}
	for _, col := range requiredColumns {
		i, ok := colIndex[normalizeHeader(col)]
		if !ok {
			missing = append(missing, col)
			continue
		}
		idx[col] = i
	}
	if len(missing) > 0 {
		return nil, &ValidationError{MissingColumns: missing}
	}

	cell := func(row []string, col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []Row
	for n, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		qtyRaw := cell(row, ColQuantidade)
		qty, err := strconv.Atoi(qtyRaw)
		if err != nil {
			return nil, &ValidationError{Detail: fmt.Sprintf("linha %d: quantidade %q não é um número inteiro", n+2, qtyRaw)}
		}
		if qty <= 0 {
			return nil, &ValidationError{Detail: fmt.Sprintf("linha %d: quantidade deve ser maior que zero", n+2)}
		}
		out = append(out, Row{
			ItemCode:    cell(row, ColItem),
			Rubrica:     cell(row, ColRubrica),
			Description: cell(row, ColDescricao),
			Unit:        cell(row, ColUnidade),
			Quantity:    qty,
		})
	}
	return out, nil
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
