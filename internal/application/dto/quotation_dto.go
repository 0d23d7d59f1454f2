package dto

import "time"

// QuotationResponse uma cotação no listado.
type QuotationResponse struct {
	ID        int64     `json:"id"`
	Rubrica   string    `json:"rubrica"`
	CreatedAt time.Time `json:"created_at"`
}

// LineItemResponse um item de cotação.
type LineItemResponse struct {
	ID          int64  `json:"id"`
	QuotationID int64  `json:"quotation_id"`
	ItemCode    string `json:"item"`
	Description string `json:"descricao"`
	Unit        string `json:"unidade"`
	Quantity    int    `json:"quantidade"`
}

// ImportResult resumo de uma importação bem-sucedida.
type ImportResult struct {
	Quotations int `json:"cotacoes_criadas"`
	Items      int `json:"itens_criados"`
}

// ComparisonItem um item do mapa comparativo, com propostas ranqueadas.
type ComparisonItem struct {
	Item      LineItemResponse           `json:"item"`
	Responses []SupplierResponseResponse `json:"respostas"` // ordem crescente de preço
	Cheapest  *SupplierResponseResponse  `json:"menor_preco,omitempty"`
}

// ComparisonMap mapa comparativo de uma cotação (visão do administrador).
type ComparisonMap struct {
	Quotation QuotationResponse `json:"cotacao"`
	Items     []ComparisonItem  `json:"itens"`
}
