package entity

import "time"

// Quotation é uma cotação aberta para uma rubrica orçamentária.
// Criada uma vez por rubrica distinta em cada importação; imutável depois.
type Quotation struct {
	ID        int64
	Rubrica   string
	CreatedAt time.Time
}

// LineItem é um item solicitado dentro de uma cotação.
// Criado apenas na importação; imutável.
type LineItem struct {
	ID          int64
	QuotationID int64
	ItemCode    string
	Description string
	Unit        string
	Quantity    int
}
