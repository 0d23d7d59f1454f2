package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierResponse é a proposta de um fornecedor para um item de cotação.
// Tabela append-only: cada envio insere uma nova linha, sem unicidade por
// (item, fornecedor) — o histórico de propostas é preservado.
type SupplierResponse struct {
	ID             int64
	LineItemID     int64
	Supplier       string // username do fornecedor
	UnitPrice      decimal.Decimal
	DeliveryTerm   string
	PaymentTerms   string
	AttachmentPath string // vazio quando não há anexo
	SubmittedAt    time.Time
}
