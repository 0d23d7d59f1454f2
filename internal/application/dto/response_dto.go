package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitResponseRequest proposta enviada por um fornecedor para um item.
// O anexo chega fora do corpo (multipart) e é tratado pelo handler.
type SubmitResponseRequest struct {
	UnitPrice    decimal.Decimal `json:"preco" form:"preco"`
	DeliveryTerm string          `json:"prazo" form:"prazo"`
	PaymentTerms string          `json:"condicoes" form:"condicoes"`
}

// SupplierResponseResponse uma proposta persistida.
type SupplierResponseResponse struct {
	ID             int64           `json:"id"`
	LineItemID     int64           `json:"item_id"`
	Supplier       string          `json:"fornecedor"`
	UnitPrice      decimal.Decimal `json:"preco"`
	DeliveryTerm   string          `json:"prazo"`
	PaymentTerms   string          `json:"condicoes"`
	AttachmentPath string          `json:"anexo,omitempty"`
	SubmittedAt    time.Time       `json:"data_resposta"`
}
