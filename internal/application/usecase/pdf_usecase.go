package usecase

import "context"

// PDFUseCase gera o mapa comparativo de uma cotação em PDF (visão do
// administrador, para arquivar ou circular fora do portal).
type PDFUseCase struct {
	quotationUC *QuotationUseCase
	generator   ComparisonPDFGenerator
}

// NewPDFUseCase constrói o caso de uso.
func NewPDFUseCase(quotationUC *QuotationUseCase, generator ComparisonPDFGenerator) *PDFUseCase {
	return &PDFUseCase{quotationUC: quotationUC, generator: generator}
}

// ComparisonPDF monta o mapa comparativo e devolve os bytes do PDF.
// ErrNaoEncontrado se a cotação não existir.
func (uc *PDFUseCase) ComparisonPDF(ctx context.Context, quotationID int64) ([]byte, error) {
	mapa, err := uc.quotationUC.ComparisonMap(quotationID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateComparisonPDF(ctx, mapa)
}
