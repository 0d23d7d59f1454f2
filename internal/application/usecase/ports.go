package usecase

import (
	"context"

	"github.com/gabrielxlive96/portaldecompras/internal/application/dto"
)

// ComparisonPDFGenerator porta para a geração do PDF do mapa comparativo.
// Implementada em infrastructure/pdf.
type ComparisonPDFGenerator interface {
	GenerateComparisonPDF(ctx context.Context, mapa *dto.ComparisonMap) ([]byte, error)
}
