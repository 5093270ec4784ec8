package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
	domainsales "github.com/tu-usuario/ventas-pos/internal/domain/sales"
)

// NumberingUseCase anticipa los identificadores del próximo comprobante para
// que el formulario muestre "POS-NNNNNNNN" antes de emitir. El valor es solo
// una vista previa: el consecutivo definitivo se asigna al emitir, dentro de
// la transacción.
type NumberingUseCase struct {
	saleRepo repository.SaleRepository
}

// NewNumberingUseCase crea el caso de uso de numeración.
func NewNumberingUseCase(saleRepo repository.SaleRepository) *NumberingUseCase {
	return &NumberingUseCase{saleRepo: saleRepo}
}

// NextIdentifiers resuelve punto de venta, próximo consecutivo y letra
// normalizada para (documentType, invoiceType). La letra vacía cae en "X".
func (uc *NumberingUseCase) NextIdentifiers(ctx context.Context, documentType, invoiceType string) (*dto.NextInvoiceIdentifiersResponse, error) {
	entityType := domainsales.EntityType(documentType)
	if entityType == "" {
		return nil, fmt.Errorf("%w: tipo de documento desconocido %q", domain.ErrInvalidInput, documentType)
	}

	normalizedType := strings.ToUpper(strings.TrimSpace(invoiceType))
	if normalizedType == "" {
		normalizedType = "X"
	}

	pointOfSale := domainsales.ResolvePointOfSale(documentType, normalizedType)
	next, err := uc.saleRepo.NextInvoiceNumber(entityType, pointOfSale)
	if err != nil {
		return nil, err
	}

	return &dto.NextInvoiceIdentifiersResponse{
		PointOfSale:   pointOfSale,
		InvoiceNumber: domainsales.FormatConsecutive(next),
		InvoiceType:   normalizedType,
	}, nil
}
