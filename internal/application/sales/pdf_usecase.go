package sales

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

// PDFUseCase genera el comprobante imprimible de una venta o presupuesto.
type PDFUseCase struct {
	saleRepo   repository.SaleRepository
	clientRepo repository.ClientRepository
	generator  SalePDFGenerator
}

// NewPDFUseCase crea el caso de uso de descarga de comprobantes.
func NewPDFUseCase(
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	generator SalePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, clientRepo: clientRepo, generator: generator}
}

// DownloadSalePDF devuelve el PDF del comprobante y el nombre de archivo
// sugerido ("factura-0003-00000012.pdf" o "presupuesto-0001-00000012.pdf").
func (uc *PDFUseCase) DownloadSalePDF(ctx context.Context, id int64) ([]byte, string, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	details, err := uc.saleRepo.GetDetails(sale.ID)
	if err != nil {
		return nil, "", err
	}

	var client *entity.Client
	if sale.ClientID != nil {
		if client, err = uc.clientRepo.GetByID(*sale.ClientID); err != nil {
			return nil, "", err
		}
	}
	customer := EnrichCustomer(sale, client)

	document, err := uc.generator.GenerateSalePDF(ctx, sale, details, customer)
	if err != nil {
		return nil, "", fmt.Errorf("generando pdf del comprobante %d: %w", sale.ID, err)
	}

	prefix := "factura"
	if sale.Type == entity.SaleTypePresupuesto {
		prefix = "presupuesto"
	}
	filename := fmt.Sprintf("%s-%s.pdf", prefix, sale.FullInvoiceNumber())
	return document, filename, nil
}
