package sales

import (
	"context"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

// TxRunner ejecuta una función con repos de ventas y productos atados a una
// misma transacción: el consecutivo, la cabecera, los detalles y el
// descuento de stock se confirman o revierten juntos.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// SalePDFGenerator puerto para el render del comprobante (factura o
// presupuesto). El customer ya viene canonicalizado por el resolver.
type SalePDFGenerator interface {
	GenerateSalePDF(
		ctx context.Context,
		sale *entity.Sale,
		details []*entity.SaleDetail,
		customer dto.SaleCustomerPayload,
	) ([]byte, error)
}
