package repository

import "github.com/tu-usuario/ventas-pos/internal/domain/entity"

// SaleRepository persistencia de ventas y presupuestos.
type SaleRepository interface {
	// Create inserta la cabecera y asigna sale.ID.
	Create(sale *entity.Sale) error
	// CreateDetail inserta una línea de detalle y asigna detail.ID.
	CreateDetail(detail *entity.SaleDetail) error
	GetByID(id int64) (*entity.Sale, error)
	GetDetails(saleID int64) ([]*entity.SaleDetail, error)
	List(limit, offset int) ([]*entity.Sale, error)
	// NextInvoiceNumber devuelve el próximo consecutivo (>=1) para la serie
	// (tipo de comprobante, punto de venta). Dentro de una transacción de
	// emisión el valor es autoritativo.
	NextInvoiceNumber(saleType, pointOfSale string) (int64, error)
}
