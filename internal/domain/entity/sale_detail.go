package entity

import "github.com/shopspring/decimal"

// SaleDetail representa una línea de detalle de una venta o presupuesto.
// Los montos Net/IVA/Discount/Total provienen del motor de precios y están
// redondeados a 2 decimales; se persisten tal cual para que el comprobante
// impreso coincida siempre con lo calculado al emitir.
type SaleDetail struct {
	ID             int64
	SaleID         int64
	LineNumber     int // posición 1-based dentro del comprobante
	ProductID      int64
	InternalCode   string
	Description    string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal // precio final, IVA incluido
	DiscountRate   decimal.Decimal // porcentaje [0,100]
	IVARate        decimal.Decimal // porcentaje >= 0
	NetAmount      decimal.Decimal
	IVAAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
}
