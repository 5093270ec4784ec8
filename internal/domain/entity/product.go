package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// SalePrice es el precio final de venta (IVA incluido); Price se mantiene
// como precio de lista para productos cargados antes del esquema de
// utilidad sobre costo.
type Product struct {
	ID                int64
	SKU               string
	Name              string
	Price             decimal.Decimal
	SalePrice         decimal.Decimal
	CostBase          decimal.Decimal
	UtilityPercentage decimal.Decimal
	IncludeIVA        bool
	Discounts         decimal.Decimal
	Stock             decimal.Decimal
	MinStock          decimal.Decimal
	Supplier          string
	Brand             string
	Category          string
	Department        string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DisplayPrice devuelve el precio a ofrecer en el punto de venta:
// SalePrice si está definido, si no el precio de lista.
func (p *Product) DisplayPrice() decimal.Decimal {
	if !p.SalePrice.IsZero() {
		return p.SalePrice
	}
	return p.Price
}
