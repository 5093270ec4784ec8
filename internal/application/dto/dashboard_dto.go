package dto

import "github.com/shopspring/decimal"

// DashboardCardsResponse indicadores de cabecera del panel.
type DashboardCardsResponse struct {
	VentasHoy      decimal.Decimal `json:"ventasHoy"`
	VentasMes      decimal.Decimal `json:"ventasMes"`
	TotalProductos int             `json:"totalProductos"`
	TotalClientes  int             `json:"totalClientes"`
}

// MonthlySalesResponse punto de la serie mensual.
type MonthlySalesResponse struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// TopProductResponse producto más vendido.
type TopProductResponse struct {
	ProductID   int64           `json:"productId"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// DailySalesResponse punto de la serie diaria.
type DailySalesResponse struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
}

// DistributionResponse porción del gráfico de torta ventas vs presupuestos.
type DistributionResponse struct {
	Type     string `json:"type"`
	Cantidad int    `json:"cantidad"`
}
