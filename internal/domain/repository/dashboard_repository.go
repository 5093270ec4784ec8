package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardCards indicadores de cabecera del panel.
type DashboardCards struct {
	VentasHoy      decimal.Decimal
	VentasMes      decimal.Decimal
	TotalProductos int
	TotalClientes  int
}

// MonthlySales total facturado por mes.
type MonthlySales struct {
	Month string // "2026-08"
	Total decimal.Decimal
}

// TopProduct producto más vendido por cantidad acumulada.
type TopProduct struct {
	ProductID   int64
	Description string
	Quantity    decimal.Decimal
	Total       decimal.Decimal
}

// DailySales total facturado por día.
type DailySales struct {
	Day   time.Time
	Total decimal.Decimal
}

// DocumentTypeCount cantidad de comprobantes por tipo (venta/presupuesto).
type DocumentTypeCount struct {
	Type  string
	Count int
}

// DashboardRepository consultas agregadas sobre ventas para el panel.
// Las series de facturación solo consideran comprobantes de tipo venta
// (los presupuestos no facturan); la distribución compara ambos tipos.
type DashboardRepository interface {
	Cards() (*DashboardCards, error)
	MonthlySalesTotals(months int) ([]MonthlySales, error)
	TopProducts(limit int) ([]TopProduct, error)
	DailySalesTotals(days int) ([]DailySales, error)
	SalesDistribution() ([]DocumentTypeCount, error)
}
