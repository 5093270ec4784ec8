package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas sobre ventas para el panel de inicio.
// Las series de facturación solo suman comprobantes de tipo venta.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Cards calcula los indicadores de cabecera en una sola consulta.
func (r *DashboardRepo) Cards() (*repository.DashboardCards, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total_final) FROM sales
				WHERE type = $1 AND invoice_date = CURRENT_DATE), 0),
			COALESCE((SELECT SUM(total_final) FROM sales
				WHERE type = $1 AND date_trunc('month', invoice_date) = date_trunc('month', CURRENT_DATE)), 0),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM clients)`
	var cards repository.DashboardCards
	err := r.q.QueryRow(context.Background(), query, entity.SaleTypeVenta).Scan(
		&cards.VentasHoy, &cards.VentasMes, &cards.TotalProductos, &cards.TotalClientes,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard cards: %w", err)
	}
	return &cards, nil
}

// MonthlySalesTotals devuelve el total facturado por mes, últimos N meses.
func (r *DashboardRepo) MonthlySalesTotals(months int) ([]repository.MonthlySales, error) {
	query := `
		SELECT to_char(date_trunc('month', invoice_date), 'YYYY-MM') AS month,
		       SUM(total_final)
		FROM sales
		WHERE type = $1
		  AND invoice_date >= date_trunc('month', CURRENT_DATE) - make_interval(months => $2 - 1)
		GROUP BY 1 ORDER BY 1`
	rows, err := r.q.Query(context.Background(), query, entity.SaleTypeVenta, months)
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}
	defer rows.Close()
	var series []repository.MonthlySales
	for rows.Next() {
		var p repository.MonthlySales
		if err := rows.Scan(&p.Month, &p.Total); err != nil {
			return nil, fmt.Errorf("scan monthly sales: %w", err)
		}
		series = append(series, p)
	}
	return series, rows.Err()
}

// TopProducts devuelve los productos más vendidos por cantidad acumulada.
func (r *DashboardRepo) TopProducts(limit int) ([]repository.TopProduct, error) {
	query := `
		SELECT d.product_id, MAX(d.description), SUM(d.quantity), SUM(d.total_amount)
		FROM sale_details d
		JOIN sales s ON s.id = d.sale_id
		WHERE s.type = $1
		GROUP BY d.product_id
		ORDER BY SUM(d.quantity) DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, entity.SaleTypeVenta, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProduct
	for rows.Next() {
		var p repository.TopProduct
		if err := rows.Scan(&p.ProductID, &p.Description, &p.Quantity, &p.Total); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// DailySalesTotals devuelve el total facturado por día, últimos N días.
func (r *DashboardRepo) DailySalesTotals(days int) ([]repository.DailySales, error) {
	query := `
		SELECT invoice_date, SUM(total_final)
		FROM sales
		WHERE type = $1 AND invoice_date >= CURRENT_DATE - make_interval(days => $2 - 1)
		GROUP BY invoice_date ORDER BY invoice_date`
	rows, err := r.q.Query(context.Background(), query, entity.SaleTypeVenta, days)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	defer rows.Close()
	var series []repository.DailySales
	for rows.Next() {
		var p repository.DailySales
		if err := rows.Scan(&p.Day, &p.Total); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		series = append(series, p)
	}
	return series, rows.Err()
}

// SalesDistribution cuenta comprobantes por tipo (ventas vs presupuestos).
func (r *DashboardRepo) SalesDistribution() ([]repository.DocumentTypeCount, error) {
	query := `SELECT type, COUNT(*) FROM sales GROUP BY type ORDER BY type`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("sales distribution: %w", err)
	}
	defer rows.Close()
	var counts []repository.DocumentTypeCount
	for rows.Next() {
		var c repository.DocumentTypeCount
		if err := rows.Scan(&c.Type, &c.Count); err != nil {
			return nil, fmt.Errorf("scan sales distribution: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
