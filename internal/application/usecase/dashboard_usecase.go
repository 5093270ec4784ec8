package usecase

import (
	"context"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

// DashboardUseCase indicadores agregados del panel de inicio.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase crea el caso de uso del panel.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

func (uc *DashboardUseCase) Cards(ctx context.Context) (*dto.DashboardCardsResponse, error) {
	cards, err := uc.dashboardRepo.Cards()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardCardsResponse{
		VentasHoy:      cards.VentasHoy,
		VentasMes:      cards.VentasMes,
		TotalProductos: cards.TotalProductos,
		TotalClientes:  cards.TotalClientes,
	}, nil
}

func (uc *DashboardUseCase) MonthlySales(ctx context.Context, months int) ([]dto.MonthlySalesResponse, error) {
	if months <= 0 {
		months = 12
	}
	series, err := uc.dashboardRepo.MonthlySalesTotals(months)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlySalesResponse, 0, len(series))
	for _, p := range series {
		out = append(out, dto.MonthlySalesResponse{Month: p.Month, Total: p.Total})
	}
	return out, nil
}

func (uc *DashboardUseCase) TopProducts(ctx context.Context, limit int) ([]dto.TopProductResponse, error) {
	if limit <= 0 {
		limit = 5
	}
	products, err := uc.dashboardRepo.TopProducts(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.TopProductResponse{
			ProductID:   p.ProductID,
			Description: p.Description,
			Quantity:    p.Quantity,
			Total:       p.Total,
		})
	}
	return out, nil
}

func (uc *DashboardUseCase) DailySales(ctx context.Context, days int) ([]dto.DailySalesResponse, error) {
	if days <= 0 {
		days = 30
	}
	series, err := uc.dashboardRepo.DailySalesTotals(days)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailySalesResponse, 0, len(series))
	for _, p := range series {
		out = append(out, dto.DailySalesResponse{Day: p.Day.Format("2006-01-02"), Total: p.Total})
	}
	return out, nil
}

// Distribution reparto de comprobantes entre ventas y presupuestos,
// con las etiquetas que muestra el gráfico de torta.
func (uc *DashboardUseCase) Distribution(ctx context.Context) ([]dto.DistributionResponse, error) {
	counts, err := uc.dashboardRepo.SalesDistribution()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DistributionResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.DistributionResponse{
			Type:     distributionLabel(c.Type),
			Cantidad: c.Count,
		})
	}
	return out, nil
}

func distributionLabel(saleType string) string {
	switch saleType {
	case entity.SaleTypeVenta:
		return "Ventas"
	case entity.SaleTypePresupuesto:
		return "Presupuestos"
	default:
		return saleType
	}
}
