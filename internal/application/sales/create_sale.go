package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/pricing"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
	domainsales "github.com/tu-usuario/ventas-pos/internal/domain/sales"
)

// LineError marca una línea del comprobante sin producto seleccionado.
// Line es 1-based, como la ve el usuario en la grilla.
type LineError struct {
	Line int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("producto no seleccionado en la línea %d", e.Line)
}

// CreateSaleUseCase emite ventas y presupuestos: valida las líneas, recalcula
// los montos en el servidor, resuelve la identidad del cliente, asigna el
// consecutivo dentro de la transacción y descuenta stock para las ventas.
type CreateSaleUseCase struct {
	txRunner       TxRunner
	saleRepo       repository.SaleRepository
	productRepo    repository.ProductRepository
	clientRepo     repository.ClientRepository
	defaultIVARate float64
}

// NewCreateSaleUseCase crea el caso de uso de emisión.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	defaultIVARate float64,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:       txRunner,
		saleRepo:       saleRepo,
		productRepo:    productRepo,
		clientRepo:     clientRepo,
		defaultIVARate: defaultIVARate,
	}
}

type saleLine struct {
	request dto.SaleItemRequest
	input   pricing.LineInput
	summary pricing.LineSummary
	product *entity.Product
}

// Create emite el comprobante. Los totales y resúmenes que trae el body son
// informativos: acá se recalculan línea por línea y se persisten los valores
// del servidor.
func (uc *CreateSaleUseCase) Create(ctx context.Context, req *dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	entityType := domainsales.EntityType(req.Type)
	if entityType == "" {
		return nil, fmt.Errorf("%w: tipo de documento desconocido %q", domain.ErrInvalidInput, req.Type)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: el comprobante no tiene líneas", domain.ErrInvalidInput)
	}

	if IsSubmissionBlocked(req.Customer, req.ClientID) {
		return nil, domain.ErrCustomerIncomplete
	}

	invoiceDate, err := time.Parse("2006-01-02", strings.TrimSpace(req.InvoiceDate))
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de comprobante inválida %q", domain.ErrInvalidInput, req.InvoiceDate)
	}

	// Un presupuesto siempre toma el consecutivo de su serie; el número manual
	// solo aplica a ventas y debe ser numérico para no romper la secuencia.
	manualNumber := strings.TrimSpace(req.InvoiceNumber)
	if entityType != entity.SaleTypeVenta {
		manualNumber = ""
	}
	if manualNumber != "" && !domainsales.ValidManualNumber(manualNumber) {
		return nil, fmt.Errorf("%w: número de comprobante inválido %q", domain.ErrInvalidInput, req.InvoiceNumber)
	}

	lines := make([]saleLine, 0, len(req.Items))
	summaries := make([]pricing.LineSummary, 0, len(req.Items))
	for i, item := range req.Items {
		if item.ProductID == nil || *item.ProductID <= 0 {
			return nil, &LineError{Line: i + 1}
		}
		ivaRate := uc.defaultIVARate
		if item.IVARate != nil {
			ivaRate = pricing.Sanitize(*item.IVARate, uc.defaultIVARate)
		}
		input := pricing.LineInput{
			Quantity:     pricing.Sanitize(item.Quantity, 0),
			UnitPrice:    pricing.Sanitize(item.UnitPrice, 0),
			DiscountRate: pricing.Sanitize(item.DiscountRate, 0),
			IVARate:      ivaRate,
		}
		summary := pricing.CalculateLine(input)
		lines = append(lines, saleLine{request: item, input: input, summary: summary})
		summaries = append(summaries, summary)
	}
	totals := pricing.AggregateTotals(summaries)

	customer := BuildCustomerPayload(req.Customer, req.ClientID)
	clientID := ResolveClientID(req.ClientID)
	if clientID != nil {
		customer.Type = entity.CustomerTypeHabitual
		customer.WithoutClient = false
	}

	for i := range lines {
		product, err := uc.productRepo.GetByID(*lines[i].request.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %d de la línea %d", domain.ErrNotFound, *lines[i].request.ProductID, i+1)
		}
		lines[i].product = product
	}

	// El stock solo compromete ventas; un presupuesto no mueve inventario.
	if entityType == entity.SaleTypeVenta {
		if issues := stockIssues(lines); len(issues) > 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, strings.Join(issues, "; "))
		}
	}

	pointOfSale := domainsales.ResolvePointOfSale(req.Type, req.InvoiceType)

	var clientRecord *entity.Client
	if clientID != nil {
		clientRecord, err = uc.clientRepo.GetByID(*clientID)
		if err != nil {
			return nil, err
		}
	}

	sale := &entity.Sale{
		Type:                  entityType,
		PointOfSale:           pointOfSale,
		InvoiceType:           strings.ToUpper(strings.TrimSpace(req.InvoiceType)),
		PaymentMethod:         req.PaymentMethod,
		InvoiceDate:           invoiceDate,
		CustomerType:          customer.Type,
		ClientID:              clientID,
		CustomerName:          customer.Name,
		CustomerDocument:      customer.Document,
		CustomerCUIT:          customer.CUIT,
		CustomerDNI:           customer.DNI,
		CustomerAddress:       customer.Address,
		CustomerPhone:         customer.Phone,
		CustomerWithoutClient: customer.WithoutClient,
		TotalNet:              decimal.NewFromFloat(totals.Net),
		TotalIVA:              decimal.NewFromFloat(totals.IVA),
		TotalDiscount:         decimal.NewFromFloat(totals.Discounts),
		TotalFinal:            decimal.NewFromFloat(totals.Final),
	}

	var details []*entity.SaleDetail
	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		if manualNumber == "" {
			next, err := saleRepo.NextInvoiceNumber(entityType, pointOfSale)
			if err != nil {
				return err
			}
			sale.InvoiceNumber = domainsales.FormatConsecutive(next)
		} else {
			sale.InvoiceNumber = domainsales.PadInvoiceNumber(manualNumber)
		}

		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		details = make([]*entity.SaleDetail, 0, len(lines))
		for i, line := range lines {
			qty := decimal.NewFromFloat(line.input.Quantity)
			if entityType == entity.SaleTypeVenta {
				if err := productRepo.DecrementStock(line.product.ID, qty); err != nil {
					return err
				}
			}

			detail := &entity.SaleDetail{
				SaleID:         sale.ID,
				LineNumber:     i + 1,
				ProductID:      line.product.ID,
				InternalCode:   strings.TrimSpace(line.request.InternalCode),
				Description:    strings.TrimSpace(line.request.Description),
				Quantity:       qty,
				UnitPrice:      decimal.NewFromFloat(line.input.UnitPrice),
				DiscountRate:   decimal.NewFromFloat(line.input.DiscountRate),
				IVARate:        decimal.NewFromFloat(line.input.IVARate),
				NetAmount:      decimal.NewFromFloat(line.summary.Net),
				IVAAmount:      decimal.NewFromFloat(line.summary.IVA),
				DiscountAmount: decimal.NewFromFloat(line.summary.Discount),
				TotalAmount:    decimal.NewFromFloat(line.summary.Total),
			}
			if detail.Description == "" {
				detail.Description = line.product.Name
			}
			if detail.InternalCode == "" {
				detail.InternalCode = line.product.SKU
			}
			if err := saleRepo.CreateDetail(detail); err != nil {
				return err
			}
			details = append(details, detail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return buildSaleResponse(sale, details, clientRecord), nil
}

// Get devuelve un comprobante con sus líneas y el cliente de catálogo
// vinculado, si existe.
func (uc *CreateSaleUseCase) Get(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.saleRepo.GetDetails(sale.ID)
	if err != nil {
		return nil, err
	}
	var clientRecord *entity.Client
	if sale.ClientID != nil {
		if clientRecord, err = uc.clientRepo.GetByID(*sale.ClientID); err != nil {
			return nil, err
		}
	}
	return buildSaleResponse(sale, details, clientRecord), nil
}

// List pagina los comprobantes más recientes, cada uno con sus líneas.
func (uc *CreateSaleUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		details, err := uc.saleRepo.GetDetails(sale.ID)
		if err != nil {
			return nil, err
		}
		var clientRecord *entity.Client
		if sale.ClientID != nil {
			if clientRecord, err = uc.clientRepo.GetByID(*sale.ClientID); err != nil {
				return nil, err
			}
		}
		responses = append(responses, buildSaleResponse(sale, details, clientRecord))
	}
	return responses, nil
}

// stockIssues arma el reporte de faltantes en el formato
// "Nombre (disp: X, pide: Y)". Vacío cuando todas las líneas alcanzan.
func stockIssues(lines []saleLine) []string {
	var issues []string
	for _, line := range lines {
		qty := decimal.NewFromFloat(line.input.Quantity)
		if qty.GreaterThan(line.product.Stock) {
			issues = append(issues, fmt.Sprintf("%s (disp: %s, pide: %s)",
				line.product.Name, line.product.Stock.String(), qty.String()))
		}
	}
	return issues
}

func buildSaleResponse(sale *entity.Sale, details []*entity.SaleDetail, client *entity.Client) *dto.SaleResponse {
	customer := EnrichCustomer(sale, client)

	resp := &dto.SaleResponse{
		ID:            sale.ID,
		PointOfSale:   sale.PointOfSale,
		InvoiceNumber: sale.InvoiceNumber,
		InvoiceType:   sale.InvoiceType,
		PaymentMethod: sale.PaymentMethod,
		CustomerType:  sale.CustomerType,
		ClientID:      sale.ClientID,
		Customer:      &customer,
		InvoiceDate:   sale.InvoiceDate.Format("2006-01-02"),
		TotalNet:      sale.TotalNet,
		TotalIVA:      sale.TotalIVA,
		TotalDiscount: sale.TotalDiscount,
		TotalFinal:    sale.TotalFinal,
		Type:          sale.Type,
		CreatedAt:     sale.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     sale.UpdatedAt.Format(time.RFC3339),
		Details:       make([]dto.SaleDetailResponse, 0, len(details)),
	}
	if client != nil {
		resp.Client = &dto.ClientResponse{
			ID:        client.ID,
			FirstName: client.FirstName,
			LastName:  client.LastName,
			DNI:       client.DNI,
			CUIL:      client.CUIL,
			Phone:     client.Phone,
			Address:   client.Address,
			Photo:     client.Photo,
		}
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.SaleDetailResponse{
			ID:             d.ID,
			LineNumber:     d.LineNumber,
			InternalCode:   d.InternalCode,
			Description:    d.Description,
			Quantity:       d.Quantity,
			UnitPrice:      d.UnitPrice,
			DiscountRate:   d.DiscountRate,
			IVARate:        d.IVARate,
			NetAmount:      d.NetAmount,
			IVAAmount:      d.IVAAmount,
			DiscountAmount: d.DiscountAmount,
			TotalAmount:    d.TotalAmount,
			ProductID:      d.ProductID,
		})
	}
	return resp
}
