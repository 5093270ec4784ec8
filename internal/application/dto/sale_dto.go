package dto

import "github.com/shopspring/decimal"

// SaleItemSummary montos derivados de una línea (redondeados a 2 decimales).
type SaleItemSummary struct {
	Net      float64 `json:"net"`
	IVA      float64 `json:"iva"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// SaleItemRequest línea del comprobante tal como la envía el frontend.
// ProductID es puntero: una línea sin producto seleccionado llega como null
// y debe rechazarse nombrando la línea. IVARate también es puntero para
// distinguir "sin alícuota" (se aplica la estándar) de 0 explícito.
type SaleItemRequest struct {
	ProductID    *int64           `json:"productId"`
	InternalCode string           `json:"internalCode"`
	Description  string           `json:"description"`
	Quantity     float64          `json:"quantity"`
	UnitPrice    float64          `json:"unitPrice"`
	DiscountRate float64          `json:"discountRate"`
	IVARate      *float64         `json:"ivaRate"`
	Summary      *SaleItemSummary `json:"summary,omitempty"` // informativo; el servidor recalcula
}

// SaleCustomerPayload identidad del cliente dentro del comprobante.
type SaleCustomerPayload struct {
	Type          string `json:"type"` // habitual | ocasional
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Document      string `json:"document,omitempty"`
	CUIT          string `json:"cuit,omitempty"`
	DNI           string `json:"dni,omitempty"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	WithoutClient bool   `json:"withoutClient"`
}

// SaleTotalsPayload totales agregados del comprobante.
type SaleTotalsPayload struct {
	Net       float64 `json:"net"`
	IVA       float64 `json:"iva"`
	Discounts float64 `json:"discounts"`
	Final     float64 `json:"final"`
}

// CreateSaleRequest body para POST /api/sales.
// Totals viene del cálculo del cliente pero es solo informativo: el servidor
// recalcula línea por línea y persiste sus propios valores.
type CreateSaleRequest struct {
	Type          string              `json:"type" validate:"required,oneof=sale quote"`
	InvoiceDate   string              `json:"invoiceDate" validate:"required"`
	InvoiceNumber string              `json:"invoiceNumber,omitempty"`
	InvoiceType   string              `json:"invoiceType" validate:"required"`
	PaymentMethod string              `json:"paymentMethod" validate:"required,oneof=contado debito transferencia credito"`
	ClientID      *int64              `json:"clientId,omitempty"`
	Customer      SaleCustomerPayload `json:"customer"`
	Totals        *SaleTotalsPayload  `json:"totals,omitempty"`
	Items         []SaleItemRequest   `json:"items" validate:"required,min=1"`
}

// NextInvoiceIdentifiersResponse respuesta de GET /api/sales/next-number.
type NextInvoiceIdentifiersResponse struct {
	PointOfSale   string `json:"pointOfSale"`
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceType   string `json:"invoiceType"`
}

// SaleDetailResponse línea persistida en respuestas.
type SaleDetailResponse struct {
	ID             int64           `json:"id"`
	LineNumber     int             `json:"lineNumber"`
	InternalCode   string          `json:"internalCode"`
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	DiscountRate   decimal.Decimal `json:"discountRate"`
	IVARate        decimal.Decimal `json:"ivaRate"`
	NetAmount      decimal.Decimal `json:"netAmount"`
	IVAAmount      decimal.Decimal `json:"ivaAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	ProductID      int64           `json:"productId"`
}

// SaleResponse comprobante persistido para POST /api/sales y GET /api/sales/:id.
// Client viene completo cuando la venta quedó vinculada a un cliente de
// catálogo, para que el frontend pueda canonicalizar la identidad mostrada.
type SaleResponse struct {
	ID            int64                `json:"id"`
	PointOfSale   string               `json:"pointOfSale"`
	InvoiceNumber string               `json:"invoiceNumber"`
	InvoiceType   string               `json:"invoiceType"`
	PaymentMethod string               `json:"paymentMethod"`
	CustomerType  string               `json:"customerType"`
	ClientID      *int64               `json:"clientId,omitempty"`
	Client        *ClientResponse      `json:"client,omitempty"`
	Customer      *SaleCustomerPayload `json:"customer,omitempty"`
	InvoiceDate   string               `json:"invoiceDate"`
	TotalNet      decimal.Decimal      `json:"totalNet"`
	TotalIVA      decimal.Decimal      `json:"totalIva"`
	TotalDiscount decimal.Decimal      `json:"totalDiscount"`
	TotalFinal    decimal.Decimal      `json:"totalFinal"`
	Type          string               `json:"type"` // venta | presupuesto
	CreatedAt     string               `json:"createdAt"`
	UpdatedAt     string               `json:"updatedAt"`
	Details       []SaleDetailResponse `json:"details"`
}
