package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de comprobante persistidos.
const (
	SaleTypeVenta       = "venta"
	SaleTypePresupuesto = "presupuesto"
)

// Tipos de cliente de una venta.
const (
	CustomerTypeHabitual  = "habitual"
	CustomerTypeOcasional = "ocasional"
)

// Medios de pago aceptados.
const (
	PaymentContado       = "contado"
	PaymentDebito        = "debito"
	PaymentTransferencia = "transferencia"
	PaymentCredito       = "credito"
)

// Sale representa la cabecera de una venta o presupuesto.
// Los campos Customer* son la instantánea del cliente capturada al emitir:
// para un cliente ocasional son la única identidad que existe; para un
// habitual son redundantes con el registro de Client pero se conservan tal
// como se facturó.
type Sale struct {
	ID                    int64
	Type                  string // venta | presupuesto
	PointOfSale           string // código de 4 dígitos del punto de emisión
	InvoiceNumber         string // consecutivo de 8 dígitos con ceros a la izquierda
	InvoiceType           string // letra del comprobante: B, X
	PaymentMethod         string
	InvoiceDate           time.Time
	CustomerType          string // habitual | ocasional
	ClientID              *int64 // cliente de catálogo, solo habitual vinculado
	CustomerName          string
	CustomerDocument      string
	CustomerCUIT          string
	CustomerDNI           string
	CustomerAddress       string
	CustomerPhone         string
	CustomerWithoutClient bool
	TotalNet              decimal.Decimal
	TotalIVA              decimal.Decimal
	TotalDiscount         decimal.Decimal
	TotalFinal            decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// FullInvoiceNumber devuelve el identificador impreso "POS-NNNNNNNN".
func (s *Sale) FullInvoiceNumber() string {
	return s.PointOfSale + "-" + s.InvoiceNumber
}
