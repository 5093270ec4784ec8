// Package sales define las reglas de numeración de comprobantes: qué punto
// de venta emite cada tipo de documento y cómo se formatea el consecutivo.
package sales

import (
	"fmt"
	"strings"
)

// Tipos de documento en el pedido de emisión.
const (
	DocumentSale  = "sale"
	DocumentQuote = "quote"
)

// Puntos de venta fijos por serie.
const (
	PointOfSaleGeneral  = "0001" // presupuestos y comprobantes distintos de B
	PointOfSaleFacturaB = "0003" // facturas B
)

// InvoiceNumberDigits ancho del consecutivo impreso.
const InvoiceNumberDigits = 8

// ResolvePointOfSale determina el punto de venta según tipo de documento y
// letra de comprobante. Los presupuestos siempre salen por la serie general;
// las ventas usan la serie de factura B solo para la letra B.
func ResolvePointOfSale(documentType, invoiceType string) string {
	if documentType == DocumentQuote {
		return PointOfSaleGeneral
	}
	if strings.EqualFold(strings.TrimSpace(invoiceType), "B") {
		return PointOfSaleFacturaB
	}
	return PointOfSaleGeneral
}

// ValidManualNumber acepta un consecutivo ingresado a mano: solo dígitos,
// porque la serie calcula el próximo número casteando a entero.
func ValidManualNumber(number string) bool {
	if number == "" {
		return false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// PadInvoiceNumber completa el consecutivo a 8 dígitos con ceros a la
// izquierda. Vacío produce el marcador "00000000".
func PadInvoiceNumber(number string) string {
	number = strings.TrimSpace(number)
	if len(number) >= InvoiceNumberDigits {
		return number
	}
	return strings.Repeat("0", InvoiceNumberDigits-len(number)) + number
}

// FormatInvoiceNumber arma el identificador visible "POS-NNNNNNNN".
// Sin consecutivo todavía asignado devuelve el marcador en ceros.
func FormatInvoiceNumber(pointOfSale, number string) string {
	return pointOfSale + "-" + PadInvoiceNumber(number)
}

// FormatConsecutive convierte el entero devuelto por la secuencia en el
// consecutivo impreso de 8 dígitos.
func FormatConsecutive(n int64) string {
	return fmt.Sprintf("%0*d", InvoiceNumberDigits, n)
}

// EntityType mapea el tipo de documento del pedido al tipo persistido
// (sale -> venta, quote -> presupuesto). Un tipo desconocido devuelve vacío.
func EntityType(documentType string) string {
	switch documentType {
	case DocumentSale:
		return "venta"
	case DocumentQuote:
		return "presupuesto"
	default:
		return ""
	}
}
