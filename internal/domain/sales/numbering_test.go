package sales_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/ventas-pos/internal/domain/sales"
)

func TestResolvePointOfSale(t *testing.T) {
	cases := []struct {
		name         string
		documentType string
		invoiceType  string
		want         string
	}{
		{"presupuesto siempre serie general", sales.DocumentQuote, "B", "0001"},
		{"presupuesto letra X", sales.DocumentQuote, "X", "0001"},
		{"venta factura B", sales.DocumentSale, "B", "0003"},
		{"venta factura b minúscula", sales.DocumentSale, "b", "0003"},
		{"venta letra X", sales.DocumentSale, "X", "0001"},
		{"venta letra vacía", sales.DocumentSale, "", "0001"},
		{"venta letra B con espacios", sales.DocumentSale, " B ", "0003"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sales.ResolvePointOfSale(tc.documentType, tc.invoiceType))
		})
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	// Antes de obtener el consecutivo, la vista previa queda en ceros.
	assert.Equal(t, "0003-00000000", sales.FormatInvoiceNumber("0003", ""))
	assert.Equal(t, "0001-00000042", sales.FormatInvoiceNumber("0001", "42"))
	assert.Equal(t, "0003-00012345", sales.FormatInvoiceNumber("0003", "12345"))
	// Un consecutivo ya completo no se vuelve a rellenar.
	assert.Equal(t, "0003-00000123", sales.FormatInvoiceNumber("0003", "00000123"))
}

func TestValidManualNumber(t *testing.T) {
	cases := []struct {
		name   string
		number string
		want   bool
	}{
		{"consecutivo corto", "123", true},
		{"consecutivo completo", "00000042", true},
		{"vacío", "", false},
		{"con letras", "12a", false},
		{"con espacios internos", "12 3", false},
		{"negativo", "-5", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sales.ValidManualNumber(tc.number))
		})
	}
}

func TestFormatConsecutive(t *testing.T) {
	assert.Equal(t, "00000001", sales.FormatConsecutive(1))
	assert.Equal(t, "00001000", sales.FormatConsecutive(1000))
	assert.Equal(t, "99999999", sales.FormatConsecutive(99999999))
}

func TestEntityType(t *testing.T) {
	assert.Equal(t, "venta", sales.EntityType(sales.DocumentSale))
	assert.Equal(t, "presupuesto", sales.EntityType(sales.DocumentQuote))
	assert.Empty(t, sales.EntityType("otro"))
}
