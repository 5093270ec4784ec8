package pricing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-pos/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: dos líneas con los valores del caso de aceptación.
//
//	Línea 1: qty=2, precio=100, desc=10%, IVA=21%
//	         bruto=200, desc=20, bruto desc.=180, iva=37.80, neto=142.20
//	Línea 2: qty=1, precio=50, desc=0%, IVA=21%
//	         bruto=50, iva=10.50, neto=39.50
//	Totales: net=181.70, iva=48.30, descuentos=20, final=230
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateLine_EscenarioReferencia(t *testing.T) {
	s1 := pricing.CalculateLine(pricing.LineInput{Quantity: 2, UnitPrice: 100, DiscountRate: 10, IVARate: 21})
	assert.InDelta(t, 142.20, s1.Net, 0.001)
	assert.InDelta(t, 37.80, s1.IVA, 0.001)
	assert.InDelta(t, 20.00, s1.Discount, 0.001)
	assert.InDelta(t, 180.00, s1.Total, 0.001)

	s2 := pricing.CalculateLine(pricing.LineInput{Quantity: 1, UnitPrice: 50, DiscountRate: 0, IVARate: 21})
	assert.InDelta(t, 39.50, s2.Net, 0.001)
	assert.InDelta(t, 10.50, s2.IVA, 0.001)
	assert.InDelta(t, 0, s2.Discount, 0.001)
	assert.InDelta(t, 50.00, s2.Total, 0.001)

	totals := pricing.AggregateTotals([]pricing.LineSummary{s1, s2})
	assert.InDelta(t, 181.70, totals.Net, 0.001)
	assert.InDelta(t, 48.30, totals.IVA, 0.001)
	assert.InDelta(t, 20.00, totals.Discounts, 0.001)
	assert.InDelta(t, 230.00, totals.Final, 0.001)
}

// El neto más el IVA contenido siempre reconstruyen el total de la línea
// (dentro del epsilon de redondeo), y el total es el bruto menos descuento.
func TestCalculateLine_InvarianteNetoMasIVA(t *testing.T) {
	cases := []pricing.LineInput{
		{Quantity: 1, UnitPrice: 120, DiscountRate: 0, IVARate: 21},
		{Quantity: 3, UnitPrice: 33.33, DiscountRate: 15, IVARate: 21},
		{Quantity: 7, UnitPrice: 0.99, DiscountRate: 50, IVARate: 10.5},
		{Quantity: 100, UnitPrice: 1234.56, DiscountRate: 2.5, IVARate: 27},
		{Quantity: 0, UnitPrice: 500, DiscountRate: 10, IVARate: 21},
	}
	for _, in := range cases {
		s := pricing.CalculateLine(in)
		assert.InDelta(t, s.Total, s.Net+s.IVA, 0.011,
			"net+iva debe reconstruir total para %+v", in)

		gross := in.Quantity * in.UnitPrice
		assert.InDelta(t, gross*(1-in.DiscountRate/100), s.Total, 0.011,
			"total debe ser bruto*(1-d/100) para %+v", in)
	}
}

// El descuento se recorta a [0,100]: -5 equivale a 0 y 150 equivale a 100.
func TestCalculateLine_RecorteDescuento(t *testing.T) {
	base := pricing.LineInput{Quantity: 2, UnitPrice: 100, IVARate: 21}

	negativo := base
	negativo.DiscountRate = -5
	cero := base
	cero.DiscountRate = 0
	assert.Equal(t, pricing.CalculateLine(cero), pricing.CalculateLine(negativo),
		"descuento -5 debe comportarse igual que 0")

	excedido := base
	excedido.DiscountRate = 150
	tope := base
	tope.DiscountRate = 100
	assert.Equal(t, pricing.CalculateLine(tope), pricing.CalculateLine(excedido),
		"descuento 150 debe comportarse igual que 100")

	conTope := pricing.CalculateLine(excedido)
	assert.Zero(t, conTope.Total, "con 100%% de descuento el total es 0")
	assert.Zero(t, conTope.Net)
	assert.Zero(t, conTope.IVA)
	assert.InDelta(t, 200, conTope.Discount, 0.001)
}

// Cantidades y precios negativos se llevan a 0 antes de operar.
func TestCalculateLine_NegativosACero(t *testing.T) {
	s := pricing.CalculateLine(pricing.LineInput{Quantity: -3, UnitPrice: -10, DiscountRate: 5, IVARate: 21})
	assert.Equal(t, pricing.LineSummary{}, s, "entradas negativas producen resumen en cero")
}

// NaN e infinitos nunca se propagan: la línea resulta en cero.
func TestCalculateLine_SanitizaNoFinitos(t *testing.T) {
	inputs := []pricing.LineInput{
		{Quantity: math.NaN(), UnitPrice: 100, DiscountRate: 10, IVARate: 21},
		{Quantity: 2, UnitPrice: math.Inf(1), DiscountRate: 10, IVARate: 21},
		{Quantity: 2, UnitPrice: 100, DiscountRate: math.NaN(), IVARate: math.Inf(-1)},
	}
	for _, in := range inputs {
		s := pricing.CalculateLine(in)
		require.False(t, math.IsNaN(s.Net) || math.IsNaN(s.IVA) || math.IsNaN(s.Discount) || math.IsNaN(s.Total),
			"ningún campo del resumen puede ser NaN para %+v", in)
		require.False(t, math.IsInf(s.Total, 0), "ningún campo puede ser infinito")
	}

	todoBasura := pricing.CalculateLine(pricing.LineInput{
		Quantity: math.NaN(), UnitPrice: math.NaN(), DiscountRate: math.NaN(), IVARate: math.NaN(),
	})
	assert.Equal(t, pricing.LineSummary{}, todoBasura)
}

func TestSanitize_Fallback(t *testing.T) {
	assert.Equal(t, 21.0, pricing.Sanitize(math.NaN(), 21), "NaN cae al fallback")
	assert.Equal(t, 21.0, pricing.Sanitize(math.Inf(1), 21), "Inf cae al fallback")
	assert.Equal(t, 0.0, pricing.Sanitize(0, 21), "cero explícito se respeta")
	assert.Equal(t, -3.5, pricing.Sanitize(-3.5, 21), "finitos pasan intactos")
}

// Redondeo mitad-arriba con epsilon: casos donde el float64 "puro" falla.
func TestRoundToTwo_MitadArriba(t *testing.T) {
	assert.Equal(t, 2.68, pricing.RoundToTwo(2.675), "2.675 redondea hacia arriba")
	assert.Equal(t, 1.01, pricing.RoundToTwo(1.005), "1.005 redondea hacia arriba")
	assert.Equal(t, 14.50, pricing.RoundToTwo(14.499999999), "epsilon absorbe el error binario")
	assert.Equal(t, 0.0, pricing.RoundToTwo(0))
	assert.Equal(t, 123.46, pricing.RoundToTwo(123.456))
}

// Recalcular dos veces sobre el mismo conjunto de líneas da el mismo total.
func TestAggregateTotals_Idempotente(t *testing.T) {
	lines := []pricing.LineSummary{
		pricing.CalculateLine(pricing.LineInput{Quantity: 2, UnitPrice: 100, DiscountRate: 10, IVARate: 21}),
		pricing.CalculateLine(pricing.LineInput{Quantity: 1, UnitPrice: 50, IVARate: 21}),
		pricing.CalculateLine(pricing.LineInput{Quantity: 4, UnitPrice: 17.25, DiscountRate: 3, IVARate: 10.5}),
	}

	t1 := pricing.AggregateTotals(lines)
	t2 := pricing.AggregateTotals(lines)
	assert.Equal(t, t1, t2, "el mismo conjunto de líneas produce siempre el mismo total")
}

// El agregado suma líneas ya redondeadas y re-redondea; no redondea la suma
// de los valores exactos. Tres líneas de 0.335 lo evidencian:
// por línea 0.34 -> suma 1.02, mientras que 3*0.335=1.005 redondearía a 1.01.
func TestAggregateTotals_SumaDeRedondeados(t *testing.T) {
	line := pricing.CalculateLine(pricing.LineInput{Quantity: 1, UnitPrice: 0.335})
	require.InDelta(t, 0.34, line.Total, 0.0001)

	totals := pricing.AggregateTotals([]pricing.LineSummary{line, line, line})
	assert.InDelta(t, 1.02, totals.Final, 0.0001,
		"el total agrega los valores por línea ya redondeados")
}

func TestAggregateTotals_SinLineas(t *testing.T) {
	totals := pricing.AggregateTotals(nil)
	assert.Equal(t, pricing.Totals{}, totals, "sin líneas todos los totales son cero")
}
