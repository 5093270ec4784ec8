// Package pricing implementa el cálculo monetario de las líneas de venta.
//
// El precio unitario se interpreta como precio final (IVA incluido), de modo
// que el impuesto se extrae del bruto descontado en lugar de sumarse sobre
// el neto: gross -> descuento -> IVA contenido -> neto.
//
// Todo el cálculo es float64 con redondeo mitad-arriba y un epsilon que
// absorbe los artefactos de la representación binaria (0.145*100 = 14.499...).
// Los resultados se redondean a 2 decimales por línea; los totales suman las
// líneas ya redondeadas y vuelven a redondear el agregado.
package pricing

import "math"

// LineInput valores crudos de una línea, tal como llegan del formulario.
// Cualquier valor no finito se trata como 0 antes de operar.
type LineInput struct {
	Quantity     float64
	UnitPrice    float64 // precio final, IVA incluido
	DiscountRate float64 // porcentaje, se recorta a [0,100]
	IVARate      float64 // porcentaje, se recorta a >= 0
}

// LineSummary montos derivados de una línea, redondeados a 2 decimales.
type LineSummary struct {
	Net      float64
	IVA      float64
	Discount float64
	Total    float64
}

// Totals agregado de todas las líneas de un comprobante.
type Totals struct {
	Net       float64
	IVA       float64
	Discounts float64
	Final     float64
}

const roundEpsilon = 1e-9

// Sanitize reemplaza valores no finitos (NaN, ±Inf) por el fallback.
func Sanitize(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// RoundToTwo redondea a 2 decimales, mitad hacia arriba, con corrección
// epsilon para evitar que 2.675 termine en 2.67 por la mantisa binaria.
func RoundToTwo(v float64) float64 {
	return math.Round((v+roundEpsilon)*100) / 100
}

// CalculateLine convierte una línea cruda en su resumen monetario.
// Nunca falla: entradas basura producen un resumen en cero.
func CalculateLine(in LineInput) LineSummary {
	quantity := math.Max(Sanitize(in.Quantity, 0), 0)
	unitPrice := math.Max(Sanitize(in.UnitPrice, 0), 0)
	gross := quantity * unitPrice

	discountRate := math.Min(math.Max(Sanitize(in.DiscountRate, 0), 0), 100)
	ivaRate := math.Max(Sanitize(in.IVARate, 0), 0)

	discountAmount := gross * (discountRate / 100)
	discountedGross := math.Max(gross-discountAmount, 0)
	iva := discountedGross * (ivaRate / 100)
	net := discountedGross - iva

	return LineSummary{
		Net:      RoundToTwo(net),
		IVA:      RoundToTwo(iva),
		Discount: RoundToTwo(discountAmount),
		Total:    RoundToTwo(discountedGross),
	}
}

// AggregateTotals suma campo a campo los resúmenes ya redondeados y vuelve a
// redondear el agregado. Final nunca es negativo. Es puro e idempotente:
// el mismo slice produce siempre el mismo resultado.
func AggregateTotals(lines []LineSummary) Totals {
	var net, iva, discounts, grossTotal float64
	for _, line := range lines {
		net += line.Net
		iva += line.IVA
		discounts += line.Discount
		grossTotal += line.Total
	}

	return Totals{
		Net:       RoundToTwo(net),
		IVA:       RoundToTwo(iva),
		Discounts: RoundToTwo(discounts),
		Final:     RoundToTwo(math.Max(grossTotal, 0)),
	}
}
