package sales

import (
	"strconv"
	"strings"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
)

// AnonymousCustomerName nombre por defecto de un ocasional sin identidad.
const AnonymousCustomerName = "Cliente ocasional"

func normalizeString(s string) string {
	return strings.TrimSpace(s)
}

func hasContent(s string) bool {
	return normalizeString(s) != ""
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if hasContent(v) {
			return normalizeString(v)
		}
	}
	return ""
}

// IsSubmissionBlocked aplica el predicado de bloqueo de emisión: un cliente
// habitual necesita nombre, domicilio y teléfono, más al menos una
// identificación (cliente de catálogo, CUIT o DNI). Cualquier otro tipo de
// cliente nunca bloquea.
func IsSubmissionBlocked(customer dto.SaleCustomerPayload, clientID *int64) bool {
	if strings.ToLower(normalizeString(customer.Type)) != entity.CustomerTypeHabitual {
		return false
	}
	if !hasContent(customer.Name) || !hasContent(customer.Address) || !hasContent(customer.Phone) {
		return true
	}

	hasClientID := (clientID != nil && *clientID > 0) || hasContent(customer.ID)
	return !(hasClientID || hasContent(customer.CUIT) || hasContent(customer.DNI))
}

// BuildCustomerPayload normaliza la identidad del cliente del comprobante:
// recorta espacios, deriva document de CUIT/DNI, deriva id del cliente de
// catálogo o del documento, y colapsa un ocasional sin identificación en el
// cliente anónimo. Es idempotente sobre su propia salida.
func BuildCustomerPayload(raw dto.SaleCustomerPayload, clientID *int64) dto.SaleCustomerPayload {
	normalizedType := strings.ToLower(normalizeString(raw.Type))
	if normalizedType == "" {
		normalizedType = entity.CustomerTypeHabitual
	}
	isOccasional := normalizedType == entity.CustomerTypeOcasional

	cuit := normalizeString(raw.CUIT)
	dni := normalizeString(raw.DNI)
	document := firstNonBlank(raw.Document, cuit, dni)

	id := normalizeString(raw.ID)
	if id == "" && clientID != nil && *clientID > 0 {
		id = strconv.FormatInt(*clientID, 10)
	}
	if id == "" {
		id = document
	}

	customer := dto.SaleCustomerPayload{
		Type:          normalizedType,
		ID:            id,
		Name:          normalizeString(raw.Name),
		Document:      document,
		CUIT:          cuit,
		DNI:           dni,
		Address:       normalizeString(raw.Address),
		Phone:         normalizeString(raw.Phone),
		WithoutClient: false,
	}

	if isOccasional {
		hasIdentification := customer.ID != "" || customer.Document != "" || customer.CUIT != "" || customer.DNI != ""
		customer.WithoutClient = !hasIdentification
		if customer.Name == "" {
			customer.Name = AnonymousCustomerName
		}
	}

	return customer
}

// ResolveClientID determina el cliente de catálogo vinculado. Solo el
// clientId explícito del pedido vincula: el id del payload puede venir
// derivado del documento (CUIT/DNI) y no es un id de catálogo.
func ResolveClientID(clientID *int64) *int64 {
	if clientID != nil && *clientID > 0 {
		id := *clientID
		return &id
	}
	return nil
}

// EnrichCustomer reconstruye la identidad del cliente a partir del
// comprobante persistido y, si la venta quedó vinculada, del registro
// canónico de catálogo. Los campos canónicos pisan la instantánea solo
// cuando traen valor; la instantánea de un ocasional nunca se pisa con
// blancos del catálogo.
func EnrichCustomer(sale *entity.Sale, client *entity.Client) dto.SaleCustomerPayload {
	snapshot := dto.SaleCustomerPayload{
		Type:          sale.CustomerType,
		Name:          sale.CustomerName,
		Document:      sale.CustomerDocument,
		CUIT:          sale.CustomerCUIT,
		DNI:           sale.CustomerDNI,
		Address:       sale.CustomerAddress,
		Phone:         sale.CustomerPhone,
		WithoutClient: sale.CustomerWithoutClient,
	}
	if sale.ClientID != nil {
		snapshot.ID = strconv.FormatInt(*sale.ClientID, 10)
	} else {
		snapshot.ID = snapshot.Document
	}

	if snapshot.Type == entity.CustomerTypeOcasional || client == nil {
		if snapshot.Type == entity.CustomerTypeOcasional && snapshot.Name == "" {
			snapshot.Name = AnonymousCustomerName
		}
		return snapshot
	}

	enriched := snapshot
	enriched.Type = entity.CustomerTypeHabitual
	enriched.WithoutClient = false
	enriched.ID = firstNonBlank(strconv.FormatInt(client.ID, 10), snapshot.ID)
	enriched.Name = firstNonBlank(client.FullName(), snapshot.Name)
	enriched.CUIT = firstNonBlank(client.CUIL, snapshot.CUIT)
	enriched.DNI = firstNonBlank(client.DNI, snapshot.DNI)
	enriched.Document = firstNonBlank(enriched.CUIT, enriched.DNI, snapshot.Document)
	enriched.Address = firstNonBlank(client.Address, snapshot.Address)
	enriched.Phone = firstNonBlank(client.Phone, snapshot.Phone)
	return enriched
}
