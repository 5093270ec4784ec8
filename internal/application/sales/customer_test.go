package sales_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/application/sales"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del resolutor de identidad del cliente: normalización del payload,
// predicado de bloqueo de emisión y enriquecimiento post-persistencia con el
// registro canónico de catálogo.
// ──────────────────────────────────────────────────────────────────────────────

func int64Ptr(v int64) *int64 { return &v }

func TestBuildCustomerPayload_HabitualDerivaDocumentoEId(t *testing.T) {
	raw := dto.SaleCustomerPayload{
		Type:    "  Habitual ",
		Name:    "  María González  ",
		CUIT:    " 27301234563 ",
		Address: "Av. Siempreviva 742",
		Phone:   "1155550000",
	}

	customer := sales.BuildCustomerPayload(raw, nil)

	assert.Equal(t, entity.CustomerTypeHabitual, customer.Type)
	assert.Equal(t, "María González", customer.Name)
	assert.Equal(t, "27301234563", customer.Document, "document debe derivar del CUIT")
	assert.Equal(t, "27301234563", customer.ID, "sin cliente de catálogo, id cae en el documento")
	assert.False(t, customer.WithoutClient)
}

func TestBuildCustomerPayload_HabitualConClienteDeCatalogo(t *testing.T) {
	customer := sales.BuildCustomerPayload(dto.SaleCustomerPayload{
		Type: "habitual",
		Name: "María González",
		DNI:  "30123456",
	}, int64Ptr(15))

	assert.Equal(t, "15", customer.ID, "el cliente de catálogo manda sobre el documento")
	assert.Equal(t, "30123456", customer.Document)
}

func TestBuildCustomerPayload_OcasionalSinIdentificacionColapsaEnAnonimo(t *testing.T) {
	customer := sales.BuildCustomerPayload(dto.SaleCustomerPayload{
		Type: "ocasional",
		Name: "   ",
	}, nil)

	assert.Equal(t, sales.AnonymousCustomerName, customer.Name)
	assert.True(t, customer.WithoutClient)
	assert.Empty(t, customer.Document)
}

func TestBuildCustomerPayload_OcasionalConDNIConservaIdentidad(t *testing.T) {
	customer := sales.BuildCustomerPayload(dto.SaleCustomerPayload{
		Type: "ocasional",
		Name: "Juan Pérez",
		DNI:  "28999888",
	}, nil)

	assert.Equal(t, "Juan Pérez", customer.Name)
	assert.Equal(t, "28999888", customer.Document)
	assert.False(t, customer.WithoutClient, "con DNI no es venta sin cliente")
}

func TestBuildCustomerPayload_EsIdempotente(t *testing.T) {
	raw := dto.SaleCustomerPayload{
		Type:  " Ocasional ",
		Name:  "",
		CUIT:  " 20123456786 ",
		Phone: " 1144440000 ",
	}

	once := sales.BuildCustomerPayload(raw, nil)
	twice := sales.BuildCustomerPayload(once, nil)

	assert.Equal(t, once, twice, "aplicar el builder sobre su propia salida no debe cambiar nada")
}

func TestResolveClientID_SoloElClientIdExplicitoVincula(t *testing.T) {
	// El id del payload puede venir derivado del documento (DNI/CUIT) y no es
	// un id de catálogo: sin clientId explícito la venta queda sin vincular.
	customer := sales.BuildCustomerPayload(dto.SaleCustomerPayload{
		Type: "ocasional",
		Name: "Juan Pérez",
		DNI:  "28999888",
	}, nil)
	require.Equal(t, "28999888", customer.ID)

	assert.Nil(t, sales.ResolveClientID(nil))
	assert.Nil(t, sales.ResolveClientID(int64Ptr(0)))

	bound := sales.ResolveClientID(int64Ptr(15))
	require.NotNil(t, bound)
	assert.Equal(t, int64(15), *bound)
}

func TestIsSubmissionBlocked(t *testing.T) {
	cases := []struct {
		name     string
		customer dto.SaleCustomerPayload
		clientID *int64
		blocked  bool
	}{
		{
			name:     "ocasional nunca bloquea",
			customer: dto.SaleCustomerPayload{Type: "ocasional"},
			blocked:  false,
		},
		{
			name: "habitual sin teléfono bloquea",
			customer: dto.SaleCustomerPayload{
				Type: "habitual", Name: "María", Address: "Calle 1", CUIT: "27301234563",
			},
			blocked: true,
		},
		{
			name: "habitual completo con CUIT pasa",
			customer: dto.SaleCustomerPayload{
				Type: "habitual", Name: "María", Address: "Calle 1", Phone: "115555", CUIT: "27301234563",
			},
			blocked: false,
		},
		{
			name: "habitual completo pero sin identificación bloquea",
			customer: dto.SaleCustomerPayload{
				Type: "habitual", Name: "María", Address: "Calle 1", Phone: "115555",
			},
			blocked: true,
		},
		{
			name: "habitual sin identificación propia pero vinculado a catálogo pasa",
			customer: dto.SaleCustomerPayload{
				Type: "habitual", Name: "María", Address: "Calle 1", Phone: "115555",
			},
			clientID: int64Ptr(15),
			blocked:  false,
		},
		{
			name: "campos en blanco no cuentan como presentes",
			customer: dto.SaleCustomerPayload{
				Type: "habitual", Name: "María", Address: "   ", Phone: "115555", DNI: "30123456",
			},
			blocked: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.blocked, sales.IsSubmissionBlocked(tc.customer, tc.clientID))
		})
	}
}

func TestEnrichCustomer_CanonicoPisaSoloConValores(t *testing.T) {
	clientID := int64(15)
	sale := &entity.Sale{
		CustomerType:    entity.CustomerTypeHabitual,
		ClientID:        &clientID,
		CustomerName:    "maria gonzalez",
		CustomerPhone:   "1155550000",
		CustomerAddress: "Av. Siempreviva 742",
		CustomerCUIT:    "27301234563",
	}
	client := &entity.Client{
		ID:        15,
		FirstName: "María",
		LastName:  "González",
		DNI:       "30123456",
		// sin teléfono ni domicilio en el catálogo
	}

	customer := sales.EnrichCustomer(sale, client)

	assert.Equal(t, "María González", customer.Name, "el nombre canónico pisa la instantánea")
	assert.Equal(t, "30123456", customer.DNI, "el DNI canónico se incorpora")
	assert.Equal(t, "1155550000", customer.Phone, "un blanco canónico no pisa la instantánea")
	assert.Equal(t, "Av. Siempreviva 742", customer.Address)
	assert.Equal(t, "15", customer.ID)
	assert.False(t, customer.WithoutClient)
}

func TestEnrichCustomer_OcasionalConservaInstantanea(t *testing.T) {
	sale := &entity.Sale{
		CustomerType:          entity.CustomerTypeOcasional,
		CustomerName:          "Juan Pérez",
		CustomerDocument:      "28999888",
		CustomerDNI:           "28999888",
		CustomerWithoutClient: false,
	}
	// Aunque exista un registro de catálogo homónimo, la instantánea del
	// ocasional es la identidad facturada y no se pisa.
	client := &entity.Client{ID: 99, FirstName: "Otro", LastName: "Nombre"}

	customer := sales.EnrichCustomer(sale, client)

	require.Equal(t, entity.CustomerTypeOcasional, customer.Type)
	assert.Equal(t, "Juan Pérez", customer.Name)
	assert.Equal(t, "28999888", customer.Document)
}

func TestEnrichCustomer_OcasionalAnonimo(t *testing.T) {
	sale := &entity.Sale{
		CustomerType:          entity.CustomerTypeOcasional,
		CustomerWithoutClient: true,
	}

	customer := sales.EnrichCustomer(sale, nil)

	assert.Equal(t, sales.AnonymousCustomerName, customer.Name)
	assert.True(t, customer.WithoutClient)
}
