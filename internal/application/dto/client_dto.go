package dto

// CreateClientRequest body para POST /api/clients.
// Las claves JSON conservan los nombres del modelo original del frontend.
type CreateClientRequest struct {
	FirstName string `json:"nombre" validate:"required"`
	LastName  string `json:"apellido" validate:"required"`
	DNI       string `json:"dni" validate:"omitempty,len=8,numeric"`
	CUIL      string `json:"cuil" validate:"omitempty,len=11,numeric"`
	Phone     string `json:"phone" validate:"omitempty,numeric"`
	Address   string `json:"domicilio"`
	Photo     string `json:"foto,omitempty"`
}

// ClientResponse cliente de catálogo en respuestas.
type ClientResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	DNI       string `json:"dni,omitempty"`
	CUIL      string `json:"cuil,omitempty"`
	Phone     string `json:"phone"`
	Address   string `json:"domicilio"`
	Photo     string `json:"foto,omitempty"`
}
