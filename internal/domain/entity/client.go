package entity

import (
	"strings"
	"time"
)

// Client representa un cliente habitual del catálogo.
type Client struct {
	ID        int64
	FirstName string // nombre
	LastName  string // apellido
	DNI       string
	CUIL      string
	Phone     string
	Address   string // domicilio
	Photo     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName devuelve "nombre apellido" sin espacios sobrantes; si falta una
// de las partes devuelve la otra.
func (c *Client) FullName() string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(c.FirstName); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(c.LastName); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
