package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string // UUID
	Username     string
	PasswordHash string
	Name         string
	Role         string // admin | user
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
