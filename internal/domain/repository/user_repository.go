package repository

import "github.com/tu-usuario/ventas-pos/internal/domain/entity"

// UserRepository persistencia de usuarios de la aplicación.
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
}
