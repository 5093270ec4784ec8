package repository

import "github.com/tu-usuario/ventas-pos/internal/domain/entity"

// ClientRepository persistencia del catálogo de clientes habituales.
type ClientRepository interface {
	Create(client *entity.Client) error
	Update(client *entity.Client) error
	Delete(id int64) error
	GetByID(id int64) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
}
