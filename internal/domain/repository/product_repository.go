package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
)

// ProductRepository persistencia del catálogo de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	Delete(id int64) error
	GetByID(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	// DecrementStock descuenta qty del stock solo si alcanza; si no hay
	// stock suficiente retorna domain.ErrInsufficientStock sin modificar nada.
	DecrementStock(id int64, qty decimal.Decimal) error
}
