package repository

import "github.com/jortega/stock-ledger-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido dentro
// de una transacción del motor de stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity escribe el stock resultante de un movimiento. Único camino
	// de escritura de quantity_on_hand fuera de la creación del producto.
	UpdateQuantity(id string, quantity int64) error
	SetActive(id string, active bool) error
	List(limit, offset int) ([]*entity.Product, error)
	ListActive(limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error)
	Search(term string, limit, offset int) ([]*entity.Product, error)
	ListLowStock(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
