package repository

import (
	"time"

	"github.com/jortega/stock-ledger-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos. Es append-only: no expone Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByType(movementType string, limit, offset int) ([]*entity.StockMovement, error)
	ListByPeriod(from, to time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
