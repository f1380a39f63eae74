package stock

import (
	"time"

	"github.com/jortega/stock-ledger-api/internal/domain"
	"github.com/jortega/stock-ledger-api/internal/domain/entity"
	"github.com/jortega/stock-ledger-api/internal/domain/repository"
)

// MovementQueries es la fachada de solo lectura sobre el libro de movimientos.
// Todas las consultas devuelven secuencias vacías (no error) cuando no hay
// coincidencias, en orden cronológico inverso.
type MovementQueries struct {
	movRepo repository.StockMovementRepository
}

// NewMovementQueries construye la fachada.
func NewMovementQueries(movRepo repository.StockMovementRepository) *MovementQueries {
	return &MovementQueries{movRepo: movRepo}
}

// List lista todos los movimientos con paginación.
func (q *MovementQueries) List(limit, offset int) ([]*entity.StockMovement, error) {
	return q.movRepo.List(limit, offset)
}

// GetByID obtiene un movimiento por ID. ErrNotFound si no existe.
func (q *MovementQueries) GetByID(id string) (*entity.StockMovement, error) {
	mov, err := q.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

// ListByProduct lista el historial de un producto.
func (q *MovementQueries) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	return q.movRepo.ListByProduct(productID, limit, offset)
}

// ListByType lista movimientos por tipo. ErrInvalidInput si el tipo no
// pertenece al conjunto cerrado.
func (q *MovementQueries) ListByType(movementType string, limit, offset int) ([]*entity.StockMovement, error) {
	if !entity.ValidMovementType(movementType) {
		return nil, domain.ErrInvalidInput
	}
	return q.movRepo.ListByType(movementType, limit, offset)
}

// ListByPeriod lista movimientos entre dos instantes (ambos inclusivos).
func (q *MovementQueries) ListByPeriod(from, to time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	return q.movRepo.ListByPeriod(from, to, limit, offset)
}
