package stock

import (
	"context"

	"github.com/jortega/stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre la actualización del
// stock del producto y el registro del movimiento: o ambas escrituras ocurren o
// ninguna. Un conflicto de serialización debe reportarse como
// domain.ErrConcurrentModification para que el caso de uso reintente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
