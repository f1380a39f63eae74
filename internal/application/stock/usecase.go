package stock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jortega/stock-ledger-api/internal/domain"
	"github.com/jortega/stock-ledger-api/internal/domain/entity"
	"github.com/jortega/stock-ledger-api/internal/domain/repository"
)

// Reintentos ante conflicto de serialización antes de rendirse.
const maxRetries = 3

// OperationUseCase ejecuta las tres operaciones del motor de stock (entrada,
// salida, ajuste) de forma transaccional con bloqueo de fila (SELECT FOR
// UPDATE) y Commit/Rollback. Es el único escritor de quantity_on_hand y del
// libro de movimientos.
type OperationUseCase struct {
	txRunner TxRunner
}

// NewOperationUseCase construye el caso de uso.
func NewOperationUseCase(txRunner TxRunner) *OperationUseCase {
	return &OperationUseCase{txRunner: txRunner}
}

// Receipt registra una entrada: stock nuevo = actual + quantity.
// quantity debe ser un entero positivo.
func (uc *OperationUseCase) Receipt(ctx context.Context, productID string, quantity int64, reason string) (*entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return uc.execute(ctx, productID, entity.MovementTypeRECEIPT, quantity, reason)
}

// Issue registra una salida: stock nuevo = actual - quantity.
// Falla con ErrInsufficientStock si quantity excede el stock actual; en ese
// caso no se escribe nada (todo o nada).
func (uc *OperationUseCase) Issue(ctx context.Context, productID string, quantity int64, reason string) (*entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return uc.execute(ctx, productID, entity.MovementTypeISSUE, quantity, reason)
}

// Adjustment fija el stock en un valor absoluto (no es un delta). Acepta
// newQuantity >= 0, incluido el valor actual: un ajuste sin cambio igualmente
// deja registro en el libro.
func (uc *OperationUseCase) Adjustment(ctx context.Context, productID string, newQuantity int64, reason string) (*entity.StockMovement, error) {
	if newQuantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return uc.execute(ctx, productID, entity.MovementTypeADJUSTMENT, newQuantity, reason)
}

// execute corre la transacción leer-validar-escribir-registrar, reintentando
// completa la operación ante ErrConcurrentModification (releyendo y
// revalidando el stock en cada intento).
func (uc *OperationUseCase) execute(ctx context.Context, productID, movType string, quantity int64, reason string) (*entity.StockMovement, error) {
	var mov *entity.StockMovement
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		mov, err = uc.runOnce(ctx, productID, movType, quantity, reason)
		if !errors.Is(err, domain.ErrConcurrentModification) {
			return mov, err
		}
		time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
	}
	return nil, err
}

func (uc *OperationUseCase) runOnce(ctx context.Context, productID, movType string, quantity int64, reason string) (*entity.StockMovement, error) {
	var mov *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para serializar lecturas-escrituras
		// concurrentes sobre el mismo stock.
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if !product.Active {
			return domain.ErrProductInactive
		}

		before := product.QuantityOnHand
		var after int64
		switch movType {
		case entity.MovementTypeRECEIPT:
			after = before + quantity
		case entity.MovementTypeISSUE:
			if quantity > before {
				return domain.ErrInsufficientStock
			}
			after = before - quantity
		case entity.MovementTypeADJUSTMENT:
			after = quantity
		default:
			return domain.ErrInvalidInput
		}

		if err := productRepo.UpdateQuantity(productID, after); err != nil {
			return err
		}
		mov = &entity.StockMovement{
			ID:             uuid.New().String(),
			ProductID:      productID,
			Type:           movType,
			Quantity:       quantity,
			QuantityBefore: before,
			QuantityAfter:  after,
			Reason:         reason,
			CreatedAt:      time.Now(),
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}
