package entity

import "time"

// Tipos de movimiento de stock (conjunto cerrado).
const (
	MovementTypeRECEIPT    = "RECEIPT"    // entrada
	MovementTypeISSUE      = "ISSUE"      // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste absoluto
)

// ValidMovementType indica si el tipo pertenece al conjunto cerrado.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeRECEIPT, MovementTypeISSUE, MovementTypeADJUSTMENT:
		return true
	}
	return false
}

// StockMovement es un registro inmutable del libro de movimientos: una vez
// creado nunca se actualiza ni se elimina. QuantityBefore/QuantityAfter son
// instantáneas del stock del producto alrededor del movimiento; QuantityAfter
// siempre coincide con lo escrito en products.quantity_on_hand.
//
// Quantity guarda la cantidad tal como la envió el caller: delta positivo para
// RECEIPT/ISSUE, cantidad objetivo absoluta para ADJUSTMENT.
type StockMovement struct {
	ID             string
	ProductID      string
	Type           string
	Quantity       int64
	QuantityBefore int64
	QuantityAfter  int64
	Reason         string
	CreatedAt      time.Time
}
