package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jortega/stock-ledger-api/internal/domain/entity"
)

// La semántica del umbral es <= : exactamente en el mínimo ya es stock bajo.
// Este test fija la comparación para que no se invierta silenciosamente.
func TestIsLowStock_UmbralInclusivo(t *testing.T) {
	p := &entity.Product{MinimumQuantity: 5}

	p.QuantityOnHand = 4
	assert.True(t, p.IsLowStock())

	p.QuantityOnHand = 5
	assert.True(t, p.IsLowStock(), "cantidad == mínimo debe reportarse como stock bajo")

	p.QuantityOnHand = 6
	assert.False(t, p.IsLowStock(), "mínimo + 1 no es stock bajo")
}

func TestIsLowStock_MinimoCero(t *testing.T) {
	p := &entity.Product{MinimumQuantity: 0}

	p.QuantityOnHand = 0
	assert.True(t, p.IsLowStock(), "sin stock siempre es accionable")

	p.QuantityOnHand = 1
	assert.False(t, p.IsLowStock())
}

func TestValidMovementType(t *testing.T) {
	assert.True(t, entity.ValidMovementType(entity.MovementTypeRECEIPT))
	assert.True(t, entity.ValidMovementType(entity.MovementTypeISSUE))
	assert.True(t, entity.ValidMovementType(entity.MovementTypeADJUSTMENT))
	assert.False(t, entity.ValidMovementType("TRANSFER"))
	assert.False(t, entity.ValidMovementType("receipt"), "los tipos distinguen mayúsculas")
	assert.False(t, entity.ValidMovementType(""))
}
