package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
// QuantityOnHand es propiedad exclusiva del motor de stock: se fija al crear el
// producto y después solo cambia a través de movimientos registrados.
type Product struct {
	ID              string
	CategoryID      string // vacío si no tiene categoría
	SKU             string // código único
	Name            string
	Description     string
	Price           decimal.Decimal // precio de venta
	CostPrice       decimal.Decimal // precio de costo
	QuantityOnHand  int64
	MinimumQuantity int64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsLowStock indica si el producto está en o por debajo de su cantidad mínima.
// La comparación es <= : un producto exactamente en el mínimo ya es accionable.
func (p *Product) IsLowStock() bool {
	return p.QuantityOnHand <= p.MinimumQuantity
}
