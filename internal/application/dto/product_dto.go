package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jortega/stock-ledger-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
// InitialQuantity fija el stock inicial; después solo el motor de stock puede
// modificarlo.
type CreateProductRequest struct {
	CategoryID      string          `json:"category_id,omitempty"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	InitialQuantity int64           `json:"initial_quantity"`
	MinimumQuantity int64           `json:"minimum_quantity"`
}

// UpdateProductRequest body para PUT /api/products/:id.
// No incluye cantidad en stock: esa solo cambia vía movimientos.
type UpdateProductRequest struct {
	CategoryID      string          `json:"category_id,omitempty"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	MinimumQuantity int64           `json:"minimum_quantity"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	CategoryID      string          `json:"category_id,omitempty"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	QuantityOnHand  int64           `json:"quantity_on_hand"`
	MinimumQuantity int64           `json:"minimum_quantity"`
	LowStock        bool            `json:"low_stock"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductToResponse convierte la entidad al DTO de respuesta.
func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		CategoryID:      p.CategoryID,
		SKU:             p.SKU,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		CostPrice:       p.CostPrice,
		QuantityOnHand:  p.QuantityOnHand,
		MinimumQuantity: p.MinimumQuantity,
		LowStock:        p.IsLowStock(),
		Active:          p.Active,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ProductsToResponse convierte un listado de entidades.
func ProductsToResponse(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ProductToResponse(p))
	}
	return out
}
