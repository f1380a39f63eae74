package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jortega/stock-ledger-api/internal/application/dto"
	"github.com/jortega/stock-ledger-api/internal/domain"
	"github.com/jortega/stock-ledger-api/internal/domain/entity"
	"github.com/jortega/stock-ledger-api/internal/domain/repository"
)

// ProductUseCase gestiona el CRUD de productos. No toca quantity_on_hand
// después de la creación: eso es territorio exclusivo del motor de stock.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// Create registra un producto con su stock inicial y cantidad mínima.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 || in.MinimumQuantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if existing, err := uc.productRepo.GetBySKU(in.SKU); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.CategoryID != "" {
		cat, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		CategoryID:      in.CategoryID,
		SKU:             in.SKU,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		CostPrice:       in.CostPrice,
		QuantityOnHand:  in.InitialQuantity,
		MinimumQuantity: in.MinimumQuantity,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update modifica los metadatos del producto y su cantidad mínima.
// Nunca modifica el stock actual.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinimumQuantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != product.SKU {
		if existing, err := uc.productRepo.GetBySKU(in.SKU); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	if in.CategoryID != "" && in.CategoryID != product.CategoryID {
		cat, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}

	product.CategoryID = in.CategoryID
	product.SKU = in.SKU
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.CostPrice = in.CostPrice
	product.MinimumQuantity = in.MinimumQuantity
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID. ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// GetBySKU obtiene un producto por SKU. ErrNotFound si no existe.
func (uc *ProductUseCase) GetBySKU(sku string) (*entity.Product, error) {
	product, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(limit, offset)
}

// ListActive lista solo productos activos.
func (uc *ProductUseCase) ListActive(limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.ListActive(limit, offset)
}

// ListByCategory lista productos de una categoría.
func (uc *ProductUseCase) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.ListByCategory(categoryID, limit, offset)
}

// Search busca por término libre sobre nombre y descripción.
// El término se normaliza (minúsculas, sin acentos) antes de consultar.
func (uc *ProductUseCase) Search(term string, limit, offset int) ([]*entity.Product, error) {
	term = normalizeTerm(term)
	if term == "" {
		return []*entity.Product{}, nil
	}
	return uc.productRepo.Search(term, limit, offset)
}

// ListLowStock lista productos en o por debajo de su cantidad mínima.
func (uc *ProductUseCase) ListLowStock(limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.ListLowStock(limit, offset)
}

// Activate habilita el producto para nuevas operaciones de stock.
func (uc *ProductUseCase) Activate(id string) (*entity.Product, error) {
	return uc.setActive(id, true)
}

// Deactivate bloquea nuevas operaciones de stock sobre el producto.
// Su historial de movimientos se conserva.
func (uc *ProductUseCase) Deactivate(id string) (*entity.Product, error) {
	return uc.setActive(id, false)
}

func (uc *ProductUseCase) setActive(id string, active bool) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.productRepo.SetActive(id, active); err != nil {
		return nil, err
	}
	product.Active = active
	product.UpdatedAt = time.Now()
	return product, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// normalizeTerm pasa el término a minúsculas y elimina marcas diacríticas
// (NFD + descarte de la categoría Mn) para que "café" y "cafe" coincidan.
func normalizeTerm(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, term)
	if err != nil {
		return term
	}
	return out
}
