package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jortega/stock-ledger-api/internal/application/dto"
	"github.com/jortega/stock-ledger-api/internal/domain"
	"github.com/jortega/stock-ledger-api/internal/domain/entity"
	"github.com/jortega/stock-ledger-api/internal/domain/repository"
)

// CategoryUseCase gestiona el CRUD de categorías.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// Create registra una categoría. Rechaza nombres duplicados.
func (uc *CategoryUseCase) Create(in dto.CategoryRequest) (*entity.Category, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.categoryRepo.GetByName(in.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update modifica nombre y descripción.
func (uc *CategoryUseCase) Update(id string, in dto.CategoryRequest) (*entity.Category, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != category.Name {
		if existing, err := uc.categoryRepo.GetByName(in.Name); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	category.Name = in.Name
	category.Description = in.Description
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID obtiene una categoría por ID. ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(limit, offset int) ([]*entity.Category, error) {
	return uc.categoryRepo.List(limit, offset)
}

// Delete elimina una categoría. Falla con ErrConflict si todavía hay
// productos asociados.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	count, err := uc.categoryRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.categoryRepo.Delete(id)
}
