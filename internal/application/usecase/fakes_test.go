package usecase_test

import (
	"sort"
	"strings"

	"github.com/jortega/stock-ledger-api/internal/domain/entity"
	"github.com/jortega/stock-ledger-api/internal/domain/repository"
)

// Fakes en memoria de los puertos, suficientes para los casos de uso CRUD.

type fakeProductRepo struct {
	products       map[string]*entity.Product
	lastSearchTerm string
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	existing, ok := r.products[p.ID]
	if !ok {
		return nil
	}
	// Igual que el adaptador real: quantity_on_hand no se toca en Update.
	quantity := existing.QuantityOnHand
	cp := *p
	cp.QuantityOnHand = quantity
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity int64) error {
	if p, ok := r.products[id]; ok {
		p.QuantityOnHand = quantity
	}
	return nil
}

func (r *fakeProductRepo) SetActive(id string, active bool) error {
	if p, ok := r.products[id]; ok {
		p.Active = active
	}
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return r.filter(func(*entity.Product) bool { return true }), nil
}

func (r *fakeProductRepo) ListActive(limit, offset int) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.Active }), nil
}

func (r *fakeProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.CategoryID == categoryID }), nil
}

func (r *fakeProductRepo) Search(term string, limit, offset int) ([]*entity.Product, error) {
	r.lastSearchTerm = term
	return r.filter(func(p *entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
	}), nil
}

func (r *fakeProductRepo) ListLowStock(limit, offset int) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.Active && p.IsLowStock() }), nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) filter(keep func(*entity.Product) bool) []*entity.Product {
	out := []*entity.Product{}
	for _, p := range r.products {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeCategoryRepo struct {
	categories    map[string]*entity.Category
	productCounts map[string]int64
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:    map[string]*entity.Category{},
		productCounts: map[string]int64{},
	}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) CountProducts(categoryID string) (int64, error) {
	return r.productCounts[categoryID], nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}
