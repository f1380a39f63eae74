package stock_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jortega/stock-ledger-api/internal/domain/entity"
	"github.com/jortega/stock-ledger-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. memTxRunner serializa las
// transacciones con un mutex y restaura el estado previo si fn falla, igual
// que un Rollback real.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{products: map[string]*entity.Product{}}
}

func (s *memStore) snapshot() (map[string]*entity.Product, int) {
	products := make(map[string]*entity.Product, len(s.products))
	for id, p := range s.products {
		cp := *p
		products[id] = &cp
	}
	return products, len(s.movements)
}

func (s *memStore) restore(products map[string]*entity.Product, movCount int) {
	s.products = products
	s.movements = s.movements[:movCount]
}

func (s *memStore) addProduct(p *entity.Product) {
	cp := *p
	s.products[p.ID] = &cp
}

func (s *memStore) product(id string) *entity.Product {
	p, ok := s.products[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// memTxRunner implementa stock.TxRunner sobre el memStore.
type memTxRunner struct {
	s *memStore
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	products, movCount := r.s.snapshot()
	if err := fn(&memMovementRepo{s: r.s}, &memProductRepo{s: r.s}); err != nil {
		r.s.restore(products, movCount)
		return err
	}
	return nil
}

// memProductRepo implementa repository.ProductRepository sobre el memStore.
// No toma el mutex: dentro de una tx lo sostiene memTxRunner y los tests de
// este paquete no lo usan fuera de transacciones de forma concurrente.
type memProductRepo struct {
	s *memStore
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.s.addProduct(p)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.product(id), nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.s.product(id), nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	existing, ok := r.s.products[p.ID]
	if !ok {
		return nil
	}
	quantity := existing.QuantityOnHand
	cp := *p
	cp.QuantityOnHand = quantity
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateQuantity(id string, quantity int64) error {
	if p, ok := r.s.products[id]; ok {
		p.QuantityOnHand = quantity
	}
	return nil
}

func (r *memProductRepo) SetActive(id string, active bool) error {
	if p, ok := r.s.products[id]; ok {
		p.Active = active
	}
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	all := []*entity.Product{}
	for _, p := range r.s.products {
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

func (r *memProductRepo) ListActive(limit, offset int) ([]*entity.Product, error) {
	all, _ := r.List(0, 0)
	out := []*entity.Product{}
	for _, p := range all {
		if p.Active {
			out = append(out, p)
		}
	}
	return page(out, limit, offset), nil
}

func (r *memProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	all, _ := r.List(0, 0)
	out := []*entity.Product{}
	for _, p := range all {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return page(out, limit, offset), nil
}

func (r *memProductRepo) Search(term string, limit, offset int) ([]*entity.Product, error) {
	all, _ := r.List(0, 0)
	out := []*entity.Product{}
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), term) || strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return page(out, limit, offset), nil
}

func (r *memProductRepo) ListLowStock(limit, offset int) ([]*entity.Product, error) {
	all, _ := r.List(0, 0)
	out := []*entity.Product{}
	for _, p := range all {
		if p.Active && p.IsLowStock() {
			out = append(out, p)
		}
	}
	return page(out, limit, offset), nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

// memMovementRepo implementa repository.StockMovementRepository sobre el memStore.
type memMovementRepo struct {
	s *memStore
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return page(r.reversed(nil), limit, offset), nil
}

func (r *memMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	return page(r.reversed(func(m *entity.StockMovement) bool { return m.ProductID == productID }), limit, offset), nil
}

func (r *memMovementRepo) ListByType(movementType string, limit, offset int) ([]*entity.StockMovement, error) {
	return page(r.reversed(func(m *entity.StockMovement) bool { return m.Type == movementType }), limit, offset), nil
}

func (r *memMovementRepo) ListByPeriod(from, to time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return page(r.reversed(func(m *entity.StockMovement) bool {
		return !m.CreatedAt.Before(from) && !m.CreatedAt.After(to)
	}), limit, offset), nil
}

// reversed devuelve los movimientos que pasan el filtro en orden inverso de
// inserción (más reciente primero), como hace el adaptador real.
func (r *memMovementRepo) reversed(keep func(*entity.StockMovement) bool) []*entity.StockMovement {
	out := []*entity.StockMovement{}
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if keep == nil || keep(m) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out
}

func page[T any](list []T, limit, offset int) []T {
	if limit <= 0 {
		return list
	}
	if offset >= len(list) {
		return []T{}
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}
