package usecase

// Fakes en memoria compartidos por los tests de los casos de uso. Implementan
// los puertos de repositorio con mapas; no hay concurrencia en estos tests.

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/gastro-ops/internal/domain/entity"
)

type memItemRepo struct {
	items          map[string]*entity.Item
	movementCounts map[string]int64
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{
		items:          make(map[string]*entity.Item),
		movementCounts: make(map[string]int64),
	}
}

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *memItemRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	r.items[id].Quantity = quantity
	return nil
}

func (r *memItemRepo) Update(_ context.Context, item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	list := make([]*entity.Item, 0, len(r.items))
	for _, it := range r.items {
		cp := *it
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *memItemRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

// memMovementRepo solo cuenta: los tests de este paquete ejercitan el CRUD de
// artículos, no el motor de movimientos.
type memMovementRepo struct{ r *memItemRepo }

func (m *memMovementRepo) Create(_ context.Context, mv *entity.StockMovement) error {
	m.r.movementCounts[mv.ItemID]++
	return nil
}

func (m *memMovementRepo) ListByItem(_ context.Context, _ string) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (m *memMovementRepo) CountByItem(_ context.Context, itemID string) (int64, error) {
	return m.r.movementCounts[itemID], nil
}

type memEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{employees: make(map[string]*entity.Employee)}
}

func (r *memEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *memEmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memEmployeeRepo) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *memEmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	list := make([]*entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		cp := *e
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *memEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(r.employees, id)
	return nil
}

type memShiftRepo struct {
	shifts map[string]*entity.Shift
}

func newMemShiftRepo() *memShiftRepo {
	return &memShiftRepo{shifts: make(map[string]*entity.Shift)}
}

func (r *memShiftRepo) Create(_ context.Context, s *entity.Shift) error {
	cp := *s
	r.shifts[s.ID] = &cp
	return nil
}

func (r *memShiftRepo) GetByID(_ context.Context, id string) (*entity.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memShiftRepo) Update(_ context.Context, s *entity.Shift) error {
	cp := *s
	r.shifts[s.ID] = &cp
	return nil
}

func (r *memShiftRepo) List(_ context.Context) ([]*entity.Shift, error) {
	list := make([]*entity.Shift, 0, len(r.shifts))
	for _, s := range r.shifts {
		cp := *s
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].StartTime.Before(list[j].StartTime) })
	return list, nil
}

func (r *memShiftRepo) Delete(_ context.Context, id string) error {
	delete(r.shifts, id)
	return nil
}

type memSaleRepo struct {
	sales []*entity.Sale
}

func (r *memSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	cp := *s
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *memSaleRepo) List(_ context.Context, limit, offset int) ([]*entity.Sale, error) {
	sorted := append([]*entity.Sale(nil), r.sales...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	if offset >= len(sorted) {
		return nil, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

func (r *memSaleRepo) TotalBetween(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range r.sales {
		if !s.Date.Before(from) && s.Date.Before(to) {
			total = total.Add(s.Amount)
		}
	}
	return total, nil
}
