package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/gastro-ops/internal/application/inventory"
	"github.com/jcastro/gastro-ops/internal/domain"
	"github.com/jcastro/gastro-ops/internal/domain/entity"
	"github.com/jcastro/gastro-ops/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el motor de movimientos.
//
// fakeTxRunner serializa cada Run con un mutex, igual que el bloqueo de fila
// de PostgreSQL serializa las transacciones que tocan el mismo artículo. Si fn
// devuelve error se restaura el estado previo, emulando el rollback.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu        sync.Mutex
	items     map[string]*entity.Item
	movements []*entity.StockMovement
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[string]*entity.Item)}
}

func (s *fakeStore) snapshot() (map[string]*entity.Item, []*entity.StockMovement) {
	items := make(map[string]*entity.Item, len(s.items))
	for id, it := range s.items {
		cp := *it
		items[id] = &cp
	}
	return items, append([]*entity.StockMovement(nil), s.movements...)
}

type fakeItemRepo struct{ s *fakeStore }

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeItemRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	it, ok := r.s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = quantity
	return nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	var list []*entity.Item
	for _, it := range r.s.items {
		cp := *it
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id string) error {
	delete(r.s.items, id)
	return nil
}

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByItem(_ context.Context, itemID string) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ItemID == itemID {
			cp := *m
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeMovementRepo) CountByItem(_ context.Context, itemID string) (int64, error) {
	var n int64
	for _, m := range r.s.movements {
		if m.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ItemRepository, repository.MovementRepository) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	prevItems, prevMovements := t.s.snapshot()
	if err := fn(&fakeItemRepo{s: t.s}, &fakeMovementRepo{s: t.s}); err != nil {
		t.s.items = prevItems
		t.s.movements = prevMovements
		return err
	}
	return nil
}

func newLedger(store *fakeStore) *inventory.LedgerUseCase {
	return inventory.NewLedgerUseCase(
		&fakeTxRunner{s: store},
		&fakeItemRepo{s: store},
		&fakeMovementRepo{s: store},
		nil,
	)
}

func seedItem(store *fakeStore, id string, quantity int64) {
	store.items[id] = &entity.Item{
		ID:          id,
		Name:        "Weizenmehl",
		Quantity:    quantity,
		Unit:        "kg",
		CostPerUnit: decimal.NewFromFloat(1.20),
		Category:    entity.CategoryFoodDry,
	}
}

func TestRegisterMovement_EntradaYSalida(t *testing.T) {
	store := newFakeStore()
	seedItem(store, "item-1", 10)
	uc := newLedger(store)
	ctx := context.Background()

	res, err := uc.RegisterMovement(ctx, inventory.MovementInput{
		ItemID: "item-1", Quantity: 5, Direction: entity.DirectionIn, Notes: "entrega semanal",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), res.NewQuantity)
	assert.Equal(t, "item-1", res.Movement.ItemID)
	assert.Equal(t, entity.DirectionIn, res.Movement.Direction)
	assert.NotEmpty(t, res.Movement.ID)

	res, err = uc.RegisterMovement(ctx, inventory.MovementInput{
		ItemID: "item-1", Quantity: 15, Direction: entity.DirectionOut,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.NewQuantity, "vaciar el stock es válido: el invariante es >= 0")

	qty, err := uc.CurrentQuantity(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), qty)
}

func TestRegisterMovement_StockInsuficiente(t *testing.T) {
	store := newFakeStore()
	seedItem(store, "item-1", 3)
	uc := newLedger(store)
	ctx := context.Background()

	_, err := uc.RegisterMovement(ctx, inventory.MovementInput{
		ItemID: "item-1", Quantity: 4, Direction: entity.DirectionOut,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Movimiento rechazado: ni cantidad ni libro cambian.
	qty, err := uc.CurrentQuantity(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), qty)

	movements, err := uc.ListMovements(ctx, "item-1")
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestRegisterMovement_Validacion(t *testing.T) {
	store := newFakeStore()
	seedItem(store, "item-1", 10)
	uc := newLedger(store)
	ctx := context.Background()

	cases := []struct {
		name  string
		input inventory.MovementInput
	}{
		{"cantidad cero", inventory.MovementInput{ItemID: "item-1", Quantity: 0, Direction: entity.DirectionIn}},
		{"cantidad negativa", inventory.MovementInput{ItemID: "item-1", Quantity: -2, Direction: entity.DirectionOut}},
		{"dirección desconocida", inventory.MovementInput{ItemID: "item-1", Quantity: 1, Direction: "transfer"}},
		{"sin artículo", inventory.MovementInput{Quantity: 1, Direction: entity.DirectionIn}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterMovement(ctx, tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidMovement)
		})
	}
}

func TestRegisterMovement_ArticuloInexistente(t *testing.T) {
	store := newFakeStore()
	uc := newLedger(store)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ItemID: "no-existe", Quantity: 1, Direction: entity.DirectionIn,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestRegisterMovement_LibroConsistente verifica que tras una mezcla de
// movimientos la cantidad del artículo coincide con la suma con signo del
// libro: el libro nunca diverge del stock.
func TestRegisterMovement_LibroConsistente(t *testing.T) {
	store := newFakeStore()
	seedItem(store, "item-1", 0)
	uc := newLedger(store)
	ctx := context.Background()

	steps := []inventory.MovementInput{
		{ItemID: "item-1", Quantity: 20, Direction: entity.DirectionIn},
		{ItemID: "item-1", Quantity: 7, Direction: entity.DirectionOut},
		{ItemID: "item-1", Quantity: 3, Direction: entity.DirectionIn},
		{ItemID: "item-1", Quantity: 30, Direction: entity.DirectionOut}, // rechazado
		{ItemID: "item-1", Quantity: 16, Direction: entity.DirectionOut},
	}
	for _, s := range steps {
		_, _ = uc.RegisterMovement(ctx, s)
	}

	movements, err := uc.ListMovements(ctx, "item-1")
	require.NoError(t, err)
	require.Len(t, movements, 4, "el movimiento rechazado no entra al libro")

	var sum int64
	for _, m := range movements {
		sum += m.SignedQuantity()
	}
	qty, err := uc.CurrentQuantity(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, qty, sum, "la suma con signo del libro debe igualar la cantidad actual")
	assert.Equal(t, int64(0), qty)
}

// TestRegisterMovement_SalidasConcurrentes reproduce la carrera clásica: dos
// salidas simultáneas que solo caben una. La serialización por artículo
// garantiza que exactamente una gana y la otra recibe stock insuficiente.
func TestRegisterMovement_SalidasConcurrentes(t *testing.T) {
	store := newFakeStore()
	seedItem(store, "item-1", 5)
	uc := newLedger(store)

	const workers = 2
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
				ItemID: "item-1", Quantity: 5, Direction: entity.DirectionOut,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, insufficient int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			insufficient++
		}
	}
	assert.Equal(t, 1, ok, "exactamente una salida debe aplicarse")
	assert.Equal(t, 1, insufficient)

	qty, err := uc.CurrentQuantity(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), qty)
}

func TestListMovements_ArticuloInexistente(t *testing.T) {
	store := newFakeStore()
	uc := newLedger(store)

	_, err := uc.ListMovements(context.Background(), "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
