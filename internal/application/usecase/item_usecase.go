package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/gastro-ops/internal/application/dto"
	"github.com/jcastro/gastro-ops/internal/application/ports"
	"github.com/jcastro/gastro-ops/internal/domain"
	"github.com/jcastro/gastro-ops/internal/domain/entity"
	dominventory "github.com/jcastro/gastro-ops/internal/domain/inventory"
	"github.com/jcastro/gastro-ops/internal/domain/repository"
)

const itemListTTL = 30 * time.Second

// ItemUseCase casos de uso CRUD para artículos de inventario.
// Quantity solo cambia vía el motor de movimientos; Update nunca la toca.
type ItemUseCase struct {
	items     repository.ItemRepository
	movements repository.MovementRepository
	cache     ports.Cache
}

// NewItemUseCase construye el caso de uso. cache puede ser nil.
func NewItemUseCase(items repository.ItemRepository, movements repository.MovementRepository, cache ports.Cache) *ItemUseCase {
	return &ItemUseCase{items: items, movements: movements, cache: cache}
}

// Create crea un artículo. Si no llega categoría se infiere del nombre
// (una sola vez, al crear); una categoría desconocida es entrada inválida,
// no se corrige en silencio.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.MinimumQuantity < 0 || in.CostPerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category := in.Category
	if category == "" {
		category = dominventory.InferCategory(in.Name)
	} else if !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.Item{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		Quantity:        in.Quantity,
		Unit:            in.Unit,
		MinimumQuantity: in.MinimumQuantity,
		CostPerUnit:     in.CostPerUnit,
		Category:        category,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update edita los campos del artículo excepto la cantidad.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.MinimumQuantity != nil {
		if *in.MinimumQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinimumQuantity = *in.MinimumQuantity
	}
	if in.CostPerUnit != nil {
		if in.CostPerUnit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.CostPerUnit = *in.CostPerUnit
	}
	if in.Category != nil {
		// No se re-infiere: cambiar la categoría exige un valor explícito válido.
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		item.Category = *in.Category
	}
	item.UpdatedAt = time.Now()
	if err := uc.items.Update(ctx, item); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toItemResponse(item), nil
}

// List lista los artículos ordenados por nombre junto con las estadísticas del
// dashboard. Respuesta cacheada (read-through); el caché nunca es autoritativo.
func (uc *ItemUseCase) List(ctx context.Context) (*dto.ItemListResponse, error) {
	if uc.cache != nil {
		var cached dto.ItemListResponse
		if ok, err := uc.cache.Get(ctx, ports.CacheKeyItems, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	list, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ItemListResponse{
		Items: make([]dto.ItemResponse, 0, len(list)),
		Stats: computeStats(list),
	}
	for _, item := range list {
		resp.Items = append(resp.Items, *toItemResponse(item))
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, ports.CacheKeyItems, resp, itemListTTL)
	}
	return resp, nil
}

// Delete elimina un artículo. Los artículos con movimientos registrados no se
// pueden borrar: el libro es la pista de auditoría y no debe quedar colgando.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	count, err := uc.movements.CountByItem(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	if err := uc.items.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *ItemUseCase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, ports.CacheKeyItems, ports.CacheKeyItemStats)
	}
}

func computeStats(items []*entity.Item) dto.ItemStats {
	stats := dto.ItemStats{
		TotalItems:     len(items),
		TotalValue:     decimal.Zero,
		CategoryCounts: make(map[string]int),
	}
	for _, item := range items {
		stats.TotalValue = stats.TotalValue.Add(item.Value())
		stats.CategoryCounts[item.Category]++
		if item.LowStock() {
			stats.LowStockItems++
		}
	}
	stats.TotalValue = stats.TotalValue.Round(2)
	return stats
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:              i.ID,
		Name:            i.Name,
		Description:     i.Description,
		Quantity:        i.Quantity,
		Unit:            i.Unit,
		MinimumQuantity: i.MinimumQuantity,
		CostPerUnit:     i.CostPerUnit,
		Category:        i.Category,
		LowStock:        i.LowStock(),
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
