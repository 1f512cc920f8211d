package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/gastro-ops/internal/application/dto"
	"github.com/jcastro/gastro-ops/internal/application/ports"
	"github.com/jcastro/gastro-ops/internal/domain"
	"github.com/jcastro/gastro-ops/internal/domain/entity"
	"github.com/jcastro/gastro-ops/internal/domain/repository"
)

const (
	saleDateLayout  = "2006-01-02"
	salesSummaryTTL = 60 * time.Second
)

// SaleUseCase registra ventas y construye el resumen del dashboard
// (hoy vs. ayer, semana en curso vs. semana anterior).
type SaleUseCase struct {
	sales repository.SaleRepository
	cache ports.Cache
	now   func() time.Time
}

// NewSaleUseCase construye el caso de uso. cache puede ser nil.
func NewSaleUseCase(sales repository.SaleRepository, cache ports.Cache) *SaleUseCase {
	return &SaleUseCase{sales: sales, cache: cache, now: time.Now}
}

// Create registra una venta. Importe positivo y fecha son obligatorios.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if !in.Amount.IsPositive() || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(saleDateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		Amount:      in.Amount,
		Date:        date,
		Description: in.Description,
		CreatedAt:   uc.now(),
	}
	if err := uc.sales.Create(ctx, sale); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, ports.CacheKeySalesSummary)
	}
	return toSaleResponse(sale), nil
}

// List lista ventas recientes con paginación.
func (uc *SaleUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	list, err := uc.sales.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetSummary construye el resumen de ventas del dashboard.
//
// Cuatro agregados en paralelo contra la DB:
//  1. hoy                [hoy, mañana)
//  2. ayer               [ayer, hoy)
//  3. semana en curso    [hoy-6d, mañana)
//  4. semana anterior    [hoy-13d, hoy-6d)
func (uc *SaleUseCase) GetSummary(ctx context.Context) (*dto.SalesSummaryResponse, error) {
	if uc.cache != nil {
		var cached dto.SalesSummaryResponse
		if ok, err := uc.cache.Get(ctx, ports.CacheKeySalesSummary, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	yesterday := today.AddDate(0, 0, -1)
	weekStart := today.AddDate(0, 0, -6)
	prevWeekStart := today.AddDate(0, 0, -13)

	type totalResult struct {
		total decimal.Decimal
		err   error
	}
	ranges := []struct {
		from, to time.Time
	}{
		{today, tomorrow},
		{yesterday, today},
		{weekStart, tomorrow},
		{prevWeekStart, weekStart},
	}
	channels := make([]chan totalResult, len(ranges))
	for i, r := range ranges {
		channels[i] = make(chan totalResult, 1)
		go func(ch chan totalResult, from, to time.Time) {
			total, err := uc.sales.TotalBetween(ctx, from, to)
			ch <- totalResult{total, err}
		}(channels[i], r.from, r.to)
	}

	totals := make([]decimal.Decimal, len(ranges))
	for i, ch := range channels {
		res := <-ch
		if res.err != nil {
			return nil, fmt.Errorf("resumen de ventas: %w", res.err)
		}
		totals[i] = res.total
	}

	resp := &dto.SalesSummaryResponse{
		Date:   today.Format(saleDateLayout),
		Daily:  periodSummary(totals[0], totals[1]),
		Weekly: periodSummary(totals[2], totals[3]),
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, ports.CacheKeySalesSummary, resp, salesSummaryTTL)
	}
	return resp, nil
}

// periodSummary calcula la variación porcentual contra el período anterior,
// redondeada a 2 decimales y protegida contra división por cero.
func periodSummary(current, previous decimal.Decimal) dto.PeriodSummary {
	change := decimal.Zero
	if previous.IsPositive() {
		change = current.Sub(previous).
			Div(previous).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return dto.PeriodSummary{
		Total:         current.Round(2),
		Previous:      previous.Round(2),
		PercentChange: change,
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		Amount:      s.Amount,
		Date:        s.Date.Format(saleDateLayout),
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}
