package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/gastro-ops/internal/application/dto"
	"github.com/jcastro/gastro-ops/internal/domain"
	"github.com/jcastro/gastro-ops/internal/domain/entity"
)

func TestSaleCreate_Validacion(t *testing.T) {
	uc := NewSaleUseCase(&memSaleRepo{}, nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateSaleRequest{Amount: decimal.Zero, Date: "2026-08-30"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "importe cero")

	_, err = uc.Create(ctx, dto.CreateSaleRequest{Amount: decimal.NewFromInt(50)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha obligatoria")

	_, err = uc.Create(ctx, dto.CreateSaleRequest{Amount: decimal.NewFromInt(50), Date: "30.08.2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "formato de fecha inválido")

	resp, err := uc.Create(ctx, dto.CreateSaleRequest{
		Amount: decimal.NewFromFloat(129.50), Date: "2026-08-30", Description: "servicio de mediodía",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", resp.Date)
	assert.True(t, decimal.NewFromFloat(129.50).Equal(resp.Amount))
	assert.NotEmpty(t, resp.ID)
}

func TestPeriodSummary(t *testing.T) {
	cases := []struct {
		name              string
		current, previous decimal.Decimal
		expectedChange    string
	}{
		{"subida", decimal.NewFromInt(150), decimal.NewFromInt(100), "50"},
		{"bajada", decimal.NewFromInt(75), decimal.NewFromInt(100), "-25"},
		{"sin cambio", decimal.NewFromInt(100), decimal.NewFromInt(100), "0"},
		{"redondeo a 2 decimales", decimal.NewFromInt(100), decimal.NewFromInt(300), "-66.67"},
		{"período anterior en cero", decimal.NewFromInt(80), decimal.Zero, "0"},
		{"ambos en cero", decimal.Zero, decimal.Zero, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := periodSummary(tc.current, tc.previous)
			expected := decimal.RequireFromString(tc.expectedChange)
			assert.True(t, expected.Equal(got.PercentChange),
				"variación esperada %s, obtenida %s", expected, got.PercentChange)
		})
	}
}

// TestSaleGetSummary arma un histórico de ventas alrededor de una fecha fija y
// comprueba los cuatro agregados: hoy, ayer, semana en curso (7 días terminando
// hoy) y semana anterior (los 7 días previos).
func TestSaleGetSummary(t *testing.T) {
	repo := &memSaleRepo{}
	uc := NewSaleUseCase(repo, nil)

	// "Hoy" fijo: sábado 2026-08-29 a media tarde.
	today := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return today.Add(15 * time.Hour) }

	seed := func(daysAgo int, amount float64) {
		repo.sales = append(repo.sales, &entity.Sale{
			Amount: decimal.NewFromFloat(amount),
			Date:   today.AddDate(0, 0, -daysAgo),
		})
	}
	seed(0, 200)  // hoy
	seed(0, 100)  // hoy
	seed(1, 150)  // ayer
	seed(3, 50)   // semana en curso
	seed(6, 25)   // semana en curso (límite inferior)
	seed(7, 400)  // semana anterior (límite superior)
	seed(13, 100) // semana anterior (límite inferior)
	seed(14, 999) // fuera de rango

	resp, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2026-08-29", resp.Date)

	assert.True(t, decimal.NewFromInt(300).Equal(resp.Daily.Total), "hoy: 200+100")
	assert.True(t, decimal.NewFromInt(150).Equal(resp.Daily.Previous), "ayer: 150")
	assert.True(t, decimal.NewFromInt(100).Equal(resp.Daily.PercentChange), "(300-150)/150 = +100%")

	assert.True(t, decimal.NewFromInt(525).Equal(resp.Weekly.Total), "semana: 300+150+50+25")
	assert.True(t, decimal.NewFromInt(500).Equal(resp.Weekly.Previous), "semana anterior: 400+100")
	assert.True(t, decimal.NewFromInt(5).Equal(resp.Weekly.PercentChange), "(525-500)/500 = +5%")
}

func TestSaleList_Paginacion(t *testing.T) {
	repo := &memSaleRepo{}
	uc := NewSaleUseCase(repo, nil)
	ctx := context.Background()

	for day := 1; day <= 5; day++ {
		_, err := uc.Create(ctx, dto.CreateSaleRequest{
			Amount: decimal.NewFromInt(int64(day * 10)),
			Date:   time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		})
		require.NoError(t, err)
	}

	resp, err := uc.List(ctx, dto.PageRequest{Limit: 2, Offset: 0})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	// Más reciente primero.
	assert.Equal(t, "2026-08-05", resp.Items[0].Date)
	assert.Equal(t, "2026-08-04", resp.Items[1].Date)

	resp, err = uc.List(ctx, dto.PageRequest{Limit: 2, Offset: 4})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "2026-08-01", resp.Items[0].Date)
}
