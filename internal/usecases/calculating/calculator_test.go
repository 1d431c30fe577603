package calculating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revenue-coach-api/internal/domain"
)

const tolerance = 1e-6

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		dailySales    float64
		marginRate    float64
		franchiseType domain.FranchiseType
		onlineSales   float64
		rent          float64
		monthlySales  float64
		royalty       float64
		total         float64
	}{
		{
			name:          "GS1 sem O4O e sem aluguel",
			dailySales:    1500,
			marginRate:    30,
			franchiseType: domain.FranchiseTypeGS1,
			monthlySales:  45615,
			royalty:       9715.995,
			total:         9899.995,
		},
		{
			name:          "GS2 com aluguel",
			dailySales:    1500,
			marginRate:    30,
			franchiseType: domain.FranchiseTypeGS2,
			rent:          100,
			monthlySales:  45615,
			royalty:       8894.925,
			total:         8894.925 + 205.8 - 100,
		},
		{
			name:          "GS3 com O4O",
			dailySales:    1000,
			marginRate:    25,
			franchiseType: domain.FranchiseTypeGS3,
			onlineSales:   500,
			monthlySales:  30410,
			royalty:       3497.15,
			total:         3497.15 + 240.4 + 80,
		},
		{
			name:          "vendas negativas são aceitas",
			dailySales:    -100,
			marginRate:    30,
			franchiseType: domain.FranchiseTypeGS1,
			monthlySales:  -3041,
			royalty:       -647.733,
			total:         -647.733 + 184,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.dailySales, tt.marginRate, tt.franchiseType, tt.onlineSales, tt.rent)

			assert.InDelta(t, tt.monthlySales, got.MonthlySales, tolerance)
			assert.InDelta(t, tt.royalty, got.RoyaltyAmount, tolerance)
			assert.InDelta(t, tt.total, got.TotalIncome, tolerance)
			assert.Equal(t, tt.rent, got.RentDeduction)
			assert.Equal(t, tt.franchiseType.Config().Support, got.SupportAmount)
		})
	}
}

func TestCompute_GrossProfitBreakdown(t *testing.T) {
	got := Compute(1500, 30, domain.FranchiseTypeGS1, 0, 0)

	assert.InDelta(t, 13684.5, got.MonthlyGrossProfit, tolerance)
	assert.InDelta(t,
		got.RoyaltyAmount+got.SupportAmount+got.OnlineSalesPayout-got.RentDeduction,
		got.TotalIncome,
		tolerance,
	)
}

func TestCompute_IsDeterministic(t *testing.T) {
	for _, ft := range domain.FranchiseTypes() {
		first := Compute(1730, 33.3, ft, 120, 40)
		second := Compute(1730, 33.3, ft, 120, 40)
		assert.Equal(t, first, second)
	}
}

func TestCompute_RentReducesTotalExactly(t *testing.T) {
	withoutRent := Compute(1500, 30, domain.FranchiseTypeGS2, 0, 0)
	withRent := Compute(1500, 30, domain.FranchiseTypeGS2, 0, 100)

	assert.InDelta(t, 100, withoutRent.TotalIncome-withRent.TotalIncome, tolerance)
}

func TestCompute_OnlineSalesPayout(t *testing.T) {
	base := Compute(1500, 30, domain.FranchiseTypeGS3, 200, 0)

	for _, delta := range []float64{10, 250, 1000} {
		changed := Compute(1500, 30, domain.FranchiseTypeGS3, 200+delta, 0)
		assert.InDelta(t, delta*domain.OnlineSalesPayoutRate, changed.TotalIncome-base.TotalIncome, tolerance)
	}
}

func TestCompare(t *testing.T) {
	current := Compute(1500, 30, domain.FranchiseTypeGS1, 0, 0)

	t.Run("cenários idênticos", func(t *testing.T) {
		got := Compare(current, current)
		assert.Equal(t, 0.0, got.Delta)
		assert.Equal(t, 0.0, got.PercentImprovement)
	})

	t.Run("receita atual zero não divide", func(t *testing.T) {
		got := Compare(domain.ScenarioResult{TotalIncome: 0}, domain.ScenarioResult{TotalIncome: 50})
		assert.Equal(t, 50.0, got.Delta)
		assert.Equal(t, 0.0, got.PercentImprovement)
	})

	t.Run("percentual arredondado a uma casa", func(t *testing.T) {
		got := Compare(domain.ScenarioResult{TotalIncome: 300}, domain.ScenarioResult{TotalIncome: 400})
		assert.Equal(t, 100.0, got.Delta)
		assert.Equal(t, 33.3, got.PercentImprovement)
	})

	t.Run("queda de receita", func(t *testing.T) {
		got := Compare(domain.ScenarioResult{TotalIncome: 1000}, domain.ScenarioResult{TotalIncome: 875})
		assert.Equal(t, -125.0, got.Delta)
		assert.Equal(t, -12.5, got.PercentImprovement)
	})
}
