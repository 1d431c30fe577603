package calculating

import (
	"github.com/vfg2006/revenue-coach-api/internal/domain"
	"github.com/vfg2006/revenue-coach-api/pkg/utils"
)

// Compute calcula o detalhamento mensal de um cenário.
// Não valida os valores: vendas negativas geram um resultado matematicamente consistente.
func Compute(dailySales, marginRate float64, franchiseType domain.FranchiseType, onlineSales, rent float64) domain.ScenarioResult {
	cfg := franchiseType.Config()

	monthlySales := dailySales * domain.AverageDaysPerMonth
	grossProfit := monthlySales * (marginRate / 100)
	royalty := grossProfit * cfg.RoyaltyRate
	onlinePayout := onlineSales * domain.OnlineSalesPayoutRate

	return domain.ScenarioResult{
		MonthlySales:       monthlySales,
		MonthlyGrossProfit: grossProfit,
		RoyaltyAmount:      royalty,
		OnlineSalesPayout:  onlinePayout,
		SupportAmount:      cfg.Support,
		RentDeduction:      rent,
		TotalIncome:        royalty + cfg.Support + onlinePayout - rent,
	}
}

func ComputeScenario(in domain.ScenarioInput) domain.ScenarioResult {
	return Compute(in.DailySales, in.MarginRate, in.FranchiseType, in.OnlineSales, in.Rent)
}

// Compare calcula a diferença e o percentual de melhoria da meta sobre o cenário atual.
// Com receita atual igual a zero o percentual é 0.
func Compare(current, target domain.ScenarioResult) domain.Comparison {
	delta := target.TotalIncome - current.TotalIncome

	percent := 0.0
	if current.TotalIncome != 0 {
		percent = utils.RoundWithOneDecimalPlace(delta / current.TotalIncome * 100)
	}

	return domain.Comparison{
		Delta:              delta,
		PercentImprovement: percent,
	}
}
