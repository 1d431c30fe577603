package domain

import "time"

const (
	// AverageDaysPerMonth é a média de dias usada para projetar o faturamento mensal
	AverageDaysPerMonth = 30.41
	// OnlineSalesPayoutRate é a taxa repassada sobre as vendas O4O
	OnlineSalesPayoutRate = 0.16

	MinMarginRate = 20.0
	MaxMarginRate = 45.0
)

// ScenarioInput representa os dados informados para um cenário (atual ou meta)
type ScenarioInput struct {
	FranchiseType FranchiseType `json:"franchise_type" validate:"required,oneof=GS1 GS2 GS3"`
	DailySales    float64       `json:"daily_sales"`
	MarginRate    float64       `json:"margin_rate"`
	OnlineSales   float64       `json:"online_sales"`
	Rent          float64       `json:"rent"`
}

// Normalized descarta o aluguel quando o tipo de contrato não prevê essa dedução
func (in ScenarioInput) Normalized() ScenarioInput {
	if !in.FranchiseType.AllowsRent() {
		in.Rent = 0
	}
	return in
}

// ScenarioResult é o detalhamento financeiro mensal calculado para um cenário
type ScenarioResult struct {
	MonthlySales       float64 `json:"monthly_sales"`
	MonthlyGrossProfit float64 `json:"monthly_gross_profit"`
	RoyaltyAmount      float64 `json:"royalty_amount"`
	OnlineSalesPayout  float64 `json:"online_sales_payout"`
	SupportAmount      float64 `json:"support_amount"`
	RentDeduction      float64 `json:"rent_deduction"`
	TotalIncome        float64 `json:"total_income"`
}

// Comparison é a variação entre o cenário atual e a meta
type Comparison struct {
	Delta              float64 `json:"delta"`
	PercentImprovement float64 `json:"percent_improvement"`
}

// Simulation agrupa os dois cenários, seus resultados e a comparação
type Simulation struct {
	ID            string         `json:"id,omitempty"`
	Current       ScenarioInput  `json:"current"`
	Target        ScenarioInput  `json:"target"`
	CurrentResult ScenarioResult `json:"current_result"`
	TargetResult  ScenarioResult `json:"target_result"`
	Comparison    Comparison     `json:"comparison"`
	CreatedAt     time.Time      `json:"created_at"`
}

// SimulationReportFilters filtra o histórico de simulações arquivadas
type SimulationReportFilters struct {
	Since *time.Time
	Until *time.Time
	Limit uint64
}
