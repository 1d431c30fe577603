package domain

const (
	defaultDailySales       = 1500.0
	defaultMarginRate       = 30.0
	defaultTargetOnlineSale = 500.0

	targetDailySalesIncrease = 200.0
	targetMarginIncrease     = 1.5

	SalesStep  = 10.0
	MarginStep = 0.1
)

// DefaultCurrentScenario retorna os valores iniciais do cenário atual no formulário
func DefaultCurrentScenario() ScenarioInput {
	return ScenarioInput{
		FranchiseType: FranchiseTypeGS1,
		DailySales:    defaultDailySales,
		MarginRate:    defaultMarginRate,
	}
}

// DefaultTargetScenario deriva os valores iniciais da meta a partir do cenário atual
func DefaultTargetScenario(current ScenarioInput) ScenarioInput {
	return ScenarioInput{
		FranchiseType: current.FranchiseType,
		DailySales:    current.DailySales + targetDailySalesIncrease,
		MarginRate:    ClampMarginRate(current.MarginRate + targetMarginIncrease),
		OnlineSales:   defaultTargetOnlineSale,
	}
}

// ClampMarginRate limita a margem ao intervalo oferecido pelo controle deslizante
func ClampMarginRate(rate float64) float64 {
	if rate < MinMarginRate {
		return MinMarginRate
	}
	if rate > MaxMarginRate {
		return MaxMarginRate
	}
	return rate
}

// FormDefaults descreve os valores e passos dos campos do formulário
type FormDefaults struct {
	Current        ScenarioInput   `json:"current"`
	Target         ScenarioInput   `json:"target"`
	FranchiseTypes []FranchiseType `json:"franchise_types"`
	SalesStep      float64         `json:"sales_step"`
	MarginStep     float64         `json:"margin_step"`
	MinMarginRate  float64         `json:"min_margin_rate"`
	MaxMarginRate  float64         `json:"max_margin_rate"`
}

func NewFormDefaults() FormDefaults {
	current := DefaultCurrentScenario()
	return FormDefaults{
		Current:        current,
		Target:         DefaultTargetScenario(current),
		FranchiseTypes: FranchiseTypes(),
		SalesStep:      SalesStep,
		MarginStep:     MarginStep,
		MinMarginRate:  MinMarginRate,
		MaxMarginRate:  MaxMarginRate,
	}
}
