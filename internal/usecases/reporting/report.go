// Package reporting monta o modelo de exibição da comparação (indicadores, tabela e gráfico)
package reporting

import (
	"math"

	"github.com/vfg2006/revenue-coach-api/internal/domain"
	"github.com/vfg2006/revenue-coach-api/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	currentBarColor = "#ADB5BD"
	targetBarColor  = "#007AFF"
	noDifference    = "-"
)

var printer = message.NewPrinter(language.Korean)

// BuildReport gera os indicadores de destaque, a tabela de cinco linhas e as barras do gráfico
func BuildReport(sim *domain.Simulation) *domain.ComparisonReport {
	if sim == nil {
		return nil
	}

	return &domain.ComparisonReport{
		Headline: headline(sim),
		Rows:     rows(sim),
		Chart:    chart(sim),
	}
}

func headline(sim *domain.Simulation) []domain.HeadlineMetric {
	return []domain.HeadlineMetric{
		{
			Label: "현재 월 예상수익",
			Value: thousandWon(sim.CurrentResult.TotalIncome),
		},
		{
			Label: "목표 월 예상수익",
			Value: thousandWon(sim.TargetResult.TotalIncome),
			Delta: thousandWon(sim.Comparison.Delta) + " 상승",
		},
		{
			Label: "수익 개선율",
			Value: printer.Sprintf("%.1f%%", sim.Comparison.PercentImprovement),
		},
	}
}

func rows(sim *domain.Simulation) []domain.ComparisonRow {
	current, target := sim.Current, sim.Target

	return []domain.ComparisonRow{
		{
			Item:       "가맹 타입",
			Current:    current.FranchiseType.String(),
			Target:     target.FranchiseType.String(),
			Difference: noDifference,
		},
		{
			Item:       "임차료",
			Current:    "-" + won(current.Rent),
			Target:     "-" + won(target.Rent),
			Difference: grouped(-(target.Rent - current.Rent)),
		},
		{
			Item:       "매익률",
			Current:    printer.Sprintf("%.1f%%", current.MarginRate),
			Target:     printer.Sprintf("%.1f%%", target.MarginRate),
			Difference: noDifference,
		},
		{
			Item:       "O4O 매출액",
			Current:    won(current.OnlineSales),
			Target:     won(target.OnlineSales),
			Difference: noDifference,
		},
		{
			Item:       "최종 정산금액",
			Current:    won(sim.CurrentResult.TotalIncome),
			Target:     won(sim.TargetResult.TotalIncome),
			Difference: grouped(sim.Comparison.Delta),
			Emphasis:   true,
		},
	}
}

// chart calcula a largura de cada barra em relação ao maior valor absoluto
func chart(sim *domain.Simulation) []domain.ChartBar {
	bars := []domain.ChartBar{
		{Label: "기존", Value: sim.CurrentResult.TotalIncome, Color: currentBarColor},
		{Label: "목표", Value: sim.TargetResult.TotalIncome, Color: targetBarColor},
	}

	largest := math.Max(math.Abs(bars[0].Value), math.Abs(bars[1].Value))
	if largest == 0 {
		return bars
	}

	for i := range bars {
		bars[i].WidthPercent = utils.RoundWithOneDecimalPlace(math.Abs(bars[i].Value) / largest * 100)
	}

	return bars
}

func grouped(value float64) string {
	return printer.Sprintf("%d", utils.Truncate(value))
}

func won(value float64) string {
	return grouped(value) + "원"
}

func thousandWon(value float64) string {
	return grouped(value) + " 천원"
}
