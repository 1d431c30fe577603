package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-coach-api/internal/domain"
)

func sampleSimulation() *domain.Simulation {
	return &domain.Simulation{
		Current: domain.ScenarioInput{
			FranchiseType: domain.FranchiseTypeGS2,
			DailySales:    1500,
			MarginRate:    30,
			Rent:          1200,
		},
		Target: domain.ScenarioInput{
			FranchiseType: domain.FranchiseTypeGS2,
			DailySales:    1700,
			MarginRate:    31.5,
			OnlineSales:   2500,
			Rent:          1000,
		},
		CurrentResult: domain.ScenarioResult{TotalIncome: 7900.725},
		TargetResult:  domain.ScenarioResult{TotalIncome: 10318.4},
		Comparison:    domain.Comparison{Delta: 2417.675, PercentImprovement: 30.6},
	}
}

func TestBuildReport_Headline(t *testing.T) {
	report := BuildReport(sampleSimulation())
	require.NotNil(t, report)
	require.Len(t, report.Headline, 3)

	assert.Equal(t, "7,900 천원", report.Headline[0].Value)
	assert.Equal(t, "10,318 천원", report.Headline[1].Value)
	assert.Equal(t, "2,417 천원 상승", report.Headline[1].Delta)
	assert.Equal(t, "30.6%", report.Headline[2].Value)
}

func TestBuildReport_Rows(t *testing.T) {
	report := BuildReport(sampleSimulation())
	require.Len(t, report.Rows, 5)

	franchise, rent, margin, online, total := report.Rows[0], report.Rows[1], report.Rows[2], report.Rows[3], report.Rows[4]

	assert.Equal(t, "GS2", franchise.Current)
	assert.Equal(t, "-", franchise.Difference)

	assert.Equal(t, "-1,200원", rent.Current)
	assert.Equal(t, "-1,000원", rent.Target)
	assert.Equal(t, "200", rent.Difference)

	assert.Equal(t, "30.0%", margin.Current)
	assert.Equal(t, "31.5%", margin.Target)

	assert.Equal(t, "0원", online.Current)
	assert.Equal(t, "2,500원", online.Target)

	assert.Equal(t, "7,900원", total.Current)
	assert.Equal(t, "2,417", total.Difference)
	assert.True(t, total.Emphasis)
}

func TestBuildReport_Chart(t *testing.T) {
	report := BuildReport(sampleSimulation())
	require.Len(t, report.Chart, 2)

	assert.Equal(t, "기존", report.Chart[0].Label)
	assert.Equal(t, currentBarColor, report.Chart[0].Color)
	assert.Equal(t, 76.6, report.Chart[0].WidthPercent)
	assert.Equal(t, 100.0, report.Chart[1].WidthPercent)
}

func TestBuildReport_ZeroTotals(t *testing.T) {
	report := BuildReport(&domain.Simulation{})

	assert.Equal(t, "0.0%", report.Headline[2].Value)
	assert.Equal(t, 0.0, report.Chart[0].WidthPercent)
	assert.Equal(t, 0.0, report.Chart[1].WidthPercent)
}

func TestBuildReport_Nil(t *testing.T) {
	assert.Nil(t, BuildReport(nil))
}
