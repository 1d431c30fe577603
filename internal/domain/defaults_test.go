package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTargetScenario(t *testing.T) {
	current := DefaultCurrentScenario()
	target := DefaultTargetScenario(current)

	assert.Equal(t, current.FranchiseType, target.FranchiseType)
	assert.Equal(t, 1700.0, target.DailySales)
	assert.Equal(t, 31.5, target.MarginRate)
	assert.Equal(t, 500.0, target.OnlineSales)
	assert.Equal(t, 0.0, target.Rent)
}

func TestDefaultTargetScenario_ClampsMargin(t *testing.T) {
	current := ScenarioInput{FranchiseType: FranchiseTypeGS3, DailySales: 900, MarginRate: 44.2}

	assert.Equal(t, MaxMarginRate, DefaultTargetScenario(current).MarginRate)
}

func TestClampMarginRate(t *testing.T) {
	assert.Equal(t, MinMarginRate, ClampMarginRate(10))
	assert.Equal(t, 33.3, ClampMarginRate(33.3))
	assert.Equal(t, MaxMarginRate, ClampMarginRate(60))
}
