package optionmetrics

import (
	"testing"

	"github.com/kubzej/options-insight/src/optionmodels"
	"github.com/stretchr/testify/assert"
)

func TestPositionValue(t *testing.T) {
	assert.Equal(t, 700.0, PositionValue(2, 3.5, DefaultContractMultiplier))
	assert.Equal(t, 0.0, PositionValue(0, 3.5, DefaultContractMultiplier))
}

func TestUnrealizedPL(t *testing.T) {
	t.Run("short profits when the premium drops", func(t *testing.T) {
		pl := UnrealizedPL(optionmodels.Short, 2, 3.0, 2.0, DefaultContractMultiplier)
		assert.Equal(t, 200.0, pl)
	})

	t.Run("long profits when the premium rises", func(t *testing.T) {
		pl := UnrealizedPL(optionmodels.Long, 2, 3.0, 4.5, DefaultContractMultiplier)
		assert.Equal(t, 300.0, pl)
	})

	t.Run("long and short are antisymmetric", func(t *testing.T) {
		cases := []struct {
			contracts    int
			avgPremium   float64
			currentPrice float64
		}{
			{1, 1.0, 2.0},
			{2, 3.0, 2.0},
			{10, 0.45, 0.45},
			{3, 5.25, 0.0},
		}

		for _, tc := range cases {
			longPL := UnrealizedPL(optionmodels.Long, tc.contracts, tc.avgPremium, tc.currentPrice, DefaultContractMultiplier)
			shortPL := UnrealizedPL(optionmodels.Short, tc.contracts, tc.avgPremium, tc.currentPrice, DefaultContractMultiplier)
			assert.Equal(t, -shortPL, longPL)
		}
	})
}

func TestUnrealizedPLPercent(t *testing.T) {
	t.Run("zero premium returns zero, not an error", func(t *testing.T) {
		assert.Equal(t, 0.0, UnrealizedPLPercent(optionmodels.Long, 0, 5.0))
		assert.Equal(t, 0.0, UnrealizedPLPercent(optionmodels.Short, 0, 5.0))
	})

	t.Run("long", func(t *testing.T) {
		assert.InDelta(t, 50.0, UnrealizedPLPercent(optionmodels.Long, 2.0, 3.0), 1e-9)
		assert.InDelta(t, -50.0, UnrealizedPLPercent(optionmodels.Long, 2.0, 1.0), 1e-9)
	})

	t.Run("short", func(t *testing.T) {
		assert.InDelta(t, 50.0, UnrealizedPLPercent(optionmodels.Short, 2.0, 1.0), 1e-9)
		assert.InDelta(t, -50.0, UnrealizedPLPercent(optionmodels.Short, 2.0, 3.0), 1e-9)
	})
}

func TestBreakeven(t *testing.T) {
	assert.Equal(t, 155.0, Breakeven(optionmodels.Call, 150, 5))
	assert.Equal(t, 145.0, Breakeven(optionmodels.Put, 150, 5))
}

func TestMaxProfitLoss(t *testing.T) {
	t.Run("long call", func(t *testing.T) {
		bounds := MaxProfitLoss(optionmodels.Call, optionmodels.Long, 150, 5, 1, DefaultContractMultiplier)
		assert.True(t, bounds.MaxProfit.Unbounded)
		assert.False(t, bounds.MaxLoss.Unbounded)
		assert.Equal(t, 500.0, bounds.MaxLoss.Amount)
		assert.NotEmpty(t, bounds.MaxProfit.Description)
		assert.NotEmpty(t, bounds.MaxLoss.Description)
	})

	t.Run("long put", func(t *testing.T) {
		bounds := MaxProfitLoss(optionmodels.Put, optionmodels.Long, 150, 5, 1, DefaultContractMultiplier)
		assert.False(t, bounds.MaxProfit.Unbounded)
		assert.Equal(t, 14500.0, bounds.MaxProfit.Amount)
		assert.Equal(t, 500.0, bounds.MaxLoss.Amount)
	})

	t.Run("long put profit floors at zero when premium exceeds strike", func(t *testing.T) {
		bounds := MaxProfitLoss(optionmodels.Put, optionmodels.Long, 1, 2, 1, DefaultContractMultiplier)
		assert.Equal(t, 0.0, bounds.MaxProfit.Amount)
	})

	t.Run("short call", func(t *testing.T) {
		bounds := MaxProfitLoss(optionmodels.Call, optionmodels.Short, 150, 5, 1, DefaultContractMultiplier)
		assert.Equal(t, 500.0, bounds.MaxProfit.Amount)
		assert.True(t, bounds.MaxLoss.Unbounded)
	})

	t.Run("short put", func(t *testing.T) {
		bounds := MaxProfitLoss(optionmodels.Put, optionmodels.Short, 150, 5, 2, DefaultContractMultiplier)
		assert.Equal(t, 1000.0, bounds.MaxProfit.Amount)
		assert.False(t, bounds.MaxLoss.Unbounded)
		assert.Equal(t, 29000.0, bounds.MaxLoss.Amount)
	})

	t.Run("short put loss floors at zero when premium exceeds strike", func(t *testing.T) {
		bounds := MaxProfitLoss(optionmodels.Put, optionmodels.Short, 1, 2, 1, DefaultContractMultiplier)
		assert.Equal(t, 0.0, bounds.MaxLoss.Amount)
	})
}

func TestProbabilityOfProfit(t *testing.T) {
	t.Run("nil delta passes through", func(t *testing.T) {
		assert.Nil(t, ProbabilityOfProfit(nil, optionmodels.Long))
	})

	t.Run("long uses the absolute delta", func(t *testing.T) {
		delta := -0.35
		prob := ProbabilityOfProfit(&delta, optionmodels.Long)
		assert.NotNil(t, prob)
		assert.InDelta(t, 35.0, *prob, 1e-9)
	})

	t.Run("short takes the complement", func(t *testing.T) {
		delta := 0.35
		prob := ProbabilityOfProfit(&delta, optionmodels.Short)
		assert.NotNil(t, prob)
		assert.InDelta(t, 65.0, *prob, 1e-9)
	})
}

func TestProfitAtExpiry(t *testing.T) {
	t.Run("call in the money", func(t *testing.T) {
		profit, err := ProfitAtExpiry(optionmodels.Call, 150, 5, 160, DefaultContractMultiplier)
		assert.NoError(t, err)
		assert.Equal(t, 500.0, profit)
	})

	t.Run("call out of the money loses the premium", func(t *testing.T) {
		profit, err := ProfitAtExpiry(optionmodels.Call, 150, 5, 140, DefaultContractMultiplier)
		assert.NoError(t, err)
		assert.Equal(t, -500.0, profit)
	})

	t.Run("put in the money", func(t *testing.T) {
		profit, err := ProfitAtExpiry(optionmodels.Put, 150, 5, 140, DefaultContractMultiplier)
		assert.NoError(t, err)
		assert.Equal(t, 500.0, profit)
	})

	t.Run("invalid option type", func(t *testing.T) {
		_, err := ProfitAtExpiry(optionmodels.OptionType("straddle"), 150, 5, 140, DefaultContractMultiplier)
		assert.Error(t, err)
	})
}
