package optionmetrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/kubzej/options-insight/src/optionmodels"
)

// DefaultContractMultiplier is the share count behind one standard US equity
// option contract.
const DefaultContractMultiplier = 100.0

// ProfitBound is one side of a position's theoretical P/L envelope. Unbounded
// true means no finite bound exists and Amount carries no meaning; callers
// must branch on the flag instead of comparing against any numeric sentinel.
type ProfitBound struct {
	Amount      float64 `json:"amount"`
	Unbounded   bool    `json:"unbounded"`
	Description string  `json:"description"`
}

type ProfitLossBounds struct {
	MaxProfit ProfitBound `json:"maxProfit"`
	MaxLoss   ProfitBound `json:"maxLoss"`
}

// PositionValue returns the dollar value of a premium over a number of
// contracts. Inputs are not validated; a negative contract count yields a
// negative value.
func PositionValue(contracts int, premiumPerShare float64, multiplier float64) float64 {
	return float64(contracts) * premiumPerShare * multiplier
}

// UnrealizedPL returns the open P/L in dollars. Long positions profit when
// the premium rises, short positions when it falls.
func UnrealizedPL(direction optionmodels.PositionDirection, contracts int, avgPremium float64, currentPrice float64, multiplier float64) float64 {
	costBasis := float64(contracts) * avgPremium * multiplier
	currentValue := float64(contracts) * currentPrice * multiplier

	if direction == optionmodels.Short {
		return costBasis - currentValue
	}

	return currentValue - costBasis
}

// UnrealizedPLPercent returns the open P/L as a percentage of the average
// premium. A zero average premium returns 0 rather than an error; the caller
// treats it as "no basis to measure against".
func UnrealizedPLPercent(direction optionmodels.PositionDirection, avgPremium float64, currentPrice float64) float64 {
	if avgPremium == 0 {
		return 0
	}

	if direction == optionmodels.Short {
		return (avgPremium - currentPrice) / avgPremium * 100
	}

	return (currentPrice - avgPremium) / avgPremium * 100
}

// Breakeven returns the underlying price at which the position neither gains
// nor loses at expiration. The payoff is symmetric at breakeven, so the same
// price holds for long and short holders of the contract.
func Breakeven(optionType optionmodels.OptionType, strike float64, premium float64) float64 {
	if optionType == optionmodels.Put {
		return strike - premium
	}

	return strike + premium
}

// MaxProfitLoss returns the theoretical P/L envelope for the position. The
// put-side bound is floored at zero because a premium above the strike has no
// economically meaningful downside beyond the premium itself.
func MaxProfitLoss(optionType optionmodels.OptionType, direction optionmodels.PositionDirection, strike float64, premium float64, contracts int, multiplier float64) ProfitLossBounds {
	totalPremium := premium * float64(contracts) * multiplier
	putSideBound := math.Max(0, (strike-premium)*float64(contracts)*multiplier)

	if direction == optionmodels.Long {
		if optionType == optionmodels.Call {
			return ProfitLossBounds{
				MaxProfit: ProfitBound{
					Unbounded:   true,
					Description: "unlimited as the underlying rises",
				},
				MaxLoss: ProfitBound{
					Amount:      totalPremium,
					Description: fmt.Sprintf("limited to the $%.2f premium paid", totalPremium),
				},
			}
		}

		return ProfitLossBounds{
			MaxProfit: ProfitBound{
				Amount:      putSideBound,
				Description: fmt.Sprintf("limited to $%.2f if the underlying falls to zero", putSideBound),
			},
			MaxLoss: ProfitBound{
				Amount:      totalPremium,
				Description: fmt.Sprintf("limited to the $%.2f premium paid", totalPremium),
			},
		}
	}

	if optionType == optionmodels.Call {
		return ProfitLossBounds{
			MaxProfit: ProfitBound{
				Amount:      totalPremium,
				Description: fmt.Sprintf("limited to the $%.2f premium received", totalPremium),
			},
			MaxLoss: ProfitBound{
				Unbounded:   true,
				Description: "unlimited as the underlying rises",
			},
		}
	}

	return ProfitLossBounds{
		MaxProfit: ProfitBound{
			Amount:      totalPremium,
			Description: fmt.Sprintf("limited to the $%.2f premium received", totalPremium),
		},
		MaxLoss: ProfitBound{
			Amount:      putSideBound,
			Description: fmt.Sprintf("limited to $%.2f if the underlying falls to zero", putSideBound),
		},
	}
}

// ProbabilityOfProfit estimates the chance the position expires profitable
// from the contract delta, which approximates the risk-neutral probability of
// finishing in the money. A nil delta passes through as nil: insufficient
// data, not an error.
func ProbabilityOfProfit(delta *float64, direction optionmodels.PositionDirection) *float64 {
	if delta == nil {
		return nil
	}

	probITM := math.Abs(*delta) * 100
	if direction == optionmodels.Short {
		probITM = 100 - probITM
	}

	return &probITM
}

// ProfitAtExpiry settles a single long contract at the given underlying
// price: intrinsic value minus the premium paid, scaled by the multiplier.
func ProfitAtExpiry(optionType optionmodels.OptionType, strike float64, premium float64, underlyingAtExpiry float64, multiplier float64) (float64, error) {
	if optionType == optionmodels.Call {
		if underlyingAtExpiry > strike {
			return (underlyingAtExpiry - strike - premium) * multiplier, nil
		}

		return -premium * multiplier, nil
	} else if optionType == optionmodels.Put {
		if underlyingAtExpiry < strike {
			return (strike - underlyingAtExpiry - premium) * multiplier, nil
		}

		return -premium * multiplier, nil
	}

	return 0, errors.New("invalid option type")
}
