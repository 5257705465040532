package optionmetrics

import (
	"math"

	"github.com/kubzej/options-insight/src/optionmodels"
)

// DefaultATMTolerancePercent is the band around the strike, in percent of the
// strike, inside which a contract counts as at-the-money.
const DefaultATMTolerancePercent = 2.0

// ClassifyMoneyness compares the underlying spot price against the strike.
// The tolerance band is inclusive and applies in both directions regardless
// of option type; outside it, calls are in the money above the strike and
// puts below it.
func ClassifyMoneyness(optionType optionmodels.OptionType, spotPrice float64, strike float64, atmTolerancePercent float64) optionmodels.Moneyness {
	percentDiff := math.Abs(spotPrice-strike) / strike * 100

	if percentDiff <= atmTolerancePercent {
		return optionmodels.AtTheMoney
	}

	if optionType == optionmodels.Call {
		if spotPrice > strike {
			return optionmodels.InTheMoney
		}

		return optionmodels.OutOfMoney
	}

	if spotPrice < strike {
		return optionmodels.InTheMoney
	}

	return optionmodels.OutOfMoney
}
