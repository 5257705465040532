package optionmodels

import "fmt"

// AlertableOption is the alert engine's input: position identity merged with
// the derived metrics the caller has available. Optional metrics are nil when
// the upstream data source could not supply them; the engine skips the
// corresponding checks instead of guessing. The engine never mutates it.
type AlertableOption struct {
	Symbol       OptionSymbol      `json:"optionSymbol"`
	Ticker       string            `json:"ticker"`
	OptionType   OptionType        `json:"optionType"`
	StrikePrice  float64           `json:"strike"`
	Direction    PositionDirection `json:"position"`
	Contracts    int               `json:"contracts"`
	DTE          *int              `json:"dte,omitempty"`
	Moneyness    *Moneyness        `json:"moneyness,omitempty"`
	PLPercent    *float64          `json:"plPercent,omitempty"`
	Theta        *float64          `json:"theta,omitempty"`
	CurrentPrice *float64          `json:"currentPrice,omitempty"`
}

// Label is the short contract identity used inside alert messages, e.g.
// "AAPL $150.00 call".
func (o AlertableOption) Label() string {
	return fmt.Sprintf("%s $%.2f %s", o.Ticker, o.StrikePrice, o.OptionType)
}
