package optionmodels

// Moneyness is derived from the current spot price on every evaluation and is
// never stored.
type Moneyness string

const (
	InTheMoney Moneyness = "ITM"
	AtTheMoney Moneyness = "ATM"
	OutOfMoney Moneyness = "OTM"
)

// DTECategory buckets a days-to-expiration count for display and alerting.
type DTECategory string

const (
	DTEExpired  DTECategory = "expired"
	DTECritical DTECategory = "critical"
	DTEWarning  DTECategory = "warning"
	DTEOk       DTECategory = "ok"
)
