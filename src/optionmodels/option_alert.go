package optionmodels

type AlertSeverity string

const (
	SeverityDanger  AlertSeverity = "danger"
	SeverityWarning AlertSeverity = "warning"
	SeverityInfo    AlertSeverity = "info"
)

// Rank orders severities for sorting: danger first, info last.
func (s AlertSeverity) Rank() int {
	switch s {
	case SeverityDanger:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

type OptionAlertType string

const (
	AlertTypeExpiring OptionAlertType = "expiring"
	AlertTypeDTE      OptionAlertType = "dte"
	AlertTypeITM      OptionAlertType = "itm"
	AlertTypePL       OptionAlertType = "pl"
	AlertTypeTheta    OptionAlertType = "theta"
)

// OptionAlert is a display-ready alert. It is a plain value with no identity
// beyond its fields, created fresh on every evaluation pass and never
// persisted by this library. Message and ShortMessage are derived from the
// same inputs so the two renditions stay numerically consistent.
type OptionAlert struct {
	Type         OptionAlertType `json:"alertType"`
	Severity     AlertSeverity   `json:"severity"`
	Message      string          `json:"message"`
	ShortMessage string          `json:"shortMessage"`
	OptionSymbol OptionSymbol    `json:"optionSymbol"`
	Ticker       string          `json:"ticker"`
}
