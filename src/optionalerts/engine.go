package optionalerts

import (
	"fmt"
	"math"
	"sort"

	"github.com/kubzej/options-insight/src/optionmodels"
)

// Engine evaluates threshold rules over open option positions. It is
// stateless apart from its immutable thresholds: no alert history, no
// deduplication across calls, safe for concurrent use.
type Engine struct {
	thresholds Thresholds
}

func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// GenerateAlertsForOption runs the four checks in a fixed order (expiry, ITM
// proximity, P/L extremes, theta decay) and returns at most one alert per
// check, concatenated in that order.
func (e *Engine) GenerateAlertsForOption(option optionmodels.AlertableOption) []optionmodels.OptionAlert {
	var alerts []optionmodels.OptionAlert

	if alert := e.checkDTE(option); alert != nil {
		alerts = append(alerts, *alert)
	}

	if alert := e.checkITMProximity(option); alert != nil {
		alerts = append(alerts, *alert)
	}

	if alert := e.checkPLExtremes(option); alert != nil {
		alerts = append(alerts, *alert)
	}

	if alert := e.checkThetaDecay(option); alert != nil {
		alerts = append(alerts, *alert)
	}

	return alerts
}

// GenerateAllAlerts evaluates every position and orders the combined result
// by severity. The sort must be stable: equal-severity alerts keep their
// per-option, per-check generation order.
func (e *Engine) GenerateAllAlerts(options []optionmodels.AlertableOption) []optionmodels.OptionAlert {
	var alerts []optionmodels.OptionAlert
	for _, option := range options {
		alerts = append(alerts, e.GenerateAlertsForOption(option)...)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})

	return alerts
}

func (e *Engine) checkDTE(option optionmodels.AlertableOption) *optionmodels.OptionAlert {
	if option.DTE == nil {
		return nil
	}

	dte := *option.DTE

	if dte <= 0 {
		return &optionmodels.OptionAlert{
			Type:         optionmodels.AlertTypeExpiring,
			Severity:     optionmodels.SeverityDanger,
			Message:      fmt.Sprintf("%s expires today", option.Label()),
			ShortMessage: "Expires today",
			OptionSymbol: option.Symbol,
			Ticker:       option.Ticker,
		}
	}

	if dte <= e.thresholds.DTEDanger {
		return &optionmodels.OptionAlert{
			Type:         optionmodels.AlertTypeDTE,
			Severity:     optionmodels.SeverityDanger,
			Message:      fmt.Sprintf("%s expires in %d days", option.Label(), dte),
			ShortMessage: fmt.Sprintf("%d DTE", dte),
			OptionSymbol: option.Symbol,
			Ticker:       option.Ticker,
		}
	}

	if dte <= e.thresholds.DTEWarning {
		return &optionmodels.OptionAlert{
			Type:         optionmodels.AlertTypeDTE,
			Severity:     optionmodels.SeverityWarning,
			Message:      fmt.Sprintf("%s expires in %d days", option.Label(), dte),
			ShortMessage: fmt.Sprintf("%d DTE", dte),
			OptionSymbol: option.Symbol,
			Ticker:       option.Ticker,
		}
	}

	// Anything past the warning band is deliberately silent, including the
	// 15-30 day window covered by the inert DTEInfo threshold.
	return nil
}

func (e *Engine) checkITMProximity(option optionmodels.AlertableOption) *optionmodels.OptionAlert {
	if option.Moneyness == nil || *option.Moneyness != optionmodels.InTheMoney {
		return nil
	}

	if option.DTE == nil || *option.DTE > e.thresholds.DTEWarning {
		return nil
	}

	severity := optionmodels.SeverityWarning
	if *option.DTE <= e.thresholds.DTEDanger {
		severity = optionmodels.SeverityDanger
	}

	if option.Direction == optionmodels.Short {
		return &optionmodels.OptionAlert{
			Type:         optionmodels.AlertTypeITM,
			Severity:     severity,
			Message:      fmt.Sprintf("%s is in the money with %d days to expiration - assignment risk", option.Label(), *option.DTE),
			ShortMessage: "Assignment risk",
			OptionSymbol: option.Symbol,
			Ticker:       option.Ticker,
		}
	}

	return &optionmodels.OptionAlert{
		Type:         optionmodels.AlertTypeITM,
		Severity:     severity,
		Message:      fmt.Sprintf("%s is in the money with %d days to expiration - consider exercising or selling", option.Label(), *option.DTE),
		ShortMessage: "ITM near expiry",
		OptionSymbol: option.Symbol,
		Ticker:       option.Ticker,
	}
}

func (e *Engine) checkPLExtremes(option optionmodels.AlertableOption) *optionmodels.OptionAlert {
	if option.PLPercent == nil {
		return nil
	}

	plPercent := *option.PLPercent

	if plPercent <= e.thresholds.PLDangerLoss {
		return &optionmodels.OptionAlert{
			Type:         optionmodels.AlertTypePL,
			Severity:     optionmodels.SeverityDanger,
			Message:      fmt.Sprintf("%s is down %.1f%% - large loss", option.Label(), math.Abs(plPercent)),
			ShortMessage: fmt.Sprintf("%.1f%%", plPercent),
			OptionSymbol: option.Symbol,
			Ticker:       option.Ticker,
		}
	}

	if plPercent <= e.thresholds.PLWarningLoss {
		return &optionmodels.OptionAlert{
			Type:         optionmodels.AlertTypePL,
			Severity:     optionmodels.SeverityWarning,
			Message:      fmt.Sprintf("%s is down %.1f%%", option.Label(), math.Abs(plPercent)),
			ShortMessage: fmt.Sprintf("%.1f%%", plPercent),
			OptionSymbol: option.Symbol,
			Ticker:       option.Ticker,
		}
	}

	if plPercent >= e.thresholds.PLInfoGain {
		return &optionmodels.OptionAlert{
			Type:         optionmodels.AlertTypePL,
			Severity:     optionmodels.SeverityInfo,
			Message:      fmt.Sprintf("%s is up %.1f%% - consider taking profit", option.Label(), plPercent),
			ShortMessage: fmt.Sprintf("+%.1f%%", plPercent),
			OptionSymbol: option.Symbol,
			Ticker:       option.Ticker,
		}
	}

	return nil
}

func (e *Engine) checkThetaDecay(option optionmodels.AlertableOption) *optionmodels.OptionAlert {
	// Only long holders bleed time value.
	if option.Theta == nil || option.Direction != optionmodels.Long {
		return nil
	}

	dailyDecayUSD := math.Abs(*option.Theta) * float64(option.Contracts) * 100
	if dailyDecayUSD < e.thresholds.ThetaDecayMinUSD {
		return nil
	}

	return &optionmodels.OptionAlert{
		Type:         optionmodels.AlertTypeTheta,
		Severity:     optionmodels.SeverityWarning,
		Message:      fmt.Sprintf("%s is losing $%.2f per day to time decay", option.Label(), dailyDecayUSD),
		ShortMessage: fmt.Sprintf("-$%.2f/day", dailyDecayUSD),
		OptionSymbol: option.Symbol,
		Ticker:       option.Ticker,
	}
}

type AlertCounts struct {
	Danger  int `json:"danger"`
	Warning int `json:"warning"`
	Info    int `json:"info"`
	Total   int `json:"total"`
}

func CountAlertsBySeverity(alerts []optionmodels.OptionAlert) AlertCounts {
	counts := AlertCounts{Total: len(alerts)}

	for _, alert := range alerts {
		switch alert.Severity {
		case optionmodels.SeverityDanger:
			counts.Danger++
		case optionmodels.SeverityWarning:
			counts.Warning++
		case optionmodels.SeverityInfo:
			counts.Info++
		}
	}

	return counts
}

// GetAlertsForOption filters by exact symbol match.
func GetAlertsForOption(alerts []optionmodels.OptionAlert, optionSymbol optionmodels.OptionSymbol) []optionmodels.OptionAlert {
	var matched []optionmodels.OptionAlert
	for _, alert := range alerts {
		if alert.OptionSymbol == optionSymbol {
			matched = append(matched, alert)
		}
	}

	return matched
}

// GetHighestSeverity returns the most severe level present. The second return
// value is false for an empty slice.
func GetHighestSeverity(alerts []optionmodels.OptionAlert) (optionmodels.AlertSeverity, bool) {
	if len(alerts) == 0 {
		return "", false
	}

	highest := alerts[0].Severity
	for _, alert := range alerts[1:] {
		if alert.Severity.Rank() < highest.Rank() {
			highest = alert.Severity
		}
	}

	return highest, true
}
