package optionmetrics

import (
	"math"
	"time"

	"github.com/kubzej/options-insight/src/optionmodels"
)

// DTE classification boundaries, inclusive on the lower category.
const (
	dteCriticalMax = 7
	dteWarningMax  = 14
)

// DaysToExpiration returns the whole-day count from now to expiration. Both
// dates are normalized to midnight first, so the result does not depend on
// the time of day of evaluation. Zero means the contract expires today;
// negative means it is already past expiration.
func DaysToExpiration(expiration time.Time, now time.Time) int {
	e := midnight(expiration)
	n := midnight(now)

	return int(math.Ceil(e.Sub(n).Hours() / 24))
}

// midnight re-anchors the calendar day in UTC so that differences are exact
// multiples of 24 hours regardless of DST transitions in the source location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ClassifyDTE(dte int) optionmodels.DTECategory {
	if dte < 0 {
		return optionmodels.DTEExpired
	}

	if dte <= dteCriticalMax {
		return optionmodels.DTECritical
	}

	if dte <= dteWarningMax {
		return optionmodels.DTEWarning
	}

	return optionmodels.DTEOk
}
