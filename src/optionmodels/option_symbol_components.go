package optionmodels

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OptionSymbolComponents struct to hold parsed option details
type OptionSymbolComponents struct {
	Underlying  string
	Expiration  time.Time
	OptionType  OptionType
	StrikePrice float64
	Symbol      OptionSymbol
}

const (
	minSymbolLength = 16
	maxSymbolLength = 21

	// Two-digit years below the pivot decode into the 2000s.
	centuryPivot = 50
)

// NewOptionSymbolComponents parses an OCC option symbol. Both the compact
// unpadded form and the legacy space-padded 21-character form are accepted;
// embedded whitespace is stripped before parsing. A structural mismatch is an
// ordinary sentinel error, never a panic, so callers branch on it as control
// flow.
func NewOptionSymbolComponents(symbol OptionSymbol) (*OptionSymbolComponents, error) {
	cleaned := strings.ReplaceAll(symbol.NoPrefix(), " ", "")

	if len(cleaned) < minSymbolLength || len(cleaned) > maxSymbolLength {
		return nil, fmt.Errorf("NewOptionSymbolComponents: invalid symbol length %d for %q", len(cleaned), symbol)
	}

	// The contract flag sits at a fixed offset from the end, immediately
	// before the 8-digit strike field.
	flagPos := len(cleaned) - 9
	flag := cleaned[flagPos]
	if flag != 'C' && flag != 'P' {
		return nil, fmt.Errorf("NewOptionSymbolComponents: invalid option type flag %q in %q", string(flag), symbol)
	}

	underlying := cleaned[:flagPos-6]
	dateField := cleaned[flagPos-6 : flagPos]
	strikeField := cleaned[flagPos+1:]

	// strconv.Atoi tolerates a leading sign, so the fixed-width fields are
	// checked digit by digit first.
	if !isAllDigits(dateField) {
		return nil, fmt.Errorf("NewOptionSymbolComponents: non-numeric date field in %q", symbol)
	}

	if !isAllDigits(strikeField) {
		return nil, fmt.Errorf("NewOptionSymbolComponents: non-numeric strike field in %q", symbol)
	}

	year, err := strconv.Atoi(dateField[0:2])
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: invalid expiration year in %q: %w", symbol, err)
	}

	month, err := strconv.Atoi(dateField[2:4])
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: invalid expiration month in %q: %w", symbol, err)
	}

	day, err := strconv.Atoi(dateField[4:6])
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: invalid expiration day in %q: %w", symbol, err)
	}

	strikeThousandths, err := strconv.Atoi(strikeField)
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: invalid strike field in %q: %w", symbol, err)
	}

	if year < centuryPivot {
		year += 2000
	} else {
		year += 1900
	}

	optionType := Call
	if flag == 'P' {
		optionType = Put
	}

	return &OptionSymbolComponents{
		Underlying:  underlying,
		Expiration:  time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		OptionType:  optionType,
		StrikePrice: float64(strikeThousandths) / 1000,
		Symbol:      symbol,
	}, nil
}

func isAllDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
