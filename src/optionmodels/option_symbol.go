package optionmodels

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

type OptionSymbol string

const standardSymbolLength = 21

// standardSymbolRegex matches the strict OCC form: an underlying right-padded
// with spaces to 6 characters, YYMMDD, the contract flag, and an 8-digit
// strike. The padding must trail the underlying; interior or leading spaces
// are not part of the legacy format.
var standardSymbolRegex = regexp.MustCompile(`^[A-Z0-9]{1,6} *\d{6}[CP]\d{8}$`)

func (s OptionSymbol) NoPrefix() string {
	if strings.HasPrefix(string(s), "O:") {
		return string(s)[2:]
	}

	return string(s)
}

func (s OptionSymbol) Description() (string, error) {
	components, err := NewOptionSymbolComponents(s)
	if err != nil {
		return "", fmt.Errorf("OptionSymbol.Description: failed to parse option symbol: %w", err)
	}

	// Format the expiration date
	expiration := components.Expiration.Format("Jan 2 2006")

	// Format the strike price
	strikePrice := fmt.Sprintf("%.2f", components.StrikePrice)

	// Format the option type
	optionType := "Call"
	if components.OptionType == Put {
		optionType = "Put"
	}

	// Construct the human-readable format
	formatted := fmt.Sprintf("%s %s $%s %s", components.Underlying, expiration, strikePrice, optionType)

	return formatted, nil
}

// NewOptionSymbol encodes the contract identity into the compact OCC form with
// no padding on the underlying. Inputs are assumed valid: a malformed
// expiration or a negative strike produces a malformed symbol rather than an
// error, since validation belongs to the layer that collected the data.
func NewOptionSymbol(underlying string, strikePrice float64, expiration time.Time, optionType OptionType) OptionSymbol {
	underlying = strings.ToUpper(strings.TrimSpace(underlying))

	// Format the expiration date components
	year := expiration.Year() % 100 // last two digits of the year
	month := int(expiration.Month())
	day := expiration.Day()

	// Format the strike price to 8 digits
	strike := fmt.Sprintf("%08d", int(math.Round(strikePrice*1000)))

	ticker := fmt.Sprintf("%s%02d%02d%02d%s%s",
		underlying, year, month, day, optionType.Flag(), strike)

	return OptionSymbol(ticker)
}

// IsStandardOCCSymbol reports whether the symbol is in the exact 21-character
// padded exchange form. This is deliberately stricter than
// NewOptionSymbolComponents, which also accepts the compact unpadded variant;
// the two predicates cover two real formats and must not be unified.
func IsStandardOCCSymbol(symbol OptionSymbol) bool {
	if len(symbol) != standardSymbolLength {
		return false
	}

	return standardSymbolRegex.MatchString(string(symbol))
}
