package optionalerts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds is the rule configuration the engine is bound to at
// construction. It is passed by value and never mutated, so a running engine
// cannot be reconfigured behind a caller's back.
type Thresholds struct {
	// Days-to-expiration bands, inclusive upper bounds.
	DTEDanger  int `yaml:"dteDanger"`
	DTEWarning int `yaml:"dteWarning"`
	// DTEInfo is currently inert: the DTE check stops at the warning band and
	// never emits an info-level alert for the 15-30 day window. The knob is
	// kept so existing config files keep parsing.
	DTEInfo int `yaml:"dteInfo"`

	// Unrealized P/L percent bands.
	PLDangerLoss  float64 `yaml:"plDangerLoss"`
	PLWarningLoss float64 `yaml:"plWarningLoss"`
	PLInfoGain    float64 `yaml:"plInfoGain"`

	// Minimum daily time-decay, in dollars, before a theta alert fires.
	ThetaDecayMinUSD float64 `yaml:"thetaDecayMinUSD"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		DTEDanger:        7,
		DTEWarning:       14,
		DTEInfo:          30,
		PLDangerLoss:     -50,
		PLWarningLoss:    -25,
		PLInfoGain:       50,
		ThetaDecayMinUSD: 10,
	}
}

// NewThresholdsFromYAML loads threshold overrides from a YAML file on top of
// the defaults, so a config file only needs to name the knobs it changes.
func NewThresholdsFromYAML(path string) (Thresholds, error) {
	thresholds := DefaultThresholds()

	data, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, fmt.Errorf("NewThresholdsFromYAML: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &thresholds); err != nil {
		return Thresholds{}, fmt.Errorf("NewThresholdsFromYAML: failed to parse %s: %w", path, err)
	}

	return thresholds, nil
}
