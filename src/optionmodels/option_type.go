package optionmodels

import "fmt"

type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

func (o OptionType) Validate() error {
	if o != Call && o != Put {
		return fmt.Errorf("OptionType: Validate: invalid option type: %s", o)
	}

	return nil
}

// Flag returns the single-character contract flag used in OCC symbols.
func (o OptionType) Flag() string {
	if o == Put {
		return "P"
	}

	return "C"
}

type PositionDirection string

const (
	Long  PositionDirection = "long"
	Short PositionDirection = "short"
)

func (d PositionDirection) Validate() error {
	if d != Long && d != Short {
		return fmt.Errorf("PositionDirection: Validate: invalid direction: %s", d)
	}

	return nil
}
