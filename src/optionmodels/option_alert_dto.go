package optionmodels

type OptionAlertCsvDTO struct {
	Severity     string `csv:"Severity"`
	AlertType    string `csv:"Type"`
	Ticker       string `csv:"Ticker"`
	OptionSymbol string `csv:"Option Symbol"`
	Message      string `csv:"Message"`
	ShortMessage string `csv:"Short Message"`
}

func (a OptionAlert) ToCsvRow() *OptionAlertCsvDTO {
	return &OptionAlertCsvDTO{
		Severity:     string(a.Severity),
		AlertType:    string(a.Type),
		Ticker:       a.Ticker,
		OptionSymbol: string(a.OptionSymbol),
		Message:      a.Message,
		ShortMessage: a.ShortMessage,
	}
}
