package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kubzej/options-insight/src/optionmetrics"
	"github.com/kubzej/options-insight/src/optionmodels"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/describe_symbol/main.go AAPL250117C00150000",
	Short: "Decodes OCC option symbols and prints their contract details.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		spot, err := cmd.Flags().GetFloat64("spot")
		if err != nil {
			log.Fatalf("error getting spot: %v", err)
		}

		now := time.Now()

		for _, arg := range args {
			symbol := optionmodels.OptionSymbol(arg)

			components, err := optionmodels.NewOptionSymbolComponents(symbol)
			if err != nil {
				log.Errorf("skipping %s: %v", arg, err)
				continue
			}

			description, err := symbol.Description()
			if err != nil {
				log.Errorf("skipping %s: %v", arg, err)
				continue
			}

			dte := optionmetrics.DaysToExpiration(components.Expiration, now)

			fmt.Println(description)
			fmt.Printf("  expiration: %s (%d DTE, %s)\n", components.Expiration.Format("2006-01-02"), dte, optionmetrics.ClassifyDTE(dte))
			fmt.Printf("  standard OCC form: %v\n", optionmodels.IsStandardOCCSymbol(symbol))

			if spot > 0 {
				moneyness := optionmetrics.ClassifyMoneyness(components.OptionType, spot, components.StrikePrice, optionmetrics.DefaultATMTolerancePercent)
				fmt.Printf("  moneyness at $%.2f: %s (strike $%.2f)\n", spot, moneyness, components.StrikePrice)
			}
		}
	},
}

func main() {
	runCmd.PersistentFlags().Float64("spot", 0, "Underlying spot price used to classify moneyness.")

	cobra.CheckErr(runCmd.Execute())
}
