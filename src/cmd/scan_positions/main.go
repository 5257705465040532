package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kubzej/options-insight/src/optionalerts"
	"github.com/kubzej/options-insight/src/optionmetrics"
	"github.com/kubzej/options-insight/src/optionmodels"
	"github.com/kubzej/options-insight/src/utils"
)

type PositionCsvRowDTO struct {
	Ticker       string  `csv:"Ticker"`
	OptionType   string  `csv:"Option Type"`
	Position     string  `csv:"Position"`
	Strike       float64 `csv:"Strike"`
	Expiration   string  `csv:"Expiration"`
	Contracts    int     `csv:"Contracts"`
	AvgPremium   float64 `csv:"Avg Premium"`
	CurrentPrice string  `csv:"Current Price"`
	SpotPrice    string  `csv:"Spot Price"`
	Theta        string  `csv:"Theta"`
}

type RunArgs struct {
	InFile         string
	ThresholdsFile string
	OutDir         string
}

type RunResult struct {
	ReportID        uuid.UUID
	Alerts          []optionmodels.OptionAlert
	Counts          optionalerts.AlertCounts
	MeanPLPercent   *float64
	MedianPLPercent *float64
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/scan_positions/main.go --inFile positions.csv",
	Short: "Scans a positions CSV and prints severity-ranked option alerts.",
	Run: func(cmd *cobra.Command, args []string) {
		inFile, err := cmd.Flags().GetString("inFile")
		if err != nil {
			log.Fatalf("error getting inFile: %v", err)
		}

		thresholdsFile, err := cmd.Flags().GetString("thresholds")
		if err != nil {
			log.Fatalf("error getting thresholds: %v", err)
		}

		outDir, err := cmd.Flags().GetString("outDir")
		if err != nil {
			log.Fatalf("error getting outDir: %v", err)
		}

		result, err := Run(RunArgs{
			InFile:         inFile,
			ThresholdsFile: thresholdsFile,
			OutDir:         outDir,
		})
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		log.Infof("scan report %s: %d alerts (%d danger, %d warning, %d info)",
			result.ReportID, result.Counts.Total, result.Counts.Danger, result.Counts.Warning, result.Counts.Info)

		renderAlertsTable(result.Alerts)

		if result.MeanPLPercent != nil && result.MedianPLPercent != nil {
			fmt.Printf("P/L across positions: mean %.1f%%, median %.1f%%\n", *result.MeanPLPercent, *result.MedianPLPercent)
		}

		if outDir != "" {
			csvPath, err := utils.ExportAlertsToCsv(outDir, result.Alerts, "option_alerts")
			if err != nil {
				log.Errorf("Failed to export to CSV: %v", err)
			} else {
				fmt.Println("CSV file written to: ", csvPath)
			}
		}
	},
}

func Run(args RunArgs) (RunResult, error) {
	if err := utils.InitEnvironmentVariables(""); err != nil {
		return RunResult{}, fmt.Errorf("Run: error loading environment variables: %w", err)
	}

	thresholds := optionalerts.DefaultThresholds()
	if args.ThresholdsFile != "" {
		var err error
		thresholds, err = optionalerts.NewThresholdsFromYAML(args.ThresholdsFile)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: failed to load thresholds: %w", err)
		}
	}

	file, err := os.Open(args.InFile)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to open %s: %w", args.InFile, err)
	}
	defer file.Close()

	var rows []*PositionCsvRowDTO
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to parse %s: %w", args.InFile, err)
	}

	now := time.Now()

	var options []optionmodels.AlertableOption
	var plPercents []float64
	for i, row := range rows {
		option, err := row.ToAlertableOption(now)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: row %d: %w", i+1, err)
		}

		if option.PLPercent != nil {
			plPercents = append(plPercents, *option.PLPercent)
		}

		options = append(options, *option)
	}

	engine := optionalerts.NewEngine(thresholds)
	alerts := engine.GenerateAllAlerts(options)

	result := RunResult{
		ReportID: uuid.New(),
		Alerts:   alerts,
		Counts:   optionalerts.CountAlertsBySeverity(alerts),
	}

	if len(plPercents) > 0 {
		mean, err := stats.Mean(plPercents)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: failed to compute mean P/L: %w", err)
		}

		median, err := stats.Median(plPercents)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: failed to compute median P/L: %w", err)
		}

		result.MeanPLPercent = &mean
		result.MedianPLPercent = &median
	}

	return result, nil
}

// ToAlertableOption derives the engine input from one CSV row: symbol, DTE,
// moneyness and P/L percent are computed here, optional columns stay nil.
func (row *PositionCsvRowDTO) ToAlertableOption(now time.Time) (*optionmodels.AlertableOption, error) {
	optionType := optionmodels.OptionType(row.OptionType)
	if err := optionType.Validate(); err != nil {
		return nil, fmt.Errorf("ToAlertableOption: %w", err)
	}

	direction := optionmodels.PositionDirection(row.Position)
	if err := direction.Validate(); err != nil {
		return nil, fmt.Errorf("ToAlertableOption: %w", err)
	}

	expiration, err := time.Parse("2006-01-02", row.Expiration)
	if err != nil {
		return nil, fmt.Errorf("ToAlertableOption: invalid expiration %q: %w", row.Expiration, err)
	}

	dte := optionmetrics.DaysToExpiration(expiration, now)

	option := &optionmodels.AlertableOption{
		Symbol:      optionmodels.NewOptionSymbol(row.Ticker, row.Strike, expiration, optionType),
		Ticker:      row.Ticker,
		OptionType:  optionType,
		StrikePrice: row.Strike,
		Direction:   direction,
		Contracts:   row.Contracts,
		DTE:         &dte,
	}

	if row.SpotPrice != "" {
		spot, err := strconv.ParseFloat(row.SpotPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("ToAlertableOption: invalid spot price %q: %w", row.SpotPrice, err)
		}

		moneyness := optionmetrics.ClassifyMoneyness(optionType, spot, row.Strike, optionmetrics.DefaultATMTolerancePercent)
		option.Moneyness = &moneyness
	}

	if row.CurrentPrice != "" {
		current, err := strconv.ParseFloat(row.CurrentPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("ToAlertableOption: invalid current price %q: %w", row.CurrentPrice, err)
		}

		plPercent := optionmetrics.UnrealizedPLPercent(direction, row.AvgPremium, current)
		option.CurrentPrice = &current
		option.PLPercent = &plPercent
	}

	if row.Theta != "" {
		theta, err := strconv.ParseFloat(row.Theta, 64)
		if err != nil {
			return nil, fmt.Errorf("ToAlertableOption: invalid theta %q: %w", row.Theta, err)
		}

		option.Theta = &theta
	}

	return option, nil
}

func renderAlertsTable(alerts []optionmodels.OptionAlert) {
	if len(alerts) == 0 {
		fmt.Println("No alerts.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Severity", "Type", "Symbol", "Message"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, alert := range alerts {
		table.Append([]string{
			string(alert.Severity),
			string(alert.Type),
			string(alert.OptionSymbol),
			alert.Message,
		})
	}

	table.Render()
}

func main() {
	runCmd.PersistentFlags().String("inFile", "", "Path to the positions CSV file.")
	runCmd.PersistentFlags().String("thresholds", "", "Optional YAML file with alert threshold overrides.")
	runCmd.PersistentFlags().String("outDir", "", "Optional directory for the alerts CSV export.")

	runCmd.MarkPersistentFlagRequired("inFile")

	cobra.CheckErr(runCmd.Execute())
}
