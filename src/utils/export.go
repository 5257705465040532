package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/kubzej/options-insight/src/optionmodels"
)

// ExportAlertsToCsv writes the alert set to a timestamped CSV file under
// outDir, creating the directory when needed, and returns the file path.
func ExportAlertsToCsv(outDir string, alerts []optionmodels.OptionAlert, outFilePrefix string) (string, error) {
	now := time.Now()
	outFilePath := path.Join(outDir, fmt.Sprintf("%s_%s.csv", outFilePrefix, now.Format("2006-01-02_15-04-05")))

	// Create directory if it doesn't exist
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
			return "", fmt.Errorf("ExportAlertsToCsv: failed to create directory: %w", err)
		}
	}

	file, err := os.Create(outFilePath)
	if err != nil {
		return "", fmt.Errorf("ExportAlertsToCsv: failed to create file: %w", err)
	}
	defer file.Close()

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = ','
		return gocsv.NewSafeCSVWriter(writer)
	})

	rows := make([]*optionmodels.OptionAlertCsvDTO, 0, len(alerts))
	for _, alert := range alerts {
		rows = append(rows, alert.ToCsvRow())
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("ExportAlertsToCsv: failed to write to file: %w", err)
	}

	return outFilePath, nil
}
