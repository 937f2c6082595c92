// Package export serializes expansion results to tabular formats.
package export

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/seokit/keyfan/pkg/expand"
)

// csvHeader is the fixed column order for delimited exports.
var csvHeader = []string{"Seed", "Bucket", "Suggestion"}

// WriteCSV writes the result's rows to w as CSV with a header line.
func WriteCSV(w io.Writer, result *expand.Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range result.Rows() {
		record := []string{row.Seed, string(row.Bucket), row.Suggestion}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveCSV writes the result to a file at path, creating or truncating it.
func SaveCSV(path string, result *expand.Result) error {
	file, err := os.Create(path)
	if err != nil {
		log.Errorf("Failed to create export file: %v", err)
		return err
	}
	defer file.Close()

	if err := WriteCSV(file, result); err != nil {
		return err
	}
	log.Debugf("Exported %d rows to %s", result.Len(), path)
	return nil
}
