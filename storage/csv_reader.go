package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"tripadvisor-scraper/models"
)

// ReadInput loads the URL column of the CSV file at path, one InputRow per
// data row, in file order.
func ReadInput(path, column string) ([]models.InputRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open input %q: %w: %w", path, models.ErrInputRead, err)
	}
	defer f.Close()

	return ParseInput(f, column)
}

// ParseInput reads InputRows from CSV data with a header row.
func ParseInput(r io.Reader, column string) ([]models.InputRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w: %w", models.ErrInputRead, err)
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("csv: column %q not found: %w", column, models.ErrInputRead)
	}

	var rows []models.InputRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row %d: %w: %w", len(rows)+1, models.ErrInputRead, err)
		}

		url := ""
		if col < len(record) {
			url = strings.TrimSpace(record[col])
		}
		rows = append(rows, models.InputRow{Index: len(rows), URL: url})
	}
	return rows, nil
}
