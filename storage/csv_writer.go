package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tripadvisor-scraper/models"
)

// CSVWriter writes a result table to a CSV file. The file is only created
// when Write is called, so an empty batch leaves no file behind.
// It is safe for concurrent use.
type CSVWriter struct {
	mu   sync.Mutex
	path string
}

// NewCSVWriter returns a writer targeting path. Intermediate directories are
// created on Write.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Path returns the output file path.
func (c *CSVWriter) Path() string {
	return c.path
}

// Write creates (or truncates) the file and writes the header plus one row
// per record.
func (c *CSVWriter) Write(table *models.ResultTable) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("csv: create output dir: %w", err)
		}
	}

	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", c.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(models.Columns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	if err := w.WriteAll(table.Rows()); err != nil {
		return fmt.Errorf("csv: write rows: %w", err)
	}

	return f.Close()
}

// Close is a no-op; the file is closed at the end of each Write.
func (c *CSVWriter) Close() error {
	return nil
}
