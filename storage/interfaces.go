package storage

import "tripadvisor-scraper/models"

// RecordWriter is the interface any output sink must satisfy.
type RecordWriter interface {
	Write(table *models.ResultTable) error
	Close() error
}
