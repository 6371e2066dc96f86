package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"tripadvisor-scraper/fetch"
	"tripadvisor-scraper/models"
	"tripadvisor-scraper/storage"
	"tripadvisor-scraper/utils"
)

// RecordBuilder turns a fetched document into one record.
type RecordBuilder func(doc *goquery.Document, url string) (*models.HotelRecord, error)

// BatchOptions tunes how rows are dispatched.
type BatchOptions struct {
	MaxConcurrency int
	RateLimitMs    int
	// FlushPartial hands the records collected so far to the sinks when the
	// batch halts on a fatal error. Otherwise they are discarded.
	FlushPartial bool
}

// Batch fetches every input row, builds its record and writes the
// resulting table once to each sink.
type Batch struct {
	fetcher fetch.Fetcher
	build   RecordBuilder
	sinks   []storage.RecordWriter
	opts    BatchOptions
	logger  *utils.Logger
}

// NewBatch creates a Batch.
func NewBatch(fetcher fetch.Fetcher, build RecordBuilder, sinks []storage.RecordWriter, opts BatchOptions, logger *utils.Logger) *Batch {
	return &Batch{
		fetcher: fetcher,
		build:   build,
		sinks:   sinks,
		opts:    opts,
		logger:  logger,
	}
}

// Run processes rows and returns the table handed to the sinks (empty when
// nothing was written) together with a report of what happened to each row.
// The returned error wraps models.ErrFatalBatch when the batch halted early.
func (b *Batch) Run(parent context.Context, rows []models.InputRow) (*models.ResultTable, *models.BatchReport, error) {
	report := &models.BatchReport{State: models.BatchRunning, Inputs: len(rows)}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		mu        sync.Mutex
		fatal     error
		processed int
	)
	slots := make([]*models.HotelRecord, len(rows))

	setFatal := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if fatal == nil {
			fatal = err
			cancel()
		}
	}

	pool := utils.NewWorkerPool(b.opts.MaxConcurrency, b.opts.RateLimitMs)
	b.logger.Info("[batch] Processing %d rows with %d worker(s)", len(rows), pool.Size())

	for i, row := range rows {
		if ctx.Err() != nil {
			break
		}
		i, row := i, row
		pool.Submit(func() {
			defer func() {
				if r := recover(); r != nil {
					setFatal(fmt.Errorf("batch: row %d (%s): %v: %w", row.Index, row.URL, r, models.ErrFatalBatch))
				}
			}()
			if ctx.Err() != nil {
				return
			}

			rec, err := b.processRow(ctx, row)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				processed++
				report.Fetched++
				report.RecordsBuilt++
				slots[i] = rec
			case ctx.Err() != nil:
				// abandoned mid-flight; not counted against the row
			case errors.Is(err, models.ErrFetch):
				processed++
				report.FetchFailures++
			default:
				processed++
				report.Fetched++
				report.RecordsDropped++
			}
		})
	}
	pool.Wait()

	if fatal == nil && parent.Err() != nil {
		fatal = fmt.Errorf("batch: interrupted: %w: %w", models.ErrFatalBatch, parent.Err())
	}

	report.State = models.BatchDone
	report.Abandoned = len(rows) - processed

	table := collect(slots)

	if fatal != nil {
		report.Failed = true
		report.FatalErr = fatal
		b.logger.Error("[batch] %v", fatal)

		if !b.opts.FlushPartial {
			b.logger.Error("[batch] Discarding %d collected record(s)", table.Len())
			return &models.ResultTable{}, report, fatal
		}
		b.logger.Warn("[batch] Flushing %d partial record(s)", table.Len())
	}

	if table.Len() == 0 {
		b.logger.Warn("[batch] No records were built, nothing written")
		return table, report, fatal
	}

	if err := b.flush(table); err != nil {
		return table, report, errors.Join(fatal, err)
	}
	report.Flushed = true

	b.logger.Info("[batch] Done: %d/%d rows written (%d fetch failures, %d dropped)",
		table.Len(), report.Inputs, report.FetchFailures, report.RecordsDropped)
	return table, report, fatal
}

func (b *Batch) processRow(ctx context.Context, row models.InputRow) (*models.HotelRecord, error) {
	doc, err := b.fetcher.Fetch(ctx, row.URL)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("batch: row %d (%s): no document: %w", row.Index, row.URL, models.ErrFetch)
	}

	rec, err := b.build(doc, row.URL)
	if err != nil {
		b.logger.Warn("[batch] Dropping row %d: %v", row.Index, err)
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("batch: row %d (%s): no record: %w", row.Index, row.URL, models.ErrRecordAssembly)
	}

	b.logger.Debug("[batch] Row %d built: %s", row.Index, rec.AccountName)
	return rec, nil
}

func (b *Batch) flush(table *models.ResultTable) error {
	var errs []error
	for _, sink := range b.sinks {
		if err := sink.Write(table); err != nil {
			b.logger.Error("[batch] Sink %T failed: %v", sink, err)
			errs = append(errs, fmt.Errorf("batch: write %T: %w", sink, err))
		}
	}
	return errors.Join(errs...)
}

// collect keeps the built records in input order.
func collect(slots []*models.HotelRecord) *models.ResultTable {
	records := make([]*models.HotelRecord, 0, len(slots))
	for _, rec := range slots {
		if rec != nil {
			records = append(records, rec)
		}
	}
	return &models.ResultTable{Records: records}
}
