package storage

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"tripadvisor-scraper/models"
	"tripadvisor-scraper/utils"
)

const hotelColumns = `account_name, url, total_reviews, average_score,
	excellent_reviews, very_good_reviews, average_reviews, poor_reviews, terrible_reviews,
	star_rating, rooms, low_price, high_price`

// PostgresWriter persists scraped hotel records to PostgreSQL.
type PostgresWriter struct {
	db *sqlx.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, waits for it to accept
// connections, runs schema migrations, and returns a ready-to-use writer.
func NewPostgresWriter(dsn string, retry *utils.RetryConfig) (*PostgresWriter, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do("postgres-ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS hotels (
			id                SERIAL PRIMARY KEY,
			account_name      TEXT NOT NULL DEFAULT '',
			url               TEXT UNIQUE NOT NULL,
			total_reviews     TEXT NOT NULL DEFAULT '',
			average_score     TEXT NOT NULL DEFAULT '',
			excellent_reviews TEXT NOT NULL DEFAULT '',
			very_good_reviews TEXT NOT NULL DEFAULT '',
			average_reviews   TEXT NOT NULL DEFAULT '',
			poor_reviews      TEXT NOT NULL DEFAULT '',
			terrible_reviews  TEXT NOT NULL DEFAULT '',
			star_rating       TEXT NOT NULL DEFAULT '',
			rooms             TEXT NOT NULL DEFAULT '',
			low_price         TEXT NOT NULL DEFAULT '',
			high_price        TEXT NOT NULL DEFAULT '',
			created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_hotels_account_name ON hotels(account_name);
	`)
	return err
}

const upsertHotel = `
	INSERT INTO hotels (` + hotelColumns + `)
	VALUES (:account_name, :url, :total_reviews, :average_score,
		:excellent_reviews, :very_good_reviews, :average_reviews, :poor_reviews, :terrible_reviews,
		:star_rating, :rooms, :low_price, :high_price)
	ON CONFLICT (url) DO UPDATE SET
		account_name = EXCLUDED.account_name,
		total_reviews = EXCLUDED.total_reviews,
		average_score = EXCLUDED.average_score,
		excellent_reviews = EXCLUDED.excellent_reviews,
		very_good_reviews = EXCLUDED.very_good_reviews,
		average_reviews = EXCLUDED.average_reviews,
		poor_reviews = EXCLUDED.poor_reviews,
		terrible_reviews = EXCLUDED.terrible_reviews,
		star_rating = EXCLUDED.star_rating,
		rooms = EXCLUDED.rooms,
		low_price = EXCLUDED.low_price,
		high_price = EXCLUDED.high_price`

// Write replaces the table contents with the records of one batch inside a
// single transaction. Records sharing a URL collapse into one row; the last
// one wins.
func (pw *PostgresWriter) Write(table *models.ResultTable) (err error) {
	if table.Len() == 0 {
		return nil
	}

	tx, err := pw.db.Beginx()
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM hotels"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}

	stmt, err := tx.PrepareNamed(upsertHotel)
	if err != nil {
		return fmt.Errorf("postgres: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range table.Records {
		if _, err = stmt.Exec(rec); err != nil {
			return fmt.Errorf("postgres: upsert row %d (%s): %w", i, rec.URL, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

// FetchAll retrieves all stored hotels in insertion order.
func (pw *PostgresWriter) FetchAll() (*models.ResultTable, error) {
	var records []*models.HotelRecord
	err := pw.db.Select(&records, `SELECT `+hotelColumns+` FROM hotels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	return &models.ResultTable{Records: records}, nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
