package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"INPUT_PATH", "URL_COLUMN", "CSV_OUTPUT_PATH", "USER_AGENT",
		"REQUEST_TIMEOUT_SEC", "MAX_CONCURRENCY", "FLUSH_PARTIAL", "FETCH_MODE",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "urls.csv", cfg.InputPath)
	assert.Equal(t, "tripadvisor_url", cfg.URLColumn)
	assert.Equal(t, "ScrapeResultsNewest.csv", cfg.CSVOutputPath)
	assert.Equal(t, "Mozilla/5.0", cfg.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1, cfg.MaxConcurrency)
	assert.Equal(t, FetchModeHTTP, cfg.FetchMode)
	assert.False(t, cfg.FlushPartial)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("INPUT_PATH", "in/hotels.csv")
	t.Setenv("REQUEST_TIMEOUT_SEC", "3")
	t.Setenv("MAX_CONCURRENCY", "4")
	t.Setenv("FLUSH_PARTIAL", "true")
	t.Setenv("FETCH_MODE", "Browser")

	cfg := Load()
	assert.Equal(t, "in/hotels.csv", cfg.InputPath)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.True(t, cfg.FlushPartial)
	assert.Equal(t, FetchModeBrowser, cfg.FetchMode)
}

func TestLoadClampsInvalidValues(t *testing.T) {
	t.Setenv("MAX_CONCURRENCY", "0")
	t.Setenv("REQUEST_TIMEOUT_SEC", "abc")
	t.Setenv("FLUSH_PARTIAL", "maybe")

	cfg := Load()
	assert.Equal(t, 1, cfg.MaxConcurrency)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.FlushPartial)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost: "db", PostgresPort: "5433", PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "hotel_db", PostgresSSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=hotel_db sslmode=disable", cfg.DSN())
}
