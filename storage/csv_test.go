package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripadvisor-scraper/models"
)

func TestParseInputReadsNamedColumn(t *testing.T) {
	data := "name,tripadvisor_url\n" +
		"A,https://www.tripadvisor.com/Hotel_Review-a.html\n" +
		"B, https://www.tripadvisor.com/Hotel_Review-b.html \n" +
		"C,\n"

	rows, err := ParseInput(strings.NewReader(data), "tripadvisor_url")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, models.InputRow{Index: 0, URL: "https://www.tripadvisor.com/Hotel_Review-a.html"}, rows[0])
	assert.Equal(t, models.InputRow{Index: 1, URL: "https://www.tripadvisor.com/Hotel_Review-b.html"}, rows[1])
	assert.Equal(t, models.InputRow{Index: 2, URL: ""}, rows[2])
}

func TestParseInputHandlesByteOrderMarkAndShortRows(t *testing.T) {
	data := "\ufefftripadvisor_url,notes\nhttps://example.com/1\n"

	rows, err := ParseInput(strings.NewReader(data), "tripadvisor_url")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "https://example.com/1", rows[0].URL)
}

func TestParseInputMissingColumn(t *testing.T) {
	_, err := ParseInput(strings.NewReader("url\nhttps://example.com\n"), "tripadvisor_url")
	assert.ErrorIs(t, err, models.ErrInputRead)
}

func TestParseInputEmpty(t *testing.T) {
	_, err := ParseInput(strings.NewReader(""), "tripadvisor_url")
	assert.ErrorIs(t, err, models.ErrInputRead)
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "nope.csv"), "tripadvisor_url")
	assert.ErrorIs(t, err, models.ErrInputRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.csv")
	require.NoError(t, os.WriteFile(path, []byte("tripadvisor_url\nhttps://example.com/1\nhttps://example.com/2\n"), 0644))

	rows, err := ReadInput(path, "tripadvisor_url")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCSVWriterWritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.csv")
	w := NewCSVWriter(path)

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "file must not exist before Write")

	table := &models.ResultTable{Records: []*models.HotelRecord{
		{AccountName: "Hotel, One", URL: "https://example.com/1", TotalReviews: "1,234", LowPrice: "227", HighPrice: "387"},
		{AccountName: "Hotel Two", URL: "https://example.com/2"},
	}}
	require.NoError(t, w.Write(table))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, models.Columns, records[0])
	assert.Len(t, records[1], 13)
	assert.Equal(t, "Hotel, One", records[1][0])
	assert.Equal(t, "1,234", records[1][2])
	assert.Equal(t, "387", records[1][12])
	assert.Equal(t, "Hotel Two", records[2][0])
	assert.Equal(t, "", records[2][12])
}

func TestCSVWriterTruncatesPreviousOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	w := NewCSVWriter(path)

	big := &models.ResultTable{Records: []*models.HotelRecord{{URL: "a"}, {URL: "b"}, {URL: "c"}}}
	small := &models.ResultTable{Records: []*models.HotelRecord{{URL: "d"}}}
	require.NoError(t, w.Write(big))
	require.NoError(t, w.Write(small))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
}
