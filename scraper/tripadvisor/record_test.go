package tripadvisor

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripadvisor-scraper/models"
)

func TestBuildFullRecord(t *testing.T) {
	url := "https://www.tripadvisor.com/Hotel_Review-g1-d2-Reviews-Example.html"
	rec, err := Build(parse(t, hotelPage), url)
	require.NoError(t, err)

	want := []string{
		"The Grand Example Hotel", url, "1,234", "4.5",
		"812", "301", "77", "29", "15",
		"4.5", "120", "227", "387",
	}
	assert.Equal(t, want, rec.Values())
}

func TestBuildEmptyPageKeepsAllColumns(t *testing.T) {
	rec, err := Build(parse(t, emptyPage), "https://example.com/h")
	require.NoError(t, err)

	values := rec.Values()
	require.Len(t, values, len(models.Columns))
	assert.Equal(t, "https://example.com/h", values[1])
	for i, v := range values {
		if i == 1 {
			continue
		}
		assert.Empty(t, v, models.Columns[i])
	}
}

func TestBuildWithoutDocument(t *testing.T) {
	rec, err := Build(nil, "https://example.com/h")
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, models.ErrRecordAssembly)

	rec, err = Build(&goquery.Document{}, "https://example.com/h")
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, models.ErrRecordAssembly)
}
