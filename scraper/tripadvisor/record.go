package tripadvisor

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"tripadvisor-scraper/models"
)

// Build runs every field extractor over doc and assembles one record.
// Missing fields are left empty; only a failure of the assembly itself
// (such as a nil document) drops the record.
func Build(doc *goquery.Document, url string) (rec *models.HotelRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = fmt.Errorf("tripadvisor: build %q: %v: %w", url, r, models.ErrRecordAssembly)
		}
	}()

	if doc == nil || doc.Selection == nil {
		return nil, fmt.Errorf("tripadvisor: build %q: no document: %w", url, models.ErrRecordAssembly)
	}

	counts := make(map[Bucket]string, len(Buckets))
	for _, b := range Buckets {
		counts[b] = RatingBucketCount(doc, b).String()
	}

	return &models.HotelRecord{
		AccountName:      Heading(doc).String(),
		URL:              url,
		TotalReviews:     ReviewCount(doc).String(),
		AverageScore:     AverageScore(doc).String(),
		ExcellentReviews: counts[BucketExcellent],
		VeryGoodReviews:  counts[BucketVeryGood],
		AverageReviews:   counts[BucketAverage],
		PoorReviews:      counts[BucketPoor],
		TerribleReviews:  counts[BucketTerrible],
		StarRating:       StarRating(doc).String(),
		Rooms:            RoomCount(doc).String(),
		LowPrice:         Price(doc, LowPriceIndex).String(),
		HighPrice:        Price(doc, HighPriceIndex).String(),
	}, nil
}
