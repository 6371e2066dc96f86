package models

// Columns is the fixed output header, in record field order.
var Columns = []string{
	"Account Name",
	"URL",
	"Total Number of Reviews",
	"Average Review Score",
	"Number of Excellent Reviews",
	"Number of Very Good Reviews",
	"Number of Average Reviews",
	"Number of Poor Reviews",
	"Number of Terrible Reviews",
	"Star Rating",
	"Number of Rooms",
	"Lower Price Range",
	"Higher Price Range",
}

// InputRow is one URL read from the input file.
type InputRow struct {
	Index int
	URL   string
}

// HotelRecord holds the fields extracted from one hotel page.
// An empty string means the field was not found on the page.
type HotelRecord struct {
	AccountName      string `db:"account_name"`
	URL              string `db:"url"`
	TotalReviews     string `db:"total_reviews"`
	AverageScore     string `db:"average_score"`
	ExcellentReviews string `db:"excellent_reviews"`
	VeryGoodReviews  string `db:"very_good_reviews"`
	AverageReviews   string `db:"average_reviews"`
	PoorReviews      string `db:"poor_reviews"`
	TerribleReviews  string `db:"terrible_reviews"`
	StarRating       string `db:"star_rating"`
	Rooms            string `db:"rooms"`
	LowPrice         string `db:"low_price"`
	HighPrice        string `db:"high_price"`
}

// Values returns the record's fields in Columns order.
func (r *HotelRecord) Values() []string {
	return []string{
		r.AccountName,
		r.URL,
		r.TotalReviews,
		r.AverageScore,
		r.ExcellentReviews,
		r.VeryGoodReviews,
		r.AverageReviews,
		r.PoorReviews,
		r.TerribleReviews,
		r.StarRating,
		r.Rooms,
		r.LowPrice,
		r.HighPrice,
	}
}

// ResultTable is the ordered set of records produced by one batch.
type ResultTable struct {
	Records []*HotelRecord
}

// Len returns the number of records in the table.
func (t *ResultTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Rows returns every record as a slice of column values.
func (t *ResultTable) Rows() [][]string {
	rows := make([][]string, 0, t.Len())
	if t == nil {
		return rows
	}
	for _, r := range t.Records {
		rows = append(rows, r.Values())
	}
	return rows
}
