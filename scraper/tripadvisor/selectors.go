package tripadvisor

// CSS selectors and text labels for TripAdvisor hotel pages (markup as of late 2022).
const (
	HeadingSelector      = "h1#HEADING"
	ReviewCountSelector  = "span.hkxYU.q.Wi.z.Wc"
	AverageScoreSelector = "span.uwJeR.P"
	BucketCountSelector  = "span.NLuQa"
	StarRatingSelector   = "span.S2"

	RoomsLabel      = "NUMBER OF ROOMS"
	PriceRangeLabel = "PRICE RANGE"
)

// Bucket identifies one of the five review rating filters on the page.
type Bucket string

const (
	BucketExcellent Bucket = "ReviewRatingFilter_5"
	BucketVeryGood  Bucket = "ReviewRatingFilter_4"
	BucketAverage   Bucket = "ReviewRatingFilter_3"
	BucketPoor      Bucket = "ReviewRatingFilter_2"
	BucketTerrible  Bucket = "ReviewRatingFilter_1"
)

// Buckets lists every rating bucket from best to worst.
var Buckets = []Bucket{BucketExcellent, BucketVeryGood, BucketAverage, BucketPoor, BucketTerrible}

// Positions of the low and high ends within a "$227 - $387" price range.
const (
	LowPriceIndex  = 0
	HighPriceIndex = 2
)
