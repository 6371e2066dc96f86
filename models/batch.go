package models

// BatchState is the orchestrator's lifecycle state.
type BatchState int

const (
	BatchRunning BatchState = iota
	BatchDone
)

func (s BatchState) String() string {
	switch s {
	case BatchRunning:
		return "running"
	case BatchDone:
		return "done"
	default:
		return "unknown"
	}
}

// BatchReport summarises what happened to each input row during a batch.
type BatchReport struct {
	State BatchState

	Inputs         int
	Fetched        int
	FetchFailures  int
	RecordsBuilt   int
	RecordsDropped int
	Abandoned      int

	// Failed is the error flag set when the batch halted on a fatal error.
	Failed   bool
	FatalErr error
	// Flushed reports whether records were handed to the sinks.
	Flushed bool
}

// InsightReport holds the computed statistics over a result table.
type InsightReport struct {
	Records        int
	Inputs         int
	FetchFailures  int
	RecordsDropped int

	// FieldCoverage counts how many records have each column populated.
	FieldCoverage map[string]int

	TotalReviews  int64
	AverageScore  float64
	LowestPrice   int64
	HighestPrice  int64
	TopScored     []*HotelRecord
}
