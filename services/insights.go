package services

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"tripadvisor-scraper/models"
	"tripadvisor-scraper/utils"
)

const topScoredLimit = 5

// InsightService summarises a finished batch for the operator.
type InsightService struct {
	logger *utils.Logger
	out    io.Writer
}

// NewInsightService creates an InsightService printing to out, or stdout
// when out is nil.
func NewInsightService(logger *utils.Logger, out io.Writer) *InsightService {
	if out == nil {
		out = os.Stdout
	}
	return &InsightService{logger: logger, out: out}
}

// Generate summarises a result table and the batch that produced it.
// batch may be nil.
func (s *InsightService) Generate(results *models.ResultTable, batch *models.BatchReport) *models.InsightReport {
	report := &models.InsightReport{
		FieldCoverage: make(map[string]int, len(models.Columns)),
	}
	if batch != nil {
		report.Inputs = batch.Inputs
		report.FetchFailures = batch.FetchFailures
		report.RecordsDropped = batch.RecordsDropped
	}

	if results.Len() == 0 {
		return report
	}
	report.Records = results.Len()

	var scored []*models.HotelRecord
	var scoreSum float64

	for _, rec := range results.Records {
		for i, v := range rec.Values() {
			if v != "" {
				report.FieldCoverage[models.Columns[i]]++
			}
		}

		report.TotalReviews += parseCount(rec.TotalReviews)

		if score := parseScore(rec.AverageScore); score > 0 {
			scored = append(scored, rec)
			scoreSum += score
		}
		if low := parseCount(rec.LowPrice); low > 0 && (report.LowestPrice == 0 || low < report.LowestPrice) {
			report.LowestPrice = low
		}
		if high := parseCount(rec.HighPrice); high > report.HighestPrice {
			report.HighestPrice = high
		}
	}

	if len(scored) > 0 {
		report.AverageScore = round2(scoreSum / float64(len(scored)))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		si, sj := parseScore(scored[i].AverageScore), parseScore(scored[j].AverageScore)
		if si != sj {
			return si > sj
		}
		return parseCount(scored[i].TotalReviews) > parseCount(scored[j].TotalReviews)
	})
	if len(scored) > topScoredLimit {
		scored = scored[:topScoredLimit]
	}
	report.TopScored = scored

	s.logger.Debug("[insights] %d records, %d scored", report.Records, len(scored))
	return report
}

// Print renders the report as tables: an overview, per-column coverage and
// the best scored hotels.
func (s *InsightService) Print(r *models.InsightReport) {
	overview := s.newTable("Hotel Scrape Summary")
	overview.AppendRows([]table.Row{
		{"Input rows", r.Inputs},
		{"Records written", r.Records},
		{"Fetch failures", r.FetchFailures},
		{"Records dropped", r.RecordsDropped},
		{"Total reviews", r.TotalReviews},
		{"Average review score", formatScore(r.AverageScore)},
		{"Lowest price", formatPrice(r.LowestPrice)},
		{"Highest price", formatPrice(r.HighestPrice)},
	})
	overview.Render()

	if r.Records == 0 {
		return
	}

	coverage := s.newTable("Field Coverage")
	coverage.AppendHeader(table.Row{"Column", "Populated", "Of"})
	for _, col := range models.Columns {
		coverage.AppendRow(table.Row{col, r.FieldCoverage[col], r.Records})
	}
	coverage.Render()

	top := s.newTable(fmt.Sprintf("Top %d Scored Hotels", topScoredLimit))
	top.AppendHeader(table.Row{"#", "Hotel", "Score", "Reviews"})
	if len(r.TopScored) == 0 {
		top.AppendRow(table.Row{"-", "No scored hotels found", "", ""})
	}
	for i, rec := range r.TopScored {
		top.AppendRow(table.Row{i + 1, truncate(rec.AccountName, 40), rec.AverageScore, rec.TotalReviews})
	}
	top.Render()
}

func (s *InsightService) newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)
	return t
}

func formatScore(f float64) string {
	if f == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", f)
}

func formatPrice(p int64) string {
	if p == 0 {
		return "n/a"
	}
	return fmt.Sprintf("$%d", p)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
