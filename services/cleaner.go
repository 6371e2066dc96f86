package services

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// digitsRegexp captures the first run of digits, allowing thousands separators
	digitsRegexp = regexp.MustCompile(`\d[\d,]*`)
	// scoreRegexp captures a numeric score in the 0.0–5.0 range
	scoreRegexp = regexp.MustCompile(`\b([0-5](?:\.\d{1,2})?)\b`)
)

// parseCount turns a scraped count such as "1,234" into 1234, or 0.
func parseCount(raw string) int64 {
	match := digitsRegexp.FindString(raw)
	if match == "" {
		return 0
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(match, ",", ""), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseScore extracts a 0.0–5.0 score from a scraped string, or 0.
func parseScore(raw string) float64 {
	match := scoreRegexp.FindStringSubmatch(strings.TrimSpace(raw))
	if len(match) < 2 {
		return 0
	}
	val, err := strconv.ParseFloat(match[1], 64)
	if err != nil || val < 0 || val > 5 {
		return 0
	}
	return val
}
