package services

import "testing"

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"1,234", 1234},
		{"812", 812},
		{"120 rooms", 120},
		{"", 0},
		{"none", 0},
		{"99999999999999999999", 0},
	}

	for _, tt := range tests {
		got := parseCount(tt.raw)
		if got != tt.want {
			t.Errorf("parseCount(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"4.5", 4.5},
		{"5.0", 5.0},
		{" 3.5 ", 3.5},
		{"", 0},
		{"New", 0},
		{"6.0", 0},
	}

	for _, tt := range tests {
		got := parseScore(tt.raw)
		if got != tt.want {
			t.Errorf("parseScore(%q) = %.2f; want %.2f", tt.raw, got, tt.want)
		}
	}
}
