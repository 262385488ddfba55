package main

import (
	"testing"

	"github.com/news-aggregator-api/internal/models"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name   string
		report *models.SeedReport
		want   int
	}{
		{"clean run", &models.SeedReport{Topics: 3, Articles: 12}, 0},
		{"rejected fixtures", &models.SeedReport{Failed: 2}, 1},
		{"no report", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.report); got != tt.want {
				t.Errorf("Expected exit code %d, got %d", tt.want, got)
			}
		})
	}
}
