package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.TotalGenerations <= 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary is the one-line report logged at shutdown
func (s *Stats) Summary() string {
	return fmt.Sprintf("%s generations in %s | %.1f gen/sec | avg population %.1f",
		humanize.Comma(int64(s.TotalGenerations)),
		time.Since(s.StartTime).Round(time.Millisecond),
		s.GenerationsPerSecond,
		s.AveragePopulation,
	)
}
