// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"math"
	"sort"
	"strconv"
)

// computeStats aggregates the numeric visible votes. Card labels that don't
// parse as a finite number ("?", the coffee card, custom labels) are skipped.
// Returns nil when no numeric votes exist: statistics are absent, not zero.
func computeStats(views []ParticipantView) *VoteStats {
	var votes []float64
	for _, v := range views {
		if v.Vote == nil {
			continue
		}
		n, err := strconv.ParseFloat(*v.Vote, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			continue
		}
		votes = append(votes, n)
	}
	if len(votes) == 0 {
		return nil
	}

	sort.Float64s(votes)
	return &VoteStats{
		Average: math.Round(mean(votes)*10) / 10,
		Median:  median(votes),
		Total:   len(votes),
	}
}

func mean(sorted []float64) float64 {
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}

// median expects its input sorted. Even counts average the two middle values.
func median(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 != 0 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
