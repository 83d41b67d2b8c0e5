package analytics

import (
	"sort"
	"time"
)

// GrowthRate is the percentage change of current revenue against a reference
// period's revenue, 0 when the reference period is empty.
func GrowthRate(current, reference float64) float64 {
	if reference == 0 {
		return 0
	}
	return (current - reference) / reference * 100
}

func buildPerformance(orders []Order, now time.Time) PerformanceReport {
	report := PerformanceReport{}
	if len(orders) > 0 {
		completed, cancelled := 0, 0
		total := 0.0
		for _, order := range orders {
			total += order.TotalAmount
			switch order.Status {
			case StatusCompleted:
				completed++
			case StatusCancelled:
				cancelled++
			}
		}
		report.CompletionRate = float64(completed) / float64(len(orders)) * 100
		report.CancellationRate = float64(cancelled) / float64(len(orders)) * 100
		report.AverageOrderValue = total / float64(len(orders))
	}
	report.PeakHours = buildPeakHours(orders, now)
	return report
}

// buildPeakHours returns the three busiest HH:00 labels by order count; ties
// keep first-encountered order.
func buildPeakHours(orders []Order, now time.Time) []PeakHour {
	loc := now.Location()
	peaks := make([]PeakHour, 0)
	index := make(map[string]int)
	for _, order := range orders {
		label := HourLabel(order.CreatedAt.In(loc).Hour())
		pos, seen := index[label]
		if !seen {
			pos = len(peaks)
			index[label] = pos
			peaks = append(peaks, PeakHour{Hour: label})
		}
		peaks[pos].Orders++
		peaks[pos].Revenue += order.TotalAmount
	}
	sort.SliceStable(peaks, func(i, j int) bool { return peaks[i].Orders > peaks[j].Orders })
	if len(peaks) > 3 {
		peaks = peaks[:3]
	}
	return peaks
}
