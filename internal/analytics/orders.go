package analytics

import (
	"math"
	"time"
)

func buildOrders(orders []Order, now time.Time) OrdersReport {
	loc := now.Location()
	dayStart := DayStart(now)
	last24 := now.Add(-24 * time.Hour)

	report := OrdersReport{
		Total:  len(orders),
		ByHour: make([]HourCount, 24),
	}
	for hour := range report.ByHour {
		report.ByHour[hour].Hour = HourLabel(hour)
	}

	counts := make(map[string]int)
	revenues := make(map[string]float64)
	completedLineCount := 0
	for _, order := range orders {
		if !order.CreatedAt.Before(dayStart) {
			report.Today++
		}
		if !order.CreatedAt.Before(last24) {
			report.Last24Hours++
		}
		counts[order.Status]++
		revenues[order.Status] += order.TotalAmount

		hour := order.CreatedAt.In(loc).Hour()
		report.ByHour[hour].Count++
		switch Quadrant(hour) {
		case QuadrantMorning:
			report.ByTimeOfDay.Morning++
		case QuadrantAfternoon:
			report.ByTimeOfDay.Afternoon++
		case QuadrantEvening:
			report.ByTimeOfDay.Evening++
		default:
			report.ByTimeOfDay.Night++
		}

		if order.Status == StatusCompleted {
			completedLineCount += len(order.Items)
		}
	}

	// Unknown statuses stay out of the four buckets but still count in Total.
	report.ByStatus = make([]StatusBucket, 0, 4)
	for _, status := range []string{StatusPending, StatusPreparing, StatusCompleted, StatusCancelled} {
		report.ByStatus = append(report.ByStatus, StatusBucket{
			Status:  status,
			Count:   counts[status],
			Revenue: revenues[status],
		})
	}
	report.Pending = counts[StatusPending]
	report.Preparing = counts[StatusPreparing]
	report.Completed = counts[StatusCompleted]
	report.Cancelled = counts[StatusCancelled]

	if report.Completed > 0 {
		avgItems := float64(completedLineCount) / float64(report.Completed)
		report.AverageTime = int(math.Round(15 + avgItems*3))
	}
	return report
}
