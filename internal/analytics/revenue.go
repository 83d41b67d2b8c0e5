package analytics

import "time"

func buildRevenue(orders []Order, now time.Time, explicit *DateRange) RevenueReport {
	dayStart := DayStart(now)
	weekStart := WeekStart(now)
	monthStart := MonthStart(now)
	last24 := now.Add(-24 * time.Hour)

	report := RevenueReport{
		ByPaymentMethod: map[string]float64{PaymentCash: 0, PaymentOnline: 0},
	}

	todayRevenue := 0.0
	weekRevenue := 0.0
	for _, order := range orders {
		report.Total += order.TotalAmount
		if !order.CreatedAt.Before(dayStart) {
			todayRevenue += order.TotalAmount
		}
		if !order.CreatedAt.Before(weekStart) {
			weekRevenue += order.TotalAmount
		}
		if !order.CreatedAt.Before(monthStart) {
			report.ThisMonth += order.TotalAmount
		}
		if !order.CreatedAt.Before(last24) {
			report.Last24Hours += order.TotalAmount
		}
		switch order.PaymentMethod {
		case PaymentCash:
			report.ByPaymentMethod[PaymentCash] += order.TotalAmount
		case PaymentOnline:
			report.ByPaymentMethod[PaymentOnline] += order.TotalAmount
		}
	}
	report.Today = todayRevenue
	report.ThisWeek = weekRevenue

	report.ByDay = buildRevenueByDay(orders, now, explicit)
	report.ByHour = buildRevenueByHour(orders, now)
	report.Growth = RevenueGrowth{
		Daily:  GrowthRate(todayRevenue, report.Total),
		Weekly: GrowthRate(weekRevenue, report.Total),
	}
	return report
}

// buildRevenueByDay produces the 7-trailing-day chart series, oldest first.
// The optional explicit range restricts this series only.
func buildRevenueByDay(orders []Order, now time.Time, explicit *DateRange) []RevenueByDay {
	loc := now.Location()
	byDay := make(map[string]float64)
	for _, order := range orders {
		if explicit != nil {
			if order.CreatedAt.Before(explicit.Start) || order.CreatedAt.After(explicit.End) {
				continue
			}
		}
		byDay[dayKey(order.CreatedAt.In(loc))] += order.TotalAmount
	}

	series := make([]RevenueByDay, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		series = append(series, RevenueByDay{Date: dayLabel(day), Amount: byDay[dayKey(day)]})
	}
	return series
}

func buildRevenueByHour(orders []Order, now time.Time) []RevenueByHour {
	loc := now.Location()
	series := make([]RevenueByHour, 24)
	for hour := range series {
		series[hour].Hour = HourLabel(hour)
	}
	for _, order := range orders {
		hour := order.CreatedAt.In(loc).Hour()
		series[hour].Amount += order.TotalAmount
		series[hour].Orders++
	}
	return series
}
