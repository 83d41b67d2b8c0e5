package analytics

import (
	"sort"
	"time"
)

// diningSlot is the assumed occupancy of a table per order.
const diningSlot = time.Hour

func buildTables(orders []Order, now time.Time) TablesReport {
	last24 := now.Add(-24 * time.Hour)

	tables := make([]*TableActivity, 0)
	index := make(map[int]*TableActivity)
	grouped := make(map[int][]Order)
	for _, order := range orders {
		activity := index[order.TableNumber]
		if activity == nil {
			activity = &TableActivity{Number: order.TableNumber}
			index[order.TableNumber] = activity
			tables = append(tables, activity)
		}
		activity.Orders++
		if !order.CreatedAt.Before(last24) {
			activity.Last24HourOrders++
		}
		grouped[order.TableNumber] = append(grouped[order.TableNumber], order)
	}

	report := TablesReport{
		MostActive:        []TableActivity{},
		AverageOrderValue: make([]TableValue, 0, len(tables)),
		TurnoverRate:      make([]TableRate, 0, len(tables)),
	}

	for _, activity := range tables {
		tableOrders := grouped[activity.Number]
		total := 0.0
		for _, order := range tableOrders {
			total += order.TotalAmount
		}
		if len(tableOrders) > 0 {
			activity.AverageOrderValue = total / float64(len(tableOrders))
		}
		activity.TurnoverRate = turnoverRate(tableOrders)

		report.AverageOrderValue = append(report.AverageOrderValue, TableValue{Number: activity.Number, Value: activity.AverageOrderValue})
		report.TurnoverRate = append(report.TurnoverRate, TableRate{Number: activity.Number, Rate: activity.TurnoverRate})
	}

	sort.SliceStable(tables, func(i, j int) bool { return tables[i].Orders > tables[j].Orders })
	if len(tables) > 5 {
		tables = tables[:5]
	}
	for _, activity := range tables {
		report.MostActive = append(report.MostActive, *activity)
	}
	return report
}

// turnoverRate treats each order as a fixed one-hour dining slot and derives
// an orders-per-hour estimate from the idle gaps between consecutive slots.
// Orders are sorted ascending by time first; the divisor never drops below
// one hour.
func turnoverRate(orders []Order) float64 {
	if len(orders) == 0 {
		return 0
	}
	sorted := make([]Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.Before(sorted[j].CreatedAt) })

	gapHours := 0.0
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].CreatedAt.Sub(sorted[i-1].CreatedAt.Add(diningSlot)).Hours()
		if gap > 0 {
			gapHours += gap
		}
	}
	if gapHours < 1 {
		gapHours = 1
	}
	return float64(len(sorted)) / gapHours
}
