// Package analytics turns an in-memory snapshot of the café's orders, menu
// and inventory into the derived metrics the dashboard renders. It performs
// no I/O: every period boundary derives from the caller-supplied now instant,
// so identical inputs produce identical reports for a fixed Estimator, and
// Compute may be called concurrently.
package analytics

import "time"

// Compute builds the full dashboard report from one snapshot. A nil est falls
// back to a RandomEstimator seeded from now; explicit may be nil and only
// restricts the day-level revenue chart series.
func Compute(snap Snapshot, now time.Time, est Estimator, explicit *DateRange) *Report {
	if est == nil {
		est = NewRandomEstimator(now.UnixNano())
	}

	itemAnalytics, warnings := buildItemAnalytics(snap.Orders, snap.MenuItems, snap.InventoryItems, now, est)

	return &Report{
		Revenue:       buildRevenue(snap.Orders, now, explicit),
		Orders:        buildOrders(snap.Orders, now),
		Items:         buildItems(snap.Orders, now),
		Tables:        buildTables(snap.Orders, now),
		Performance:   buildPerformance(snap.Orders, now),
		ItemAnalytics: itemAnalytics,
		Inventory:     buildInventory(snap.InventoryItems, snap.Orders, now, est),
		Warnings:      warnings,
	}
}
