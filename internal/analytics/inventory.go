package analytics

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

func buildInventory(items []InventoryItem, orders []Order, now time.Time, est Estimator) InventoryReport {
	report := InventoryReport{
		Current: make(map[string]InventoryItem, len(items)),
		Analytics: InventoryAnalytics{
			LowStockItems:  []LowStockItem{},
			ExpiringItems:  []ExpiringItem{},
			RestockHistory: []RestockEntry{},
			WastageAnalytics: WastageAnalytics{
				WastageByItem:   []WastageItem{},
				WastageByReason: map[string]float64{},
			},
			SupplierPerformance: []SupplierPerformance{},
			CostTrends:          []CostTrendPoint{},
		},
		Alerts: []InventoryAlert{},
	}
	// Degraded mode: inventory storage unreachable or empty. The section
	// stays fully zeroed rather than failing the report.
	if len(items) == 0 {
		return report
	}

	for _, item := range items {
		report.Current[item.ID.String()] = item
		report.Analytics.TotalItems++
		report.Analytics.TotalValue += item.Quantity * item.CostPerUnit

		if item.Quantity <= item.MinQuantity {
			report.Analytics.LowStockItems = append(report.Analytics.LowStockItems, LowStockItem{
				Name:         item.Name,
				Quantity:     item.Quantity,
				ReorderPoint: item.MinQuantity,
			})
		}
		if days, ok := daysUntilExpiry(item, now); ok && days >= 0 && days <= 7 {
			report.Analytics.ExpiringItems = append(report.Analytics.ExpiringItems, ExpiringItem{
				Name:       item.Name,
				Quantity:   item.Quantity,
				ExpiryDate: item.ExpiryDate.Format("2006-01-02"),
			})
		}
	}

	report.Analytics.SupplierPerformance = buildSupplierPerformance(items, est)
	report.Analytics.CostTrends = buildCostTrends(orders, now)
	report.Alerts = buildInventoryAlerts(items, now)
	return report
}

func daysUntilExpiry(item InventoryItem, now time.Time) (int, bool) {
	if item.ExpiryDate == nil {
		return 0, false
	}
	return int(math.Ceil(item.ExpiryDate.Sub(now).Hours() / 24)), true
}

func buildSupplierPerformance(items []InventoryItem, est Estimator) []SupplierPerformance {
	suppliers := make([]SupplierPerformance, 0)
	index := make(map[string]int)
	for _, item := range items {
		name := item.Supplier
		if name == "" {
			name = "Unknown"
		}
		pos, seen := index[name]
		if !seen {
			pos = len(suppliers)
			index[name] = pos
			suppliers = append(suppliers, SupplierPerformance{Name: name})
		}
		suppliers[pos].ItemCount++
	}
	for i := range suppliers {
		scores := est.SupplierScores()
		suppliers[i].Reliability = scores.Reliability
		suppliers[i].AverageDeliveryTime = scores.AverageDeliveryTime
		suppliers[i].QualityRating = scores.QualityRating
		suppliers[i].TotalOrders = suppliers[i].ItemCount * scores.OrdersPerItem
	}
	return suppliers
}

// buildCostTrends estimates daily ingredient cost over the trailing 30 days
// as 35% of that day's order revenue, oldest first.
func buildCostTrends(orders []Order, now time.Time) []CostTrendPoint {
	loc := now.Location()
	byDay := make(map[string]float64)
	for _, order := range orders {
		byDay[dayKey(order.CreatedAt.In(loc))] += order.TotalAmount * defaultCostRatio
	}
	trend := make([]CostTrendPoint, 0, 30)
	for i := 29; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		trend = append(trend, CostTrendPoint{Date: dayKey(day), TotalCost: byDay[dayKey(day)]})
	}
	return trend
}

// buildInventoryAlerts emits low-stock alerts first, then expiry alerts, in
// inventory order; the dashboard relies on that insertion order.
func buildInventoryAlerts(items []InventoryItem, now time.Time) []InventoryAlert {
	alerts := make([]InventoryAlert, 0)
	for _, item := range items {
		if item.Quantity > item.MinQuantity {
			continue
		}
		severity := "medium"
		if item.Quantity == 0 {
			severity = "high"
		}
		alerts = append(alerts, InventoryAlert{
			Type:     "low_stock",
			ItemName: item.Name,
			Message:  fmt.Sprintf("%s is running low (%s %s remaining)", item.Name, formatQuantity(item.Quantity), item.Unit),
			Severity: severity,
		})
	}
	for _, item := range items {
		days, ok := daysUntilExpiry(item, now)
		if !ok || days < 0 || days > 3 {
			continue
		}
		severity := "medium"
		if days <= 1 {
			severity = "high"
		}
		plural := "s"
		if days == 1 {
			plural = ""
		}
		alerts = append(alerts, InventoryAlert{
			Type:     "expiring",
			ItemName: item.Name,
			Message:  fmt.Sprintf("%s expires in %d day%s", item.Name, days, plural),
			Severity: severity,
		})
	}
	return alerts
}

func formatQuantity(quantity float64) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64)
}
