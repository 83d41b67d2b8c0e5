package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// defaultCostRatio estimates an item's cost when no inventory match exists.
const defaultCostRatio = 0.35

func buildItems(orders []Order, now time.Time) ItemsReport {
	loc := now.Location()

	type itemTotals struct {
		name     string
		quantity int
		revenue  float64
	}
	totals := make([]*itemTotals, 0)
	index := make(map[string]*itemTotals)
	for _, order := range orders {
		for _, line := range order.Items {
			agg := index[line.ItemName]
			if agg == nil {
				agg = &itemTotals{name: line.ItemName}
				index[line.ItemName] = agg
				totals = append(totals, agg)
			}
			agg.quantity += line.Quantity
			agg.revenue += line.Price * float64(line.Quantity)
		}
	}

	popular := make([]PopularItem, 0, len(totals))
	for _, agg := range totals {
		avg := 0.0
		if agg.quantity > 0 {
			avg = agg.revenue / float64(agg.quantity)
		}
		popular = append(popular, PopularItem{
			Name:              agg.name,
			Quantity:          agg.quantity,
			Revenue:           agg.revenue,
			AverageOrderValue: avg,
			PeakHour:          itemPeakHour(orders, agg.name, loc),
			CompletionRate:    itemCompletionRate(orders, agg.name),
		})
	}
	sort.SliceStable(popular, func(i, j int) bool { return popular[i].Revenue > popular[j].Revenue })
	if len(popular) > 10 {
		popular = popular[:10]
	}

	return ItemsReport{Popular: popular, ByTime: buildItemsByTime(orders, loc)}
}

// itemPeakHour is the hour with the most orders containing the item; ties
// resolve to the lowest hour.
func itemPeakHour(orders []Order, name string, loc *time.Location) int {
	var hourCounts [24]int
	for _, order := range orders {
		if !orderHasItem(order, name) {
			continue
		}
		hourCounts[order.CreatedAt.In(loc).Hour()]++
	}
	peak, best := 0, 0
	for hour, count := range hourCounts {
		if count > best {
			best = count
			peak = hour
		}
	}
	return peak
}

func itemCompletionRate(orders []Order, name string) float64 {
	total, completed := 0, 0
	for _, order := range orders {
		if !orderHasItem(order, name) {
			continue
		}
		total++
		if order.Status == StatusCompleted {
			completed++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

func buildItemsByTime(orders []Order, loc *time.Location) map[string][]TimeSlotItem {
	byTime := make(map[string][]TimeSlotItem, 4)
	for _, slot := range []string{QuadrantMorning, QuadrantAfternoon, QuadrantEvening, QuadrantNight} {
		type slotTotals struct {
			name  string
			count int
		}
		totals := make([]*slotTotals, 0)
		index := make(map[string]*slotTotals)
		for _, order := range orders {
			if Quadrant(order.CreatedAt.In(loc).Hour()) != slot {
				continue
			}
			for _, line := range order.Items {
				agg := index[line.ItemName]
				if agg == nil {
					agg = &slotTotals{name: line.ItemName}
					index[line.ItemName] = agg
					totals = append(totals, agg)
				}
				agg.count += line.Quantity
			}
		}
		sort.SliceStable(totals, func(i, j int) bool { return totals[i].count > totals[j].count })
		if len(totals) > 5 {
			totals = totals[:5]
		}
		items := make([]TimeSlotItem, 0, len(totals))
		for _, agg := range totals {
			items = append(items, TimeSlotItem{Name: agg.name, Count: agg.count})
		}
		byTime[slot] = items
	}
	return byTime
}

func buildItemAnalytics(orders []Order, menuItems []MenuItem, inventory []InventoryItem, now time.Time, est Estimator) (ItemAnalyticsReport, []string) {
	loc := now.Location()
	report := ItemAnalyticsReport{
		Items:         make(map[string]ItemAnalytics, len(menuItems)),
		TopPerformers: []PerformerSummary{},
		LowPerformers: []PerformerSummary{},
	}
	var warnings []string

	ranked := make([]ItemAnalytics, 0, len(menuItems))
	for _, menuItem := range menuItems {
		entry := analyzeMenuItem(menuItem, orders, inventory, now, loc, est, &warnings)
		report.Items[menuItem.ID.String()] = entry
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TotalRevenue > ranked[j].TotalRevenue })

	// With fewer than ten items the two lists overlap; that is accepted.
	report.TopPerformers = performerSummaries(ranked[:min(5, len(ranked))])
	report.LowPerformers = performerSummaries(ranked[max(0, len(ranked)-5):])
	return report, warnings
}

type itemLine struct {
	quantity int
	price    float64
	at       time.Time
}

func analyzeMenuItem(menuItem MenuItem, orders []Order, inventory []InventoryItem, now time.Time, loc *time.Location, est Estimator, warnings *[]string) ItemAnalytics {
	// Menu items join to order lines by exact name; duplicate names merge.
	lines := make([]itemLine, 0)
	for _, order := range orders {
		for _, line := range order.Items {
			if line.ItemName != menuItem.Name {
				continue
			}
			lines = append(lines, itemLine{
				quantity: line.Quantity,
				price:    line.Price,
				at:       lineTime(order, line).In(loc),
			})
		}
	}

	totalQuantity := 0
	totalRevenue := 0.0
	var quadrants QuadrantCounts
	dailyQuantity := make(map[string]float64)
	for _, line := range lines {
		totalQuantity += line.quantity
		totalRevenue += line.price * float64(line.quantity)
		switch Quadrant(line.at.Hour()) {
		case QuadrantMorning:
			quadrants.Morning++
		case QuadrantAfternoon:
			quadrants.Afternoon++
		case QuadrantEvening:
			quadrants.Evening++
		default:
			quadrants.Night++
		}
		dailyQuantity[dayKey(line.at)] += float64(line.quantity)
	}

	averageValue := 0.0
	if len(lines) > 0 {
		averageValue = totalRevenue / float64(len(lines))
	}

	trend := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := dayKey(day)
		point := TrendPoint{Date: dayLabel(day)}
		for _, line := range lines {
			if dayKey(line.at) != key {
				continue
			}
			point.Quantity += line.quantity
			point.Revenue += line.price * float64(line.quantity)
		}
		trend = append(trend, point)
	}

	cost := menuItem.Price * defaultCostRatio
	match, ambiguous := matchByName(menuItem.Name, inventory)
	if match != nil {
		cost = match.CostPerUnit
	}
	if ambiguous {
		*warnings = append(*warnings, fmt.Sprintf("multiple inventory candidates for menu item %q; using %q", menuItem.Name, match.Name))
	}
	margin := 0.0
	if totalRevenue > 0 {
		margin = (totalRevenue - float64(totalQuantity)*cost) / totalRevenue * 100
		if margin < 0 {
			margin = 0
		}
	}

	return ItemAnalytics{
		ID:                  menuItem.ID,
		Name:                menuItem.Name,
		TotalOrders:         len(lines),
		TotalQuantity:       totalQuantity,
		TotalRevenue:        totalRevenue,
		AverageOrderValue:   averageValue,
		PopularCombinations: popularCombinations(orders, menuItem.Name),
		OrdersByTimeOfDay:   quadrants,
		SalesTrend:          trend,
		CustomerFeedback:    buildFeedback(len(lines), est),
		ProfitMargin:        margin,
		WastageRate:         itemWastage(totalQuantity, dailyQuantity, est),
		PreparationTime:     est.PreparationTime(),
	}
}

// matchByName joins a menu item to inventory by case-insensitive name
// containment, first match wins; ambiguous reports further candidates. The
// schema keys both sides on free-text names, so this is the only join
// available; swapping in an id-based join later only touches this function.
func matchByName(menuName string, inventory []InventoryItem) (match *InventoryItem, ambiguous bool) {
	needle := strings.ToLower(menuName)
	for i := range inventory {
		candidate := strings.ToLower(inventory[i].Name)
		if !strings.Contains(candidate, needle) && !strings.Contains(needle, candidate) {
			continue
		}
		if match != nil {
			return match, true
		}
		match = &inventory[i]
	}
	return match, false
}

// popularCombinations ranks the other items co-purchased with itemName,
// counting one occurrence per order line. Ties keep first-encountered order.
func popularCombinations(orders []Order, itemName string) []Combination {
	combos := make([]Combination, 0)
	index := make(map[string]int)
	for _, order := range orders {
		if !orderHasItem(order, itemName) {
			continue
		}
		for _, line := range order.Items {
			if line.ItemName == itemName {
				continue
			}
			pos, seen := index[line.ItemName]
			if !seen {
				pos = len(combos)
				index[line.ItemName] = pos
				combos = append(combos, Combination{ItemName: line.ItemName})
			}
			combos[pos].Occurrences++
		}
	}
	sort.SliceStable(combos, func(i, j int) bool { return combos[i].Occurrences > combos[j].Occurrences })
	if len(combos) > 5 {
		combos = combos[:5]
	}
	return combos
}

func buildFeedback(totalOrders int, est Estimator) CustomerFeedback {
	feedback := CustomerFeedback{
		RatingDistribution: map[int]int{5: 0, 4: 0, 3: 0, 2: 0, 1: 0},
	}
	if totalOrders == 0 {
		return feedback
	}
	feedback.AverageRating = est.AverageRating()
	feedback.TotalRatings = totalOrders
	feedback.RatingDistribution[5] = int(float64(totalOrders) * 0.45)
	feedback.RatingDistribution[4] = int(float64(totalOrders) * 0.35)
	feedback.RatingDistribution[3] = int(float64(totalOrders) * 0.13)
	feedback.RatingDistribution[2] = int(float64(totalOrders) * 0.05)
	feedback.RatingDistribution[1] = int(float64(totalOrders) * 0.02)
	return feedback
}

func itemWastage(totalQuantity int, dailyQuantity map[string]float64, est Estimator) float64 {
	if totalQuantity == 0 {
		return 0
	}
	days := make([]string, 0, len(dailyQuantity))
	for day := range dailyQuantity {
		days = append(days, day)
	}
	sort.Strings(days)
	quantities := make([]float64, 0, len(days))
	for _, day := range days {
		quantities = append(quantities, dailyQuantity[day])
	}
	return est.WastageRate(quantities)
}

func performerSummaries(items []ItemAnalytics) []PerformerSummary {
	summaries := make([]PerformerSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, PerformerSummary{
			ID:       item.ID,
			Name:     item.Name,
			Revenue:  item.TotalRevenue,
			Quantity: item.TotalQuantity,
		})
	}
	return summaries
}

func orderHasItem(order Order, name string) bool {
	for _, line := range order.Items {
		if line.ItemName == name {
			return true
		}
	}
	return false
}

// lineTime is the line's own timestamp, defaulting to the parent order's.
func lineTime(order Order, line OrderItem) time.Time {
	if line.CreatedAt.IsZero() {
		return order.CreatedAt
	}
	return line.CreatedAt
}
