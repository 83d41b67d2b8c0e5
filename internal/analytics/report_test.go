package analytics

import (
	"reflect"
	"testing"
	"time"
)

func TestComputeEmptySnapshot(t *testing.T) {
	report := Compute(Snapshot{}, testNow, testEstimator(), nil)

	if report.Revenue.Total != 0 || report.Orders.Total != 0 {
		t.Fatalf("expected zero totals, got %+v", report)
	}
	if len(report.Revenue.ByHour) != 24 || len(report.Revenue.ByDay) != 7 {
		t.Fatalf("expected full chart shapes, got %d/%d", len(report.Revenue.ByHour), len(report.Revenue.ByDay))
	}
	if len(report.Items.ByTime) != 4 {
		t.Fatalf("expected 4 time slots, got %v", report.Items.ByTime)
	}
	if report.Items.Popular == nil || report.Tables.MostActive == nil ||
		report.Performance.PeakHours == nil || report.ItemAnalytics.TopPerformers == nil {
		t.Fatalf("empty report should marshal lists as [], got %+v", report)
	}
	if report.Inventory.Current == nil || report.Inventory.Alerts == nil {
		t.Fatalf("inventory section should stay non-nil, got %+v", report.Inventory)
	}
	if len(report.Inventory.Analytics.CostTrends) != 0 {
		t.Fatalf("empty inventory skips cost trends, got %d", len(report.Inventory.Analytics.CostTrends))
	}
	if len(report.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", report.Warnings)
	}
}

func TestComputeDeterministic(t *testing.T) {
	snap := Snapshot{
		Orders:    itemTestOrders(),
		MenuItems: []MenuItem{testMenuItem("Butter Chicken", 280), testMenuItem("Lassi", 60)},
		InventoryItems: []InventoryItem{
			testInventoryItem("Rice", 40, 10, 60),
		},
	}

	first := Compute(snap, testNow, testEstimator(), nil)
	second := Compute(snap, testNow, testEstimator(), nil)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same snapshot and estimator should produce identical reports")
	}
}

func TestComputeSingleOrder(t *testing.T) {
	at := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	snap := Snapshot{
		Orders: []Order{
			testOrder(4, StatusCompleted, PaymentCash, 280, at, testLine("Butter Chicken", 1, 280)),
		},
	}

	report := Compute(snap, testNow, testEstimator(), nil)

	if !almostEqual(report.Revenue.Today, 280) || !almostEqual(report.Revenue.Total, 280) {
		t.Fatalf("unexpected revenue: %+v", report.Revenue)
	}
	if report.Orders.Completed != 1 || report.Orders.Today != 1 {
		t.Fatalf("unexpected orders: %+v", report.Orders)
	}
	for _, bucket := range report.Orders.ByStatus {
		if bucket.Status == StatusCompleted && (bucket.Count != 1 || !almostEqual(bucket.Revenue, 280)) {
			t.Fatalf("unexpected completed bucket: %+v", bucket)
		}
	}
	if len(report.Items.Popular) != 1 {
		t.Fatalf("expected one popular item, got %+v", report.Items.Popular)
	}
	popular := report.Items.Popular[0]
	if popular.Name != "Butter Chicken" || popular.Quantity != 1 ||
		popular.PeakHour != 10 || !almostEqual(popular.CompletionRate, 100) {
		t.Fatalf("unexpected popular item: %+v", popular)
	}
	if len(report.Tables.TurnoverRate) != 1 || !almostEqual(report.Tables.TurnoverRate[0].Rate, 1) {
		t.Fatalf("unexpected turnover: %+v", report.Tables.TurnoverRate)
	}
	if !almostEqual(report.Performance.CompletionRate, 100) {
		t.Fatalf("unexpected performance: %+v", report.Performance)
	}
}

func TestComputeNilEstimator(t *testing.T) {
	snap := Snapshot{
		Orders:    itemTestOrders(),
		MenuItems: []MenuItem{testMenuItem("Butter Chicken", 280)},
	}

	report := Compute(snap, testNow, nil, nil)

	entry := report.ItemAnalytics.Items[snap.MenuItems[0].ID.String()]
	if entry.PreparationTime < 8 || entry.PreparationTime > 18 {
		t.Fatalf("fallback estimator out of range: %+v", entry)
	}
	if entry.CustomerFeedback.AverageRating < 4.2 || entry.CustomerFeedback.AverageRating > 5 {
		t.Fatalf("fallback rating out of range: %+v", entry.CustomerFeedback)
	}
}

func TestComputeRangeOnlyRestrictsDaySeries(t *testing.T) {
	snap := Snapshot{Orders: []Order{
		testOrder(1, StatusCompleted, PaymentCash, 280, testNow.Add(-time.Hour)),
		testOrder(2, StatusCompleted, PaymentOnline, 100, time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)),
	}}
	explicit := &DateRange{
		Start: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
	}

	report := Compute(snap, testNow, testEstimator(), explicit)

	if !almostEqual(report.Revenue.Total, 380) || !almostEqual(report.Revenue.Today, 280) {
		t.Fatalf("period buckets should ignore the range: %+v", report.Revenue)
	}
	if !almostEqual(report.Revenue.ByDay[6].Amount, 0) || !almostEqual(report.Revenue.ByDay[3].Amount, 100) {
		t.Fatalf("day series should honor the range: %+v", report.Revenue.ByDay)
	}
	if report.Orders.Total != 2 {
		t.Fatalf("orders should ignore the range: %+v", report.Orders)
	}
}
