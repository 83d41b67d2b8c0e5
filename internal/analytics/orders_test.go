package analytics

import (
	"testing"
	"time"
)

func TestBuildOrdersStatusBuckets(t *testing.T) {
	orders := []Order{
		testOrder(1, StatusCompleted, PaymentCash, 280, testNow.Add(-time.Hour),
			testLine("Butter Chicken", 1, 280), testLine("Naan", 1, 40)),
		testOrder(2, StatusCompleted, PaymentOnline, 60, testNow.Add(-2*time.Hour),
			testLine("Lassi", 1, 60)),
		testOrder(3, StatusPending, PaymentCash, 40, testNow.Add(-30*time.Minute)),
		testOrder(4, "refunded", PaymentOnline, 90, testNow.Add(-3*time.Hour)),
	}

	report := buildOrders(orders, testNow)

	if report.Total != 4 {
		t.Fatalf("expected total 4, got %d", report.Total)
	}
	if report.Completed != 2 || report.Pending != 1 || report.Preparing != 0 || report.Cancelled != 0 {
		t.Fatalf("unexpected status counts: %+v", report)
	}
	if len(report.ByStatus) != 4 {
		t.Fatalf("expected 4 status buckets, got %d", len(report.ByStatus))
	}
	for _, bucket := range report.ByStatus {
		if bucket.Status == "refunded" {
			t.Fatalf("unknown status leaked into buckets: %+v", report.ByStatus)
		}
		if bucket.Status == StatusCompleted {
			if bucket.Count != 2 || !almostEqual(bucket.Revenue, 340) {
				t.Fatalf("unexpected completed bucket: %+v", bucket)
			}
		}
	}
}

func TestBuildOrdersAverageTime(t *testing.T) {
	orders := []Order{
		testOrder(1, StatusCompleted, PaymentCash, 280, testNow.Add(-time.Hour),
			testLine("Butter Chicken", 1, 280), testLine("Naan", 1, 40)),
		testOrder(2, StatusCompleted, PaymentOnline, 60, testNow.Add(-2*time.Hour),
			testLine("Lassi", 1, 60)),
		testOrder(3, StatusPending, PaymentCash, 40, testNow.Add(-30*time.Minute),
			testLine("Tea", 4, 10)),
	}

	report := buildOrders(orders, testNow)

	// 3 completed lines over 2 completed orders: round(15 + 1.5*3) = 20.
	if report.AverageTime != 20 {
		t.Fatalf("expected average time 20, got %d", report.AverageTime)
	}
}

func TestBuildOrdersAverageTimeNoCompleted(t *testing.T) {
	orders := []Order{
		testOrder(1, StatusPending, PaymentCash, 40, testNow, testLine("Tea", 1, 40)),
	}
	if got := buildOrders(orders, testNow).AverageTime; got != 0 {
		t.Fatalf("expected 0 without completed orders, got %d", got)
	}
}

func TestBuildOrdersTimeOfDay(t *testing.T) {
	orders := []Order{
		testOrder(1, StatusCompleted, PaymentCash, 10, time.Date(2025, 3, 15, 7, 0, 0, 0, time.UTC)),
		testOrder(2, StatusCompleted, PaymentCash, 10, time.Date(2025, 3, 15, 13, 0, 0, 0, time.UTC)),
		testOrder(3, StatusCompleted, PaymentCash, 10, time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)),
		testOrder(4, StatusCompleted, PaymentCash, 10, time.Date(2025, 3, 15, 2, 0, 0, 0, time.UTC)),
		testOrder(5, StatusCompleted, PaymentCash, 10, time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC)),
	}

	report := buildOrders(orders, testNow)

	if report.ByTimeOfDay.Morning != 1 || report.ByTimeOfDay.Afternoon != 1 ||
		report.ByTimeOfDay.Evening != 1 || report.ByTimeOfDay.Night != 2 {
		t.Fatalf("unexpected time-of-day split: %+v", report.ByTimeOfDay)
	}
	if len(report.ByHour) != 24 {
		t.Fatalf("expected 24 hour buckets, got %d", len(report.ByHour))
	}
	if report.ByHour[13].Count != 1 || report.ByHour[13].Hour != "13:00" {
		t.Fatalf("unexpected hour bucket: %+v", report.ByHour[13])
	}
}

func TestBuildOrdersTodayAndLast24(t *testing.T) {
	orders := []Order{
		testOrder(1, StatusCompleted, PaymentCash, 10, testNow.Add(-time.Hour)),
		// Yesterday evening: within 24h but not today.
		testOrder(2, StatusCompleted, PaymentCash, 10, time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)),
		testOrder(3, StatusCompleted, PaymentCash, 10, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)),
	}

	report := buildOrders(orders, testNow)

	if report.Today != 1 {
		t.Fatalf("expected 1 today, got %d", report.Today)
	}
	if report.Last24Hours != 2 {
		t.Fatalf("expected 2 in last 24h, got %d", report.Last24Hours)
	}
}
