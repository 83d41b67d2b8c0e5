package analytics

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Saturday 2025-03-15 14:30 UTC, the reference instant for most tests.
var testNow = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func testEstimator() FixedEstimator {
	return FixedEstimator{
		Rating:   4.5,
		PrepTime: 10,
		Wastage:  2.5,
		Scores: SupplierScores{
			Reliability:         90,
			AverageDeliveryTime: 2,
			QualityRating:       4,
			OrdersPerItem:       12,
		},
	}
}

func testOrder(table int, status, payment string, total float64, at time.Time, items ...OrderItem) Order {
	return Order{
		ID:            uuid.NewSHA1(uuid.NameSpaceOID, []byte(at.String())),
		TableNumber:   table,
		Status:        status,
		PaymentMethod: payment,
		TotalAmount:   total,
		CreatedAt:     at,
		Items:         items,
	}
}

func testLine(name string, quantity int, price float64) OrderItem {
	return OrderItem{ItemName: name, Quantity: quantity, Price: price}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
