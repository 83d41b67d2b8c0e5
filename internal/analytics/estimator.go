package analytics

import (
	"math"
	"math/rand"
)

// Estimator supplies the synthetic metrics the snapshot does not contain:
// customer ratings, preparation times, wastage and supplier scores. Production
// wiring builds a RandomEstimator per invocation; tests inject FixedEstimator
// so everything else in the report stays deterministic.
type Estimator interface {
	// AverageRating returns the synthetic average customer rating for an item
	// with at least one order.
	AverageRating() float64
	// PreparationTime returns the estimated preparation time in minutes.
	PreparationTime() int
	// WastageRate turns an item's per-day ordered quantities (date-ascending)
	// into an estimated wastage percentage.
	WastageRate(dailyQuantities []float64) float64
	// SupplierScores returns reliability percent, average delivery days,
	// quality rating and an estimated orders-per-item multiplier.
	SupplierScores() SupplierScores
}

type SupplierScores struct {
	Reliability         float64
	AverageDeliveryTime float64
	QualityRating       float64
	OrdersPerItem       int
}

// RandomEstimator mirrors the dashboard's placeholder heuristics. It is not
// safe for concurrent use; build one per Compute invocation.
type RandomEstimator struct {
	rng *rand.Rand
}

func NewRandomEstimator(seed int64) *RandomEstimator {
	return &RandomEstimator{rng: rand.New(rand.NewSource(seed))}
}

func (e *RandomEstimator) AverageRating() float64 {
	rating := 4.2 + e.rng.Float64()*0.6
	if rating > 5 {
		rating = 5
	}
	return rating
}

func (e *RandomEstimator) PreparationTime() int {
	const baseMinutes = 8
	return baseMinutes + int(math.Round(e.rng.Float64()*10))
}

func (e *RandomEstimator) WastageRate(dailyQuantities []float64) float64 {
	return varianceWastage(dailyQuantities)
}

func (e *RandomEstimator) SupplierScores() SupplierScores {
	return SupplierScores{
		Reliability:         85 + e.rng.Float64()*15,
		AverageDeliveryTime: 1 + e.rng.Float64()*4,
		QualityRating:       3.5 + e.rng.Float64()*1.5,
		OrdersPerItem:       10 + e.rng.Intn(20),
	}
}

// varianceWastage estimates waste from the day-to-day variance of ordered
// quantities: irregular demand is assumed to leave more prepared stock unsold.
// Result is clamped to [1,15] percent.
func varianceWastage(dailyQuantities []float64) float64 {
	if len(dailyQuantities) == 0 {
		return 0
	}
	n := float64(len(dailyQuantities))
	sum := 0.0
	for _, qty := range dailyQuantities {
		sum += qty
	}
	avg := sum / n
	if avg == 0 {
		return 0
	}
	variance := 0.0
	for _, qty := range dailyQuantities {
		variance += (qty - avg) * (qty - avg)
	}
	variance /= n

	rate := variance / avg * 5
	if rate < 1 {
		return 1
	}
	if rate > 15 {
		return 15
	}
	return rate
}

// FixedEstimator returns constant values, keeping reports fully deterministic.
type FixedEstimator struct {
	Rating   float64
	PrepTime int
	Wastage  float64
	Scores   SupplierScores
}

func (e FixedEstimator) AverageRating() float64 { return e.Rating }

func (e FixedEstimator) PreparationTime() int { return e.PrepTime }

func (e FixedEstimator) WastageRate([]float64) float64 { return e.Wastage }

func (e FixedEstimator) SupplierScores() SupplierScores { return e.Scores }
