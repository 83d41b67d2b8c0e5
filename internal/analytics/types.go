package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Order lifecycle statuses as stored by the ordering app. Anything else is
// ignored by status-keyed aggregates but still counts toward overall totals.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Payment methods recognized by the revenue split.
const (
	PaymentCash   = "cash"
	PaymentOnline = "online"
)

type OrderItem struct {
	ID      uuid.UUID `json:"id"`
	OrderID uuid.UUID `json:"order_id"`
	// ItemName is the join key to menu and inventory items; the schema carries
	// no foreign key between them.
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID            uuid.UUID `json:"id"`
	TableNumber   int       `json:"table_number"`
	CustomerName  string    `json:"customer_name"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	TotalAmount   float64   `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
	Items         []OrderItem
}

type MenuItem struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	CategoryID uuid.UUID `json:"category_id"`
}

type MenuCategory struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Note  string    `json:"note,omitempty"`
	Order int       `json:"order"`
}

type InventoryItem struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Quantity    float64    `json:"quantity"`
	Unit        string     `json:"unit"`
	MinQuantity float64    `json:"min_quantity"`
	CostPerUnit float64    `json:"cost_per_unit"`
	Category    string     `json:"category,omitempty"`
	Supplier    string     `json:"supplier,omitempty"`
	Location    string     `json:"location,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
}

// Snapshot is the immutable input to one Compute invocation. The engine only
// reads it. InventoryItems may be nil when inventory storage was unreachable;
// the inventory section of the report degrades to all zeros in that case.
type Snapshot struct {
	Orders         []Order
	MenuItems      []MenuItem
	MenuCategories []MenuCategory
	InventoryItems []InventoryItem
}

// DateRange optionally restricts the day-level revenue series used for
// charting. Period buckets (today, this week, ...) always derive from the
// reference now instant, never from this range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

type RevenueByHour struct {
	Hour   string  `json:"hour"`
	Amount float64 `json:"amount"`
	Orders int     `json:"orders"`
}

type RevenueByDay struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type RevenueGrowth struct {
	Daily  float64 `json:"daily"`
	Weekly float64 `json:"weekly"`
}

type RevenueReport struct {
	Total           float64            `json:"total"`
	Today           float64            `json:"today"`
	ThisWeek        float64            `json:"thisWeek"`
	ThisMonth       float64            `json:"thisMonth"`
	Last24Hours     float64            `json:"last24Hours"`
	ByPaymentMethod map[string]float64 `json:"byPaymentMethod"`
	ByHour          []RevenueByHour    `json:"byHour"`
	ByDay           []RevenueByDay     `json:"byDay"`
	Growth          RevenueGrowth      `json:"growth"`
}

type StatusBucket struct {
	Status  string  `json:"status"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type HourCount struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

type QuadrantCounts struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Evening   int `json:"evening"`
	Night     int `json:"night"`
}

type OrdersReport struct {
	Total       int            `json:"total"`
	Today       int            `json:"today"`
	Last24Hours int            `json:"last24Hours"`
	Pending     int            `json:"pending"`
	Preparing   int            `json:"preparing"`
	Completed   int            `json:"completed"`
	Cancelled   int            `json:"cancelled"`
	AverageTime int            `json:"averageTime"`
	ByStatus    []StatusBucket `json:"byStatus"`
	ByHour      []HourCount    `json:"byHour"`
	ByTimeOfDay QuadrantCounts `json:"byTimeOfDay"`
}

type PopularItem struct {
	Name              string  `json:"name"`
	Quantity          int     `json:"quantity"`
	Revenue           float64 `json:"revenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	PeakHour          int     `json:"peakHour"`
	CompletionRate    float64 `json:"completionRate"`
}

type TimeSlotItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ItemsReport struct {
	Popular []PopularItem             `json:"popular"`
	ByTime  map[string][]TimeSlotItem `json:"byTime"`
}

type Combination struct {
	ItemName    string `json:"itemName"`
	Occurrences int    `json:"occurrences"`
}

type TrendPoint struct {
	Date     string  `json:"date"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type CustomerFeedback struct {
	AverageRating      float64     `json:"averageRating"`
	TotalRatings       int         `json:"totalRatings"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

type ItemAnalytics struct {
	ID                  uuid.UUID        `json:"id"`
	Name                string           `json:"name"`
	TotalOrders         int              `json:"totalOrders"`
	TotalQuantity       int              `json:"totalQuantity"`
	TotalRevenue        float64          `json:"totalRevenue"`
	AverageOrderValue   float64          `json:"averageOrderValue"`
	PopularCombinations []Combination    `json:"popularCombinations"`
	OrdersByTimeOfDay   QuadrantCounts   `json:"ordersByTimeOfDay"`
	SalesTrend          []TrendPoint     `json:"salesTrend"`
	CustomerFeedback    CustomerFeedback `json:"customerFeedback"`
	ProfitMargin        float64          `json:"profitMargin"`
	WastageRate         float64          `json:"wastageRate"`
	PreparationTime     int              `json:"preparationTime"`
}

type PerformerSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Revenue  float64   `json:"revenue"`
	Quantity int       `json:"quantity"`
}

type ItemAnalyticsReport struct {
	Items         map[string]ItemAnalytics `json:"items"`
	TopPerformers []PerformerSummary       `json:"topPerformers"`
	LowPerformers []PerformerSummary       `json:"lowPerformers"`
}

type TableActivity struct {
	Number            int     `json:"number"`
	Orders            int     `json:"orders"`
	Last24HourOrders  int     `json:"last24HourOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	TurnoverRate      float64 `json:"turnoverRate"`
}

type TableValue struct {
	Number int     `json:"number"`
	Value  float64 `json:"value"`
}

type TableRate struct {
	Number int     `json:"number"`
	Rate   float64 `json:"rate"`
}

type TablesReport struct {
	MostActive        []TableActivity `json:"mostActive"`
	AverageOrderValue []TableValue    `json:"averageOrderValue"`
	TurnoverRate      []TableRate     `json:"turnoverRate"`
}

type PeakHour struct {
	Hour    string  `json:"hour"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type PerformanceReport struct {
	CompletionRate    float64    `json:"completionRate"`
	CancellationRate  float64    `json:"cancellationRate"`
	AverageOrderValue float64    `json:"averageOrderValue"`
	PeakHours         []PeakHour `json:"peakHours"`
}

type LowStockItem struct {
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	ReorderPoint float64 `json:"reorderPoint"`
}

type ExpiringItem struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	ExpiryDate string  `json:"expiryDate"`
}

type RestockEntry struct {
	Date     string  `json:"date"`
	ItemName string  `json:"itemName"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

type WastageItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

type WastageAnalytics struct {
	TotalWastage    float64            `json:"totalWastage"`
	WastageByItem   []WastageItem      `json:"wastageByItem"`
	WastageByReason map[string]float64 `json:"wastageByReason"`
}

type SupplierPerformance struct {
	Name string `json:"name"`
	// ItemCount is the only field derived from the snapshot; the scores below
	// come from the Estimator.
	ItemCount           int     `json:"itemCount"`
	Reliability         float64 `json:"reliability"`
	AverageDeliveryTime float64 `json:"averageDeliveryTime"`
	QualityRating       float64 `json:"qualityRating"`
	TotalOrders         int     `json:"totalOrders"`
}

type CostTrendPoint struct {
	Date      string  `json:"date"`
	TotalCost float64 `json:"totalCost"`
}

type InventoryAnalytics struct {
	TotalItems          int                   `json:"totalItems"`
	TotalValue          float64               `json:"totalValue"`
	LowStockItems       []LowStockItem        `json:"lowStockItems"`
	ExpiringItems       []ExpiringItem        `json:"expiringItems"`
	RestockHistory      []RestockEntry        `json:"restockHistory"`
	WastageAnalytics    WastageAnalytics      `json:"wastageAnalytics"`
	SupplierPerformance []SupplierPerformance `json:"supplierPerformance"`
	CostTrends          []CostTrendPoint      `json:"costTrends"`
}

type InventoryAlert struct {
	Type     string `json:"type"`
	ItemName string `json:"itemName"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type InventoryReport struct {
	Current   map[string]InventoryItem `json:"current"`
	Analytics InventoryAnalytics       `json:"analytics"`
	Alerts    []InventoryAlert         `json:"alerts"`
}

// Report is the full dashboard payload. It is rebuilt from scratch on every
// Compute call and never mutated afterwards.
type Report struct {
	Revenue       RevenueReport       `json:"revenue"`
	Orders        OrdersReport        `json:"orders"`
	Items         ItemsReport         `json:"items"`
	Tables        TablesReport        `json:"tables"`
	Performance   PerformanceReport   `json:"performance"`
	ItemAnalytics ItemAnalyticsReport `json:"itemAnalytics"`
	Inventory     InventoryReport     `json:"inventory"`
	Warnings      []string            `json:"warnings,omitempty"`
}
