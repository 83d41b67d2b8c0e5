package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cafe-analytics-services/internal/analytics"
	"cafe-analytics-services/pkg/response"
)

func (h *Handler) DashboardAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	explicitRange, err := parseExplicitRange(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	now := time.Now().In(h.Location)
	cacheBucket := now.Truncate(5 * time.Minute)
	cacheKey := reportCacheKey("dashboard_analytics", rangeKey(explicitRange), cacheBucket.Format(time.RFC3339))
	if cached, ok := getReportCache(cacheKey); ok {
		response.JSON(w, http.StatusOK, cached)
		return
	}

	report, degraded, err := h.computeReport(ctx, now, explicitRange)
	if err != nil {
		h.Logger.Error("analytics snapshot load failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load analytics")
		return
	}

	payload := map[string]any{
		"success": true,
		"data":    report,
		"meta": map[string]any{
			"generatedAt":       now.Format(time.RFC3339),
			"timezone":          h.Location.String(),
			"inventoryDegraded": degraded,
			"range":             rangeMeta(explicitRange),
		},
	}
	setReportCache(cacheKey, payload, h.Config.AnalyticsCacheTTL)
	response.JSON(w, http.StatusOK, payload)
}

// DashboardSummary serves the dashboard header cards: revenue and order
// sections only, computed from the same snapshot.
func (h *Handler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	now := time.Now().In(h.Location)
	cacheBucket := now.Truncate(5 * time.Minute)
	cacheKey := reportCacheKey("dashboard_summary", cacheBucket.Format(time.RFC3339))
	if cached, ok := getReportCache(cacheKey); ok {
		response.JSON(w, http.StatusOK, cached)
		return
	}

	report, _, err := h.computeReport(ctx, now, nil)
	if err != nil {
		h.Logger.Error("analytics snapshot load failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load analytics")
		return
	}

	payload := map[string]any{
		"success": true,
		"data": map[string]any{
			"revenue":     report.Revenue,
			"orders":      report.Orders,
			"performance": report.Performance,
		},
		"meta": map[string]any{
			"generatedAt": now.Format(time.RFC3339),
			"timezone":    h.Location.String(),
		},
	}
	setReportCache(cacheKey, payload, h.Config.AnalyticsCacheTTL)
	response.JSON(w, http.StatusOK, payload)
}

func (h *Handler) computeReport(ctx context.Context, now time.Time, explicit *analytics.DateRange) (*analytics.Report, bool, error) {
	snap, degraded, err := h.loadSnapshot(ctx)
	if err != nil {
		return nil, false, err
	}
	est := h.Estimator
	if est == nil {
		est = analytics.NewRandomEstimator(time.Now().UnixNano())
	}
	return analytics.Compute(snap, now, est, explicit), degraded, nil
}

func parseExplicitRange(r *http.Request) (*analytics.DateRange, error) {
	query := r.URL.Query()
	start := strings.TrimSpace(query.Get("startDate"))
	end := strings.TrimSpace(query.Get("endDate"))
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, &handlerError{message: "Start and end dates required together"}
	}
	parsedStart, err := parseDateParam(start)
	if err != nil {
		return nil, err
	}
	parsedEnd, err := parseDateParam(end)
	if err != nil {
		return nil, err
	}
	if parsedStart.After(parsedEnd) {
		return nil, &handlerError{message: "startDate must be before endDate"}
	}
	return &analytics.DateRange{Start: parsedStart, End: parsedEnd}, nil
}

func rangeKey(explicit *analytics.DateRange) string {
	if explicit == nil {
		return "all"
	}
	return explicit.Start.Format(time.RFC3339) + "_" + explicit.End.Format(time.RFC3339)
}

func rangeMeta(explicit *analytics.DateRange) any {
	if explicit == nil {
		return nil
	}
	return map[string]string{
		"start": explicit.Start.Format(time.RFC3339),
		"end":   explicit.End.Format(time.RFC3339),
	}
}
