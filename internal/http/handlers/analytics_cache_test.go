package handlers

import (
	"fmt"
	"testing"
	"time"
)

func TestReportCacheKey(t *testing.T) {
	if got := reportCacheKey("dashboard_analytics"); got != "dashboard_analytics" {
		t.Fatalf("unexpected key %q", got)
	}
	got := reportCacheKey("dashboard_analytics", "all", "2025-03-15T14:30:00Z")
	if got != "dashboard_analytics|all|2025-03-15T14:30:00Z" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestReportCacheSetGet(t *testing.T) {
	key := "test_set_get"
	setReportCache(key, "payload", time.Minute)

	value, ok := getReportCache(key)
	if !ok || value != "payload" {
		t.Fatalf("expected cached payload, got %v (%v)", value, ok)
	}
}

func TestReportCacheMiss(t *testing.T) {
	if _, ok := getReportCache("test_never_set"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestReportCacheExpiry(t *testing.T) {
	key := "test_expiry"
	setReportCache(key, "payload", -time.Second)

	if _, ok := getReportCache(key); ok {
		t.Fatalf("expected expired entry to miss")
	}
	// The expired entry is also dropped from the map.
	reportCacheMu.Lock()
	_, present := reportCache[key]
	reportCacheMu.Unlock()
	if present {
		t.Fatalf("expired entry should be deleted on lookup")
	}
}

func TestReportCacheReset(t *testing.T) {
	key := "test_reset_survivor"
	setReportCache(key, "payload", time.Minute)
	for i := 0; i <= reportCacheMaxEntries; i++ {
		setReportCache(fmt.Sprintf("test_reset_%d", i), i, time.Minute)
	}

	reportCacheMu.Lock()
	size := len(reportCache)
	reportCacheMu.Unlock()
	if size > reportCacheMaxEntries {
		t.Fatalf("cache should reset once over %d entries, has %d", reportCacheMaxEntries, size)
	}
}
