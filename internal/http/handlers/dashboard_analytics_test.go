package handlers

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseExplicitRange(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		wantNil bool
		wantErr bool
	}{
		{"no params", "/api/dashboard/analytics", true, false},
		{"both dates", "/api/dashboard/analytics?startDate=2025-03-12&endDate=2025-03-13", false, false},
		{"rfc3339", "/api/dashboard/analytics?startDate=2025-03-12T00:00:00Z&endDate=2025-03-13T00:00:00Z", false, false},
		{"start only", "/api/dashboard/analytics?startDate=2025-03-12", true, true},
		{"end only", "/api/dashboard/analytics?endDate=2025-03-13", true, true},
		{"inverted", "/api/dashboard/analytics?startDate=2025-03-14&endDate=2025-03-13", true, true},
		{"garbage", "/api/dashboard/analytics?startDate=yesterday&endDate=2025-03-13", true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			got, err := parseExplicitRange(r)
			if tc.wantErr != (err != nil) {
				t.Fatalf("error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantNil != (got == nil) {
				t.Fatalf("range = %v, wantNil %v", got, tc.wantNil)
			}
		})
	}
}

func TestParseExplicitRangeValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/dashboard/analytics?startDate=2025-03-12&endDate=2025-03-13", nil)
	explicit, err := parseExplicitRange(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)
	if !explicit.Start.Equal(wantStart) || !explicit.End.Equal(wantEnd) {
		t.Fatalf("unexpected range: %+v", explicit)
	}
}

func TestParseDateParam(t *testing.T) {
	if _, err := parseDateParam("2025-03-12"); err != nil {
		t.Fatalf("date-only form should parse: %v", err)
	}
	if _, err := parseDateParam("2025-03-12T10:30:00+05:30"); err != nil {
		t.Fatalf("rfc3339 form should parse: %v", err)
	}
	if _, err := parseDateParam("12/03/2025"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestRangeKey(t *testing.T) {
	if got := rangeKey(nil); got != "all" {
		t.Fatalf("expected all for nil range, got %q", got)
	}
	r := httptest.NewRequest("GET", "/?startDate=2025-03-12&endDate=2025-03-13", nil)
	explicit, err := parseExplicitRange(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "2025-03-12T00:00:00Z_2025-03-13T00:00:00Z"
	if got := rangeKey(explicit); got != want {
		t.Fatalf("rangeKey = %q, want %q", got, want)
	}
}
