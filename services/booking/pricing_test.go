package booking

import (
	"testing"
	"time"

	"lenslink/models"
)

func TestCancellationFeePercentage(t *testing.T) {
	cases := []struct {
		days int
		want float64
	}{
		{0, 0.5},
		{6, 0.5},
		{7, 0.25},
		{29, 0.25},
		{30, 0.1},
		{45, 0.1},
		{365, 0.1},
	}
	for _, tc := range cases {
		if got := cancellationFeePercentage(tc.days); got != tc.want {
			t.Errorf("cancellationFeePercentage(%d) = %v, want %v", tc.days, got, tc.want)
		}
	}
}

func TestCalculateCancellationFee(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name       string
		total      float64
		eventDate  time.Time
		wantFee    float64
		wantRefund float64
	}{
		{"5 days out, 50%", 1000, now.AddDate(0, 0, 5), 500, 500},
		{"15 days out, 25%", 1000, now.AddDate(0, 0, 15), 250, 750},
		{"45 days out, 10%", 1000, now.AddDate(0, 0, 45), 100, 900},
		{"fee rounds to nearest unit", 333, now.AddDate(0, 0, 45), 33, 300},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fee, refund := calculateCancellationFee(tc.total, tc.eventDate, now)
			if fee != tc.wantFee || refund != tc.wantRefund {
				t.Fatalf("got fee=%v refund=%v, want fee=%v refund=%v",
					fee, refund, tc.wantFee, tc.wantRefund)
			}
			if fee+refund != tc.total {
				t.Fatalf("fee plus refund must equal total: %v + %v != %v", fee, refund, tc.total)
			}
		})
	}
}

func TestCalculateCancellationFee_PartialDaysRoundUpward(t *testing.T) {
	// 6.5 days out still lands in the under-7-day tier.
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	eventDate := time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)

	fee, _ := calculateCancellationFee(1000, eventDate, now)
	if fee != 500 {
		t.Fatalf("expected 50%% fee for 6.5 days out, got %v", fee)
	}
}

func TestResolvePricing(t *testing.T) {
	p := &models.Photographer{
		HourlyRate: 120,
		PackageDeals: []models.PackageDeal{
			{ID: "pkg-1", Name: "Silver", Price: 800, Includes: []string{"prints"}},
		},
	}

	total, pkg, err := resolvePricing(p, "", 2.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 300 {
		t.Fatalf("expected hourly total 300, got %v", total)
	}
	if pkg.Name != "" {
		t.Fatalf("expected no package snapshot, got %+v", pkg)
	}

	total, pkg, err = resolvePricing(p, "pkg-1", 2.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 800 || pkg.Name != "Silver" {
		t.Fatalf("expected package pricing, got total=%v pkg=%+v", total, pkg)
	}

	if _, _, err := resolvePricing(p, "missing", 2.5); err == nil {
		t.Fatalf("expected error for unknown package")
	}
}
