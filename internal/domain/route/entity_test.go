package route

import (
	"math"
	"testing"
)

func f64(v float64) *float64 { return &v }

func TestSavingsPercentage(t *testing.T) {
	tests := []struct {
		name     string
		original *float64
		optimize *float64
		want     float64
		ok       bool
	}{
		{"ten percent saving", f64(1000), f64(900), 10, true},
		{"no saving", f64(500), f64(500), 0, true},
		{"negative saving", f64(100), f64(110), -10, true},
		{"missing original", nil, f64(900), 0, false},
		{"missing optimized", f64(1000), nil, 0, false},
		{"zero original", f64(0), f64(0), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SavingsPercentage(tt.original, tt.optimize)
			if ok != tt.ok {
				t.Fatalf("SavingsPercentage ok = %v, want %v", ok, tt.ok)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SavingsPercentage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompleted(t *testing.T) {
	r := &Route{Status: StatusCompleted, ActualTime: f64(40), ActualFuelConsumption: f64(11.2)}
	if !r.Completed() {
		t.Error("expected route with actuals and completed status to report completed")
	}

	r = &Route{Status: StatusCompleted, ActualTime: f64(40)}
	if r.Completed() {
		t.Error("route without actual fuel must not report completed")
	}

	r = &Route{Status: StatusInProgress, ActualTime: f64(40), ActualFuelConsumption: f64(11.2)}
	if r.Completed() {
		t.Error("route still in progress must not report completed")
	}
}
