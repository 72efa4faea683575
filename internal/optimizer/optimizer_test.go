package optimizer

import (
	"errors"
	"math"
	"testing"

	"fleet-monitor/internal/domain/route"
	"fleet-monitor/internal/weather"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"time", PriorityTime, false},
		{"Fuel", PriorityFuel, false},
		{"  COST  ", PriorityCost, false},
		{"weather", PriorityWeather, false},
		{"speed", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.wantErr {
			if !errors.Is(err, route.ErrInvalidOptimization) {
				t.Errorf("ParsePriority(%q) error = %v, want ErrInvalidOptimization", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOptimizeBeatsBaselineOnItsPriority(t *testing.T) {
	e := NewEvaluator()
	const distance = 450.5

	for _, condition := range []weather.Condition{
		weather.ConditionCalm,
		weather.ConditionModerate,
		weather.ConditionRough,
		weather.ConditionSevere,
	} {
		baseline := e.Baseline(distance, condition)

		timeOpt := e.Optimize(distance, condition, PriorityTime)
		if timeOpt.EstimatedTime >= baseline.EstimatedTime {
			t.Errorf("%s: time-optimized time %v >= baseline %v", condition, timeOpt.EstimatedTime, baseline.EstimatedTime)
		}

		fuelOpt := e.Optimize(distance, condition, PriorityFuel)
		if fuelOpt.FuelConsumption >= baseline.FuelConsumption {
			t.Errorf("%s: fuel-optimized fuel %v >= baseline %v", condition, fuelOpt.FuelConsumption, baseline.FuelConsumption)
		}

		costOpt := e.Optimize(distance, condition, PriorityCost)
		if costOpt.TotalCost >= baseline.TotalCost {
			t.Errorf("%s: cost-optimized cost %v >= baseline %v", condition, costOpt.TotalCost, baseline.TotalCost)
		}
	}
}

func TestOptimizeWeatherLowersRisk(t *testing.T) {
	e := NewEvaluator()

	est := e.Optimize(300, weather.ConditionSevere, PriorityWeather)
	if est.WeatherRisk != "Elevated" {
		t.Errorf("weather-optimized risk = %q, want %q", est.WeatherRisk, "Elevated")
	}
	if est.Distance <= 300 {
		t.Errorf("weather-optimized distance %v should exceed direct distance", est.Distance)
	}
}

func TestBaselineCostComposition(t *testing.T) {
	e := NewEvaluator()
	est := e.Baseline(100, weather.ConditionCalm)

	wantFuel := 100 * fuelTonsPerNM
	if math.Abs(est.FuelConsumption-wantFuel) > 1e-9 {
		t.Errorf("fuel = %v, want %v", est.FuelConsumption, wantFuel)
	}

	wantCost := wantFuel*fuelCostPerTon + est.EstimatedTime*hourlyRunningCost
	if math.Abs(est.TotalCost-wantCost) > 1e-9 {
		t.Errorf("cost = %v, want %v", est.TotalCost, wantCost)
	}
}
