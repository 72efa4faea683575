package weather

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		waveHeight float64
		windSpeed  float64
		want       Condition
	}{
		{"flat calm", 0, 0, ConditionCalm},
		{"calm upper bound", 1.0, 10.0, ConditionCalm},
		{"moderate by wave", 1.5, 5, ConditionModerate},
		{"moderate by wind", 0.5, 12, ConditionModerate},
		{"rough by wave", 2.5, 8, ConditionRough},
		{"rough by wind", 1.2, 18, ConditionRough},
		{"severe by wave", 4.5, 10, ConditionSevere},
		{"severe by wind", 1.0, 30, ConditionSevere},
		{"severe trumps rough", 5.0, 20, ConditionSevere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.waveHeight, tt.windSpeed)
			if got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.waveHeight, tt.windSpeed, got, tt.want)
			}
		})
	}
}

func TestConditionImpact(t *testing.T) {
	tests := []struct {
		condition Condition
		want      float64
	}{
		{ConditionCalm, 1.0},
		{ConditionModerate, 1.15},
		{ConditionRough, 1.3},
		{ConditionSevere, 1.5},
		{Condition("unknown"), 1.0},
	}

	for _, tt := range tests {
		if got := tt.condition.Impact(); got != tt.want {
			t.Errorf("%s.Impact() = %v, want %v", tt.condition, got, tt.want)
		}
	}
}
