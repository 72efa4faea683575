package weather

// Condition buckets sea state into the four labels the route planner
// stores on weather_conditions.
type Condition string

const (
	ConditionCalm     Condition = "Calm"     // 0-3 Beaufort
	ConditionModerate Condition = "Moderate" // 4-5 Beaufort
	ConditionRough    Condition = "Rough"    // 6-7 Beaufort
	ConditionSevere   Condition = "Severe"   // 8+ Beaufort
)

// ConditionFromLabel maps a stored weather_conditions label back onto
// a condition. Unknown or empty labels read as calm so that legacy
// free-text values do not inflate estimates.
func ConditionFromLabel(label string) Condition {
	switch Condition(label) {
	case ConditionModerate, ConditionRough, ConditionSevere:
		return Condition(label)
	default:
		return ConditionCalm
	}
}

// Classify maps wave height (meters) and wind speed (knots) onto a
// condition label. Thresholds follow the operational bands the fleet
// dashboard has always used.
func Classify(waveHeight, windSpeed float64) Condition {
	switch {
	case waveHeight > 4 || windSpeed > 25:
		return ConditionSevere
	case waveHeight > 2 || windSpeed > 15:
		return ConditionRough
	case waveHeight > 1 || windSpeed > 10:
		return ConditionModerate
	default:
		return ConditionCalm
	}
}

// Impact returns the multiplier applied to voyage time estimates under
// the given condition.
func (c Condition) Impact() float64 {
	switch c {
	case ConditionModerate:
		return 1.15
	case ConditionRough:
		return 1.3
	case ConditionSevere:
		return 1.5
	default:
		return 1.0
	}
}
