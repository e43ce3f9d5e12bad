package traveladvisor

import "math"

// vulnerableConditions lists the profile flags that mark a traveler as
// heat-vulnerable. Which one matched is deliberately never surfaced.
var vulnerableConditions = []string{
	"cardiovascular_disease",
	"diabetes",
	"kidney_disease",
	"neurological_disorders",
	"respiratory_issues",
	"heat_sensitivity",
	"asthma",
	"high_blood_pressure",
	"thyroid_disorder",
}

// ClassifyHeatIndex maps a heat-index reading in degrees Celsius-equivalent
// to its risk band. Thresholds are half-open; the boundary value belongs to
// the band above (exactly 27 is caution, not safe).
func ClassifyHeatIndex(heatIndex *float64) HeatLevel {
	if heatIndex == nil || math.IsNaN(*heatIndex) {
		return LevelUnknown
	}
	switch h := *heatIndex; {
	case h < 27:
		return LevelSafe
	case h < 33:
		return LevelCaution
	case h < 42:
		return LevelWarning
	case h < 52:
		return LevelDanger
	default:
		return LevelExtreme
	}
}

// HeatVulnerable reports whether the profile flags the traveler as at
// elevated risk: any tracked condition, or an age under 10 or over 65.
// A nil profile means no personalization is available.
func HeatVulnerable(profile *MedicalProfile) bool {
	if profile == nil {
		return false
	}
	for _, cond := range vulnerableConditions {
		if profile.Conditions[cond] {
			return true
		}
	}
	if age, ok := profileAge(profile); ok && (age < 10 || age > 65) {
		return true
	}
	return false
}

// profileAge returns the traveler's age when one is recorded. A zero age is
// treated as unrecorded, matching the upstream data where zero doubles as
// the missing-value sentinel.
func profileAge(profile *MedicalProfile) (float64, bool) {
	if profile == nil || profile.Demographics.Age == nil {
		return 0, false
	}
	age := *profile.Demographics.Age
	if age == 0 || math.IsNaN(age) {
		return 0, false
	}
	return age, true
}
