package traveladvisor

import "math"

// Heat-Health Vulnerability Index: a 0-100 composite of heat exposure,
// medical sensitivity, age risk, and travel strain.

// conditionWeights grades each tracked condition by the strength of its
// association with heat-related illness.
var conditionWeights = map[string]float64{
	"cardiovascular_disease": 2.5,
	"diabetes":               1.8,
	"kidney_disease":         2.3,
	"neurological_disorders": 2.0,
	"respiratory_issues":     1.5,
	"heat_sensitivity":       3.0,
	"asthma":                 1.3,
	"high_blood_pressure":    2.0,
	"thyroid_disorder":       1.0,
}

// CalculateHHVI scores the combined heat-health risk for a trip. distance is
// nil when the route could not be resolved; unknown distance counts as
// moderate travel strain.
func CalculateHHVI(heatIndex float64, profile *MedicalProfile, distance *float64) int {
	var heatExposure float64
	switch {
	case heatIndex < 27:
		heatExposure = 0
	case heatIndex < 33:
		heatExposure = 3
	case heatIndex < 42:
		heatExposure = 6
	case heatIndex < 52:
		heatExposure = 8
	default:
		heatExposure = 10
	}

	var sensitivity float64
	if profile != nil {
		for cond, present := range profile.Conditions {
			if present {
				sensitivity += conditionWeights[cond]
			}
		}
	}
	sensitivity = math.Min(10, sensitivity)

	var ageRisk float64
	if age, ok := profileAge(profile); ok {
		switch {
		case age < 5:
			ageRisk = 8
		case age < 12:
			ageRisk = 6
		case age < 18:
			ageRisk = 3
		case age < 45:
			ageRisk = 1
		case age < 65:
			ageRisk = 2
		case age < 75:
			ageRisk = 6
		default:
			ageRisk = 9
		}
	}

	var travelStrain float64
	if distance == nil {
		travelStrain = 5
	} else {
		switch d := *distance; {
		case d < 1:
			travelStrain = 0
		case d < 10:
			travelStrain = 1
		case d < 30:
			travelStrain = 3
		case d < 50:
			travelStrain = 5
		case d < 100:
			travelStrain = 7
		default:
			travelStrain = 10
		}
	}

	score := heatExposure*3.5 + sensitivity*3.0 + ageRisk*2.5 + travelStrain*1.0
	return int(math.Min(100, math.Round(score)))
}

// HHVIRiskCategory bands a composite score. Boundary scores fall into the
// higher band (20 is low, not minimal).
func HHVIRiskCategory(score int) string {
	switch {
	case score < 20:
		return "minimal"
	case score < 40:
		return "low"
	case score < 60:
		return "moderate"
	case score < 80:
		return "high"
	default:
		return "extreme"
	}
}

// hhviRecommendation returns the category-specific advisory sentence, or ""
// when the rule cascade's own sentences already cover the risk level.
func hhviRecommendation(score int, vulnerable bool) string {
	switch HHVIRiskCategory(score) {
	case "moderate":
		if vulnerable {
			return "Based on heat vulnerability assessment, more frequent breaks are recommended during your trip."
		}
		return "Heat-health assessment indicates moderate risk. Stay vigilant about hydration."
	case "high":
		return "Heat-health assessment shows high risk based on combined factors. Consider postponing non-essential travel."
	case "extreme":
		return "Health risk assessment indicates extreme danger. Travel strongly discouraged under these conditions."
	default:
		return ""
	}
}
