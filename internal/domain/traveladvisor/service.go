package traveladvisor

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"

	apperrors "github.com/inetready/travel-advisor/pkg/errors"
)

// Service exposes the travel-readiness assessment.
type Service interface {
	Assess(ctx context.Context, req Request) (TravelRiskResult, error)
}

// WeatherClient returns the latest reading for a city, or nil when the city
// is unknown upstream.
type WeatherClient interface {
	CityReading(ctx context.Context, city string) (*CityReading, error)
}

// DistanceResolver looks up the precomputed distance between two cities.
type DistanceResolver interface {
	DistanceKm(cityA, cityB string) (float64, bool)
}

// ProfileRepository loads stored medical profiles by user ID.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*MedicalProfile, bool, error)
}

type service struct {
	weather   WeatherClient
	distances DistanceResolver
	profiles  ProfileRepository
	logger    *slog.Logger
}

// NewService wires up the travel advisor domain.
func NewService(weather WeatherClient, distances DistanceResolver, profiles ProfileRepository, logger *slog.Logger) Service {
	return &service{
		weather:   weather,
		distances: distances,
		profiles:  profiles,
		logger:    logger.With("component", "traveladvisor.service"),
	}
}

const (
	consultSentence    = "For any health concerns, consult a licensed healthcare provider."
	disclaimerSentence = "This is a general advice only. For health concerns, consult a healthcare professional."
)

// Assess resolves heat readings and route distance for the trip, runs the
// advisory rule cascade, and scores the Heat-Health Vulnerability Index.
// Missing inputs never fail the call: an unreachable provider, an unknown
// route, or an absent profile each degrade to a defined fallback branch.
func (s *service) Assess(ctx context.Context, req Request) (TravelRiskResult, error) {
	fromCity := NormalizeCity(req.FromCity)
	toCity := NormalizeCity(req.ToCity)
	if fromCity == "" || toCity == "" {
		return TravelRiskResult{}, apperrors.Wrap("invalid_input", "both origin and destination cities are required", nil)
	}

	medicalData := s.resolveProfile(ctx, req)
	fromHeatIndex, toHeatIndex := s.resolveReadings(ctx, fromCity, toCity, req.FromHeat, req.ToHeat)

	fromLevel := ClassifyHeatIndex(fromHeatIndex)
	toLevel := ClassifyHeatIndex(toHeatIndex)
	vulnerable := HeatVulnerable(medicalData)

	var distance *float64
	if km, ok := s.distances.DistanceKm(fromCity, toCity); ok {
		distance = &km
	}

	safe := true
	var reasons []string
	var adviceParts []string
	addAdvice := func(sentence string) {
		adviceParts = append(adviceParts, sentence)
	}
	markUnsafe := func(reason string) {
		safe = false
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}

	// Same city: no route to evaluate, so the multi-city rules are skipped
	// entirely and distance is pinned to zero.
	if fromCity == toCity {
		addAdvice("Origin and destination are the same. No travel needed.")
		if fromLevel == LevelDanger || fromLevel == LevelExtreme {
			addAdvice("Stay indoors due to dangerous heat in your city.")
			markUnsafe("Dangerous heat in your city")
		}
		if fromLevel == LevelSafe {
			addAdvice("Enjoy your day!")
		}
		addAdvice(consultSentence)

		var hhviScore *int
		var hhviCategory *string
		if fromHeatIndex != nil {
			zero := 0.0
			score := CalculateHHVI(*fromHeatIndex, medicalData, &zero)
			category := HHVIRiskCategory(score)
			hhviScore = &score
			hhviCategory = &category
		}

		addAdvice(disclaimerSentence)

		zeroDistance := 0.0
		return TravelRiskResult{
			Status:           statusFor(safe),
			Advice:           strings.Join(adviceParts, " "),
			FromHeat:         fromHeatIndex,
			ToHeat:           toHeatIndex,
			Distance:         &zeroDistance,
			FromLevel:        fromLevel,
			ToLevel:          toLevel,
			HHVIScore:        hhviScore,
			HHVIRiskCategory: hhviCategory,
		}, nil
	}

	// Distance banding.
	if distance == nil {
		markUnsafe("Unknown route distance")
		addAdvice("Unable to determine travel safety due to missing route data.")
	} else {
		switch d := *distance; {
		case d < 1:
			addAdvice("Very short trip. Minimal risk.")
		case d < 10:
			addAdvice("Short trip: minimal travel risk.")
		case d < 50:
			addAdvice("Moderate distance: plan for hydration and rest.")
		case d < 100:
			addAdvice("Longer journey: bring water, sun protection, and take breaks.")
		default:
			markUnsafe("Long travel distance")
			addAdvice("Very long trip: avoid travel if possible, especially in heat.")
		}
	}

	// Heat-level pair evaluation. Only the highest-priority branch fires.
	if fromLevel == LevelUnknown || toLevel == LevelUnknown {
		addAdvice("Heat index data unavailable for one or both cities. Use general heat safety precautions.")
	}
	switch {
	case eitherLevel(fromLevel, toLevel, LevelExtreme):
		markUnsafe("Extreme heat index")
		addAdvice("Extreme heat detected: travel is highly discouraged.")
	case eitherLevel(fromLevel, toLevel, LevelDanger):
		markUnsafe("Dangerous heat index")
		addAdvice("Dangerous heat index: avoid travel and stay indoors if possible.")
	case eitherLevel(fromLevel, toLevel, LevelWarning):
		addAdvice("Warning: High heat index. Limit outdoor activity and rest often.")
	case eitherLevel(fromLevel, toLevel, LevelCaution):
		addAdvice("Caution: Mild heat risk. Stay hydrated and wear light clothing.")
	case fromLevel == LevelSafe && toLevel == LevelSafe:
		addAdvice("Weather is favorable for travel.")
	}

	// Vulnerability plus heat interaction. General phrasing only; the
	// triggering condition is never disclosed.
	if vulnerable {
		if eitherAtLeastWarning(fromLevel, toLevel) {
			markUnsafe("Increased risk with current heat")
			addAdvice("Individuals with certain health conditions or age groups may be at higher risk in this heat.")
		} else {
			addAdvice("Some individuals may be more sensitive to heat. Monitor your well-being during travel.")
		}
	}

	// Age-specific guidance.
	if age, ok := profileAge(medicalData); ok {
		if age < 10 {
			addAdvice("Children are more sensitive to heat. Ensure frequent breaks and hydration.")
		}
		if age > 65 {
			addAdvice("Older adults are at higher risk for heat-related illness. Avoid peak sun hours.")
		}
	}

	bothSafe := fromLevel == LevelSafe && toLevel == LevelSafe

	if safe && bothSafe && distance != nil && *distance < 10 {
		addAdvice("Ideal conditions for a quick trip.")
	}

	// Differing levels between the two cities.
	if fromLevel != toLevel {
		addAdvice(fmt.Sprintf("Note: Heat index differs between %s (%s) and %s (%s). Prepare accordingly.", fromCity, fromLevel, toCity, toLevel))
		switch {
		case fromLevel == LevelSafe && toLevel == LevelCaution:
			addAdvice("Expect warmer conditions at your destination.")
		case fromLevel == LevelCaution && toLevel == LevelSafe:
			addAdvice("It will be cooler at your destination.")
		case fromLevel == LevelWarning && toLevel == LevelDanger:
			addAdvice("Conditions worsen as you travel. Take extra care.")
		case fromLevel == LevelDanger && toLevel == LevelWarning:
			addAdvice("Conditions improve at your destination, but remain alert.")
		}
	}

	if medicalData == nil {
		addAdvice("No medical data found. For best advice, update your health profile.")
	}

	// Both cities at caution or worse but short of danger.
	if !eitherLevel(fromLevel, toLevel, LevelSafe) && !eitherLevel(fromLevel, toLevel, LevelDanger) && !eitherLevel(fromLevel, toLevel, LevelExtreme) {
		addAdvice("Monitor for signs of heat stress: dizziness, headache, or nausea.")
	}

	// Deliberately overlaps with the unavailable-data sentence above.
	if fromLevel == LevelUnknown && toLevel == LevelUnknown {
		addAdvice("No heat index data for either city. Use general heat safety precautions.")
	}

	// Severe combinations.
	if distance != nil && *distance > 100 && (fromLevel == LevelDanger || toLevel == LevelDanger || fromLevel == LevelExtreme || toLevel == LevelExtreme) {
		addAdvice("Traveling a long distance in dangerous heat is extremely risky. Postpone your trip.")
		markUnsafe("")
	}
	if vulnerable && eitherAtLeastWarning(fromLevel, toLevel) {
		addAdvice("Combined risk factors make travel especially unsafe.")
		markUnsafe("")
	}

	// Low-risk elaborations. The vulnerable branch treats an unresolved
	// distance as short; the long-trip branch requires a known distance.
	if !vulnerable && bothSafe && distance != nil && *distance > 50 {
		addAdvice("Even with safe weather, long trips require planning. Bring water and rest often.")
	}
	if vulnerable && bothSafe && (distance == nil || *distance < 10) {
		addAdvice("Conditions are good, but monitor your health during your trip.")
	}

	// Child-or-elderly caution band: the raw recorded age applies here even
	// when it is zero.
	if age, ok := rawAge(medicalData); ok && (age < 10 || age > 65) {
		if fromLevel == LevelCaution || toLevel == LevelCaution || fromLevel == LevelWarning || toLevel == LevelWarning {
			addAdvice("Extra caution for children and elderly in warm weather.")
		}
	}

	// Threshold proximity. Evaluated against caller-supplied readings only.
	if nearThreshold(req.FromHeat, 27) {
		addAdvice("Heat index is near caution threshold. Monitor for changes.")
	}
	if nearThreshold(req.ToHeat, 27) {
		addAdvice("Destination heat index is near caution threshold.")
	}
	if nearThreshold(req.FromHeat, 33) {
		addAdvice("Heat index is near warning threshold.")
	}
	if nearThreshold(req.ToHeat, 33) {
		addAdvice("Destination heat index is near warning threshold.")
	}
	if nearThreshold(req.FromHeat, 42) {
		addAdvice("Heat index is near danger threshold.")
	}
	if nearThreshold(req.ToHeat, 42) {
		addAdvice("Destination heat index is near danger threshold.")
	}
	if nearThreshold(req.FromHeat, 52) {
		addAdvice("Heat index is near extreme threshold.")
	}
	if nearThreshold(req.ToHeat, 52) {
		addAdvice("Destination heat index is near extreme threshold.")
	}

	// HHVI scoring, only when at least one heat reading exists. An extreme
	// score is the single path by which scoring alone can flip the verdict.
	var hhviScore *int
	var hhviCategory *string
	if fromHeatIndex != nil || toHeatIndex != nil {
		maxHeat := math.Max(derefOrZero(fromHeatIndex), derefOrZero(toHeatIndex))
		score := CalculateHHVI(maxHeat, medicalData, distance)
		category := HHVIRiskCategory(score)
		hhviScore = &score
		hhviCategory = &category
		if rec := hhviRecommendation(score, vulnerable); rec != "" {
			addAdvice(rec)
		}
		if category == "extreme" && safe {
			markUnsafe("Extreme heat-health risk score")
		}
	}

	addAdvice(disclaimerSentence)

	advice := strings.Join(adviceParts, " ")
	if advice == "" {
		if safe {
			advice = fmt.Sprintf("Travel from %s to %s is considered safe at this time.", fromCity, toCity)
		} else {
			advice = fmt.Sprintf("Travel from %s to %s is not recommended now due to: %s.", fromCity, toCity, strings.Join(reasons, ", "))
		}
	}

	return TravelRiskResult{
		Status:           statusFor(safe),
		Advice:           advice,
		FromHeat:         fromHeatIndex,
		ToHeat:           toHeatIndex,
		Distance:         distance,
		FromLevel:        fromLevel,
		ToLevel:          toLevel,
		HHVIScore:        hhviScore,
		HHVIRiskCategory: hhviCategory,
	}, nil
}

// resolveProfile prefers an inline profile, then the repository when the
// request names a user. Lookup failures degrade to no personalization.
func (s *service) resolveProfile(ctx context.Context, req Request) *MedicalProfile {
	if req.MedicalData != nil {
		return req.MedicalData
	}
	if req.UserID == "" || s.profiles == nil {
		return nil
	}
	profile, found, err := s.profiles.GetByUserID(ctx, req.UserID)
	if err != nil {
		s.logger.Warn("medical profile lookup failed", "userId", req.UserID, "error", err)
		return nil
	}
	if !found {
		return nil
	}
	return profile
}

// resolveReadings returns the heat index for each city, preferring supplied
// overrides and otherwise asking the provider. The two provider lookups are
// independent and run concurrently. Provider failures yield a nil reading.
func (s *service) resolveReadings(ctx context.Context, fromCity, toCity string, fromHeat, toHeat *float64) (*float64, *float64) {
	fetch := func(city string, override *float64, out **float64, wg *sync.WaitGroup) {
		defer wg.Done()
		if override != nil {
			*out = override
			return
		}
		reading, err := s.weather.CityReading(ctx, city)
		if err != nil {
			s.logger.Warn("heat index fetch failed", "city", city, "error", err)
			return
		}
		if reading != nil {
			*out = reading.HeatIndex
		}
	}

	var fromIndex, toIndex *float64
	var wg sync.WaitGroup
	wg.Add(2)
	go fetch(fromCity, fromHeat, &fromIndex, &wg)
	go fetch(toCity, toHeat, &toIndex, &wg)
	wg.Wait()
	return fromIndex, toIndex
}

// rawAge is profileAge without the zero-means-missing rule; the cascade's
// child-or-elderly band keys off the recorded number as-is.
func rawAge(profile *MedicalProfile) (float64, bool) {
	if profile == nil || profile.Demographics.Age == nil || math.IsNaN(*profile.Demographics.Age) {
		return 0, false
	}
	return *profile.Demographics.Age, true
}

func nearThreshold(heat *float64, threshold float64) bool {
	return heat != nil && *heat != 0 && math.Abs(*heat-threshold) < 1
}

func eitherLevel(from, to HeatLevel, level HeatLevel) bool {
	return from == level || to == level
}

func eitherAtLeastWarning(from, to HeatLevel) bool {
	return eitherLevel(from, to, LevelWarning) || eitherLevel(from, to, LevelDanger) || eitherLevel(from, to, LevelExtreme)
}

func derefOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func statusFor(safe bool) string {
	if safe {
		return StatusReady
	}
	return StatusNotReady
}
