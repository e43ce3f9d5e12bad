package traveladvisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/inetready/travel-advisor/pkg/errors"
)

type stubWeather struct {
	mu       sync.Mutex
	readings map[string]*CityReading
	err      error
	calls    []string
}

func (s *stubWeather) CityReading(_ context.Context, city string) (*CityReading, error) {
	s.mu.Lock()
	s.calls = append(s.calls, city)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.readings[city], nil
}

type stubDistances struct {
	distances map[string]float64
}

func (s *stubDistances) DistanceKm(cityA, cityB string) (float64, bool) {
	if km, ok := s.distances[cityA+"|"+cityB]; ok {
		return km, true
	}
	km, ok := s.distances[cityB+"|"+cityA]
	return km, ok
}

func newTestService(weather WeatherClient, distances DistanceResolver, profiles ProfileRepository) Service {
	if weather == nil {
		weather = &stubWeather{}
	}
	if distances == nil {
		distances = &stubDistances{}
	}
	return NewService(weather, distances, profiles, testLogger())
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assess(t *testing.T, svc Service, req Request) TravelRiskResult {
	t.Helper()
	result, err := svc.Assess(context.Background(), req)
	require.NoError(t, err)
	return result
}

func TestAssessRejectsMissingCities(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	for _, req := range []Request{
		{},
		{FromCity: "Imus"},
		{ToCity: "Bacoor"},
		{FromCity: "  , Cavite", ToCity: "Bacoor"},
	} {
		_, err := svc.Assess(context.Background(), req)
		require.Error(t, err)
		require.True(t, apperrors.IsCode(err, "invalid_input"))
	}
}

func TestAssessSameCitySafe(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	result := assess(t, svc, Request{
		FromCity: "Tagaytay",
		ToCity:   "Tagaytay",
		FromHeat: fp(25),
		ToHeat:   fp(25),
	})

	require.Equal(t, StatusReady, result.Status)
	require.NotNil(t, result.Distance)
	require.Equal(t, 0.0, *result.Distance)
	require.Equal(t, LevelSafe, result.FromLevel)
	require.Contains(t, result.Advice, "Origin and destination are the same. No travel needed.")
	require.Contains(t, result.Advice, "Enjoy your day!")
	require.Contains(t, result.Advice, consultSentence)
	require.True(t, strings.HasSuffix(result.Advice, disclaimerSentence))
	require.NotContains(t, result.Advice, "trip:")
}

func TestAssessSameCityDangerousHeat(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	result := assess(t, svc, Request{
		FromCity: "Imus, Cavite",
		ToCity:   "Imus",
		FromHeat: fp(45),
		ToHeat:   fp(45),
	})

	require.Equal(t, StatusNotReady, result.Status)
	require.Equal(t, LevelDanger, result.FromLevel)
	require.NotNil(t, result.Distance)
	require.Equal(t, 0.0, *result.Distance)
	require.Contains(t, result.Advice, "Stay indoors due to dangerous heat in your city.")
	// exposure 8*3.5 = 28 with zero travel strain
	require.NotNil(t, result.HHVIScore)
	require.Equal(t, 28, *result.HHVIScore)
	require.NotNil(t, result.HHVIRiskCategory)
	require.Equal(t, "low", *result.HHVIRiskCategory)
}

func TestAssessExtremeHeatLongDistance(t *testing.T) {
	distances := &stubDistances{distances: map[string]float64{"Naic|Tagaytay": 29.846}}
	svc := newTestService(nil, distances, nil)

	result := assess(t, svc, Request{
		FromCity: "Naic",
		ToCity:   "Tagaytay",
		FromHeat: fp(55),
		ToHeat:   fp(30),
	})

	require.Equal(t, StatusNotReady, result.Status)
	require.Equal(t, LevelExtreme, result.FromLevel)
	require.Equal(t, LevelCaution, result.ToLevel)
	require.Contains(t, result.Advice, "Extreme heat detected: travel is highly discouraged.")
	require.Contains(t, result.Advice, "Moderate distance: plan for hydration and rest.")
	require.True(t, strings.HasSuffix(result.Advice, disclaimerSentence))
}

func TestAssessVulnerableTravelerWarningHeat(t *testing.T) {
	distances := &stubDistances{distances: map[string]float64{"Imus|Bacoor": 4.2}}
	svc := newTestService(nil, distances, nil)

	result := assess(t, svc, Request{
		FromCity: "Imus",
		ToCity:   "Bacoor",
		FromHeat: fp(35),
		ToHeat:   fp(20),
		MedicalData: &MedicalProfile{
			Demographics: Demographics{Age: fp(70)},
			Conditions:   map[string]bool{},
		},
	})

	require.Equal(t, StatusNotReady, result.Status)
	require.Equal(t, LevelWarning, result.FromLevel)
	require.Equal(t, LevelSafe, result.ToLevel)
	require.Contains(t, result.Advice, "Individuals with certain health conditions or age groups may be at higher risk in this heat.")
	require.Contains(t, result.Advice, "Older adults are at higher risk for heat-related illness. Avoid peak sun hours.")
	require.Contains(t, result.Advice, "Combined risk factors make travel especially unsafe.")
	// privacy: never name a condition in output text
	require.NotContains(t, strings.ToLower(result.Advice), "diabetes")
}

func TestAssessUnknownDataBothCities(t *testing.T) {
	weather := &stubWeather{readings: map[string]*CityReading{}}
	distances := &stubDistances{distances: map[string]float64{"Silang|Indang": 12.5}}
	svc := newTestService(weather, distances, nil)

	result := assess(t, svc, Request{FromCity: "Silang", ToCity: "Indang"})

	require.Equal(t, StatusReady, result.Status)
	require.Equal(t, LevelUnknown, result.FromLevel)
	require.Equal(t, LevelUnknown, result.ToLevel)
	require.Nil(t, result.FromHeat)
	require.Nil(t, result.ToHeat)
	require.Nil(t, result.HHVIScore)
	require.Nil(t, result.HHVIRiskCategory)
	require.Contains(t, result.Advice, "Heat index data unavailable for one or both cities. Use general heat safety precautions.")
	require.Contains(t, result.Advice, "No heat index data for either city. Use general heat safety precautions.")
	require.ElementsMatch(t, []string{"Silang", "Indang"}, weather.calls)
}

func TestAssessUnknownRouteMarksUnsafe(t *testing.T) {
	svc := newTestService(nil, &stubDistances{}, nil)

	result := assess(t, svc, Request{
		FromCity: "Imus",
		ToCity:   "Atlantis",
		FromHeat: fp(25),
		ToHeat:   fp(25),
	})

	require.Equal(t, StatusNotReady, result.Status)
	require.Nil(t, result.Distance)
	require.Contains(t, result.Advice, "Unable to determine travel safety due to missing route data.")
}

func TestAssessIdealConditionsShortTrip(t *testing.T) {
	distances := &stubDistances{distances: map[string]float64{"Kawit|Noveleta": 3.1}}
	svc := newTestService(nil, distances, nil)

	result := assess(t, svc, Request{
		FromCity: "Kawit",
		ToCity:   "Noveleta",
		FromHeat: fp(24),
		ToHeat:   fp(25),
	})

	require.Equal(t, StatusReady, result.Status)
	require.Contains(t, result.Advice, "Weather is favorable for travel.")
	require.Contains(t, result.Advice, "Ideal conditions for a quick trip.")
	require.Contains(t, result.Advice, "No medical data found. For best advice, update your health profile.")
}

func TestAssessVeryLongTripMarksUnsafe(t *testing.T) {
	distances := &stubDistances{distances: map[string]float64{"Ternate|Carmona": 120.9}}
	svc := newTestService(nil, distances, nil)

	result := assess(t, svc, Request{
		FromCity: "Ternate",
		ToCity:   "Carmona",
		FromHeat: fp(25),
		ToHeat:   fp(25),
	})

	require.Equal(t, StatusNotReady, result.Status)
	require.Contains(t, result.Advice, "Very long trip: avoid travel if possible, especially in heat.")
}

func TestAssessDifferingLevelsNote(t *testing.T) {
	distances := &stubDistances{distances: map[string]float64{"Imus|Silang": 23.3}}
	svc := newTestService(nil, distances, nil)

	result := assess(t, svc, Request{
		FromCity: "Imus",
		ToCity:   "Silang",
		FromHeat: fp(25),
		ToHeat:   fp(30),
	})

	require.Contains(t, result.Advice, "Note: Heat index differs between Imus (safe) and Silang (caution). Prepare accordingly.")
	require.Contains(t, result.Advice, "Expect warmer conditions at your destination.")
}

func TestAssessThresholdProximitySentences(t *testing.T) {
	distances := &stubDistances{distances: map[string]float64{"Imus|Bacoor": 4.2}}
	svc := newTestService(nil, distances, nil)

	result := assess(t, svc, Request{
		FromCity: "Imus",
		ToCity:   "Bacoor",
		FromHeat: fp(26.5),
		ToHeat:   fp(32.2),
	})

	require.Contains(t, result.Advice, "Heat index is near caution threshold. Monitor for changes.")
	require.Contains(t, result.Advice, "Destination heat index is near warning threshold.")
	require.NotContains(t, result.Advice, "Destination heat index is near caution threshold.")
	require.NotContains(t, result.Advice, "near danger threshold")
}

func TestAssessVulnerableUnknownRouteMonitorReminder(t *testing.T) {
	svc := newTestService(nil, &stubDistances{}, nil)

	result := assess(t, svc, Request{
		FromCity: "Imus",
		ToCity:   "Atlantis",
		FromHeat: fp(25),
		ToHeat:   fp(25),
		MedicalData: &MedicalProfile{
			Conditions: map[string]bool{"heat_sensitivity": true},
		},
	})

	// An unresolved distance still yields the monitoring reminder for
	// vulnerable travelers when both cities read safe.
	require.Equal(t, StatusNotReady, result.Status)
	require.Nil(t, result.Distance)
	require.Contains(t, result.Advice, "Conditions are good, but monitor your health during your trip.")
	require.NotContains(t, result.Advice, "Even with safe weather, long trips require planning.")
}

func TestAssessLoadsProfileFromRepository(t *testing.T) {
	distances := &stubDistances{distances: map[string]float64{"Imus|Bacoor": 4.2}}
	repo := &stubProfiles{profiles: map[string]*MedicalProfile{
		"user-1": {Demographics: Demographics{Age: fp(72)}},
	}}
	svc := newTestService(nil, distances, repo)

	result := assess(t, svc, Request{
		FromCity: "Imus",
		ToCity:   "Bacoor",
		UserID:   "user-1",
		FromHeat: fp(35),
		ToHeat:   fp(20),
	})

	require.Equal(t, StatusNotReady, result.Status)
	require.Contains(t, result.Advice, "Older adults are at higher risk for heat-related illness.")
	require.NotContains(t, result.Advice, "No medical data found.")
}

func TestAssessProfileLookupFailureDegrades(t *testing.T) {
	distances := &stubDistances{distances: map[string]float64{"Imus|Bacoor": 4.2}}
	repo := &stubProfiles{err: errors.New("db down")}
	svc := newTestService(nil, distances, repo)

	result := assess(t, svc, Request{
		FromCity: "Imus",
		ToCity:   "Bacoor",
		UserID:   "user-1",
		FromHeat: fp(25),
		ToHeat:   fp(25),
	})

	require.Equal(t, StatusReady, result.Status)
	require.Contains(t, result.Advice, "No medical data found. For best advice, update your health profile.")
}

func TestAssessProviderFailureYieldsUnknown(t *testing.T) {
	weather := &stubWeather{err: errors.New("upstream timeout")}
	distances := &stubDistances{distances: map[string]float64{"Imus|Bacoor": 4.2}}
	svc := newTestService(weather, distances, nil)

	result := assess(t, svc, Request{FromCity: "Imus", ToCity: "Bacoor"})

	require.Equal(t, LevelUnknown, result.FromLevel)
	require.Equal(t, LevelUnknown, result.ToLevel)
	require.Equal(t, StatusReady, result.Status)
}

func TestAssessDisclaimerAlwaysLast(t *testing.T) {
	distances := &stubDistances{distances: map[string]float64{
		"Imus|Bacoor":     4.2,
		"Naic|Tagaytay":   29.846,
		"Ternate|Carmona": 120.9,
	}}
	svc := newTestService(&stubWeather{}, distances, nil)

	heats := []*float64{nil, fp(25), fp(26.5), fp(35), fp(45), fp(55)}
	trips := [][2]string{
		{"Imus", "Imus"},
		{"Imus", "Bacoor"},
		{"Naic", "Tagaytay"},
		{"Ternate", "Carmona"},
		{"Imus", "Atlantis"},
	}
	profiles := []*MedicalProfile{
		nil,
		{Demographics: Demographics{Age: fp(7)}},
		{Conditions: map[string]bool{"heat_sensitivity": true}},
	}

	for _, trip := range trips {
		for _, fromHeat := range heats {
			for _, toHeat := range heats {
				for _, profile := range profiles {
					result := assess(t, svc, Request{
						FromCity:    trip[0],
						ToCity:      trip[1],
						FromHeat:    fromHeat,
						ToHeat:      toHeat,
						MedicalData: profile,
					})
					require.True(t, strings.HasSuffix(result.Advice, disclaimerSentence),
						"disclaimer missing for trip %v advice %q", trip, result.Advice)
					if result.HHVIScore != nil {
						require.GreaterOrEqual(t, *result.HHVIScore, 0)
						require.LessOrEqual(t, *result.HHVIScore, 100)
					}
				}
			}
		}
	}
}

func TestAssessSevereCombinationOverride(t *testing.T) {
	distances := &stubDistances{distances: map[string]float64{"Ternate|Carmona": 120.9}}
	svc := newTestService(nil, distances, nil)

	result := assess(t, svc, Request{
		FromCity: "Ternate",
		ToCity:   "Carmona",
		FromHeat: fp(45),
		ToHeat:   fp(25),
	})

	require.Equal(t, StatusNotReady, result.Status)
	require.Contains(t, result.Advice, "Traveling a long distance in dangerous heat is extremely risky. Postpone your trip.")
}

type stubProfiles struct {
	profiles map[string]*MedicalProfile
	err      error
}

func (s *stubProfiles) GetByUserID(_ context.Context, userID string) (*MedicalProfile, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	profile, ok := s.profiles[userID]
	return profile, ok, nil
}
