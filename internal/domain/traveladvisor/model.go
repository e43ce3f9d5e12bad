package traveladvisor

import (
	"strings"
	"time"
)

// Status values returned in TravelRiskResult.Status.
const (
	StatusReady    = "INET-READY"
	StatusNotReady = "NOT INET-READY"
)

// HeatLevel is the banded risk level derived from a heat-index reading.
type HeatLevel string

const (
	LevelUnknown HeatLevel = "unknown"
	LevelSafe    HeatLevel = "safe"
	LevelCaution HeatLevel = "caution"
	LevelWarning HeatLevel = "warning"
	LevelDanger  HeatLevel = "danger"
	LevelExtreme HeatLevel = "extreme"
)

// Request captures the payload accepted by the travel advisor service.
// FromHeat/ToHeat let callers pass pre-fetched heat-index readings; when
// absent the service asks the weather provider for the latest values.
type Request struct {
	FromCity    string          `json:"fromCity"`
	ToCity      string          `json:"toCity"`
	UserID      string          `json:"userId,omitempty"`
	MedicalData *MedicalProfile `json:"medicalData,omitempty"`
	FromHeat    *float64        `json:"fromHeat,omitempty"`
	ToHeat      *float64        `json:"toHeat,omitempty"`
}

// MedicalProfile is the slice of a user's health record the advisor reads.
// The advisor only ever derives a coarse vulnerable/not-vulnerable flag from
// it; individual conditions are never named in output text.
type MedicalProfile struct {
	Demographics Demographics    `json:"demographics"`
	Conditions   map[string]bool `json:"medical_conditions"`
}

// Demographics holds the per-user attributes relevant to heat risk.
type Demographics struct {
	Age *float64 `json:"age,omitempty"`
}

// TravelRiskResult is serialized back to API consumers.
type TravelRiskResult struct {
	Status           string    `json:"status"`
	Advice           string    `json:"advice"`
	FromHeat         *float64  `json:"fromHeat"`
	ToHeat           *float64  `json:"toHeat"`
	Distance         *float64  `json:"distance"`
	FromLevel        HeatLevel `json:"fromLevel"`
	ToLevel          HeatLevel `json:"toLevel"`
	HHVIScore        *int      `json:"hhviScore"`
	HHVIRiskCategory *string   `json:"hhviRiskCategory"`
}

// CityReading is the latest known weather snapshot for one city as returned
// by the heat-index provider. HeatIndex may be nil when the upstream record
// carries no reading.
type CityReading struct {
	City        string
	HeatIndex   *float64
	Temperature *float64
	Humidity    *float64
	UpdatedAt   time.Time
}

// NormalizeCity strips a trailing comma-delimited region qualifier, e.g.
// "Dasmariñas, Cavite" -> "Dasmariñas". Total: empty in, empty out.
func NormalizeCity(city string) string {
	if city == "" {
		return ""
	}
	name, _, _ := strings.Cut(city, ",")
	return strings.TrimSpace(name)
}
