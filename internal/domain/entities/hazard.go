package entities

import "time"

// Label is a single detected image label with its confidence in percent (0-100).
type Label struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Hazard is one safety finding produced by hazard analysis.
type Hazard struct {
	ID               string   `json:"id"`
	Type             string   `json:"type"`
	Severity         Severity `json:"severity"`
	Confidence       float64  `json:"confidence"`
	Description      string   `json:"description"`
	DescriptionHi    string   `json:"description_hi,omitempty"`
	Recommendation   string   `json:"recommendation"`
	RecommendationHi string   `json:"recommendation_hi,omitempty"`
}

// HazardReport is the full result of analyzing one image.
type HazardReport struct {
	Hazards        []Hazard  `json:"hazards"`
	OverallRisk    Severity  `json:"overall_risk"`
	HazardCount    int       `json:"hazard_count"`
	Confidence     float64   `json:"confidence"`
	DetectedLabels []string  `json:"detected_labels"`
	AnalyzedAt     time.Time `json:"analyzed_at"`
	// Source records which stage produced the report: "model" when the
	// remote interpreter answered, "rules" for the local pattern engine.
	Source string `json:"source"`
}
