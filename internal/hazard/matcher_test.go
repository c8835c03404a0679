package hazard

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/krishirakshak/backend/internal/domain/entities"
)

func labels(pairs ...interface{}) []entities.Label {
	var out []entities.Label
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, entities.Label{
			Name:       pairs[i].(string),
			Confidence: pairs[i+1].(float64),
		})
	}
	return out
}

func TestAnalyze_CorrodedEquipment(t *testing.T) {
	m := NewMatcher()

	report := m.Analyze(labels("Tool", 91.2, "Rust", 88.5))

	assert.Equal(t, entities.SeverityCritical, report.OverallRisk)
	assert.GreaterOrEqual(t, report.HazardCount, 1)
	assert.Equal(t, "corroded_equipment", report.Hazards[0].ID)
	assert.Equal(t, "rules", report.Source)
}

func TestAnalyze_BidirectionalSubstringMatch(t *testing.T) {
	m := NewMatcher()

	// "Rusty Metal" contains "rust"; "Garden Tool" contains "tool"
	report := m.Analyze(labels("Garden Tool", 85.0, "Rusty Metal", 80.0))

	ids := make([]string, 0, len(report.Hazards))
	for _, h := range report.Hazards {
		ids = append(ids, h.ID)
	}
	assert.Contains(t, ids, "corroded_equipment")
}

func TestAnalyze_SortsMostSevereFirst(t *testing.T) {
	m := NewMatcher()

	// Tractor + Damage fires both vehicle_damage (HIGH) and general_tractor (LOW)
	report := m.Analyze(labels("Tractor", 95.0, "Damage", 90.0))

	assert.GreaterOrEqual(t, report.HazardCount, 2)
	assert.Equal(t, "vehicle_damage", report.Hazards[0].ID)
	assert.Equal(t, entities.SeverityHigh, report.OverallRisk)
	for i := 1; i < len(report.Hazards); i++ {
		assert.LessOrEqual(t,
			report.Hazards[i].Severity.Rank(),
			report.Hazards[i-1].Severity.Rank())
	}
}

func TestAnalyze_ExcludeSuppressesRule(t *testing.T) {
	m := NewMatcher()

	withLabel := m.Analyze(labels("Bottle", 90.0, "Label", 85.0))
	withoutLabel := m.Analyze(labels("Bottle", 90.0))

	for _, h := range withLabel.Hazards {
		assert.NotEqual(t, "unlabeled_chemical", h.ID)
	}

	ids := make([]string, 0, len(withoutLabel.Hazards))
	for _, h := range withoutLabel.Hazards {
		ids = append(ids, h.ID)
	}
	assert.Contains(t, ids, "unlabeled_chemical")
}

func TestAnalyze_NoLabelsYieldsEmptyReport(t *testing.T) {
	m := NewMatcher()

	report := m.Analyze(nil)

	assert.Equal(t, 0, report.HazardCount)
	assert.Equal(t, entities.SeverityNone, report.OverallRisk)
	assert.Empty(t, report.Hazards)
}

func TestAnalyze_RequireFindingNeverReturnsEmpty(t *testing.T) {
	m := NewMatcher(WithRequireFinding())

	report := m.Analyze(labels("Sky", 99.0, "Cloud", 97.0))

	assert.Equal(t, 1, report.HazardCount)
	assert.Equal(t, "general_awareness", report.Hazards[0].ID)
	assert.Equal(t, entities.SeverityLow, report.OverallRisk)
}

func TestAnalyze_ConfidenceFromBestQualifyingLabel(t *testing.T) {
	m := NewMatcher()

	report := m.Analyze(labels("Tractor", 92.4, "Machine", 71.0))
	assert.Equal(t, 0.92, report.Confidence)
	assert.Equal(t, 0.92, report.Hazards[0].Confidence)
}

func TestAnalyze_ConfidenceFallbackBelowFloor(t *testing.T) {
	m := NewMatcher(WithMinConfidence(60))

	report := m.Analyze(labels("Tractor", 45.0))
	assert.Equal(t, 0.7, report.Confidence)
}

func TestAnalyze_MissingPPERequiresPerson(t *testing.T) {
	m := NewMatcher()

	noPerson := m.Analyze(labels("Field", 90.0))
	for _, h := range noPerson.Hazards {
		assert.NotEqual(t, "missing_ppe_general", h.ID)
	}

	person := m.Analyze(labels("Person", 95.0))
	ids := make([]string, 0, len(person.Hazards))
	for _, h := range person.Hazards {
		ids = append(ids, h.ID)
	}
	assert.Contains(t, ids, "missing_ppe_general")

	protected := m.Analyze(labels("Person", 95.0, "Helmet", 88.0))
	for _, h := range protected.Hazards {
		assert.NotEqual(t, "missing_ppe_general", h.ID)
	}
}

func TestOverallRisk(t *testing.T) {
	assert.Equal(t, entities.SeverityNone, OverallRisk(nil))
	assert.Equal(t, entities.SeverityCritical, OverallRisk([]entities.Hazard{
		{Severity: entities.SeverityLow},
		{Severity: entities.SeverityCritical},
		{Severity: entities.SeverityMedium},
	}))
}

func TestDemoGenerator_Generate(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := NewDemoGeneratorWithSource(rand.NewSource(42), func() time.Time { return fixed })

	for i := 0; i < 20; i++ {
		report := g.Generate()

		assert.GreaterOrEqual(t, report.HazardCount, 2)
		assert.LessOrEqual(t, report.HazardCount, 4)
		assert.Equal(t, "demo", report.Source)
		assert.Equal(t, fixed, report.AnalyzedAt)
		assert.NotEqual(t, entities.SeverityNone, report.OverallRisk)

		for j, h := range report.Hazards {
			assert.GreaterOrEqual(t, h.Confidence, 0.7)
			assert.LessOrEqual(t, h.Confidence, 0.98)
			if j > 0 {
				assert.LessOrEqual(t, h.Severity.Rank(), report.Hazards[j-1].Severity.Rank())
			}
		}
	}
}
