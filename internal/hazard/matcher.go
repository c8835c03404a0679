package hazard

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/krishirakshak/backend/internal/domain/entities"
)

const defaultMinConfidence = 60.0

// Matcher evaluates the rule dictionary against detected image labels.
type Matcher struct {
	rules          []Rule
	minConfidence  float64
	requireFinding bool
	now            func() time.Time
}

// Option configures a Matcher
type Option func(*Matcher)

// WithMinConfidence sets the label confidence floor in percent (0-100)
func WithMinConfidence(pct float64) Option {
	return func(m *Matcher) {
		m.minConfidence = pct
	}
}

// WithRequireFinding makes Analyze emit a general-awareness finding when no
// rule fires, so a report is never empty. Off by default: a clean image
// legitimately yields zero hazards.
func WithRequireFinding() Option {
	return func(m *Matcher) {
		m.requireFinding = true
	}
}

// WithRules replaces the default rule dictionary
func WithRules(rules []Rule) Option {
	return func(m *Matcher) {
		m.rules = rules
	}
}

func withClock(now func() time.Time) Option {
	return func(m *Matcher) {
		m.now = now
	}
}

// NewMatcher creates a Matcher over the default rule dictionary.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		rules:         Rules,
		minConfidence: defaultMinConfidence,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Analyze matches every rule against the label set and assembles a report.
// Each rule fires at most once; hazards are ordered most severe first and
// the original rule order breaks ties.
func (m *Matcher) Analyze(labels []entities.Label) *entities.HazardReport {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}

	confidence := m.bestConfidence(labels)

	var hazards []entities.Hazard
	matched := make(map[string]bool)

	for _, rule := range m.rules {
		if matched[rule.ID] {
			continue
		}
		if !rule.matches(names) {
			continue
		}
		matched[rule.ID] = true
		hazards = append(hazards, entities.Hazard{
			ID:               rule.ID,
			Type:             rule.Type,
			Severity:         rule.Severity,
			Confidence:       confidence,
			Description:      rule.Description,
			DescriptionHi:    rule.DescriptionHi,
			Recommendation:   rule.Recommendation,
			RecommendationHi: rule.RecommendationHi,
		})
	}

	if len(hazards) == 0 && m.requireFinding {
		hazards = append(hazards, generalAwarenessFinding(confidence))
	}

	sort.SliceStable(hazards, func(i, j int) bool {
		return hazards[i].Severity.Rank() > hazards[j].Severity.Rank()
	})

	return &entities.HazardReport{
		Hazards:        hazards,
		OverallRisk:    OverallRisk(hazards),
		HazardCount:    len(hazards),
		Confidence:     confidence,
		DetectedLabels: names,
		AnalyzedAt:     m.now(),
		Source:         "rules",
	}
}

// bestConfidence is the highest label confidence at or above the floor,
// scaled to 0-1 and rounded to two decimals. 0.7 when no label qualifies.
func (m *Matcher) bestConfidence(labels []entities.Label) float64 {
	best := 0.0
	for _, l := range labels {
		if l.Confidence >= m.minConfidence && l.Confidence > best {
			best = l.Confidence
		}
	}
	if best == 0 {
		return 0.7
	}
	return math.Round(best) / 100
}

func (r Rule) matches(names []string) bool {
	for _, group := range r.Require {
		if !hasAny(names, group) {
			return false
		}
	}
	if len(r.Exclude) > 0 && hasAny(names, r.Exclude) {
		return false
	}
	return true
}

// hasAny reports whether any target matches any label name, case-insensitive,
// with substring containment checked in both directions.
func hasAny(names []string, targets []string) bool {
	for _, t := range targets {
		lt := strings.ToLower(t)
		for _, n := range names {
			ln := strings.ToLower(n)
			if strings.Contains(ln, lt) || strings.Contains(lt, ln) {
				return true
			}
		}
	}
	return false
}

// OverallRisk is the severity of the most severe hazard, or NONE.
func OverallRisk(hazards []entities.Hazard) entities.Severity {
	if len(hazards) == 0 {
		return entities.SeverityNone
	}
	worst := hazards[0].Severity
	for _, h := range hazards[1:] {
		if h.Severity.Rank() > worst.Rank() {
			worst = h.Severity
		}
	}
	return worst
}

func generalAwarenessFinding(confidence float64) entities.Hazard {
	return entities.Hazard{
		ID:               "general_awareness",
		Type:             "field_general",
		Severity:         entities.SeverityLow,
		Confidence:       confidence,
		Description:      "No specific hazards matched - maintain general safety awareness",
		Recommendation:   "Watch for uneven ground. Wear sturdy footwear. Stay hydrated. Be aware of wildlife.",
		DescriptionHi:    "कोई विशेष खतरा नहीं मिला — सामान्य सुरक्षा जागरूकता बनाए रखें",
		RecommendationHi: "असमान जमीन से सावधान रहें। मजबूत जूते पहनें। पानी पीते रहें।",
	}
}
