package entities

// Severity classifies how dangerous a detected hazard is.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	// SeverityNone is the overall risk when no hazards were found
	SeverityNone Severity = "NONE"
)

// Rank returns the ordering weight of a severity; higher is more severe.
// Unknown values rank below LOW.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}
