package answers

import (
	"regexp"
	"strings"
)

// sourceKeywords maps a citable source to terms that indicate the answer
// draws on it.
var sourceKeywords = []struct {
	Source string
	Terms  []string
}{
	{"Insecticides Act 1968", []string{"insecticide", "pesticide", "कीटनाशक"}},
	{"BIS Safety Standards", []string{"bis ", "bureau of indian", "ppe", "safety standard", "सुरक्षा मानक"}},
	{"FSSAI Guidelines", []string{"fssai", "food safety", "खाद्य सुरक्षा"}},
	{"Indian Factories Act", []string{"factory", "factories act", "कारखाना"}},
	{"Agricultural Safety Manual", []string{"tractor", "machinery", "ट्रैक्टर", "मशीन"}},
	{"First Aid Guidelines", []string{"first aid", "emergency", "प्राथमिक चिकित्सा", "आपातकाल"}},
	{"WHO Pesticide Classification", []string{"who ", "classification", "class i", "class ii"}},
	{"ICAR Guidelines", []string{"icar", "crop", "harvest", "फसल", "कटाई"}},
}

var structurePattern = regexp.MustCompile(`[\n•\-\d+\.]`)

var safetyTerms = []string{
	"PPE", "gloves", "mask", "goggles", "safety",
	"सुरक्षा", "दस्ताने", "मास्क", "चश्मा",
}

// ExtractSources scans a generated answer for known regulatory and advisory
// references. Defaults to the knowledge-base attribution when none match.
func ExtractSources(answer string) []string {
	lower := strings.ToLower(answer)

	var sources []string
	for _, sk := range sourceKeywords {
		for _, t := range sk.Terms {
			if strings.Contains(lower, t) {
				sources = append(sources, sk.Source)
				break
			}
		}
	}

	if len(sources) == 0 {
		return []string{"KrishiRakshak Knowledge Base"}
	}
	return sources
}

// EstimateConfidence scores a generated answer on length, structure, and
// safety vocabulary. Base 0.75, capped at 0.95.
func EstimateConfidence(answer string) float64 {
	score := 0.75

	if len(answer) > 300 {
		score += 0.05
	}
	if len(answer) > 600 {
		score += 0.05
	}

	if structurePattern.MatchString(answer) {
		score += 0.05
	}

	lower := strings.ToLower(answer)
	for _, t := range safetyTerms {
		if strings.Contains(lower, strings.ToLower(t)) {
			score += 0.05
			break
		}
	}

	if score > 0.95 {
		return 0.95
	}
	return score
}
