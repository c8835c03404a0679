package answers

import (
	"regexp"
	"strings"
	"time"

	"github.com/krishirakshak/backend/internal/domain/entities"
)

// greetingPattern matches short salutations so they can be answered locally
// without a remote call.
var greetingPattern = regexp.MustCompile(`(?i)^(hello|hi|hey|namaste|namaskar|हेलो|हाय|नमस्ते|नमस्कार|राम राम|जय हिन्द)\s*[!?.]*$`)

var greetingResponses = map[string]string{
	"hi": "नमस्ते! मैं KrishiRakshak हूँ — आपका कृषि सुरक्षा सहायक। आप मुझसे खेती से जुड़े सुरक्षा के सवाल पूछ सकते हैं। जैसे:\n- कीटनाशक का सुरक्षित उपयोग कैसे करें?\n- ट्रैक्टर चलाते समय क्या सावधानी रखें?\n- गर्मी में खेत में काम करने के टिप्स",
	"en": "Hello! I am KrishiRakshak — your agricultural safety assistant. You can ask me safety questions about farming. For example:\n- How to safely use pesticides?\n- What precautions to take while operating a tractor?\n- Tips for working in the field during hot weather",
}

// IsGreeting reports whether the question is a bare salutation.
func IsGreeting(question string) bool {
	return greetingPattern.MatchString(strings.TrimSpace(question))
}

// GreetingAnswer builds the local greeting response for a language tag.
func GreetingAnswer(question, language string) *entities.Answer {
	langKey := LangKey(language)
	text, ok := greetingResponses[langKey]
	if !ok {
		text = greetingResponses["en"]
	}
	return &entities.Answer{
		Question:   question,
		Answer:     text,
		Sources:    []string{"KrishiRakshak"},
		Confidence: 1,
		Language:   langKey,
		Timestamp:  time.Now().UnixMilli(),
	}
}
