package answers

import (
	"strings"
	"time"

	"github.com/krishirakshak/backend/internal/domain/entities"
)

// LangKey normalizes a language tag to a table key: tags starting with "hi"
// map to "hi", everything else to "en".
func LangKey(language string) string {
	if strings.HasPrefix(strings.ToLower(language), "hi") {
		return "hi"
	}
	return "en"
}

// FindAnswer scores every record in the language's table by the number of
// keywords contained in the question and returns the highest scorer. Later
// records win only with a strictly greater score, so table order breaks
// ties. The fallback record is returned when nothing scores.
func FindAnswer(question, language string) *entities.Answer {
	langKey := LangKey(language)
	records, ok := answerTables[langKey]
	if !ok {
		records = answerTables["en"]
	}

	q := strings.ToLower(question)

	var best *entities.AnswerRecord
	bestScore := 0

	for i := range records {
		score := 0
		for _, kw := range records[i].Keywords {
			if strings.Contains(q, strings.ToLower(kw)) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = &records[i]
		}
	}

	if best == nil {
		fb, ok := fallbackAnswers[langKey]
		if !ok {
			fb = fallbackAnswers["en"]
		}
		best = &fb
	}

	return &entities.Answer{
		Question:   question,
		Answer:     best.Answer,
		Sources:    best.Sources,
		Confidence: best.Confidence,
		Language:   langKey,
		Timestamp:  time.Now().UnixMilli(),
	}
}

// SampleQuestions returns the quick-question suggestions for a language tag.
func SampleQuestions(language string) []string {
	if qs, ok := sampleQuestions[LangKey(language)]; ok {
		return qs
	}
	return sampleQuestions["en"]
}
