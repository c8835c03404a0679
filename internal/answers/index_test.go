package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLangKey(t *testing.T) {
	assert.Equal(t, "hi", LangKey("hi-IN"))
	assert.Equal(t, "hi", LangKey("HI"))
	assert.Equal(t, "en", LangKey("en-IN"))
	assert.Equal(t, "en", LangKey(""))
	assert.Equal(t, "en", LangKey("fr"))
}

func TestFindAnswer_KeywordScoring(t *testing.T) {
	got := FindAnswer("How do I spray pesticide safely on my crop?", "en-IN")

	assert.Contains(t, got.Answer, "Pesticide Safety Guidelines")
	assert.Equal(t, 0.95, got.Confidence)
	assert.Equal(t, "en", got.Language)
	assert.NotEmpty(t, got.Sources)
	assert.False(t, got.IsError)
}

func TestFindAnswer_HigherScoreWins(t *testing.T) {
	// Two tractor keywords beat the single "machinery" hit in the
	// maintenance entry.
	got := FindAnswer("tractor and harvester machinery safety", "en")

	assert.Contains(t, got.Answer, "Tractor Safety Rules")
}

func TestFindAnswer_TieBreaksOnTableOrder(t *testing.T) {
	// "crop" matches both the harvesting and ICAR-related entries with one
	// keyword each; the earlier table entry must win.
	got := FindAnswer("crop", "en")

	assert.Contains(t, got.Answer, "Harvesting Safety")
}

func TestFindAnswer_HindiTable(t *testing.T) {
	got := FindAnswer("कीटनाशक का छिड़काव कैसे करें?", "hi-IN")

	assert.Contains(t, got.Answer, "कीटनाशक छिड़काव के लिए सुरक्षा नियम")
	assert.Equal(t, "hi", got.Language)
}

func TestFindAnswer_FallbackWhenNothingMatches(t *testing.T) {
	got := FindAnswer("what is the meaning of life", "en")

	assert.Contains(t, got.Answer, "general farm safety tips")
	assert.Equal(t, 0.6, got.Confidence)
}

func TestIsGreeting(t *testing.T) {
	assert.True(t, IsGreeting("hello"))
	assert.True(t, IsGreeting("Namaste!"))
	assert.True(t, IsGreeting("  नमस्ते  "))
	assert.True(t, IsGreeting("hi!!"))
	assert.False(t, IsGreeting("hello, how do I spray pesticide?"))
	assert.False(t, IsGreeting("highway safety"))
}

func TestGreetingAnswer(t *testing.T) {
	got := GreetingAnswer("नमस्ते", "hi-IN")

	assert.Contains(t, got.Answer, "KrishiRakshak")
	assert.Equal(t, []string{"KrishiRakshak"}, got.Sources)
	assert.Equal(t, 1.0, got.Confidence)
	assert.Equal(t, "hi", got.Language)
}

func TestExtractSources(t *testing.T) {
	sources := ExtractSources("Always wear PPE when handling pesticide near the tractor.")

	assert.Contains(t, sources, "Insecticides Act 1968")
	assert.Contains(t, sources, "BIS Safety Standards")
	assert.Contains(t, sources, "Agricultural Safety Manual")
}

func TestExtractSources_Default(t *testing.T) {
	assert.Equal(t, []string{"KrishiRakshak Knowledge Base"}, ExtractSources("Drink more fluids."))
}

func TestEstimateConfidence(t *testing.T) {
	// Short unstructured text without safety vocabulary stays at base.
	assert.Equal(t, 0.75, EstimateConfidence("ok"))

	// Structure and safety terms each add 0.05.
	assert.InDelta(t, 0.85, EstimateConfidence("1. Wear gloves\n2. Wash hands"), 1e-9)
}

func TestEstimateConfidence_Capped(t *testing.T) {
	long := make([]byte, 0, 700)
	for i := 0; i < 70; i++ {
		long = append(long, []byte("1. safety\n")...)
	}
	assert.Equal(t, 0.95, EstimateConfidence(string(long)))
}

func TestSampleQuestions(t *testing.T) {
	assert.Len(t, SampleQuestions("hi-IN"), 5)
	assert.Contains(t, SampleQuestions("en"), "How to spray pesticides safely?")
}
