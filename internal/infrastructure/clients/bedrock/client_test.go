package bedrock

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/stretchr/testify/assert"

	"github.com/krishirakshak/backend/internal/domain/entities"
	apperrors "github.com/krishirakshak/backend/pkg/errors"
)

type stubConverse struct {
	resp      *bedrockruntime.ConverseOutput
	err       error
	lastInput *bedrockruntime.ConverseInput
}

func (s *stubConverse) Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error) {
	s.lastInput = params
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func textOutput(text string) *bedrockruntime.ConverseOutput {
	return &bedrockruntime.ConverseOutput{
		Output: &types.ConverseOutputMemberMessage{
			Value: types.Message{
				Role: types.ConversationRoleAssistant,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: text},
				},
			},
		},
	}
}

func newTestClient(stub *stubConverse) *Client {
	return &Client{
		client:    stub,
		modelID:   "apac.amazon.nova-lite-v1:0",
		maxTokens: 500,
		timeout:   5 * time.Second,
	}
}

func TestAsk_ReturnsAnswerWithSourcesAndConfidence(t *testing.T) {
	stub := &stubConverse{resp: textOutput(
		"Always wear gloves and a mask when spraying pesticide. " +
			"The Insecticides Act requires label instructions to be followed.",
	)}
	client := newTestClient(stub)

	answer, err := client.Ask(context.Background(), "How do I spray pesticide safely?", "en")

	assert.NoError(t, err)
	assert.Equal(t, "en", answer.Language)
	assert.Contains(t, answer.Answer, "gloves")
	assert.Contains(t, answer.Sources, "Insecticides Act 1968")
	assert.GreaterOrEqual(t, answer.Confidence, 0.75)
	assert.NotZero(t, answer.Timestamp)
}

func TestAsk_HindiQuestionGetsHindiInstruction(t *testing.T) {
	stub := &stubConverse{resp: textOutput("कीटनाशक छिड़कते समय दस्ताने पहनें।")}
	client := newTestClient(stub)

	_, err := client.Ask(context.Background(), "कीटनाशक कैसे छिड़कें?", "hi")

	assert.NoError(t, err)
	system, ok := stub.lastInput.System[0].(*types.SystemContentBlockMemberText)
	assert.True(t, ok)
	assert.Contains(t, system.Value, "Respond ONLY in Hindi")
}

func TestAsk_EmptyQuestionIsInputError(t *testing.T) {
	client := newTestClient(&stubConverse{})

	_, err := client.Ask(context.Background(), "   ", "en")

	assert.Equal(t, apperrors.ErrorTypeInput, apperrors.TypeOf(err))
}

func TestAsk_ThrottlingMapsToThrottledError(t *testing.T) {
	stub := &stubConverse{err: &types.ThrottlingException{}}
	client := newTestClient(stub)

	_, err := client.Ask(context.Background(), "tractor safety", "en")

	assert.Equal(t, apperrors.ErrorTypeRemoteThrottled, apperrors.TypeOf(err))
	assert.True(t, apperrors.IsRetryable(err))
}

func TestAsk_AccessDeniedIsNotRetryable(t *testing.T) {
	stub := &stubConverse{err: &types.AccessDeniedException{}}
	client := newTestClient(stub)

	_, err := client.Ask(context.Background(), "tractor safety", "hi")

	assert.Equal(t, apperrors.ErrorTypeRemoteAccessDenied, apperrors.TypeOf(err))
	assert.False(t, apperrors.IsRetryable(err))

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "सेवा")
}

func TestAsk_ConnectionFailureMapsToNetworkError(t *testing.T) {
	stub := &stubConverse{err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}}
	client := newTestClient(stub)

	_, err := client.Ask(context.Background(), "tractor safety", "en")

	assert.Equal(t, apperrors.ErrorTypeRemoteNetwork, apperrors.TypeOf(err))
	assert.True(t, apperrors.IsRetryable(err))

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "network")
}

func TestClient_CloseStopsRateLimiter(t *testing.T) {
	client := newTestClient(&stubConverse{resp: textOutput("ok")})
	client.limiter = newTokenBucket(600, 2)

	_, err := client.Ask(context.Background(), "tractor safety", "en")
	assert.NoError(t, err)

	client.Close()
	client.Close()
}

func TestInterpretHazards_ParsesFencedJSON(t *testing.T) {
	stub := &stubConverse{resp: textOutput("```json\n[\n" +
		`{"type":"exposed_wiring","severity":"CRITICAL","description":"Exposed wiring near the pump.","recommendation":"Turn off power and call an electrician.","description_hi":"पंप के पास खुली तारें।","recommendation_hi":"बिजली बंद करें और इलेक्ट्रीशियन को बुलाएं।"},` + "\n" +
		`{"type":"slippery_surface","severity":"MEDIUM","description":"Wet floor around the pump.","recommendation":"Dry the area and wear boots.","description_hi":"पंप के आसपास गीला फर्श।","recommendation_hi":"क्षेत्र सुखाएं और जूते पहनें।"}` +
		"\n]\n```")}
	client := newTestClient(stub)

	labels := []entities.Label{
		{Name: "Wire", Confidence: 91.2},
		{Name: "Water", Confidence: 88.0},
	}
	report, err := client.InterpretHazards(context.Background(), labels, "en")

	assert.NoError(t, err)
	assert.Equal(t, 2, report.HazardCount)
	assert.Equal(t, "exposed_wiring", report.Hazards[0].ID)
	assert.Equal(t, entities.SeverityCritical, report.Hazards[0].Severity)
	assert.Equal(t, entities.SeverityCritical, report.OverallRisk)
	assert.Equal(t, 0.91, report.Confidence)
	assert.Equal(t, []string{"Wire", "Water"}, report.DetectedLabels)
	assert.Equal(t, "model", report.Source)
}

func TestInterpretHazards_BadJSONIsDataError(t *testing.T) {
	stub := &stubConverse{resp: textOutput("the scene looks mostly safe")}
	client := newTestClient(stub)

	_, err := client.InterpretHazards(context.Background(), []entities.Label{{Name: "Field", Confidence: 80}}, "en")

	assert.Equal(t, apperrors.ErrorTypeData, apperrors.TypeOf(err))
	assert.True(t, apperrors.IsRetryable(err))
}

func TestInterpretHazards_SortsBySeverity(t *testing.T) {
	stub := &stubConverse{resp: textOutput(
		`[{"type":"minor_rust","severity":"LOW","description":"Rust on a gate.","recommendation":"Sand and repaint.","description_hi":"गेट पर जंग।","recommendation_hi":"रेत लगाकर पेंट करें।"},` +
			`{"type":"fuel_leak","severity":"HIGH","description":"Fuel leaking from the tank.","recommendation":"Stop the engine and repair the leak.","description_hi":"टैंक से ईंधन रिस रहा है।","recommendation_hi":"इंजन बंद करें और रिसाव ठीक करें।"}]`)}
	client := newTestClient(stub)

	report, err := client.InterpretHazards(context.Background(), []entities.Label{{Name: "Tractor", Confidence: 85}}, "en")

	assert.NoError(t, err)
	assert.Equal(t, "fuel_leak", report.Hazards[0].ID)
	assert.Equal(t, "minor_rust", report.Hazards[1].ID)
}
