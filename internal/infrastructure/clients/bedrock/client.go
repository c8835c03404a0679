package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/krishirakshak/backend/internal/answers"
	"github.com/krishirakshak/backend/internal/domain/entities"
	"github.com/krishirakshak/backend/internal/hazard"
	"github.com/krishirakshak/backend/pkg/config"
	apperrors "github.com/krishirakshak/backend/pkg/errors"
)

// Client answers safety questions and interprets hazard labels through
// the Bedrock Converse API.
type Client struct {
	client  converseAPI
	modelID string

	maxTokens int
	timeout   time.Duration
	limiter   *tokenBucket
}

// converseAPI is the slice of bedrockruntime.Client the adapter uses.
type converseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// NewClient creates a new Bedrock client.
func NewClient(ctx context.Context, cfg *config.BedrockConfig) (*Client, error) {
	if cfg == nil || cfg.ModelID == "" {
		return nil, errors.New("bedrock model id is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		client:    bedrockruntime.NewFromConfig(awsCfg),
		modelID:   cfg.ModelID,
		maxTokens: cfg.MaxTokens,
		timeout:   timeout,
		limiter:   newTokenBucket(cfg.RateLimitRPM, cfg.RateLimitBurst),
	}, nil
}

// Close stops the rate limiter's refill goroutine.
func (c *Client) Close() {
	if c.limiter != nil {
		c.limiter.Stop()
	}
}

// Ask sends a safety question to the model and returns the answer with
// extracted sources and an estimated confidence.
func (c *Client) Ask(ctx context.Context, question, language string) (*entities.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, apperrors.NewInputError("question is required")
	}

	langKey := answers.LangKey(language)

	text, err := c.converse(ctx, "ask",
		buildQuestionSystemPrompt(langKey),
		buildQuestionUserMessage(question, langKey),
		langKey,
	)
	if err != nil {
		return nil, err
	}

	return &entities.Answer{
		Question:   question,
		Answer:     text,
		Sources:    answers.ExtractSources(text),
		Confidence: answers.EstimateConfidence(text),
		Language:   langKey,
		Timestamp:  time.Now().UnixMilli(),
	}, nil
}

type hazardPayload struct {
	Type             string `json:"type"`
	Severity         string `json:"severity"`
	Description      string `json:"description"`
	Recommendation   string `json:"recommendation"`
	DescriptionHi    string `json:"description_hi"`
	RecommendationHi string `json:"recommendation_hi"`
}

// InterpretHazards asks the model to turn detected labels into a hazard report.
func (c *Client) InterpretHazards(ctx context.Context, labels []entities.Label, language string) (*entities.HazardReport, error) {
	if len(labels) == 0 {
		return nil, apperrors.NewInputError("labels are required")
	}

	langKey := answers.LangKey(language)

	text, err := c.converse(ctx, "interpret_hazards",
		hazardSystemPrompt,
		buildHazardUserMessage(labels),
		langKey,
	)
	if err != nil {
		return nil, err
	}

	// Clean Markdown code blocks if present
	cleaned := text
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	var payloads []hazardPayload
	if err := json.Unmarshal([]byte(cleaned), &payloads); err != nil {
		return nil, apperrors.NewDataError("failed to parse hazard response", err)
	}

	confidence := bestLabelConfidence(labels)

	hazards := make([]entities.Hazard, 0, len(payloads))
	for _, p := range payloads {
		severity := entities.Severity(strings.ToUpper(p.Severity))
		if severity.Rank() == 0 {
			severity = entities.SeverityLow
		}
		hazards = append(hazards, entities.Hazard{
			ID:               p.Type,
			Type:             p.Type,
			Severity:         severity,
			Confidence:       confidence,
			Description:      p.Description,
			DescriptionHi:    p.DescriptionHi,
			Recommendation:   p.Recommendation,
			RecommendationHi: p.RecommendationHi,
		})
	}

	sort.SliceStable(hazards, func(i, j int) bool {
		return hazards[i].Severity.Rank() > hazards[j].Severity.Rank()
	})

	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}

	return &entities.HazardReport{
		Hazards:        hazards,
		OverallRisk:    hazard.OverallRisk(hazards),
		HazardCount:    len(hazards),
		Confidence:     confidence,
		DetectedLabels: names,
		AnalyzedAt:     time.Now().UTC(),
		Source:         "model",
	}, nil
}

func (c *Client) converse(ctx context.Context, operation, systemPrompt, userMessage, langKey string) (string, error) {
	if c.limiter != nil {
		waitStart := time.Now()
		if err := c.limiter.Wait(ctx); err != nil {
			recordBedrockMetric(ctx, c.modelID, operation, 0, err)
			return "", mapConverseError(err, langKey)
		}
		recordBedrockRateLimitWait(ctx, c.modelID, time.Since(waitStart))
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(c.modelID),
		System: []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: systemPrompt},
		},
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: userMessage},
				},
			},
		},
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(int32(c.maxTokens)),
			Temperature: aws.Float32(0.3),
		},
	}

	start := time.Now()
	resp, err := c.client.Converse(callCtx, input)
	if err != nil {
		recordBedrockMetric(ctx, c.modelID, operation, time.Since(start), err)
		return "", mapConverseError(err, langKey)
	}

	text := extractText(resp)
	if text == "" {
		err := errors.New("bedrock response missing output text")
		recordBedrockMetric(ctx, c.modelID, operation, time.Since(start), err)
		return "", apperrors.NewDataError(genericMessage(langKey), err)
	}

	recordBedrockMetric(ctx, c.modelID, operation, time.Since(start), nil)
	return strings.TrimSpace(text), nil
}

func extractText(resp *bedrockruntime.ConverseOutput) string {
	message, ok := resp.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return ""
	}
	for _, block := range message.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok && text.Value != "" {
			return text.Value
		}
	}
	return ""
}

func bestLabelConfidence(labels []entities.Label) float64 {
	best := 0.0
	for _, l := range labels {
		if l.Confidence > best {
			best = l.Confidence
		}
	}
	if best <= 0 {
		return 0.7
	}
	confidence := math.Round(best) / 100
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}

var errorMessages = map[string]map[string]string{
	"throttled": {
		"hi": "बहुत अधिक अनुरोध हो रहे हैं। कृपया कुछ सेकंड बाद पुनः प्रयास करें।",
		"en": "Too many requests. Please try again in a few seconds.",
	},
	"access_denied": {
		"hi": "सेवा अस्थायी रूप से अनुपलब्ध है। कृपया बाद में प्रयास करें।",
		"en": "Service temporarily unavailable. Please try again later.",
	},
	"validation": {
		"hi": "अमान्य अनुरोध। कृपया अपना प्रश्न जांचें।",
		"en": "Invalid request. Please check your question.",
	},
	"network": {
		"hi": "नेटवर्क से कनेक्ट नहीं हो पा रहा है। कृपया अपना इंटरनेट कनेक्शन जांचें।",
		"en": "Cannot reach the network. Please check your internet connection.",
	},
	"timeout": {
		"hi": "उत्तर में अधिक समय लग रहा है। कृपया पुनः प्रयास करें।",
		"en": "The answer is taking too long. Please try again.",
	},
	"generic": {
		"hi": "क्षमा करें, उत्तर प्राप्त करने में समस्या हुई। कृपया पुनः प्रयास करें।",
		"en": "Sorry, there was a problem getting the answer. Please try again.",
	},
}

func localizedMessage(kind, langKey string) string {
	messages, ok := errorMessages[kind]
	if !ok {
		messages = errorMessages["generic"]
	}
	if msg, ok := messages[langKey]; ok {
		return msg
	}
	return messages["en"]
}

func genericMessage(langKey string) string {
	return localizedMessage("generic", langKey)
}

func mapConverseError(err error, langKey string) error {
	var throttling *types.ThrottlingException
	if errors.As(err, &throttling) {
		return apperrors.NewRemoteThrottledError(localizedMessage("throttled", langKey), err)
	}

	var accessDenied *types.AccessDeniedException
	if errors.As(err, &accessDenied) {
		return apperrors.NewRemoteAccessDeniedError(localizedMessage("access_denied", langKey), err)
	}

	var validation *types.ValidationException
	if errors.As(err, &validation) {
		return apperrors.NewRemoteValidationError(localizedMessage("validation", langKey), err)
	}

	var modelTimeout *types.ModelTimeoutException
	if errors.As(err, &modelTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewRemoteTimeoutError(localizedMessage("timeout", langKey), err)
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return apperrors.NewRemoteTimeoutError(localizedMessage("timeout", langKey), err)
		}
		return apperrors.NewRemoteNetworkError(localizedMessage("network", langKey), err)
	}

	return apperrors.NewRemoteGenericError(localizedMessage("generic", langKey), err)
}

func newTokenBucket(rpm int, burst int) *tokenBucket {
	if rpm == 0 {
		rpm = 60
	}
	if rpm < 0 {
		return nil
	}
	if burst <= 0 {
		burst = 5
	}
	return newTokenBucketWithRate(rpm, burst)
}

type tokenBucket struct {
	tokens   chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

func newTokenBucketWithRate(rpm int, burst int) *tokenBucket {
	bucket := &tokenBucket{
		tokens: make(chan struct{}, burst),
		stop:   make(chan struct{}),
	}

	for i := 0; i < burst; i++ {
		bucket.tokens <- struct{}{}
	}

	interval := time.Minute / time.Duration(rpm)
	if interval <= 0 {
		interval = time.Millisecond
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-bucket.stop:
				return
			case <-ticker.C:
				select {
				case bucket.tokens <- struct{}{}:
				default:
				}
			}
		}
	}()

	return bucket
}

func (b *tokenBucket) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.tokens:
		return nil
	}
}

// Stop ends the refill goroutine and releases its ticker.
func (b *tokenBucket) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
}

type bedrockClientMetrics struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestErrors   metric.Int64Counter
	rateLimitWait   metric.Float64Histogram
}

var bedrockMetricsInit = false
var bedrockMetrics bedrockClientMetrics

func ensureBedrockMetrics() {
	if bedrockMetricsInit {
		return
	}
	meter := otel.Meter("github.com/krishirakshak/backend/bedrock")

	requestCount, err := meter.Int64Counter(
		"ai.bedrock.request.count",
		metric.WithDescription("Number of Bedrock requests"),
	)
	if err != nil {
		return
	}
	requestDuration, err := meter.Float64Histogram(
		"ai.bedrock.request.duration",
		metric.WithDescription("Bedrock request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return
	}
	requestErrors, err := meter.Int64Counter(
		"ai.bedrock.request.errors",
		metric.WithDescription("Number of Bedrock request errors"),
	)
	if err != nil {
		return
	}
	rateLimitWait, err := meter.Float64Histogram(
		"ai.bedrock.rate_limit.wait",
		metric.WithDescription("Time spent waiting for Bedrock rate limiter in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return
	}

	bedrockMetrics = bedrockClientMetrics{
		requestCount:    requestCount,
		requestDuration: requestDuration,
		requestErrors:   requestErrors,
		rateLimitWait:   rateLimitWait,
	}
	bedrockMetricsInit = true
}

func recordBedrockMetric(ctx context.Context, model, operation string, duration time.Duration, err error) {
	ensureBedrockMetrics()
	if !bedrockMetricsInit {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("ai.provider", "bedrock"),
		attribute.String("ai.model", model),
		attribute.String("ai.operation", operation),
	}

	bedrockMetrics.requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	bedrockMetrics.requestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if err != nil {
		bedrockMetrics.requestErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

func recordBedrockRateLimitWait(ctx context.Context, model string, wait time.Duration) {
	ensureBedrockMetrics()
	if !bedrockMetricsInit {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("ai.provider", "bedrock"),
		attribute.String("ai.model", model),
	}
	bedrockMetrics.rateLimitWait.Record(ctx, float64(wait.Milliseconds()), metric.WithAttributes(attrs...))
}
