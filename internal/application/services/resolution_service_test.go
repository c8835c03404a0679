package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/krishirakshak/backend/internal/adapters/cache"
	"github.com/krishirakshak/backend/internal/domain/entities"
	"github.com/krishirakshak/backend/internal/offline"
	apperrors "github.com/krishirakshak/backend/pkg/errors"
	"github.com/krishirakshak/backend/pkg/retry"
)

type stubAnswerProvider struct {
	answer *entities.Answer
	errs   []error
	calls  int
}

func (s *stubAnswerProvider) Ask(ctx context.Context, question, language string) (*entities.Answer, error) {
	s.calls++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	if s.answer != nil {
		return s.answer, nil
	}
	return &entities.Answer{
		Question:   question,
		Answer:     "Wear gloves and a mask.",
		Sources:    []string{"KrishiRakshak Knowledge Base"},
		Confidence: 0.8,
		Language:   language,
		Timestamp:  time.Now().UnixMilli(),
	}, nil
}

func fastRetryConfig() retry.Config {
	return retry.Config{
		MaxAttempts:     3,
		InitialDelay:    time.Millisecond,
		MaxDelay:        5 * time.Millisecond,
		BackoffFactor:   2.0,
		MaxTotalTimeout: time.Second,
	}
}

func newTestStore() *offline.Store {
	return offline.NewStore(cache.NewMemoryAdapter(), offline.DefaultStoreConfig())
}

func TestResolve_GreetingShortCircuits(t *testing.T) {
	provider := &stubAnswerProvider{}
	service := NewResolutionService(provider, newTestStore(), nil, fastRetryConfig(), false)

	answer, err := service.Resolve(context.Background(), "Namaste!", "hi", false)

	assert.NoError(t, err)
	assert.Equal(t, 0, provider.calls)
	assert.Equal(t, float64(1), answer.Confidence)
	assert.Contains(t, answer.Answer, "KrishiRakshak")
}

func TestResolve_EmptyQuestionIsInputError(t *testing.T) {
	service := NewResolutionService(&stubAnswerProvider{}, newTestStore(), nil, fastRetryConfig(), false)

	_, err := service.Resolve(context.Background(), "   ", "en", false)

	assert.Equal(t, apperrors.ErrorTypeInput, apperrors.TypeOf(err))
}

func TestResolve_OverlongQuestionIsInputError(t *testing.T) {
	service := NewResolutionService(&stubAnswerProvider{}, newTestStore(), nil, fastRetryConfig(), false)

	_, err := service.Resolve(context.Background(), strings.Repeat("a", 1001), "en", false)

	assert.Equal(t, apperrors.ErrorTypeInput, apperrors.TypeOf(err))
}

func TestResolve_OnlineQuestionBypassesCache(t *testing.T) {
	store := newTestStore()
	err := store.Put(context.Background(), "How to store pesticide safely", "Keep it locked away from food.", "en", []string{"Insecticides Act 1968"}, 0.9)
	assert.NoError(t, err)

	provider := &stubAnswerProvider{}
	service := NewResolutionService(provider, store, nil, fastRetryConfig(), false)

	// A similar question would match the cache by word overlap, but online
	// resolution always asks the remote model for a fresh answer.
	answer, err := service.Resolve(context.Background(), "where to store pesticide bottles safely", "en", false)

	assert.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.False(t, answer.FromCache)
	assert.NotEqual(t, "Keep it locked away from food.", answer.Answer)
}

func TestResolve_OfflineCacheHitByWordOverlap(t *testing.T) {
	store := newTestStore()
	err := store.Put(context.Background(), "How to store pesticide safely", "Keep it locked away from food.", "en", []string{"Insecticides Act 1968"}, 0.9)
	assert.NoError(t, err)

	provider := &stubAnswerProvider{}
	service := NewResolutionService(provider, store, nil, fastRetryConfig(), false)

	answer, err := service.Resolve(context.Background(), "where to store pesticide bottles safely", "en", true)

	assert.NoError(t, err)
	assert.Equal(t, 0, provider.calls)
	assert.True(t, answer.FromCache)
	assert.True(t, answer.IsOffline)
	assert.Equal(t, "Keep it locked away from food.", answer.Answer)
}

func TestResolve_OfflineMissYieldsErrorAnswer(t *testing.T) {
	provider := &stubAnswerProvider{}
	service := NewResolutionService(provider, newTestStore(), nil, fastRetryConfig(), false)

	answer, err := service.Resolve(context.Background(), "something nobody cached before", "hi", true)

	assert.NoError(t, err)
	assert.Equal(t, 0, provider.calls)
	assert.True(t, answer.IsOffline)
	assert.True(t, answer.IsError)
	assert.Equal(t, float64(0), answer.Confidence)
	assert.Contains(t, answer.Answer, "ऑफ़लाइन")
}

func TestResolve_OfflineCacheHitIsServed(t *testing.T) {
	store := newTestStore()
	err := store.Put(context.Background(), "tractor brake check routine", "Check brake fluid weekly.", "en", nil, 0.85)
	assert.NoError(t, err)

	service := NewResolutionService(&stubAnswerProvider{}, store, nil, fastRetryConfig(), false)

	answer, err := service.Resolve(context.Background(), "tractor brake check routine", "en", true)

	assert.NoError(t, err)
	assert.True(t, answer.FromCache)
	assert.True(t, answer.IsOffline)
	assert.False(t, answer.IsError)
}

func TestResolve_DemoModeUsesCuratedTable(t *testing.T) {
	provider := &stubAnswerProvider{}
	service := NewResolutionService(provider, newTestStore(), nil, fastRetryConfig(), true)

	answer, err := service.Resolve(context.Background(), "pesticide spray precautions", "en", false)

	assert.NoError(t, err)
	assert.Equal(t, 0, provider.calls)
	assert.NotEmpty(t, answer.Answer)
}

func TestResolve_NilProviderUsesCuratedTable(t *testing.T) {
	service := NewResolutionService(nil, newTestStore(), nil, fastRetryConfig(), false)

	answer, err := service.Resolve(context.Background(), "pesticide spray precautions", "en", false)

	assert.NoError(t, err)
	assert.NotEmpty(t, answer.Answer)
}

func TestResolve_RemoteAnswerIsCached(t *testing.T) {
	store := newTestStore()
	provider := &stubAnswerProvider{}
	service := NewResolutionService(provider, store, nil, fastRetryConfig(), false)

	answer, err := service.Resolve(context.Background(), "snake bite first aid in the field", "en", false)

	assert.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.False(t, answer.FromCache)

	cached, err := store.Search(context.Background(), "snake bite first aid in the field")
	assert.NoError(t, err)
	assert.NotNil(t, cached)
	assert.Equal(t, answer.Answer, cached.Answer)
}

func TestResolve_TransientErrorIsRetried(t *testing.T) {
	provider := &stubAnswerProvider{
		errs: []error{apperrors.NewRemoteTimeoutError("slow", nil), nil},
	}
	service := NewResolutionService(provider, newTestStore(), nil, fastRetryConfig(), false)

	answer, err := service.Resolve(context.Background(), "heat stroke symptoms while harvesting", "en", false)

	assert.NoError(t, err)
	assert.Equal(t, 2, provider.calls)
	assert.False(t, answer.IsError)
}

func TestResolve_AccessDeniedYieldsErrorAnswerWithoutRetry(t *testing.T) {
	provider := &stubAnswerProvider{
		errs: []error{
			apperrors.NewRemoteAccessDeniedError("Service temporarily unavailable. Please try again later.", nil),
			apperrors.NewRemoteAccessDeniedError("Service temporarily unavailable. Please try again later.", nil),
		},
	}
	service := NewResolutionService(provider, newTestStore(), nil, fastRetryConfig(), false)

	answer, err := service.Resolve(context.Background(), "pesticide spray precautions", "en", false)

	assert.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.True(t, answer.IsError)
	assert.Equal(t, float64(0), answer.Confidence)
	assert.Empty(t, answer.Sources)
	assert.Equal(t, "Service temporarily unavailable. Please try again later.", answer.Answer)
}

func TestResolve_RetriesExhaustedYieldErrorAnswer(t *testing.T) {
	provider := &stubAnswerProvider{
		errs: []error{
			apperrors.NewRemoteTimeoutError("The answer is taking too long. Please try again.", nil),
			apperrors.NewRemoteTimeoutError("The answer is taking too long. Please try again.", nil),
			apperrors.NewRemoteTimeoutError("The answer is taking too long. Please try again.", nil),
		},
	}
	service := NewResolutionService(provider, newTestStore(), nil, fastRetryConfig(), false)

	answer, err := service.Resolve(context.Background(), "pesticide spray precautions", "en", false)

	assert.NoError(t, err)
	assert.Equal(t, 3, provider.calls)
	assert.True(t, answer.IsError)
	assert.False(t, answer.IsOffline)
	assert.Equal(t, float64(0), answer.Confidence)
	assert.Empty(t, answer.Sources)
	assert.Equal(t, "The answer is taking too long. Please try again.", answer.Answer)
}

func TestResolve_ValidationErrorPropagates(t *testing.T) {
	provider := &stubAnswerProvider{
		errs: []error{apperrors.NewRemoteValidationError("bad request", nil)},
	}
	service := NewResolutionService(provider, newTestStore(), nil, fastRetryConfig(), false)

	_, err := service.Resolve(context.Background(), "some question about crops", "en", false)

	assert.Equal(t, apperrors.ErrorTypeRemoteValidation, apperrors.TypeOf(err))
}

func TestResolve_CancelledContextDoesNotFallBack(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &stubAnswerProvider{
		errs: []error{apperrors.NewRemoteTimeoutError("slow", context.Canceled)},
	}
	store := newTestStore()
	service := NewResolutionService(provider, store, nil, fastRetryConfig(), false)

	_, err := service.Resolve(ctx, "a question that will be cancelled", "en", false)

	assert.Error(t, err)

	cached, searchErr := store.Search(context.Background(), "a question that will be cancelled")
	assert.NoError(t, searchErr)
	assert.Nil(t, cached)
}
