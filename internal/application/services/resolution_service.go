package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/krishirakshak/backend/internal/answers"
	"github.com/krishirakshak/backend/internal/domain/entities"
	"github.com/krishirakshak/backend/internal/domain/providers"
	"github.com/krishirakshak/backend/internal/infrastructure/observability"
	"github.com/krishirakshak/backend/internal/offline"
	apperrors "github.com/krishirakshak/backend/pkg/errors"
	"github.com/krishirakshak/backend/pkg/retry"
)

const maxQuestionLen = 1000

var offlineNoMatchMessages = map[string]string{
	"hi": "आप ऑफ़लाइन हैं और इस प्रश्न का कोई सहेजा हुआ उत्तर नहीं मिला। इंटरनेट से जुड़ने के बाद पुनः प्रयास करें।",
	"en": "You are offline and no saved answer matches this question. Please try again once you are connected.",
}

var remoteFailureMessages = map[string]string{
	"hi": "क्षमा करें, अभी उत्तर प्राप्त नहीं हो सका। कृपया कुछ देर बाद पुनः प्रयास करें।",
	"en": "Sorry, an answer could not be fetched right now. Please try again later.",
}

// ResolutionService resolves a safety question: greetings answer locally,
// offline requests are served from the cache, everything else goes to the
// remote model (or the curated table in demo mode).
type ResolutionService struct {
	provider providers.AnswerProvider
	store    *offline.Store
	metrics  *observability.Metrics
	retryCfg retry.Config
	demoMode bool
}

// NewResolutionService creates a new resolution service. provider may be nil,
// in which case every question is answered from the curated table.
func NewResolutionService(provider providers.AnswerProvider, store *offline.Store, metrics *observability.Metrics, retryCfg retry.Config, demoMode bool) *ResolutionService {
	return &ResolutionService{
		provider: provider,
		store:    store,
		metrics:  metrics,
		retryCfg: retryCfg,
		demoMode: demoMode,
	}
}

// Resolve answers a question. Offline requests are served from the local
// cache only; online requests go to the remote model (or the curated table
// in demo mode).
func (s *ResolutionService) Resolve(ctx context.Context, question, language string, offlineMode bool) (*entities.Answer, error) {
	logger := observability.LoggerFromContext(ctx)

	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return nil, apperrors.NewInputError("question is required")
	}
	if len([]rune(trimmed)) > maxQuestionLen {
		return nil, apperrors.NewInputError("question is too long (max 1000 characters)")
	}

	if answers.IsGreeting(trimmed) {
		return answers.GreetingAnswer(trimmed, language), nil
	}

	if offlineMode {
		if cached := s.searchCache(ctx, trimmed); cached != nil {
			cached.IsOffline = true
			return cached, nil
		}
		offlineErr := apperrors.NewOfflineNoMatchError()
		logger.Info().Str("error_type", string(offlineErr.Type)).Msg("Offline request with no cached answer")
		return errorAnswer(trimmed, language, offlineErr), nil
	}

	if s.demoMode || s.provider == nil {
		return answers.FindAnswer(trimmed, language), nil
	}

	answer, err := s.askRemote(ctx, trimmed, language)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		switch apperrors.TypeOf(err) {
		case apperrors.ErrorTypeInput, apperrors.ErrorTypeRemoteValidation:
			return nil, err
		}
		logger.Warn().Err(err).Msg("Remote answer failed")
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			appErr = apperrors.NewRemoteGenericError("", err)
		}
		return errorAnswer(trimmed, language, appErr), nil
	}

	s.cacheAnswer(ctx, answer)
	return answer, nil
}

func (s *ResolutionService) searchCache(ctx context.Context, question string) *entities.Answer {
	if s.store == nil {
		return nil
	}

	logger := observability.LoggerFromContext(ctx)

	entry, err := s.store.Search(ctx, question)
	if err != nil {
		logger.Warn().Err(err).Msg("Cache search failed")
		return nil
	}
	if entry == nil {
		if s.metrics != nil {
			observability.RecordCacheMiss(ctx, s.metrics, "qa")
		}
		return nil
	}

	if s.metrics != nil {
		observability.RecordCacheHit(ctx, s.metrics, "qa")
	}

	return &entities.Answer{
		Question:   question,
		Answer:     entry.Answer,
		Sources:    entry.Sources,
		Confidence: entry.Confidence,
		Language:   entry.Language,
		FromCache:  true,
		Timestamp:  time.Now().UnixMilli(),
	}
}

func (s *ResolutionService) askRemote(ctx context.Context, question, language string) (*entities.Answer, error) {
	logger := observability.LoggerFromContext(ctx)

	var answer *entities.Answer
	start := time.Now()
	err := retry.DoWithLog(
		ctx,
		s.retryCfg,
		"Bedrock",
		func() error {
			a, err := s.provider.Ask(ctx, question, language)
			if err != nil {
				if !apperrors.IsRetryable(err) {
					return retry.Permanent(err)
				}
				return err
			}
			answer = a
			return nil
		},
		func(attempt int, err error, nextDelay time.Duration) {
			logger.Warn().
				Int("attempt", attempt).
				Dur("next_delay", nextDelay).
				Err(err).
				Msg("Remote answer attempt failed, retrying")
		},
	)

	if s.metrics != nil {
		observability.RecordModelMetric(ctx, s.metrics, "bedrock", "ask", err == nil, time.Since(start))
	}

	if err != nil {
		return nil, err
	}
	return answer, nil
}

// cacheAnswer writes a successful remote answer through to the offline cache.
// Skipped when the request was cancelled so a partial response never lands.
func (s *ResolutionService) cacheAnswer(ctx context.Context, answer *entities.Answer) {
	if s.store == nil || ctx.Err() != nil {
		return
	}
	if err := s.store.Put(ctx, answer.Question, answer.Answer, answer.Language, answer.Sources, answer.Confidence); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Failed to cache answer")
	}
}

// errorAnswer normalizes a failure into the regular answer shape, so every
// resolution path hands the caller the same structure. The message is the
// already-localized AppError message; offline misses and messageless errors
// get a localized fixed text.
func errorAnswer(question, language string, appErr *apperrors.AppError) *entities.Answer {
	langKey := answers.LangKey(language)
	offline := appErr.Type == apperrors.ErrorTypeOfflineNoMatch

	text := appErr.Message
	if offline {
		text = localized(offlineNoMatchMessages, langKey)
	} else if text == "" {
		text = localized(remoteFailureMessages, langKey)
	}

	return &entities.Answer{
		Question:   question,
		Answer:     text,
		Sources:    []string{},
		Confidence: 0,
		Language:   langKey,
		IsOffline:  offline,
		IsError:    true,
		Timestamp:  time.Now().UnixMilli(),
	}
}

func localized(messages map[string]string, langKey string) string {
	if msg, ok := messages[langKey]; ok {
		return msg
	}
	return messages["en"]
}
