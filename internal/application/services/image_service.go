package services

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/krishirakshak/backend/internal/domain/entities"
	"github.com/krishirakshak/backend/internal/domain/providers"
	"github.com/krishirakshak/backend/internal/hazard"
	"github.com/krishirakshak/backend/internal/infrastructure/observability"
	"github.com/krishirakshak/backend/internal/offline"
	apperrors "github.com/krishirakshak/backend/pkg/errors"
	"github.com/krishirakshak/backend/pkg/retry"
)

const (
	maxImageBytes = 5 * 1024 * 1024
	minImageBytes = 100
)

// ImageService analyzes farm photos for safety hazards. Labels come from the
// vision backend; interpretation is tried on the remote model first and falls
// back to the local rule dictionary.
type ImageService struct {
	vision      providers.VisionProvider
	interpreter providers.HazardInterpreter
	matcher     *hazard.Matcher
	demo        *hazard.DemoGenerator
	history     *offline.HazardHistory
	metrics     *observability.Metrics
	retryCfg    retry.Config
	demoMode    bool
}

// NewImageService creates a new image service. vision may be nil, in which
// case analysis serves generated demo reports.
func NewImageService(vision providers.VisionProvider, interpreter providers.HazardInterpreter, matcher *hazard.Matcher, demo *hazard.DemoGenerator, history *offline.HazardHistory, metrics *observability.Metrics, retryCfg retry.Config, demoMode bool) *ImageService {
	return &ImageService{
		vision:      vision,
		interpreter: interpreter,
		matcher:     matcher,
		demo:        demo,
		history:     history,
		metrics:     metrics,
		retryCfg:    retryCfg,
		demoMode:    demoMode,
	}
}

// Analyze decodes the image, detects labels, and assembles a hazard report.
// imageData is base64, with or without a data URI prefix.
func (s *ImageService) Analyze(ctx context.Context, imageData, language string) (*entities.HazardReport, error) {
	logger := observability.LoggerFromContext(ctx)

	if s.demoMode || s.vision == nil {
		report := s.demo.Generate()
		s.saveReport(ctx, report)
		return report, nil
	}

	image, err := decodeImage(imageData)
	if err != nil {
		return nil, err
	}

	labels, err := s.detectLabels(ctx, image)
	if err != nil {
		return nil, err
	}

	report := s.interpret(ctx, labels, language)
	if report == nil {
		report = s.matcher.Analyze(labels)
	}

	logger.Info().
		Int("label_count", len(labels)).
		Int("hazard_count", report.HazardCount).
		Str("overall_risk", string(report.OverallRisk)).
		Str("source", report.Source).
		Msg("Image analyzed")

	s.saveReport(ctx, report)
	return report, nil
}

func (s *ImageService) detectLabels(ctx context.Context, image []byte) ([]entities.Label, error) {
	logger := observability.LoggerFromContext(ctx)

	var labels []entities.Label
	start := time.Now()
	err := retry.DoWithLog(
		ctx,
		s.retryCfg,
		"Rekognition",
		func() error {
			detected, err := s.vision.DetectLabels(ctx, image)
			if err != nil {
				if !apperrors.IsRetryable(err) {
					return retry.Permanent(err)
				}
				return err
			}
			labels = detected
			return nil
		},
		func(attempt int, err error, nextDelay time.Duration) {
			logger.Warn().
				Int("attempt", attempt).
				Dur("next_delay", nextDelay).
				Err(err).
				Msg("Label detection attempt failed, retrying")
		},
	)

	if s.metrics != nil {
		observability.RecordModelMetric(ctx, s.metrics, "rekognition", "detect_labels", err == nil, time.Since(start))
	}

	if err != nil {
		return nil, err
	}
	return labels, nil
}

// interpret asks the remote model to read the labels. Returns nil when the
// model is unavailable, fails, or produces an empty hazard list, so the rule
// dictionary takes over.
func (s *ImageService) interpret(ctx context.Context, labels []entities.Label, language string) *entities.HazardReport {
	if s.interpreter == nil || len(labels) == 0 {
		return nil
	}

	report, err := s.interpreter.InterpretHazards(ctx, labels, language)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Model hazard interpretation failed, using rule dictionary")
		return nil
	}
	if report == nil || len(report.Hazards) == 0 {
		observability.LoggerFromContext(ctx).Warn().Msg("Model returned no hazards, using rule dictionary")
		return nil
	}
	return report
}

func (s *ImageService) saveReport(ctx context.Context, report *entities.HazardReport) {
	if s.history == nil || ctx.Err() != nil {
		return
	}
	if err := s.history.Save(ctx, report); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Failed to save hazard report")
	}
}

func decodeImage(imageData string) ([]byte, error) {
	data := strings.TrimSpace(imageData)
	if data == "" {
		return nil, apperrors.NewInputError("image is required")
	}

	// Strip a data URI prefix like data:image/jpeg;base64,
	if strings.HasPrefix(data, "data:") {
		idx := strings.Index(data, ",")
		if idx < 0 {
			return nil, apperrors.NewInputError("malformed image data URI")
		}
		data = data[idx+1:]
	}

	image, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, apperrors.NewInputError("image is not valid base64")
	}

	if len(image) < minImageBytes {
		return nil, apperrors.NewInputError("image is too small to analyze")
	}
	if len(image) > maxImageBytes {
		return nil, apperrors.NewInputError("image exceeds the 5 MB limit")
	}

	return image, nil
}
